package ledger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
)

// bumblebee has two crew quarters
const bumblebee = 4

func TestCurrentWorth(t *testing.T) {
	b := ledger.Balance{Credits: 1000, Debt: 300}
	assert.Equal(t, 9700, ledger.CurrentWorth(9000, b, false))
	assert.Equal(t, 509700, ledger.CurrentWorth(9000, b, true))
}

func TestMaxLoan(t *testing.T) {
	tests := []struct {
		name  string
		score int
		worth int
		want  int
	}{
		{"clean minimum", shared.CleanScore, 5000, 1000},
		{"clean rounds to 500", shared.CleanScore, 123456, 12000},
		{"clean capped", shared.HeroScore, 10000000, 25000},
		{"criminal", shared.DubiousScore, 10000000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.MaxLoan(tt.score, tt.worth))
		})
	}
}

func TestGetLoan(t *testing.T) {
	// Arrange
	b := ledger.Balance{Credits: 100, Debt: 400}

	// Act
	lent, after, err := ledger.GetLoan(b, 5000, 1000)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 600, lent)
	assert.Equal(t, ledger.Balance{Credits: 700, Debt: 1000}, after)

	lent, after, err = ledger.GetLoan(ledger.Balance{Debt: 2000}, 100, 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, lent)
	assert.Equal(t, 2000, after.Debt)

	_, _, err = ledger.GetLoan(b, -1, 1000)
	var neg *shared.NegativeAmountError
	assert.True(t, errors.As(err, &neg))
}

func TestPayBack(t *testing.T) {
	paid, after, err := ledger.PayBack(ledger.Balance{Credits: 300, Debt: 1000}, 500)
	require.NoError(t, err)
	assert.Equal(t, 300, paid)
	assert.Equal(t, ledger.Balance{Credits: 0, Debt: 700}, after)

	paid, after, err = ledger.PayBack(ledger.Balance{Credits: 3000, Debt: 200}, 500)
	require.NoError(t, err)
	assert.Equal(t, 200, paid)
	assert.Equal(t, ledger.Balance{Credits: 2800, Debt: 0}, after)
}

func TestPayInterest(t *testing.T) {
	tests := []struct {
		name     string
		before   ledger.Balance
		wantPaid int
		want     ledger.Balance
	}{
		{"no debt", ledger.Balance{Credits: 50}, 0, ledger.Balance{Credits: 50}},
		{"paid in cash", ledger.Balance{Credits: 1000, Debt: 100}, 10, ledger.Balance{Credits: 990, Debt: 100}},
		{"minimum one credit", ledger.Balance{Credits: 10, Debt: 5}, 1, ledger.Balance{Credits: 9, Debt: 5}},
		{"short of cash", ledger.Balance{Credits: 5, Debt: 100}, 5, ledger.Balance{Credits: 0, Debt: 105}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, after := ledger.PayInterest(tt.before)
			assert.Equal(t, tt.wantPaid, paid)
			assert.Equal(t, tt.want, after)
		})
	}
}

func TestInsurancePremium(t *testing.T) {
	assert.Equal(t, 0, ledger.InsurancePremium(false, 9000, 0))
	assert.Equal(t, 22, ledger.InsurancePremium(true, 9000, 0))
	assert.Equal(t, 11, ledger.InsurancePremium(true, 9000, 50))
	assert.Equal(t, 2, ledger.InsurancePremium(true, 9000, 200))
	assert.Equal(t, 1, ledger.InsurancePremium(true, 100, 0))
}

func TestMercenaryPayroll(t *testing.T) {
	var roster crew.Roster
	roster[0] = crew.Member{Pilot: 9, Fighter: 9, Trader: 9, Engineer: 9}
	roster[4] = crew.Member{Pilot: 1, Fighter: 2, Trader: 3, Engineer: 4}
	roster[31] = crew.Member{Pilot: 5, Fighter: 5, Trader: 5, Engineer: 5}

	s := ship.NewEmpty(bumblebee)
	s.Crew[0] = shared.Occupied(0)
	s.Crew[1] = shared.Occupied(4)
	assert.Equal(t, 30, ledger.MercenaryPayroll(&s, &roster, false))

	s.Crew[1] = shared.Empty
	s.Crew[2] = shared.Occupied(4)
	assert.Equal(t, 30, ledger.MercenaryPayroll(&s, &roster, false))

	assert.Equal(t, 60, ledger.MercenaryHirePrice(&roster, 31, false))
	assert.Equal(t, 0, ledger.MercenaryHirePrice(&roster, 31, true))
	assert.Equal(t, 0, ledger.MercenaryHirePrice(&roster, -1, false))
}
