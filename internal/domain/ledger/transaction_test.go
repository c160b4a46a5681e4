package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

func TestNewTransaction(t *testing.T) {
	// Arrange
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Act
	tx, err := ledger.NewTransaction("game-1", 4, at, ledger.TransactionTypeRefuel, -20, 1000, "10 parsecs", nil)

	// Assert
	require.NoError(t, err)
	assert.False(t, tx.ID().IsZero())
	assert.Equal(t, ledger.CategoryFuelCosts, tx.Category())
	assert.Equal(t, 980, tx.BalanceAfter())
	assert.False(t, tx.IsIncome())
	assert.Nil(t, tx.Metadata())
}

func TestNewTransaction_Invalid(t *testing.T) {
	at := time.Now()
	var invalid *ledger.ErrInvalidTransaction

	_, err := ledger.NewTransaction("", 0, at, ledger.TransactionTypeRefuel, -1, 0, "", nil)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "game_id", invalid.Field)

	_, err = ledger.NewTransaction("g", 0, at, ledger.TransactionTypeRefuel, 0, 0, "", nil)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "amount", invalid.Field)

	_, err = ledger.NewTransaction("g", 0, at, ledger.TransactionType("PLUNDER"), 5, 0, "", nil)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "transaction_type", invalid.Field)
}

func TestReconstructTransaction_Validate(t *testing.T) {
	tx := ledger.ReconstructTransaction(ledger.NewTransactionID(), "g", 1, time.Now(),
		ledger.TransactionTypeBounty, ledger.CategoryCombatIncome, 100, 50, 140, "", nil)
	var violation *ledger.ErrBalanceInvariantViolation
	require.True(t, errors.As(tx.Validate(), &violation))
	assert.Equal(t, 150, violation.Expected)
}

func TestTypeToCategoryMap_CoversAllTypes(t *testing.T) {
	for _, tt := range ledger.AllTransactionTypes() {
		c, err := tt.ToCategory()
		require.NoError(t, err)
		assert.True(t, c.IsValid(), tt.String())
	}
	_, err := ledger.ParseTransactionType("LOAN")
	assert.NoError(t, err)
	_, err = ledger.ParseCategory("NOPE")
	assert.Error(t, err)
}

func TestParseTransactionID(t *testing.T) {
	id := ledger.NewTransactionID()
	parsed, err := ledger.ParseTransactionID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ledger.ParseTransactionID("not-a-uuid")
	assert.Error(t, err)
}

func TestJournal(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	j := ledger.NewJournal("game-1", clock)

	// Act
	require.NoError(t, j.Record(3, ledger.TransactionTypePurchaseCargo, -440, 1000, "10 Water"))
	require.NoError(t, j.Record(3, ledger.TransactionTypeRefuel, 0, 560, "tank full"))
	require.NoError(t, j.Record(4, ledger.TransactionTypeSellCargo, 500, 560, "10 Water"))
	require.NoError(t, j.Record(4, ledger.TransactionTypeDumpCargo, -15, 1060, "1 Ore"))

	// Assert
	entries := j.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, clock.Now(), entries[0].Timestamp())
	summary := ledger.Summary(entries)
	assert.Equal(t, 500, summary[ledger.CategoryTradingRevenue])
	assert.Equal(t, -455, summary[ledger.CategoryTradingCosts])
}
