package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/adapters/persistence"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/test/helpers"
)

// journal records a loan, a fuel purchase and a cargo sale on consecutive days
func journal(t *testing.T, gameID string) []*ledger.Transaction {
	t.Helper()
	j := ledger.NewJournal(gameID, shared.NewMockClock(helpers.Epoch))
	require.NoError(t, j.Record(0, ledger.TransactionTypeLoan, 500, 1000, "bank loan"))
	require.NoError(t, j.Record(0, ledger.TransactionTypeRefuel, -20, 1500, "10 parsecs of fuel"))
	require.NoError(t, j.Record(1, ledger.TransactionTypeSellCargo, 300, 1480, "sold 10 Water"))
	return j.Entries()
}

func TestTransactionRepository_CreateAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)
	entries := journal(t, "game-1")

	// Act
	err := repo.Create(context.Background(), entries)

	// Assert
	require.NoError(t, err)

	found, err := repo.FindByGame(context.Background(), "game-1", ledger.DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, found, 3)
	for i, tx := range found {
		assert.Equal(t, entries[i].ID(), tx.ID())
		assert.Equal(t, entries[i].TransactionType(), tx.TransactionType())
		assert.Equal(t, entries[i].Category(), tx.Category())
		assert.Equal(t, entries[i].Amount(), tx.Amount())
		assert.Equal(t, entries[i].BalanceAfter(), tx.BalanceAfter())
		assert.Equal(t, entries[i].Day(), tx.Day())
	}
}

func TestTransactionRepository_Filters(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)
	require.NoError(t, repo.Create(context.Background(), journal(t, "game-1")))
	require.NoError(t, repo.Create(context.Background(), journal(t, "game-2")))

	day := 1
	category := ledger.CategoryFuelCosts
	txType := ledger.TransactionTypeLoan

	tests := []struct {
		name string
		opts ledger.QueryOptions
		want int
	}{
		{"all", ledger.QueryOptions{}, 3},
		{"from day", ledger.QueryOptions{FromDay: &day}, 1},
		{"to day", ledger.QueryOptions{ToDay: new(int)}, 2},
		{"category", ledger.QueryOptions{Category: &category}, 1},
		{"type", ledger.QueryOptions{TransactionType: &txType}, 1},
		{"limit", ledger.QueryOptions{Limit: 2}, 2},
		{"offset", ledger.QueryOptions{Limit: 10, Offset: 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			found, err := repo.FindByGame(context.Background(), "game-1", tt.opts)

			// Assert
			require.NoError(t, err)
			assert.Len(t, found, tt.want)
		})
	}
}

func TestTransactionRepository_Count(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)
	require.NoError(t, repo.Create(context.Background(), journal(t, "game-1")))

	// Act
	count, err := repo.CountByGame(context.Background(), "game-1", ledger.QueryOptions{Limit: 1})
	other, otherErr := repo.CountByGame(context.Background(), "game-2", ledger.QueryOptions{})

	// Assert
	require.NoError(t, err)
	require.NoError(t, otherErr)
	assert.Equal(t, 3, count, "pagination does not limit the count")
	assert.Equal(t, 0, other)
}

func TestTransactionRepository_CreateEmptyBatch(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTransactionRepository(db)

	assert.NoError(t, repo.Create(context.Background(), nil))
}
