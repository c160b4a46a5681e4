package ledger

import (
	"context"
)

// TransactionRepository defines persistence operations for the journal
type TransactionRepository interface {
	// Create persists a batch of transactions in one unit of work
	Create(ctx context.Context, transactions []*Transaction) error

	// FindByGame retrieves transactions of a game with optional filtering
	FindByGame(ctx context.Context, gameID string, opts QueryOptions) ([]*Transaction, error)

	// CountByGame returns the count of transactions matching the criteria
	CountByGame(ctx context.Context, gameID string, opts QueryOptions) (int, error)
}

// QueryOptions defines filtering and pagination options for journal queries
type QueryOptions struct {
	FromDay *int
	ToDay   *int

	Category        *Category
	TransactionType *TransactionType

	Limit  int
	Offset int
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{Limit: 50}
}
