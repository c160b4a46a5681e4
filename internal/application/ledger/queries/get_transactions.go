package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
)

// GetTransactionsQuery retrieves journal entries of a game
type GetTransactionsQuery struct {
	GameID          string
	FromDay         *int
	ToDay           *int
	Category        *string
	TransactionType *string
	Limit           int
	Offset          int
}

// GetTransactionsResponse represents the result of the query
type GetTransactionsResponse struct {
	Transactions []*TransactionDTO
	Total        int
}

// TransactionDTO represents a transaction data transfer object
type TransactionDTO struct {
	ID            string
	Day           int
	Timestamp     time.Time
	Type          string
	Category      string
	Amount        int
	BalanceBefore int
	BalanceAfter  int
	Description   string
}

// GetTransactionsHandler handles the GetTransactions query
type GetTransactionsHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetTransactionsHandler creates a new GetTransactionsHandler
func NewGetTransactionsHandler(transactionRepo ledger.TransactionRepository) *GetTransactionsHandler {
	return &GetTransactionsHandler{transactionRepo: transactionRepo}
}

// Handle executes the GetTransactions query
func (h *GetTransactionsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetTransactionsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTransactionsQuery")
	}
	if query.GameID == "" {
		return nil, fmt.Errorf("game id is required")
	}

	opts, err := buildQueryOptions(query)
	if err != nil {
		return nil, err
	}

	transactions, err := h.transactionRepo.FindByGame(ctx, query.GameID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	total, err := h.transactionRepo.CountByGame(ctx, query.GameID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	dtos := make([]*TransactionDTO, len(transactions))
	for i, tx := range transactions {
		dtos[i] = toDTO(tx)
	}

	return &GetTransactionsResponse{
		Transactions: dtos,
		Total:        total,
	}, nil
}

func buildQueryOptions(query *GetTransactionsQuery) (ledger.QueryOptions, error) {
	opts := ledger.DefaultQueryOptions()
	opts.FromDay = query.FromDay
	opts.ToDay = query.ToDay

	if query.Category != nil {
		category, err := ledger.ParseCategory(*query.Category)
		if err != nil {
			return opts, fmt.Errorf("invalid category: %w", err)
		}
		opts.Category = &category
	}

	if query.TransactionType != nil {
		txType, err := ledger.ParseTransactionType(*query.TransactionType)
		if err != nil {
			return opts, fmt.Errorf("invalid transaction type: %w", err)
		}
		opts.TransactionType = &txType
	}

	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Offset = query.Offset
	return opts, nil
}

func toDTO(tx *ledger.Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:            tx.ID().String(),
		Day:           tx.Day(),
		Timestamp:     tx.Timestamp(),
		Type:          tx.TransactionType().String(),
		Category:      tx.Category().String(),
		Amount:        tx.Amount(),
		BalanceBefore: tx.BalanceBefore(),
		BalanceAfter:  tx.BalanceAfter(),
		Description:   tx.Description(),
	}
}
