package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
)

// RecordTransactionCommand persists the journal one game command produced
type RecordTransactionCommand struct {
	GameID       string
	Transactions []*ledger.Transaction
}

// RecordTransactionResponse represents the result of recording a journal
type RecordTransactionResponse struct {
	TransactionIDs []string
	Net            int
}

// RecordTransactionHandler handles the RecordTransaction command. It is also
// the session's journal recorder.
type RecordTransactionHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewRecordTransactionHandler creates a new RecordTransactionHandler
func NewRecordTransactionHandler(transactionRepo ledger.TransactionRepository) *RecordTransactionHandler {
	return &RecordTransactionHandler{transactionRepo: transactionRepo}
}

// Handle executes the RecordTransaction command
func (h *RecordTransactionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RecordTransactionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordTransactionCommand")
	}

	if err := h.RecordJournal(ctx, cmd.GameID, cmd.Transactions); err != nil {
		return nil, err
	}

	resp := &RecordTransactionResponse{TransactionIDs: make([]string, len(cmd.Transactions))}
	for i, tx := range cmd.Transactions {
		resp.TransactionIDs[i] = tx.ID().String()
		resp.Net += tx.Amount()
	}
	return resp, nil
}

// RecordJournal validates and persists a batch of entries of one game,
// then records their metrics.
func (h *RecordTransactionHandler) RecordJournal(ctx context.Context, gameID string, entries []*ledger.Transaction) error {
	if len(entries) == 0 {
		return nil
	}
	for _, tx := range entries {
		if tx.GameID() != gameID {
			return fmt.Errorf("transaction %s belongs to game %s, not %s", tx.ID(), tx.GameID(), gameID)
		}
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid transaction: %w", err)
		}
	}

	if err := h.transactionRepo.Create(ctx, entries); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}

	for _, tx := range entries {
		metrics.RecordTransaction(gameID, tx.TransactionType().String(), tx.Category().String(), tx.Amount(), tx.BalanceAfter())
	}

	common.LoggerFromContext(ctx).Log("DEBUG", "Journal recorded", map[string]interface{}{
		"game_id": gameID,
		"entries": len(entries),
	})
	return nil
}
