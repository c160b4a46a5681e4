package queries

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
)

// GetProfitLossQuery represents a query to generate a profit & loss statement
type GetProfitLossQuery struct {
	GameID  string
	FromDay *int
	ToDay   *int
}

// GetProfitLossResponse represents the profit & loss statement result
type GetProfitLossResponse struct {
	Period           string
	TotalRevenue     int
	TotalExpenses    int
	NetProfit        int
	RevenueBreakdown map[string]int // category -> amount
	ExpenseBreakdown map[string]int // category -> amount
}

// GetProfitLossHandler handles the GetProfitLoss query
type GetProfitLossHandler struct {
	transactionRepo ledger.TransactionRepository
}

// NewGetProfitLossHandler creates a new GetProfitLossHandler
func NewGetProfitLossHandler(transactionRepo ledger.TransactionRepository) *GetProfitLossHandler {
	return &GetProfitLossHandler{
		transactionRepo: transactionRepo,
	}
}

// Handle executes the GetProfitLoss query
func (h *GetProfitLossHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetProfitLossQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetProfitLossQuery")
	}

	// No limit: the statement covers every entry in range
	opts := ledger.QueryOptions{FromDay: query.FromDay, ToDay: query.ToDay}
	transactions, err := h.transactionRepo.FindByGame(ctx, query.GameID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return calculateProfitLoss(query, transactions), nil
}

func calculateProfitLoss(query *GetProfitLossQuery, transactions []*ledger.Transaction) *GetProfitLossResponse {
	resp := &GetProfitLossResponse{
		Period:           period(query.FromDay, query.ToDay),
		RevenueBreakdown: make(map[string]int),
		ExpenseBreakdown: make(map[string]int),
	}

	for _, tx := range transactions {
		category := tx.Category().String()
		amount := tx.Amount()

		if amount > 0 {
			resp.RevenueBreakdown[category] += amount
			resp.TotalRevenue += amount
		} else {
			// Expenses are reported as positive values
			resp.ExpenseBreakdown[category] += -amount
			resp.TotalExpenses += -amount
		}
	}

	resp.NetProfit = resp.TotalRevenue - resp.TotalExpenses
	return resp
}

func period(from, to *int) string {
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("day %d to day %d", *from, *to)
	case from != nil:
		return fmt.Sprintf("since day %d", *from)
	case to != nil:
		return fmt.Sprintf("until day %d", *to)
	}
	return "all days"
}
