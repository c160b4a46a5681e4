package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// BorrowCommand takes a bank loan
type BorrowCommand struct {
	GameID string
	Amount int
}

// PayBackCommand repays the bank. Zero repays as much as possible.
type PayBackCommand struct {
	GameID string
	Amount int
}

// BankResponse reports the balance after a bank operation
type BankResponse struct {
	Receipt dtos.ReceiptDTO
	Debt    int
	MaxLoan int
}

// BorrowHandler handles the Borrow command
type BorrowHandler struct {
	session *common.Session
}

// NewBorrowHandler creates a new BorrowHandler
func NewBorrowHandler(session *common.Session) *BorrowHandler {
	return &BorrowHandler{session: session}
}

// Handle executes the Borrow command
func (h *BorrowHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*BorrowCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BorrowCommand")
	}

	var receipt *game.Receipt
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		var err error
		receipt, err = g.Borrow(cmd.Amount)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("loan failed: %w", err)
	}
	return bankResponse(g, receipt), nil
}

// PayBackHandler handles the PayBack command
type PayBackHandler struct {
	session *common.Session
}

// NewPayBackHandler creates a new PayBackHandler
func NewPayBackHandler(session *common.Session) *PayBackHandler {
	return &PayBackHandler{session: session}
}

// Handle executes the PayBack command
func (h *PayBackHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*PayBackCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PayBackCommand")
	}

	var receipt *game.Receipt
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		amount := cmd.Amount
		if amount == 0 {
			amount = g.Balance.Debt
		}
		var err error
		receipt, err = g.PayBack(amount)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("repayment failed: %w", err)
	}
	return bankResponse(g, receipt), nil
}

func bankResponse(g *game.Game, receipt *game.Receipt) *BankResponse {
	return &BankResponse{
		Receipt: dtos.ReceiptToDTO(receipt),
		Debt:    g.Balance.Debt,
		MaxLoan: g.MaxLoan(),
	}
}
