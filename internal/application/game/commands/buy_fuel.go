package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// BuyFuelCommand spends up to Credits on fuel. Zero fills the tanks.
type BuyFuelCommand struct {
	GameID  string
	Credits int
}

// BuyFuelResponse reports the parsecs bought
type BuyFuelResponse struct {
	Receipt dtos.ReceiptDTO
	Fuel    int
}

// BuyFuelHandler handles the BuyFuel command
type BuyFuelHandler struct {
	session *common.Session
}

// NewBuyFuelHandler creates a new BuyFuelHandler
func NewBuyFuelHandler(session *common.Session) *BuyFuelHandler {
	return &BuyFuelHandler{session: session}
}

// Handle executes the BuyFuel command
func (h *BuyFuelHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*BuyFuelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuyFuelCommand")
	}

	var receipt *game.Receipt
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		amount := cmd.Credits
		if amount == 0 {
			amount = g.Balance.Credits
		}
		var err error
		receipt, err = g.BuyFuel(amount)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("refuel failed: %w", err)
	}

	metrics.RecordFuelPurchase(g.ID, receipt.Units)
	return &BuyFuelResponse{
		Receipt: dtos.ReceiptToDTO(receipt),
		Fuel:    g.Ship.CurrentFuel(g.Tables()),
	}, nil
}
