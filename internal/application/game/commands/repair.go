package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// RepairCommand spends up to Credits on hull repairs. Zero repairs fully.
type RepairCommand struct {
	GameID  string
	Credits int
}

// RepairResponse reports the hull points restored
type RepairResponse struct {
	Receipt dtos.ReceiptDTO
	Hull    int
	MaxHull int
}

// RepairHandler handles the Repair command
type RepairHandler struct {
	session *common.Session
}

// NewRepairHandler creates a new RepairHandler
func NewRepairHandler(session *common.Session) *RepairHandler {
	return &RepairHandler{session: session}
}

// Handle executes the Repair command
func (h *RepairHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RepairCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RepairCommand")
	}

	var receipt *game.Receipt
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		amount := cmd.Credits
		if amount == 0 {
			amount = g.Balance.Credits
		}
		var err error
		receipt, err = g.Repair(amount)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("repair failed: %w", err)
	}

	return &RepairResponse{
		Receipt: dtos.ReceiptToDTO(receipt),
		Hull:    g.Ship.Hull,
		MaxHull: g.Ship.HullStrength(g.Tables(), g.Quests.HullUpgraded()),
	}, nil
}
