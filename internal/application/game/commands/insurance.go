package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// InsuranceCommand buys or cancels the ship insurance
type InsuranceCommand struct {
	GameID string
	Insure bool
}

// BuyEscapePodCommand fits an escape pod
type BuyEscapePodCommand struct {
	GameID string
}

// InsuranceResponse reports the cover after the command
type InsuranceResponse struct {
	EscapePod bool
	Insured   bool
	Premium   int
	NoClaim   int
	Credits   int
}

// InsuranceHandler handles the Insurance and BuyEscapePod commands
type InsuranceHandler struct {
	session *common.Session
}

// NewInsuranceHandler creates a new InsuranceHandler
func NewInsuranceHandler(session *common.Session) *InsuranceHandler {
	return &InsuranceHandler{session: session}
}

// Handle executes the Insurance or BuyEscapePod command
func (h *InsuranceHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	var (
		id string
		fn func(g *game.Game) error
	)
	switch cmd := request.(type) {
	case *InsuranceCommand:
		id = cmd.GameID
		fn = func(g *game.Game) error {
			if cmd.Insure {
				return g.BuyInsurance()
			}
			return g.StopInsurance()
		}
	case *BuyEscapePodCommand:
		id = cmd.GameID
		fn = func(g *game.Game) error {
			return g.BuyEscapePod()
		}
	default:
		return nil, fmt.Errorf("invalid request type: expected *InsuranceCommand or *BuyEscapePodCommand")
	}

	g, err := h.session.Apply(ctx, id, fn)
	if err != nil {
		return nil, fmt.Errorf("insurance failed: %w", err)
	}

	return &InsuranceResponse{
		EscapePod: g.EscapePod,
		Insured:   g.Insurance,
		Premium:   g.InsurancePremium(),
		NoClaim:   g.NoClaim,
		Credits:   g.Balance.Credits,
	}, nil
}
