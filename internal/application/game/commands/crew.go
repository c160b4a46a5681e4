package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// HireCommand takes a mercenary aboard
type HireCommand struct {
	GameID    string
	Mercenary string // Name or roster index
}

// FireCommand leaves a mercenary behind
type FireCommand struct {
	GameID    string
	Mercenary string // Name or roster index
}

// CrewResponse reports the crew after the change
type CrewResponse struct {
	Mercenary string
	Crew      []string
	Payroll   int
}

// CrewHandler handles the Hire and Fire commands
type CrewHandler struct {
	session *common.Session
}

// NewCrewHandler creates a new CrewHandler
func NewCrewHandler(session *common.Session) *CrewHandler {
	return &CrewHandler{session: session}
}

// Handle executes the Hire or Fire command
func (h *CrewHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	var (
		id, who string
		hire    bool
	)
	switch cmd := request.(type) {
	case *HireCommand:
		id, who, hire = cmd.GameID, cmd.Mercenary, true
	case *FireCommand:
		id, who = cmd.GameID, cmd.Mercenary
	default:
		return nil, fmt.Errorf("invalid request type: expected *HireCommand or *FireCommand")
	}

	index, err := h.resolveMercenary(who)
	if err != nil {
		return nil, err
	}

	g, err := h.session.Apply(ctx, id, func(g *game.Game) error {
		if hire {
			return g.Hire(index)
		}
		return g.Fire(index)
	})
	if err != nil {
		return nil, fmt.Errorf("crew change failed: %w", err)
	}

	t := h.session.Tables()
	return &CrewResponse{
		Mercenary: t.MercenaryName(index),
		Payroll:   g.Payroll(),
		Crew:      dtos.CrewNames(t, g),
	}, nil
}

func (h *CrewHandler) resolveMercenary(s string) (int, error) {
	for i, name := range h.session.Tables().MercenaryNames {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil && i > crew.Commander && i < crew.RosterSize {
		return i, nil
	}
	return 0, fmt.Errorf("unknown mercenary: %s", s)
}
