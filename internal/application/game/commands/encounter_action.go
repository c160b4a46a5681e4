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

// EncounterActionCommand answers the pending encounter
type EncounterActionCommand struct {
	GameID string
	Action string // attack, flee, ignore, submit or surrender
}

// EncounterActionResponse reports one round
type EncounterActionResponse struct {
	Action             string
	Type               string
	PlayerHit          bool
	PlayerDamage       int
	OpponentHit        bool
	OpponentDamage     int
	Escaped            bool
	OpponentEscaped    bool
	OpponentDestroyed  bool
	CommanderDestroyed bool
	EscapePodUsed      bool
	Bounty             int
	Fine               int
	Confiscated        int
	Ended              bool
	Arrived            bool
	GameOver           bool
	Day                int
	Credits            int
	Hull               int
	Encounter          *dtos.EncounterDTO
	Events             []string
}

// EncounterActionHandler handles the EncounterAction command
type EncounterActionHandler struct {
	session *common.Session
}

// NewEncounterActionHandler creates a new EncounterActionHandler
func NewEncounterActionHandler(session *common.Session) *EncounterActionHandler {
	return &EncounterActionHandler{session: session}
}

// Handle executes the EncounterAction command
func (h *EncounterActionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*EncounterActionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *EncounterActionCommand")
	}

	action, err := game.ParseAction(cmd.Action)
	if err != nil {
		return nil, err
	}

	var (
		res      *game.RoundResult
		category string
	)
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		if g.Encounter != nil {
			category = g.Encounter.Category.String()
		}
		var err error
		res, err = g.Act(action)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("encounter action failed: %w", err)
	}

	metrics.RecordEncounter(g.ID, category, outcome(res))
	if res.CommanderDestroyed {
		common.LoggerFromContext(ctx).Log("WARNING", "Commander's ship destroyed", map[string]interface{}{
			"game_id":    g.ID,
			"escape_pod": res.EscapePodUsed,
		})
	}

	return &EncounterActionResponse{
		Action:             res.Action.String(),
		Type:               res.Type.String(),
		PlayerHit:          res.PlayerShot.Hit,
		PlayerDamage:       res.PlayerShot.Damage,
		OpponentHit:        res.OpponentShot.Hit,
		OpponentDamage:     res.OpponentShot.Damage,
		Escaped:            res.Escaped,
		OpponentEscaped:    res.OpponentEscaped,
		OpponentDestroyed:  res.OpponentDestroyed,
		CommanderDestroyed: res.CommanderDestroyed,
		EscapePodUsed:      res.EscapePodUsed,
		Bounty:             res.Bounty,
		Fine:               res.Fine,
		Confiscated:        res.Confiscated,
		Ended:              res.Ended,
		Arrived:            res.Arrived,
		GameOver:           g.Ended,
		Day:                g.Quests.Days,
		Credits:            g.Balance.Credits,
		Hull:               g.Ship.Hull,
		Encounter:          dtos.EncounterToDTO(g.Tables(), g, g.Encounter),
		Events:             dtos.Events(res.Report),
	}, nil
}

// outcome labels a round for the encounter metrics
func outcome(res *game.RoundResult) string {
	switch {
	case res.CommanderDestroyed:
		return "destroyed"
	case res.OpponentDestroyed:
		return "victory"
	case res.Escaped:
		return "escaped"
	case res.OpponentEscaped:
		return "opponent_escaped"
	case res.Ended:
		return "ended"
	}
	return "continues"
}
