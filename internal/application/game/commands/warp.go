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

// WarpCommand flies to another system
type WarpCommand struct {
	GameID string
	Target string // System name or id
}

// WarpResponse reports the trip. Encounter is set when the warp was
// interrupted; the trip completes once the encounter is over.
type WarpResponse struct {
	From        string
	To          string
	Distance    int
	ViaWormhole bool
	Costs       int
	Arrived     bool
	Day         int
	Credits     int
	Encounter   *dtos.EncounterDTO
	Events      []string
}

// WarpHandler handles the Warp command
type WarpHandler struct {
	session *common.Session
}

// NewWarpHandler creates a new WarpHandler
func NewWarpHandler(session *common.Session) *WarpHandler {
	return &WarpHandler{session: session}
}

// Handle executes the Warp command
func (h *WarpHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*WarpCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *WarpCommand")
	}

	var res *game.WarpResult
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		target, err := common.ResolveSystem(g, cmd.Target)
		if err != nil {
			return err
		}
		res, err = g.Warp(target)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("warp failed: %w", err)
	}

	metrics.RecordWarp(g.ID, res.Distance, res.ViaWormhole)
	if res.Encounter != nil {
		metrics.RecordEncounter(g.ID, res.Encounter.Category.String(), "met")
	}

	t := g.Tables()
	return &WarpResponse{
		From:        t.SystemName(g.Galaxy.Systems[res.From].NameIndex),
		To:          t.SystemName(g.Galaxy.Systems[res.To].NameIndex),
		Distance:    res.Distance,
		ViaWormhole: res.ViaWormhole,
		Costs:       res.Costs,
		Arrived:     res.Arrived,
		Day:         g.Quests.Days,
		Credits:     g.Balance.Credits,
		Encounter:   dtos.EncounterToDTO(t, g, res.Encounter),
		Events:      dtos.Events(res.Report),
	}, nil
}
