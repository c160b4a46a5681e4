package queries

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/system"
)

// GetGalaxyQuery retrieves the galactic chart. ReachableOnly limits the
// chart to the systems the commander can warp to.
type GetGalaxyQuery struct {
	GameID        string
	ReachableOnly bool
}

// SystemDTO is one entry of the galactic chart
type SystemDTO struct {
	ID         int
	Name       string
	X          int
	Y          int
	TechLevel  string
	Government string
	Size       string
	Status     string
	Resource   string
	Distance   int
	Reachable  bool
	Wormhole   bool
	Visited    bool
	Current    bool
}

// GalaxyResponse is the galactic chart
type GalaxyResponse struct {
	Fuel    int
	Systems []SystemDTO
}

// GetGalaxyHandler handles the GetGalaxy query
type GetGalaxyHandler struct {
	session *common.Session
}

// NewGetGalaxyHandler creates a new GetGalaxyHandler
func NewGetGalaxyHandler(session *common.Session) *GetGalaxyHandler {
	return &GetGalaxyHandler{session: session}
}

// Handle executes the GetGalaxy query
func (h *GetGalaxyHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetGalaxyQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetGalaxyQuery")
	}

	g, err := h.session.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	t := g.Tables()
	here := g.CurrentSystemID()
	reachable := make(map[int]bool)
	for _, id := range g.Reachable() {
		reachable[id] = true
	}
	wormhole, hasWormhole := g.Galaxy.WormholeTarget(here)

	resp := &GalaxyResponse{Fuel: g.Ship.CurrentFuel(t)}
	for id := range g.Galaxy.Systems {
		if query.ReachableOnly && !reachable[id] {
			continue
		}
		sys := &g.Galaxy.Systems[id]
		resp.Systems = append(resp.Systems, SystemDTO{
			ID:         id,
			Name:       t.SystemName(sys.NameIndex),
			X:          sys.X,
			Y:          sys.Y,
			TechLevel:  system.TechName(sys.TechLevel),
			Government: t.Politics[sys.Politics].Name,
			Size:       system.SizeName(sys.Size),
			Status:     sys.Status.String(),
			Resource:   sys.Resource.String(),
			Distance:   g.Galaxy.Distance(here, id),
			Reachable:  reachable[id],
			Wormhole:   hasWormhole && wormhole == id,
			Visited:    sys.Visited,
			Current:    id == here,
		})
	}
	return resp, nil
}
