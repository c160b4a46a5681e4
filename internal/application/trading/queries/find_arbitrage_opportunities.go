package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/application/trading/types"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/trading"
)

// FindArbitrageOpportunitiesQuery requests a scan for cargo runs from the current market
type FindArbitrageOpportunitiesQuery struct {
	GameID    string
	MinMargin float64 // Minimum profit margin threshold (default 5.0%)
	Limit     int     // Maximum opportunities to return (default 10)
}

// FindArbitrageOpportunitiesResponse contains the scan results
type FindArbitrageOpportunitiesResponse struct {
	System        string
	Reserve       int
	Opportunities []*types.OpportunityDTO
}

// FindArbitrageOpportunitiesHandler handles queries for finding arbitrage opportunities
type FindArbitrageOpportunitiesHandler struct {
	session  *common.Session
	analyzer *trading.ArbitrageAnalyzer
}

// NewFindArbitrageOpportunitiesHandler creates a new handler
func NewFindArbitrageOpportunitiesHandler(session *common.Session) *FindArbitrageOpportunitiesHandler {
	return &FindArbitrageOpportunitiesHandler{
		session:  session,
		analyzer: trading.NewArbitrageAnalyzer(),
	}
}

// Handle executes the query
func (h *FindArbitrageOpportunitiesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*FindArbitrageOpportunitiesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *FindArbitrageOpportunitiesQuery")
	}

	// Apply defaults
	minMargin := query.MinMargin
	if minMargin <= 0 {
		minMargin = 5.0
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	g, err := h.session.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	reserve := trading.DepartureReserve(g)
	resp := &FindArbitrageOpportunitiesResponse{
		System:  g.Tables().SystemName(g.CurrentSystem().NameIndex),
		Reserve: reserve,
	}

	opportunities, err := h.analyzer.FindOpportunities(g, reserve, minMargin, limit)
	switch {
	case errors.Is(err, trading.ErrNoOpportunitiesFound), errors.Is(err, trading.ErrInvalidCargoCapacity):
		return resp, nil
	case err != nil:
		return nil, fmt.Errorf("failed to find opportunities: %w", err)
	}

	resp.Opportunities = convertOpportunitiesToDTOs(g, opportunities)
	return resp, nil
}

// convertOpportunitiesToDTOs converts domain opportunities to DTOs
func convertOpportunitiesToDTOs(g *game.Game, opportunities []*trading.ArbitrageOpportunity) []*types.OpportunityDTO {
	t := g.Tables()
	dtos := make([]*types.OpportunityDTO, len(opportunities))
	for i, opp := range opportunities {
		dtos[i] = &types.OpportunityDTO{
			Commodity:       opp.Name(),
			Destination:     t.SystemName(g.Galaxy.Systems[opp.Destination()].NameIndex),
			Distance:        opp.Distance(),
			ViaWormhole:     opp.ViaWormhole(),
			BuyPrice:        opp.BuyPrice(),
			SellPrice:       opp.SellPrice(),
			Units:           opp.Units(),
			ProfitPerUnit:   opp.ProfitPerUnit(),
			ProfitMargin:    opp.ProfitMargin(),
			EstimatedProfit: opp.EstimatedProfit(),
			Score:           opp.Score(),
		}
	}
	return dtos
}
