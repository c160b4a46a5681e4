package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
)

// GetPriceHistoryQuery retrieves the prices recorded on earlier visits.
// System defaults to the current system.
type GetPriceHistoryQuery struct {
	GameID    string
	System    string
	Commodity string
	Limit     int
}

// PricePointDTO is one recorded price
type PricePointDTO struct {
	Day        int
	BuyPrice   int
	SellPrice  int
	Quantity   int
	Spread     float64
	RecordedAt time.Time
}

// PriceHistoryResponse lists the recorded prices, newest first
type PriceHistoryResponse struct {
	System    string
	Commodity string
	Points    []PricePointDTO
}

// GetPriceHistoryHandler handles the GetPriceHistory query
type GetPriceHistoryHandler struct {
	session *common.Session
}

// NewGetPriceHistoryHandler creates a new GetPriceHistoryHandler
func NewGetPriceHistoryHandler(session *common.Session) *GetPriceHistoryHandler {
	return &GetPriceHistoryHandler{session: session}
}

// Handle executes the GetPriceHistory query
func (h *GetPriceHistoryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetPriceHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPriceHistoryQuery")
	}

	g, err := h.session.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	t := g.Tables()
	systemID := g.CurrentSystemID()
	if query.System != "" {
		if systemID, err = common.ResolveSystem(g, query.System); err != nil {
			return nil, err
		}
	}
	commodity, err := common.ResolveCommodity(t, query.Commodity)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}
	history, err := h.session.PriceHistory(ctx, g.ID, systemID, commodity, limit)
	if err != nil {
		return nil, err
	}

	resp := &PriceHistoryResponse{
		System:    t.SystemName(g.Galaxy.Systems[systemID].NameIndex),
		Commodity: t.TradeItems[commodity].Name,
		Points:    make([]PricePointDTO, 0, len(history)),
	}
	for _, p := range history {
		resp.Points = append(resp.Points, PricePointDTO{
			Day:        p.Day(),
			BuyPrice:   p.BuyPrice(),
			SellPrice:  p.SellPrice(),
			Quantity:   p.Quantity(),
			Spread:     p.Spread(),
			RecordedAt: p.RecordedAt(),
		})
	}
	return resp, nil
}
