package queries

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
)

// GetMarketQuery retrieves the market board of the current system
type GetMarketQuery struct {
	GameID string
}

// QuoteDTO is one commodity on the board
type QuoteDTO struct {
	Commodity string
	BuyPrice  int
	SellPrice int
	Quantity  int
	Held      int
	// Basis is the average price paid per unit held
	Basis int
}

// MarketResponse is the market board with the room left in the hold
type MarketResponse struct {
	System   string
	Day      int
	Credits  int
	FreeBays int
	Quotes   []QuoteDTO
}

// GetMarketHandler handles the GetMarket query
type GetMarketHandler struct {
	session *common.Session
}

// NewGetMarketHandler creates a new GetMarketHandler
func NewGetMarketHandler(session *common.Session) *GetMarketHandler {
	return &GetMarketHandler{session: session}
}

// Handle executes the GetMarket query
func (h *GetMarketHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetMarketQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetMarketQuery")
	}

	g, err := h.session.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	used := 0
	for _, c := range g.Ship.Cargo {
		used += c
	}
	resp := &MarketResponse{
		System:   g.Tables().SystemName(g.CurrentSystem().NameIndex),
		Day:      g.Quests.Days,
		Credits:  g.Balance.Credits,
		FreeBays: g.Bays() - used,
	}
	for _, q := range g.Quotes() {
		dto := QuoteDTO{
			Commodity: q.Name(),
			BuyPrice:  q.BuyPrice(),
			SellPrice: q.SellPrice(),
			Quantity:  q.Quantity(),
			Held:      q.Held(),
		}
		if q.Held() > 0 {
			dto.Basis = g.BuyingPrice[q.Commodity()] / q.Held()
		}
		resp.Quotes = append(resp.Quotes, dto)
	}
	return resp, nil
}
