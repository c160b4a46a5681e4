package market

import (
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Quote is one row of a market board (immutable value object).
// Buy is what the commander pays, Sell is what the commander receives.
type Quote struct {
	commodity int
	name      string
	buy       int
	sell      int
	quantity  int
	held      int
}

// Board lists the quotes of a system together with the cargo held
func Board(t *tables.Tables, sys *system.SolarSystem, p *Prices, cargo [tables.MaxTradeItem]int) []Quote {
	quotes := make([]Quote, 0, len(t.TradeItems))
	for i, item := range t.TradeItems {
		quotes = append(quotes, Quote{
			commodity: i,
			name:      item.Name,
			buy:       p.Buy[i],
			sell:      p.Sell[i],
			quantity:  sys.Quantities[i],
			held:      cargo[i],
		})
	}
	return quotes
}

func (q Quote) Commodity() int {
	return q.commodity
}

func (q Quote) Name() string {
	return q.name
}

func (q Quote) BuyPrice() int {
	return q.buy
}

func (q Quote) SellPrice() int {
	return q.sell
}

func (q Quote) Quantity() int {
	return q.quantity
}

func (q Quote) Held() int {
	return q.held
}

// Traded reports whether the system deals in the commodity at all
func (q Quote) Traded() bool {
	return q.buy > 0 || q.sell > 0
}
