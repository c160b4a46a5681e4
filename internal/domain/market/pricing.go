// Package market computes commodity stock and prices per solar system and
// applies cargo purchases and sales to a ship.
package market

import (
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Prices are the quotes of one system. Buy is what the commander pays,
// Sell is what the commander receives. Zero means not traded.
type Prices struct {
	Buy  [tables.MaxTradeItem]int `json:"buy"`
	Sell [tables.MaxTradeItem]int `json:"sell"`
}

// tradable reports whether the system may produce and trade the commodity
func tradable(t *tables.Tables, commodity int, sys *system.SolarSystem) bool {
	if !t.Politics[sys.Politics].Allows(commodity) {
		return false
	}
	return sys.TechLevel >= t.TradeItems[commodity].TechProduction
}

// StandardPrice is the unrandomized price of a commodity in a system
func StandardPrice(t *tables.Tables, commodity int, sys *system.SolarSystem) int {
	pol := &t.Politics[sys.Politics]
	item := &t.TradeItems[commodity]

	if !pol.Allows(commodity) {
		return 0
	}

	price := item.PriceLowTech + sys.TechLevel*item.PriceInc

	if pol.Wanted == commodity {
		price = price * 4 / 3
	}

	price = price * (100 - 2*pol.StrengthTraders) / 100

	price = price * (100 - sys.Size) / 100

	if sys.Resource > system.NothingSpecial {
		if item.CheapResource >= 0 && sys.Resource == item.CheapResource {
			price = price * 3 / 4
		}
		if item.ExpensiveResource >= 0 && sys.Resource == item.ExpensiveResource {
			price = price * 4 / 3
		}
	}

	if sys.TechLevel < item.TechUsage {
		return 0
	}
	if price < 0 {
		return 0
	}
	return price
}

// DeterminePrices draws fresh quotes for a system. Criminals sell through
// an intermediary who keeps a tenth.
func DeterminePrices(t *tables.Tables, sys *system.SolarSystem, r shared.Random, traderSkill, policeScore int) Prices {
	var p Prices
	for i := range t.TradeItems {
		buy := StandardPrice(t, i, sys)
		if buy <= 0 {
			continue
		}

		item := &t.TradeItems[i]
		if sys.Status == item.DoublePriceStatus {
			buy = (buy * 3) >> 1
		}

		buy = buy + r.Below(item.Variance) - r.Below(item.Variance)
		if buy <= 0 {
			continue
		}

		p.Sell[i] = buy
		if policeScore < shared.DubiousScore {
			p.Sell[i] = p.Sell[i] * 90 / 100
		}
	}
	RecalculateBuyPrices(t, sys, &p, traderSkill, policeScore)
	return p
}

// RecalculateBuyPrices derives buy quotes from sell quotes: 1 to 12 percent
// above, depending on trader skill, and always at least one credit above.
// A commodity without a sell quote gets no buy quote either.
func RecalculateBuyPrices(t *tables.Tables, sys *system.SolarSystem, p *Prices, traderSkill, policeScore int) {
	for i := range t.TradeItems {
		if !tradable(t, i, sys) || p.Sell[i] <= 0 {
			p.Buy[i] = 0
			continue
		}
		base := p.Sell[i]
		if policeScore < shared.DubiousScore {
			base = p.Sell[i] * 100 / 90
		}
		p.Buy[i] = base * (103 + (crew.MaxSkill - traderSkill)) / 100
		if p.Buy[i] <= p.Sell[i] {
			p.Buy[i] = p.Sell[i] + 1
		}
	}
}

// RecalculateSellPrices removes the intermediary cut after the police
// record has been cleared.
func RecalculateSellPrices(p *Prices) {
	for i := range p.Sell {
		p.Sell[i] = p.Sell[i] * 100 / 90
	}
}
