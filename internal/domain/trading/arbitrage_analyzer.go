// Package trading finds profitable cargo runs from the commander's current
// market to the systems within reach.
package trading

import (
	"sort"

	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// ArbitrageAnalyzer scores buy/sell pairs between the local market and the
// reachable systems. It only reads the game.
type ArbitrageAnalyzer struct {
	profitWeight    float64
	marginWeight    float64
	distancePenalty float64
}

// NewArbitrageAnalyzer creates a new analyzer with default scoring weights
func NewArbitrageAnalyzer() *ArbitrageAnalyzer {
	return &ArbitrageAnalyzer{
		profitWeight:    1.0,  // credits of expected profit
		marginWeight:    10.0, // per percent of margin
		distancePenalty: 5.0,  // per parsec of fuel burnt
	}
}

// EstimateSellPrice is what a system is expected to pay for a commodity
// before its quotes are drawn: the standard price, raised by a status that
// doubles demand, less the intermediary's cut for criminals.
func EstimateSellPrice(t *tables.Tables, commodity int, sys *system.SolarSystem, policeScore int) int {
	price := market.StandardPrice(t, commodity, sys)
	if price <= 0 {
		return 0
	}
	if sys.Status == t.TradeItems[commodity].DoublePriceStatus {
		price = (price * 3) >> 1
	}
	if policeScore < shared.DubiousScore {
		price = price * 90 / 100
	}
	return price
}

// DepartureReserve is what the next departure may cost beyond fuel:
// wages, the insurance premium and the largest wormhole tax.
func DepartureReserve(g *game.Game) int {
	return g.Payroll() + g.InsurancePremium() + g.Ship.Spec(g.Tables()).CostOfFuel*game.WormholeTaxFactor
}

// FindOpportunities lists the runs from the current market, best first.
// Reserve credits are kept back from the purchase budget.
func (a *ArbitrageAnalyzer) FindOpportunities(g *game.Game, reserve int, minMargin float64, limit int) ([]*ArbitrageOpportunity, error) {
	if minMargin <= 0 {
		return nil, ErrInvalidMarginThreshold
	}
	t := g.Tables()
	freeBays := g.Bays() - g.Ship.FilledCargoBays()
	if freeBays <= 0 {
		return nil, ErrInvalidCargoCapacity
	}
	budget := g.Balance.Credits - reserve

	from := g.CurrentSystemID()
	var opps []*ArbitrageOpportunity
	for _, dest := range g.Reachable() {
		sys := &g.Galaxy.Systems[dest]
		viaWormhole := g.Galaxy.WormholeExists(from, dest)
		distance := 0
		if !viaWormhole {
			distance = g.Galaxy.Distance(from, dest)
		}

		for _, q := range g.Quotes() {
			if q.BuyPrice() <= 0 || q.Quantity() <= 0 {
				continue
			}
			units := utils.Min3(q.Quantity(), freeBays, budget/q.BuyPrice())
			sell := EstimateSellPrice(t, q.Commodity(), sys, g.PoliceScore)
			opp, err := NewArbitrageOpportunity(q.Commodity(), q.Name(), dest, q.BuyPrice(), sell, units, distance, viaWormhole, minMargin)
			if err != nil {
				continue
			}
			opp.SetScore(a.ScoreOpportunity(opp))
			opps = append(opps, opp)
		}
	}

	if len(opps) == 0 {
		return nil, ErrNoOpportunitiesFound
	}

	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].Score() > opps[j].Score()
	})
	if limit > 0 && len(opps) > limit {
		opps = opps[:limit]
	}
	return opps, nil
}

// ScoreOpportunity weighs expected profit and margin against the fuel the
// trip burns:
//
//	score = estimatedProfit × 1.0 + profitMargin × 10.0 - distance × 5.0
func (a *ArbitrageAnalyzer) ScoreOpportunity(opp *ArbitrageOpportunity) float64 {
	return float64(opp.EstimatedProfit())*a.profitWeight +
		opp.ProfitMargin()*a.marginWeight -
		float64(opp.Distance())*a.distancePenalty
}
