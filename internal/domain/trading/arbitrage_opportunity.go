package trading

import (
	"errors"
	"fmt"
)

// ArbitrageOpportunity is a buy-here, sell-there trip for one commodity.
//
// Price terminology (from the commander's perspective):
//   - BuyPrice: what the local market charges per unit
//   - SellPrice: what the destination is expected to pay per unit
//
// The destination price is an estimate: quotes are only drawn when the
// commander docks, so the analyzer works from the system's standard price.
type ArbitrageOpportunity struct {
	commodity       int
	name            string
	destination     int
	buyPrice        int
	sellPrice       int
	units           int
	distance        int
	viaWormhole     bool
	profitPerUnit   int     // sellPrice - buyPrice
	profitMargin    float64 // (profitPerUnit / buyPrice) × 100
	estimatedProfit int     // profitPerUnit × units
	score           float64
}

// NewArbitrageOpportunity validates a trip and derives its profit figures.
// It fails when the trip cannot make money or cannot carry any cargo.
func NewArbitrageOpportunity(
	commodity int,
	name string,
	destination int,
	buyPrice int,
	sellPrice int,
	units int,
	distance int,
	viaWormhole bool,
	minMargin float64,
) (*ArbitrageOpportunity, error) {
	if name == "" {
		return nil, errors.New("commodity name required")
	}
	if buyPrice <= 0 {
		return nil, errors.New("buy price must be positive")
	}
	if sellPrice <= 0 {
		return nil, errors.New("sell price must be positive")
	}
	if units <= 0 {
		return nil, ErrInvalidCargoCapacity
	}
	if sellPrice <= buyPrice {
		return nil, fmt.Errorf("no profit: sell price (%d) <= buy price (%d)", sellPrice, buyPrice)
	}

	perUnit := sellPrice - buyPrice
	margin := float64(perUnit) / float64(buyPrice) * 100
	if margin < minMargin {
		return nil, fmt.Errorf("%w: %.1f%% < %.1f%%", ErrInsufficientProfit, margin, minMargin)
	}

	return &ArbitrageOpportunity{
		commodity:       commodity,
		name:            name,
		destination:     destination,
		buyPrice:        buyPrice,
		sellPrice:       sellPrice,
		units:           units,
		distance:        distance,
		viaWormhole:     viaWormhole,
		profitPerUnit:   perUnit,
		profitMargin:    margin,
		estimatedProfit: perUnit * units,
	}, nil
}

func (o *ArbitrageOpportunity) Commodity() int { return o.commodity }
func (o *ArbitrageOpportunity) Name() string { return o.name }
func (o *ArbitrageOpportunity) Destination() int { return o.destination }
func (o *ArbitrageOpportunity) BuyPrice() int { return o.buyPrice }
func (o *ArbitrageOpportunity) SellPrice() int { return o.sellPrice }
func (o *ArbitrageOpportunity) Units() int { return o.units }
func (o *ArbitrageOpportunity) Distance() int { return o.distance }
func (o *ArbitrageOpportunity) ViaWormhole() bool { return o.viaWormhole }
func (o *ArbitrageOpportunity) ProfitPerUnit() int { return o.profitPerUnit }
func (o *ArbitrageOpportunity) ProfitMargin() float64 { return o.profitMargin }
func (o *ArbitrageOpportunity) EstimatedProfit() int { return o.estimatedProfit }
func (o *ArbitrageOpportunity) Score() float64 { return o.score }
func (o *ArbitrageOpportunity) SetScore(score float64) { o.score = score }

func (o *ArbitrageOpportunity) String() string {
	return fmt.Sprintf("%d %s to system %d: %d -> %d (%.1f%%, ~%d credits)",
		o.units, o.name, o.destination, o.buyPrice, o.sellPrice, o.profitMargin, o.estimatedProfit)
}
