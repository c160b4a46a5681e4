package market_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/rng"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

const (
	dictatorship    = 7
	anarchy         = 0
	cyberneticState = 5
)

// scripted returns its values in order, then repeats the last one
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) Below(n int) int {
	if n <= 0 {
		return 0
	}
	v := s.values[len(s.values)-1]
	if s.pos < len(s.values) {
		v = s.values[s.pos]
		s.pos++
	}
	return v % n
}

func zeros() *scripted {
	return &scripted{values: []int{0}}
}

func newSystem(politics, tech, size int) *system.SolarSystem {
	return &system.SolarSystem{
		Politics:  politics,
		TechLevel: tech,
		Size:      size,
		Resource:  system.NothingSpecial,
		Status:    system.Uneventful,
		Special:   system.NoSpecial,
	}
}

func TestStandardPrice(t *testing.T) {
	tb := tables.MustLoad()

	tests := []struct {
		name      string
		sys       *system.SolarSystem
		resource  system.Resource
		commodity int
		want      int
	}{
		{"base", newSystem(dictatorship, 5, 2), system.NothingSpecial, tables.Water, 41},
		{"cheap resource", newSystem(dictatorship, 5, 2), system.LotsOfWater, tables.Water, 30},
		{"expensive resource", newSystem(dictatorship, 5, 2), system.Desert, tables.Water, 54},
		{"wanted", newSystem(anarchy, 2, 0), system.NothingSpecial, tables.Food, 143},
		{"forbidden", newSystem(cyberneticState, 6, 1), system.NothingSpecial, tables.Narcotics, 0},
		{"not used", newSystem(dictatorship, 3, 1), system.NothingSpecial, tables.Robots, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.sys.Resource = tt.resource
			assert.Equal(t, tt.want, market.StandardPrice(tb, tt.commodity, tt.sys))
		})
	}
}

func TestDeterminePrices_WithoutVariance(t *testing.T) {
	tb := tables.MustLoad()
	sys := newSystem(dictatorship, 5, 2)

	p := market.DeterminePrices(tb, sys, zeros(), 5, shared.CleanScore)
	assert.Equal(t, 41, p.Sell[tables.Water])
	assert.Equal(t, 44, p.Buy[tables.Water])

	// robots can be sold here but not bought
	assert.Equal(t, 3915, p.Sell[tables.Robots])
	assert.Equal(t, 0, p.Buy[tables.Robots])
}

func TestDeterminePrices_CriminalPaysIntermediary(t *testing.T) {
	tb := tables.MustLoad()
	sys := newSystem(dictatorship, 5, 2)

	p := market.DeterminePrices(tb, sys, zeros(), 5, shared.DubiousScore-1)
	assert.Equal(t, 36, p.Sell[tables.Water])
	assert.Equal(t, 43, p.Buy[tables.Water])
}

func TestDeterminePrices_DoublePriceStatus(t *testing.T) {
	tb := tables.MustLoad()
	sys := newSystem(dictatorship, 5, 2)
	sys.Status = system.Drought

	p := market.DeterminePrices(tb, sys, zeros(), 5, shared.CleanScore)
	assert.Equal(t, 61, p.Sell[tables.Water])
}

func TestDeterminePrices_BuyAlwaysAboveSell(t *testing.T) {
	tb := tables.MustLoad()
	g := rng.New(12, 34)
	for politics := 0; politics < tables.MaxPolitics; politics++ {
		for tech := 0; tech < system.MaxTechLevel; tech++ {
			sys := newSystem(politics, tech, tech%system.MaxSize)
			for trader := 1; trader <= 13; trader += 3 {
				p := market.DeterminePrices(tb, sys, g, trader, shared.CleanScore)
				for i := range p.Buy {
					require.GreaterOrEqual(t, p.Sell[i], 0)
					if p.Buy[i] > 0 {
						require.Greater(t, p.Buy[i], p.Sell[i])
					}
				}
			}
		}
	}
}

func TestRecalculateSellPrices(t *testing.T) {
	p := market.Prices{}
	p.Sell[tables.Water] = 36
	p.Sell[tables.Ore] = 90
	market.RecalculateSellPrices(&p)
	assert.Equal(t, 40, p.Sell[tables.Water])
	assert.Equal(t, 100, p.Sell[tables.Ore])
}

func TestInitQuantities(t *testing.T) {
	tb := tables.MustLoad()
	sys := newSystem(dictatorship, 5, 2)
	market.InitQuantities(tb, sys, shared.Normal, zeros())

	assert.Equal(t, 18, sys.Quantities[tables.Water])
	assert.Equal(t, 12, sys.Quantities[tables.Furs])
	assert.Equal(t, 24, sys.Quantities[tables.Games])
	assert.Equal(t, 21, sys.Quantities[tables.Narcotics])
	assert.Equal(t, 0, sys.Quantities[tables.Robots])
}

func TestInitQuantities_NeverNegative(t *testing.T) {
	tb := tables.MustLoad()
	g := rng.New(0, 0)
	for politics := 0; politics < tables.MaxPolitics; politics++ {
		for tech := 0; tech < system.MaxTechLevel; tech++ {
			sys := newSystem(politics, tech, 0)
			sys.Status = system.Boredom
			market.InitQuantities(tb, sys, shared.Impossible, g)
			for _, q := range sys.Quantities {
				require.GreaterOrEqual(t, q, 0)
			}
		}
	}
}

func TestChangeQuantities(t *testing.T) {
	tb := tables.MustLoad()
	systems := []system.SolarSystem{
		*newSystem(dictatorship, 5, 2),
		*newSystem(dictatorship, 5, 2),
		*newSystem(dictatorship, 5, 2),
		*newSystem(dictatorship, 5, 2),
	}
	systems[0].Quantities[tables.Water] = 7
	systems[1].CountDown = 10
	systems[2].CountDown = 1
	systems[3].CountDown = 3
	systems[3].Quantities[tables.Water] = 7
	systems[3].Quantities[tables.Robots] = 7

	market.ChangeQuantities(tb, systems, shared.Normal, &scripted{values: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 1, 1}})

	assert.Equal(t, 0, systems[0].CountDown)
	assert.Equal(t, 7, systems[0].Quantities[tables.Water])

	assert.Equal(t, shared.Normal.StartCountdown(), systems[1].CountDown)

	assert.Equal(t, 0, systems[2].CountDown)
	assert.Equal(t, 18, systems[2].Quantities[tables.Water])

	assert.Equal(t, 2, systems[3].CountDown)
	assert.Equal(t, 9, systems[3].Quantities[tables.Water])
	assert.Equal(t, 0, systems[3].Quantities[tables.Robots])
}

type hold struct {
	ship        ship.Ship
	buyingPrice [tables.MaxTradeItem]int
	credits     int
	policeScore int
}

func (h *hold) Hold() market.Hold {
	return market.Hold{Ship: &h.ship, BuyingPrice: &h.buyingPrice, Credits: &h.credits, PoliceScore: &h.policeScore}
}

func newHold(credits int) *hold {
	return &hold{ship: ship.NewEmpty(tables.GnatType), credits: credits}
}

func TestBuyCargo(t *testing.T) {
	tests := []struct {
		name        string
		order       market.BuyOrder
		wantUnits   int
		wantCredits int
	}{
		{"limited by bays", market.BuyOrder{Commodity: tables.Water, Amount: 100, Bays: 15}, 15, 340},
		{"limited by amount", market.BuyOrder{Commodity: tables.Water, Amount: 3, Bays: 15}, 3, 868},
		{"reserve kept", market.BuyOrder{Commodity: tables.Water, Amount: 100, Bays: 15, Reserve: 900}, 2, 912},
		{"leave empty", market.BuyOrder{Commodity: tables.Water, Amount: 100, Bays: 15, LeaveEmpty: 15}, 0, 1000},
		{"limited by stock", market.BuyOrder{Commodity: tables.Water, Amount: 100, Bays: 50}, 18, 208},
		{"not sold here", market.BuyOrder{Commodity: tables.Robots, Amount: 5, Bays: 15}, 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newSystem(dictatorship, 5, 2)
			sys.Quantities[tables.Water] = 18
			sys.Quantities[tables.Robots] = 5
			var p market.Prices
			p.Buy[tables.Water] = 44

			h := newHold(1000)
			n, err := market.BuyCargo(h.Hold(), sys, &p, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnits, n)
			assert.Equal(t, tt.wantCredits, h.credits)
			assert.Equal(t, n, h.ship.Cargo[tt.order.Commodity])
			assert.Equal(t, n*p.Buy[tt.order.Commodity], h.buyingPrice[tt.order.Commodity])
		})
	}
}

func TestBuyCargo_ContractViolations(t *testing.T) {
	sys := newSystem(dictatorship, 5, 2)
	var p market.Prices
	h := newHold(1000)

	_, err := market.BuyCargo(h.Hold(), sys, &p, market.BuyOrder{Commodity: 10, Amount: 1, Bays: 15})
	var oob *shared.IndexOutOfRangeError
	assert.True(t, errors.As(err, &oob))

	_, err = market.BuyCargo(h.Hold(), sys, &p, market.BuyOrder{Commodity: 0, Amount: -1, Bays: 15})
	var neg *shared.NegativeAmountError
	assert.True(t, errors.As(err, &neg))
}

func TestSellCargo_Sell(t *testing.T) {
	var p market.Prices
	p.Sell[tables.Water] = 36
	h := newHold(100)
	h.ship.Cargo[tables.Water] = 10
	h.buyingPrice[tables.Water] = 400

	n, err := market.SellCargo(h.Hold(), &p, market.SellOrder{Commodity: tables.Water, Amount: 4, Operation: market.Sell}, shared.Normal, zeros())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 244, h.credits)
	assert.Equal(t, 240, h.buyingPrice[tables.Water])
	assert.Equal(t, 6, h.ship.Cargo[tables.Water])

	n, err = market.SellCargo(h.Hold(), &p, market.SellOrder{Commodity: tables.Furs, Amount: 4, Operation: market.Sell}, shared.Normal, zeros())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSellCargo_DumpLimitedByCredits(t *testing.T) {
	var p market.Prices
	h := newHold(40)
	h.ship.Cargo[tables.Ore] = 10

	n, err := market.SellCargo(h.Hold(), &p, market.SellOrder{Commodity: tables.Ore, Amount: 10, Operation: market.Dump}, shared.Normal, zeros())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 10, h.credits)
	assert.Equal(t, 8, h.ship.Cargo[tables.Ore])
}

func TestSellCargo_Jettison(t *testing.T) {
	tests := []struct {
		name   string
		roll   int
		before int
		after  int
	}{
		{"clean record drops to dubious", 0, shared.CleanScore + 10, shared.DubiousScore},
		{"dubious record decrements", 2, shared.DubiousScore, shared.DubiousScore - 1},
		{"floored at psychopath", 0, shared.PsychopathScore, shared.PsychopathScore},
		{"not caught", 3, shared.CleanScore, shared.CleanScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p market.Prices
			h := newHold(0)
			h.policeScore = tt.before
			h.ship.Cargo[tables.Food] = 5

			n, err := market.SellCargo(h.Hold(), &p, market.SellOrder{Commodity: tables.Food, Amount: 5, Operation: market.Jettison}, shared.Normal, &scripted{values: []int{tt.roll}})
			require.NoError(t, err)
			assert.Equal(t, 5, n)
			assert.Equal(t, tt.after, h.policeScore)
			assert.Equal(t, 0, h.credits)
		})
	}
}

func TestSellCargo_UnknownOperation(t *testing.T) {
	var p market.Prices
	h := newHold(0)
	_, err := market.SellCargo(h.Hold(), &p, market.SellOrder{Commodity: 0, Amount: 1, Operation: market.Operation(9)}, shared.Normal, zeros())
	assert.ErrorIs(t, err, market.ErrUnknownOperation)
}

func TestSnapshotPrices_SkipsUntraded(t *testing.T) {
	var p market.Prices
	p.Buy[tables.Water] = 44
	p.Sell[tables.Water] = 41
	p.Sell[tables.Robots] = 3915
	var q [tables.MaxTradeItem]int
	q[tables.Water] = 18

	entries, err := market.SnapshotPrices("game-1", 3, 17, q, &p, time.Unix(0, 0))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, tables.Water, entries[0].Commodity())
	assert.Equal(t, 18, entries[0].Quantity())
	assert.InDelta(t, 7.317, entries[0].Spread(), 0.01)

	_, err = market.SnapshotPrices("", 3, 17, q, &p, time.Unix(0, 0))
	assert.ErrorIs(t, err, market.ErrInvalidGameID)
}

func TestBoard(t *testing.T) {
	tb := tables.MustLoad()
	sys := newSystem(dictatorship, 5, 2)
	sys.Quantities[tables.Water] = 18
	p := market.DeterminePrices(tb, sys, zeros(), 5, shared.CleanScore)
	var cargo [tables.MaxTradeItem]int
	cargo[tables.Water] = 2

	board := market.Board(tb, sys, &p, cargo)
	require.Len(t, board, tables.MaxTradeItem)
	assert.Equal(t, "Water", board[0].Name())
	assert.Equal(t, 2, board[0].Held())
	assert.True(t, board[0].Traded())
}
