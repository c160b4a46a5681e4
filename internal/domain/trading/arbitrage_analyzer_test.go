package trading_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/internal/domain/trading"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(tables.MustLoad(), game.Params{
		ID:         "game-1",
		Commander:  "Jameson",
		Difficulty: shared.Normal,
		SeedX:      521288629,
		SeedY:      362436069,
		Skills:     [crew.MaxSkillKind]int{5, 5, 5, 5},
	})
	require.NoError(t, err)
	return g
}

func TestNewArbitrageOpportunity(t *testing.T) {
	opp, err := trading.NewArbitrageOpportunity(tables.Water, "Water", 7, 40, 50, 10, 12, false, 5)
	require.NoError(t, err)

	assert.Equal(t, 10, opp.ProfitPerUnit())
	assert.InDelta(t, 25.0, opp.ProfitMargin(), 0.001)
	assert.Equal(t, 100, opp.EstimatedProfit())
	assert.Equal(t, 7, opp.Destination())
}

func TestNewArbitrageOpportunity_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		buy, sell int
		units     int
		minMargin float64
		wantErr   error
	}{
		{name: "no profit", buy: 50, sell: 50, units: 10, minMargin: 1},
		{name: "no room", buy: 40, sell: 50, units: 0, minMargin: 1, wantErr: trading.ErrInvalidCargoCapacity},
		{name: "thin margin", buy: 100, sell: 101, units: 10, minMargin: 5, wantErr: trading.ErrInsufficientProfit},
		{name: "untraded", buy: 0, sell: 50, units: 10, minMargin: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trading.NewArbitrageOpportunity(tables.Water, "Water", 1, tt.buy, tt.sell, tt.units, 0, false, tt.minMargin)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestEstimateSellPrice(t *testing.T) {
	// Arrange
	g := newGame(t)
	tb := g.Tables()
	sys := *g.CurrentSystem()
	commodity := -1
	for i := range tb.TradeItems {
		if market.StandardPrice(tb, i, &sys) > 0 {
			commodity = i
			break
		}
	}
	require.GreaterOrEqual(t, commodity, 0)
	standard := market.StandardPrice(tb, commodity, &sys)

	// Act
	sys.Status = (tb.TradeItems[commodity].DoublePriceStatus + 1) % system.MaxStatus
	plain := trading.EstimateSellPrice(tb, commodity, &sys, shared.CleanScore)
	criminal := trading.EstimateSellPrice(tb, commodity, &sys, shared.DubiousScore-1)
	sys.Status = tb.TradeItems[commodity].DoublePriceStatus
	wanted := trading.EstimateSellPrice(tb, commodity, &sys, shared.CleanScore)

	// Assert
	assert.Equal(t, standard, plain)
	assert.Equal(t, standard*90/100, criminal)
	assert.Equal(t, (standard*3)>>1, wanted)
}

func TestFindOpportunities_BestFirstWithinBudget(t *testing.T) {
	g := newGame(t)
	analyzer := trading.NewArbitrageAnalyzer()

	opps, err := analyzer.FindOpportunities(g, 0, 1, 0)
	if errors.Is(err, trading.ErrNoOpportunitiesFound) {
		t.Skip("start market offers no profitable run for this seed")
	}
	require.NoError(t, err)

	reachable := map[int]bool{}
	for _, s := range g.Reachable() {
		reachable[s] = true
	}
	for i, opp := range opps {
		assert.True(t, reachable[opp.Destination()])
		assert.LessOrEqual(t, opp.Units()*opp.BuyPrice(), g.Balance.Credits)
		assert.LessOrEqual(t, opp.Units(), g.Bays())
		if i > 0 {
			assert.GreaterOrEqual(t, opps[i-1].Score(), opp.Score())
		}
	}
}

func TestFindOpportunities_Limits(t *testing.T) {
	g := newGame(t)
	analyzer := trading.NewArbitrageAnalyzer()

	_, err := analyzer.FindOpportunities(g, 0, 0, 0)
	assert.ErrorIs(t, err, trading.ErrInvalidMarginThreshold)

	_, err = analyzer.FindOpportunities(g, g.Balance.Credits, 1, 0)
	assert.ErrorIs(t, err, trading.ErrNoOpportunitiesFound, "nothing is affordable with every credit reserved")

	opps, err := analyzer.FindOpportunities(g, 0, 1, 1)
	if err == nil {
		assert.Len(t, opps, 1)
	}
}
