package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/application/game/commands"
	"github.com/10igma/spacetrader-web/internal/application/game/queries"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/test/helpers"
)

type fixture struct {
	ts  *helpers.TestSession
	ctx context.Context
	id  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ts := helpers.NewTestSession(t)
	ctx := context.Background()

	resp, err := commands.NewStartGameHandler(ts.Session).Handle(ctx, &commands.StartGameCommand{
		GameID:     "game-1",
		Commander:  "Jameson",
		Difficulty: shared.Normal,
		SeedX:      521288629,
		SeedY:      362436069,
		Skills:     [4]int{5, 5, 5, 5},
	})
	require.NoError(t, err)
	return &fixture{ts: ts, ctx: ctx, id: resp.(*commands.StartGameResponse).GameID}
}

func (f *fixture) status(t *testing.T) *queries.StatusResponse {
	t.Helper()
	resp, err := queries.NewGetStatusHandler(f.ts.Session).Handle(f.ctx, &queries.GetStatusQuery{GameID: f.id})
	require.NoError(t, err)
	return resp.(*queries.StatusResponse)
}

func (f *fixture) market(t *testing.T) *queries.MarketResponse {
	t.Helper()
	resp, err := queries.NewGetMarketHandler(f.ts.Session).Handle(f.ctx, &queries.GetMarketQuery{GameID: f.id})
	require.NoError(t, err)
	return resp.(*queries.MarketResponse)
}

func TestStartGame_PersistsTheNewGame(t *testing.T) {
	// Act
	f := newFixture(t)

	// Assert
	assert.Equal(t, "game-1", f.id)
	s := f.status(t)
	assert.Equal(t, "Jameson", s.Commander)
	assert.Equal(t, "Normal", s.Difficulty)
	assert.Equal(t, game.StartingCredits, s.Credits)
	assert.Zero(t, s.Day)
	assert.Equal(t, 100, s.Ship.Hull)
	assert.Nil(t, s.Encounter)
	assert.False(t, s.Ended)
}

func TestStartGame_RejectsInvalidSkills(t *testing.T) {
	ts := helpers.NewTestSession(t)

	_, err := commands.NewStartGameHandler(ts.Session).Handle(context.Background(), &commands.StartGameCommand{
		Commander:  "Jameson",
		Difficulty: shared.Normal,
		SeedX:      1,
		SeedY:      1,
		Skills:     [4]int{10, 10, 10, 10},
	})

	assert.Error(t, err)
}

func TestStartGame_RecordsTheOpeningMarket(t *testing.T) {
	f := newFixture(t)

	var traded string
	for _, q := range f.market(t).Quotes {
		if q.BuyPrice > 0 {
			traded = q.Commodity
			break
		}
	}
	require.NotEmpty(t, traded, "the start system sells nothing")

	resp, err := queries.NewGetPriceHistoryHandler(f.ts.Session).Handle(f.ctx, &queries.GetPriceHistoryQuery{
		GameID:    f.id,
		Commodity: traded,
	})

	require.NoError(t, err)
	history := resp.(*queries.PriceHistoryResponse)
	require.Len(t, history.Points, 1)
	assert.Zero(t, history.Points[0].Day)
	assert.Positive(t, history.Points[0].BuyPrice)
}

func TestTrade_BuyAndJettison(t *testing.T) {
	// Arrange
	f := newFixture(t)
	var quote *queries.QuoteDTO
	quotes := f.market(t).Quotes
	for i := range quotes {
		if quotes[i].BuyPrice > 0 && quotes[i].BuyPrice <= game.StartingCredits && quotes[i].Quantity > 0 {
			quote = &quotes[i]
			break
		}
	}
	require.NotNil(t, quote, "nothing affordable at the start system")
	trade := commands.NewTradeHandler(f.ts.Session)

	// Act
	bought, err := trade.Handle(f.ctx, &commands.TradeCommand{
		GameID:    f.id,
		Operation: commands.OperationBuy,
		Commodity: quote.Commodity,
		Amount:    1,
	})
	require.NoError(t, err)
	thrown, err := trade.Handle(f.ctx, &commands.TradeCommand{
		GameID:    f.id,
		Operation: commands.OperationJettison,
		Commodity: quote.Commodity,
		Amount:    1,
	})
	require.NoError(t, err)

	// Assert
	b := bought.(*commands.TradeResponse)
	assert.Equal(t, 1, b.Receipt.Units)
	assert.Equal(t, -quote.BuyPrice, b.Receipt.Amount)
	assert.Equal(t, 1, b.Held)

	j := thrown.(*commands.TradeResponse)
	assert.Equal(t, 1, j.Receipt.Units)
	assert.Zero(t, j.Held)
	assert.Equal(t, game.StartingCredits-quote.BuyPrice, f.status(t).Credits)

	txs, err := f.ts.Transactions.FindByGame(f.ctx, f.id, ledger.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, ledger.TransactionTypePurchaseCargo, txs[0].TransactionType())
}

func TestTrade_RejectsUnknownInput(t *testing.T) {
	f := newFixture(t)
	trade := commands.NewTradeHandler(f.ts.Session)

	_, err := trade.Handle(f.ctx, &commands.TradeCommand{GameID: f.id, Operation: "steal", Commodity: "Water", Amount: 1})
	assert.Error(t, err)

	_, err = trade.Handle(f.ctx, &commands.TradeCommand{GameID: f.id, Operation: commands.OperationBuy, Commodity: "Spice", Amount: 1})
	assert.ErrorContains(t, err, "unknown commodity")
}

func TestBuyFuel_FullTankBuysNothing(t *testing.T) {
	f := newFixture(t)

	resp, err := commands.NewBuyFuelHandler(f.ts.Session).Handle(f.ctx, &commands.BuyFuelCommand{GameID: f.id})

	require.NoError(t, err)
	r := resp.(*commands.BuyFuelResponse)
	assert.Zero(t, r.Receipt.Units)
	assert.Equal(t, 14, r.Fuel)
	assert.Equal(t, game.StartingCredits, r.Receipt.Credits)
}

func TestBank_BorrowAndRepayAll(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	_, err := commands.NewBorrowHandler(f.ts.Session).Handle(f.ctx, &commands.BorrowCommand{GameID: f.id, Amount: 300})
	require.NoError(t, err)
	resp, err := commands.NewPayBackHandler(f.ts.Session).Handle(f.ctx, &commands.PayBackCommand{GameID: f.id})
	require.NoError(t, err)

	// Assert
	r := resp.(*commands.BankResponse)
	assert.Equal(t, 300, r.Receipt.Units)
	assert.Zero(t, r.Debt)
	assert.Positive(t, r.MaxLoan)
	assert.Equal(t, game.StartingCredits, r.Receipt.Credits)
}

func TestInsurance_NeedsAnEscapePod(t *testing.T) {
	// Arrange
	f := newFixture(t)
	_, err := commands.NewBorrowHandler(f.ts.Session).Handle(f.ctx, &commands.BorrowCommand{GameID: f.id, Amount: 2000})
	require.NoError(t, err)
	h := commands.NewInsuranceHandler(f.ts.Session)

	// Act & Assert
	_, err = h.Handle(f.ctx, &commands.InsuranceCommand{GameID: f.id, Insure: true})
	assert.ErrorIs(t, err, game.ErrNoEscapePod)

	resp, err := h.Handle(f.ctx, &commands.BuyEscapePodCommand{GameID: f.id})
	require.NoError(t, err)
	assert.True(t, resp.(*commands.InsuranceResponse).EscapePod)

	resp, err = h.Handle(f.ctx, &commands.InsuranceCommand{GameID: f.id, Insure: true})
	require.NoError(t, err)
	r := resp.(*commands.InsuranceResponse)
	assert.True(t, r.Insured)
	assert.Positive(t, r.Premium)
}

func TestWarp_ToTheNearestSystem(t *testing.T) {
	// Arrange
	f := newFixture(t)
	resp, err := queries.NewGetGalaxyHandler(f.ts.Session).Handle(f.ctx, &queries.GetGalaxyQuery{GameID: f.id, ReachableOnly: true})
	require.NoError(t, err)
	var target *queries.SystemDTO
	systems := resp.(*queries.GalaxyResponse).Systems
	for i := range systems {
		if systems[i].Current || systems[i].Wormhole {
			continue
		}
		if target == nil || systems[i].Distance < target.Distance {
			target = &systems[i]
		}
	}
	require.NotNil(t, target, "nothing in range")

	// Act
	warped, err := commands.NewWarpHandler(f.ts.Session).Handle(f.ctx, &commands.WarpCommand{GameID: f.id, Target: target.Name})

	// Assert
	require.NoError(t, err)
	w := warped.(*commands.WarpResponse)
	assert.Equal(t, target.Name, w.To)
	assert.Equal(t, target.Distance, w.Distance)
	assert.False(t, w.ViaWormhole)
	if w.Encounter == nil {
		assert.True(t, w.Arrived)
		assert.Equal(t, 1, w.Day)
		assert.Equal(t, target.Name, f.status(t).System)
	} else {
		assert.False(t, w.Arrived)
		assert.NotEmpty(t, w.Encounter.Actions)
	}
}

func TestEncounterAction_WithoutEncounter(t *testing.T) {
	f := newFixture(t)

	_, err := commands.NewEncounterActionHandler(f.ts.Session).Handle(f.ctx, &commands.EncounterActionCommand{GameID: f.id, Action: "flee"})

	assert.ErrorIs(t, err, game.ErrNoEncounter)
}

func TestRetire_EndsTheGame(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	resp, err := commands.NewRetireHandler(f.ts.Session).Handle(f.ctx, &commands.RetireCommand{GameID: f.id})

	// Assert
	require.NoError(t, err)
	r := resp.(*commands.RetireResponse)
	s := f.status(t)
	assert.True(t, s.Ended)
	assert.Equal(t, s.Worth, r.Worth)
	assert.Equal(t, s.Score, r.Score)
	assert.Positive(t, r.Score)

	list := queries.NewListGamesHandler(f.ts.Session)
	active, err := list.Handle(f.ctx, &queries.ListGamesQuery{})
	require.NoError(t, err)
	assert.Empty(t, active.(*queries.ListGamesResponse).Games)
	all, err := list.Handle(f.ctx, &queries.ListGamesQuery{IncludeEnded: true})
	require.NoError(t, err)
	assert.Len(t, all.(*queries.ListGamesResponse).Games, 1)

	_, err = commands.NewBorrowHandler(f.ts.Session).Handle(f.ctx, &commands.BorrowCommand{GameID: f.id, Amount: 100})
	assert.ErrorIs(t, err, game.ErrGameOver)
}

func TestDeleteGame(t *testing.T) {
	f := newFixture(t)

	_, err := commands.NewDeleteGameHandler(f.ts.Session).Handle(f.ctx, &commands.DeleteGameCommand{GameID: f.id})
	require.NoError(t, err)

	_, err = queries.NewGetStatusHandler(f.ts.Session).Handle(f.ctx, &queries.GetStatusQuery{GameID: f.id})
	assert.Error(t, err)
}

func TestHandlers_RejectForeignRequests(t *testing.T) {
	ts := helpers.NewTestSession(t)

	_, err := commands.NewWarpHandler(ts.Session).Handle(context.Background(), &commands.RetireCommand{})
	assert.ErrorContains(t, err, "invalid request type")
	_, err = commands.NewCrewHandler(ts.Session).Handle(context.Background(), &commands.WarpCommand{})
	assert.ErrorContains(t, err, "invalid request type")
}
