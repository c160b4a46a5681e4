package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/10igma/spacetrader-web/internal/application/common"
	gameCommands "github.com/10igma/spacetrader-web/internal/application/game/commands"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/encounter"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/trading"
)

// DefaultMinMargin is the smallest expected margin, in percent, worth a run
const DefaultMinMargin = 5.0

// Reasons the autopilot stops
const (
	StopDaysElapsed = "days elapsed"
	StopGameOver    = "game over"
	StopStranded    = "stranded"
	StopCancelled   = "cancelled"
)

// RunAutopilotCommand plays a game on its own: sell the hold, refuel,
// repair, buy the best cargo run and warp, until Days have passed.
type RunAutopilotCommand struct {
	GameID        string
	Days          int
	DaysPerSecond float64 // Warps per second; zero means unpaced
	MinMargin     float64 // Optional: defaults to DefaultMinMargin
}

// RunAutopilotResponse summarizes the session
type RunAutopilotResponse struct {
	StartDay     int
	EndDay       int
	Trips        int
	Encounters   int
	StartCredits int
	EndCredits   int
	StartWorth   int
	EndWorth     int
	StopReason   string
}

// RunAutopilotHandler drives the game through the mediator so every step is
// journaled and timed like a command issued by hand.
type RunAutopilotHandler struct {
	mediator mediator.Mediator
	session  *common.Session
	analyzer *trading.ArbitrageAnalyzer
}

// NewRunAutopilotHandler creates a new handler
func NewRunAutopilotHandler(m mediator.Mediator, session *common.Session) *RunAutopilotHandler {
	return &RunAutopilotHandler{
		mediator: m,
		session:  session,
		analyzer: trading.NewArbitrageAnalyzer(),
	}
}

// Handle executes the command
func (h *RunAutopilotHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunAutopilotCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunAutopilotCommand")
	}
	if cmd.Days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", cmd.Days)
	}
	minMargin := cmd.MinMargin
	if minMargin <= 0 {
		minMargin = DefaultMinMargin
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cmd.DaysPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cmd.DaysPerSecond), 1)
	}

	logger := common.LoggerFromContext(ctx)

	g, err := h.session.Load(ctx, cmd.GameID)
	if err != nil {
		return nil, err
	}
	resp := &RunAutopilotResponse{
		StartDay:     g.Quests.Days,
		StartCredits: g.Balance.Credits,
		StartWorth:   g.Worth(),
	}

	logger.Log("INFO", "Autopilot engaged", map[string]interface{}{
		"game_id": cmd.GameID,
		"days":    cmd.Days,
		"pace":    cmd.DaysPerSecond,
	})

	for {
		if g.Ended {
			resp.StopReason = StopGameOver
			break
		}
		if g.Quests.Days-resp.StartDay >= cmd.Days && g.Encounter == nil {
			resp.StopReason = StopDaysElapsed
			break
		}
		if ctx.Err() != nil {
			resp.StopReason = StopCancelled
			break
		}

		if g.Encounter != nil {
			resp.Encounters++
			if err := h.answer(ctx, g); err != nil {
				return nil, err
			}
		} else {
			stranded, err := h.trip(ctx, g, minMargin, limiter)
			if err != nil {
				return nil, err
			}
			if stranded {
				resp.StopReason = StopStranded
				break
			}
			resp.Trips++
		}

		if g, err = h.session.Load(ctx, cmd.GameID); err != nil {
			return nil, err
		}
	}

	resp.EndDay = g.Quests.Days
	resp.EndCredits = g.Balance.Credits
	resp.EndWorth = g.Worth()

	logger.Log("INFO", "Autopilot disengaged", map[string]interface{}{
		"game_id":    cmd.GameID,
		"reason":     resp.StopReason,
		"trips":      resp.Trips,
		"encounters": resp.Encounters,
		"credits":    resp.EndCredits,
	})
	return resp, nil
}

// answer picks the least risky reply to the pending encounter
func (h *RunAutopilotHandler) answer(ctx context.Context, g *game.Game) error {
	action := game.Ignore
	switch typ := g.Encounter.Type; {
	case typ == encounter.PoliceInspection:
		action = game.Submit
	case typ.Hostile():
		action = game.Flee
	}
	_, err := h.mediator.Send(ctx, &gameCommands.EncounterActionCommand{GameID: g.ID, Action: action.String()})
	return err
}

// trip docks, trades and warps once. It reports stranded when no system
// is in reach or the departure cannot be paid.
func (h *RunAutopilotHandler) trip(ctx context.Context, g *game.Game, minMargin float64, limiter *rate.Limiter) (bool, error) {
	if err := h.dock(ctx, g); err != nil {
		return false, err
	}
	g, err := h.session.Load(ctx, g.ID)
	if err != nil {
		return false, err
	}

	target := -1
	opps, err := h.analyzer.FindOpportunities(g, trading.DepartureReserve(g), minMargin, 1)
	switch {
	case err == nil:
		opp := opps[0]
		target = opp.Destination()
		if _, err := h.mediator.Send(ctx, &gameCommands.TradeCommand{
			GameID:    g.ID,
			Operation: gameCommands.OperationBuy,
			Commodity: strconv.Itoa(opp.Commodity()),
			Amount:    opp.Units(),
		}); err != nil {
			return false, err
		}
	case errors.Is(err, trading.ErrNoOpportunitiesFound), errors.Is(err, trading.ErrInvalidCargoCapacity):
		target = fallbackTarget(g)
	default:
		return false, err
	}
	if target < 0 {
		return true, nil
	}

	if err := limiter.Wait(ctx); err != nil {
		return false, nil
	}
	_, err = h.mediator.Send(ctx, &gameCommands.WarpCommand{GameID: g.ID, Target: strconv.Itoa(target)})
	if errors.Is(err, game.ErrInsufficientCredits) || errors.Is(err, game.ErrDebtTooLarge) {
		return true, nil
	}
	return false, err
}

// dock sells what the market buys, then tops up fuel and hull
func (h *RunAutopilotHandler) dock(ctx context.Context, g *game.Game) error {
	for commodity, held := range g.Ship.Cargo {
		if held == 0 || g.Prices.Sell[commodity] <= 0 {
			continue
		}
		if _, err := h.mediator.Send(ctx, &gameCommands.TradeCommand{
			GameID:    g.ID,
			Operation: gameCommands.OperationSell,
			Commodity: strconv.Itoa(commodity),
			Amount:    held,
		}); err != nil {
			return err
		}
	}

	t := g.Tables()
	if g.Ship.CurrentFuel(t) < g.Ship.FuelTanks(t) {
		if _, err := h.mediator.Send(ctx, &gameCommands.BuyFuelCommand{GameID: g.ID}); err != nil {
			return err
		}
	}
	if g.Ship.Hull < g.Ship.HullStrength(t, g.Quests.HullUpgraded()) {
		if _, err := h.mediator.Send(ctx, &gameCommands.RepairCommand{GameID: g.ID}); err != nil {
			return err
		}
	}
	return nil
}

// fallbackTarget is the nearest reachable system, or -1
func fallbackTarget(g *game.Game) int {
	from := g.CurrentSystemID()
	best, bestDist := -1, 0
	for _, s := range g.Reachable() {
		d := 0
		if !g.Galaxy.WormholeExists(from, s) {
			d = g.Galaxy.Distance(from, s)
		}
		if best < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}
