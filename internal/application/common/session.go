package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// JournalRecorder persists the credit movements of one command
type JournalRecorder interface {
	RecordJournal(ctx context.Context, gameID string, entries []*ledger.Transaction) error
}

// Session runs domain commands against saved games. Each command works on
// a freshly loaded copy; nothing is saved when the command fails, so a
// rejected command leaves no trace.
type Session struct {
	games   game.Repository
	journal JournalRecorder
	prices  market.PriceHistoryRepository
	tables  *tables.Tables
	clock   shared.Clock

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSession creates a session. The journal recorder and the price history
// repository are optional.
func NewSession(
	games game.Repository,
	journal JournalRecorder,
	prices market.PriceHistoryRepository,
	t *tables.Tables,
	clock shared.Clock,
) *Session {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Session{
		games:   games,
		journal: journal,
		prices:  prices,
		tables:  t,
		clock:   clock,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Session) Tables() *tables.Tables {
	return s.tables
}

// lock serializes commands on one game
func (s *Session) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Load returns a saved game with its tables attached
func (s *Session) Load(ctx context.Context, id string) (*game.Game, error) {
	g, err := s.games.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load game %s: %w", id, err)
	}
	g.Attach(s.tables)
	return g, nil
}

// List summarizes every saved game
func (s *Session) List(ctx context.Context) ([]game.Summary, error) {
	summaries, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return summaries, nil
}

// Delete removes a saved game
func (s *Session) Delete(ctx context.Context, id string) error {
	unlock := s.lock(id)
	defer unlock()

	if err := s.games.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}
	return nil
}

// PriceHistory returns the recorded prices of a commodity in a system,
// newest first. It is empty when no history is kept.
func (s *Session) PriceHistory(ctx context.Context, gameID string, systemID, commodity, limit int) ([]*market.PriceHistory, error) {
	if s.prices == nil {
		return nil, nil
	}
	history, err := s.prices.History(ctx, gameID, systemID, commodity, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}
	return history, nil
}

// Create persists a new game and records the opening market
func (s *Session) Create(ctx context.Context, g *game.Game) error {
	unlock := s.lock(g.ID)
	defer unlock()

	if err := s.games.Save(ctx, g); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return s.recordMarket(ctx, g)
}

// Apply loads a game, runs fn against it and saves the result together
// with the journal fn produced.
func (s *Session) Apply(ctx context.Context, id string, fn func(g *game.Game) error) (*game.Game, error) {
	unlock := s.lock(id)
	defer unlock()

	logger := LoggerFromContext(ctx)

	g, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	journal := g.BeginJournal(s.clock)
	day, system := g.Quests.Days, g.CurrentSystemID()

	if err := fn(g); err != nil {
		logger.Log("WARNING", "Command rejected", map[string]interface{}{
			"game_id": id,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := s.games.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if s.journal != nil {
		if err := s.journal.RecordJournal(ctx, id, journal.Entries()); err != nil {
			return nil, fmt.Errorf("failed to persist journal: %w", err)
		}
	}

	if g.Quests.Days != day || g.CurrentSystemID() != system {
		if err := s.recordMarket(ctx, g); err != nil {
			return nil, err
		}
		logger.Log("INFO", "Arrived", map[string]interface{}{
			"game_id": id,
			"day":     g.Quests.Days,
			"system":  s.tables.SystemName(g.CurrentSystem().NameIndex),
			"credits": g.Balance.Credits,
		})
	}
	return g, nil
}

// recordMarket snapshots the prices of the system the commander docked at
func (s *Session) recordMarket(ctx context.Context, g *game.Game) error {
	sys := g.CurrentSystem()
	name := s.tables.SystemName(sys.NameIndex)
	for _, q := range g.Quotes() {
		if q.Traded() {
			metrics.RecordQuote(g.ID, name, q.Name(), q.BuyPrice(), q.SellPrice(), q.Quantity())
		}
	}

	if s.prices == nil {
		return nil
	}
	snapshot, err := market.SnapshotPrices(g.ID, g.Quests.Days, g.CurrentSystemID(), sys.Quantities, &g.Prices, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to snapshot prices: %w", err)
	}
	if len(snapshot) == 0 {
		return nil
	}
	if err := s.prices.Record(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to record price history: %w", err)
	}
	return nil
}

// ResolveCommodity accepts a commodity name (any case) or index
func ResolveCommodity(t *tables.Tables, s string) (int, error) {
	for i, item := range t.TradeItems {
		if strings.EqualFold(item.Name, s) {
			return i, nil
		}
	}
	if idx, err := strconv.Atoi(s); err == nil {
		if err := shared.CheckIndex("commodity", idx, len(t.TradeItems)); err != nil {
			return 0, err
		}
		return idx, nil
	}
	return 0, fmt.Errorf("unknown commodity: %s", s)
}

// ResolveSystem accepts a system name (any case) or id in the game's galaxy
func ResolveSystem(g *game.Game, s string) (int, error) {
	t := g.Tables()
	for i := range g.Galaxy.Systems {
		if strings.EqualFold(t.SystemName(g.Galaxy.Systems[i].NameIndex), s) {
			return i, nil
		}
	}
	if idx, err := strconv.Atoi(s); err == nil {
		if err := shared.CheckIndex("solar system", idx, len(g.Galaxy.Systems)); err != nil {
			return 0, err
		}
		return idx, nil
	}
	return 0, fmt.Errorf("unknown solar system: %s", s)
}
