package helpers

import (
	"testing"
	"time"

	"github.com/10igma/spacetrader-web/internal/adapters/persistence"
	"github.com/10igma/spacetrader-web/internal/application/common"
	ledgerCmd "github.com/10igma/spacetrader-web/internal/application/ledger/commands"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Epoch is the mock clock's start time in tests
var Epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// TestSession bundles a session with the repositories behind it
type TestSession struct {
	Session      *common.Session
	Games        *persistence.GormGameRepository
	Transactions *persistence.GormTransactionRepository
	Prices       *persistence.GormPriceHistoryRepository
	Clock        *shared.MockClock
}

// NewTestSession wires a session to a fresh in-memory database
func NewTestSession(t *testing.T) *TestSession {
	db := NewTestDB(t)
	clock := shared.NewMockClock(Epoch)

	ts := &TestSession{
		Games:        persistence.NewGormGameRepository(db, clock),
		Transactions: persistence.NewGormTransactionRepository(db),
		Prices:       persistence.NewGormPriceHistoryRepository(db),
		Clock:        clock,
	}
	journal := ledgerCmd.NewRecordTransactionHandler(ts.Transactions)
	ts.Session = common.NewSession(ts.Games, journal, ts.Prices, tables.MustLoad(), clock)
	return ts
}
