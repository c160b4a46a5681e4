package ledger

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// Journal collects the transactions produced by one command. Zero amounts
// are skipped, since a no-op purchase moves no credits.
type Journal struct {
	gameID  string
	clock   shared.Clock
	entries []*Transaction
}

func NewJournal(gameID string, clock shared.Clock) *Journal {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Journal{gameID: gameID, clock: clock}
}

// Record appends a transaction moving amount credits from balanceBefore
func (j *Journal) Record(day int, t TransactionType, amount, balanceBefore int, description string) error {
	if amount == 0 {
		return nil
	}
	tx, err := NewTransaction(j.gameID, day, j.clock.Now(), t, amount, balanceBefore, description, nil)
	if err != nil {
		return err
	}
	j.entries = append(j.entries, tx)
	return nil
}

// Entries returns the recorded transactions in order
func (j *Journal) Entries() []*Transaction {
	out := make([]*Transaction, len(j.entries))
	copy(out, j.entries)
	return out
}

// Summary totals the journal per category
func Summary(entries []*Transaction) map[Category]int {
	out := make(map[Category]int)
	for _, tx := range entries {
		out[tx.Category()] += tx.Amount()
	}
	return out
}
