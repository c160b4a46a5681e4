package market

import (
	"context"
)

// PriceHistoryRepository defines persistence operations for price history
type PriceHistoryRepository interface {
	// Record persists a batch of snapshots taken on one arrival
	Record(ctx context.Context, entries []*PriceHistory) error

	// History returns the snapshots of one commodity in one system,
	// newest first, at most limit entries
	History(ctx context.Context, gameID string, systemID, commodity, limit int) ([]*PriceHistory, error)
}
