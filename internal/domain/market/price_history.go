package market

import (
	"time"

	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// PriceHistory is a point-in-time snapshot of one commodity's quotes in a
// system, recorded on every arrival. It is an immutable entity.
type PriceHistory struct {
	id         int
	gameID     string
	day        int
	systemID   int
	commodity  int
	buyPrice   int
	sellPrice  int
	quantity   int
	recordedAt time.Time
}

// NewPriceHistory creates a price history entry with validation
func NewPriceHistory(
	gameID string,
	day int,
	systemID int,
	commodity int,
	buyPrice int,
	sellPrice int,
	quantity int,
	recordedAt time.Time,
) (*PriceHistory, error) {
	if gameID == "" {
		return nil, ErrInvalidGameID
	}
	if buyPrice < 0 || sellPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	return &PriceHistory{
		gameID:     gameID,
		day:        day,
		systemID:   systemID,
		commodity:  commodity,
		buyPrice:   buyPrice,
		sellPrice:  sellPrice,
		quantity:   quantity,
		recordedAt: recordedAt,
	}, nil
}

// NewPriceHistoryWithID creates a price history entry with an existing ID.
// This is used when loading from the database.
func NewPriceHistoryWithID(
	id int,
	gameID string,
	day int,
	systemID int,
	commodity int,
	buyPrice int,
	sellPrice int,
	quantity int,
	recordedAt time.Time,
) (*PriceHistory, error) {
	h, err := NewPriceHistory(gameID, day, systemID, commodity, buyPrice, sellPrice, quantity, recordedAt)
	if err != nil {
		return nil, err
	}
	h.id = id
	return h, nil
}

// SnapshotPrices builds one history entry per traded commodity of a system
func SnapshotPrices(gameID string, day, systemID int, quantities [tables.MaxTradeItem]int, p *Prices, recordedAt time.Time) ([]*PriceHistory, error) {
	var out []*PriceHistory
	for i := range p.Buy {
		if p.Buy[i] == 0 && p.Sell[i] == 0 {
			continue
		}
		h, err := NewPriceHistory(gameID, day, systemID, i, p.Buy[i], p.Sell[i], quantities[i], recordedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// Getters (immutable entity - no setters)

func (h *PriceHistory) ID() int {
	return h.id
}

func (h *PriceHistory) GameID() string {
	return h.gameID
}

func (h *PriceHistory) Day() int {
	return h.day
}

func (h *PriceHistory) SystemID() int {
	return h.systemID
}

func (h *PriceHistory) Commodity() int {
	return h.commodity
}

func (h *PriceHistory) BuyPrice() int {
	return h.buyPrice
}

func (h *PriceHistory) SellPrice() int {
	return h.sellPrice
}

func (h *PriceHistory) Quantity() int {
	return h.quantity
}

func (h *PriceHistory) RecordedAt() time.Time {
	return h.recordedAt
}

// Spread returns the markup of the buy quote over the sell quote as a percentage
func (h *PriceHistory) Spread() float64 {
	if h.sellPrice == 0 {
		return 0
	}
	return float64(h.buyPrice-h.sellPrice) / float64(h.sellPrice) * 100
}
