package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/10igma/spacetrader-web/internal/domain/market"
)

// GormPriceHistoryRepository implements PriceHistoryRepository using GORM
type GormPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormPriceHistoryRepository creates a new GORM price history repository
func NewGormPriceHistoryRepository(db *gorm.DB) *GormPriceHistoryRepository {
	return &GormPriceHistoryRepository{db: db}
}

// Record persists the snapshots taken on one arrival
func (r *GormPriceHistoryRepository) Record(ctx context.Context, entries []*market.PriceHistory) error {
	if len(entries) == 0 {
		return nil
	}

	models := make([]*PriceHistoryModel, len(entries))
	for i, h := range entries {
		models[i] = &PriceHistoryModel{
			GameID:     h.GameID(),
			SystemID:   h.SystemID(),
			Commodity:  h.Commodity(),
			Day:        h.Day(),
			BuyPrice:   h.BuyPrice(),
			SellPrice:  h.SellPrice(),
			Quantity:   h.Quantity(),
			RecordedAt: h.RecordedAt(),
		}
	}

	result := r.db.WithContext(ctx).Create(models)
	if result.Error != nil {
		return fmt.Errorf("failed to record price history: %w", result.Error)
	}
	return nil
}

// History retrieves the snapshots of a commodity in a system
// Returns entries ordered by day DESC (newest first)
func (r *GormPriceHistoryRepository) History(
	ctx context.Context,
	gameID string,
	systemID int,
	commodity int,
	limit int,
) ([]*market.PriceHistory, error) {
	var models []PriceHistoryModel
	query := r.db.WithContext(ctx).
		Where("game_id = ? AND system_id = ? AND commodity = ?", gameID, systemID, commodity).
		Order("day DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get price history: %w", result.Error)
	}

	histories := make([]*market.PriceHistory, 0, len(models))
	for i := range models {
		history, err := r.modelToHistory(&models[i])
		if err != nil {
			return nil, fmt.Errorf("failed to convert model to history: %w", err)
		}
		histories = append(histories, history)
	}

	return histories, nil
}

func (r *GormPriceHistoryRepository) modelToHistory(model *PriceHistoryModel) (*market.PriceHistory, error) {
	return market.NewPriceHistoryWithID(
		model.ID,
		model.GameID,
		model.Day,
		model.SystemID,
		model.Commodity,
		model.BuyPrice,
		model.SellPrice,
		model.Quantity,
		model.RecordedAt,
	)
}
