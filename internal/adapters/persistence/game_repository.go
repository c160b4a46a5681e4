package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// GormGameRepository implements game.Repository using GORM
type GormGameRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormGameRepository creates a new GORM game repository
func NewGormGameRepository(db *gorm.DB, clock shared.Clock) *GormGameRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormGameRepository{db: db, clock: clock}
}

// Save inserts or replaces the snapshot of a game
func (r *GormGameRepository) Save(ctx context.Context, g *game.Game) error {
	snap, err := encodeGame(g)
	if err != nil {
		return err
	}

	now := r.clock.Now()
	model := &GameModel{
		ID:         g.ID,
		Commander:  g.Commander,
		Difficulty: g.Difficulty.String(),
		Day:        g.Quests.Days,
		Credits:    g.Balance.Credits,
		Debt:       g.Balance.Debt,
		Ended:      g.Ended,
		State:      snap.data,
		StateSize:  snap.size,
		Digest:     snap.digest,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// created_at survives an update
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"commander", "difficulty", "day", "credits", "debt", "ended",
			"state", "state_size", "digest", "updated_at",
		}),
	}).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save game: %w", result.Error)
	}
	return nil
}

// Load decodes the saved game. The caller attaches the tables.
func (r *GormGameRepository) Load(ctx context.Context, id string) (*game.Game, error) {
	var model GameModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, game.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", result.Error)
	}

	g, err := decodeGame(model.State, model.StateSize, model.Digest)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}
	return g, nil
}

// List summarizes the saved games, most recently played first
func (r *GormGameRepository) List(ctx context.Context) ([]game.Summary, error) {
	var models []GameModel
	result := r.db.WithContext(ctx).
		Select("id", "commander", "day", "credits", "ended", "digest", "updated_at").
		Order("updated_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list games: %w", result.Error)
	}

	summaries := make([]game.Summary, len(models))
	for i, m := range models {
		summaries[i] = game.Summary{
			ID:        m.ID,
			Commander: m.Commander,
			Day:       m.Day,
			Credits:   m.Credits,
			Ended:     m.Ended,
			Digest:    m.Digest,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return summaries, nil
}

// Delete removes a saved game
func (r *GormGameRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GameModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return game.ErrGameNotFound
	}
	return nil
}
