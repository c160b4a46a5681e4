package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/adapters/persistence"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/test/helpers"
)

func newGame(t *testing.T, id string) *game.Game {
	t.Helper()
	g, err := game.New(tables.MustLoad(), game.Params{
		ID:         id,
		Commander:  "Jameson",
		Difficulty: shared.Normal,
		SeedX:      521288629,
		SeedY:      362436069,
		Skills:     [crew.MaxSkillKind]int{5, 5, 5, 5},
	})
	require.NoError(t, err)
	return g
}

func TestGameRepository_SaveAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db, shared.NewMockClock(helpers.Epoch))
	g := newGame(t, "game-1")
	want, err := g.Digest()
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Save(context.Background(), g))
	loaded, err := repo.Load(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	got, err := loaded.Digest()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, g.CurrentSystemID(), loaded.CurrentSystemID())
	assert.Equal(t, g.RNG, loaded.RNG)
}

func TestGameRepository_SaveReplaces(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(helpers.Epoch)
	repo := persistence.NewGormGameRepository(db, clock)
	g := newGame(t, "game-1")
	require.NoError(t, repo.Save(context.Background(), g))

	// Act
	g.Balance.Credits = 4321
	clock.Advance(time.Hour)
	require.NoError(t, repo.Save(context.Background(), g))

	// Assert
	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 4321, summaries[0].Credits)
	assert.Equal(t, helpers.Epoch.Add(time.Hour), summaries[0].UpdatedAt.UTC())

	loaded, err := repo.Load(context.Background(), "game-1")
	require.NoError(t, err)
	assert.Equal(t, 4321, loaded.Balance.Credits)
}

func TestGameRepository_ListMostRecentFirst(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	clock := shared.NewMockClock(helpers.Epoch)
	repo := persistence.NewGormGameRepository(db, clock)

	require.NoError(t, repo.Save(context.Background(), newGame(t, "older")))
	clock.Advance(time.Hour)
	newer := newGame(t, "newer")
	newer.Commander = "Zaphod"
	require.NoError(t, repo.Save(context.Background(), newer))

	// Act
	summaries, err := repo.List(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "newer", summaries[0].ID)
	assert.Equal(t, "Zaphod", summaries[0].Commander)
	assert.Equal(t, "older", summaries[1].ID)
	assert.Len(t, summaries[0].Digest, 64)
}

func TestGameRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db, nil)

	// Act
	_, loadErr := repo.Load(context.Background(), "missing")
	deleteErr := repo.Delete(context.Background(), "missing")

	// Assert
	assert.ErrorIs(t, loadErr, game.ErrGameNotFound)
	assert.ErrorIs(t, deleteErr, game.ErrGameNotFound)
}

func TestGameRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db, nil)
	require.NoError(t, repo.Save(context.Background(), newGame(t, "game-1")))

	// Act
	err := repo.Delete(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	_, err = repo.Load(context.Background(), "game-1")
	assert.ErrorIs(t, err, game.ErrGameNotFound)
}

func TestGameRepository_DetectsCorruptSnapshot(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormGameRepository(db, nil)
	require.NoError(t, repo.Save(context.Background(), newGame(t, "game-1")))

	// Act
	require.NoError(t, db.Model(&persistence.GameModel{}).
		Where("id = ?", "game-1").
		Update("digest", "0000").Error)
	_, err := repo.Load(context.Background(), "game-1")

	// Assert
	assert.ErrorIs(t, err, persistence.ErrCorruptSnapshot)
}
