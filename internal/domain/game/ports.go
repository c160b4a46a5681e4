package game

import (
	"context"
	"errors"
	"time"
)

// ErrGameNotFound is returned when no saved game has the id
var ErrGameNotFound = errors.New("game not found")

// Repository persists whole games
type Repository interface {
	// Save stores the game, replacing an earlier save with the same id
	Save(ctx context.Context, g *Game) error

	// Load restores a game with its tables attached
	Load(ctx context.Context, id string) (*Game, error)

	// List returns a summary of every saved game, most recent first
	List(ctx context.Context) ([]Summary, error)

	Delete(ctx context.Context, id string) error
}

// Summary describes a saved game without decoding it
type Summary struct {
	ID        string
	Commander string
	Day       int
	Credits   int
	Ended     bool
	Digest    string
	UpdatedAt time.Time
}
