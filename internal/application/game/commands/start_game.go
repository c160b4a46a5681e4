package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// StartGameCommand creates a new game from two seeds
type StartGameCommand struct {
	GameID     string // Optional: generated from the commander name when empty
	Commander  string
	Difficulty shared.Difficulty
	SeedX      uint32
	SeedY      uint32
	Skills     [crew.MaxSkillKind]int
}

// StartGameResponse describes the new game
type StartGameResponse struct {
	GameID  string
	System  string
	Credits int
	Digest  string
}

// StartGameHandler handles the StartGame command
type StartGameHandler struct {
	session *common.Session
}

// NewStartGameHandler creates a new StartGameHandler
func NewStartGameHandler(session *common.Session) *StartGameHandler {
	return &StartGameHandler{session: session}
}

// Handle executes the StartGame command
func (h *StartGameHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*StartGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartGameCommand")
	}

	t := h.session.Tables()
	g, err := game.New(t, game.Params{
		ID:         cmd.GameID,
		Commander:  cmd.Commander,
		Difficulty: cmd.Difficulty,
		SeedX:      cmd.SeedX,
		SeedY:      cmd.SeedY,
		Skills:     cmd.Skills,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	if err := h.session.Create(ctx, g); err != nil {
		return nil, err
	}

	digest, err := g.Digest()
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log("INFO", "Game started", map[string]interface{}{
		"game_id":    g.ID,
		"commander":  g.Commander,
		"difficulty": g.Difficulty.String(),
		"seed_x":     cmd.SeedX,
		"seed_y":     cmd.SeedY,
	})

	return &StartGameResponse{
		GameID:  g.ID,
		System:  t.SystemName(g.CurrentSystem().NameIndex),
		Credits: g.Balance.Credits,
		Digest:  digest,
	}, nil
}
