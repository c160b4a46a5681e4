package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// RetireCommand ends the career and scores it
type RetireCommand struct {
	GameID string
}

// RetireResponse carries the final score
type RetireResponse struct {
	EndStatus string
	Days      int
	Worth     int
	Score     int
}

// RetireHandler handles the Retire command
type RetireHandler struct {
	session *common.Session
}

// NewRetireHandler creates a new RetireHandler
func NewRetireHandler(session *common.Session) *RetireHandler {
	return &RetireHandler{session: session}
}

// Handle executes the Retire command
func (h *RetireHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RetireCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RetireCommand")
	}

	var score int
	g, err := h.session.Apply(ctx, cmd.GameID, func(g *game.Game) error {
		var err error
		score, err = g.Retire()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("retire failed: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "Commander retired", map[string]interface{}{
		"game_id": g.ID,
		"days":    g.Quests.Days,
		"score":   score,
	})

	return &RetireResponse{
		EndStatus: g.EndStatus.String(),
		Days:      g.Quests.Days,
		Worth:     g.Worth(),
		Score:     score,
	}, nil
}
