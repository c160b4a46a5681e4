package commands

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
)

// DeleteGameCommand removes a saved game. The journal and the price
// history of the game are kept.
type DeleteGameCommand struct {
	GameID string
}

// DeleteGameHandler handles the DeleteGame command
type DeleteGameHandler struct {
	session *common.Session
}

// NewDeleteGameHandler creates a new DeleteGameHandler
func NewDeleteGameHandler(session *common.Session) *DeleteGameHandler {
	return &DeleteGameHandler{session: session}
}

// Handle executes the DeleteGame command
func (h *DeleteGameHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*DeleteGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteGameCommand")
	}

	if err := h.session.Delete(ctx, cmd.GameID); err != nil {
		return nil, err
	}
	common.LoggerFromContext(ctx).Log("INFO", "Game deleted", map[string]interface{}{
		"game_id": cmd.GameID,
	})
	return struct{}{}, nil
}
