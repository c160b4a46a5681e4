package queries

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/game"
)

// ListGamesQuery lists the saved games
type ListGamesQuery struct {
	// IncludeEnded also lists retired or destroyed commanders
	IncludeEnded bool
}

// ListGamesResponse holds the saved games, most recently played first
type ListGamesResponse struct {
	Games []game.Summary
}

// ListGamesHandler handles the ListGames query
type ListGamesHandler struct {
	session *common.Session
}

// NewListGamesHandler creates a new ListGamesHandler
func NewListGamesHandler(session *common.Session) *ListGamesHandler {
	return &ListGamesHandler{session: session}
}

// Handle executes the ListGames query
func (h *ListGamesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListGamesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListGamesQuery")
	}

	summaries, err := h.session.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ListGamesResponse{}
	for _, s := range summaries {
		if s.Ended && !query.IncludeEnded {
			continue
		}
		resp.Games = append(resp.Games, s)
	}
	return resp, nil
}
