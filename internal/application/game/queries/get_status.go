package queries

import (
	"context"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/application/common"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
)

// GetStatusQuery retrieves the commander's status
type GetStatusQuery struct {
	GameID string
}

// StatusResponse is the commander screen
type StatusResponse struct {
	GameID       string
	Commander    string
	Difficulty   string
	Day          int
	System       string
	TechLevel    string
	Government   string
	SystemStatus string
	Credits      int
	Debt         int
	Worth        int
	MaxLoan      int
	PoliceScore  int
	PoliceRecord string
	Reputation   string
	Kills        int
	EscapePod    bool
	Insurance    bool
	NoClaim      int
	Payroll      int
	Premium      int
	Ship         dtos.ShipDTO
	Encounter    *dtos.EncounterDTO
	Ended        bool
	EndStatus    string
	Score        int
}

// GetStatusHandler handles the GetStatus query
type GetStatusHandler struct {
	session *common.Session
}

// NewGetStatusHandler creates a new GetStatusHandler
func NewGetStatusHandler(session *common.Session) *GetStatusHandler {
	return &GetStatusHandler{session: session}
}

// Handle executes the GetStatus query
func (h *GetStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStatusQuery")
	}

	g, err := h.session.Load(ctx, query.GameID)
	if err != nil {
		return nil, err
	}

	t := g.Tables()
	sys := g.CurrentSystem()
	shipDTO := dtos.ShipToDTO(t, &g.Ship, g.Quests.HullUpgraded(), g.Bays())
	shipDTO.Crew = dtos.CrewNames(t, g)

	resp := &StatusResponse{
		GameID:       g.ID,
		Commander:    g.Commander,
		Difficulty:   g.Difficulty.String(),
		Day:          g.Quests.Days,
		System:       t.SystemName(sys.NameIndex),
		TechLevel:    system.TechName(sys.TechLevel),
		Government:   t.Politics[sys.Politics].Name,
		SystemStatus: sys.Status.String(),
		Credits:      g.Balance.Credits,
		Debt:         g.Balance.Debt,
		Worth:        g.Worth(),
		MaxLoan:      g.MaxLoan(),
		PoliceScore:  g.PoliceScore,
		PoliceRecord: shared.PoliceRecordName(g.PoliceScore),
		Reputation:   shared.ReputationName(g.Reputation),
		Kills:        g.Kills.Police + g.Kills.Pirate + g.Kills.Trader,
		EscapePod:    g.EscapePod,
		Insurance:    g.Insurance,
		NoClaim:      g.NoClaim,
		Payroll:      g.Payroll(),
		Premium:      g.InsurancePremium(),
		Ship:         shipDTO,
		Encounter:    dtos.EncounterToDTO(t, g, g.Encounter),
		Ended:        g.Ended,
	}
	if g.Ended {
		resp.EndStatus = g.EndStatus.String()
		resp.Score = g.Score(g.EndStatus)
	}
	return resp, nil
}
