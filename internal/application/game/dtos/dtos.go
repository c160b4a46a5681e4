package dtos

import (
	"github.com/10igma/spacetrader-web/internal/domain/calendar"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// ShipDTO is a ship as shown to the player
type ShipDTO struct {
	Type         string
	Hull         int
	MaxHull      int
	Fuel         int
	MaxFuel      int
	Weapons      []string
	Shields      []string
	ShieldCharge int
	Gadgets      []string
	CargoBays    int
	CargoUsed    int
	CrewQuarters int
	Crew         []string
}

// EncounterDTO is a pending encounter for serialization
type EncounterDTO struct {
	Category    string
	Type        string
	Destination string
	Rounds      int
	Opponent    ShipDTO
	Actions     []string
}

// ReceiptDTO reports a docked transaction
type ReceiptDTO struct {
	Units   int
	Amount  int
	Credits int
}

// ShipToDTO converts a ship using the given hull upgrade state
func ShipToDTO(t *tables.Tables, s *ship.Ship, upgraded bool, bays int) ShipDTO {
	spec := s.Spec(t)
	dto := ShipDTO{
		Type:         spec.Name,
		Hull:         s.Hull,
		MaxHull:      s.HullStrength(t, upgraded),
		Fuel:         s.CurrentFuel(t),
		MaxFuel:      s.FuelTanks(t),
		CargoBays:    bays,
		CrewQuarters: spec.CrewQuarters,
	}
	for _, w := range s.Weapons {
		if i, ok := w.Index(); ok {
			dto.Weapons = append(dto.Weapons, t.Weapons[i].Name)
		}
	}
	for slot, sh := range s.Shields {
		if i, ok := sh.Index(); ok {
			dto.Shields = append(dto.Shields, t.Shields[i].Name)
			dto.ShieldCharge += s.ShieldStrength[slot]
		}
	}
	for _, g := range s.Gadgets {
		if i, ok := g.Index(); ok {
			dto.Gadgets = append(dto.Gadgets, t.Gadgets[i].Name)
		}
	}
	for _, c := range s.Cargo {
		dto.CargoUsed += c
	}
	return dto
}

// EncounterToDTO converts a pending encounter
func EncounterToDTO(t *tables.Tables, g *game.Game, e *game.Encounter) *EncounterDTO {
	if e == nil {
		return nil
	}
	dto := &EncounterDTO{
		Category:    e.Category.String(),
		Type:        e.Type.String(),
		Destination: t.SystemName(g.Galaxy.Systems[e.Destination].NameIndex),
		Rounds:      e.Rounds,
		Opponent:    ShipToDTO(t, &e.Opponent, false, e.Opponent.Spec(t).CargoBays),
	}
	for _, a := range e.Actions() {
		dto.Actions = append(dto.Actions, a.String())
	}
	return dto
}

// CrewNames lists who sits aboard the commander's ship
func CrewNames(t *tables.Tables, g *game.Game) []string {
	var out []string
	for _, seat := range g.Ship.Crew {
		i, ok := seat.Index()
		if !ok {
			continue
		}
		if i == crew.Commander {
			out = append(out, g.Commander)
			continue
		}
		out = append(out, t.MercenaryName(g.Roster[i].NameIndex))
	}
	return out
}

// ReceiptToDTO converts a domain receipt
func ReceiptToDTO(r *game.Receipt) ReceiptDTO {
	return ReceiptDTO{Units: r.Units, Amount: r.Amount, Credits: r.Credits}
}

// Events lists the headlines of a day report
func Events(r calendar.Report) []string {
	var out []string
	if r.GemulonInvaded {
		out = append(out, "Gemulon has been invaded")
	}
	if r.ExperimentPerformed {
		out = append(out, "The Daled experiment went ahead")
	}
	return out
}
