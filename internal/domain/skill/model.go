// Package skill derives the effective crew skills of a ship from its
// roster seats, fitted gadgets and the game difficulty.
package skill

import (
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Gadget bonuses
const (
	GadgetBonus = 3
	CloakBonus  = 2
)

// Model reads skills; it never mutates the roster or the ship
type Model struct {
	Roster         *crew.Roster
	Difficulty     shared.Difficulty
	DiplomatAboard bool
}

// Effective returns the adjusted skill of the ship's crew. The commander
// seat is always read; further seats stop at the first empty one.
func (m Model) Effective(kind crew.Kind, s *ship.Ship) int {
	best := 0
	for i, seat := range s.Crew {
		idx, ok := seat.Index()
		if !ok {
			if i == 0 {
				continue
			}
			break
		}
		if idx < 0 || idx >= crew.RosterSize {
			continue
		}
		if v := m.Roster[idx].Skill(kind); v > best {
			best = v
		}
	}

	switch kind {
	case crew.Pilot:
		if s.HasGadget(tables.NavigatingSystem) {
			best += GadgetBonus
		}
		if s.HasGadget(tables.CloakingDevice) {
			best += CloakBonus
		}
	case crew.Fighter:
		if s.HasGadget(tables.TargetingSystem) {
			best += GadgetBonus
		}
	case crew.Engineer:
		if s.HasGadget(tables.AutoRepairSystem) {
			best += GadgetBonus
		}
	case crew.Trader:
		if m.DiplomatAboard {
			best++
		}
	}
	return m.Difficulty.AdaptSkill(best)
}

func (m Model) Pilot(s *ship.Ship) int    { return m.Effective(crew.Pilot, s) }
func (m Model) Fighter(s *ship.Ship) int  { return m.Effective(crew.Fighter, s) }
func (m Model) Trader(s *ship.Ship) int   { return m.Effective(crew.Trader, s) }
func (m Model) Engineer(s *ship.Ship) int { return m.Effective(crew.Engineer, s) }

// Category selects the slot array HasEquipment looks at
type Category int

const (
	Weapons Category = iota
	Shields
	Gadgets
)

// HasEquipment reports whether any occupied slot of the category holds index
func HasEquipment(s *ship.Ship, category Category, index int) bool {
	switch category {
	case Weapons:
		return s.HasWeapon(index, true)
	case Shields:
		return s.HasShield(index)
	case Gadgets:
		return s.HasGadget(index)
	}
	return false
}
