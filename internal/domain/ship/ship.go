// Package ship holds the ship record and the ledger rules that only depend
// on a single ship: fuel, hull, cargo capacity and valuation.
package ship

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Slot capacities shared by every hull
const (
	MaxWeapon = 3
	MaxShield = 3
	MaxGadget = 3
	MaxCrew   = 3
)

// MaxTribbles caps the tribble population aboard
const MaxTribbles = 100000

// UpgradedHull is the extra hull strength granted by the hull upgrade quest
const UpgradedHull = 50

// Ship is owned by its controller: the player or the encounter generator.
// Slot arrays hold table indices or shared.Empty.
type Ship struct {
	Type           int                      `json:"type"`
	Cargo          [tables.MaxTradeItem]int `json:"cargo"`
	Weapons        [MaxWeapon]shared.Slot   `json:"weapons"`
	Shields        [MaxShield]shared.Slot   `json:"shields"`
	ShieldStrength [MaxShield]int           `json:"shield_strength"`
	Gadgets        [MaxGadget]shared.Slot   `json:"gadgets"`
	Crew           [MaxCrew]shared.Slot     `json:"crew"`
	Fuel           int                      `json:"fuel"`
	Hull           int                      `json:"hull"`
	Tribbles       int                      `json:"tribbles"`
}

// NewEmpty returns a ship of the given type with every slot empty
func NewEmpty(shipType int) Ship {
	s := Ship{Type: shipType}
	s.clearSlots()
	return s
}

func (s *Ship) clearSlots() {
	for i := range s.Weapons {
		s.Weapons[i] = shared.Empty
	}
	for i := range s.Shields {
		s.Shields[i] = shared.Empty
		s.ShieldStrength[i] = 0
	}
	for i := range s.Gadgets {
		s.Gadgets[i] = shared.Empty
	}
	for i := range s.Crew {
		s.Crew[i] = shared.Empty
	}
}

// Spec returns the hull template of the ship
func (s *Ship) Spec(t *tables.Tables) *tables.ShipType {
	return &t.ShipTypes[s.Type]
}

// HasGadget reports whether any gadget slot holds the gadget
func (s *Ship) HasGadget(gadget int) bool {
	return shared.Contains(s.Gadgets[:], gadget)
}

// HasShield reports whether any shield slot holds the shield
func (s *Ship) HasShield(shield int) bool {
	return shared.Contains(s.Shields[:], shield)
}

// HasWeapon reports whether the ship carries the weapon. Without exact,
// any better weapon also counts.
func (s *Ship) HasWeapon(weapon int, exact bool) bool {
	for _, slot := range s.Weapons {
		w, ok := slot.Index()
		if !ok {
			continue
		}
		if w == weapon || (!exact && w > weapon) {
			return true
		}
	}
	return false
}

// CrewCount returns the number of occupied crew seats
func (s *Ship) CrewCount() int {
	return shared.CountOccupied(s.Crew[:])
}

// RefillShields restores every contiguous shield to full power
func (s *Ship) RefillShields(t *tables.Tables) {
	for i, idx := range shared.Contiguous(s.Shields[:]) {
		s.ShieldStrength[i] = t.Shields[idx].Power
	}
}

// CreateFlea replaces the ship with the escape pod's Flea, keeping only
// the commander.
func (s *Ship) CreateFlea(t *tables.Tables) {
	commander := s.Crew[0]
	*s = NewEmpty(tables.FleaType)
	s.Crew[0] = commander
	s.Fuel = t.ShipTypes[tables.FleaType].FuelTanks
	s.Hull = t.ShipTypes[tables.FleaType].HullStrength
}
