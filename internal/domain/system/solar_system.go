// Package system holds the solar system record shared by the galaxy
// generator, the market model and the day clock.
package system

import "github.com/10igma/spacetrader-web/internal/domain/shared"

// MaxTradeItem is the number of commodities tracked per system
const MaxTradeItem = 10

// NoSpecial marks a system without a pending special event
const NoSpecial = -1

// SolarSystem is one star system. Position is fixed after generation;
// quantities, status and countdown change as days pass.
type SolarSystem struct {
	NameIndex  int               `json:"name_index"`
	TechLevel  int               `json:"tech_level"`
	Politics   int               `json:"politics"`
	Status     Status            `json:"status"`
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Resource   Resource          `json:"resource"`
	Size       int               `json:"size"`
	Quantities [MaxTradeItem]int `json:"quantities"`
	CountDown  int               `json:"count_down"`
	Visited    bool              `json:"visited"`
	Special    int               `json:"special"`
}

// Position returns the system's galaxy coordinates
func (s *SolarSystem) Position() shared.Position {
	return shared.Position{X: s.X, Y: s.Y}
}

// HasSpecial reports whether a special event is pending here
func (s *SolarSystem) HasSpecial() bool {
	return s.Special >= 0
}

// SetSpecialOnce assigns a special event only when none is pending.
// It reports whether the assignment happened.
func (s *SolarSystem) SetSpecialOnce(event int) bool {
	if s.HasSpecial() {
		return false
	}
	s.Special = event
	return true
}
