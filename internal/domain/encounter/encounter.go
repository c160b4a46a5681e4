// Package encounter decides whether a warp is interrupted, synthesizes the
// opposing ship and picks how the opponent behaves on contact.
package encounter

import (
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Category is the faction or special actor behind an encounter
type Category int

const (
	None Category = iota
	Police
	Pirate
	Trader
	Monster
	Dragonfly
	Mantis
	Scarab
	Famous
)

var categoryNames = map[Category]string{
	None:      "None",
	Police:    "Police",
	Pirate:    "Pirate",
	Trader:    "Trader",
	Monster:   "Space monster",
	Dragonfly: "Dragonfly",
	Mantis:    "Mantis",
	Scarab:    "Scarab",
	Famous:    "Famous captain",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Type is the concrete encounter. Values are grouped in bands of ten per
// category so the band identifies the category.
type Type int

const (
	PoliceInspection Type = 0
	PoliceIgnore     Type = 1
	PoliceAttack     Type = 2
	PoliceFlee       Type = 3

	PirateAttack    Type = 10
	PirateFlee      Type = 11
	PirateIgnore    Type = 12
	PirateSurrender Type = 13

	TraderIgnore    Type = 20
	TraderFlee      Type = 21
	TraderAttack    Type = 22
	TraderSurrender Type = 23

	MonsterAttack Type = 30
	MonsterIgnore Type = 31

	DragonflyAttack Type = 40
	DragonflyIgnore Type = 41

	MantisAttack Type = 50

	ScarabAttack Type = 60
	ScarabIgnore Type = 61

	FamousCaptain       Type = 70
	FamousCaptainAttack Type = 71

	// NoEncounter is returned when the warp is not interrupted
	NoEncounter Type = -1
)

var typeNames = map[Type]string{
	PoliceInspection:    "police inspection",
	PoliceIgnore:        "police ignore",
	PoliceAttack:        "police attack",
	PoliceFlee:          "police flee",
	PirateAttack:        "pirate attack",
	PirateFlee:          "pirate flee",
	PirateIgnore:        "pirate ignore",
	PirateSurrender:     "pirate surrender",
	TraderIgnore:        "trader ignore",
	TraderFlee:          "trader flee",
	TraderAttack:        "trader attack",
	TraderSurrender:     "trader surrender",
	MonsterAttack:       "monster attack",
	MonsterIgnore:       "monster ignore",
	DragonflyAttack:     "dragonfly attack",
	DragonflyIgnore:     "dragonfly ignore",
	MantisAttack:        "mantis attack",
	ScarabAttack:        "scarab attack",
	ScarabIgnore:        "scarab ignore",
	FamousCaptain:       "famous captain",
	FamousCaptainAttack: "famous captain attack",
	NoEncounter:         "none",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Category returns the band the type belongs to
func (t Type) Category() Category {
	switch {
	case t < 0:
		return None
	case t < 10:
		return Police
	case t < 20:
		return Pirate
	case t < 30:
		return Trader
	case t < 40:
		return Monster
	case t < 50:
		return Dragonfly
	case t < 60:
		return Mantis
	case t < 70:
		return Scarab
	case t < 80:
		return Famous
	}
	return None
}

// Hostile reports whether the opponent opens fire
func (t Type) Hostile() bool {
	switch t {
	case PoliceAttack, PirateAttack, TraderAttack, MonsterAttack,
		DragonflyAttack, MantisAttack, ScarabAttack, FamousCaptainAttack:
		return true
	}
	return false
}

// Fleeing reports whether the opponent is running away
func (t Type) Fleeing() bool {
	return t == PoliceFlee || t == PirateFlee || t == TraderFlee
}

// StrengthPolice is the police presence used for encounter rolls. Known
// villains draw twice the patrols and psychopaths three times.
func StrengthPolice(p *tables.Politics, policeScore int) int {
	switch {
	case policeScore < shared.PsychopathScore:
		return 3 * p.StrengthPolice
	case policeScore < shared.VillainScore:
		return 2 * p.StrengthPolice
	}
	return p.StrengthPolice
}
