// Package crew models the mercenary roster: the commander, the hireable
// mercenaries and the seat reused for the captain of the current opponent.
package crew

import (
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// Kind identifies one of the four skills
type Kind int

const (
	Pilot Kind = iota
	Fighter
	Trader
	Engineer
)

// MaxSkillKind is the number of skills
const MaxSkillKind = 4

// MaxSkill is the highest raw skill value
const MaxSkill = 10

var kindNames = [MaxSkillKind]string{"Pilot", "Fighter", "Trader", "Engineer"}

func (k Kind) String() string {
	if k < 0 || int(k) >= MaxSkillKind {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Roster layout
const (
	Commander = 0
	// Zeethibal is parked off-map and never offered for hire
	Zeethibal = 30
	// OpponentCaptain is overwritten every time an opponent is generated
	OpponentCaptain = 31
	RosterSize      = 32
	// OffMap is the location of a mercenary that cannot be found in any system
	OffMap = 255
)

// Member is one crew member. Skills are raw, before equipment and
// difficulty adjustment.
type Member struct {
	NameIndex int `json:"name_index"`
	Pilot     int `json:"pilot"`
	Fighter   int `json:"fighter"`
	Trader    int `json:"trader"`
	Engineer  int `json:"engineer"`
	CurSystem int `json:"cur_system"`
}

// Skill returns the raw value of one skill
func (m *Member) Skill(k Kind) int {
	switch k {
	case Pilot:
		return m.Pilot
	case Fighter:
		return m.Fighter
	case Trader:
		return m.Trader
	default:
		return m.Engineer
	}
}

func (m *Member) addSkill(k Kind, delta int) {
	switch k {
	case Pilot:
		m.Pilot += delta
	case Fighter:
		m.Fighter += delta
	case Trader:
		m.Trader += delta
	default:
		m.Engineer += delta
	}
}

// SkillSum is the sum of all four raw skills
func (m *Member) SkillSum() int {
	return m.Pilot + m.Fighter + m.Trader + m.Engineer
}

// Roster is the full crew table, indexed by the values stored in ship crew seats
type Roster [RosterSize]Member

// Get returns the member at index or an IndexOutOfRangeError
func (r *Roster) Get(index int) (*Member, error) {
	if err := shared.CheckIndex("crew", index, RosterSize); err != nil {
		return nil, err
	}
	return &r[index], nil
}

// RandomSkill draws a mercenary skill in [1, 10]
func RandomSkill(r shared.Random) int {
	return 1 + r.Below(5) + r.Below(6)
}
