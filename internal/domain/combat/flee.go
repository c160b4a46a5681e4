package combat

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/skill"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// AttemptFlee reports whether the commander escapes the opponent. Nobody is
// caught on Beginner.
func AttemptFlee(r shared.Random, skills skill.Model, commander, opponent *ship.Ship) bool {
	if skills.Difficulty == shared.Beginner {
		return true
	}
	return (r.Below(7)+skills.Pilot(commander)/3)*2 >= r.Below(skills.Pilot(opponent))*(2+int(skills.Difficulty))
}

// OpponentFlees reports whether a fleeing opponent gets away from the commander
func OpponentFlees(r shared.Random, skills skill.Model, commander, opponent *ship.Ship) bool {
	return r.Below(skills.Pilot(commander))*4 <= r.Below(7+skills.Pilot(opponent)/3)*2
}

// IsCloaked reports whether s is invisible to other: it needs a cloaking
// device and a better engineer than the other side.
func IsCloaked(skills skill.Model, s, other *ship.Ship) bool {
	return s.HasGadget(tables.CloakingDevice) && skills.Engineer(s) > skills.Engineer(other)
}

// EnemyShipPrice values an opponent for bounty purposes: hull and armament
// scaled by how well the crew can fly and fight it.
func EnemyShipPrice(t *tables.Tables, skills skill.Model, s *ship.Ship) int {
	price := t.ShipTypes[s.Type].Price
	for _, slot := range s.Weapons {
		if w, ok := slot.Index(); ok {
			price += t.Weapons[w].Price
		}
	}
	for _, slot := range s.Shields {
		if sh, ok := slot.Index(); ok {
			price += t.Shields[sh].Price
		}
	}
	return price * (2*skills.Pilot(s) + skills.Engineer(s) + 3*skills.Fighter(s)) / 60
}

// Bounty is the police reward for destroying s, a multiple of 25 in
// [MinBounty, MaxBounty]
func Bounty(t *tables.Tables, skills skill.Model, s *ship.Ship) int {
	bounty := EnemyShipPrice(t, skills, s) / 200 / 25 * 25
	if bounty <= 0 {
		return MinBounty
	}
	if bounty > MaxBounty {
		return MaxBounty
	}
	return bounty
}
