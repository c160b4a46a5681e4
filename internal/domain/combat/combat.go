// Package combat resolves one exchange of fire at a time between the
// commander and an opponent. Ships are mutated in place; the caller drives
// the rounds.
package combat

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/skill"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// AnyWeapon disables a bound in TotalWeapons
const AnyWeapon = -1

// Bounty bounds
const (
	MinBounty = 25
	MaxBounty = 2500
)

// reactorLimit is the reactor countdown at which the reactor stops boosting damage
const reactorLimit = 21

// Round is one attack. Skills is shared by both ships: the commander seat
// and the opponent captain live in the same roster.
type Round struct {
	Tables   *tables.Tables
	Skills   skill.Model
	Attacker *ship.Ship
	Defender *ship.Ship
	// Fleeing is set when the defender is running away
	Fleeing bool
	// CommanderDefends is set when the commander's ship is being fired on
	CommanderDefends bool
	ReactorStatus    int
	HullUpgraded     bool
}

// Outcome reports what one attack did. Damage is the part that reached
// the hull after the shields.
type Outcome struct {
	Hit       bool
	Damage    int
	Destroyed bool
}

// TotalWeapons sums the power of the contiguous weapons within [lo, hi].
// AnyWeapon leaves a bound open.
func TotalWeapons(t *tables.Tables, s *ship.Ship, lo, hi int) int {
	total := 0
	for _, w := range shared.Contiguous(s.Weapons[:]) {
		if (lo != AnyWeapon && w < lo) || (hi != AnyWeapon && w > hi) {
			continue
		}
		total += t.Weapons[w].Power
	}
	return total
}

// TotalShields is the full power of the contiguous shields
func TotalShields(t *tables.Tables, s *ship.Ship) int {
	total := 0
	for _, sh := range shared.Contiguous(s.Shields[:]) {
		total += t.Shields[sh].Power
	}
	return total
}

// TotalShieldStrength is the remaining strength of the contiguous shields
func TotalShieldStrength(s *ship.Ship) int {
	total := 0
	for i := range shared.Contiguous(s.Shields[:]) {
		total += s.ShieldStrength[i]
	}
	return total
}

// weaponPower is the firepower usable against the defender. The Scarab's
// hull only yields to pulse lasers and Morgan's laser.
func (rd Round) weaponPower() int {
	if rd.Defender.Type == tables.ScarabType {
		return TotalWeapons(rd.Tables, rd.Attacker, tables.PulseLaser, tables.PulseLaser) +
			TotalWeapons(rd.Tables, rd.Attacker, tables.MorganLaser, tables.MorganLaser)
	}
	return TotalWeapons(rd.Tables, rd.Attacker, AnyWeapon, AnyWeapon)
}

// ExecuteAttack fires the attacker's weapons at the defender once
func ExecuteAttack(r shared.Random, rd Round) Outcome {
	difficulty := rd.Skills.Difficulty
	// On Beginner a fleeing commander always gets away unharmed
	if difficulty == shared.Beginner && rd.CommanderDefends && rd.Fleeing {
		return Outcome{}
	}

	fighter := rd.Skills.Fighter(rd.Attacker)
	size := rd.Tables.ShipTypes[rd.Defender.Type].Size
	pilot := rd.Skills.Pilot(rd.Defender)
	factor := 1
	if rd.Fleeing {
		factor = 2
	}
	if r.Below(fighter+size) < factor*r.Below(5+pilot/2) {
		return Outcome{}
	}

	power := rd.weaponPower()
	if power <= 0 {
		return Outcome{}
	}
	engineer := rd.Skills.Engineer(rd.Attacker)
	damage := r.Below(power * (100 + 2*engineer) / 100)
	if damage <= 0 {
		return Outcome{}
	}

	if rd.CommanderDefends && rd.ReactorStatus > 0 && rd.ReactorStatus < reactorLimit {
		step := 33
		if difficulty < shared.Normal {
			step = 25
		}
		damage = damage * (100 + (int(difficulty)+1)*step) / 100
	}

	damage = absorb(rd.Defender, damage)

	dealt := 0
	if damage > 0 {
		damage = utils.Max(1, damage-r.Below(rd.Skills.Engineer(rd.Defender)))

		maxHull := rd.Tables.ShipTypes[rd.Defender.Type].HullStrength
		divisor := 2
		if rd.CommanderDefends {
			if rd.HullUpgraded {
				maxHull = rd.Defender.HullStrength(rd.Tables, true)
			}
			divisor = utils.Max(1, int(shared.Impossible)-int(difficulty))
		}
		dealt = utils.Min(damage, maxHull/divisor)
		rd.Defender.TakeDamage(dealt)
	}

	return Outcome{Hit: true, Damage: dealt, Destroyed: rd.Defender.Hull <= 0}
}

// absorb drains the defender's shields in slot order and returns the
// damage left for the hull
func absorb(s *ship.Ship, damage int) int {
	for i := range shared.Contiguous(s.Shields[:]) {
		if damage <= s.ShieldStrength[i] {
			s.ShieldStrength[i] -= damage
			return 0
		}
		damage -= s.ShieldStrength[i]
		s.ShieldStrength[i] = 0
	}
	return damage
}
