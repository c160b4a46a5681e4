package encounter

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Stance is what Resolve needs to know about both ships and the commander
type Stance struct {
	// PlayerCloaked is true when the opponent cannot see the commander
	PlayerCloaked bool
	// OpponentCloaked is true when the commander cannot see the opponent
	OpponentCloaked bool
	OpponentType    int
	PoliceScore     int
	Reputation      int
	Difficulty      shared.Difficulty
	// Inspected is set once the commander was inspected on this trip
	Inspected bool
}

// Resolve turns a category into the opponent's reaction. It returns the
// encounter type and whether this encounter is the trip's inspection.
func Resolve(r shared.Random, category Category, s Stance) (Type, bool) {
	switch category {
	case Police:
		return resolvePolice(r, s)
	case Pirate:
		return resolvePirate(r, s), false
	case Trader:
		return resolveTrader(r, s), false
	case Monster:
		if s.PlayerCloaked {
			return MonsterIgnore, false
		}
		return MonsterAttack, false
	case Dragonfly:
		if s.PlayerCloaked {
			return DragonflyIgnore, false
		}
		return DragonflyAttack, false
	case Scarab:
		if s.PlayerCloaked {
			return ScarabIgnore, false
		}
		return ScarabAttack, false
	case Mantis:
		return MantisAttack, false
	case Famous:
		if s.PlayerCloaked {
			return FamousCaptain, false
		}
		return FamousCaptainAttack, false
	}
	return NoEncounter, false
}

func resolvePolice(r shared.Random, s Stance) (Type, bool) {
	switch {
	case s.PlayerCloaked:
		return PoliceIgnore, false
	case s.PoliceScore < shared.DubiousScore:
		// A well known commander may scare the patrol off
		if s.Reputation < shared.AverageRep {
			return PoliceAttack, false
		}
		if r.Below(shared.EliteRep) > s.Reputation/(1+s.OpponentType) {
			return PoliceAttack, false
		}
		if s.OpponentCloaked {
			return PoliceIgnore, false
		}
		return PoliceFlee, false
	case s.PoliceScore < shared.CleanScore && !s.Inspected:
		return PoliceInspection, true
	case s.PoliceScore < shared.LawfulScore:
		if r.Below(12-int(s.Difficulty)) < 1 && !s.Inspected {
			return PoliceInspection, true
		}
		return PoliceIgnore, false
	}
	if r.Below(40) == 1 && !s.Inspected {
		return PoliceInspection, true
	}
	return PoliceIgnore, false
}

func resolvePirate(r shared.Random, s Stance) Type {
	switch {
	case s.OpponentType == tables.MantisType:
		return PirateAttack
	case s.PlayerCloaked:
		return PirateIgnore
	case s.OpponentType >= 7 || r.Below(shared.EliteRep) > s.Reputation*4/(1+s.OpponentType):
		return PirateAttack
	}
	return PirateFlee
}

func resolveTrader(r shared.Random, s Stance) Type {
	if s.PlayerCloaked || s.PoliceScore > shared.CriminalScore {
		return TraderIgnore
	}
	// Criminals scare traders off, more so with a reputation to match
	if r.Below(shared.EliteRep) <= s.Reputation*10/(1+s.OpponentType) {
		if s.OpponentCloaked {
			return TraderIgnore
		}
		return TraderFlee
	}
	return TraderIgnore
}
