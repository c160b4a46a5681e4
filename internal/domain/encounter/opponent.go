package encounter

import (
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// hullRedraws bounds the filtered ship type walk per try
const hullRedraws = 1000

// OpponentParams is the context an opponent is synthesized from
type OpponentParams struct {
	Category    Category
	Politics    *tables.Politics
	Difficulty  shared.Difficulty
	PoliceScore int
	// Worth is the commander's current worth; richer targets attract
	// better armed pirates
	Worth      int
	WildAboard bool
	AtKravat   bool
	// MonsterHull is the space monster's current hull, which carries over
	// between fights
	MonsterHull int
}

// GenerateOpponent builds the opposing ship and rolls the opponent captain
// into the roster's OpponentCaptain seat. Each extra try rolls the hull and
// every equipment slot once more and keeps the best result.
func GenerateOpponent(r shared.Random, t *tables.Tables, roster *crew.Roster, p OpponentParams) ship.Ship {
	switch p.Category {
	case Famous:
		return famousCaptain(t, roster)
	case Monster, Dragonfly, Scarab:
		return questShip(t, roster, p)
	}

	g := opponentGen{r: r, t: t, p: p}
	opp := ship.NewEmpty(g.hullType(g.hullTries()))
	spec := &t.ShipTypes[opp.Type]

	tries := 1 + int(p.Difficulty)
	if p.Category != Mantis {
		tries = utils.Max(1, p.Worth/150000+int(p.Difficulty)-int(shared.Normal))
	}

	g.fitGadgets(&opp, spec, tries)
	g.fillCargo(&opp, spec)
	opp.Fuel = spec.FuelTanks
	opp.Tribbles = 0
	g.fitWeapons(&opp, spec, tries)
	g.fitShields(&opp, spec, tries)
	g.rollHull(&opp, spec)
	g.rollCrew(&opp, spec, roster)
	return opp
}

type opponentGen struct {
	r shared.Random
	t *tables.Tables
	p OpponentParams
}

func famousCaptain(t *tables.Tables, roster *crew.Roster) ship.Ship {
	opp := ship.NewEmpty(tables.MaxShipType - 1)
	for i := range opp.Shields {
		opp.Shields[i] = shared.Occupied(tables.ReflectiveShield)
		opp.ShieldStrength[i] = t.Shields[tables.ReflectiveShield].Power
	}
	for i := range opp.Weapons {
		opp.Weapons[i] = shared.Occupied(tables.MilitaryLaser)
	}
	opp.Gadgets[0] = shared.Occupied(tables.TargetingSystem)
	opp.Gadgets[1] = shared.Occupied(tables.NavigatingSystem)
	opp.Hull = t.ShipTypes[opp.Type].HullStrength
	opp.Fuel = t.ShipTypes[opp.Type].FuelTanks
	opp.Crew[0] = shared.Occupied(crew.OpponentCaptain)

	captain := &roster[crew.OpponentCaptain]
	captain.Pilot = crew.MaxSkill
	captain.Fighter = crew.MaxSkill
	captain.Trader = crew.MaxSkill
	captain.Engineer = crew.MaxSkill
	return opp
}

// hullTries is the number of ship type draws for the category
func (g opponentGen) hullTries() int {
	d := int(g.p.Difficulty) - int(shared.Normal)
	switch g.p.Category {
	case Mantis:
		return 1 + int(g.p.Difficulty)
	case Police:
		tries := 1
		if g.p.PoliceScore < shared.VillainScore && !g.p.WildAboard {
			tries = 3
		} else if g.p.PoliceScore < shared.PsychopathScore || g.p.WildAboard {
			tries = 5
		}
		return utils.Max(1, tries+d)
	case Pirate:
		return utils.Max(1, 1+g.p.Worth/100000+d)
	}
	return 1
}

// flies reports whether the faction flies the hull in this government
func (g opponentGen) flies(st *tables.ShipType, k int) bool {
	var floor, strength int
	switch g.p.Category {
	case Police:
		floor, strength = st.Police, g.p.Politics.StrengthPolice
	case Pirate:
		floor, strength = st.Pirates, g.p.Politics.StrengthPirates
	case Trader:
		floor, strength = st.Traders, g.p.Politics.StrengthTraders
	default:
		return true
	}
	return floor >= 0 && strength+k >= floor
}

// drawHull walks the occurrence table once, redrawing until the faction
// flies the result. It reports false when the redraw budget runs out.
func (g opponentGen) drawHull(k int) (int, bool) {
	for n := 0; n < hullRedraws; n++ {
		d := g.r.Below(100)
		i := 0
		sum := g.t.ShipTypes[0].Occurrence
		for sum < d && i < tables.MaxShipType-1 {
			i++
			sum += g.t.ShipTypes[i].Occurrence
		}
		if g.flies(&g.t.ShipTypes[i], k) {
			return i, true
		}
	}
	return 0, false
}

// hullType keeps the best of tries filtered draws. The Mantis still
// consumes its draws before taking its fixed hull.
func (g opponentGen) hullType(tries int) int {
	best := tables.GnatType
	if g.p.Category == Trader {
		best = tables.FleaType
	}
	k := utils.Max(0, int(g.p.Difficulty)-int(shared.Normal))
	for j := 0; j < tries; j++ {
		if i, ok := g.drawHull(k); ok && i > best {
			best = i
		}
	}
	if g.p.Category == Mantis {
		return tables.MantisType
	}
	return best
}

// weighted walks a chance table and returns the band k falls into. The
// last entry with a chance is the fallback.
func weighted(chances func(int) int, count, k int) int {
	j := 0
	sum := chances(0)
	for sum < k && j < count-1 {
		j++
		sum += chances(j)
	}
	return j
}

// slotCount decides how many slots of a category get filled. Up to Hard a
// random number is drawn and topped up by bump; Impossible fills them all.
func (g opponentGen) slotCount(slots int, draw func() int, bump func(d int) int) int {
	if slots <= 0 {
		return 0
	}
	if g.p.Difficulty > shared.Hard {
		return slots
	}
	d := draw()
	if d < slots {
		d = bump(d)
	}
	return d
}

func (g opponentGen) fitGadgets(opp *ship.Ship, spec *tables.ShipType, tries int) {
	d := g.slotCount(spec.GadgetSlots,
		func() int { return g.r.Below(spec.GadgetSlots + 1) },
		func(d int) int {
			if tries > 4 {
				return d + 1
			} else if tries > 2 {
				return d + g.r.Below(2)
			}
			return d
		})

	chance := func(i int) int { return g.t.Gadgets[i].Chance }
	for i := 0; i < d; i++ {
		best := 0
		for e := 0; e < tries; e++ {
			j := weighted(chance, tables.MaxGadgetType, g.r.Below(100))
			if !opp.HasGadget(j) && j > best {
				best = j
			}
		}
		opp.Gadgets[i] = shared.Occupied(best)
	}
}

func (g opponentGen) fillCargo(opp *ship.Ship, spec *tables.ShipType) {
	bays := spec.CargoBays
	for _, slot := range opp.Gadgets {
		if idx, ok := slot.Index(); ok && idx == tables.ExtraBays {
			bays += 5
		}
	}
	if bays <= 5 {
		return
	}

	sum := bays
	if g.p.Difficulty >= shared.Normal {
		sum = utils.Min(3+g.r.Below(bays-5), 15)
	}
	switch g.p.Category {
	case Police:
		sum = 0
	case Pirate:
		if g.p.Difficulty < shared.Normal {
			sum = sum * 4 / 5
		} else {
			sum = sum / int(g.p.Difficulty)
		}
	}
	sum = utils.Max(1, sum)

	for filled := 0; filled < sum; {
		item := g.r.Below(tables.MaxTradeItem)
		amount := utils.Min(1+g.r.Below(10-item), sum-filled)
		opp.Cargo[item] += amount
		filled += amount
	}
}

func (g opponentGen) fitWeapons(opp *ship.Ship, spec *tables.ShipType, tries int) {
	var d int
	switch {
	case spec.WeaponSlots <= 0:
		d = 0
	case spec.WeaponSlots == 1:
		d = 1
	default:
		d = g.slotCount(spec.WeaponSlots,
			func() int { return 1 + g.r.Below(spec.WeaponSlots) },
			func(d int) int {
				if tries > 4 && g.p.Difficulty >= shared.Hard {
					return d + 1
				} else if tries > 3 || g.p.Difficulty >= shared.Hard {
					return d + g.r.Below(2)
				}
				return d
			})
	}

	chance := func(i int) int { return g.t.Weapons[i].Chance }
	for i := 0; i < d; i++ {
		best := 0
		for e := 0; e < tries; e++ {
			if j := weighted(chance, tables.MaxWeaponType, g.r.Below(100)); j > best {
				best = j
			}
		}
		opp.Weapons[i] = shared.Occupied(best)
	}
}

func (g opponentGen) fitShields(opp *ship.Ship, spec *tables.ShipType, tries int) {
	d := g.slotCount(spec.ShieldSlots,
		func() int { return g.r.Below(spec.ShieldSlots + 1) },
		func(d int) int {
			if tries > 3 {
				return d + 1
			} else if tries > 1 {
				return d + g.r.Below(2)
			}
			return d
		})

	chance := func(i int) int { return g.t.Shields[i].Chance }
	for i := 0; i < d; i++ {
		best := 0
		for e := 0; e < tries; e++ {
			if j := weighted(chance, tables.MaxShieldType, g.r.Below(100)); j > best {
				best = j
			}
		}
		opp.Shields[i] = shared.Occupied(best)
		opp.ShieldStrength[i] = g.bestOfFive(g.t.Shields[best].Power)
	}
}

// bestOfFive returns the highest of five draws in [1, max]
func (g opponentGen) bestOfFive(max int) int {
	best := 0
	for i := 0; i < 5; i++ {
		if v := 1 + g.r.Below(max); v > best {
			best = v
		}
	}
	return best
}

func (g opponentGen) rollHull(opp *ship.Ship, spec *tables.ShipType) {
	if !opp.Shields[0].IsEmpty() && g.r.Below(10) <= 7 {
		opp.Hull = spec.HullStrength
	} else {
		opp.Hull = g.bestOfFive(spec.HullStrength)
	}
	if g.p.Category == Mantis {
		opp.Hull = spec.HullStrength
	}
}

func (g opponentGen) rollCrew(opp *ship.Ship, spec *tables.ShipType, roster *crew.Roster) {
	opp.Crew[0] = shared.Occupied(crew.OpponentCaptain)
	captain := &roster[crew.OpponentCaptain]
	captain.Pilot = 1 + g.r.Below(crew.MaxSkill)
	captain.Fighter = 1 + g.r.Below(crew.MaxSkill)
	captain.Trader = 1 + g.r.Below(crew.MaxSkill)
	captain.Engineer = 1 + g.r.Below(crew.MaxSkill)
	// Wild's old crew at Kravat hunts him with a top engineer
	if g.p.AtKravat && g.p.WildAboard && g.r.Below(10) < int(g.p.Difficulty)+1 {
		captain.Engineer = crew.MaxSkill
	}

	d := spec.CrewQuarters
	if g.p.Difficulty <= shared.Hard {
		d = 1 + g.r.Below(spec.CrewQuarters)
		if g.p.Difficulty >= shared.Hard && d < spec.CrewQuarters {
			d++
		}
	}
	for i := 1; i < d && i < ship.MaxCrew; i++ {
		opp.Crew[i] = shared.Occupied(g.r.Below(tables.MaxCrewMember))
	}
}
