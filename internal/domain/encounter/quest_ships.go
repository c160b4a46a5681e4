package encounter

import (
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// questShip builds the fixed loadouts of the monster, the Dragonfly and the
// Scarab. Their captains grow tougher with the difficulty; none draws from
// the generator.
func questShip(t *tables.Tables, roster *crew.Roster, p OpponentParams) ship.Ship {
	d := int(p.Difficulty)
	captain := &roster[crew.OpponentCaptain]

	var opp ship.Ship
	switch p.Category {
	case Monster:
		opp = ship.NewEmpty(tables.SpaceMonsterType)
		for i := range opp.Weapons {
			opp.Weapons[i] = shared.Occupied(tables.MilitaryLaser)
		}
		*captain = crew.Member{Pilot: 8 + d, Fighter: 8 + d, Trader: 1, Engineer: 1 + d}
	case Dragonfly:
		opp = ship.NewEmpty(tables.DragonflyType)
		opp.Weapons[0] = shared.Occupied(tables.MilitaryLaser)
		opp.Weapons[1] = shared.Occupied(tables.PulseLaser)
		for i := range opp.Shields {
			opp.Shields[i] = shared.Occupied(tables.LightningShield)
			opp.ShieldStrength[i] = t.Shields[tables.LightningShield].Power
		}
		opp.Gadgets[0] = shared.Occupied(tables.AutoRepairSystem)
		opp.Gadgets[1] = shared.Occupied(tables.TargetingSystem)
		*captain = crew.Member{Pilot: 4 + d, Fighter: 6 + d, Trader: 1, Engineer: 6 + d}
	default:
		opp = ship.NewEmpty(tables.ScarabType)
		opp.Weapons[0] = shared.Occupied(tables.MilitaryLaser)
		opp.Weapons[1] = shared.Occupied(tables.MilitaryLaser)
		*captain = crew.Member{Pilot: 5 + d, Fighter: 6 + d, Trader: 1, Engineer: 6 + d}
	}
	captain.NameIndex = crew.OpponentCaptain

	opp.Crew[0] = shared.Occupied(crew.OpponentCaptain)
	opp.Fuel = t.ShipTypes[opp.Type].FuelTanks
	opp.Hull = t.ShipTypes[opp.Type].HullStrength
	if p.Category == Monster && p.MonsterHull > 0 {
		opp.Hull = p.MonsterHull
	}
	return opp
}
