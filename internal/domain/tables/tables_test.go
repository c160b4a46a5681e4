package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

func TestLoad_CountsAndOrder(t *testing.T) {
	tb, err := tables.Load()
	require.NoError(t, err)

	assert.Len(t, tb.TradeItems, tables.MaxTradeItem)
	assert.Len(t, tb.ShipTypes, tables.BottleType+1)
	assert.Len(t, tb.Politics, tables.MaxPolitics)
	assert.Len(t, tb.SpecialEvents, tables.MaxSpecialEvent)
	assert.Len(t, tb.SystemNames, tables.MaxSolarSystem)
	assert.Len(t, tb.MercenaryNames, tables.MaxCrewMember)

	assert.Equal(t, "Narcotics", tb.TradeItems[tables.Narcotics].Name)
	assert.Equal(t, "Gnat", tb.ShipTypes[tables.GnatType].Name)
	assert.Equal(t, "Scarab", tb.ShipTypes[tables.ScarabType].Name)
	assert.Equal(t, "Morgan's laser", tb.Weapons[tables.MorganLaser].Name)
	assert.Equal(t, "Cloaking device", tb.Gadgets[tables.CloakingDevice].Name)
	assert.Equal(t, "Wild Gets Out", tb.SpecialEvents[tables.WildGetsOut].Title)
}

func TestLoad_AnchorSystemNames(t *testing.T) {
	tb := tables.MustLoad()

	anchors := map[int]string{
		tables.AcamarSystem:  "Acamar",
		tables.BaratasSystem: "Baratas",
		tables.DaledSystem:   "Daled",
		tables.DevidiaSystem: "Devidia",
		tables.GemulonSystem: "Gemulon",
		tables.JaporiSystem:  "Japori",
		tables.KravatSystem:  "Kravat",
		tables.MelinaSystem:  "Melina",
		tables.NixSystem:     "Nix",
		tables.OgSystem:      "Og",
		tables.RegulasSystem: "Regulas",
		tables.SolSystem:     "Sol",
		tables.UtopiaSystem:  "Utopia",
		tables.ZalkonSystem:  "Zalkon",
	}
	for idx, name := range anchors {
		assert.Equal(t, name, tb.SystemName(idx))
	}
	assert.Equal(t, "Zeethibal", tb.MercenaryName(30))
	assert.Equal(t, "Captain", tb.MercenaryName(tables.MaxCrewMember))
}

func TestLoad_ResolvesEnumsAndWanted(t *testing.T) {
	tb := tables.MustLoad()

	water := tb.TradeItems[tables.Water]
	assert.Equal(t, system.Drought, water.DoublePriceStatus)
	assert.Equal(t, system.LotsOfWater, water.CheapResource)
	assert.Equal(t, system.Desert, water.ExpensiveResource)
	assert.Equal(t, system.NoResource, tb.TradeItems[tables.Robots].CheapResource)

	assert.Equal(t, tables.Food, tb.Politics[tables.Anarchy].Wanted)
	assert.Equal(t, -1, tb.Politics[2].Wanted)
	assert.Equal(t, tables.Narcotics, tb.Politics[16].Wanted)
}

func TestShipTypes_Values(t *testing.T) {
	tb := tables.MustLoad()

	flea := tb.ShipTypes[tables.FleaType]
	assert.Equal(t, tables.MaxRange, flea.FuelTanks)
	assert.Equal(t, -1, flea.Police)

	gnat := tb.ShipTypes[tables.GnatType]
	assert.Equal(t, 14, gnat.FuelTanks)
	assert.Equal(t, 2, gnat.CostOfFuel)
	assert.Equal(t, 100, gnat.HullStrength)

	total := 0
	for i := 0; i < tables.MaxShipType; i++ {
		total += tb.ShipTypes[i].Occurrence
	}
	assert.Equal(t, 100, total, "buyable hull occurrence weights form a percentage table")
}

func TestPolitics_Allows(t *testing.T) {
	tb := tables.MustLoad()
	cybernetic := tb.Politics[5]

	assert.False(t, cybernetic.Allows(tables.Narcotics))
	assert.False(t, cybernetic.Allows(tables.Firearms))
	assert.True(t, cybernetic.Allows(tables.Water))
	assert.True(t, cybernetic.AllowsTech(6))
	assert.False(t, cybernetic.AllowsTech(5))
}

func TestOccurrences_ReturnsCopy(t *testing.T) {
	tb := tables.MustLoad()

	occ := tb.Occurrences()
	occ[tables.AlienArtifact] = 0

	assert.Equal(t, 1, tb.SpecialEvents[tables.AlienArtifact].Occurrence)
}
