package galaxy

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

var fixedEvents = []struct {
	system int
	event  int
}{
	{tables.AcamarSystem, tables.MonsterKilled},
	{tables.BaratasSystem, tables.FlyBaratas},
	{tables.MelinaSystem, tables.FlyMelina},
	{tables.RegulasSystem, tables.FlyRegulas},
	{tables.ZalkonSystem, tables.DragonflyDestroyed},
	{tables.JaporiSystem, tables.MedicineDelivery},
	{tables.UtopiaSystem, tables.MoonBought},
	{tables.DevidiaSystem, tables.JarekGetsOut},
	{tables.KravatSystem, tables.WildGetsOut},
}

func (g *Galaxy) placeFixedEvents() {
	for _, f := range fixedEvents {
		g.Systems[f.system].Special = f.event
	}
}

// scarabExcluded are the quest hubs a Scarab wormhole may not end at
func scarabExcluded(id int) bool {
	return id == tables.GemulonSystem || id == tables.DaledSystem || id == tables.NixSystem
}

// placeScarab picks a free wormhole endpoint for the Scarab. Without one
// the Scarab never appears in this galaxy.
func (g *Galaxy) placeScarab(r shared.Random) {
	j := r.Below(MaxWormhole)
	k := 0
	for k < scarabProbes && (g.Systems[g.Wormholes[j]].HasSpecial() || scarabExcluded(g.Wormholes[j])) {
		j = r.Below(MaxWormhole)
		k++
	}
	if k < scarabProbes {
		g.ScarabPlaced = true
		g.Systems[g.Wormholes[j]].Special = tables.ScarabDestroyed
	}
}

// nearestFree returns the closest system at least QuestDistance away from
// anchor that has no special event and passes ok, or -1.
func (g *Galaxy) nearestFree(anchor int, ok func(id int) bool) int {
	best, bestDist := -1, 999
	for i := range g.Systems {
		d := g.Distance(anchor, i)
		if d >= QuestDistance && d < bestDist && !g.Systems[i].HasSpecial() && ok(i) {
			best, bestDist = i, d
		}
	}
	return best
}

func notHub(id int) bool {
	return id != tables.GemulonSystem && id != tables.DaledSystem
}

func (g *Galaxy) placeQuests(r shared.Random) {
	if s := g.nearestFree(tables.NixSystem, notHub); s >= 0 {
		g.Systems[s].Special = tables.GetReactor
		g.Systems[tables.NixSystem].Special = tables.ReactorDelivered
	}

	g.placeArtifact(r)

	if s := g.nearestFree(tables.GemulonSystem, notHub); s >= 0 {
		g.Systems[s].Special = tables.AlienInvasion
		g.Systems[tables.GemulonSystem].Special = tables.GemulonRescued
	}

	if s := g.nearestFree(tables.DaledSystem, func(int) bool { return true }); s >= 0 {
		g.Systems[s].Special = tables.Experiment
		g.Systems[tables.DaledSystem].Special = tables.ExperimentStopped
	}
}

// placeArtifact probes for a hi-tech system to receive the alien artifact.
// Failing that, the artifact never shows up in this galaxy.
func (g *Galaxy) placeArtifact(r shared.Random) {
	for probe := 0; probe < tables.MaxSolarSystem; probe++ {
		d := 1 + r.Below(tables.MaxSolarSystem-1)
		sys := &g.Systems[d]
		if !sys.HasSpecial() && sys.TechLevel >= system.MaxTechLevel-1 && notHub(d) {
			sys.Special = tables.ArtifactDelivery
			return
		}
	}
	g.Occurrences[tables.AlienArtifact] = 0
}

// scatterEvents places each occurrence of the random events on a system
// without one. The Scarab occurrence consumes its draw but is only placed
// when the Scarab has an endpoint.
func (g *Galaxy) scatterEvents(r shared.Random) {
	for ev := tables.MoonForSale; ev < tables.MaxSpecialEvent-tables.EndFixed; ev++ {
		for occ := 0; occ < g.Occurrences[ev]; occ++ {
			for attempt := 0; attempt < eventBudget; attempt++ {
				d := 1 + r.Below(tables.MaxSolarSystem-1)
				if g.Systems[d].HasSpecial() {
					continue
				}
				if g.ScarabPlaced || ev != tables.Scarab {
					g.Systems[d].Special = ev
				}
				break
			}
		}
	}
}
