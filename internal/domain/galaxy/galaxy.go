// Package galaxy generates the 120-system galaxy with its wormhole ring and
// quest anchors, and answers distance and wormhole queries about it.
package galaxy

import (
	"errors"
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// Layout constants
const (
	MaxWormhole   = 6
	Width         = 150
	Height        = 110
	MinDistance   = 6
	CloseDistance = 13
	// QuestDistance is the minimum distance between a quest anchor and its start
	QuestDistance = 70
)

// Retry budgets for the rejection loops
const (
	placementBudget = 10000
	eventBudget     = 1000
	scarabProbes    = 20
)

// ErrPlacementExhausted is returned when a system cannot be placed within
// the retry budget.
var ErrPlacementExhausted = errors.New("system placement retry budget exhausted")

// Galaxy is the generated star map. Occurrences is this galaxy's own copy
// of the special event weights; quests that could not be anchored are
// disabled here and never in the shared tables.
type Galaxy struct {
	Systems     []system.SolarSystem `json:"systems"`
	Wormholes   [MaxWormhole]int     `json:"wormholes"`
	Occurrences []int                `json:"occurrences"`
	// ScarabPlaced reports whether the Scarab quest has a wormhole endpoint
	ScarabPlaced bool `json:"scarab_placed"`
}

// System returns a system by id
func (g *Galaxy) System(id int) (*system.SolarSystem, error) {
	if err := shared.CheckIndex("solar system", id, len(g.Systems)); err != nil {
		return nil, err
	}
	return &g.Systems[id], nil
}

// Distance is the rounded straight-line distance between two systems
func (g *Galaxy) Distance(a, b int) int {
	return shared.RealDistance(g.Systems[a].Position(), g.Systems[b].Position())
}

// WithinRange lists the systems other than from that lie within parsecs
func (g *Galaxy) WithinRange(from, parsecs int) []int {
	var out []int
	for i := range g.Systems {
		if i != from && g.Distance(from, i) <= parsecs {
			out = append(out, i)
		}
	}
	return out
}

func (g *Galaxy) wormholeSlot(a int) int {
	for i, w := range g.Wormholes {
		if w == a {
			return i
		}
	}
	return -1
}

// WormholeExists reports whether a wormhole leads from a to b. The ring
// connects each wormhole to the next one. A negative b asks whether a has
// any wormhole.
func (g *Galaxy) WormholeExists(a, b int) bool {
	i := g.wormholeSlot(a)
	if i < 0 {
		return false
	}
	if b < 0 {
		return true
	}
	return g.Wormholes[(i+1)%MaxWormhole] == b
}

// WormholeTarget returns the system the wormhole at a leads to
func (g *Galaxy) WormholeTarget(a int) (int, bool) {
	i := g.wormholeSlot(a)
	if i < 0 {
		return 0, false
	}
	return g.Wormholes[(i+1)%MaxWormhole], true
}

// Generate builds a new galaxy. Every draw comes from r, so the same
// generator state always yields the same galaxy.
func Generate(r shared.Random, t *tables.Tables, difficulty shared.Difficulty) (*Galaxy, error) {
	g := &Galaxy{
		Systems:     make([]system.SolarSystem, 0, tables.MaxSolarSystem),
		Occurrences: t.Occurrences(),
	}

	for i := 0; i < tables.MaxSolarSystem; i++ {
		sys, err := g.placeSystem(r, t, i)
		if err != nil {
			return nil, err
		}
		g.Systems = append(g.Systems, sys)
		market.InitQuantities(t, &g.Systems[i], difficulty, r)
	}

	g.shufflePositions(r)
	g.shuffleWormholes(r)
	g.placeFixedEvents()
	g.placeScarab(r)
	g.placeQuests(r)
	g.scatterEvents(r)
	return g, nil
}

// placeSystem draws position and attributes for system i until they satisfy
// the spacing and government rules.
func (g *Galaxy) placeSystem(r shared.Random, t *tables.Tables, i int) (system.SolarSystem, error) {
	for attempt := 0; attempt < placementBudget; attempt++ {
		sys := system.SolarSystem{NameIndex: i, Special: system.NoSpecial}

		if i < MaxWormhole {
			sys.X = (CloseDistance >> 1) - r.Below(CloseDistance) + Width*(1+2*(i%3))/6
			row := 1
			if i >= 3 {
				row = 3
			}
			sys.Y = (CloseDistance >> 1) - r.Below(CloseDistance) + Height*row/4
			g.Wormholes[i] = i
		} else {
			sys.X = 1 + r.Below(Width-2)
			sys.Y = 1 + r.Below(Height-2)
			if !g.wellSpaced(sys.Position()) {
				continue
			}
		}

		sys.TechLevel = r.Below(system.MaxTechLevel)
		sys.Politics = r.Below(tables.MaxPolitics)
		if !t.Politics[sys.Politics].AllowsTech(sys.TechLevel) {
			continue
		}

		if r.Below(5) >= 3 {
			sys.Resource = system.Resource(1 + r.Below(system.MaxResources-1))
		} else {
			sys.Resource = system.NothingSpecial
		}

		sys.Size = r.Below(system.MaxSize)

		if r.Below(100) < 15 {
			sys.Status = system.Status(1 + r.Below(system.MaxStatus-1))
		} else {
			sys.Status = system.Uneventful
		}
		return sys, nil
	}
	return system.SolarSystem{}, fmt.Errorf("system %d: %w", i, ErrPlacementExhausted)
}

// wellSpaced rejects positions too close to an existing system and
// positions without any neighbour in close range.
func (g *Galaxy) wellSpaced(p shared.Position) bool {
	closeFound := false
	for j := range g.Systems {
		d := shared.SqrDistance(g.Systems[j].Position(), p)
		if d <= utils.Sqr(MinDistance+1) {
			return false
		}
		if d < utils.Sqr(CloseDistance) {
			closeFound = true
		}
	}
	return closeFound
}

func (g *Galaxy) isWormhole(id int) bool {
	return g.wormholeSlot(id) >= 0
}

// shufflePositions swaps coordinates between systems so names do not
// cluster alphabetically. Wormhole slots follow their system.
func (g *Galaxy) shufflePositions(r shared.Random) {
	for ii := range g.Systems {
		d := g.wormholeSlot(ii)
		j := r.Below(tables.MaxSolarSystem)
		if g.isWormhole(j) {
			continue
		}
		a, b := &g.Systems[ii], &g.Systems[j]
		a.X, b.X = b.X, a.X
		a.Y, b.Y = b.Y, a.Y
		if d >= 0 {
			g.Wormholes[d] = j
		}
	}
}

func (g *Galaxy) shuffleWormholes(r shared.Random) {
	for ii := 0; ii < MaxWormhole; ii++ {
		j := r.Below(MaxWormhole)
		g.Wormholes[ii], g.Wormholes[j] = g.Wormholes[j], g.Wormholes[ii]
	}
}
