// Package game is the aggregate tying the simulation together: one
// commander, one galaxy and the generator every decision draws from.
// Commands mutate the game in place and record their credit movements in
// the attached journal.
package game

import (
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/calendar"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/galaxy"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/rng"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/skill"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

const (
	StartingCredits = 1000
	// StartingSkillPoints is the most a new commander may distribute
	StartingSkillPoints = 20

	startProbes       = 200
	strictStartProbes = 100
	minReachable      = 3
	// placementBudget bounds the redraws for one mercenary's home system
	placementBudget = 1000
)

// Params configures a new game. Skills are indexed by crew.Kind.
type Params struct {
	ID         string
	Commander  string
	Difficulty shared.Difficulty
	SeedX      uint32
	SeedY      uint32
	Skills     [crew.MaxSkillKind]int
}

// Validate checks the difficulty and the starting skill distribution
func (p Params) Validate() error {
	if !p.Difficulty.IsValid() {
		return shared.NewValidationError("difficulty", fmt.Sprintf("unknown difficulty %d", int(p.Difficulty)))
	}
	sum := 0
	for k, v := range p.Skills {
		if v < 1 || v > crew.MaxSkill {
			return shared.NewValidationError(crew.Kind(k).String(), fmt.Sprintf("must be between 1 and %d, got %d", crew.MaxSkill, v))
		}
		sum += v
	}
	if sum > StartingSkillPoints {
		return shared.NewValidationError("skills", fmt.Sprintf("%d points exceed the %d available", sum, StartingSkillPoints))
	}
	return nil
}

// Kills counts destroyed ships per faction
type Kills struct {
	Police int `json:"police"`
	Pirate int `json:"pirate"`
	Trader int `json:"trader"`
}

// Game is the complete state of one commander's career. It serializes to
// JSON as a whole; the tables are reattached with Attach after loading.
type Game struct {
	ID          string                   `json:"id"`
	Commander   string                   `json:"commander"`
	Difficulty  shared.Difficulty        `json:"difficulty"`
	RNG         rng.Generator            `json:"rng"`
	Galaxy      *galaxy.Galaxy           `json:"galaxy"`
	Roster      crew.Roster              `json:"roster"`
	Ship        ship.Ship                `json:"ship"`
	Balance     ledger.Balance           `json:"balance"`
	BuyingPrice [tables.MaxTradeItem]int `json:"buying_price"`
	Prices      market.Prices            `json:"prices"`
	Quests      calendar.Quests          `json:"quests"`
	PoliceScore int                      `json:"police_score"`
	Reputation  int                      `json:"reputation"`
	Kills       Kills                    `json:"kills"`
	EscapePod   bool                     `json:"escape_pod"`
	Insurance   bool                     `json:"insurance"`
	NoClaim     int                      `json:"no_claim"`
	// Inspected is set once the police inspected the commander on the current trip
	Inspected          bool               `json:"inspected"`
	ArrivedViaWormhole bool               `json:"arrived_via_wormhole"`
	Encounter          *Encounter         `json:"encounter,omitempty"`
	Ended              bool               `json:"ended"`
	EndStatus          calendar.EndStatus `json:"end_status"`

	tables  *tables.Tables
	journal *ledger.Journal
}

// New generates the galaxy, scatters the mercenaries, picks a start
// system and fits out the commander's Gnat.
func New(t *tables.Tables, p Params) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	id := p.ID
	if id == "" {
		id = utils.GenerateGameID(p.Commander)
	}

	g := &Game{
		ID:         id,
		Commander:  p.Commander,
		Difficulty: p.Difficulty,
		RNG:        *rng.New(p.SeedX, p.SeedY),
		tables:     t,
	}

	gal, err := galaxy.Generate(&g.RNG, t, p.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to generate galaxy: %w", err)
	}
	g.Galaxy = gal

	g.Roster[crew.Commander] = crew.Member{
		Pilot:    p.Skills[crew.Pilot],
		Fighter:  p.Skills[crew.Fighter],
		Trader:   p.Skills[crew.Trader],
		Engineer: p.Skills[crew.Engineer],
	}
	g.placeMercenaries()
	start := g.findStart()
	g.Roster[crew.Commander].CurSystem = start

	g.Ship = ship.NewEmpty(tables.GnatType)
	g.Ship.Weapons[0] = shared.Occupied(tables.PulseLaser)
	g.Ship.Crew[0] = shared.Occupied(crew.Commander)
	g.Ship.Fuel = t.ShipTypes[tables.GnatType].FuelTanks
	g.Ship.Hull = t.ShipTypes[tables.GnatType].HullStrength

	g.Balance.Credits = StartingCredits
	g.Quests.MonsterHull = t.ShipTypes[tables.SpaceMonsterType].HullStrength

	sys := g.CurrentSystem()
	sys.Visited = true
	g.Prices = market.DeterminePrices(t, sys, &g.RNG, g.Skills().Trader(&g.Ship), g.PoliceScore)
	return g, nil
}

// placeMercenaries gives every mercenary a home system of their own, never
// Kravat. Zeethibal is parked off the map.
func (g *Game) placeMercenaries() {
	for i := 1; i < crew.RosterSize; i++ {
		m := &g.Roster[i]
		m.NameIndex = i
		m.CurSystem = g.homeSystem(i)
		m.Pilot = crew.RandomSkill(&g.RNG)
		m.Fighter = crew.RandomSkill(&g.RNG)
		m.Trader = crew.RandomSkill(&g.RNG)
		m.Engineer = crew.RandomSkill(&g.RNG)
	}
	g.Roster[crew.Zeethibal].CurSystem = crew.OffMap
}

func (g *Game) homeSystem(i int) int {
	taken := func(s int) bool {
		if s == tables.KravatSystem {
			return true
		}
		for j := 1; j < i; j++ {
			if g.Roster[j].CurSystem == s {
				return true
			}
		}
		return false
	}
	for n := 0; n < placementBudget; n++ {
		if s := g.RNG.Below(tables.MaxSolarSystem); !taken(s) {
			return s
		}
	}
	for s := 0; s < tables.MaxSolarSystem; s++ {
		if !taken(s) {
			return s
		}
	}
	return crew.OffMap
}

// findStart looks for a system without a special event from which a Gnat
// reaches at least three others. The first half of the probes also demand
// a middle tech level.
func (g *Game) findStart() int {
	reach := utils.Sqr(g.tables.ShipTypes[tables.GnatType].FuelTanks)
	start := 0
	for attempt := 0; attempt < startProbes; attempt++ {
		start = g.RNG.Below(tables.MaxSolarSystem)
		sys := &g.Galaxy.Systems[start]
		if sys.HasSpecial() {
			continue
		}
		if attempt < strictStartProbes && (sys.TechLevel <= 0 || sys.TechLevel >= 6) {
			continue
		}
		reachable := 0
		for j := range g.Galaxy.Systems {
			if j != start && shared.SqrDistance(g.Galaxy.Systems[j].Position(), sys.Position()) <= reach {
				reachable++
			}
		}
		if reachable >= minReachable {
			break
		}
	}
	return start
}

// Attach binds the static tables after a game was decoded
func (g *Game) Attach(t *tables.Tables) {
	g.tables = t
}

func (g *Game) Tables() *tables.Tables {
	return g.tables
}

// BeginJournal starts recording credit movements into a fresh journal
func (g *Game) BeginJournal(clock shared.Clock) *ledger.Journal {
	g.journal = ledger.NewJournal(g.ID, clock)
	return g.journal
}

// record moves amount credits and journals the movement. Negative amounts
// are expenses.
func (g *Game) record(t ledger.TransactionType, amount int, description string) error {
	before := g.Balance.Credits
	g.Balance.Credits += amount
	if g.journal == nil {
		return nil
	}
	if err := g.journal.Record(g.Quests.Days, t, amount, before, description); err != nil {
		return fmt.Errorf("failed to record %s: %w", t, err)
	}
	return nil
}

// ready rejects commands after the game ended or while an encounter waits
func (g *Game) ready() error {
	if g.Ended {
		return ErrGameOver
	}
	if g.Encounter != nil {
		return ErrEncounterPending
	}
	return nil
}

// CurrentSystemID is where the commander is docked
func (g *Game) CurrentSystemID() int {
	return g.Roster[crew.Commander].CurSystem
}

func (g *Game) CurrentSystem() *system.SolarSystem {
	return &g.Galaxy.Systems[g.CurrentSystemID()]
}

// Skills reads the roster with the game's difficulty and quest bonuses
func (g *Game) Skills() skill.Model {
	return skill.Model{Roster: &g.Roster, Difficulty: g.Difficulty, DiplomatAboard: g.Quests.DiplomatBonus()}
}

// Worth is the ship with its cargo basis plus cash minus debt
func (g *Game) Worth() int {
	price := g.Ship.Price(g.tables, false, g.Quests.HullUpgraded(), g.BuyingPrice)
	return ledger.CurrentWorth(price, g.Balance, g.Quests.MoonBought)
}

// Bays is the usable cargo capacity
func (g *Game) Bays() int {
	return g.Ship.TotalCargoBays(g.tables, g.Quests.DiseaseAboard(), g.Quests.ReactorStatus)
}

// Payroll is the daily wage of the hired crew
func (g *Game) Payroll() int {
	return ledger.MercenaryPayroll(&g.Ship, &g.Roster, g.Quests.WildFreed())
}

// InsurancePremium is the daily insurance charge
func (g *Game) InsurancePremium() int {
	insured := g.Ship.PriceWithoutCargo(g.tables, true, g.Quests.HullUpgraded())
	return ledger.InsurancePremium(g.Insurance, insured, g.NoClaim)
}

// MaxLoan is what the bank lends the commander in total
func (g *Game) MaxLoan() int {
	return ledger.MaxLoan(g.PoliceScore, g.Worth())
}

// Score rates the career as if it ended now with the given status
func (g *Game) Score(end calendar.EndStatus) int {
	return calendar.Score(end, g.Quests.Days, g.Worth(), g.Difficulty)
}

// Quotes lists the local market with the cargo held
func (g *Game) Quotes() []market.Quote {
	return market.Board(g.tables, g.CurrentSystem(), &g.Prices, g.Ship.Cargo)
}

// Reachable lists the systems the current fuel or a wormhole can reach
func (g *Game) Reachable() []int {
	from := g.CurrentSystemID()
	out := g.Galaxy.WithinRange(from, g.Ship.CurrentFuel(g.tables))
	if to, ok := g.Galaxy.WormholeTarget(from); ok {
		for _, s := range out {
			if s == to {
				return out
			}
		}
		out = append(out, to)
	}
	return out
}

// Retire ends the game on the commander's own terms
func (g *Game) Retire() (int, error) {
	if err := g.ready(); err != nil {
		return 0, err
	}
	end := calendar.Retired
	if g.Quests.MoonBought {
		end = calendar.Moon
	}
	g.Ended = true
	g.EndStatus = end
	return g.Score(end), nil
}
