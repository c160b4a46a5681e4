package game

import (
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/calendar"
	"github.com/10igma/spacetrader-web/internal/domain/combat"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/encounter"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/market"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// WormholeTaxFactor times the fuel cost of the hull is the wormhole toll
const WormholeTaxFactor = 25

// mantisChance is out of mantisRoll per warp while the artifact is aboard
const (
	mantisChance = 3
	mantisRoll   = 20
)

// Encounter is an opponent met on the way to Destination. The warp
// completes once the encounter ends.
type Encounter struct {
	Destination int                `json:"destination"`
	Category    encounter.Category `json:"category"`
	Type        encounter.Type     `json:"type"`
	Opponent    ship.Ship          `json:"opponent"`
	Rounds      int                `json:"rounds"`
}

// WarpResult reports a warp. Encounter is set when the trip was
// interrupted; Arrived is set once the commander docked at To.
type WarpResult struct {
	From        int
	To          int
	Distance    int
	ViaWormhole bool
	Costs       int
	Encounter   *Encounter
	Arrived     bool
	Report      calendar.Report
}

// Warp flies to target. Departure costs are paid up front, then the
// encounter roll decides whether the commander arrives right away.
func (g *Game) Warp(target int) (*WarpResult, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}
	if err := shared.CheckIndex("solar system", target, len(g.Galaxy.Systems)); err != nil {
		return nil, err
	}
	from := g.CurrentSystemID()
	if target == from {
		return nil, ErrAlreadyHere
	}
	if g.Balance.Debt > ledger.DebtCeiling {
		return nil, ErrDebtTooLarge
	}

	t := g.tables
	viaWormhole := g.Galaxy.WormholeExists(from, target)
	distance := 0
	if !viaWormhole {
		distance = g.Galaxy.Distance(from, target)
		if fuel := g.Ship.CurrentFuel(t); distance > fuel {
			return nil, NewOutOfRangeError(target, distance, fuel)
		}
	}

	tax := 0
	if viaWormhole {
		tax = g.Ship.Spec(t).CostOfFuel * WormholeTaxFactor
	}
	payroll := g.Payroll()
	premium := g.InsurancePremium()
	costs := tax + payroll + premium
	if costs > g.Balance.Credits {
		return nil, fmt.Errorf("%w: departure costs %d", ErrInsufficientCredits, costs)
	}
	if err := g.record(ledger.TransactionTypeWormholeTax, -tax, "wormhole tax"); err != nil {
		return nil, err
	}
	if err := g.record(ledger.TransactionTypeMercenaryPay, -payroll, "crew wages"); err != nil {
		return nil, err
	}
	if err := g.record(ledger.TransactionTypeInsurancePremium, -premium, "insurance premium"); err != nil {
		return nil, err
	}

	g.Ship.RefillShields(t)
	g.CurrentSystem().CountDown = g.Difficulty.StartCountdown()
	g.Ship.ConsumeFuel(t, distance)
	g.Inspected = false
	g.ArrivedViaWormhole = viaWormhole

	res := &WarpResult{From: from, To: target, Distance: distance, ViaWormhole: viaWormhole, Costs: costs}
	if enc := g.meet(target); enc != nil {
		g.Encounter = enc
		res.Encounter = enc
		return res, nil
	}

	rep, err := g.arrive(target)
	if err != nil {
		return nil, err
	}
	res.Arrived = true
	res.Report = rep
	return res, nil
}

// questCategory returns the quest ship lying in wait on the way to target
func (g *Game) questCategory(target int) encounter.Category {
	q := &g.Quests
	switch {
	case q.MonsterStatus == calendar.MonsterAwake && target == tables.AcamarSystem:
		return encounter.Monster
	case q.DragonflyStatus == 1 && target == tables.BaratasSystem,
		q.DragonflyStatus == 2 && target == tables.MelinaSystem,
		q.DragonflyStatus == 3 && target == tables.RegulasSystem,
		q.DragonflyStatus == 4 && target == tables.ZalkonSystem:
		return encounter.Dragonfly
	case q.ScarabStatus == calendar.ScarabHunting && g.ArrivedViaWormhole &&
		g.Galaxy.Systems[target].Special == tables.ScarabDestroyed:
		return encounter.Scarab
	case q.ArtifactOnBoard && g.RNG.Below(mantisRoll) <= mantisChance:
		return encounter.Mantis
	}
	return encounter.None
}

// meet rolls for an encounter on the way to target and, when one occurs,
// synthesizes the opponent and its reaction.
func (g *Game) meet(target int) *Encounter {
	t := g.tables
	dest := &g.Galaxy.Systems[target]
	politics := &t.Politics[dest.Politics]

	category := g.questCategory(target)
	if category == encounter.None {
		d := encounter.Decide(&g.RNG, encounter.Context{
			Politics:    politics,
			PoliceScore: g.PoliceScore,
			Difficulty:  g.Difficulty,
		})
		if !d.Occurs() {
			return nil
		}
		category = d.Category
	}

	opp := encounter.GenerateOpponent(&g.RNG, t, &g.Roster, encounter.OpponentParams{
		Category:    category,
		Politics:    politics,
		Difficulty:  g.Difficulty,
		PoliceScore: g.PoliceScore,
		Worth:       g.Worth(),
		WildAboard:  g.Quests.WildAboard(),
		AtKravat:    target == tables.KravatSystem,
		MonsterHull: g.Quests.MonsterHull,
	})

	skills := g.Skills()
	typ, inspection := encounter.Resolve(&g.RNG, category, encounter.Stance{
		PlayerCloaked:   combat.IsCloaked(skills, &g.Ship, &opp),
		OpponentCloaked: combat.IsCloaked(skills, &opp, &g.Ship),
		OpponentType:    opp.Type,
		PoliceScore:     g.PoliceScore,
		Reputation:      g.Reputation,
		Difficulty:      g.Difficulty,
		Inspected:       g.Inspected,
	})
	if inspection {
		g.Inspected = true
	}
	return &Encounter{Destination: target, Category: category, Type: typ, Opponent: opp}
}

// arrive completes a warp: the day passes, the bank charges interest and
// the destination market reopens with fresh prices.
func (g *Game) arrive(target int) (calendar.Report, error) {
	t := g.tables

	paid, balance := ledger.PayInterest(g.Balance)
	if err := g.record(ledger.TransactionTypeInterest, -paid, "loan interest"); err != nil {
		return calendar.Report{}, err
	}
	g.Balance.Debt = balance.Debt

	rep := calendar.IncDays(1, &g.Quests, g.Galaxy)
	if g.Insurance {
		g.NoClaim++
	}
	g.Quests.MonsterHull = calendar.RegenerateMonster(g.Quests.MonsterHull, t.ShipTypes[tables.SpaceMonsterType].HullStrength)
	g.PoliceScore = calendar.DecayPoliceRecord(g.PoliceScore, g.Quests.Days, g.Difficulty)

	g.Roster[crew.Commander].CurSystem = target
	calendar.ShuffleStatus(g.Galaxy.Systems, &g.RNG)
	market.ChangeQuantities(t, g.Galaxy.Systems, g.Difficulty, &g.RNG)

	dest := g.CurrentSystem()
	g.Prices = market.DeterminePrices(t, dest, &g.RNG, g.Skills().Trader(&g.Ship), g.PoliceScore)
	dest.Visited = true
	return rep, nil
}
