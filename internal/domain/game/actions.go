package game

import (
	"fmt"
	"strings"

	"github.com/10igma/spacetrader-web/internal/domain/calendar"
	"github.com/10igma/spacetrader-web/internal/domain/combat"
	"github.com/10igma/spacetrader-web/internal/domain/encounter"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// Action is the commander's answer to an encounter
type Action int

const (
	Attack Action = iota
	Flee
	Ignore
	Submit
	Surrender
)

var actionNames = map[Action]string{
	Attack:    "attack",
	Flee:      "flee",
	Ignore:    "ignore",
	Submit:    "submit",
	Surrender: "surrender",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction parses an action name, case-insensitively
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown encounter action: %s", s)
}

// Fines for trafficking
const (
	MinFine = 100
	MaxFine = 10000
)

// RoundResult reports one encounter action. Ended is set when the
// encounter is over; Arrived once the interrupted warp completed.
type RoundResult struct {
	Action             Action
	Type               encounter.Type
	PlayerShot         combat.Outcome
	OpponentShot       combat.Outcome
	Escaped            bool
	OpponentEscaped    bool
	OpponentDestroyed  bool
	CommanderDestroyed bool
	EscapePodUsed      bool
	Bounty             int
	Fine               int
	Confiscated        int
	Ended              bool
	Arrived            bool
	Report             calendar.Report
}

// Act answers the pending encounter
func (g *Game) Act(a Action) (*RoundResult, error) {
	if g.Ended {
		return nil, ErrGameOver
	}
	enc := g.Encounter
	if enc == nil {
		return nil, ErrNoEncounter
	}
	enc.Rounds++
	res := &RoundResult{Action: a}

	var err error
	switch a {
	case Attack:
		err = g.attack(enc, res)
	case Flee:
		err = g.flee(enc, res)
	case Ignore:
		if enc.Type.Hostile() {
			return nil, NewActionNotAllowedError(a, enc.Type)
		}
		err = g.finish(enc, res)
	case Submit:
		if enc.Type != encounter.PoliceInspection {
			return nil, NewActionNotAllowedError(a, enc.Type)
		}
		err = g.submit(enc, res)
	case Surrender:
		if enc.Type != encounter.PirateAttack {
			return nil, NewActionNotAllowedError(a, enc.Type)
		}
		g.Ship.Cargo = [tables.MaxTradeItem]int{}
		g.BuyingPrice = [tables.MaxTradeItem]int{}
		err = g.finish(enc, res)
	default:
		return nil, NewActionNotAllowedError(a, enc.Type)
	}
	if err != nil {
		return nil, err
	}
	res.Type = enc.Type
	return res, nil
}

func (g *Game) round(attacker, defender *ship.Ship) combat.Round {
	return combat.Round{
		Tables:        g.tables,
		Skills:        g.Skills(),
		Attacker:      attacker,
		Defender:      defender,
		ReactorStatus: g.Quests.ReactorStatus,
		HullUpgraded:  g.Quests.HullUpgraded(),
	}
}

// provoke turns a peaceful encounter hostile once the commander opens fire
func (g *Game) provoke(enc *Encounter) {
	switch enc.Category {
	case encounter.Police:
		if g.PoliceScore > shared.CriminalScore {
			g.PoliceScore = shared.CriminalScore
		}
		g.PoliceScore += shared.AttackPoliceScore
		if !enc.Type.Fleeing() {
			enc.Type = encounter.PoliceAttack
		}
	case encounter.Pirate:
		g.PoliceScore += shared.AttackPirateScore
		if !enc.Type.Fleeing() {
			enc.Type = encounter.PirateAttack
		}
	case encounter.Trader:
		g.PoliceScore += shared.AttackTraderScore
		// Unarmed traders run, armed ones fight back
		if enc.Type.Fleeing() {
			break
		}
		if combat.TotalWeapons(g.tables, &enc.Opponent, combat.AnyWeapon, combat.AnyWeapon) > 0 {
			enc.Type = encounter.TraderAttack
		} else {
			enc.Type = encounter.TraderFlee
		}
	case encounter.Monster:
		enc.Type = encounter.MonsterAttack
	case encounter.Dragonfly:
		enc.Type = encounter.DragonflyAttack
	case encounter.Scarab:
		enc.Type = encounter.ScarabAttack
	case encounter.Famous:
		enc.Type = encounter.FamousCaptainAttack
	}
}

func (g *Game) attack(enc *Encounter, res *RoundResult) error {
	if !enc.Type.Hostile() {
		g.provoke(enc)
	}

	rd := g.round(&g.Ship, &enc.Opponent)
	rd.Fleeing = enc.Type.Fleeing()
	res.PlayerShot = combat.ExecuteAttack(&g.RNG, rd)
	if res.PlayerShot.Destroyed {
		if err := g.opponentKilled(enc, res); err != nil {
			return err
		}
		return g.finish(enc, res)
	}

	if enc.Type.Fleeing() {
		if combat.OpponentFlees(&g.RNG, g.Skills(), &g.Ship, &enc.Opponent) {
			res.OpponentEscaped = true
			return g.finish(enc, res)
		}
		return nil
	}
	return g.returnFire(enc, res, false)
}

func (g *Game) flee(enc *Encounter, res *RoundResult) error {
	if enc.Type == encounter.PoliceInspection {
		g.fleeInspection()
		enc.Type = encounter.PoliceAttack
	}
	if !enc.Type.Hostile() {
		res.Escaped = true
		return g.finish(enc, res)
	}
	if combat.AttemptFlee(&g.RNG, g.Skills(), &g.Ship, &enc.Opponent) {
		res.Escaped = true
		return g.finish(enc, res)
	}
	return g.returnFire(enc, res, true)
}

// fleeInspection marks the commander as dubious at best
func (g *Game) fleeInspection() {
	if g.PoliceScore > shared.DubiousScore {
		g.PoliceScore = shared.DubiousScore
		if g.Difficulty >= shared.Normal {
			g.PoliceScore--
		}
		return
	}
	g.PoliceScore += shared.FleeInspectionScore
}

func (g *Game) returnFire(enc *Encounter, res *RoundResult, fleeing bool) error {
	rd := g.round(&enc.Opponent, &g.Ship)
	rd.Fleeing = fleeing
	rd.CommanderDefends = true
	res.OpponentShot = combat.ExecuteAttack(&g.RNG, rd)
	if res.OpponentShot.Destroyed {
		return g.commanderDestroyed(enc, res)
	}
	return nil
}

// submit lets the police search the hold. Illegal goods are confiscated
// and fined; a clean hold improves the record.
func (g *Game) submit(enc *Encounter, res *RoundResult) error {
	illegal := g.Ship.Cargo[tables.Firearms] + g.Ship.Cargo[tables.Narcotics]
	if illegal == 0 {
		if !g.Quests.WildAboard() {
			g.PoliceScore -= shared.TraffickingScore
		}
		return g.finish(enc, res)
	}

	fine := g.Worth() / ((int(shared.Impossible) + 2 - int(g.Difficulty)) * 10)
	if fine%50 != 0 {
		fine += 50 - fine%50
	}
	fine = utils.Clamp(fine, MinFine, MaxFine)

	cash := utils.Min(fine, g.Balance.Credits)
	if err := g.record(ledger.TransactionTypeFine, -cash, "trafficking fine"); err != nil {
		return err
	}
	g.Balance.Debt += fine - cash

	for _, c := range []int{tables.Firearms, tables.Narcotics} {
		g.Ship.Cargo[c] = 0
		g.BuyingPrice[c] = 0
	}
	g.PoliceScore += shared.TraffickingScore
	res.Fine = fine
	res.Confiscated = illegal
	return g.finish(enc, res)
}

func (g *Game) opponentKilled(enc *Encounter, res *RoundResult) error {
	res.OpponentDestroyed = true
	switch enc.Category {
	case encounter.Police:
		g.Kills.Police++
		g.PoliceScore += shared.KillPoliceScore
	case encounter.Pirate:
		g.Kills.Pirate++
		g.PoliceScore += shared.KillPirateScore
		res.Bounty = combat.Bounty(g.tables, g.Skills(), &enc.Opponent)
		if err := g.record(ledger.TransactionTypeBounty, res.Bounty, "pirate bounty"); err != nil {
			return err
		}
	case encounter.Trader:
		g.Kills.Trader++
		g.PoliceScore += shared.KillTraderScore
	case encounter.Monster:
		g.Quests.MonsterStatus = calendar.MonsterDestroyed
	case encounter.Dragonfly:
		g.Quests.DragonflyStatus = calendar.DragonflyDestroyed
	case encounter.Scarab:
		g.Quests.ScarabStatus = calendar.ScarabDestroyed
	}
	g.Reputation += 1 + enc.Opponent.Type>>1
	return nil
}

// commanderDestroyed ends the game unless an escape pod saves the
// commander. The pod lands in a Flea and the insurance pays for the loss.
func (g *Game) commanderDestroyed(enc *Encounter, res *RoundResult) error {
	res.CommanderDestroyed = true
	if !g.EscapePod {
		g.Encounter = nil
		g.Ended = true
		g.EndStatus = calendar.Killed
		res.Ended = true
		return nil
	}

	res.EscapePodUsed = true
	if g.Insurance {
		payout := g.Ship.PriceWithoutCargo(g.tables, true, g.Quests.HullUpgraded())
		if err := g.record(ledger.TransactionTypeInsurancePayout, payout, "ship insurance"); err != nil {
			return err
		}
		g.Insurance = false
		g.NoClaim = 0
	}
	g.Ship.CreateFlea(g.tables)
	g.BuyingPrice = [tables.MaxTradeItem]int{}
	g.EscapePod = false
	g.Quests.ArtifactOnBoard = false
	if ship.ReactorActive(g.Quests.ReactorStatus) {
		g.Quests.ReactorStatus = 0
	}
	return g.finish(enc, res)
}

// finish closes the encounter and completes the interrupted warp
func (g *Game) finish(enc *Encounter, res *RoundResult) error {
	if enc.Category == encounter.Monster && g.Quests.MonsterStatus == calendar.MonsterAwake {
		g.Quests.MonsterHull = enc.Opponent.Hull
	}
	g.Encounter = nil
	res.Ended = true

	rep, err := g.arrive(enc.Destination)
	if err != nil {
		return err
	}
	res.Arrived = true
	res.Report = rep
	return nil
}

// Actions lists what the commander may answer to the encounter
func (e *Encounter) Actions() []Action {
	actions := []Action{Attack, Flee}
	if !e.Type.Hostile() {
		actions = append(actions, Ignore)
	}
	switch e.Type {
	case encounter.PoliceInspection:
		actions = append(actions, Submit)
	case encounter.PirateAttack:
		actions = append(actions, Surrender)
	}
	return actions
}
