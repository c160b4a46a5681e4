package game_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/calendar"
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/encounter"
	"github.com/10igma/spacetrader-web/internal/domain/game"
	"github.com/10igma/spacetrader-web/internal/domain/ledger"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

func params(d shared.Difficulty) game.Params {
	return game.Params{
		ID:         "game-1",
		Commander:  "Jameson",
		Difficulty: d,
		SeedX:      rngSeedX,
		SeedY:      rngSeedY,
		Skills:     [crew.MaxSkillKind]int{5, 5, 5, 5},
	}
}

const (
	rngSeedX = 521288629
	rngSeedY = 362436069
)

func newGame(t *testing.T, d shared.Difficulty) *game.Game {
	t.Helper()
	g, err := game.New(tables.MustLoad(), params(d))
	require.NoError(t, err)
	return g
}

// nearest returns the closest system reachable without a wormhole
func nearest(t *testing.T, g *game.Game) int {
	t.Helper()
	from := g.CurrentSystemID()
	best, bestDist := -1, 0
	for _, s := range g.Galaxy.WithinRange(from, g.Ship.CurrentFuel(g.Tables())) {
		if g.Galaxy.WormholeExists(from, s) {
			continue
		}
		if d := g.Galaxy.Distance(from, s); best < 0 || d < bestDist {
			best, bestDist = s, d
		}
	}
	require.GreaterOrEqual(t, best, 0, "no system in range")
	return best
}

func pending(g *game.Game, c encounter.Category, typ encounter.Type, destination int) {
	opp := ship.NewEmpty(tables.GnatType)
	opp.Crew[0] = shared.Occupied(crew.OpponentCaptain)
	opp.Hull = 100
	g.Encounter = &game.Encounter{Destination: destination, Category: c, Type: typ, Opponent: opp}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *game.Params)
		wantErr bool
	}{
		{name: "balanced commander", mutate: func(p *game.Params) {}},
		{name: "fewer points than allowed", mutate: func(p *game.Params) { p.Skills = [crew.MaxSkillKind]int{1, 1, 1, 1} }},
		{name: "skill below one", mutate: func(p *game.Params) { p.Skills[crew.Pilot] = 0 }, wantErr: true},
		{name: "skill above ten", mutate: func(p *game.Params) { p.Skills = [crew.MaxSkillKind]int{11, 3, 3, 3} }, wantErr: true},
		{name: "too many points", mutate: func(p *game.Params) { p.Skills = [crew.MaxSkillKind]int{6, 5, 5, 5} }, wantErr: true},
		{name: "unknown difficulty", mutate: func(p *game.Params) { p.Difficulty = 7 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params(shared.Normal)
			tt.mutate(&p)

			err := p.Validate()

			if tt.wantErr {
				var verr *shared.ValidationError
				assert.True(t, errors.As(err, &verr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_StartingState(t *testing.T) {
	// Act
	g := newGame(t, shared.Normal)

	// Assert
	assert.Equal(t, "game-1", g.ID)
	assert.Equal(t, game.StartingCredits, g.Balance.Credits)
	assert.Zero(t, g.Balance.Debt)
	assert.Equal(t, tables.GnatType, g.Ship.Type)
	assert.True(t, g.Ship.HasWeapon(tables.PulseLaser, true))
	assert.Equal(t, 14, g.Ship.Fuel)
	assert.Equal(t, 100, g.Ship.Hull)
	assert.Len(t, g.Galaxy.Systems, tables.MaxSolarSystem)

	start := g.CurrentSystem()
	assert.True(t, start.Visited)
	assert.False(t, start.HasSpecial())
	assert.GreaterOrEqual(t, len(g.Galaxy.WithinRange(g.CurrentSystemID(), 14)), 3)
	assert.Equal(t, 500, g.Quests.MonsterHull)
	assert.Nil(t, g.Encounter)
	assert.False(t, g.Ended)
}

func TestNew_MercenariesHaveTheirOwnHomes(t *testing.T) {
	g := newGame(t, shared.Normal)

	seen := map[int]int{}
	for i := 1; i < crew.Zeethibal; i++ {
		home := g.Roster[i].CurSystem
		assert.NotEqual(t, tables.KravatSystem, home, "mercenary %d", i)
		if other, dup := seen[home]; dup {
			t.Errorf("mercenaries %d and %d share system %d", other, i, home)
		}
		seen[home] = i
		assert.GreaterOrEqual(t, g.Roster[i].Pilot, 1)
		assert.LessOrEqual(t, g.Roster[i].Pilot, crew.MaxSkill)
	}
	assert.Equal(t, crew.OffMap, g.Roster[crew.Zeethibal].CurSystem)
}

func TestNew_SameSeedSameGame(t *testing.T) {
	a := newGame(t, shared.Hard)
	b := newGame(t, shared.Hard)

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	assert.Equal(t, da, db)

	p := params(shared.Hard)
	p.SeedX++
	c, err := game.New(tables.MustLoad(), p)
	require.NoError(t, err)
	dc, err := c.Digest()
	require.NoError(t, err)
	assert.NotEqual(t, da, dc)
}

func TestNew_RejectsInvalidParams(t *testing.T) {
	p := params(shared.Normal)
	p.Skills[crew.Trader] = 12

	g, err := game.New(tables.MustLoad(), p)

	assert.Nil(t, g)
	assert.Error(t, err)
}

func TestWarp_Rejections(t *testing.T) {
	t.Run("same system", func(t *testing.T) {
		g := newGame(t, shared.Normal)
		_, err := g.Warp(g.CurrentSystemID())
		assert.ErrorIs(t, err, game.ErrAlreadyHere)
	})

	t.Run("unknown system", func(t *testing.T) {
		g := newGame(t, shared.Normal)
		_, err := g.Warp(tables.MaxSolarSystem)
		assert.Error(t, err)
	})

	t.Run("debt too large", func(t *testing.T) {
		g := newGame(t, shared.Normal)
		g.Balance.Debt = ledger.DebtCeiling + 1
		_, err := g.Warp(nearest(t, g))
		assert.ErrorIs(t, err, game.ErrDebtTooLarge)
	})

	t.Run("out of range", func(t *testing.T) {
		// Arrange
		g := newGame(t, shared.Normal)
		from := g.CurrentSystemID()
		far, farDist := -1, 0
		for s := range g.Galaxy.Systems {
			if d := g.Galaxy.Distance(from, s); d > farDist && !g.Galaxy.WormholeExists(from, s) {
				far, farDist = s, d
			}
		}

		// Act
		_, err := g.Warp(far)

		// Assert
		var rangeErr *game.OutOfRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, far, rangeErr.Target)
		assert.Equal(t, farDist, rangeErr.Distance)
		assert.Equal(t, 14, rangeErr.Fuel)
	})

	t.Run("departure costs unpaid", func(t *testing.T) {
		g := newGame(t, shared.Normal)
		g.EscapePod = true
		g.Insurance = true
		g.Balance.Credits = 0

		_, err := g.Warp(nearest(t, g))

		assert.ErrorIs(t, err, game.ErrInsufficientCredits)
		assert.Equal(t, 14, g.Ship.Fuel, "a rejected warp burns no fuel")
	})

	t.Run("encounter pending", func(t *testing.T) {
		g := newGame(t, shared.Normal)
		pending(g, encounter.Trader, encounter.TraderIgnore, nearest(t, g))
		_, err := g.Warp(nearest(t, g))
		assert.ErrorIs(t, err, game.ErrEncounterPending)
	})
}

func TestWarp_ToNearestSystem(t *testing.T) {
	// Arrange
	g := newGame(t, shared.Normal)
	from := g.CurrentSystemID()
	target := nearest(t, g)
	distance := g.Galaxy.Distance(from, target)

	// Act
	res, err := g.Warp(target)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, from, res.From)
	assert.Equal(t, target, res.To)
	assert.Equal(t, distance, res.Distance)
	assert.False(t, res.ViaWormhole)
	assert.Zero(t, res.Costs)
	assert.Equal(t, 14-distance, g.Ship.Fuel)

	if res.Arrived {
		assert.Nil(t, res.Encounter)
		assert.Equal(t, 1, g.Quests.Days)
		assert.Equal(t, target, g.CurrentSystemID())
		assert.True(t, g.CurrentSystem().Visited)
		return
	}
	require.NotNil(t, res.Encounter)
	assert.Same(t, res.Encounter, g.Encounter)
	assert.Equal(t, target, res.Encounter.Destination)
	assert.Zero(t, g.Quests.Days)
	assert.Equal(t, from, g.CurrentSystemID())
}

func TestWarp_ReplaysIdentically(t *testing.T) {
	a := newGame(t, shared.Normal)
	b := newGame(t, shared.Normal)
	target := nearest(t, a)

	ra, err := a.Warp(target)
	require.NoError(t, err)
	rb, err := b.Warp(target)
	require.NoError(t, err)

	assert.Equal(t, ra, rb)
	da, _ := a.Digest()
	db, _ := b.Digest()
	assert.Equal(t, da, db)
}

func TestAct_NoEncounter(t *testing.T) {
	g := newGame(t, shared.Normal)

	_, err := g.Act(game.Attack)

	assert.ErrorIs(t, err, game.ErrNoEncounter)
}

func TestAct_IgnoreCompletesTheWarp(t *testing.T) {
	// Arrange
	g := newGame(t, shared.Normal)
	target := nearest(t, g)
	pending(g, encounter.Trader, encounter.TraderIgnore, target)

	// Act
	res, err := g.Act(game.Ignore)

	// Assert
	require.NoError(t, err)
	assert.True(t, res.Ended)
	assert.True(t, res.Arrived)
	assert.Nil(t, g.Encounter)
	assert.Equal(t, target, g.CurrentSystemID())
	assert.Equal(t, 1, g.Quests.Days)
}

func TestAct_NotAllowed(t *testing.T) {
	tests := []struct {
		name   string
		typ    encounter.Type
		action game.Action
	}{
		{name: "ignore a pirate attack", typ: encounter.PirateAttack, action: game.Ignore},
		{name: "submit to pirates", typ: encounter.PirateAttack, action: game.Submit},
		{name: "surrender to an inspection", typ: encounter.PoliceInspection, action: game.Surrender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, shared.Normal)
			pending(g, encounter.Pirate, tt.typ, nearest(t, g))

			_, err := g.Act(tt.action)

			var notAllowed *game.ActionNotAllowedError
			require.True(t, errors.As(err, &notAllowed))
			assert.Equal(t, tt.action, notAllowed.Action)
			assert.NotNil(t, g.Encounter, "a rejected action keeps the encounter")
		})
	}
}

func TestAct_SubmitWithCleanHold(t *testing.T) {
	g := newGame(t, shared.Normal)
	pending(g, encounter.Police, encounter.PoliceInspection, nearest(t, g))

	res, err := g.Act(game.Submit)

	require.NoError(t, err)
	assert.Zero(t, res.Fine)
	assert.True(t, res.Arrived)
	assert.Equal(t, 1, g.PoliceScore)
}

func TestAct_SubmitWithNarcotics(t *testing.T) {
	// Arrange
	g := newGame(t, shared.Normal)
	g.BeginJournal(shared.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	g.Ship.Cargo[tables.Narcotics] = 5
	g.Ship.Cargo[tables.Water] = 3
	g.BuyingPrice[tables.Narcotics] = 1500
	pending(g, encounter.Police, encounter.PoliceInspection, nearest(t, g))
	credits := g.Balance.Credits

	// Act
	res, err := g.Act(game.Submit)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, res.Confiscated)
	assert.GreaterOrEqual(t, res.Fine, game.MinFine)
	assert.LessOrEqual(t, res.Fine, game.MaxFine)
	assert.Zero(t, res.Fine%50)
	assert.Equal(t, credits-res.Fine, g.Balance.Credits)
	assert.Zero(t, g.Ship.Cargo[tables.Narcotics])
	assert.Zero(t, g.BuyingPrice[tables.Narcotics])
	assert.Equal(t, 3, g.Ship.Cargo[tables.Water])
	assert.Equal(t, shared.TraffickingScore, g.PoliceScore)
}

func TestAct_FineBeyondCashBecomesDebt(t *testing.T) {
	g := newGame(t, shared.Normal)
	g.Ship.Cargo[tables.Firearms] = 1
	g.Balance.Credits = 20
	pending(g, encounter.Police, encounter.PoliceInspection, nearest(t, g))

	res, err := g.Act(game.Submit)

	require.NoError(t, err)
	assert.Zero(t, g.Balance.Credits)
	owed := res.Fine - 20
	// Arrival charges interest on the new debt, paid from an empty purse
	assert.Equal(t, owed+utils.Max(1, owed/10), g.Balance.Debt)
}

func TestAct_SurrenderToPirates(t *testing.T) {
	g := newGame(t, shared.Normal)
	g.Ship.Cargo[tables.Furs] = 4
	g.BuyingPrice[tables.Furs] = 1000
	pending(g, encounter.Pirate, encounter.PirateAttack, nearest(t, g))

	res, err := g.Act(game.Surrender)

	require.NoError(t, err)
	assert.True(t, res.Arrived)
	assert.Zero(t, g.Ship.Cargo[tables.Furs])
	assert.Zero(t, g.BuyingPrice[tables.Furs])
}

func TestAct_FleeInspection(t *testing.T) {
	t.Run("clean record drops to dubious", func(t *testing.T) {
		// Beginners always get away
		g := newGame(t, shared.Beginner)
		pending(g, encounter.Police, encounter.PoliceInspection, nearest(t, g))

		res, err := g.Act(game.Flee)

		require.NoError(t, err)
		assert.True(t, res.Escaped)
		assert.Equal(t, encounter.PoliceAttack, res.Type)
		assert.Equal(t, shared.DubiousScore, g.PoliceScore)
	})

	t.Run("criminal record gets worse", func(t *testing.T) {
		g := newGame(t, shared.Beginner)
		g.PoliceScore = shared.CriminalScore
		pending(g, encounter.Police, encounter.PoliceInspection, nearest(t, g))

		_, err := g.Act(game.Flee)

		require.NoError(t, err)
		assert.Equal(t, calendar.DecayPoliceRecord(shared.CriminalScore+shared.FleeInspectionScore, 1, shared.Beginner), g.PoliceScore)
	})
}

func TestAct_AttackProvokesPolice(t *testing.T) {
	g := newGame(t, shared.Normal)
	g.PoliceScore = shared.LawfulScore
	pending(g, encounter.Police, encounter.PoliceIgnore, nearest(t, g))

	res, err := g.Act(game.Attack)

	require.NoError(t, err)
	assert.Equal(t, encounter.PoliceAttack, res.Type)
	// An unarmed Gnat with a full hull survives one round
	assert.False(t, res.Ended)
	assert.Equal(t, shared.CriminalScore+shared.AttackPoliceScore, g.PoliceScore)
}

func TestDock_CommandsBlockedDuringEncounter(t *testing.T) {
	g := newGame(t, shared.Normal)
	pending(g, encounter.Trader, encounter.TraderIgnore, nearest(t, g))

	_, err := g.BuyFuel(100)
	assert.ErrorIs(t, err, game.ErrEncounterPending)
	_, err = g.Borrow(100)
	assert.ErrorIs(t, err, game.ErrEncounterPending)
	assert.ErrorIs(t, g.BuyEscapePod(), game.ErrEncounterPending)
}

func TestDock_BankJournalsEveryMovement(t *testing.T) {
	// Arrange
	g := newGame(t, shared.Normal)
	journal := g.BeginJournal(shared.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	// Act
	lent, err := g.Borrow(500)
	require.NoError(t, err)
	paid, err := g.PayBack(200)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 500, lent.Units)
	assert.Equal(t, 200, paid.Units)
	assert.Equal(t, 1300, g.Balance.Credits)
	assert.Equal(t, 300, g.Balance.Debt)

	entries := journal.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ledger.TransactionTypeLoan, entries[0].TransactionType())
	assert.Equal(t, 500, entries[0].Amount())
	assert.Equal(t, ledger.TransactionTypeLoanRepayment, entries[1].TransactionType())
	assert.Equal(t, -200, entries[1].Amount())
	assert.Equal(t, 1500, entries[1].BalanceBefore())
}

func TestDock_FuelAndRepairs(t *testing.T) {
	g := newGame(t, shared.Normal)
	g.Ship.Fuel = 4
	g.Ship.Hull = 60

	fuel, err := g.BuyFuel(1000)
	require.NoError(t, err)
	assert.Equal(t, 10, fuel.Units)
	assert.Equal(t, 14, g.Ship.Fuel)

	hull, err := g.Repair(1000)
	require.NoError(t, err)
	assert.Equal(t, 40, hull.Units)
	assert.Equal(t, 100, g.Ship.Hull)
	assert.Equal(t, game.StartingCredits+fuel.Amount+hull.Amount, g.Balance.Credits)
}

func TestDock_EscapePodAndInsurance(t *testing.T) {
	g := newGame(t, shared.Normal)
	g.Balance.Credits = 5000

	assert.ErrorIs(t, g.BuyInsurance(), game.ErrNoEscapePod)
	require.NoError(t, g.BuyEscapePod())
	assert.Equal(t, 5000-ledger.EscapePodPrice, g.Balance.Credits)
	assert.ErrorIs(t, g.BuyEscapePod(), game.ErrAlreadyOwned)

	require.NoError(t, g.BuyInsurance())
	assert.Positive(t, g.InsurancePremium())

	g.NoClaim = 7
	require.NoError(t, g.StopInsurance())
	assert.False(t, g.Insurance)
	assert.Zero(t, g.NoClaim)
	assert.Zero(t, g.InsurancePremium())
}

func TestDock_HireAndFire(t *testing.T) {
	// Arrange
	g := newGame(t, shared.Normal)
	here := g.CurrentSystemID()
	g.Roster[3].CurSystem = here
	g.Roster[4].CurSystem = here
	assert.Subset(t, g.Mercenaries(), []int{3, 4})

	// Act & Assert: a Gnat has no spare quarters
	assert.ErrorIs(t, g.Hire(3), game.ErrNoCrewSpace)

	g.Ship.Type = 5 // Beetle
	require.NoError(t, g.Hire(3))
	require.NoError(t, g.Hire(4))
	assert.NotContains(t, g.Mercenaries(), 3)
	assert.Equal(t, g.Roster[3].SkillSum()*3+g.Roster[4].SkillSum()*3, g.Payroll())
	assert.ErrorIs(t, g.Hire(crew.Commander), game.ErrNotForHire)

	require.NoError(t, g.Fire(3))
	idx, ok := g.Ship.Crew[1].Index()
	require.True(t, ok)
	assert.Equal(t, 4, idx, "the crew moves up")
	assert.Equal(t, 2, g.Ship.CrewCount())
	assert.ErrorIs(t, g.Fire(3), game.ErrNotInCrew)
}

func TestRetire(t *testing.T) {
	g := newGame(t, shared.Normal)

	score, err := g.Retire()

	require.NoError(t, err)
	assert.True(t, g.Ended)
	assert.Equal(t, calendar.Retired, g.EndStatus)
	assert.Equal(t, calendar.Score(calendar.Retired, 0, g.Worth(), shared.Normal), score)
	_, err = g.Warp(nearest(t, g))
	assert.ErrorIs(t, err, game.ErrGameOver)
	_, err = g.Retire()
	assert.ErrorIs(t, err, game.ErrGameOver)
}

func TestParseAction(t *testing.T) {
	a, err := game.ParseAction("SURRENDER")
	require.NoError(t, err)
	assert.Equal(t, game.Surrender, a)
	assert.Equal(t, "surrender", a.String())

	_, err = game.ParseAction("bribe")
	assert.Error(t, err)
}
