package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/calendar"
	"github.com/10igma/spacetrader-web/internal/domain/galaxy"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// scripted returns its values in order, then repeats the last one
type scripted struct {
	values []int
	pos    int
}

func (s *scripted) Below(n int) int {
	if n <= 0 {
		return 0
	}
	v := s.values[len(s.values)-1]
	if s.pos < len(s.values) {
		v = s.values[s.pos]
		s.pos++
	}
	return v % n
}

func emptyGalaxy() *galaxy.Galaxy {
	g := &galaxy.Galaxy{Systems: make([]system.SolarSystem, tables.MaxSolarSystem)}
	for i := range g.Systems {
		g.Systems[i].Special = system.NoSpecial
		g.Systems[i].TechLevel = 5
		g.Systems[i].Politics = 3
	}
	return g
}

func TestIncDays_GemulonFalls(t *testing.T) {
	// Arrange
	g := emptyGalaxy()
	q := &calendar.Quests{Days: 10, InvasionStatus: 7}

	// Act
	rep := calendar.IncDays(1, q, g)

	// Assert
	assert.True(t, rep.GemulonInvaded)
	assert.Equal(t, 11, q.Days)
	assert.Equal(t, calendar.InvasionDays, q.InvasionStatus)
	gemulon := g.Systems[tables.GemulonSystem]
	assert.Equal(t, tables.GemulonInvaded, gemulon.Special)
	assert.Equal(t, 0, gemulon.TechLevel)
	assert.Equal(t, tables.Anarchy, gemulon.Politics)
}

func TestIncDays_InvasionStopsCounting(t *testing.T) {
	g := emptyGalaxy()
	q := &calendar.Quests{InvasionStatus: calendar.InvasionDays}

	rep := calendar.IncDays(3, q, g)

	assert.False(t, rep.GemulonInvaded)
	assert.Equal(t, calendar.InvasionDays, q.InvasionStatus)
	assert.Equal(t, system.NoSpecial, g.Systems[tables.GemulonSystem].Special)
}

func TestIncDays_ReactorCapped(t *testing.T) {
	g := emptyGalaxy()
	q := &calendar.Quests{ReactorStatus: 19}

	calendar.IncDays(3, q, g)

	assert.Equal(t, calendar.MaxReactorStatus, q.ReactorStatus)
}

func TestIncDays_ExperimentOpensFabricRip(t *testing.T) {
	// Arrange
	g := emptyGalaxy()
	q := &calendar.Quests{ExperimentStatus: 11}

	// Act
	rep := calendar.IncDays(1, q, g)

	// Assert
	require.True(t, rep.ExperimentPerformed)
	assert.Equal(t, calendar.ExperimentPerformed, q.ExperimentStatus)
	assert.Equal(t, calendar.FabricRipInitialProbability, q.FabricRipProbability)
	assert.Equal(t, tables.ExperimentNotStopped, g.Systems[tables.DaledSystem].Special)

	// The rip closes a little every day afterwards
	rep = calendar.IncDays(2, q, g)
	assert.False(t, rep.ExperimentPerformed)
	assert.Equal(t, calendar.FabricRipInitialProbability-2, q.FabricRipProbability)
}

func TestIncDays_NoQuestsOnlyCountsDays(t *testing.T) {
	g := emptyGalaxy()
	q := &calendar.Quests{Days: 4}

	rep := calendar.IncDays(1, q, g)

	assert.Equal(t, calendar.Report{}, rep)
	assert.Equal(t, calendar.Quests{Days: 5}, *q)
}

func TestShuffleStatus(t *testing.T) {
	t.Run("active status lapses", func(t *testing.T) {
		systems := []system.SolarSystem{{Status: system.Status(1)}}
		calendar.ShuffleStatus(systems, &scripted{values: []int{14}})
		assert.Equal(t, system.Uneventful, systems[0].Status)
	})

	t.Run("active status persists", func(t *testing.T) {
		systems := []system.SolarSystem{{Status: system.Status(1)}}
		calendar.ShuffleStatus(systems, &scripted{values: []int{15}})
		assert.Equal(t, system.Status(1), systems[0].Status)
	})

	t.Run("quiet system flares up", func(t *testing.T) {
		systems := []system.SolarSystem{{}}
		calendar.ShuffleStatus(systems, &scripted{values: []int{14, 3}})
		assert.Equal(t, system.Status(4), systems[0].Status)
	})

	t.Run("quiet system stays quiet", func(t *testing.T) {
		systems := []system.SolarSystem{{}}
		calendar.ShuffleStatus(systems, &scripted{values: []int{99}})
		assert.Equal(t, system.Uneventful, systems[0].Status)
	})
}

func TestDecayPoliceRecord(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		days       int
		difficulty shared.Difficulty
		want       int
	}{
		{"good record fades on third day", 5, 3, shared.Normal, 4},
		{"good record holds otherwise", 5, 4, shared.Normal, 5},
		{"bad record improves daily on normal", -10, 1, shared.Normal, -9},
		{"bad record waits on hard", -10, 1, shared.Hard, -10},
		{"bad record improves every third day on hard", -10, 3, shared.Hard, -9},
		{"dubious is not bad enough", shared.DubiousScore, 1, shared.Normal, shared.DubiousScore},
		{"clean stays clean", 0, 3, shared.Impossible, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.DecayPoliceRecord(tt.score, tt.days, tt.difficulty))
		})
	}
}

func TestRegenerateMonster(t *testing.T) {
	assert.Equal(t, 420, calendar.RegenerateMonster(400, 500))
	assert.Equal(t, 500, calendar.RegenerateMonster(490, 500))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 540, calendar.Score(calendar.Killed, 50, 100000, shared.Normal))
	assert.Equal(t, 570, calendar.Score(calendar.Retired, 50, 100000, shared.Normal))
	assert.Equal(t, 1800, calendar.Score(calendar.Moon, 100, 100000, shared.Normal))
	assert.Equal(t, 600, calendar.Score(calendar.Moon, 400, 100000, shared.Normal), "late moon gets no bonus")
	assert.Equal(t, 1980, calendar.Score(calendar.Killed, 10, 2000000, shared.Beginner), "worth above a million counts a tenth")
}

func TestQuests_Flags(t *testing.T) {
	q := calendar.Quests{
		JarekStatus:         calendar.JarekDelivered,
		ScarabStatus:        calendar.ScarabUpgraded,
		WildStatus:          calendar.WildOnBoard,
		JaporiDiseaseStatus: calendar.DiseaseOnBoard,
	}

	assert.True(t, q.DiplomatBonus())
	assert.True(t, q.HullUpgraded())
	assert.True(t, q.WildAboard())
	assert.False(t, q.WildFreed())
	assert.True(t, q.DiseaseAboard())
	assert.False(t, (&calendar.Quests{JarekStatus: calendar.JarekOnBoard}).DiplomatBonus())
}
