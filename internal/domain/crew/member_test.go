package crew_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/rng"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
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

func TestRandomSkill_Range(t *testing.T) {
	g := rng.New(99, 101)
	for i := 0; i < 2000; i++ {
		s := crew.RandomSkill(g)
		require.GreaterOrEqual(t, s, 1)
		require.LessOrEqual(t, s, 10)
	}
	assert.Equal(t, 1, crew.RandomSkill(&scripted{values: []int{0, 0}}))
	assert.Equal(t, 10, crew.RandomSkill(&scripted{values: []int{4, 5}}))
}

func TestRoster_Get(t *testing.T) {
	var roster crew.Roster
	roster[3].Pilot = 7

	m, err := roster.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 7, m.Pilot)

	_, err = roster.Get(crew.RosterSize)
	var idxErr *shared.IndexOutOfRangeError
	assert.ErrorAs(t, err, &idxErr)
}

func TestIncreaseRandomSkill(t *testing.T) {
	m := crew.Member{Pilot: 10, Fighter: 10, Trader: 4, Engineer: 10}

	// Pilot (0) and Fighter (1) are maxed, so the third draw picks Trader.
	ok := crew.IncreaseRandomSkill(&m, &scripted{values: []int{0, 1, 2}})

	assert.True(t, ok)
	assert.Equal(t, 5, m.Trader)
}

func TestIncreaseRandomSkill_AllMaxed(t *testing.T) {
	m := crew.Member{Pilot: 10, Fighter: 10, Trader: 10, Engineer: 10}

	assert.False(t, crew.IncreaseRandomSkill(&m, &scripted{values: []int{0}}))
	assert.Equal(t, 40, m.SkillSum())
}

func TestDecreaseRandomSkill_NothingHighEnough(t *testing.T) {
	m := crew.Member{Pilot: 1, Fighter: 1, Trader: 1, Engineer: 1}

	assert.False(t, crew.DecreaseRandomSkill(&m, &scripted{values: []int{0}}, 1))
	assert.Equal(t, 4, m.SkillSum())
}

func TestDecreaseRandomSkill_FallsBackAfterBudget(t *testing.T) {
	m := crew.Member{Pilot: 1, Fighter: 1, Trader: 1, Engineer: 6}

	// The stub always draws Pilot, which never qualifies.
	ok := crew.DecreaseRandomSkill(&m, &scripted{values: []int{0}}, 3)

	assert.True(t, ok)
	assert.Equal(t, 3, m.Engineer)
}

func TestTonicTweak_KeepsTotalBelowHard(t *testing.T) {
	m := crew.Member{Pilot: 5, Fighter: 5, Trader: 5, Engineer: 5}
	before := m

	crew.TonicTweak(&m, rng.New(5, 6), shared.Normal)

	assert.Equal(t, before.SkillSum(), m.SkillSum())
	assert.NotEqual(t, before, m)
}

func TestTonicTweak_LosesOnHard(t *testing.T) {
	m := crew.Member{Pilot: 5, Fighter: 5, Trader: 5, Engineer: 5}

	crew.TonicTweak(&m, rng.New(5, 6), shared.Hard)

	assert.Equal(t, 19, m.SkillSum())
}

func TestNthLowestSkill(t *testing.T) {
	m := crew.Member{Pilot: 4, Fighter: 2, Trader: 4, Engineer: 7}

	tests := []struct {
		n    int
		want crew.Kind
	}{
		{1, crew.Fighter},
		{2, crew.Pilot},
		{3, crew.Trader},
		{4, crew.Engineer},
	}
	for _, tt := range tests {
		got, ok := crew.NthLowestSkill(&m, tt.n)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}

	_, ok := crew.NthLowestSkill(&m, 5)
	assert.False(t, ok)
}
