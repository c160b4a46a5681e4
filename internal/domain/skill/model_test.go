package skill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/skill"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

func setup() (*crew.Roster, ship.Ship) {
	var roster crew.Roster
	roster[0] = crew.Member{Pilot: 4, Fighter: 5, Trader: 6, Engineer: 3}
	roster[7] = crew.Member{Pilot: 8, Fighter: 2, Trader: 2, Engineer: 9}
	roster[9] = crew.Member{Pilot: 10, Fighter: 10, Trader: 10, Engineer: 10}

	s := ship.NewEmpty(tables.GnatType)
	s.Crew[0] = shared.Occupied(0)
	return &roster, s
}

func TestEffective_TakesBestSeat(t *testing.T) {
	roster, s := setup()
	s.Crew[1] = shared.Occupied(7)
	m := skill.Model{Roster: roster, Difficulty: shared.Normal}

	assert.Equal(t, 8, m.Pilot(&s))
	assert.Equal(t, 5, m.Fighter(&s))
	assert.Equal(t, 6, m.Trader(&s))
	assert.Equal(t, 9, m.Engineer(&s))
}

func TestEffective_StopsAtFirstEmptySeat(t *testing.T) {
	roster, s := setup()
	s.Crew[2] = shared.Occupied(9)
	m := skill.Model{Roster: roster, Difficulty: shared.Normal}

	assert.Equal(t, 4, m.Pilot(&s))
}

func TestEffective_GadgetBonuses(t *testing.T) {
	roster, s := setup()
	s.Gadgets[0] = shared.Occupied(tables.NavigatingSystem)
	s.Gadgets[1] = shared.Occupied(tables.CloakingDevice)
	s.Gadgets[2] = shared.Occupied(tables.TargetingSystem)
	m := skill.Model{Roster: roster, Difficulty: shared.Normal}

	assert.Equal(t, 4+3+2, m.Pilot(&s))
	assert.Equal(t, 5+3, m.Fighter(&s))
	assert.Equal(t, 3, m.Engineer(&s))

	s.Gadgets[0] = shared.Occupied(tables.AutoRepairSystem)
	assert.Equal(t, 6, m.Engineer(&s))
}

func TestEffective_DiplomatAndDifficulty(t *testing.T) {
	roster, s := setup()

	tests := []struct {
		difficulty shared.Difficulty
		diplomat   bool
		want       int
	}{
		{shared.Beginner, false, 7},
		{shared.Easy, true, 8},
		{shared.Normal, true, 7},
		{shared.Hard, false, 6},
		{shared.Impossible, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			m := skill.Model{Roster: roster, Difficulty: tt.difficulty, DiplomatAboard: tt.diplomat}
			assert.Equal(t, tt.want, m.Trader(&s))
		})
	}
}

func TestEffective_ImpossibleFloorsAtOne(t *testing.T) {
	var roster crew.Roster
	roster[0] = crew.Member{Pilot: 1}
	s := ship.NewEmpty(tables.GnatType)
	s.Crew[0] = shared.Occupied(0)
	m := skill.Model{Roster: &roster, Difficulty: shared.Impossible}
	assert.Equal(t, 1, m.Pilot(&s))
}

func TestEffective_IsPure(t *testing.T) {
	roster, s := setup()
	s.Crew[1] = shared.Occupied(7)
	before := *roster
	shipBefore := s
	m := skill.Model{Roster: roster, Difficulty: shared.Easy}
	first := m.Engineer(&s)
	assert.Equal(t, first, m.Engineer(&s))
	assert.Equal(t, before, *roster)
	assert.Equal(t, shipBefore, s)
}

func TestHasEquipment(t *testing.T) {
	s := ship.NewEmpty(tables.GnatType)
	s.Weapons[0] = shared.Occupied(tables.BeamLaser)
	s.Shields[1] = shared.Occupied(tables.EnergyShield)
	s.Gadgets[2] = shared.Occupied(tables.CloakingDevice)

	assert.True(t, skill.HasEquipment(&s, skill.Weapons, tables.BeamLaser))
	assert.False(t, skill.HasEquipment(&s, skill.Weapons, tables.PulseLaser))
	assert.True(t, skill.HasEquipment(&s, skill.Shields, tables.EnergyShield))
	assert.True(t, skill.HasEquipment(&s, skill.Gadgets, tables.CloakingDevice))
	assert.False(t, skill.HasEquipment(&s, skill.Gadgets, tables.ExtraBays))
}
