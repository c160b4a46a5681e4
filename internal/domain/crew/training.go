package crew

import "github.com/10igma/spacetrader-web/internal/domain/shared"

// drawBudget bounds the rejection loops that pick a skill to change
const drawBudget = 1000

// pickSkill draws skills until ok accepts one. After drawBudget rejected
// draws it falls back to the first acceptable skill in order.
func pickSkill(r shared.Random, ok func(Kind) bool) (Kind, bool) {
	for i := 0; i < drawBudget; i++ {
		k := Kind(r.Below(MaxSkillKind))
		if ok(k) {
			return k, true
		}
	}
	for k := Pilot; k <= Engineer; k++ {
		if ok(k) {
			return k, true
		}
	}
	return Pilot, false
}

// IncreaseRandomSkill raises one random skill below MaxSkill by one.
// It reports false when every skill is already maxed.
func IncreaseRandomSkill(m *Member, r shared.Random) bool {
	k, ok := pickSkill(r, func(k Kind) bool { return m.Skill(k) < MaxSkill })
	if !ok {
		return false
	}
	m.addSkill(k, 1)
	return true
}

// DecreaseRandomSkill lowers one random skill that exceeds amount.
// It reports false when no skill is high enough.
func DecreaseRandomSkill(m *Member, r shared.Random, amount int) bool {
	k, ok := pickSkill(r, func(k Kind) bool { return m.Skill(k) > amount })
	if !ok {
		return false
	}
	m.addSkill(k, -amount)
	return true
}

// tonicAttempts bounds the retry loop on easier levels
const tonicAttempts = 100

// TonicTweak shuffles skill points the way the skill tonic does: below Hard
// one point moves between skills; on Hard and above two points are gained
// and three lost.
func TonicTweak(m *Member, r shared.Random, difficulty shared.Difficulty) {
	if difficulty < shared.Hard {
		before := *m
		for i := 0; i < tonicAttempts && *m == before; i++ {
			IncreaseRandomSkill(m, r)
			DecreaseRandomSkill(m, r, 1)
		}
		return
	}
	IncreaseRandomSkill(m, r)
	IncreaseRandomSkill(m, r)
	DecreaseRandomSkill(m, r, 3)
}

// NthLowestSkill returns the skill with the nth lowest value, counting ties
// in Pilot, Fighter, Trader, Engineer order. n is 1-based.
func NthLowestSkill(m *Member, n int) (Kind, bool) {
	if n < 1 || n > MaxSkillKind {
		return Pilot, false
	}
	lower := 1
	for value := 0; value <= MaxSkill*3; value++ {
		for k := Pilot; k <= Engineer; k++ {
			if m.Skill(k) != value {
				continue
			}
			if lower == n {
				return k, true
			}
			lower++
		}
	}
	return Pilot, false
}
