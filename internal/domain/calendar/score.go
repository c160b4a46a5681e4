package calendar

import (
	"fmt"

	"github.com/10igma/spacetrader-web/internal/domain/shared"
)

// EndStatus is how a game ended
type EndStatus int

const (
	Killed EndStatus = iota
	Retired
	Moon
)

func (e EndStatus) String() string {
	switch e {
	case Killed:
		return "killed"
	case Retired:
		return "retired"
	case Moon:
		return "moon"
	}
	return fmt.Sprintf("EndStatus(%d)", int(e))
}

// worthCap is the worth above which only a tenth counts toward the score
const worthCap = 1000000

// Score rates a finished game. Dying keeps 90% of the worth, retiring 95%;
// claiming the moon also rewards finishing early.
func Score(end EndStatus, days, worth int, difficulty shared.Difficulty) int {
	if worth >= worthCap {
		worth = worthCap + (worth-worthCap)/10
	}
	level := int(difficulty) + 1

	switch end {
	case Killed:
		return level * (worth * 90 / 50000)
	case Retired:
		return level * (worth * 95 / 50000)
	}
	bonus := level*100 - days
	if bonus < 0 {
		bonus = 0
	}
	return level * ((worth + bonus*1000) / 500)
}
