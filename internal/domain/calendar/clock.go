package calendar

import (
	"github.com/10igma/spacetrader-web/internal/domain/galaxy"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// statusChance is the daily percentage for a system status to start or end
const statusChance = 15

// MonsterRegeneration is the daily hull growth of the space monster in percent
const MonsterRegeneration = 105

// Report lists the quest milestones crossed by IncDays
type Report struct {
	GemulonInvaded      bool
	ExperimentPerformed bool
}

// IncDays advances the calendar by amount days and ticks the quest
// countdowns. Gemulon and Daled change in the galaxy when their quests fail.
func IncDays(amount int, q *Quests, g *galaxy.Galaxy) Report {
	var rep Report
	q.Days += amount

	if q.InvasionStatus > 0 && q.InvasionStatus < InvasionDays {
		q.InvasionStatus += amount
		if q.InvasionStatus >= InvasionDays {
			gemulon := &g.Systems[tables.GemulonSystem]
			gemulon.Special = tables.GemulonInvaded
			gemulon.TechLevel = 0
			gemulon.Politics = tables.Anarchy
			rep.GemulonInvaded = true
		}
	}

	if q.ReactorStatus > 0 && q.ReactorStatus <= MaxReactorStatus {
		q.ReactorStatus = utils.Min(q.ReactorStatus+amount, MaxReactorStatus)
	}

	if q.ExperimentStatus > 0 && q.ExperimentStatus < ExperimentPerformed {
		q.ExperimentStatus += amount
		if q.ExperimentStatus >= ExperimentPerformed {
			q.FabricRipProbability = FabricRipInitialProbability
			g.Systems[tables.DaledSystem].Special = tables.ExperimentNotStopped
			q.ExperimentStatus = ExperimentPerformed
			rep.ExperimentPerformed = true
		}
	} else if q.ExperimentStatus == ExperimentPerformed && q.FabricRipProbability > 0 {
		q.FabricRipProbability -= amount
	}
	return rep
}

// ShuffleStatus lets every system's status lapse or flare up
func ShuffleStatus(systems []system.SolarSystem, r shared.Random) {
	for i := range systems {
		s := &systems[i]
		if s.Status > system.Uneventful {
			if r.Below(100) < statusChance {
				s.Status = system.Uneventful
			}
		} else if r.Below(100) < statusChance {
			s.Status = system.Status(1 + r.Below(system.MaxStatus-1))
		}
	}
}

// DecayPoliceRecord moves the police record back toward clean. A good
// record fades every third day; a bad one improves daily up to Normal and
// every difficulty-th day above it.
func DecayPoliceRecord(score, days int, difficulty shared.Difficulty) int {
	if days%3 == 0 && score > shared.CleanScore {
		score--
	}
	if score < shared.DubiousScore {
		if difficulty <= shared.Normal || days%int(difficulty) == 0 {
			score++
		}
	}
	return score
}

// RegenerateMonster heals the space monster overnight up to its full hull
func RegenerateMonster(hull, maxHull int) int {
	return utils.Min(hull*MonsterRegeneration/100, maxHull)
}
