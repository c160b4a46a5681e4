// Package calendar advances the game day and everything that ticks with it:
// quest countdowns, system status changes, police record decay and the
// final score.
package calendar

// Quest milestones
const (
	// InvasionDays is when an unwarned Gemulon falls
	InvasionDays = 8
	// MaxReactorStatus is the last day before the reactor melts down
	MaxReactorStatus = 20
	// ExperimentPerformed is the experiment status once it went ahead
	ExperimentPerformed = 12
	// FabricRipInitialProbability is the chance in percent of a rip right after the experiment
	FabricRipInitialProbability = 25
)

// Quest status values shared by several rules
const (
	JarekOnBoard   = 1
	JarekDelivered = 2
	WildOnBoard    = 1
	WildDelivered  = 2
	ScarabUpgraded = 3
	DiseaseOnBoard = 1

	MonsterAwake     = 1
	MonsterDestroyed = 2
	// Dragonfly statuses 1 to 4 follow it from Baratas to Zalkon
	DragonflyDestroyed = 5
	ScarabHunting      = 1
	ScarabDestroyed    = 2
)

// Quests is the day counter and the progress of every quest line. Zero
// means a quest has not started.
type Quests struct {
	Days                 int  `json:"days"`
	InvasionStatus       int  `json:"invasion_status"`
	ReactorStatus        int  `json:"reactor_status"`
	ExperimentStatus     int  `json:"experiment_status"`
	FabricRipProbability int  `json:"fabric_rip_probability"`
	JarekStatus          int  `json:"jarek_status"`
	WildStatus           int  `json:"wild_status"`
	ScarabStatus         int  `json:"scarab_status"`
	JaporiDiseaseStatus  int  `json:"japori_disease_status"`
	MonsterStatus        int  `json:"monster_status"`
	DragonflyStatus      int  `json:"dragonfly_status"`
	MonsterHull          int  `json:"monster_hull"`
	MoonBought           bool `json:"moon_bought"`
	ArtifactOnBoard      bool `json:"artifact_on_board"`
}

// DiplomatBonus reports whether Jarek's haggling skills help the trader
func (q *Quests) DiplomatBonus() bool {
	return q.JarekStatus >= JarekDelivered
}

func (q *Quests) HullUpgraded() bool {
	return q.ScarabStatus == ScarabUpgraded
}

func (q *Quests) WildAboard() bool {
	return q.WildStatus == WildOnBoard
}

func (q *Quests) WildFreed() bool {
	return q.WildStatus == WildDelivered
}

func (q *Quests) DiseaseAboard() bool {
	return q.JaporiDiseaseStatus == DiseaseOnBoard
}
