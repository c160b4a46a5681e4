package shared

// Police record thresholds. A score belongs to the highest tier whose
// threshold it reaches.
const (
	PsychopathScore = -70
	VillainScore    = -30
	CriminalScore   = -10
	DubiousScore    = -5
	CleanScore      = 0
	LawfulScore     = 5
	TrustedScore    = 10
	HelperScore     = 25
	HeroScore       = 75
)

// Police record adjustments
const (
	AttackPoliceScore   = -3
	KillPoliceScore     = -6
	CaughtWithWildScore = -4
	AttackTraderScore   = -2
	PlunderTraderScore  = -2
	KillTraderScore     = -4
	AttackPirateScore   = 0
	KillPirateScore     = 1
	PlunderPirateScore  = -1
	TraffickingScore    = -1
	FleeInspectionScore = -2
)

// Reputation thresholds
const (
	HarmlessRep       = 0
	MostlyHarmlessRep = 10
	PoorRep           = 20
	AverageRep        = 40
	AboveAverageRep   = 80
	CompetentRep      = 150
	DangerousRep      = 300
	DeadlyRep         = 600
	EliteRep          = 1500
)

type tier struct {
	name     string
	minScore int
}

var policeTiers = []tier{
	{"Psychopath", PsychopathScore},
	{"Villain", VillainScore},
	{"Criminal", CriminalScore},
	{"Dubious", DubiousScore},
	{"Clean", CleanScore},
	{"Lawful", LawfulScore},
	{"Trusted", TrustedScore},
	{"Helper", HelperScore},
	{"Hero", HeroScore},
}

var reputationTiers = []tier{
	{"Harmless", HarmlessRep},
	{"Mostly Harmless", MostlyHarmlessRep},
	{"Poor", PoorRep},
	{"Average", AverageRep},
	{"Above Average", AboveAverageRep},
	{"Competent", CompetentRep},
	{"Dangerous", DangerousRep},
	{"Deadly", DeadlyRep},
	{"Elite", EliteRep},
}

func tierName(tiers []tier, score int) string {
	name := tiers[0].name
	for _, t := range tiers {
		if score >= t.minScore {
			name = t.name
		}
	}
	return name
}

// PoliceRecordName returns the display tier for a police record score
func PoliceRecordName(score int) string {
	return tierName(policeTiers, score)
}

// ReputationName returns the display tier for a reputation score
func ReputationName(score int) string {
	return tierName(reputationTiers, score)
}
