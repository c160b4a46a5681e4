package tables

// Special event ids. The first EndFixed entries are placed at fixed
// systems; MoonForSale up to MaxSpecialEvent-EndFixed are scattered at
// random according to their occurrence.
const (
	DragonflyDestroyed = iota
	FlyBaratas
	FlyMelina
	FlyRegulas
	MonsterKilled
	MedicineDelivery
	MoonBought
	MoonForSale
	SkillIncrease
	Tribble
	EraseRecord
	BuyTribble
	SpaceMonster
	Dragonfly
	CargoForSale
	InstallLightningShield
	JaporiDisease
	LotteryWinner
	ArtifactDelivery
	AlienArtifact
	AmbassadorJarek
	AlienInvasion
	GemulonInvaded
	GetFuelCompactor
	Experiment
	TransportWild
	GetReactor
	GetSpecialLaser
	Scarab
	GetHullUpgraded
	ScarabDestroyed
	ReactorDelivered
	JarekGetsOut
	GemulonRescued
	ExperimentStopped
	ExperimentNotStopped
	WildGetsOut
)

const (
	MaxSpecialEvent = 37
	EndFixed        = 7
	// CostMoon is the price of the retirement moon and its worth once owned
	CostMoon = 500000
)

// Solar system ids used as quest anchors
const (
	AcamarSystem  = 0
	BaratasSystem = 6
	DaledSystem   = 17
	DevidiaSystem = 22
	GemulonSystem = 32
	JaporiSystem  = 41
	KravatSystem  = 50
	MelinaSystem  = 59
	NixSystem     = 67
	OgSystem      = 70
	RegulasSystem = 82
	SolSystem     = 92
	UtopiaSystem  = 109
	ZalkonSystem  = 118
)

// MaxSolarSystem is the number of systems in a galaxy
const MaxSolarSystem = 120

// MaxCrewMember is the roster size excluding the opponent captain seat
const MaxCrewMember = 31
