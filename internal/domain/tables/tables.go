// Package tables holds the immutable reference data of the game: commodities,
// hulls, equipment, governments, special events and names. Tables are loaded
// once from the embedded YAML documents and shared by pointer.
package tables

import "github.com/10igma/spacetrader-web/internal/domain/system"

// Commodity ids
const (
	Water = iota
	Furs
	Food
	Ore
	Games
	Firearms
	Medicine
	Machinery
	Narcotics
	Robots
)

// MaxTradeItem is the number of commodities
const MaxTradeItem = system.MaxTradeItem

// Ship type ids. The first MaxShipType entries are sold in shipyards.
const (
	FleaType         = 0
	GnatType         = 1
	MaxShipType      = 10
	SpaceMonsterType = MaxShipType
	DragonflyType    = MaxShipType + 1
	MantisType       = MaxShipType + 2
	ScarabType       = MaxShipType + 3
	BottleType       = MaxShipType + 4
	// MaxRange is the tank size of the Flea, the longest-range hull
	MaxRange = 20
)

// Weapon ids
const (
	PulseLaser = iota
	BeamLaser
	MilitaryLaser
	MorganLaser
)

// MaxWeaponType is the number of weapons fitted at random
const MaxWeaponType = 3

// Shield ids
const (
	EnergyShield = iota
	ReflectiveShield
	LightningShield
)

// MaxShieldType is the number of shields fitted at random
const MaxShieldType = 2

// Gadget ids
const (
	ExtraBays = iota
	AutoRepairSystem
	NavigatingSystem
	TargetingSystem
	CloakingDevice
	FuelCompactor
)

// MaxGadgetType is the number of gadgets fitted at random
const MaxGadgetType = 5

// Politics ids referenced by game rules
const (
	Anarchy     = 0
	MaxPolitics = 17
	// MaxStrength bounds the police, pirate and trader strength of a government
	MaxStrength = 8
)

type TradeItem struct {
	Name              string
	TechProduction    int
	TechUsage         int
	TechTopProduction int
	PriceLowTech      int
	PriceInc          int
	Variance          int
	DoublePriceStatus system.Status
	CheapResource     system.Resource
	ExpensiveResource system.Resource
	MinTradePrice     int
	MaxTradePrice     int
	RoundOff          int
}

// ShipType is a hull template. Police, Pirates and Traders are the minimum
// government strength at which that faction flies the type; -1 means never.
type ShipType struct {
	Name         string `yaml:"name" validate:"required"`
	CargoBays    int    `yaml:"cargo_bays" validate:"min=0"`
	WeaponSlots  int    `yaml:"weapon_slots" validate:"min=0,max=3"`
	ShieldSlots  int    `yaml:"shield_slots" validate:"min=0,max=3"`
	GadgetSlots  int    `yaml:"gadget_slots" validate:"min=0,max=3"`
	CrewQuarters int    `yaml:"crew_quarters" validate:"min=0,max=3"`
	FuelTanks    int    `yaml:"fuel_tanks" validate:"min=1"`
	MinTechLevel int    `yaml:"min_tech_level" validate:"min=0,max=8"`
	CostOfFuel   int    `yaml:"cost_of_fuel" validate:"min=1"`
	Price        int    `yaml:"price" validate:"min=0"`
	Bounty       int    `yaml:"bounty" validate:"min=0"`
	Occurrence   int    `yaml:"occurrence" validate:"min=0,max=100"`
	HullStrength int    `yaml:"hull_strength" validate:"min=1"`
	Police       int    `yaml:"police" validate:"min=-1"`
	Pirates      int    `yaml:"pirates" validate:"min=-1"`
	Traders      int    `yaml:"traders" validate:"min=-1"`
	RepairCosts  int    `yaml:"repair_costs" validate:"min=1"`
	Size         int    `yaml:"size" validate:"min=0,max=4"`
}

type Weapon struct {
	Name      string `yaml:"name" validate:"required"`
	Power     int    `yaml:"power" validate:"min=1"`
	Price     int    `yaml:"price" validate:"min=0"`
	TechLevel int    `yaml:"tech_level" validate:"min=0,max=8"`
	Chance    int    `yaml:"chance" validate:"min=0,max=100"`
}

type Shield struct {
	Name      string `yaml:"name" validate:"required"`
	Power     int    `yaml:"power" validate:"min=1"`
	Price     int    `yaml:"price" validate:"min=0"`
	TechLevel int    `yaml:"tech_level" validate:"min=0,max=8"`
	Chance    int    `yaml:"chance" validate:"min=0,max=100"`
}

type Gadget struct {
	Name      string `yaml:"name" validate:"required"`
	Price     int    `yaml:"price" validate:"min=0"`
	TechLevel int    `yaml:"tech_level" validate:"min=0,max=8"`
	Chance    int    `yaml:"chance" validate:"min=0,max=100"`
}

// Politics is a government profile. Wanted is a commodity id or -1.
type Politics struct {
	Name            string
	ReactionIllegal int
	StrengthPolice  int
	StrengthPirates int
	StrengthTraders int
	MinTechLevel    int
	MaxTechLevel    int
	BribeLevel      int
	DrugsOK         bool
	FirearmsOK      bool
	Wanted          int
}

// Allows reports whether the government permits trading the commodity at all
func (p *Politics) Allows(commodity int) bool {
	switch commodity {
	case Narcotics:
		return p.DrugsOK
	case Firearms:
		return p.FirearmsOK
	}
	return true
}

// AllowsTech reports whether a system of this government may have the tech level
func (p *Politics) AllowsTech(level int) bool {
	return level >= p.MinTechLevel && level <= p.MaxTechLevel
}

type SpecialEvent struct {
	Title        string `yaml:"title" validate:"required"`
	Price        int    `yaml:"price"`
	Occurrence   int    `yaml:"occurrence" validate:"min=0"`
	JustAMessage bool   `yaml:"just_a_message"`
}

// Tables is the complete reference data set. It is never mutated after Load.
type Tables struct {
	TradeItems     []TradeItem    `validate:"len=10"`
	ShipTypes      []ShipType     `validate:"len=15,dive"`
	Weapons        []Weapon       `validate:"len=4,dive"`
	Shields        []Shield       `validate:"len=3,dive"`
	Gadgets        []Gadget       `validate:"len=6,dive"`
	Politics       []Politics     `validate:"len=17"`
	SpecialEvents  []SpecialEvent `validate:"len=37,dive"`
	SystemNames    []string       `validate:"len=120,dive,required"`
	MercenaryNames []string       `validate:"len=31,dive,required"`
}

// Occurrences returns a fresh copy of the special event occurrence weights.
// Galaxy generation works on its own copy so a disabled quest never leaks
// into the shared tables.
func (t *Tables) Occurrences() []int {
	occ := make([]int, len(t.SpecialEvents))
	for i, ev := range t.SpecialEvents {
		occ[i] = ev.Occurrence
	}
	return occ
}

// CommodityIndex looks a commodity up by name
func (t *Tables) CommodityIndex(name string) (int, bool) {
	for i, item := range t.TradeItems {
		if item.Name == name {
			return i, true
		}
	}
	return -1, false
}

// SystemName returns the display name of a system id
func (t *Tables) SystemName(index int) string {
	if index < 0 || index >= len(t.SystemNames) {
		return "Unknown"
	}
	return t.SystemNames[index]
}

// MercenaryName returns the display name of a roster index
func (t *Tables) MercenaryName(index int) string {
	if index < 0 || index >= len(t.MercenaryNames) {
		return "Captain"
	}
	return t.MercenaryNames[index]
}
