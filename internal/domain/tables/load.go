package tables

import (
	"embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/10igma/spacetrader-web/internal/domain/system"
)

//go:embed data/*.yaml
var dataFS embed.FS

type tradeItemDoc struct {
	Name              string `yaml:"name"`
	TechProduction    int    `yaml:"tech_production"`
	TechUsage         int    `yaml:"tech_usage"`
	TechTopProduction int    `yaml:"tech_top_production"`
	PriceLowTech      int    `yaml:"price_low_tech"`
	PriceInc          int    `yaml:"price_inc"`
	Variance          int    `yaml:"variance"`
	DoublePriceStatus string `yaml:"double_price_status"`
	CheapResource     string `yaml:"cheap_resource"`
	ExpensiveResource string `yaml:"expensive_resource"`
	MinTradePrice     int    `yaml:"min_trade_price"`
	MaxTradePrice     int    `yaml:"max_trade_price"`
	RoundOff          int    `yaml:"round_off"`
}

type politicsDoc struct {
	Name            string `yaml:"name"`
	ReactionIllegal int    `yaml:"reaction_illegal"`
	StrengthPolice  int    `yaml:"strength_police"`
	StrengthPirates int    `yaml:"strength_pirates"`
	StrengthTraders int    `yaml:"strength_traders"`
	MinTechLevel    int    `yaml:"min_tech_level"`
	MaxTechLevel    int    `yaml:"max_tech_level"`
	BribeLevel      int    `yaml:"bribe_level"`
	DrugsOK         bool   `yaml:"drugs_ok"`
	FirearmsOK      bool   `yaml:"firearms_ok"`
	Wanted          string `yaml:"wanted"`
}

type document struct {
	TradeItems    []tradeItemDoc `yaml:"trade_items"`
	ShipTypes     []ShipType     `yaml:"ship_types"`
	Weapons       []Weapon       `yaml:"weapons"`
	Shields       []Shield       `yaml:"shields"`
	Gadgets       []Gadget       `yaml:"gadgets"`
	Politics      []politicsDoc  `yaml:"politics"`
	SpecialEvents []SpecialEvent `yaml:"special_events"`
	SolarSystems  []string       `yaml:"solar_systems"`
	Mercenaries   []string       `yaml:"mercenaries"`
}

var dataFiles = []string{
	"data/trade_items.yaml",
	"data/ship_types.yaml",
	"data/equipment.yaml",
	"data/politics.yaml",
	"data/special_events.yaml",
	"data/names.yaml",
}

// Load decodes and validates the embedded reference data
func Load() (*Tables, error) {
	var doc document
	for _, name := range dataFiles {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		var part document
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		doc.merge(&part)
	}
	return build(&doc)
}

func (d *document) merge(o *document) {
	d.TradeItems = append(d.TradeItems, o.TradeItems...)
	d.ShipTypes = append(d.ShipTypes, o.ShipTypes...)
	d.Weapons = append(d.Weapons, o.Weapons...)
	d.Shields = append(d.Shields, o.Shields...)
	d.Gadgets = append(d.Gadgets, o.Gadgets...)
	d.Politics = append(d.Politics, o.Politics...)
	d.SpecialEvents = append(d.SpecialEvents, o.SpecialEvents...)
	d.SolarSystems = append(d.SolarSystems, o.SolarSystems...)
	d.Mercenaries = append(d.Mercenaries, o.Mercenaries...)
}

// MustLoad is Load for process start-up and tests; it panics on error
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

func build(doc *document) (*Tables, error) {
	t := &Tables{
		ShipTypes:      doc.ShipTypes,
		Weapons:        doc.Weapons,
		Shields:        doc.Shields,
		Gadgets:        doc.Gadgets,
		SpecialEvents:  doc.SpecialEvents,
		SystemNames:    doc.SolarSystems,
		MercenaryNames: doc.Mercenaries,
	}

	for _, d := range doc.TradeItems {
		item, err := d.toTradeItem()
		if err != nil {
			return nil, err
		}
		t.TradeItems = append(t.TradeItems, item)
	}

	for _, d := range doc.Politics {
		wanted := -1
		if d.Wanted != "" {
			idx, ok := t.CommodityIndex(d.Wanted)
			if !ok {
				return nil, fmt.Errorf("politics %q wants unknown commodity %q", d.Name, d.Wanted)
			}
			wanted = idx
		}
		t.Politics = append(t.Politics, Politics{
			Name:            d.Name,
			ReactionIllegal: d.ReactionIllegal,
			StrengthPolice:  d.StrengthPolice,
			StrengthPirates: d.StrengthPirates,
			StrengthTraders: d.StrengthTraders,
			MinTechLevel:    d.MinTechLevel,
			MaxTechLevel:    d.MaxTechLevel,
			BribeLevel:      d.BribeLevel,
			DrugsOK:         d.DrugsOK,
			FirearmsOK:      d.FirearmsOK,
			Wanted:          wanted,
		})
	}

	if err := validator.New().Struct(t); err != nil {
		return nil, fmt.Errorf("invalid reference data: %w", err)
	}
	return t, nil
}

func (d tradeItemDoc) toTradeItem() (TradeItem, error) {
	status, err := system.ParseStatus(d.DoublePriceStatus)
	if err != nil {
		return TradeItem{}, fmt.Errorf("trade item %s: %w", d.Name, err)
	}
	cheap, err := system.ParseResource(d.CheapResource)
	if err != nil {
		return TradeItem{}, fmt.Errorf("trade item %s: %w", d.Name, err)
	}
	expensive, err := system.ParseResource(d.ExpensiveResource)
	if err != nil {
		return TradeItem{}, fmt.Errorf("trade item %s: %w", d.Name, err)
	}
	return TradeItem{
		Name:              d.Name,
		TechProduction:    d.TechProduction,
		TechUsage:         d.TechUsage,
		TechTopProduction: d.TechTopProduction,
		PriceLowTech:      d.PriceLowTech,
		PriceInc:          d.PriceInc,
		Variance:          d.Variance,
		DoublePriceStatus: status,
		CheapResource:     cheap,
		ExpensiveResource: expensive,
		MinTradePrice:     d.MinTradePrice,
		MaxTradePrice:     d.MaxTradePrice,
		RoundOff:          d.RoundOff,
	}, nil
}
