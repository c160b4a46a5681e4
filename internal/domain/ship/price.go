package ship

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// BasePrice is the shipyard price of an item after the trader discount,
// zero when the system's tech level is too low to sell it.
func BasePrice(itemTechLevel, price, systemTechLevel, traderSkill int) int {
	if itemTechLevel > systemTechLevel {
		return 0
	}
	return price * (100 - traderSkill) / 100
}

// BaseSellPrice is what an installed item fetches: three quarters of its price
func BaseSellPrice(price int) int {
	return price * 3 / 4
}

// BaseShipPrice is the shipyard price of a hull after the trader discount
func BaseShipPrice(t *tables.Tables, shipType, traderSkill int) int {
	return t.ShipTypes[shipType].Price * (100 - traderSkill) / 100
}

// WeaponSellPrice returns the resale value of a weapon slot, 0 when empty
func (s *Ship) WeaponSellPrice(t *tables.Tables, slot int) (int, error) {
	if err := shared.CheckIndex("weapon slot", slot, MaxWeapon); err != nil {
		return 0, err
	}
	idx, ok := s.Weapons[slot].Index()
	if !ok {
		return 0, nil
	}
	return BaseSellPrice(t.Weapons[idx].Price), nil
}

// ShieldSellPrice returns the resale value of a shield slot, 0 when empty
func (s *Ship) ShieldSellPrice(t *tables.Tables, slot int) (int, error) {
	if err := shared.CheckIndex("shield slot", slot, MaxShield); err != nil {
		return 0, err
	}
	idx, ok := s.Shields[slot].Index()
	if !ok {
		return 0, nil
	}
	return BaseSellPrice(t.Shields[idx].Price), nil
}

// GadgetSellPrice returns the resale value of a gadget slot, 0 when empty
func (s *Ship) GadgetSellPrice(t *tables.Tables, slot int) (int, error) {
	if err := shared.CheckIndex("gadget slot", slot, MaxGadget); err != nil {
		return 0, err
	}
	idx, ok := s.Gadgets[slot].Index()
	if !ok {
		return 0, nil
	}
	return BaseSellPrice(t.Gadgets[idx].Price), nil
}

// EquipmentValue sums the resale value of every installed item
func (s *Ship) EquipmentValue(t *tables.Tables) int {
	total := 0
	for i := 0; i < MaxWeapon; i++ {
		v, _ := s.WeaponSellPrice(t, i)
		total += v
	}
	for i := 0; i < MaxShield; i++ {
		v, _ := s.ShieldSellPrice(t, i)
		total += v
	}
	for i := 0; i < MaxGadget; i++ {
		v, _ := s.GadgetSellPrice(t, i)
		total += v
	}
	return total
}

// PriceWithoutCargo values the ship as the shipyard would take it in.
// Tribbles cut the hull value to a quarter unless valuing for insurance.
func (s *Ship) PriceWithoutCargo(t *tables.Tables, forInsurance, upgraded bool) int {
	spec := s.Spec(t)
	share := 3
	if s.Tribbles > 0 && !forInsurance {
		share = 1
	}
	price := spec.Price * share / 4
	price -= (s.HullStrength(t, upgraded) - s.Hull) * spec.RepairCosts
	price -= (spec.FuelTanks - s.CurrentFuel(t)) * spec.CostOfFuel
	return price + s.EquipmentValue(t)
}

// Price adds the purchase basis of the cargo to PriceWithoutCargo
func (s *Ship) Price(t *tables.Tables, forInsurance, upgraded bool, buyingPrice [tables.MaxTradeItem]int) int {
	price := s.PriceWithoutCargo(t, forInsurance, upgraded)
	for _, p := range buyingPrice {
		price += p
	}
	return price
}
