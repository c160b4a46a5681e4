package market

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// Operation selects how cargo leaves the hold
type Operation int

const (
	// Sell trades cargo for the local sell quote
	Sell Operation = iota
	// Dump pays the dock to take cargo off the ship
	Dump
	// Jettison throws cargo out in space, risking a littering charge
	Jettison
)

func (o Operation) String() string {
	switch o {
	case Sell:
		return "sell"
	case Dump:
		return "dump"
	case Jettison:
		return "jettison"
	}
	return "unknown"
}

// Hold is the part of the commander's state a cargo trade touches
type Hold struct {
	Ship        *ship.Ship
	BuyingPrice *[tables.MaxTradeItem]int
	Credits     *int
	PoliceScore *int
}

// BuyOrder asks for up to Amount units. Bays is the ship's total cargo
// capacity; LeaveEmpty bays are kept free; Reserve credits are not spent.
type BuyOrder struct {
	Commodity  int
	Amount     int
	Bays       int
	LeaveEmpty int
	Reserve    int
}

// SellOrder asks to remove up to Amount units. Reserve limits what a dump may cost.
type SellOrder struct {
	Commodity int
	Amount    int
	Operation Operation
	Reserve   int
}

// DumpCost is the per-unit fee for dumping cargo
func DumpCost(difficulty shared.Difficulty) int {
	return 5 * (int(difficulty) + 1)
}

func (o BuyOrder) validate() error {
	if err := shared.CheckIndex("commodity", o.Commodity, tables.MaxTradeItem); err != nil {
		return err
	}
	if err := shared.CheckAmount("amount", o.Amount); err != nil {
		return err
	}
	if err := shared.CheckAmount("leave empty", o.LeaveEmpty); err != nil {
		return err
	}
	return shared.CheckAmount("reserve", o.Reserve)
}

// BuyCargo buys as much of the order as stock, free bays and credits allow
// and returns the number of units bought.
func BuyCargo(h Hold, sys *system.SolarSystem, prices *Prices, order BuyOrder) (int, error) {
	if err := order.validate(); err != nil {
		return 0, err
	}
	i := order.Commodity
	price := prices.Buy[i]
	if sys.Quantities[i] <= 0 || price <= 0 {
		return 0, nil
	}

	free := order.Bays - h.Ship.FilledCargoBays() - order.LeaveEmpty
	if free <= 0 {
		return 0, nil
	}

	toSpend := utils.Max(0, *h.Credits-order.Reserve)
	if toSpend < price {
		return 0, nil
	}

	toBuy := utils.Min(order.Amount, sys.Quantities[i])
	toBuy = utils.Min(toBuy, free)
	toBuy = utils.Min(toBuy, toSpend/price)

	h.Ship.Cargo[i] += toBuy
	*h.Credits -= toBuy * price
	h.BuyingPrice[i] += toBuy * price
	sys.Quantities[i] -= toBuy
	return toBuy, nil
}

// SellCargo removes cargo from the hold and returns the number of units
// removed. The purchase basis shrinks in proportion.
func SellCargo(h Hold, prices *Prices, order SellOrder, difficulty shared.Difficulty, r shared.Random) (int, error) {
	if err := shared.CheckIndex("commodity", order.Commodity, tables.MaxTradeItem); err != nil {
		return 0, err
	}
	if err := shared.CheckAmount("amount", order.Amount); err != nil {
		return 0, err
	}
	if order.Operation < Sell || order.Operation > Jettison {
		return 0, ErrUnknownOperation
	}
	i := order.Commodity
	held := h.Ship.Cargo[i]
	if held <= 0 {
		return 0, nil
	}
	if order.Operation == Sell && prices.Sell[i] <= 0 {
		return 0, nil
	}

	toSell := utils.Min(order.Amount, held)
	if order.Operation == Dump {
		toSpend := utils.Max(0, *h.Credits-order.Reserve)
		toSell = utils.Min(toSell, toSpend/DumpCost(difficulty))
	}

	h.BuyingPrice[i] = h.BuyingPrice[i] * (held - toSell) / held
	h.Ship.Cargo[i] -= toSell

	switch order.Operation {
	case Sell:
		*h.Credits += toSell * prices.Sell[i]
	case Dump:
		*h.Credits -= toSell * DumpCost(difficulty)
	case Jettison:
		if r.Below(10) < int(difficulty)+1 {
			*h.PoliceScore = littering(*h.PoliceScore)
		}
	}
	return toSell, nil
}

func littering(score int) int {
	if score > shared.DubiousScore {
		return shared.DubiousScore
	}
	if score > shared.PsychopathScore {
		return score - 1
	}
	return score
}
