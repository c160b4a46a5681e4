package ship

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// CompactedTanks is the tank size with a fuel compactor fitted
const CompactedTanks = 18

// Purchase reports what a fuel or repair purchase actually applied
type Purchase struct {
	Units   int
	Cost    int
	Credits int
}

// FuelTanks returns the effective tank size
func (s *Ship) FuelTanks(t *tables.Tables) int {
	if s.HasGadget(tables.FuelCompactor) {
		return CompactedTanks
	}
	return s.Spec(t).FuelTanks
}

// CurrentFuel returns stored fuel capped at the effective tank size
func (s *Ship) CurrentFuel(t *tables.Tables) int {
	return utils.Min(s.Fuel, s.FuelTanks(t))
}

// BuyFuel spends up to amount credits on whole parsecs of fuel, limited by
// the available credits and the empty tank space.
func (s *Ship) BuyFuel(t *tables.Tables, amount, credits int) (Purchase, error) {
	if err := shared.CheckAmount("amount", amount); err != nil {
		return Purchase{Credits: credits}, err
	}
	costOfFuel := s.Spec(t).CostOfFuel
	maxFuel := (s.FuelTanks(t) - s.CurrentFuel(t)) * costOfFuel
	toBuy := utils.Min3(amount, maxFuel, credits)
	if toBuy < 0 {
		toBuy = 0
	}
	parsecs := toBuy / costOfFuel
	s.Fuel += parsecs
	cost := parsecs * costOfFuel
	return Purchase{Units: parsecs, Cost: cost, Credits: credits - cost}, nil
}

// ConsumeFuel burns fuel for a jump of the given distance, never below zero
func (s *Ship) ConsumeFuel(t *tables.Tables, distance int) {
	s.Fuel -= utils.Min(distance, s.CurrentFuel(t))
}
