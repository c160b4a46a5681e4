package ship

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// HullStrength returns the maximum hull, including the quest upgrade
func (s *Ship) HullStrength(t *tables.Tables, upgraded bool) int {
	if upgraded {
		return s.Spec(t).HullStrength + UpgradedHull
	}
	return s.Spec(t).HullStrength
}

// BuyRepairs spends up to amount credits on whole hull points
func (s *Ship) BuyRepairs(t *tables.Tables, amount, credits int, upgraded bool) (Purchase, error) {
	if err := shared.CheckAmount("amount", amount); err != nil {
		return Purchase{Credits: credits}, err
	}
	repairCosts := s.Spec(t).RepairCosts
	maxRepairs := (s.HullStrength(t, upgraded) - s.Hull) * repairCosts
	toSpend := utils.Min3(amount, maxRepairs, credits)
	if toSpend < 0 {
		toSpend = 0
	}
	points := toSpend / repairCosts
	s.Hull += points
	cost := points * repairCosts
	return Purchase{Units: points, Cost: cost, Credits: credits - cost}, nil
}

// TakeDamage lowers the hull, flooring at zero, and reports destruction
func (s *Ship) TakeDamage(damage int) bool {
	s.Hull = utils.Max(0, s.Hull-damage)
	return s.Hull <= 0
}
