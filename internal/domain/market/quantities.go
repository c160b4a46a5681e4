package market

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/system"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// InitQuantities restocks every commodity of a system from scratch
func InitQuantities(t *tables.Tables, sys *system.SolarSystem, difficulty shared.Difficulty, r shared.Random) {
	d := int(difficulty)
	for i := range t.TradeItems {
		if !tradable(t, i, sys) {
			sys.Quantities[i] = 0
			continue
		}
		item := &t.TradeItems[i]

		q := (9 + r.Below(5) - utils.Abs(item.TechTopProduction-sys.TechLevel)) * (1 + sys.Size)

		if i == tables.Robots || i == tables.Narcotics {
			q = q*(5-d)/(6-d) + 1
		}
		if item.CheapResource >= 0 && sys.Resource == item.CheapResource {
			q = q * 4 / 3
		}
		if item.ExpensiveResource >= 0 && sys.Resource == item.ExpensiveResource {
			q = (q * 3) >> 2
		}
		if sys.Status == item.DoublePriceStatus {
			q = q / 5
		}

		q = q - r.Below(10) + r.Below(10)
		sys.Quantities[i] = utils.Max(0, q)
	}
}

// ChangeQuantities runs the daily restock countdown of every system the
// commander has left recently. A countdown reaching zero restocks fully;
// otherwise stock drifts by up to four units.
func ChangeQuantities(t *tables.Tables, systems []system.SolarSystem, difficulty shared.Difficulty, r shared.Random) {
	start := difficulty.StartCountdown()
	for i := range systems {
		sys := &systems[i]
		if sys.CountDown <= 0 {
			continue
		}
		sys.CountDown--
		switch {
		case sys.CountDown > start:
			sys.CountDown = start
		case sys.CountDown <= 0:
			InitQuantities(t, sys, difficulty, r)
		default:
			for j := range t.TradeItems {
				if !tradable(t, j, sys) {
					sys.Quantities[j] = 0
					continue
				}
				sys.Quantities[j] += r.Below(5) - r.Below(5)
				if sys.Quantities[j] < 0 {
					sys.Quantities[j] = 0
				}
			}
		}
	}
}
