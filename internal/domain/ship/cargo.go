package ship

import (
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// ReactorActive reports whether an unstable reactor is aboard
func ReactorActive(reactorStatus int) bool {
	return reactorStatus > 0 && reactorStatus < 21
}

// TotalCargoBays returns usable cargo capacity. Extra-bay gadgets add five
// bays each; the Japori medicine and the unstable reactor take space.
func (s *Ship) TotalCargoBays(t *tables.Tables, diseaseAboard bool, reactorStatus int) int {
	bays := s.Spec(t).CargoBays
	for _, g := range s.Gadgets {
		if idx, ok := g.Index(); ok && idx == tables.ExtraBays {
			bays += 5
		}
	}
	if diseaseAboard {
		bays -= 10
	}
	if ReactorActive(reactorStatus) {
		bays -= 5 + 10 - (reactorStatus-1)/2
	}
	return bays
}

// FilledCargoBays returns the number of occupied bays
func (s *Ship) FilledCargoBays() int {
	sum := 0
	for _, q := range s.Cargo {
		sum += q
	}
	return sum
}
