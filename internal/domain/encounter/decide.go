package encounter

import (
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
)

// Context is what the encounter roll needs to know about the destination
type Context struct {
	Politics    *tables.Politics
	PoliceScore int
	Difficulty  shared.Difficulty
}

// Decision is the outcome of the encounter roll. Type is the baseline
// reaction; Resolve refines it once the opponent is known.
type Decision struct {
	Category Category
	Type     Type
}

// Occurs reports whether the warp is interrupted
func (d Decision) Occurs() bool {
	return d.Category != None
}

// Decide rolls for an encounter on the way to the destination. The first
// roll gates the encounter on the combined faction strength; the second
// picks police, pirates or traders in that order of bands.
func Decide(r shared.Random, ctx Context) Decision {
	police := StrengthPolice(ctx.Politics, ctx.PoliceScore)
	pirates := ctx.Politics.StrengthPirates
	traders := ctx.Politics.StrengthTraders
	sum := police + pirates + traders

	if r.Below(44-2*int(ctx.Difficulty)) >= sum {
		return Decision{Category: None, Type: NoEncounter}
	}

	roll := r.Below(sum)
	switch {
	case roll < police:
		if ctx.PoliceScore < shared.DubiousScore {
			return Decision{Category: Police, Type: PoliceAttack}
		}
		return Decision{Category: Police, Type: PoliceInspection}
	case roll < police+pirates:
		return Decision{Category: Pirate, Type: PirateAttack}
	default:
		return Decision{Category: Trader, Type: TraderIgnore}
	}
}
