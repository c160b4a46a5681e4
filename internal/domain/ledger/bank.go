package ledger

import (
	"github.com/10igma/spacetrader-web/internal/domain/crew"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/domain/ship"
	"github.com/10igma/spacetrader-web/internal/domain/tables"
	"github.com/10igma/spacetrader-web/pkg/utils"
)

// Bank limits
const (
	MaxCleanLoan = 25000
	MinCleanLoan = 1000
	CriminalLoan = 500
	// DebtCeiling blocks warping until the debt is reduced
	DebtCeiling = 100000
	// EscapePodPrice is the shipyard price of an escape pod
	EscapePodPrice = 2000
	// MaxNoClaim caps the no-claim discount in percent
	MaxNoClaim = 90
)

// Balance is the commander's cash position
type Balance struct {
	Credits int `json:"credits"`
	Debt    int `json:"debt"`
}

// CurrentWorth is ship value plus cash minus debt, with the moon counted at cost
func CurrentWorth(shipPrice int, b Balance, moonBought bool) int {
	worth := shipPrice + b.Credits - b.Debt
	if moonBought {
		worth += tables.CostMoon
	}
	return worth
}

// MaxLoan is what the bank will lend in total. Anyone below a clean record
// only gets a token amount.
func MaxLoan(policeScore, worth int) int {
	if policeScore >= shared.CleanScore {
		return utils.Min(MaxCleanLoan, utils.Max(MinCleanLoan, worth/10/500*500))
	}
	return CriminalLoan
}

// GetLoan borrows up to amount within the loan limit and returns the
// amount actually lent.
func GetLoan(b Balance, amount, maxLoan int) (int, Balance, error) {
	if err := shared.CheckAmount("loan", amount); err != nil {
		return 0, b, err
	}
	lent := utils.Max(0, utils.Min(maxLoan-b.Debt, amount))
	return lent, Balance{Credits: b.Credits + lent, Debt: b.Debt + lent}, nil
}

// PayBack repays up to cash of the debt and returns the amount repaid
func PayBack(b Balance, cash int) (int, Balance, error) {
	if err := shared.CheckAmount("cash", cash); err != nil {
		return 0, b, err
	}
	paid := utils.Min3(b.Debt, cash, b.Credits)
	return paid, Balance{Credits: b.Credits - paid, Debt: b.Debt - paid}, nil
}

// PayInterest charges a tenth of the debt, at least one credit. What cannot
// be paid in cash is added to the debt. It returns the cash paid.
func PayInterest(b Balance) (int, Balance) {
	if b.Debt <= 0 {
		return 0, b
	}
	interest := utils.Max(1, b.Debt/10)
	if b.Credits > interest {
		return interest, Balance{Credits: b.Credits - interest, Debt: b.Debt}
	}
	return b.Credits, Balance{Credits: 0, Debt: b.Debt + interest - b.Credits}
}

// InsurancePremium is the daily insurance charge. Each claim-free day
// lowers it by a percent, up to MaxNoClaim.
func InsurancePremium(insured bool, insuredValue, noClaim int) int {
	if !insured {
		return 0
	}
	return utils.Max(1, insuredValue*5/2000*(100-utils.Min(noClaim, MaxNoClaim))/100)
}

// MercenaryHirePrice is the daily wage of a roster member. A freed Wild
// works for nothing.
func MercenaryHirePrice(roster *crew.Roster, index int, wildFreed bool) int {
	if index < 0 || index >= crew.RosterSize || (index >= tables.MaxCrewMember && wildFreed) {
		return 0
	}
	return roster[index].SkillSum() * 3
}

// MercenaryPayroll sums the wages of every hired seat after the commander's
func MercenaryPayroll(s *ship.Ship, roster *crew.Roster, wildFreed bool) int {
	total := 0
	for i := 1; i < ship.MaxCrew; i++ {
		if idx, ok := s.Crew[i].Index(); ok {
			total += MercenaryHirePrice(roster, idx, wildFreed)
		}
	}
	return total
}
