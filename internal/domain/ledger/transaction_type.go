package ledger

import "fmt"

// TransactionType represents the kind of credit movement
type TransactionType string

const (
	TransactionTypeRefuel           TransactionType = "REFUEL"
	TransactionTypeRepair           TransactionType = "REPAIR"
	TransactionTypePurchaseCargo    TransactionType = "PURCHASE_CARGO"
	TransactionTypeSellCargo        TransactionType = "SELL_CARGO"
	TransactionTypeDumpCargo        TransactionType = "DUMP_CARGO"
	TransactionTypeWormholeTax      TransactionType = "WORMHOLE_TAX"
	TransactionTypeMercenaryPay     TransactionType = "MERCENARY_PAY"
	TransactionTypeInsurancePremium TransactionType = "INSURANCE_PREMIUM"
	TransactionTypeInsurancePayout  TransactionType = "INSURANCE_PAYOUT"
	TransactionTypeEscapePod        TransactionType = "ESCAPE_POD"
	TransactionTypeInterest         TransactionType = "INTEREST"
	TransactionTypeLoan             TransactionType = "LOAN"
	TransactionTypeLoanRepayment    TransactionType = "LOAN_REPAYMENT"
	TransactionTypeBounty           TransactionType = "BOUNTY"
	TransactionTypeFine             TransactionType = "FINE"
)

// AllTransactionTypes returns all valid transaction types
func AllTransactionTypes() []TransactionType {
	out := make([]TransactionType, len(typeOrder))
	copy(out, typeOrder)
	return out
}

var typeOrder = []TransactionType{
	TransactionTypeRefuel,
	TransactionTypeRepair,
	TransactionTypePurchaseCargo,
	TransactionTypeSellCargo,
	TransactionTypeDumpCargo,
	TransactionTypeWormholeTax,
	TransactionTypeMercenaryPay,
	TransactionTypeInsurancePremium,
	TransactionTypeInsurancePayout,
	TransactionTypeEscapePod,
	TransactionTypeInterest,
	TransactionTypeLoan,
	TransactionTypeLoanRepayment,
	TransactionTypeBounty,
	TransactionTypeFine,
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	_, ok := TypeToCategoryMap[t]
	return ok
}

// ToCategory maps the transaction type to its category
func (t TransactionType) ToCategory() (Category, error) {
	category, exists := TypeToCategoryMap[t]
	if !exists {
		return "", fmt.Errorf("unknown transaction type: %s", t)
	}
	return category, nil
}

// ParseTransactionType parses a string into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}
