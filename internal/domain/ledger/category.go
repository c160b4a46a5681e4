package ledger

import "fmt"

// Category groups transaction types for the cash flow report
type Category string

const (
	CategoryFuelCosts      Category = "FUEL_COSTS"
	CategoryMaintenance    Category = "MAINTENANCE"
	CategoryTradingRevenue Category = "TRADING_REVENUE"
	CategoryTradingCosts   Category = "TRADING_COSTS"
	CategoryOperatingCosts Category = "OPERATING_COSTS"
	CategoryFinancing      Category = "FINANCING"
	CategoryCombatIncome   Category = "COMBAT_INCOME"
	CategoryPenalties      Category = "PENALTIES"
)

// AllCategories returns all valid categories in report order
func AllCategories() []Category {
	return []Category{
		CategoryTradingRevenue,
		CategoryTradingCosts,
		CategoryFuelCosts,
		CategoryMaintenance,
		CategoryOperatingCosts,
		CategoryFinancing,
		CategoryCombatIncome,
		CategoryPenalties,
	}
}

// TypeToCategoryMap maps transaction types to their categories
var TypeToCategoryMap = map[TransactionType]Category{
	TransactionTypeRefuel:           CategoryFuelCosts,
	TransactionTypeRepair:           CategoryMaintenance,
	TransactionTypePurchaseCargo:    CategoryTradingCosts,
	TransactionTypeSellCargo:        CategoryTradingRevenue,
	TransactionTypeDumpCargo:        CategoryTradingCosts,
	TransactionTypeWormholeTax:      CategoryOperatingCosts,
	TransactionTypeMercenaryPay:     CategoryOperatingCosts,
	TransactionTypeInsurancePremium: CategoryOperatingCosts,
	TransactionTypeEscapePod:        CategoryOperatingCosts,
	TransactionTypeInsurancePayout:  CategoryCombatIncome,
	TransactionTypeBounty:           CategoryCombatIncome,
	TransactionTypeInterest:         CategoryFinancing,
	TransactionTypeLoan:             CategoryFinancing,
	TransactionTypeLoanRepayment:    CategoryFinancing,
	TransactionTypeFine:             CategoryPenalties,
}

func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// IsIncome returns true if the category represents income
func (c Category) IsIncome() bool {
	switch c {
	case CategoryTradingRevenue, CategoryCombatIncome:
		return true
	default:
		return false
	}
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
