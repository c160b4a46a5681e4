package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/10igma/spacetrader-web/internal/application/ledger/queries"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Financial ledger operations",
		Long: `View and analyze the commander's credit movements.

The ledger records every credit-affecting operation: cargo trades, fuel,
repairs, wages, insurance, interest, loans, bounties and fines. Each entry
is stamped with the game day it happened on.

Examples:
  spacetrader ledger list --limit 20
  spacetrader ledger list --category FUEL_COSTS
  spacetrader ledger list --from-day 10 --to-day 20
  spacetrader ledger profit-loss --from-day 1`,
	}

	// Add subcommands
	cmd.AddCommand(newLedgerListCommand())
	cmd.AddCommand(newLedgerProfitLossCommand())

	return cmd
}

// dayRange holds the optional --from-day/--to-day flags
type dayRange struct {
	from, to int
}

func (d *dayRange) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&d.from, "from-day", -1, "First game day to include")
	cmd.Flags().IntVar(&d.to, "to-day", -1, "Last game day to include")
}

func (d *dayRange) bounds() (*int, *int) {
	var from, to *int
	if d.from >= 0 {
		from = &d.from
	}
	if d.to >= 0 {
		to = &d.to
	}
	return from, to
}

// newLedgerListCommand creates the ledger list subcommand
func newLedgerListCommand() *cobra.Command {
	var (
		days     dayRange
		category string
		txType   string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List journal entries with optional filtering, oldest first.

Categories:
  TRADING_REVENUE   - Cargo sales
  TRADING_COSTS     - Cargo purchases and dumping fees
  FUEL_COSTS        - Refueling
  MAINTENANCE       - Hull repairs
  OPERATING_COSTS   - Wages, insurance premiums, wormhole tax, escape pod
  FINANCING         - Loans, repayments and interest
  COMBAT_INCOME     - Bounties and insurance payouts
  PENALTIES         - Fines

Examples:
  spacetrader ledger list --limit 10
  spacetrader ledger list --category FINANCING
  spacetrader ledger list --type SELL_CARGO --from-day 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerList(days, category, txType, limit, offset)
		},
	}

	days.register(cmd)
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&txType, "type", "", "Filter by transaction type")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of transactions to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of transactions to skip")

	return cmd
}

// newLedgerProfitLossCommand creates the profit & loss report subcommand
func newLedgerProfitLossCommand() *cobra.Command {
	var days dayRange

	cmd := &cobra.Command{
		Use:   "profit-loss",
		Short: "Generate profit & loss statement",
		Long: `Generate a profit & loss (P&L) statement over a range of game days.

The P&L statement shows:
- Total revenue by category
- Total expenses by category
- Net profit (revenue - expenses)

Example:
  spacetrader ledger profit-loss --from-day 1 --to-day 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfitLoss(days)
		},
	}

	days.register(cmd)

	return cmd
}

// runLedgerList executes the ledger list command
func runLedgerList(days dayRange, category, txType string, limit, offset int) error {
	id, err := resolveGameID()
	if err != nil {
		return err
	}

	return withApp(func(ctx context.Context, a *app) error {
		query := &queries.GetTransactionsQuery{
			GameID: id,
			Limit:  limit,
			Offset: offset,
		}
		query.FromDay, query.ToDay = days.bounds()
		if category != "" {
			query.Category = &category
		}
		if txType != "" {
			query.TransactionType = &txType
		}

		response, err := send[*queries.GetTransactionsResponse](ctx, a, query)
		if err != nil {
			return fmt.Errorf("failed to query transactions: %w", err)
		}

		displayTransactionList(response)
		return nil
	})
}

// runProfitLoss executes the profit & loss report command
func runProfitLoss(days dayRange) error {
	id, err := resolveGameID()
	if err != nil {
		return err
	}

	return withApp(func(ctx context.Context, a *app) error {
		query := &queries.GetProfitLossQuery{GameID: id}
		query.FromDay, query.ToDay = days.bounds()

		response, err := send[*queries.GetProfitLossResponse](ctx, a, query)
		if err != nil {
			return fmt.Errorf("failed to generate P&L report: %w", err)
		}

		displayProfitLoss(response)
		return nil
	})
}

// displayTransactionList formats and displays transaction list
func displayTransactionList(response *queries.GetTransactionsResponse) {
	if len(response.Transactions) == 0 {
		fmt.Println("No transactions found")
		return
	}

	rows := make([][]string, 0, len(response.Transactions))
	for _, tx := range response.Transactions {
		rows = append(rows, []string{
			fmt.Sprint(tx.Day),
			tx.Type,
			tx.Category,
			formatAmount(tx.Amount),
			formatCredits(tx.BalanceAfter),
			tx.Description,
		})
	}

	fmt.Println(heading(fmt.Sprintf("TRANSACTIONS (Showing %d of %d total)", len(response.Transactions), response.Total)))
	fmt.Println(renderTable([]string{"Day", "Type", "Category", "Amount", "Balance", "Description"}, rows, nil))
}

// displayProfitLoss formats and displays P&L report
func displayProfitLoss(response *queries.GetProfitLossResponse) {
	fmt.Println(heading("PROFIT & LOSS STATEMENT"))
	fmt.Printf("Period: %s\n\n", response.Period)

	var rows [][]string
	for _, category := range sortedKeys(response.RevenueBreakdown) {
		rows = append(rows, []string{"Revenue", category, formatCredits(response.RevenueBreakdown[category])})
	}
	rows = append(rows, []string{"Revenue", "Total", formatCredits(response.TotalRevenue)})
	for _, category := range sortedKeys(response.ExpenseBreakdown) {
		rows = append(rows, []string{"Expenses", category, formatCredits(-response.ExpenseBreakdown[category])})
	}
	rows = append(rows, []string{"Expenses", "Total", formatCredits(-response.TotalExpenses)})
	rows = append(rows, []string{"", "NET PROFIT", formatAmount(response.NetProfit)})

	fmt.Println(renderTable([]string{"Section", "Category", "Credits"}, rows, func(row int) bool {
		return rows[row][1] == "Total" || rows[row][1] == "NET PROFIT"
	}))
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatAmount formats an amount with +/- sign
func formatAmount(amount int) string {
	if amount >= 0 {
		return fmt.Sprintf("+%s", formatCredits(amount))
	}
	return formatCredits(amount)
}

// formatCredits formats credits with thousands separator
func formatCredits(credits int) string {
	if credits < 0 {
		return "-" + addThousandsSeparator(-credits)
	}
	return addThousandsSeparator(credits)
}

// addThousandsSeparator adds commas to a number (e.g., 1234567 -> "1,234,567")
func addThousandsSeparator(n int) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Insert commas from right to left
	var result []byte
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
