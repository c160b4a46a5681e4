package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	gameCommands "github.com/10igma/spacetrader-web/internal/application/game/commands"
	gameQueries "github.com/10igma/spacetrader-web/internal/application/game/queries"
	tradingQueries "github.com/10igma/spacetrader-web/internal/application/trading/queries"
)

// Trade subcommands
const (
	opBuy      = gameCommands.OperationBuy
	opSell     = gameCommands.OperationSell
	opDump     = gameCommands.OperationDump
	opJettison = gameCommands.OperationJettison
)

// NewMarketCommand creates the market command
func NewMarketCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show the local market",
		Long: `Show what the current system trades. A buy price of zero means the
market does not sell the good; a sell price of zero means it does not buy
it. Goods in the hold are highlighted with the average price paid.

Example:
  spacetrader market`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameQueries.MarketResponse](ctx, a, &gameQueries.GetMarketQuery{GameID: id})
				if err != nil {
					return err
				}
				displayMarket(response)
				return nil
			})
		},
	}
}

func displayMarket(m *gameQueries.MarketResponse) {
	rows := make([][]string, 0, len(m.Quotes))
	for _, q := range m.Quotes {
		basis := "-"
		if q.Held > 0 {
			basis = formatCredits(q.Basis)
		}
		rows = append(rows, []string{
			q.Commodity,
			priceOrDash(q.BuyPrice),
			priceOrDash(q.SellPrice),
			fmt.Sprint(q.Quantity),
			fmt.Sprint(q.Held),
			basis,
		})
	}

	fmt.Println(heading(fmt.Sprintf("%s MARKET  -  DAY %d", m.System, m.Day)))
	fmt.Print(keyValues(
		[2]string{"Credits", formatCredits(m.Credits)},
		[2]string{"Free bays", fmt.Sprint(m.FreeBays)},
	))
	fmt.Println(renderTable([]string{"Commodity", "Buy", "Sell", "Stock", "Held", "Paid"}, rows, func(row int) bool {
		return m.Quotes[row].Held > 0
	}))
}

func priceOrDash(price int) string {
	if price <= 0 {
		return "-"
	}
	return formatCredits(price)
}

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <commodity> [system]",
		Short: "Show recorded prices of a commodity",
		Long: `Show the prices recorded each time the commander docked at a system,
newest first. The system defaults to the current one.

Examples:
  spacetrader history Water
  spacetrader history Narcotics Sol --limit 5`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			query := &gameQueries.GetPriceHistoryQuery{GameID: id, Commodity: args[0], Limit: limit}
			if len(args) == 2 {
				query.System = args[1]
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameQueries.PriceHistoryResponse](ctx, a, query)
				if err != nil {
					return err
				}
				displayHistory(response)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records to show")

	return cmd
}

func displayHistory(h *gameQueries.PriceHistoryResponse) {
	fmt.Println(heading(fmt.Sprintf("%s AT %s", h.Commodity, h.System)))
	if len(h.Points) == 0 {
		fmt.Println("No prices recorded")
		return
	}
	rows := make([][]string, 0, len(h.Points))
	for _, p := range h.Points {
		rows = append(rows, []string{
			fmt.Sprint(p.Day),
			priceOrDash(p.BuyPrice),
			priceOrDash(p.SellPrice),
			fmt.Sprint(p.Quantity),
			fmt.Sprintf("%.1f%%", p.Spread),
		})
	}
	fmt.Println(renderTable([]string{"Day", "Buy", "Sell", "Stock", "Spread"}, rows, nil))
}

// NewTradeCommand creates one of the buy, sell, dump and jettison commands
func NewTradeCommand(op string) *cobra.Command {
	var (
		leaveEmpty int
		reserve    bool
	)

	descriptions := map[string]string{
		opBuy:      "Buy cargo from the local market",
		opSell:     "Sell cargo to the local market",
		opDump:     "Pay the market to take cargo it does not buy",
		opJettison: "Throw cargo out of the airlock",
	}

	cmd := &cobra.Command{
		Use:   op + " <commodity> [amount|all]",
		Short: descriptions[op],
		Long: descriptions[op] + `.

The commodity is named or given by its index. Without an amount, as many
units as possible are moved: the limit is the market's stock, the free
bays, the credits or the units held.

--reserve keeps enough credits for the next departure's wages and
insurance premium.

Examples:
  spacetrader ` + op + ` Water 10
  spacetrader ` + op + ` Firearms all --reserve`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args, 1, math.MaxInt32)
			if err != nil {
				return err
			}
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameCommands.TradeResponse](ctx, a, &gameCommands.TradeCommand{
					GameID:       id,
					Operation:    op,
					Commodity:    args[0],
					Amount:       amount,
					LeaveEmpty:   leaveEmpty,
					ReserveMoney: reserve,
				})
				if err != nil {
					return err
				}
				displayTrade(response)
				return nil
			})
		},
	}

	if op == opBuy {
		cmd.Flags().IntVar(&leaveEmpty, "leave-empty", 0, "Cargo bays to leave free")
	}
	cmd.Flags().BoolVar(&reserve, "reserve", false, "Keep credits for the next departure")

	return cmd
}

func displayTrade(r *gameCommands.TradeResponse) {
	var verb string
	switch r.Operation {
	case opBuy:
		verb = "Bought"
	case opSell:
		verb = "Sold"
	case opDump:
		verb = "Dumped"
	default:
		verb = "Jettisoned"
	}
	fmt.Println(green.Render(fmt.Sprintf("%s %d %s for %s credits", verb, r.Receipt.Units, r.Commodity, formatAmount(r.Receipt.Amount))))
	fmt.Print(keyValues(
		[2]string{"Held", fmt.Sprint(r.Held)},
		[2]string{"Credits", formatCredits(r.Receipt.Credits)},
	))
}

// NewTradesCommand creates the trades command
func NewTradesCommand() *cobra.Command {
	var (
		minMargin float64
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Find profitable cargo runs from here",
		Long: `Scan the local market against every system within reach and list the
most profitable cargo runs. Destination prices are estimated, since they
are only drawn on arrival. Credits for the next departure are held back.

Examples:
  spacetrader trades
  spacetrader trades --min-margin 20 --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*tradingQueries.FindArbitrageOpportunitiesResponse](ctx, a, &tradingQueries.FindArbitrageOpportunitiesQuery{
					GameID:    id,
					MinMargin: minMargin,
					Limit:     limit,
				})
				if err != nil {
					return err
				}
				displayOpportunities(response)
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&minMargin, "min-margin", 5.0, "Minimum profit margin in percent")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")

	return cmd
}

func displayOpportunities(r *tradingQueries.FindArbitrageOpportunitiesResponse) {
	fmt.Println(heading(fmt.Sprintf("CARGO RUNS FROM %s (reserving %s)", r.System, formatCredits(r.Reserve))))
	if len(r.Opportunities) == 0 {
		fmt.Println("No profitable runs in reach")
		return
	}
	rows := make([][]string, 0, len(r.Opportunities))
	for _, o := range r.Opportunities {
		dest := o.Destination
		if o.ViaWormhole {
			dest += " (wormhole)"
		}
		rows = append(rows, []string{
			o.Commodity,
			dest,
			fmt.Sprint(o.Distance),
			formatCredits(o.BuyPrice),
			formatCredits(o.SellPrice),
			fmt.Sprint(o.Units),
			fmt.Sprintf("%.1f%%", o.ProfitMargin),
			formatAmount(o.EstimatedProfit),
		})
	}
	fmt.Println(renderTable([]string{"Commodity", "Destination", "Dist", "Buy", "Est. sell", "Units", "Margin", "Profit"}, rows, func(row int) bool {
		return row == 0
	}))
}
