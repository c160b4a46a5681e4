package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	gameID     string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spacetrader",
		Short: "Space Trader - a deterministic space trading simulation",
		Long: `Space Trader simulates a commander trading between the solar systems
of a randomly generated galaxy. Every game is fully determined by its two
seeds: the same seeds and commands always replay to the same state.

Games are saved in the configured database after every command.

Examples:
  spacetrader new --commander Jameson --seed-x 42 --seed-y 7
  spacetrader status
  spacetrader market
  spacetrader trades --min-margin 10
  spacetrader buy Water 10
  spacetrader galaxy --reachable
  spacetrader warp Sol
  spacetrader fight flee
  spacetrader ledger list --limit 20
  spacetrader simulate --days 100 --days-per-second 5`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&gameID, "game", "g", "",
		"Game ID (defaults to the game set with 'config set-game')")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewGamesCommand())
	rootCmd.AddCommand(NewDeleteCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewRetireCommand())
	rootCmd.AddCommand(NewGalaxyCommand())
	rootCmd.AddCommand(NewWarpCommand())
	rootCmd.AddCommand(NewFightCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewHistoryCommand())
	rootCmd.AddCommand(NewTradesCommand())
	for _, op := range []string{opBuy, opSell, opDump, opJettison} {
		rootCmd.AddCommand(NewTradeCommand(op))
	}
	rootCmd.AddCommand(NewFuelCommand())
	rootCmd.AddCommand(NewRepairCommand())
	rootCmd.AddCommand(NewBankCommand())
	rootCmd.AddCommand(NewInsuranceCommand())
	rootCmd.AddCommand(NewCrewCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
