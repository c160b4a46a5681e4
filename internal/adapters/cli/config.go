package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	gameQueries "github.com/10igma/spacetrader-web/internal/application/game/queries"
	"github.com/10igma/spacetrader-web/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Space Trader configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (ST_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default game) are stored in ~/.spacetrader/config.json

Examples:
  spacetrader config show
  spacetrader config set-game jameson-a3f8e2b1
  spacetrader config clear-game`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetGameCommand())
	cmd.AddCommand(newConfigClearGameCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the current configuration settings.

Shows both system configuration and user preferences.

Example:
  spacetrader config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load system config
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			// Load user config
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Printf("Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			displayConfig(cfg, userCfg, userConfigHandler.GetConfigPath())
			return nil
		},
	}

	return cmd
}

func displayConfig(cfg *config.Config, userCfg *config.UserConfig, userConfigPath string) {
	defaultGame := userCfg.DefaultGame
	if defaultGame == "" {
		defaultGame = "(not set)"
	}
	fmt.Println(heading("USER PREFERENCES"))
	fmt.Print(keyValues(
		[2]string{"Config file", userConfigPath},
		[2]string{"Default game", defaultGame},
	))

	fmt.Println(heading("DATABASE"))
	db := [][2]string{{"Type", cfg.Database.Type}}
	switch {
	case cfg.Database.URL != "":
		db = append(db, [2]string{"URL", maskPassword(cfg.Database.URL)})
	case cfg.Database.Type == "sqlite":
		db = append(db, [2]string{"Path", cfg.Database.Path})
	default:
		db = append(db,
			[2]string{"Host", cfg.Database.Host},
			[2]string{"Port", fmt.Sprint(cfg.Database.Port)},
			[2]string{"Database", cfg.Database.Name},
			[2]string{"User", cfg.Database.User},
		)
	}
	if cfg.Database.Type == "postgres" {
		db = append(db, [2]string{"Max connections", fmt.Sprint(cfg.Database.Pool.MaxOpen)})
	}
	db = append(db, [2]string{"Migrate on start", yesNo(!cfg.Database.SkipMigrate)})
	fmt.Print(keyValues(db...))

	s := cfg.Game.Skills
	fmt.Println(heading("NEW GAMES"))
	fmt.Print(keyValues(
		[2]string{"Commander", cfg.Game.Commander},
		[2]string{"Difficulty", cfg.Game.Difficulty},
		[2]string{"Seeds", fmt.Sprintf("%d %d", cfg.Game.SeedX, cfg.Game.SeedY)},
		[2]string{"Skills", fmt.Sprintf("pilot %d, fighter %d, trader %d, engineer %d", s.Pilot, s.Fighter, s.Trader, s.Engineer)},
	))

	fmt.Println(heading("SIMULATION"))
	fmt.Print(keyValues(
		[2]string{"Days", fmt.Sprint(cfg.Simulation.Days)},
		[2]string{"Days per second", fmt.Sprint(cfg.Simulation.DaysPerSecond)},
	))

	fmt.Println(heading("LOGGING"))
	fmt.Print(keyValues(
		[2]string{"Level", cfg.Logging.Level},
		[2]string{"Format", cfg.Logging.Format},
		[2]string{"Output", cfg.Logging.Output},
	))

	fmt.Println(heading("METRICS"))
	fmt.Print(keyValues(
		[2]string{"Enabled", yesNo(cfg.Metrics.Enabled)},
		[2]string{"Endpoint", fmt.Sprintf("%s:%d%s", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)},
		[2]string{"Linger", cfg.Metrics.Linger.String()},
	))
}

// newConfigSetGameCommand creates the config set-game subcommand
func newConfigSetGameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-game <game-id>",
		Short: "Set default game",
		Long: `Set the default game to use for commands.

The default game will be used when --game is not given.

Example:
  spacetrader config set-game jameson-a3f8e2b1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Create user config handler
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			// Verify game exists in database
			return withApp(func(ctx context.Context, a *app) error {
				status, err := send[*gameQueries.StatusResponse](ctx, a, &gameQueries.GetStatusQuery{GameID: args[0]})
				if err != nil {
					return fmt.Errorf("game %s not found: %w", args[0], err)
				}

				if err := userConfigHandler.SetDefaultGame(status.GameID); err != nil {
					return fmt.Errorf("failed to set default game: %w", err)
				}

				fmt.Println(green.Render("✓ Default game set successfully"))
				fmt.Print(keyValues(
					[2]string{"Game", status.GameID},
					[2]string{"Commander", status.Commander},
					[2]string{"Day", fmt.Sprint(status.Day)},
				))
				return nil
			})
		},
	}

	return cmd
}

// newConfigClearGameCommand creates the config clear-game subcommand
func newConfigClearGameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-game",
		Short: "Clear default game setting",
		Long: `Remove the default game setting.

After clearing, you must explicitly specify --game for all commands
that act on a game.

Example:
  spacetrader config clear-game`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := userConfigHandler.ClearDefaultGame(); err != nil {
				return fmt.Errorf("failed to clear default game: %w", err)
			}

			fmt.Println(green.Render("✓ Default game cleared"))
			return nil
		},
	}

	return cmd
}

// maskPassword masks passwords in connection strings for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
