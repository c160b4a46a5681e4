package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	gameCommands "github.com/10igma/spacetrader-web/internal/application/game/commands"
	gameQueries "github.com/10igma/spacetrader-web/internal/application/game/queries"
	"github.com/10igma/spacetrader-web/internal/domain/shared"
	"github.com/10igma/spacetrader-web/internal/infrastructure/config"
)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var (
		commander  string
		difficulty string
		seedX      uint32
		seedY      uint32
		skills     config.SkillsConfig
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Long: `Start a new game and make it the default game.

Flags left unset fall back to the game section of the config file. Seeds
of zero are drawn from the clock; pass both seeds to replay a galaxy.

Skill points range from 1 to 10 each and may total at most 20.

Examples:
  spacetrader new
  spacetrader new --commander Zaphod --difficulty hard
  spacetrader new --seed-x 42 --seed-y 7 --pilot 8 --fighter 4 --trader 4 --engineer 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				g := a.cfg.Game
				if !cmd.Flags().Changed("commander") {
					commander = g.Commander
				}
				if !cmd.Flags().Changed("difficulty") {
					difficulty = g.Difficulty
				}
				if !cmd.Flags().Changed("seed-x") {
					seedX = g.SeedX
				}
				if !cmd.Flags().Changed("seed-y") {
					seedY = g.SeedY
				}
				for _, s := range []struct {
					flag     string
					dst      *int
					fallback int
				}{
					{"pilot", &skills.Pilot, g.Skills.Pilot},
					{"fighter", &skills.Fighter, g.Skills.Fighter},
					{"trader", &skills.Trader, g.Skills.Trader},
					{"engineer", &skills.Engineer, g.Skills.Engineer},
				} {
					if !cmd.Flags().Changed(s.flag) {
						*s.dst = s.fallback
					}
				}
				return runNew(ctx, a, commander, difficulty, seedX, seedY, skills)
			})
		},
	}

	cmd.Flags().StringVar(&commander, "commander", "", "Commander name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Difficulty: beginner, easy, normal, hard or impossible")
	cmd.Flags().Uint32Var(&seedX, "seed-x", 0, "First galaxy seed")
	cmd.Flags().Uint32Var(&seedY, "seed-y", 0, "Second galaxy seed")
	cmd.Flags().IntVar(&skills.Pilot, "pilot", 0, "Pilot skill")
	cmd.Flags().IntVar(&skills.Fighter, "fighter", 0, "Fighter skill")
	cmd.Flags().IntVar(&skills.Trader, "trader", 0, "Trader skill")
	cmd.Flags().IntVar(&skills.Engineer, "engineer", 0, "Engineer skill")

	return cmd
}

func runNew(ctx context.Context, a *app, commander, difficulty string, seedX, seedY uint32, skills config.SkillsConfig) error {
	level, err := shared.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}

	now := uint64(time.Now().UnixNano())
	if seedX == 0 {
		seedX = uint32(now)
	}
	if seedY == 0 {
		seedY = uint32(now >> 32)
	}

	response, err := send[*gameCommands.StartGameResponse](ctx, a, &gameCommands.StartGameCommand{
		Commander:  commander,
		Difficulty: level,
		SeedX:      seedX,
		SeedY:      seedY,
		Skills:     [4]int{skills.Pilot, skills.Fighter, skills.Trader, skills.Engineer},
	})
	if err != nil {
		return err
	}

	userConfigHandler, err := config.NewUserConfigHandler()
	if err != nil {
		return fmt.Errorf("failed to create user config handler: %w", err)
	}
	if err := userConfigHandler.SetDefaultGame(response.GameID); err != nil {
		return fmt.Errorf("failed to set default game: %w", err)
	}

	fmt.Println(heading("NEW GAME"))
	fmt.Print(keyValues(
		[2]string{"Game", response.GameID},
		[2]string{"Commander", commander},
		[2]string{"Difficulty", level.String()},
		[2]string{"Seeds", fmt.Sprintf("%d %d", seedX, seedY)},
		[2]string{"System", response.System},
		[2]string{"Credits", formatCredits(response.Credits)},
		[2]string{"Digest", response.Digest},
	))
	return nil
}

// NewGamesCommand creates the games command
func NewGamesCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List saved games",
		Long: `List saved games, most recently played first.

Ended games are hidden unless --all is given. The default game is marked.

Examples:
  spacetrader games
  spacetrader games --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameQueries.ListGamesResponse](ctx, a, &gameQueries.ListGamesQuery{IncludeEnded: all})
				if err != nil {
					return err
				}
				if len(response.Games) == 0 {
					fmt.Println("No games found")
					return nil
				}

				current, _ := resolveGameID()
				rows := make([][]string, 0, len(response.Games))
				for _, g := range response.Games {
					rows = append(rows, []string{
						g.ID,
						g.Commander,
						fmt.Sprint(g.Day),
						formatCredits(g.Credits),
						yesNo(g.Ended),
						g.UpdatedAt.Format(time.DateTime),
					})
				}
				fmt.Println(renderTable([]string{"ID", "Commander", "Day", "Credits", "Ended", "Updated"}, rows, func(row int) bool {
					return rows[row][0] == current
				}))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include ended games")

	return cmd
}

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a saved game",
		Long: `Delete a saved game together with its journal and price history.

Example:
  spacetrader delete jameson-a3f8e2b1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				if _, err := a.mediator.Send(ctx, &gameCommands.DeleteGameCommand{GameID: args[0]}); err != nil {
					return err
				}

				userConfigHandler, err := config.NewUserConfigHandler()
				if err == nil {
					if userCfg, err := userConfigHandler.Load(); err == nil && userCfg.DefaultGame == args[0] {
						_ = userConfigHandler.ClearDefaultGame()
					}
				}

				fmt.Printf("Deleted game %s\n", args[0])
				return nil
			})
		},
	}
}

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the commander, ship and current system",
		Long: `Show the commander's standing, finances, ship and current system.

A pending encounter is listed with the actions it accepts.

Example:
  spacetrader status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameQueries.StatusResponse](ctx, a, &gameQueries.GetStatusQuery{GameID: id})
				if err != nil {
					return err
				}
				displayStatus(response)
				return nil
			})
		},
	}
}

func displayStatus(s *gameQueries.StatusResponse) {
	fmt.Println(heading(fmt.Sprintf("COMMANDER %s  -  DAY %d", s.Commander, s.Day)))
	fmt.Print(keyValues(
		[2]string{"Difficulty", s.Difficulty},
		[2]string{"Credits", formatCredits(s.Credits)},
		[2]string{"Debt", formatCredits(s.Debt)},
		[2]string{"Worth", formatCredits(s.Worth)},
		[2]string{"Max loan", formatCredits(s.MaxLoan)},
		[2]string{"Police record", fmt.Sprintf("%s (%d)", s.PoliceRecord, s.PoliceScore)},
		[2]string{"Reputation", fmt.Sprintf("%s (%d kills)", s.Reputation, s.Kills)},
		[2]string{"Escape pod", yesNo(s.EscapePod)},
		[2]string{"Insurance", fmt.Sprintf("%s (%d%% no-claim, %s/day)", yesNo(s.Insurance), s.NoClaim, formatCredits(s.Premium))},
		[2]string{"Payroll", formatCredits(s.Payroll) + "/day"},
	))

	fmt.Println(heading("SYSTEM " + s.System))
	fmt.Print(keyValues(
		[2]string{"Tech level", s.TechLevel},
		[2]string{"Government", s.Government},
		[2]string{"Status", s.SystemStatus},
	))

	fmt.Println(heading("SHIP " + s.Ship.Type))
	displayShip(s.Ship.Hull, s.Ship.MaxHull, s.Ship.Fuel, s.Ship.MaxFuel, s.Ship.CargoUsed, s.Ship.CargoBays,
		s.Ship.Weapons, s.Ship.Shields, s.Ship.Gadgets, s.Ship.Crew)

	if s.Encounter != nil {
		fmt.Println(heading("ENCOUNTER"))
		fmt.Print(keyValues(
			[2]string{"Opponent", fmt.Sprintf("%s (%s)", s.Encounter.Type, s.Encounter.Opponent.Type)},
			[2]string{"Destination", s.Encounter.Destination},
			[2]string{"Actions", fmt.Sprint(s.Encounter.Actions)},
		))
	}
	if s.Ended {
		fmt.Println(red.Render(fmt.Sprintf("Game over: %s, score %d", s.EndStatus, s.Score)))
	}
}

func displayShip(hull, maxHull, fuel, maxFuel, used, bays int, weapons, shields, gadgets, crew []string) {
	fmt.Print(keyValues(
		[2]string{"Hull", fmt.Sprintf("%d/%d", hull, maxHull)},
		[2]string{"Fuel", fmt.Sprintf("%d/%d parsecs", fuel, maxFuel)},
		[2]string{"Cargo", fmt.Sprintf("%d/%d bays", used, bays)},
		[2]string{"Weapons", fmt.Sprint(weapons)},
		[2]string{"Shields", fmt.Sprint(shields)},
		[2]string{"Gadgets", fmt.Sprint(gadgets)},
		[2]string{"Crew", fmt.Sprint(crew)},
	))
}

// NewRetireCommand creates the retire command
func NewRetireCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "retire",
		Short: "Retire the commander and end the game",
		Long: `Retire the commander. The game ends and its final score is computed
from the commander's worth, the days played and the difficulty.

Example:
  spacetrader retire`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameCommands.RetireResponse](ctx, a, &gameCommands.RetireCommand{GameID: id})
				if err != nil {
					return err
				}
				fmt.Println(heading("RETIRED"))
				fmt.Print(keyValues(
					[2]string{"Outcome", response.EndStatus},
					[2]string{"Days", fmt.Sprint(response.Days)},
					[2]string{"Worth", formatCredits(response.Worth)},
					[2]string{"Score", fmt.Sprint(response.Score)},
				))
				return nil
			})
		},
	}
}
