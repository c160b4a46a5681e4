package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gameCommands "github.com/10igma/spacetrader-web/internal/application/game/commands"
	gameQueries "github.com/10igma/spacetrader-web/internal/application/game/queries"
	"github.com/10igma/spacetrader-web/internal/application/game/dtos"
)

// NewGalaxyCommand creates the galaxy command
func NewGalaxyCommand() *cobra.Command {
	var reachable bool

	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "List the solar systems",
		Long: `List the solar systems of the galaxy with their distance from the
current system. Systems the tank can reach are highlighted; a wormhole
reaches its exit from the current system regardless of distance.

Examples:
  spacetrader galaxy
  spacetrader galaxy --reachable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameQueries.GalaxyResponse](ctx, a, &gameQueries.GetGalaxyQuery{
					GameID:        id,
					ReachableOnly: reachable,
				})
				if err != nil {
					return err
				}
				displayGalaxy(response)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&reachable, "reachable", false, "Only list systems within range")

	return cmd
}

func displayGalaxy(response *gameQueries.GalaxyResponse) {
	rows := make([][]string, 0, len(response.Systems))
	for _, s := range response.Systems {
		name := s.Name
		switch {
		case s.Current:
			name += " *"
		case s.Wormhole:
			name += " (wormhole)"
		}
		rows = append(rows, []string{
			fmt.Sprint(s.ID),
			name,
			fmt.Sprint(s.Distance),
			s.TechLevel,
			s.Government,
			s.Size,
			s.Status,
			s.Resource,
			yesNo(s.Visited),
		})
	}

	fmt.Println(heading(fmt.Sprintf("GALAXY (fuel %d parsecs)", response.Fuel)))
	fmt.Println(renderTable(
		[]string{"ID", "System", "Dist", "Tech", "Government", "Size", "Status", "Resource", "Visited"},
		rows,
		func(row int) bool { return response.Systems[row].Reachable },
	))
}

// NewWarpCommand creates the warp command
func NewWarpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "warp <system>",
		Short: "Warp to another system",
		Long: `Warp to another system by name or id.

Departure pays wages, the insurance premium and any wormhole tax up front.
An encounter may interrupt the trip; answer it with 'spacetrader fight'.

Examples:
  spacetrader warp Sol
  spacetrader warp 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameCommands.WarpResponse](ctx, a, &gameCommands.WarpCommand{
					GameID: id,
					Target: args[0],
				})
				if err != nil {
					return err
				}
				displayWarp(response)
				return nil
			})
		},
	}
}

func displayWarp(r *gameCommands.WarpResponse) {
	via := ""
	if r.ViaWormhole {
		via = " through the wormhole"
	}
	fmt.Println(heading(fmt.Sprintf("%s -> %s%s", r.From, r.To, via)))
	fmt.Print(keyValues(
		[2]string{"Distance", fmt.Sprintf("%d parsecs", r.Distance)},
		[2]string{"Departure costs", formatCredits(r.Costs)},
		[2]string{"Credits", formatCredits(r.Credits)},
		[2]string{"Day", fmt.Sprint(r.Day)},
	))
	displayEvents(r.Events)
	if r.Encounter != nil {
		displayEncounter(r.Encounter)
		return
	}
	if r.Arrived {
		fmt.Println(green.Render("Arrived at " + r.To))
	}
}

func displayEncounter(e *dtos.EncounterDTO) {
	fmt.Println(heading(fmt.Sprintf("ENCOUNTER: %s", e.Type)))
	fmt.Print(keyValues(
		[2]string{"Ship", e.Opponent.Type},
		[2]string{"Hull", fmt.Sprintf("%d/%d", e.Opponent.Hull, e.Opponent.MaxHull)},
		[2]string{"Weapons", fmt.Sprint(e.Opponent.Weapons)},
		[2]string{"Shields", fmt.Sprint(e.Opponent.Shields)},
		[2]string{"Actions", strings.Join(e.Actions, ", ")},
	))
}

func displayEvents(events []string) {
	for _, e := range events {
		fmt.Println(brightGreen.Render("News: " + e))
	}
}

// NewFightCommand creates the fight command
func NewFightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fight <action>",
		Short: "Answer the pending encounter",
		Long: `Answer the pending encounter with one action. Each call plays one round.

Actions:
  attack     - Fire at the opponent
  flee       - Try to escape
  ignore     - Fly on past a ship that leaves you alone
  submit     - Let the police inspect the hold
  surrender  - Hand over cargo or credits to pirates

Examples:
  spacetrader fight attack
  spacetrader fight flee`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameCommands.EncounterActionResponse](ctx, a, &gameCommands.EncounterActionCommand{
					GameID: id,
					Action: args[0],
				})
				if err != nil {
					return err
				}
				displayRound(response)
				return nil
			})
		},
	}
}

func displayRound(r *gameCommands.EncounterActionResponse) {
	fmt.Println(heading(fmt.Sprintf("%s vs %s", strings.ToUpper(r.Action), r.Type)))
	if r.PlayerHit {
		fmt.Println(green.Render(fmt.Sprintf("You hit the opponent for %d damage", r.PlayerDamage)))
	}
	if r.OpponentHit {
		fmt.Println(red.Render(fmt.Sprintf("The opponent hits you for %d damage", r.OpponentDamage)))
	}

	switch {
	case r.CommanderDestroyed && r.EscapePodUsed:
		fmt.Println(red.Render("Your ship is destroyed. The escape pod carries you to safety."))
	case r.CommanderDestroyed:
		fmt.Println(red.Render("Your ship is destroyed."))
	case r.OpponentDestroyed:
		fmt.Println(brightGreen.Render("The opponent is destroyed"))
	case r.Escaped:
		fmt.Println(green.Render("You escaped"))
	case r.OpponentEscaped:
		fmt.Println(green.Render("The opponent got away"))
	}

	pairs := [][2]string{
		{"Hull", fmt.Sprint(r.Hull)},
		{"Credits", formatCredits(r.Credits)},
	}
	if r.Bounty > 0 {
		pairs = append(pairs, [2]string{"Bounty", formatCredits(r.Bounty)})
	}
	if r.Fine > 0 {
		pairs = append(pairs, [2]string{"Fine", formatCredits(r.Fine)})
	}
	if r.Confiscated > 0 {
		pairs = append(pairs, [2]string{"Confiscated", fmt.Sprintf("%d units", r.Confiscated)})
	}
	fmt.Print(keyValues(pairs...))
	displayEvents(r.Events)

	switch {
	case r.GameOver:
		fmt.Println(red.Render("Game over"))
	case r.Encounter != nil:
		displayEncounter(r.Encounter)
	case r.Arrived:
		fmt.Printf("Arrived on day %d\n", r.Day)
	}
}
