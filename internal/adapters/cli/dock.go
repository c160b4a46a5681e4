package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gameCommands "github.com/10igma/spacetrader-web/internal/application/game/commands"
	"github.com/10igma/spacetrader-web/internal/application/mediator"
)

// NewFuelCommand creates the fuel command
func NewFuelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fuel [credits|all]",
		Short: "Refuel the ship",
		Long: `Spend up to the given credits on fuel. Without an amount the tank is
filled as far as the credits allow.

Examples:
  spacetrader fuel
  spacetrader fuel 100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := parseAmount(args, 0, 0)
			if err != nil {
				return err
			}
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameCommands.BuyFuelResponse](ctx, a, &gameCommands.BuyFuelCommand{GameID: id, Credits: credits})
				if err != nil {
					return err
				}
				fmt.Println(green.Render(fmt.Sprintf("Bought %d parsecs of fuel", response.Receipt.Units)))
				fmt.Print(keyValues(
					[2]string{"Fuel", fmt.Sprintf("%d parsecs", response.Fuel)},
					[2]string{"Credits", formatCredits(response.Receipt.Credits)},
				))
				return nil
			})
		},
	}
}

// NewRepairCommand creates the repair command
func NewRepairCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repair [credits|all]",
		Short: "Repair the hull",
		Long: `Spend up to the given credits on hull repairs. Without an amount the
hull is repaired as far as the credits allow.

Examples:
  spacetrader repair
  spacetrader repair 250`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := parseAmount(args, 0, 0)
			if err != nil {
				return err
			}
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				response, err := send[*gameCommands.RepairResponse](ctx, a, &gameCommands.RepairCommand{GameID: id, Credits: credits})
				if err != nil {
					return err
				}
				fmt.Println(green.Render(fmt.Sprintf("Repaired %d hull points", response.Receipt.Units)))
				fmt.Print(keyValues(
					[2]string{"Hull", fmt.Sprintf("%d/%d", response.Hull, response.MaxHull)},
					[2]string{"Credits", formatCredits(response.Receipt.Credits)},
				))
				return nil
			})
		},
	}
}

// NewBankCommand creates the bank command with subcommands
func NewBankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Borrow credits and pay back the debt",
		Long: `Borrow credits from the bank and pay them back.

The debt accrues 10% interest every day. The loan limit depends on the
commander's police record and worth.

Examples:
  spacetrader bank borrow 1000
  spacetrader bank payback
  spacetrader bank payback 500`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "borrow <amount>",
		Short: "Take a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args, 0, 0)
			if err != nil {
				return err
			}
			return runBank(func(id string) mediator.Request {
				return &gameCommands.BorrowCommand{GameID: id, Amount: amount}
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "payback [amount|all]",
		Short: "Pay back the debt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args, 0, 0)
			if err != nil {
				return err
			}
			return runBank(func(id string) mediator.Request {
				return &gameCommands.PayBackCommand{GameID: id, Amount: amount}
			})
		},
	})

	return cmd
}

func runBank(build func(id string) mediator.Request) error {
	id, err := resolveGameID()
	if err != nil {
		return err
	}
	return withApp(func(ctx context.Context, a *app) error {
		response, err := send[*gameCommands.BankResponse](ctx, a, build(id))
		if err != nil {
			return err
		}
		fmt.Print(keyValues(
			[2]string{"Change", formatAmount(response.Receipt.Amount)},
			[2]string{"Credits", formatCredits(response.Receipt.Credits)},
			[2]string{"Debt", formatCredits(response.Debt)},
			[2]string{"Max loan", formatCredits(response.MaxLoan)},
		))
		return nil
	})
}

// NewInsuranceCommand creates the insurance command with subcommands
func NewInsuranceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insurance",
		Short: "Manage the escape pod and ship insurance",
		Long: `Buy an escape pod and insure the ship.

Insurance needs an escape pod. The daily premium shrinks with every day
without a claim, down to 10% of the base rate after 90 days.

Examples:
  spacetrader insurance pod
  spacetrader insurance buy
  spacetrader insurance stop`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "pod",
		Short: "Buy an escape pod",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsurance(func(id string) mediator.Request {
				return &gameCommands.BuyEscapePodCommand{GameID: id}
			})
		},
	})
	for _, insure := range []bool{true, false} {
		insure := insure
		use, short := "buy", "Insure the ship"
		if !insure {
			use, short = "stop", "Cancel the insurance"
		}
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runInsurance(func(id string) mediator.Request {
					return &gameCommands.InsuranceCommand{GameID: id, Insure: insure}
				})
			},
		})
	}

	return cmd
}

func runInsurance(build func(id string) mediator.Request) error {
	id, err := resolveGameID()
	if err != nil {
		return err
	}
	return withApp(func(ctx context.Context, a *app) error {
		response, err := send[*gameCommands.InsuranceResponse](ctx, a, build(id))
		if err != nil {
			return err
		}
		fmt.Print(keyValues(
			[2]string{"Escape pod", yesNo(response.EscapePod)},
			[2]string{"Insured", yesNo(response.Insured)},
			[2]string{"Premium", formatCredits(response.Premium) + "/day"},
			[2]string{"No-claim", fmt.Sprintf("%d%%", response.NoClaim)},
			[2]string{"Credits", formatCredits(response.Credits)},
		))
		return nil
	})
}

// NewCrewCommand creates the crew command with subcommands
func NewCrewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crew",
		Short: "Hire and fire mercenaries",
		Long: `Hire mercenaries into free crew quarters or let them go.

Mercenaries are named or given by their roster index. Each one draws a
daily wage that is paid on departure.

Examples:
  spacetrader crew hire Alyssa
  spacetrader crew fire 3`,
	}

	for _, hire := range []bool{true, false} {
		hire := hire
		use, short := "hire <mercenary>", "Hire a mercenary"
		if !hire {
			use, short = "fire <mercenary>", "Fire a mercenary"
		}
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := resolveGameID()
				if err != nil {
					return err
				}
				var request mediator.Request = &gameCommands.FireCommand{GameID: id, Mercenary: args[0]}
				if hire {
					request = &gameCommands.HireCommand{GameID: id, Mercenary: args[0]}
				}
				return withApp(func(ctx context.Context, a *app) error {
					response, err := send[*gameCommands.CrewResponse](ctx, a, request)
					if err != nil {
						return err
					}
					verb := "Fired"
					if hire {
						verb = "Hired"
					}
					fmt.Println(green.Render(fmt.Sprintf("%s %s", verb, response.Mercenary)))
					fmt.Print(keyValues(
						[2]string{"Crew", strings.Join(response.Crew, ", ")},
						[2]string{"Payroll", formatCredits(response.Payroll) + "/day"},
					))
					return nil
				})
			},
		})
	}

	return cmd
}
