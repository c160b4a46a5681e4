package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/10igma/spacetrader-web/internal/adapters/metrics"
	"github.com/10igma/spacetrader-web/internal/application/common"
	tradingCommands "github.com/10igma/spacetrader-web/internal/application/trading/commands"
)

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		days          int
		daysPerSecond float64
		minMargin     float64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the autopilot trade for a number of days",
		Long: `Let the autopilot play the default game. Each day it sells the hold,
refuels, repairs, buys the most profitable cargo run within range and
warps. Police are submitted to; pirates and monsters are fled from.

Flags left unset fall back to the simulation section of the config file.
When metrics are enabled the Prometheus endpoint is served for the whole
run. Interrupt with Ctrl-C to stop after the current day.

Examples:
  spacetrader simulate --days 50
  spacetrader simulate --days 200 --days-per-second 2 --min-margin 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveGameID()
			if err != nil {
				return err
			}
			return withApp(func(ctx context.Context, a *app) error {
				if !cmd.Flags().Changed("days") {
					days = a.cfg.Simulation.Days
				}
				if !cmd.Flags().Changed("days-per-second") {
					daysPerSecond = a.cfg.Simulation.DaysPerSecond
				}
				return runSimulate(ctx, a, id, days, daysPerSecond, minMargin)
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days to play")
	cmd.Flags().Float64Var(&daysPerSecond, "days-per-second", 0, "Pace of the autopilot; zero is unpaced")
	cmd.Flags().Float64Var(&minMargin, "min-margin", tradingCommands.DefaultMinMargin, "Smallest expected margin in percent worth a run")

	return cmd
}

func runSimulate(ctx context.Context, a *app, id string, days int, daysPerSecond, minMargin float64) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := common.LoggerFromContext(ctx)
	if a.cfg.Metrics.Enabled {
		server, err := metrics.NewServer(a.cfg.Metrics.Host, a.cfg.Metrics.Port, a.cfg.Metrics.Path)
		if err != nil {
			return err
		}
		serverCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := server.Run(serverCtx); err != nil {
				logger.Log("ERROR", "Metrics server failed", map[string]interface{}{
					"addr":  server.Addr(),
					"error": err.Error(),
				})
			}
		}()
		logger.Log("INFO", "Serving metrics", map[string]interface{}{
			"addr": server.Addr(),
			"path": a.cfg.Metrics.Path,
		})
	}

	response, err := send[*tradingCommands.RunAutopilotResponse](ctx, a, &tradingCommands.RunAutopilotCommand{
		GameID:        id,
		Days:          days,
		DaysPerSecond: daysPerSecond,
		MinMargin:     minMargin,
	})
	if err != nil {
		return err
	}

	displaySimulation(response)

	if a.cfg.Metrics.Enabled && a.cfg.Metrics.Linger > 0 {
		logger.Log("INFO", "Holding metrics endpoint open", map[string]interface{}{
			"linger": a.cfg.Metrics.Linger.String(),
		})
		select {
		case <-time.After(a.cfg.Metrics.Linger):
		case <-ctx.Done():
		}
	}
	return nil
}

func displaySimulation(r *tradingCommands.RunAutopilotResponse) {
	fmt.Println(heading(fmt.Sprintf("AUTOPILOT  -  DAYS %d TO %d", r.StartDay, r.EndDay)))
	fmt.Print(keyValues(
		[2]string{"Trips", fmt.Sprint(r.Trips)},
		[2]string{"Encounters", fmt.Sprint(r.Encounters)},
		[2]string{"Credits", fmt.Sprintf("%s -> %s", formatCredits(r.StartCredits), formatCredits(r.EndCredits))},
		[2]string{"Worth", fmt.Sprintf("%s -> %s (%s)", formatCredits(r.StartWorth), formatCredits(r.EndWorth), formatAmount(r.EndWorth-r.StartWorth))},
	))
	if r.StopReason == tradingCommands.StopDaysElapsed {
		fmt.Println(green.Render("Stopped: " + r.StopReason))
		return
	}
	fmt.Println(red.Render("Stopped: " + r.StopReason))
}
