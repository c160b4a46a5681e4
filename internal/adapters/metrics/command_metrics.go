package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector times every command and query sent through the mediator
type CommandMetricsCollector struct {
	commandDuration *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
	lastDuration    *prometheus.GaugeVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		// Simulation commands run in-process, so the buckets start below a millisecond
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_duration_seconds",
				Help:      "Command execution duration distribution",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"command", "status"},
		),

		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_total",
				Help:      "Total number of commands executed by type and status",
			},
			[]string{"command", "status"},
		),

		lastDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_last_duration_seconds",
				Help:      "Duration of the most recent execution of each command",
			},
			[]string{"command"},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range []prometheus.Collector{c.commandDuration, c.commandsTotal, c.lastDuration} {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// RecordCommandExecution records one command execution
func (c *CommandMetricsCollector) RecordCommandExecution(commandName string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	seconds := duration.Seconds()
	c.commandDuration.WithLabelValues(commandName, status).Observe(seconds)
	c.commandsTotal.WithLabelValues(commandName, status).Inc()
	c.lastDuration.WithLabelValues(commandName).Set(seconds)
}
