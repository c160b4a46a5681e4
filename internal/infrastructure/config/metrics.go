package config

import "time"

// MetricsConfig controls the Prometheus endpoint served while the autopilot runs
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`

	// Linger keeps the endpoint up after a simulation ends so the final
	// gauges can still be scraped
	Linger time.Duration `mapstructure:"linger" validate:"min=0"`
}
