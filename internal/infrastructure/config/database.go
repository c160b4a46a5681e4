package config

import "time"

// DatabaseConfig selects where saved games, the journal and price history live.
// SQLite is the default; a shared PostgreSQL server lets several commanders
// keep their saves in one place.
type DatabaseConfig struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`

	// URL wins over the discrete postgres fields
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`

	// Path of the sqlite file, or ":memory:"
	Path string `mapstructure:"path" validate:"required_if=Type sqlite"`

	// SkipMigrate leaves the schema alone on startup
	SkipMigrate bool `mapstructure:"skip_migrate"`

	Pool PoolConfig `mapstructure:"pool"`
}

// PoolConfig sizes the postgres connection pool. SQLite always runs on a
// single connection.
type PoolConfig struct {
	MaxOpen     int           `mapstructure:"max_open" validate:"min=1"`
	MaxIdle     int           `mapstructure:"max_idle" validate:"min=1,ltefield=MaxOpen"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
}
