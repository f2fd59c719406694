// Package config handles harness configuration loading using viper.
package config

import (
	"time"

	"firestige.xyz/gensource/internal/log"
)

// Config is the top-level configuration of the gensource harness.
type Config struct {
	Logger *log.LoggerConfig `mapstructure:"log"`
	Source SourceConfig      `mapstructure:"source"`
	Driver DriverConfig      `mapstructure:"driver"`
}

// SourceConfig selects and configures the plugin to load.
type SourceConfig struct {
	// Plugin is the registration name to load.
	Plugin string `mapstructure:"plugin"`

	// Options is the raw text payload handed to the plugin's Init,
	// e.g. "range: 100".
	Options string `mapstructure:"options"`
}

// DriverConfig tunes the host-side capture loop.
type DriverConfig struct {
	// BatchSize is the negotiated per-call event cap. 0 = plugin default.
	BatchSize int `mapstructure:"batch_size"`

	// Batches is how many generation calls to issue. 0 = run until the
	// context is cancelled.
	Batches int `mapstructure:"batches"`

	// Interval paces generation calls. 0 = no pacing.
	Interval time.Duration `mapstructure:"interval"`

	Store StoreConfig `mapstructure:"store"`
}

// StoreConfig controls value-histogram persistence.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
