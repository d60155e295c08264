package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultMaxRounds     = 500
	DefaultWatchInterval = 400 * time.Millisecond
)

// registerDefaults seeds viper with the defaults whose zero value is meaningful, so an
// explicit 0 in the file or environment survives: no round cap, no watch pacing.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("game.max_rounds", DefaultMaxRounds)
	v.SetDefault("game.watch_interval", DefaultWatchInterval)
}

// SetDefaults fills every unset field that has no meaningful zero value. A negative
// MaxRounds is normalised to 0.
func SetDefaults(cfg *Config) {
	if cfg.Game.MaxRounds < 0 {
		cfg.Game.MaxRounds = 0
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	if cfg.Ledger.Type == "" {
		cfg.Ledger.Type = "sqlite"
	}
	if cfg.Ledger.Type == "sqlite" && cfg.Ledger.Path == "" {
		cfg.Ledger.Path = "navalduel.db"
	}
}
