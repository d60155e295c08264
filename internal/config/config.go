package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings of the simulator.
type Config struct {
	Game    GameConfig     `mapstructure:"game"`
	Logging LoggingConfig  `mapstructure:"logging"`
	Ledger  DatabaseConfig `mapstructure:"ledger"`
}

type GameConfig struct {
	// Seed for the battle dice; 0 picks one from the clock and reports it.
	Seed int64 `mapstructure:"seed"`

	// Rounds before a battle is called a stalemate (default 500); 0 never calls it.
	MaxRounds int `mapstructure:"max_rounds" validate:"min=0"`

	// Roster file with the player and opponent ships; empty uses the built-in pair.
	Roster string `mapstructure:"roster"`

	// Delay between rounds in watch mode (default 400ms); 0 runs unpaced.
	WatchInterval time.Duration `mapstructure:"watch_interval" validate:"min=0"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr"`
}

type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Type    string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	Path    string `mapstructure:"path"`
	URL     string `mapstructure:"url" validate:"required_if=Type postgres"`
}

// LoadConfig reads settings with priority env (NAVAL_*) > config file > defaults.
// A .env file in the working directory is loaded first when present.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("navalduel")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("NAVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)
	registerDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// AutomaticEnv only resolves keys viper already knows about, so every key is bound
// explicitly for env-only setups without a config file.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"game.seed", "game.max_rounds", "game.roster", "game.watch_interval",
		"logging.level", "logging.format", "logging.output",
		"ledger.enabled", "ledger.type", "ledger.path", "ledger.url",
	} {
		_ = v.BindEnv(key)
	}
}
