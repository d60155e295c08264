package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"navalduel/internal/config"
	"navalduel/internal/logging"
)

// app is the state shared by every command once flags and config are resolved.
type app struct {
	cfg    *config.Config
	roster *config.RosterConfig
	log    *zap.Logger
}

var (
	// Global flags
	configPath string
	rosterPath string
	seed       int64
	maxRounds  int
	logLevel   string
	noLedger   bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

// newRootCommand wires the commands to a; a preset logger is kept instead of the configured one.
func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "navalduel",
		Short: "Turn-based naval duel on a one-dimensional sea lane",
		Long: `navalduel pits your ship against an automated pirate. Each turn you attack,
move or repair until one of the two ships sinks.

Examples:
  navalduel play
  navalduel play --seed 42 --out battle.json
  navalduel watch --interval 200ms
  navalduel simulate -n 10000 --workers 8
  navalduel history --limit 5`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to settings file (default ./navalduel.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "",
		"YAML file with the player and opponent ships")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Dice seed (0 = random, reported after the battle)")
	rootCmd.PersistentFlags().IntVar(&maxRounds, "max-rounds", 0,
		"Rounds before a stalemate is called (0 = never; default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noLedger, "no-ledger", false,
		"Do not record finished battles in the ledger")

	rootCmd.AddCommand(newPlayCommand(a))
	rootCmd.AddCommand(newWatchCommand(a))
	rootCmd.AddCommand(newSimulateCommand(a))
	rootCmd.AddCommand(newHistoryCommand(a))

	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("roster") {
		cfg.Game.Roster = rosterPath
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = seed
	}
	if flags.Changed("max-rounds") {
		cfg.Game.MaxRounds = max(maxRounds, 0)
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if noLedger {
		cfg.Ledger.Enabled = false
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	roster, err := config.LoadRoster(cfg.Game.Roster)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.roster = roster
	if a.log == nil {
		log, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		a.log = log
	}
	a.log.Debug("configuration loaded",
		zap.String("roster", cfg.Game.Roster),
		zap.Int("max_rounds", cfg.Game.MaxRounds),
		zap.Bool("ledger", cfg.Ledger.Enabled))
	return nil
}

func writeJSON(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
