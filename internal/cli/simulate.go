package cli

import (
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"navalduel/internal/combat"
	"navalduel/internal/util"
)

func newSimulateCommand(a *app) *cobra.Command {
	var (
		runs    int
		workers int
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run many autopilot battles and summarise the outcomes",
		Long: `Runs N independent battles, both seats on the random decider, on a worker pool.
Battle i uses seed + i*7919, so a summary is reproducible from its base seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs <= 0 {
				return fmt.Errorf("--runs must be positive, got %d", runs)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			base := util.ResolveSeed(a.cfg.Game.Seed)
			build := func(i int, s int64) (*combat.Battle, error) {
				id := fmt.Sprintf("batch-%d-%d", base, i)
				return combat.NewBattle(id, s, util.New(s), a.roster, a.cfg.Game.MaxRounds, combat.Seating{})
			}

			started := time.Now()
			a.log.Info("batch started", zap.Int("runs", runs), zap.Int("workers", workers), zap.Int64("seed", base))
			summary, err := combat.RunBatch(ctx, runs, workers, base, build)
			if err != nil {
				return err
			}
			a.log.Info("batch finished",
				zap.Int("runs", runs),
				zap.Duration("elapsed", time.Since(started)),
				zap.Float64("win_rate", summary.WinRate),
				zap.Int("stalemates", summary.Stalemates))

			report := map[string]any{
				"seed":       base,
				"max_rounds": a.cfg.Game.MaxRounds,
				"player":     a.roster.Player.Name,
				"opponent":   a.roster.Opponent.Name,
				"summary":    summary,
			}
			return writeJSON(outPath, combat.MarshalPretty(report), cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&runs, "runs", "n", 1000, "Number of battles")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Parallel workers")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Summary file (default stdout)")
	return cmd
}
