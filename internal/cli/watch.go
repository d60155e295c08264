package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func newWatchCommand(a *app) *cobra.Command {
	var (
		outPath  string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the player ship fight on autopilot",
		Long: `Runs one battle with both seats driven by the uniform random decider.
The player ship keeps the player rules. Rounds are paced so the narration can be followed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.Game.WatchInterval
			}
			var pace func(context.Context) error
			if interval > 0 {
				limiter := rate.NewLimiter(rate.Every(interval), 1)
				pace = limiter.Wait
			}
			_, err := a.runBattle(ctx, cmd.OutOrStdout(), battleOptions{mode: "watch", pace: pace, outPath: outPath})
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the full battle report as JSON (- for stdout)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Delay between rounds (0 = unpaced; default from config watch_interval)")
	return cmd
}
