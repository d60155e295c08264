package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"navalduel/internal/combat"
)

func newPlayCommand(a *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Captain your ship against the automated opponent",
		Long: `Each turn choose attack, move or repair. Attacks need the enemy within your
range and are unavailable for a turn after firing; repairs rest for two turns.
A move asks for a signed distance that is multiplied by your speed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			decider := combat.NewConsoleDecider(cmd.InOrStdin(), out)
			_, err := a.runBattle(ctx, out, battleOptions{mode: "play", decider: decider, outPath: outPath})
			if errors.Is(err, combat.ErrNoDecision) {
				return fmt.Errorf("input closed before the battle ended: %w", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the full battle report as JSON (- for stdout)")
	return cmd
}
