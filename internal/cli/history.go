package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"navalduel/internal/combat"
	"navalduel/internal/ledger"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		limit   int
		outcome string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finished battles from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			var want combat.Outcome
			if outcome != "" {
				o, ok := combat.ParseOutcome(outcome)
				if !ok {
					return fmt.Errorf("unknown outcome %q (victory, defeat, stalemate)", outcome)
				}
				want = o
			}
			repo, closeFn, err := a.openLedger()
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := repo.ListRecent(cmd.Context(), limit, want)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No battles recorded.")
				return nil
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum battles to list (0 = all)")
	cmd.Flags().StringVar(&outcome, "outcome", "", "Only list victory, defeat or stalemate")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <battle-id>",
		Short: "Show one recorded battle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, closeFn, err := a.openLedger()
			if err != nil {
				return err
			}
			defer closeFn()

			rec, err := repo.FindByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON("", combat.MarshalPretty(rec), cmd.OutOrStdout())
		},
	})
	return cmd
}

func (a *app) openLedger() (*ledger.GormBattleRepository, func(), error) {
	db, err := ledger.NewConnection(&a.cfg.Ledger)
	if err != nil {
		return nil, nil, err
	}
	return ledger.NewGormBattleRepository(db), func() { _ = ledger.Close(db) }, nil
}

func printRecords(w io.Writer, records []*ledger.BattleRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tMODE\tOUTCOME\tROUNDS\tSEED\tHULLS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d/%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Outcome, r.Rounds, r.Seed,
			r.PlayerHealth, r.OpponentHealth)
	}
	tw.Flush()
}
