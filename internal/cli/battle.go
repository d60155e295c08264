package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"navalduel/internal/combat"
	"navalduel/internal/ledger"
	"navalduel/internal/util"
)

type battleOptions struct {
	mode    string
	decider combat.Decider
	pace    func(ctx context.Context) error
	outPath string
}

// runBattle plays one narrated battle, then writes the optional JSON report and ledger entry.
func (a *app) runBattle(ctx context.Context, out io.Writer, opts battleOptions) (combat.SimResult, error) {
	s := util.ResolveSeed(a.cfg.Game.Seed)
	dice := util.New(s)

	b, err := combat.NewBattle(uuid.NewString(), s, dice, a.roster, a.cfg.Game.MaxRounds,
		combat.Seating{PlayerDecider: opts.decider})
	if err != nil {
		return combat.SimResult{}, err
	}
	b.Emit = combat.NewNarrator(out)
	b.Pace = opts.pace
	b.Record = opts.outPath != ""

	a.log.Info("battle started",
		zap.String("id", b.ID),
		zap.String("mode", opts.mode),
		zap.Int64("seed", s),
		zap.String("player", b.Player.Ship.Name),
		zap.String("opponent", b.Opponent.Ship.Name))

	res, err := b.Run(ctx)
	if err != nil {
		a.log.Warn("battle aborted", zap.String("id", b.ID), zap.Int("round", res.Rounds), zap.Error(err))
		return res, err
	}
	a.log.Info("battle finished",
		zap.String("id", res.ID),
		zap.String("outcome", string(res.Outcome)),
		zap.Int("rounds", res.Rounds))
	fmt.Fprintf(out, "Battle %s finished: %s after %d rounds (seed %d)\n", res.ID, res.Outcome, res.Rounds, res.Seed)

	if opts.outPath != "" {
		if err := writeJSON(opts.outPath, combat.MarshalPretty(res), out); err != nil {
			return res, fmt.Errorf("write battle report: %w", err)
		}
	}
	if err := a.record(ctx, res, opts.mode); err != nil {
		return res, err
	}
	return res, nil
}

func (a *app) record(ctx context.Context, res combat.SimResult, mode string) error {
	if !a.cfg.Ledger.Enabled {
		return nil
	}
	db, err := ledger.NewConnection(&a.cfg.Ledger)
	if err != nil {
		return err
	}
	defer ledger.Close(db)

	repo := ledger.NewGormBattleRepository(db)
	if err := repo.Save(ctx, ledger.RecordFromResult(res, mode, time.Now().UTC())); err != nil {
		return err
	}
	a.log.Debug("battle recorded", zap.String("id", res.ID), zap.String("ledger", a.cfg.Ledger.Type))
	return nil
}
