package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"navalduel/internal/combat"
)

var ErrBattleNotFound = errors.New("battle not found")

// BattleRecord is the stored summary of one finished battle.
type BattleRecord struct {
	ID             string
	Mode           string
	Seed           int64
	Outcome        combat.Outcome
	Winner         string
	Rounds         int
	PlayerName     string
	OpponentName   string
	PlayerHealth   int
	OpponentHealth int
	CreatedAt      time.Time
}

func RecordFromResult(res combat.SimResult, mode string, at time.Time) *BattleRecord {
	return &BattleRecord{
		ID:             res.ID,
		Mode:           mode,
		Seed:           res.Seed,
		Outcome:        res.Outcome,
		Winner:         res.Winner,
		Rounds:         res.Rounds,
		PlayerName:     res.Meta.Player.Name,
		OpponentName:   res.Meta.Opponent.Name,
		PlayerHealth:   res.PlayerHealth,
		OpponentHealth: res.OpponentHealth,
		CreatedAt:      at,
	}
}

// GormBattleRepository stores battle records with GORM.
type GormBattleRepository struct {
	db *gorm.DB
}

func NewGormBattleRepository(db *gorm.DB) *GormBattleRepository {
	return &GormBattleRepository{db: db}
}

func (r *GormBattleRepository) Save(ctx context.Context, rec *BattleRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("battle record without id")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	model := recordToModel(rec)
	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return fmt.Errorf("failed to save battle %s: %w", rec.ID, result.Error)
	}
	return nil
}

func (r *GormBattleRepository) FindByID(ctx context.Context, id string) (*BattleRecord, error) {
	var model BattleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBattleNotFound, id)
		}
		return nil, fmt.Errorf("failed to find battle: %w", result.Error)
	}
	return modelToRecord(&model), nil
}

// ListRecent returns up to limit records, newest first. An empty outcome lists all.
func (r *GormBattleRepository) ListRecent(ctx context.Context, limit int, outcome combat.Outcome) ([]*BattleRecord, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if outcome != "" {
		q = q.Where("outcome = ?", string(outcome))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var models []BattleModel
	if result := q.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list battles: %w", result.Error)
	}
	out := make([]*BattleRecord, 0, len(models))
	for i := range models {
		out = append(out, modelToRecord(&models[i]))
	}
	return out, nil
}

func recordToModel(rec *BattleRecord) *BattleModel {
	return &BattleModel{
		ID:             rec.ID,
		Mode:           rec.Mode,
		Seed:           rec.Seed,
		Outcome:        string(rec.Outcome),
		Winner:         rec.Winner,
		Rounds:         rec.Rounds,
		PlayerName:     rec.PlayerName,
		OpponentName:   rec.OpponentName,
		PlayerHealth:   rec.PlayerHealth,
		OpponentHealth: rec.OpponentHealth,
		CreatedAt:      rec.CreatedAt,
	}
}

func modelToRecord(m *BattleModel) *BattleRecord {
	return &BattleRecord{
		ID:             m.ID,
		Mode:           m.Mode,
		Seed:           m.Seed,
		Outcome:        combat.Outcome(m.Outcome),
		Winner:         m.Winner,
		Rounds:         m.Rounds,
		PlayerName:     m.PlayerName,
		OpponentName:   m.OpponentName,
		PlayerHealth:   m.PlayerHealth,
		OpponentHealth: m.OpponentHealth,
		CreatedAt:      m.CreatedAt,
	}
}
