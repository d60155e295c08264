package ledger

import "time"

// BattleModel represents the battles table. It holds finished battle summaries only.
type BattleModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Mode           string    `gorm:"column:mode;not null"`
	Seed           int64     `gorm:"column:seed;not null"`
	Outcome        string    `gorm:"column:outcome;not null;index"`
	Winner         string    `gorm:"column:winner"`
	Rounds         int       `gorm:"column:rounds;not null"`
	PlayerName     string    `gorm:"column:player_name;not null"`
	OpponentName   string    `gorm:"column:opponent_name;not null"`
	PlayerHealth   int       `gorm:"column:player_health"`
	OpponentHealth int       `gorm:"column:opponent_health"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;index"`
}

func (BattleModel) TableName() string {
	return "battles"
}
