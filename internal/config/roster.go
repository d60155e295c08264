package config

// Opponent abilities. They are applied once when the ship is launched.
const (
	AbilityBalanced    = "balanced"
	AbilityHighEvasion = "high_evasion"
	AbilityHeavyAttack = "heavy_attack"
)

// RosterConfig is the fixed pair of ships in a duel. When OpponentPool is not empty the
// opponent seat is drawn from it for every battle instead of using Opponent.
type RosterConfig struct {
	Player       ShipDef   `yaml:"player" validate:"required"`
	Opponent     ShipDef   `yaml:"opponent" validate:"required"`
	OpponentPool []ShipDef `yaml:"opponent_pool" validate:"omitempty,dive"`
}

type ShipDef struct {
	Name        string `yaml:"name" validate:"required"`
	MaxHealth   int    `yaml:"max_health" validate:"min=1"`
	AttackPower int    `yaml:"attack_power" validate:"min=5"`
	Speed       int    `yaml:"speed" validate:"min=0"`
	Evasion     int    `yaml:"evasion" validate:"min=0,max=100"`
	Range       int    `yaml:"range" validate:"min=0"`
	Ability     string `yaml:"ability" validate:"omitempty,oneof=balanced high_evasion heavy_attack"`
	// Note is shown when the ship sets sail.
	Note string `yaml:"note"`
}

func DefaultRoster() *RosterConfig {
	return &RosterConfig{
		Player: ShipDef{
			Name: "The Black Pearl", MaxHealth: 100, AttackPower: 20,
			Speed: 2, Evasion: 20, Range: 3,
		},
		Opponent: ShipDef{
			Name: "Dread Pirate's Ship", MaxHealth: 80, AttackPower: 15,
			Speed: 1, Evasion: 10, Range: 3,
		},
	}
}

// ClassicFleet is the schooner, frigate and man-of-war trio an encounter can be drawn from.
func ClassicFleet() []ShipDef {
	return []ShipDef{
		{Name: "Schooner", MaxHealth: 50, AttackPower: 10, Speed: 2, Evasion: 30, Range: 3, Ability: AbilityHighEvasion},
		{Name: "Frigate", MaxHealth: 80, AttackPower: 15, Speed: 1, Evasion: 15, Range: 3, Ability: AbilityBalanced},
		{Name: "Man-of-War", MaxHealth: 120, AttackPower: 25, Speed: 1, Evasion: 5, Range: 4, Ability: AbilityHeavyAttack},
	}
}
