package combat

import (
	"navalduel/internal/config"
)

// NewShipFromDef launches a ship from its definition with the ability bonus applied.
func NewShipFromDef(def config.ShipDef) (*Ship, error) {
	st := Stats{
		MaxHealth:   def.MaxHealth,
		AttackPower: def.AttackPower,
		Speed:       def.Speed,
		Evasion:     def.Evasion,
		Range:       def.Range,
	}
	switch def.Ability {
	case config.AbilityHighEvasion:
		st.Evasion = min(st.Evasion+HighEvasionBonus, 100)
	case config.AbilityHeavyAttack:
		st.AttackPower += HeavyAttackBonus
	}
	s, err := NewShip(def.Name, st)
	if err != nil {
		return nil, err
	}
	s.Ability = def.Ability
	s.Note = def.Note
	return s, nil
}

// Seating says who decides for the player seat. The opponent seat is always the
// uniform random decider under automated rules.
type Seating struct {
	PlayerDecider Decider
}

// NewBattle builds a fresh duel from the roster. The player seat plays under player rules
// whoever drives it; when no decider is given it is driven by the random decider too.
// With an opponent pool the opponent is drawn first, using the battle dice.
func NewBattle(id string, seed int64, dice Dice, roster *config.RosterConfig, maxRounds int, seats Seating) (*Battle, error) {
	opponentDef := roster.Opponent
	if n := len(roster.OpponentPool); n > 0 {
		opponentDef = roster.OpponentPool[dice.Intn(n)]
	}

	playerShip, err := NewShipFromDef(roster.Player)
	if err != nil {
		return nil, err
	}
	opponentShip, err := NewShipFromDef(opponentDef)
	if err != nil {
		return nil, err
	}

	pd := seats.PlayerDecider
	if pd == nil {
		pd = NewRandomDecider(dice)
	}
	player, err := NewParticipant(playerShip, pd, PlayerRules)
	if err != nil {
		return nil, err
	}
	opponent, err := NewParticipant(opponentShip, NewRandomDecider(dice), AutomatedRules)
	if err != nil {
		return nil, err
	}
	return &Battle{
		ID:        id,
		Seed:      seed,
		Env:       &Env{Dice: dice},
		Player:    player,
		Opponent:  opponent,
		MaxRounds: maxRounds,
	}, nil
}
