package combat

import "strings"

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Actor   string         `json:"actor,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventSpawn        = "Spawn"
	EventEvade        = "Evade"
	EventHit          = "Hit"
	EventRepair       = "Repair"
	EventMove         = "Move"
	EventOutOfRange   = "OutOfRange"
	EventCooldown     = "Cooldown"
	EventInvalidInput = "InvalidInput"
	EventStatus       = "Status"
	EventVictory      = "Victory"
	EventDefeat       = "Defeat"
	EventStalemate    = "Stalemate"
)

// Action is the closed set of things a ship can do on its turn.
type Action int

const (
	ActionInvalid Action = iota
	ActionAttack
	ActionMove
	ActionRepair
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionMove:
		return "move"
	case ActionRepair:
		return "repair"
	default:
		return "invalid"
	}
}

type Outcome string

const (
	OutcomeVictory   Outcome = "victory"
	OutcomeDefeat    Outcome = "defeat"
	OutcomeStalemate Outcome = "stalemate"
)

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeVictory, OutcomeDefeat, OutcomeStalemate:
		return true
	}
	return false
}

func ParseOutcome(s string) (Outcome, bool) {
	o := Outcome(strings.ToLower(strings.TrimSpace(s)))
	return o, o.Valid()
}
