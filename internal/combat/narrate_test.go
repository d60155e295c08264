package combat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"hit", Event{Type: EventHit, Actor: "A", Payload: map[string]any{"target": "B", "damage": 15, "health": 65}},
			"A attacks and deals 15 damage! B health: 65"},
		{"evade", Event{Type: EventEvade, Actor: "A", Payload: map[string]any{"target": "B", "damage": 12}},
			"B evades the attack"},
		{"repair", Event{Type: EventRepair, Actor: "A", Payload: map[string]any{"amount": 7, "health": 87}},
			"A repairs for 7! Current health: 87"},
		{"out of range", Event{Type: EventOutOfRange, Actor: "A", Payload: map[string]any{"target": "B", "distance": 9, "range": 3}},
			"B is out of range"},
		{"cooldown", Event{Type: EventCooldown, Actor: "A", Payload: map[string]any{"action": "repair", "remaining": 1}},
			"repair is on cooldown for 1 more turns."},
		{"invalid", Event{Type: EventInvalidInput, Actor: "A", Payload: map[string]any{"input": "fire", "reason": "unknown action"}},
			`Invalid input "fire"`},
		{"victory", Event{Type: EventVictory, Actor: "A", Payload: map[string]any{"loser": "B"}},
			"A has defeated B!"},
		{"stalemate", Event{Type: EventStalemate, Payload: map[string]any{"rounds": 500}},
			"after 500 rounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Describe(tt.ev), tt.want)
		})
	}
}

func TestNewNarrator_OneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	emit := NewNarrator(&buf)

	emit(Event{Type: EventMove, Actor: "A", Payload: map[string]any{"distance": 1, "position": 2}})
	emit(Event{Type: EventDefeat, Actor: "B", Payload: map[string]any{"loser": "A"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"A moves to position 2.", "A has been destroyed by B!"}, lines)
}
