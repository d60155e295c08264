package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func duelists() (*Ship, *Ship) {
	a := mustShip("A", Stats{MaxHealth: 100, AttackPower: 20, Speed: 2, Evasion: 0, Range: 3})
	b := mustShip("B", Stats{MaxHealth: 80, AttackPower: 15, Speed: 1, Evasion: 0, Range: 3})
	b.Position = 2
	return a, b
}

func player(t *testing.T, s *Ship, d Decider) *Participant {
	t.Helper()
	p, err := NewParticipant(s, d, PlayerRules)
	require.NoError(t, err)
	return p
}

func automated(t *testing.T, s *Ship, d Decider) *Participant {
	t.Helper()
	p, err := NewParticipant(s, d, AutomatedRules)
	require.NoError(t, err)
	return p
}

func TestNewParticipant_AttackPowerPrecondition(t *testing.T) {
	weak := mustShip("W", Stats{MaxHealth: 50, AttackPower: 8})

	_, err := NewParticipant(weak, decide(), PlayerRules)
	assert.ErrorIs(t, err, ErrAttackPowerTooLow)

	_, err = NewParticipant(weak, decide(), AutomatedRules)
	assert.NoError(t, err)
}

func TestPlayerAttack_InRangeFixedRoll(t *testing.T) {
	// Arrange
	a, b := duelists()
	p := player(t, a, decide(Decision{Action: ActionAttack}))
	d := dice(damageRoll(15, 10), d100(50))
	var events []Event

	// Act
	err := p.TakeTurn(context.Background(), 1, b, d, collect(&events))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 65, b.Health)
	assert.Equal(t, 1, a.Cooldowns.Attack)
	assert.Equal(t, 2, d.used())
	require.Len(t, events, 1)
	assert.Equal(t, EventHit, events[0].Type)
	assert.Equal(t, 15, events[0].Payload["damage"])
	assert.Equal(t, 65, events[0].Payload["health"])
}

func TestPlayerAttack_EvadedStillStartsCooldown(t *testing.T) {
	a, b := duelists()
	b.Evasion = 30
	p := player(t, a, decide(Decision{Action: ActionAttack}))
	var events []Event

	err := p.TakeTurn(context.Background(), 1, b, dice(damageRoll(12, 10), d100(30)), collect(&events))

	require.NoError(t, err)
	assert.Equal(t, 80, b.Health)
	assert.Equal(t, 1, a.Cooldowns.Attack)
	require.Len(t, events, 1)
	assert.Equal(t, EventEvade, events[0].Type)
}

func TestPlayerAttack_OutOfRangeKeepsCooldown(t *testing.T) {
	a, b := duelists()
	b.Position = 5
	p := player(t, a, decide(Decision{Action: ActionAttack}))
	d := dice()
	var events []Event

	err := p.TakeTurn(context.Background(), 1, b, d, collect(&events))

	require.NoError(t, err)
	assert.Equal(t, 80, b.Health)
	assert.Equal(t, 0, a.Cooldowns.Attack)
	assert.Equal(t, 0, d.used())
	require.Len(t, events, 1)
	assert.Equal(t, EventOutOfRange, events[0].Type)
	assert.Contains(t, Describe(events[0]), "out of range")
}

func TestPlayerAttack_OnCooldownIsRejected(t *testing.T) {
	a, b := duelists()
	a.Cooldowns.Attack = 2
	p := player(t, a, decide(Decision{Action: ActionAttack}))
	var events []Event

	err := p.TakeTurn(context.Background(), 1, b, dice(), collect(&events))

	require.NoError(t, err)
	assert.Equal(t, 80, b.Health)
	assert.Equal(t, 1, a.Cooldowns.Attack, "only the start-of-turn reduction applies")
	require.Len(t, events, 1)
	assert.Equal(t, EventCooldown, events[0].Type)
	assert.Equal(t, 1, events[0].Payload["remaining"])
}

func TestPlayerAttack_CooldownOfOneClearsAtTurnStart(t *testing.T) {
	a, b := duelists()
	a.Cooldowns.Attack = 1
	p := player(t, a, decide(Decision{Action: ActionAttack}))

	err := p.TakeTurn(context.Background(), 2, b, dice(damageRoll(10, 10), d100(99)), func(Event) {})

	require.NoError(t, err)
	assert.Equal(t, 70, b.Health)
	assert.Equal(t, 1, a.Cooldowns.Attack)
}

func TestPlayerRepair(t *testing.T) {
	a, b := duelists()
	a.Health = 90
	p := player(t, a, decide(Decision{Action: ActionRepair}, Decision{Action: ActionRepair}, Decision{Action: ActionRepair}))
	var events []Event
	emit := collect(&events)

	require.NoError(t, p.TakeTurn(context.Background(), 1, b, dice(repairRoll(15)), emit))
	assert.Equal(t, 100, a.Health)
	assert.Equal(t, 2, a.Cooldowns.Repair)

	// next turn: cooldown 2 -> 1, still unavailable
	require.NoError(t, p.TakeTurn(context.Background(), 2, b, dice(), emit))
	assert.Equal(t, 1, a.Cooldowns.Repair)

	// the turn after: 1 -> 0, repair goes through
	a.Health = 50
	require.NoError(t, p.TakeTurn(context.Background(), 3, b, dice(repairRoll(7)), emit))
	assert.Equal(t, 57, a.Health)

	require.Len(t, events, 3)
	assert.Equal(t, EventRepair, events[0].Type)
	assert.Equal(t, EventCooldown, events[1].Type)
	assert.Equal(t, "repair", events[1].Payload["action"])
	assert.Equal(t, EventRepair, events[2].Type)
}

func TestPlayerMove(t *testing.T) {
	a, b := duelists()
	p := player(t, a, decide(Decision{Action: ActionMove, Distance: -3}))
	var events []Event

	require.NoError(t, p.TakeTurn(context.Background(), 1, b, dice(), collect(&events)))

	assert.Equal(t, -6, a.Position)
	require.Len(t, events, 1)
	assert.Equal(t, EventMove, events[0].Type)
	assert.Equal(t, -6, events[0].Payload["position"])
}

func TestPlayerInvalidInputForfeitsTurn(t *testing.T) {
	a, b := duelists()
	a.Cooldowns = Cooldowns{Attack: 1, Repair: 2}
	p := player(t, a, decide(Decision{Input: "fire", Reason: "unknown action"}))
	var events []Event

	require.NoError(t, p.TakeTurn(context.Background(), 1, b, dice(), collect(&events)))

	assert.Equal(t, Cooldowns{Attack: 0, Repair: 1}, a.Cooldowns)
	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 100, a.Health)
	require.Len(t, events, 1)
	assert.Equal(t, EventInvalidInput, events[0].Type)
	assert.Contains(t, Describe(events[0]), `"fire"`)
}

func TestAutomatedRejectionsAreSilent(t *testing.T) {
	a, b := duelists()
	b.Position = 10
	b.Cooldowns.Repair = 3
	p := automated(t, b, decide(Decision{Action: ActionAttack}, Decision{Action: ActionRepair}))
	var events []Event
	emit := collect(&events)

	require.NoError(t, p.TakeTurn(context.Background(), 1, a, dice(), emit))
	require.NoError(t, p.TakeTurn(context.Background(), 2, a, dice(), emit))

	assert.Empty(t, events)
	assert.Equal(t, 100, a.Health)
	assert.Equal(t, 1, b.Cooldowns.Repair)
}

func TestAutomatedAttackRollsFromFive(t *testing.T) {
	a, b := duelists()
	p := automated(t, b, decide(Decision{Action: ActionAttack}))

	require.NoError(t, p.TakeTurn(context.Background(), 1, a, dice(damageRoll(5, 5), d100(100)), func(Event) {}))

	assert.Equal(t, 95, a.Health)
	assert.Equal(t, 1, b.Cooldowns.Attack)
}

func TestTakeTurn_DecisionErrorStopsTurn(t *testing.T) {
	a, b := duelists()
	p := player(t, a, decide())

	err := p.TakeTurn(context.Background(), 4, b, dice(), func(Event) {})

	assert.ErrorIs(t, err, ErrNoDecision)
	assert.Contains(t, err.Error(), "A turn 4")
}
