package combat

import (
	"context"
	"fmt"
)

// Rules are the per-variant differences in how a turn resolves.
type Rules struct {
	Label     string
	MinDamage int
	// Narrate rejected actions (out of range, on cooldown, bad input). The automated
	// opponent wastes infeasible turns silently.
	ReportRejections bool
}

var (
	PlayerRules    = Rules{Label: "player", MinDamage: 10, ReportRejections: true}
	AutomatedRules = Rules{Label: "automated", MinDamage: 5}
)

type Participant struct {
	Ship    *Ship
	Decider Decider
	Rules   Rules
}

func NewParticipant(ship *Ship, decider Decider, rules Rules) (*Participant, error) {
	if ship.AttackPower < rules.MinDamage {
		return nil, fmt.Errorf("%w: %s has %d, %s rules roll from %d",
			ErrAttackPowerTooLow, ship.Name, ship.AttackPower, rules.Label, rules.MinDamage)
	}
	return &Participant{Ship: ship, Decider: decider, Rules: rules}, nil
}

// TakeTurn runs one complete turn: cooldowns tick, a decision is obtained and resolved.
// Only a failing decision source produces an error; rejected actions just waste the turn.
func (p *Participant) TakeTurn(ctx context.Context, round int, opponent *Ship, d Dice, emit func(Event)) error {
	self := p.Ship
	self.ReduceCooldowns()

	dec, err := p.Decider.Decide(ctx, self, opponent)
	if err != nil {
		return fmt.Errorf("%s turn %d: %w", self.Name, round, err)
	}

	reject := func(typ string, payload map[string]any) {
		if p.Rules.ReportRejections {
			emit(Event{Round: round, Type: typ, Actor: self.Name, Payload: payload})
		}
	}

	switch dec.Action {
	case ActionAttack:
		if !self.WithinRange(opponent) {
			reject(EventOutOfRange, map[string]any{
				"target": opponent.Name, "distance": Distance(self, opponent), "range": self.Range,
			})
			return nil
		}
		if cd := self.Cooldowns.Attack; cd > 0 {
			reject(EventCooldown, map[string]any{"action": ActionAttack.String(), "remaining": cd})
			return nil
		}
		damage := roll(d, p.Rules.MinDamage, self.AttackPower)
		hit := opponent.TakeDamage(damage, d)
		self.Cooldowns.set(ActionAttack, AttackCooldown)
		if hit.Evaded {
			emit(Event{Round: round, Type: EventEvade, Actor: self.Name, Payload: map[string]any{
				"target": opponent.Name, "damage": damage,
			}})
			return nil
		}
		emit(Event{Round: round, Type: EventHit, Actor: self.Name, Payload: map[string]any{
			"target": opponent.Name, "damage": hit.Damage, "health": hit.Health,
		}})

	case ActionRepair:
		if cd := self.Cooldowns.Repair; cd > 0 {
			reject(EventCooldown, map[string]any{"action": ActionRepair.String(), "remaining": cd})
			return nil
		}
		amount := self.Repair(d)
		emit(Event{Round: round, Type: EventRepair, Actor: self.Name, Payload: map[string]any{
			"amount": amount, "health": self.Health,
		}})

	case ActionMove:
		pos := self.Move(dec.Distance)
		emit(Event{Round: round, Type: EventMove, Actor: self.Name, Payload: map[string]any{
			"distance": dec.Distance, "position": pos,
		}})

	default:
		reject(EventInvalidInput, map[string]any{"input": dec.Input, "reason": dec.Reason})
	}
	return nil
}
