package combat

import (
	"fmt"
	"io"

	"navalduel/internal/config"
)

// Describe renders an event as one line of narration.
func Describe(ev Event) string {
	p := ev.Payload
	switch ev.Type {
	case EventSpawn:
		line := fmt.Sprintf("%s sets sail: health %v, attack %v, speed %v, evasion %v%%, range %v, position %v",
			ev.Actor, p["health"], p["attack_power"], p["speed"], p["evasion"], p["range"], p["position"])
		switch p["ability"] {
		case config.AbilityHighEvasion:
			line += ". Quick and hard to hit!"
		case config.AbilityHeavyAttack:
			line += ". Heavy cannons deal more damage!"
		}
		if note, ok := p["note"]; ok {
			line += fmt.Sprintf(" (%v)", note)
		}
		return line
	case EventEvade:
		return fmt.Sprintf("%s fires at %s, but %s evades the attack!", ev.Actor, p["target"], p["target"])
	case EventHit:
		return fmt.Sprintf("%s attacks and deals %v damage! %s health: %v", ev.Actor, p["damage"], p["target"], p["health"])
	case EventRepair:
		return fmt.Sprintf("%s repairs for %v! Current health: %v", ev.Actor, p["amount"], p["health"])
	case EventMove:
		return fmt.Sprintf("%s moves to position %v.", ev.Actor, p["position"])
	case EventOutOfRange:
		return fmt.Sprintf("%s is out of range (distance %v, range %v)! Move closer to attack.", p["target"], p["distance"], p["range"])
	case EventCooldown:
		return fmt.Sprintf("%s is on cooldown for %v more turns.", p["action"], p["remaining"])
	case EventInvalidInput:
		return fmt.Sprintf("Invalid input %q (%v). %s loses the turn.", p["input"], p["reason"], ev.Actor)
	case EventStatus:
		return fmt.Sprintf("-- round %d: %s %v/%v @%v | %s %v/%v @%v",
			ev.Round, p["player"], p["player_health"], p["player_max"], p["player_position"],
			p["opponent"], p["opponent_health"], p["opponent_max"], p["opponent_position"])
	case EventVictory:
		return fmt.Sprintf("%s has defeated %s!", ev.Actor, p["loser"])
	case EventDefeat:
		return fmt.Sprintf("%s has been destroyed by %s!", p["loser"], ev.Actor)
	case EventStalemate:
		return fmt.Sprintf("No decisive blow after %v rounds. The battle ends in a stalemate.", p["rounds"])
	}
	return fmt.Sprintf("%s %s %v", ev.Type, ev.Actor, p)
}

// NewNarrator returns an event sink writing one line per event to w.
func NewNarrator(w io.Writer) func(Event) {
	return func(ev Event) {
		fmt.Fprintln(w, Describe(ev))
	}
}
