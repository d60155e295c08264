package combat

import (
	"context"
	"fmt"
)

// scriptedDice returns pre-arranged Intn results in order and panics when a draw is
// unexpected, which catches changes in draw order.
type scriptedDice struct {
	vals []int
	pos  int
}

func dice(vals ...int) *scriptedDice { return &scriptedDice{vals: vals} }

func (s *scriptedDice) Intn(n int) int {
	if s.pos >= len(s.vals) {
		panic(fmt.Sprintf("unexpected draw #%d (Intn(%d))", s.pos+1, n))
	}
	v := s.vals[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("draw #%d: %d outside Intn(%d)", s.pos+1, v, n))
	}
	s.pos++
	return v
}

func (s *scriptedDice) used() int { return s.pos }

// Raw Intn values for the rolls used by the engine.
func d100(r int) int               { return r - 1 }
func repairRoll(r int) int         { return r - RepairMin }
func damageRoll(r, minDmg int) int { return r - minDmg }

type scriptedDecider struct {
	decisions []Decision
	pos       int
	loop      bool
}

func decide(ds ...Decision) *scriptedDecider { return &scriptedDecider{decisions: ds} }

func always(d Decision) *scriptedDecider {
	return &scriptedDecider{decisions: []Decision{d}, loop: true}
}

func (s *scriptedDecider) Decide(ctx context.Context, _, _ *Ship) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	if s.pos >= len(s.decisions) {
		if !s.loop {
			return Decision{}, ErrNoDecision
		}
		s.pos = 0
	}
	d := s.decisions[s.pos]
	s.pos++
	return d, nil
}

func mustShip(name string, st Stats) *Ship {
	s, err := NewShip(name, st)
	if err != nil {
		panic(err)
	}
	return s
}

func collect(events *[]Event) func(Event) {
	return func(ev Event) { *events = append(*events, ev) }
}
