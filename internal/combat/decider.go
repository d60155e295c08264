package combat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Decision is what a participant wants to do this turn.
// Input and Reason are only set when the decision could not be understood.
type Decision struct {
	Action   Action
	Distance int
	Input    string
	Reason   string
}

// Decider picks the action for a turn. The engine does not care where the choice comes from.
type Decider interface {
	Decide(ctx context.Context, self, opponent *Ship) (Decision, error)
}

var folder = cases.Fold()

// ParseAction matches an action token case-insensitively.
func ParseAction(token string) (Action, bool) {
	switch folder.String(strings.TrimSpace(token)) {
	case "attack":
		return ActionAttack, true
	case "move":
		return ActionMove, true
	case "repair":
		return ActionRepair, true
	}
	return ActionInvalid, false
}

// —— uniform random opponent —— //

var randomActions = [...]Action{ActionAttack, ActionRepair, ActionMove}
var randomSteps = [...]int{-1, 1}

type RandomDecider struct {
	Dice Dice
}

func NewRandomDecider(d Dice) *RandomDecider { return &RandomDecider{Dice: d} }

func (r *RandomDecider) Decide(ctx context.Context, _, _ *Ship) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	a := randomActions[r.Dice.Intn(len(randomActions))]
	if a != ActionMove {
		return Decision{Action: a}, nil
	}
	return Decision{Action: a, Distance: randomSteps[r.Dice.Intn(len(randomSteps))]}, nil
}

// —— console player —— //

type ConsoleDecider struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsoleDecider(in io.Reader, out io.Writer) *ConsoleDecider {
	return &ConsoleDecider{in: bufio.NewReader(in), out: out}
}

// readLine has no line length limit; a last line without a newline still counts.
func (c *ConsoleDecider) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read decision: %w", err)
		}
		if line == "" {
			return "", ErrNoDecision
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// clip keeps rejected input short enough to echo back.
func clip(s string) string {
	const limit = 40
	if r := []rune(s); len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}

func (c *ConsoleDecider) Decide(ctx context.Context, self, _ *Ship) (Decision, error) {
	token, err := c.readLine(ctx, "Choose your action (attack/move/repair): ")
	if err != nil {
		return Decision{}, err
	}
	action, ok := ParseAction(token)
	if !ok {
		return Decision{Input: clip(token), Reason: "unknown action"}, nil
	}
	if action != ActionMove {
		return Decision{Action: action}, nil
	}

	raw, err := c.readLine(ctx, fmt.Sprintf("Move by how many units? (speed %d) ", self.Speed))
	if err != nil {
		return Decision{}, err
	}
	distance, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Decision{Input: clip(raw), Reason: "distance is not a whole number"}, nil
	}
	return Decision{Action: ActionMove, Distance: distance}, nil
}
