package combat

import "errors"

var (
	ErrInvalidShip = errors.New("invalid ship")

	// ErrAttackPowerTooLow means the ship's damage roll would have an empty range under its rules.
	ErrAttackPowerTooLow = errors.New("attack power below minimum damage roll")

	// ErrNoDecision is returned when a decision source has nothing more to give (closed input).
	ErrNoDecision = errors.New("decision source exhausted")
)
