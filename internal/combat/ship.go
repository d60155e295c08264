package combat

import "fmt"

// Dice is the source of every random draw in a battle. *rand.Rand satisfies it.
type Dice interface {
	Intn(n int) int
}

// roll returns a uniform integer in [lo, hi].
func roll(d Dice, lo, hi int) int {
	return lo + d.Intn(hi-lo+1)
}

const (
	RepairMin      = 5
	RepairMax      = 15
	RepairCooldown = 2
	AttackCooldown = 1

	HighEvasionBonus = 10
	HeavyAttackBonus = 5
)

// Cooldowns holds the remaining turns before attack and repair are usable again.
type Cooldowns struct {
	Attack int `json:"attack"`
	Repair int `json:"repair"`
}

func (c Cooldowns) Of(a Action) int {
	switch a {
	case ActionAttack:
		return c.Attack
	case ActionRepair:
		return c.Repair
	}
	return 0
}

func (c *Cooldowns) set(a Action, turns int) {
	switch a {
	case ActionAttack:
		c.Attack = turns
	case ActionRepair:
		c.Repair = turns
	}
}

func (c *Cooldowns) tick() {
	if c.Attack > 0 {
		c.Attack--
	}
	if c.Repair > 0 {
		c.Repair--
	}
}

type Stats struct {
	MaxHealth   int
	AttackPower int
	Speed       int
	Evasion     int
	Range       int
}

type Ship struct {
	Name        string
	Health      int
	MaxHealth   int
	AttackPower int
	Speed       int
	Evasion     int
	Range       int
	Position    int
	Cooldowns   Cooldowns

	// Ability and Note are descriptive only; any stat bonus is already applied.
	Ability string
	Note    string
}

func NewShip(name string, st Stats) (*Ship, error) {
	if st.MaxHealth <= 0 {
		return nil, fmt.Errorf("%w: %s max health %d", ErrInvalidShip, name, st.MaxHealth)
	}
	if st.Evasion < 0 || st.Evasion > 100 {
		return nil, fmt.Errorf("%w: %s evasion %d outside 0..100", ErrInvalidShip, name, st.Evasion)
	}
	if st.AttackPower < 0 || st.Range < 0 || st.Speed < 0 {
		return nil, fmt.Errorf("%w: %s has negative stats", ErrInvalidShip, name)
	}
	return &Ship{
		Name:        name,
		Health:      st.MaxHealth,
		MaxHealth:   st.MaxHealth,
		AttackPower: st.AttackPower,
		Speed:       st.Speed,
		Evasion:     st.Evasion,
		Range:       st.Range,
	}, nil
}

// Hit is the outcome of one incoming attack.
type Hit struct {
	Evaded bool
	Damage int
	Health int
}

// TakeDamage rolls evasion and, on a hit, lowers health by damage with a floor of 0.
func (s *Ship) TakeDamage(damage int, d Dice) Hit {
	if roll(d, 1, 100) <= s.Evasion {
		return Hit{Evaded: true, Health: s.Health}
	}
	s.Health -= damage
	if s.Health < 0 {
		s.Health = 0
	}
	return Hit{Damage: damage, Health: s.Health}
}

// Repair rolls a repair amount, heals up to MaxHealth and starts the repair cooldown.
// The rolled amount is returned even when some of it was clamped away.
func (s *Ship) Repair(d Dice) int {
	amount := roll(d, RepairMin, RepairMax)
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
	s.Cooldowns.set(ActionRepair, RepairCooldown)
	return amount
}

func (s *Ship) Move(distance int) int {
	s.Position += distance * s.Speed
	return s.Position
}

// WithinRange uses the receiver's range only; it is not symmetric.
func (s *Ship) WithinRange(other *Ship) bool {
	return Distance(s, other) <= s.Range
}

func (s *Ship) IsDestroyed() bool { return s.Health <= 0 }

func (s *Ship) ReduceCooldowns() { s.Cooldowns.tick() }

func (s *Ship) String() string {
	return fmt.Sprintf("%s hp=%d/%d pos=%d cd(atk=%d rep=%d)",
		s.Name, s.Health, s.MaxHealth, s.Position, s.Cooldowns.Attack, s.Cooldowns.Repair)
}
