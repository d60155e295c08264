package combat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type Env struct {
	Round int
	Dice  Dice
}

type SimResult struct {
	ID             string  `json:"id"`
	Seed           int64   `json:"seed"`
	Outcome        Outcome `json:"outcome"`
	Winner         string  `json:"winner,omitempty"`
	Rounds         int     `json:"rounds"`
	PlayerHealth   int     `json:"player_health"`
	OpponentHealth int     `json:"opponent_health"`
	Events         []Event `json:"events,omitempty"`
	Meta           SimMeta `json:"meta"`
}

type SimMeta struct {
	Player    SimShipMeta `json:"player"`
	Opponent  SimShipMeta `json:"opponent"`
	MaxRounds int         `json:"max_rounds"`
}

type SimShipMeta struct {
	Name        string `json:"name"`
	Rules       string `json:"rules"`
	MaxHealth   int    `json:"max_health"`
	AttackPower int    `json:"attack_power"`
	Speed       int    `json:"speed"`
	Evasion     int    `json:"evasion"`
	Range       int    `json:"range"`
	Ability     string `json:"ability,omitempty"`
}

func shipMeta(p *Participant) SimShipMeta {
	s := p.Ship
	return SimShipMeta{
		Name: s.Name, Rules: p.Rules.Label, MaxHealth: s.MaxHealth,
		AttackPower: s.AttackPower, Speed: s.Speed, Evasion: s.Evasion, Range: s.Range,
		Ability: s.Ability,
	}
}

// Battle is one duel between the player seat and the opponent seat.
type Battle struct {
	ID       string
	Seed     int64
	Env      *Env
	Player   *Participant
	Opponent *Participant
	// MaxRounds ends the battle in a stalemate once reached; 0 means no cap.
	MaxRounds int
	// Emit receives every event as it happens; nil discards them.
	Emit func(Event)
	// Pace is waited on before each round; nil runs flat out.
	Pace func(ctx context.Context) error
	// Record keeps the full event log in the result.
	Record bool
}

// Run alternates player and opponent turns until a ship is destroyed, the round cap is hit,
// or the context / a decision source fails. On error the partial result is still returned.
func (b *Battle) Run(ctx context.Context) (SimResult, error) {
	var events []Event
	emit := func(ev Event) {
		if b.Record {
			events = append(events, ev)
		}
		if b.Emit != nil {
			b.Emit(ev)
		}
	}

	player, opponent := b.Player.Ship, b.Opponent.Ship
	res := SimResult{
		ID:   b.ID,
		Seed: b.Seed,
		Meta: SimMeta{Player: shipMeta(b.Player), Opponent: shipMeta(b.Opponent), MaxRounds: b.MaxRounds},
	}
	finish := func() SimResult {
		res.PlayerHealth = player.Health
		res.OpponentHealth = opponent.Health
		if b.Record {
			res.Events = events
		}
		return res
	}

	for _, s := range []*Ship{player, opponent} {
		payload := map[string]any{
			"health": s.Health, "attack_power": s.AttackPower, "speed": s.Speed,
			"evasion": s.Evasion, "range": s.Range, "position": s.Position,
		}
		if s.Ability != "" {
			payload["ability"] = s.Ability
		}
		if s.Note != "" {
			payload["note"] = s.Note
		}
		emit(Event{Type: EventSpawn, Actor: s.Name, Payload: payload})
	}

	for round := 1; ; round++ {
		if b.MaxRounds > 0 && round > b.MaxRounds {
			res.Outcome = OutcomeStalemate
			emit(Event{Round: round - 1, Type: EventStalemate, Payload: map[string]any{"rounds": b.MaxRounds}})
			return finish(), nil
		}
		if b.Pace != nil {
			if err := b.Pace(ctx); err != nil {
				return finish(), fmt.Errorf("battle %s: %w", b.ID, err)
			}
		}
		b.Env.Round = round
		res.Rounds = round

		if err := b.Player.TakeTurn(ctx, round, opponent, b.Env.Dice, emit); err != nil {
			return finish(), err
		}
		if opponent.IsDestroyed() {
			res.Outcome = OutcomeVictory
			res.Winner = player.Name
			emit(Event{Round: round, Type: EventVictory, Actor: player.Name, Payload: map[string]any{"loser": opponent.Name}})
			return finish(), nil
		}

		if err := b.Opponent.TakeTurn(ctx, round, player, b.Env.Dice, emit); err != nil {
			return finish(), err
		}
		if player.IsDestroyed() {
			res.Outcome = OutcomeDefeat
			res.Winner = opponent.Name
			emit(Event{Round: round, Type: EventDefeat, Actor: opponent.Name, Payload: map[string]any{"loser": player.Name}})
			return finish(), nil
		}

		emit(Event{Round: round, Type: EventStatus, Payload: map[string]any{
			"player": player.Name, "player_health": player.Health, "player_max": player.MaxHealth, "player_position": player.Position,
			"opponent": opponent.Name, "opponent_health": opponent.Health, "opponent_max": opponent.MaxHealth, "opponent_position": opponent.Position,
		}})
	}
}

// —— batch mode —— //

type BatchSummary struct {
	Runs         int     `json:"runs"`
	Victories    int     `json:"victories"`
	Defeats      int     `json:"defeats"`
	Stalemates   int     `json:"stalemates"`
	WinRate      float64 `json:"win_rate"`
	AvgRounds    float64 `json:"avg_rounds"`
	AvgHPLeft    float64 `json:"avg_winner_health_left"`
	LongestRound int     `json:"longest_battle_rounds"`
}

// BatchSeed derives the seed of the i-th battle so batch results do not depend on scheduling.
func BatchSeed(seed int64, i int) int64 { return seed + int64(i)*7919 }

// RunBatch runs n independent battles on a worker pool. build must return a fresh battle
// for the given seed; each battle is still single-threaded.
func RunBatch(ctx context.Context, n, workers int, seed int64, build func(i int, seed int64) (*Battle, error)) (BatchSummary, error) {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		st       = BatchSummary{Runs: n}
		sumR     int
		sumHP    int
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				res, err := runOne(ctx, i, BatchSeed(seed, i), build)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					continue
				}
				switch res.Outcome {
				case OutcomeVictory:
					st.Victories++
					sumHP += res.PlayerHealth
				case OutcomeDefeat:
					st.Defeats++
					sumHP += res.OpponentHealth
				case OutcomeStalemate:
					st.Stalemates++
				}
				sumR += res.Rounds
				if res.Rounds > st.LongestRound {
					st.LongestRound = res.Rounds
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return st, firstErr
	}
	if n > 0 {
		st.WinRate = float64(st.Victories) / float64(n)
		st.AvgRounds = float64(sumR) / float64(n)
	}
	if decided := st.Victories + st.Defeats; decided > 0 {
		st.AvgHPLeft = float64(sumHP) / float64(decided)
	}
	return st, nil
}

func runOne(ctx context.Context, i int, seed int64, build func(int, int64) (*Battle, error)) (SimResult, error) {
	b, err := build(i, seed)
	if err != nil {
		return SimResult{}, fmt.Errorf("build battle %d: %w", i, err)
	}
	return b.Run(ctx)
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
