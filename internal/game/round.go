// internal/game/round.go
//
// Shared round state machine for all three games.
// Responsibilities:
//   - Phase transitions: NotStarted → Countdown → Active → Over,
//     with Active ⇄ Paused for the timed games.
//   - Countdown and round timers driven by an injected TickSource;
//     ticks arriving after Over are no-ops.
//   - Abandonment: releases the tick subscription and produces no outcome.
//
// Per-game types (DecodeRound, AnagramsRound, FlashdanceRound) embed Round
// and layer their own win conditions on top via finish().

package game

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrAlreadyStarted = errors.New("game: round already started")
	ErrNotActive      = errors.New("game: round is not active")
	ErrRoundOver      = errors.New("game: round is over")
)

// Session is the minimal capability set shared by all three game rounds.
type Session interface {
	Start(src TickSource) error
	Reset()
	GameOver() bool
	StatusText() string
}

// Round is the game-agnostic core of a round. It is not used directly;
// the per-game round types embed it.
type Round struct {
	mu sync.Mutex

	game ID
	date time.Time

	phase     Phase
	countdown int
	remaining int // seconds of Active left; -1 = untimed
	limit     int
	elapsed   int
	attempts  int
	won       bool

	// expiryWins marks games where running the timer out IS the round end
	// rather than a loss (flashdance).
	expiryWins bool

	cancel func()
}

func newRound(g ID, date time.Time, limit int, expiryWins bool) Round {
	rem := limit
	if limit <= 0 {
		rem = -1
	}
	return Round{
		game:       g,
		date:       date,
		phase:      NotStarted,
		countdown:  CountdownTicks,
		remaining:  rem,
		limit:      limit,
		expiryWins: expiryWins,
	}
}

// Start moves the round into Countdown and subscribes it to the tick source.
func (r *Round) Start(src TickSource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != NotStarted {
		return ErrAlreadyStarted
	}
	r.phase = Countdown
	r.cancel = src.Subscribe(r.Tick)
	return nil
}

// Tick advances countdown and round timers by one second.
// Safe to call in any phase; only Countdown and Active react.
func (r *Round) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.phase {
	case Countdown:
		r.countdown--
		if r.countdown <= 0 {
			r.phase = Active
		}
	case Active:
		r.elapsed++
		if r.remaining > 0 {
			r.remaining--
			if r.remaining == 0 {
				r.finishLocked(r.expiryWins || r.won)
			}
		}
	}
}

// Pause freezes the round timer without resetting elapsed state.
// Only valid for timed rounds in the Active phase.
func (r *Round) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != Active || r.remaining < 0 {
		return ErrNotActive
	}
	r.phase = Paused
	return nil
}

// Resume returns a paused round to Active.
func (r *Round) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != Paused {
		return ErrNotActive
	}
	r.phase = Active
	return nil
}

// Abandon drops the round without producing an outcome. The tick
// subscription is released; the round is left unusable.
func (r *Round) Abandon() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	r.phase = Over
	r.won = false
}

// Reset returns the round to a fresh NotStarted state, releasing any
// tick subscription. Scored play should prefer a new round instance; Reset
// exists for the replay-without-score flow.
func (r *Round) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked()
	r.phase = NotStarted
	r.countdown = CountdownTicks
	if r.limit > 0 {
		r.remaining = r.limit
	} else {
		r.remaining = -1
	}
	r.elapsed = 0
	r.attempts = 0
	r.won = false
}

// finish transitions to Over exactly once and releases the subscription.
func (r *Round) finish(won bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finishLocked(won)
}

func (r *Round) finishLocked(won bool) {
	if r.phase == Over {
		return
	}
	r.phase = Over
	r.won = won
	r.releaseLocked()
}

func (r *Round) releaseLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Round) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Round) GameOver() bool { return r.Phase() == Over }

func (r *Round) Won() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.won
}

// Elapsed reports seconds of Active play so far.
func (r *Round) Elapsed() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.elapsed)
}

// Remaining reports seconds left on the round timer, or -1 if untimed.
func (r *Round) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

func (r *Round) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

// StatusText is a coarse human-readable state, used by the presentation and
// watch layers.
func (r *Round) StatusText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.phase {
	case NotStarted:
		return "ready"
	case Countdown:
		return fmt.Sprintf("starting in %d", r.countdown)
	case Active:
		if r.remaining >= 0 {
			return fmt.Sprintf("%ds left", r.remaining)
		}
		return fmt.Sprintf("attempt %d of %d", r.attempts+1, MaxAttempts)
	case Paused:
		return "paused"
	case Over:
		if r.won {
			return "won"
		}
		return "over"
	}
	return "unknown"
}

// baseOutcome snapshots the game-agnostic outcome fields.
func (r *Round) baseOutcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Outcome{
		Game:        r.game,
		Date:        r.date,
		Attempts:    r.attempts,
		TimeElapsed: float64(r.elapsed),
		Won:         r.won,
	}
}
