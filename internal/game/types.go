// internal/game/types.go
//
// Core type definitions shared across the three bundled games.
// Defines:
//   - ID: which game a puzzle, score, or round belongs to.
//   - Phase: lifecycle phase of a single round.
//   - Outcome: terminal result of a round, handed to the scoring pipeline.
//   - Detail: per-game extras carried alongside an Outcome or score record.

package game

import "time"

// ID identifies one of the bundled games.
type ID string

const (
	Decode     ID = "decode"
	Flashdance ID = "flashdance"
	Anagrams   ID = "anagrams"
)

// All lists every bundled game, in display order.
var All = []ID{Decode, Flashdance, Anagrams}

// Valid reports whether id names a bundled game.
func (id ID) Valid() bool {
	switch id {
	case Decode, Flashdance, Anagrams:
		return true
	}
	return false
}

// Phase is the lifecycle phase of a single round.
// A round moves NotStarted → Countdown → Active → Over; Active may detour
// through Paused for the timed games. Over is terminal for the instance.
type Phase int

const (
	NotStarted Phase = iota
	Countdown
	Active
	Paused
	Over
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case Countdown:
		return "countdown"
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Over:
		return "over"
	}
	return "unknown"
}

// Detail carries game-specific result fields. Only the fields for the
// relevant game are populated; the rest stay zero and are omitted from JSON.
type Detail struct {
	Pegs        []int    `json:"pegs,omitempty"`        // decode: final guess
	WordsSolved []string `json:"wordsSolved,omitempty"` // anagrams
	TotalWords  int      `json:"totalWords,omitempty"`  // anagrams
	Correct     int      `json:"correct,omitempty"`     // flashdance
	Incorrect   int      `json:"incorrect,omitempty"`   // flashdance
	BestStreak  int      `json:"bestStreak,omitempty"`  // flashdance
}

// Outcome is the terminal result of one round. It is produced exactly once
// per round that reaches Over; abandoned rounds produce none.
type Outcome struct {
	Game        ID
	Date        time.Time
	Attempts    int
	TimeElapsed float64 // seconds
	Won         bool
	Detail      Detail
}

// Code dimensions for Decode.
const (
	NumPegs     = 5
	NumColors   = 6
	MaxAttempts = 8
)

// Round timing, in seconds of Active play. Decode is untimed.
const (
	AnagramsTimeLimit   = 60
	FlashdanceTimeLimit = 30
	CountdownTicks      = 3
)
