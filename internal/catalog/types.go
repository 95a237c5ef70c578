// internal/catalog/types.go
//
// Puzzle entry variants for the three bundled games. Every entry is keyed by
// its dayKey (the canonical YYYY-MM-DD string derived from its date); the
// catalogs and the override store join on that string.

package catalog

import (
	"time"

	"puzzlepack/internal/game"
)

// Entry is a day's puzzle content for one game.
type Entry interface {
	DayKey() string
	Game() game.ID
}

// CodePuzzle is the Decode secret for a day: NumPegs colors in [1, NumColors].
type CodePuzzle struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Pegs []int     `json:"pegs"`
}

func (p CodePuzzle) DayKey() string { return p.ID }
func (p CodePuzzle) Game() game.ID  { return game.Decode }

// EquationSet is the Flashdance card deck for a day.
type EquationSet struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Equations []game.Equation `json:"equations"`
}

func (e EquationSet) DayKey() string { return e.ID }
func (e EquationSet) Game() game.ID  { return game.Flashdance }

// WordSet is the Anagrams word list for a day.
type WordSet struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Words       []string   `json:"words"`
	Completed   bool       `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (w WordSet) DayKey() string { return w.ID }
func (w WordSet) Game() game.ID  { return game.Anagrams }
