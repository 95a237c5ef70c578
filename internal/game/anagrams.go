package game

import (
	"strings"
	"time"
)

// AnagramsRound is one play-through of the word-unscramble game: solve every
// word in the day's set before the 60-second timer runs out.
type AnagramsRound struct {
	Round

	words  []string
	solved map[string]bool
	order  []string // solve order, for the outcome detail
}

// NewAnagramsRound builds a round over the day's word set. Words are
// uppercased; duplicates collapse.
func NewAnagramsRound(date time.Time, words []string) *AnagramsRound {
	a := &AnagramsRound{
		Round:  newRound(Anagrams, date, AnagramsTimeLimit, false),
		solved: make(map[string]bool, len(words)),
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" && !seen[w] {
			seen[w] = true
			a.words = append(a.words, w)
		}
	}
	return a
}

// Words returns the round's word set in order.
func (a *AnagramsRound) Words() []string { return append([]string(nil), a.words...) }

// Solve marks word as unscrambled. Returns true when the word belongs to the
// set and was not already solved. Solving the last word wins the round.
func (a *AnagramsRound) Solve(word string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase == Over {
		return false, ErrRoundOver
	}
	if a.phase != Active {
		return false, ErrNotActive
	}
	word = strings.ToUpper(strings.TrimSpace(word))
	if !a.contains(word) || a.solved[word] {
		return false, nil
	}
	a.solved[word] = true
	a.order = append(a.order, word)
	a.attempts++
	if len(a.order) == len(a.words) {
		a.finishLocked(true)
	}
	return true, nil
}

func (a *AnagramsRound) contains(word string) bool {
	for _, w := range a.words {
		if w == word {
			return true
		}
	}
	return false
}

// SolvedCount reports how many words are done so far.
func (a *AnagramsRound) SolvedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.order)
}

// Outcome reports the terminal result. Only meaningful once GameOver.
func (a *AnagramsRound) Outcome() Outcome {
	out := a.baseOutcome()
	a.mu.Lock()
	out.Detail = Detail{WordsSolved: append([]string(nil), a.order...), TotalWords: len(a.words)}
	a.mu.Unlock()
	return out
}
