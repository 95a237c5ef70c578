package scoring

import (
	"fmt"

	"puzzlepack/internal/game"
)

// ForOutcome dispatches a round outcome to the right calculator.
func ForOutcome(o game.Outcome) (int, error) {
	switch o.Game {
	case game.Decode:
		return Decode(o.Attempts, o.TimeElapsed, o.Won, game.MaxAttempts)
	case game.Anagrams:
		lengths := make([]int, 0, len(o.Detail.WordsSolved))
		for _, w := range o.Detail.WordsSolved {
			lengths = append(lengths, len(w))
		}
		return Anagrams(len(o.Detail.WordsSolved), o.Detail.TotalWords, lengths)
	case game.Flashdance:
		return Flashdance(o.Detail.Correct, o.Detail.Incorrect, o.Detail.BestStreak)
	}
	return 0, fmt.Errorf("scoring: unknown game %q", o.Game)
}
