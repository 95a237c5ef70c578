// internal/game/pegboard.go
//
// Pegboard comparison for Decode.
// Scores a guessed code against the secret with the classic two-pass
// algorithm: exact matches first, then color-only matches against the
// remaining (non-exact) secret pegs. Correct with repeated colors in both
// secret and guess.

package game

// Feedback is the pegboard result for one Decode guess.
type Feedback struct {
	Exact   int `json:"exact"`   // right color, right position
	Partial int `json:"partial"` // right color, wrong position
}

// Solved reports whether the feedback indicates a full match.
func (f Feedback) Solved() bool { return f.Exact == NumPegs }

// ComparePegs scores guess against secret.
//
// Pass 1: count exact matches and tally the remaining secret colors.
// Pass 2: for each non-exact guess peg, consume a tallied color if one
// remains, counting a partial.
func ComparePegs(secret, guess []int) Feedback {
	n := len(secret)
	if len(guess) < n {
		n = len(guess)
	}

	var fb Feedback
	var counts [NumColors + 1]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			fb.Exact++
		} else if secret[i] >= 1 && secret[i] <= NumColors {
			counts[secret[i]]++
		}
	}
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			continue
		}
		c := guess[i]
		if c >= 1 && c <= NumColors && counts[c] > 0 {
			fb.Partial++
			counts[c]--
		}
	}
	return fb
}
