package game

import "time"

// DecodeRound is one play-through of the code-breaking game. Untimed, capped
// at MaxAttempts guesses.
type DecodeRound struct {
	Round

	secret    []int
	lastGuess []int
}

// NewDecodeRound builds a round around the secret code for the given day.
func NewDecodeRound(date time.Time, secret []int) *DecodeRound {
	return &DecodeRound{
		Round:  newRound(Decode, date, 0, false),
		secret: append([]int(nil), secret...),
	}
}

// Guess scores one code attempt. Wins on an exact match; loses once the
// attempt cap is reached without one.
func (d *DecodeRound) Guess(pegs []int) (Feedback, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.phase == Over {
		return Feedback{}, ErrRoundOver
	}
	if d.phase != Active {
		return Feedback{}, ErrNotActive
	}
	d.attempts++
	d.lastGuess = append([]int(nil), pegs...)
	fb := ComparePegs(d.secret, pegs)
	if fb.Solved() {
		d.finishLocked(true)
	} else if d.attempts >= MaxAttempts {
		d.finishLocked(false)
	}
	return fb, nil
}

// Outcome reports the terminal result. Only meaningful once GameOver.
func (d *DecodeRound) Outcome() Outcome {
	out := d.baseOutcome()
	d.mu.Lock()
	out.Detail = Detail{Pegs: append([]int(nil), d.lastGuess...)}
	d.mu.Unlock()
	return out
}
