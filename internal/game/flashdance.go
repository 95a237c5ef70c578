package game

import "time"

// FlashdanceRound is one play-through of the math flashcard game: answer as
// many equations as possible in 30 seconds. The timer running out is the
// natural end of the round, not a loss.
type FlashdanceRound struct {
	Round

	equations  []Equation
	cursor     int
	correct    int
	incorrect  int
	streak     int
	bestStreak int
}

// Equation is a single flashcard: the rendered expression and its answer.
type Equation struct {
	Expression string `json:"expression"`
	Answer     int    `json:"answer"`
}

// NewFlashdanceRound builds a round over the day's equation set. When the set
// runs out before the timer does, the cards cycle.
func NewFlashdanceRound(date time.Time, equations []Equation) *FlashdanceRound {
	return &FlashdanceRound{
		Round:     newRound(Flashdance, date, FlashdanceTimeLimit, true),
		equations: append([]Equation(nil), equations...),
	}
}

// Current returns the flashcard the player is facing.
func (f *FlashdanceRound) Current() (Equation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.equations) == 0 {
		return Equation{}, false
	}
	return f.equations[f.cursor%len(f.equations)], true
}

// Answer submits the player's answer for the current card and advances to
// the next one.
func (f *FlashdanceRound) Answer(value int) (correct bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase == Over {
		return false, ErrRoundOver
	}
	if f.phase != Active {
		return false, ErrNotActive
	}
	if len(f.equations) == 0 {
		return false, ErrNotActive
	}
	eq := f.equations[f.cursor%len(f.equations)]
	f.cursor++
	f.attempts++
	if value == eq.Answer {
		f.correct++
		f.streak++
		if f.streak > f.bestStreak {
			f.bestStreak = f.streak
		}
		return true, nil
	}
	f.incorrect++
	f.streak = 0
	return false, nil
}

// Counts reports correct/incorrect answers so far.
func (f *FlashdanceRound) Counts() (correct, incorrect int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.correct, f.incorrect
}

// Outcome reports the terminal result. Only meaningful once GameOver.
func (f *FlashdanceRound) Outcome() Outcome {
	out := f.baseOutcome()
	f.mu.Lock()
	out.Detail = Detail{Correct: f.correct, Incorrect: f.incorrect, BestStreak: f.bestStreak}
	f.mu.Unlock()
	return out
}
