package game

import (
	"errors"
	"testing"
	"time"
)

var testDate = time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

func startActive(t *testing.T, s Session, src *ManualSource) {
	t.Helper()
	if err := s.Start(src); err != nil {
		t.Fatalf("Start: %v", err)
	}
	src.Advance(CountdownTicks)
}

func TestCountdownRunsBeforeActive(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"PLANET"})
	if err := r.Start(src); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := r.Phase(); got != Countdown {
		t.Fatalf("phase after Start = %v, want Countdown", got)
	}
	if _, err := r.Solve("PLANET"); !errors.Is(err, ErrNotActive) {
		t.Errorf("Solve during countdown = %v, want ErrNotActive", err)
	}
	src.Advance(CountdownTicks)
	if got := r.Phase(); got != Active {
		t.Errorf("phase after countdown = %v, want Active", got)
	}
}

func TestStartTwiceFails(t *testing.T) {
	src := NewManualSource()
	r := NewDecodeRound(testDate, []int{1, 2, 3, 4, 5})
	if err := r.Start(src); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start(src); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start = %v, want ErrAlreadyStarted", err)
	}
}

func TestTimerExpiryEndsAnagramsAsLoss(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"PLANET", "GARDEN"})
	startActive(t, r, src)

	src.Advance(AnagramsTimeLimit)
	if !r.GameOver() {
		t.Fatal("round should be over after timer expiry")
	}
	if r.Won() {
		t.Error("anagrams timer expiry should not be a win")
	}
	if got := r.Elapsed(); got != AnagramsTimeLimit {
		t.Errorf("elapsed = %v, want %v", got, float64(AnagramsTimeLimit))
	}
}

func TestTimerExpiryEndsFlashdanceAsCompleted(t *testing.T) {
	src := NewManualSource()
	r := NewFlashdanceRound(testDate, []Equation{{Expression: "2 + 2", Answer: 4}})
	startActive(t, r, src)

	for i := 0; i < 5; i++ {
		if _, err := r.Answer(4); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	src.Advance(FlashdanceTimeLimit)
	if !r.GameOver() {
		t.Fatal("round should be over after timer expiry")
	}
	if !r.Won() {
		t.Error("flashdance timer expiry is the natural round end")
	}
	out := r.Outcome()
	if out.Detail.Correct != 5 || out.Detail.BestStreak != 5 {
		t.Errorf("detail = %+v, want 5 correct, streak 5", out.Detail)
	}
}

func TestTicksAfterOverAreIgnored(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"PLANET"})
	startActive(t, r, src)

	src.Advance(AnagramsTimeLimit)
	if !r.GameOver() {
		t.Fatal("round should be over")
	}
	elapsed := r.Elapsed()

	// Late ticks must not double-penalize a finished round.
	r.Tick()
	r.Tick()
	if got := r.Elapsed(); got != elapsed {
		t.Errorf("elapsed changed after Over: %v -> %v", elapsed, got)
	}
	if got := r.Phase(); got != Over {
		t.Errorf("phase after late ticks = %v, want Over", got)
	}
}

func TestPauseFreezesTimerWithoutReset(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"PLANET", "GARDEN"})
	startActive(t, r, src)

	src.Advance(5)
	if got := r.Remaining(); got != AnagramsTimeLimit-5 {
		t.Fatalf("remaining = %d, want %d", got, AnagramsTimeLimit-5)
	}
	if err := r.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	src.Advance(10)
	if got := r.Remaining(); got != AnagramsTimeLimit-5 {
		t.Errorf("remaining moved while paused: %d", got)
	}
	if err := r.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	src.Advance(1)
	if got := r.Remaining(); got != AnagramsTimeLimit-6 {
		t.Errorf("remaining after resume = %d, want %d", got, AnagramsTimeLimit-6)
	}
	if got := r.Elapsed(); got != 6 {
		t.Errorf("elapsed = %v, want 6 (pause must not reset it)", got)
	}
}

func TestPauseRequiresTimedActiveRound(t *testing.T) {
	src := NewManualSource()
	d := NewDecodeRound(testDate, []int{1, 2, 3, 4, 5})
	startActive(t, d, src)
	if err := d.Pause(); !errors.Is(err, ErrNotActive) {
		t.Errorf("Pause on untimed round = %v, want ErrNotActive", err)
	}
}

func TestAbandonReleasesTicksAndWinsNothing(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"PLANET"})
	startActive(t, r, src)
	src.Advance(2)

	r.Abandon()
	if !r.GameOver() || r.Won() {
		t.Fatal("abandoned round must be over and not won")
	}
	elapsed := r.Elapsed()
	src.Advance(20) // subscription released: no effect
	if got := r.Elapsed(); got != elapsed {
		t.Errorf("ticks reached an abandoned round: elapsed %v -> %v", elapsed, got)
	}
}

func TestResetReturnsFreshRound(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"PLANET", "GARDEN"})
	startActive(t, r, src)
	src.Advance(7)

	r.Reset()
	if got := r.Phase(); got != NotStarted {
		t.Fatalf("phase after Reset = %v, want NotStarted", got)
	}
	if r.Elapsed() != 0 || r.Attempts() != 0 {
		t.Error("Reset must clear elapsed state")
	}
	if got := r.Remaining(); got != AnagramsTimeLimit {
		t.Errorf("remaining after Reset = %d, want %d", got, AnagramsTimeLimit)
	}
}

func TestDecodeRoundWinAndLoss(t *testing.T) {
	secret := []int{3, 1, 4, 1, 5}

	t.Run("win on exact match", func(t *testing.T) {
		src := NewManualSource()
		d := NewDecodeRound(testDate, secret)
		startActive(t, d, src)

		fb, err := d.Guess([]int{3, 1, 4, 1, 6})
		if err != nil {
			t.Fatalf("Guess: %v", err)
		}
		if fb.Solved() || d.GameOver() {
			t.Fatal("near miss should not end the round")
		}
		fb, err = d.Guess(secret)
		if err != nil {
			t.Fatalf("Guess: %v", err)
		}
		if !fb.Solved() || !d.GameOver() || !d.Won() {
			t.Error("exact match should win the round")
		}
		out := d.Outcome()
		if out.Attempts != 2 || !out.Won {
			t.Errorf("outcome = %+v, want 2 attempts, won", out)
		}
		if _, err := d.Guess(secret); !errors.Is(err, ErrRoundOver) {
			t.Errorf("Guess after win = %v, want ErrRoundOver", err)
		}
	})

	t.Run("loss at attempt cap", func(t *testing.T) {
		src := NewManualSource()
		d := NewDecodeRound(testDate, secret)
		startActive(t, d, src)

		for i := 0; i < MaxAttempts; i++ {
			if _, err := d.Guess([]int{6, 6, 6, 6, 6}); err != nil {
				t.Fatalf("Guess %d: %v", i, err)
			}
		}
		if !d.GameOver() || d.Won() {
			t.Error("round should be lost at the attempt cap")
		}
	})
}

func TestAnagramsRoundSolvingAllWordsWins(t *testing.T) {
	src := NewManualSource()
	r := NewAnagramsRound(testDate, []string{"planet", "GARDEN", " silver "})
	startActive(t, r, src)

	for _, w := range []string{"PLANET", "garden"} {
		ok, err := r.Solve(w)
		if err != nil || !ok {
			t.Fatalf("Solve(%q) = %v, %v", w, ok, err)
		}
	}
	// wrong word and double-solve do not count
	if ok, _ := r.Solve("OCEAN"); ok {
		t.Error("unknown word accepted")
	}
	if ok, _ := r.Solve("PLANET"); ok {
		t.Error("double solve accepted")
	}
	if r.GameOver() {
		t.Fatal("round ended before last word")
	}
	if ok, _ := r.Solve("SILVER"); !ok {
		t.Fatal("final word rejected")
	}
	if !r.GameOver() || !r.Won() {
		t.Error("solving all words should win")
	}
	out := r.Outcome()
	if out.Detail.TotalWords != 3 || len(out.Detail.WordsSolved) != 3 {
		t.Errorf("detail = %+v, want 3/3 words", out.Detail)
	}
}

func TestFlashdanceAnswerTracksStreaks(t *testing.T) {
	src := NewManualSource()
	eqs := []Equation{{Expression: "3 + 4", Answer: 7}, {Expression: "5 - 2", Answer: 3}}
	r := NewFlashdanceRound(testDate, eqs)
	startActive(t, r, src)

	answers := []struct {
		value       int
		wantCorrect bool
	}{
		{7, true}, {3, true}, {0, false}, {3, true},
	}
	for i, a := range answers {
		got, err := r.Answer(a.value)
		if err != nil {
			t.Fatalf("Answer %d: %v", i, err)
		}
		if got != a.wantCorrect {
			t.Errorf("Answer %d = %v, want %v", i, got, a.wantCorrect)
		}
	}
	correct, incorrect := r.Counts()
	if correct != 3 || incorrect != 1 {
		t.Errorf("counts = %d/%d, want 3/1", correct, incorrect)
	}
	src.Advance(FlashdanceTimeLimit)
	out := r.Outcome()
	if out.Detail.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", out.Detail.BestStreak)
	}
}

func TestDayKeyRoundTrip(t *testing.T) {
	// A late-evening local time east of UTC still keys to the UTC day.
	loc := time.FixedZone("UTC+13", 13*3600)
	local := time.Date(2025, 9, 11, 1, 30, 0, 0, loc) // 2025-09-10 12:30 UTC
	if got := DayKey(local); got != "2025-09-10" {
		t.Errorf("DayKey = %q, want 2025-09-10", got)
	}
	parsed, err := ParseDayKey("2025-09-10")
	if err != nil {
		t.Fatalf("ParseDayKey: %v", err)
	}
	if DayKey(parsed) != "2025-09-10" {
		t.Errorf("round trip broke: %q", DayKey(parsed))
	}
}

func TestDaysBetween(t *testing.T) {
	now := time.Date(2025, 9, 10, 15, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same day", time.Date(2025, 9, 10, 1, 0, 0, 0, time.UTC), 0},
		{"yesterday", now.AddDate(0, 0, -1), 1},
		{"last week", now.AddDate(0, 0, -7), 7},
		{"tomorrow", now.AddDate(0, 0, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.date, now); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
