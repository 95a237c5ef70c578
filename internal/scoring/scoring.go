// internal/scoring/scoring.go
//
// Pure score calculators for the three games. No side effects, total over
// all in-range inputs. Out-of-contract inputs (negative counts, attempts
// over the cap) are a caller bug: the calculators clamp them into range and
// return ErrInvalidScoreInput alongside the clamped score, so development
// builds can assert loudly while a production round still completes.

package scoring

import (
	"errors"
	"math"
)

var ErrInvalidScoreInput = errors.New("scoring: input out of contract")

const (
	decodeBase        = 1000
	decodeAttemptCost = 100
	decodeTimeDivisor = 10
	decodeFirstBonus  = 500
	decodeEarlyBonus  = 200
	decodeFloor       = 50
)

// Decode scores a code-breaking round.
// Losses score 0. Wins start from decodeBase, lose decodeAttemptCost per
// attempt after the first and one point per decodeTimeDivisor seconds, gain
// a bonus for solving on the first (or within three) attempts, and never
// drop below decodeFloor.
func Decode(attempts int, elapsedSeconds float64, won bool, maxAttempts int) (int, error) {
	var err error
	if attempts < 0 {
		attempts, err = 0, ErrInvalidScoreInput
	}
	if maxAttempts > 0 && attempts > maxAttempts {
		attempts, err = maxAttempts, ErrInvalidScoreInput
	}
	if elapsedSeconds < 0 {
		elapsedSeconds, err = 0, ErrInvalidScoreInput
	}
	if !won {
		return 0, err
	}

	score := decodeBase - (attempts-1)*decodeAttemptCost - int(elapsedSeconds/decodeTimeDivisor)
	switch {
	case attempts == 1:
		score += decodeFirstBonus
	case attempts <= 3:
		score += decodeEarlyBonus
	}
	if score < decodeFloor {
		score = decodeFloor
	}
	return score, err
}

// Anagrams scores a word round: completion rate scaled by a word-length
// multiplier, floored to an integer. Zero totals score 0.
func Anagrams(wordsCompleted, totalWords int, completedWordLengths []int) (int, error) {
	var err error
	if wordsCompleted < 0 {
		wordsCompleted, err = 0, ErrInvalidScoreInput
	}
	if totalWords < 0 {
		totalWords, err = 0, ErrInvalidScoreInput
	}
	if wordsCompleted > totalWords {
		wordsCompleted, err = totalWords, ErrInvalidScoreInput
	}
	if totalWords == 0 {
		return 0, err
	}

	completionRate := float64(wordsCompleted) / float64(totalWords)

	avgLength := 0.0
	if len(completedWordLengths) > 0 {
		sum := 0
		for _, l := range completedWordLengths {
			if l < 0 {
				l, err = 0, ErrInvalidScoreInput
			}
			sum += l
		}
		avgLength = float64(sum) / float64(len(completedWordLengths))
	}
	lengthMultiplier := math.Max(1.0, (avgLength-2.0)/4.0)

	return int(math.Floor(completionRate * lengthMultiplier * 100)), err
}

const (
	flashdancePerCorrect  = 10
	flashdancePerStreak   = 5
	flashdanceStreakGrace = 2
)

// Flashdance scores a flashcard round: points per correct answer plus a
// small bonus for the best streak beyond the grace length. Incorrect answers
// never add points; the streak is capped by the correct count so the result
// stays monotonic in correct answers.
func Flashdance(correct, incorrect, bestStreak int) (int, error) {
	var err error
	if correct < 0 {
		correct, err = 0, ErrInvalidScoreInput
	}
	if incorrect < 0 {
		err = ErrInvalidScoreInput
	}
	if bestStreak < 0 {
		bestStreak, err = 0, ErrInvalidScoreInput
	}
	if bestStreak > correct {
		bestStreak, err = correct, ErrInvalidScoreInput
	}

	score := correct * flashdancePerCorrect
	if bestStreak > flashdanceStreakGrace {
		score += (bestStreak - flashdanceStreakGrace) * flashdancePerStreak
	}
	return score, err
}
