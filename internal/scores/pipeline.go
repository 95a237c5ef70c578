// internal/scores/pipeline.go
//
// Pipeline wires a finished round into the ledger: compute the score,
// re-check the completion gate at write time (the pre-round check alone
// leaves a race window), append, then mark the day completed. The gate
// prefers "don't double count": a day already played for score yields no
// second record, only the replay result in memory.

package scores

import (
	"time"

	"github.com/rs/zerolog/log"

	"puzzlepack/internal/completion"
	"puzzlepack/internal/game"
	"puzzlepack/internal/scoring"
)

// Pipeline gates and persists round outcomes.
type Pipeline struct {
	Tracker *completion.Tracker
	Store   *Store
	now     func() time.Time
}

// NewPipeline builds the outcome pipeline over the shared tracker and store.
func NewPipeline(tracker *completion.Tracker, store *Store) *Pipeline {
	return &Pipeline{Tracker: tracker, Store: store, now: time.Now}
}

// WithNow pins the pipeline clock; used by tests.
func (p *Pipeline) WithNow(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Finish scores an outcome and, when the (game, day) pair has not been
// played for score yet, appends a record and marks the day. The returned
// bool reports whether the play was scored for the ledger.
func (p *Pipeline) Finish(o game.Outcome) (Record, bool, error) {
	score, err := scoring.ForOutcome(o)
	if err != nil {
		// Contract violation from the caller; the clamped score still
		// stands so the round completes.
		log.Warn().Err(err).Str("game", string(o.Game)).Msg("outcome out of contract, score clamped")
	}

	rec := NewRecord(o, score, p.now())
	if !p.Tracker.ShouldScoreThisPlay(o.Game, o.Date) {
		return rec, false, nil
	}
	appendErr := p.Store.Append(rec)
	p.Tracker.MarkCompleted(o.Game, o.Date)
	return rec, true, appendErr
}
