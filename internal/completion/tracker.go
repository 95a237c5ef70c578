// internal/completion/tracker.go
//
// CompletionTracker: "first play of the day counts; replays don't."
// One record per (game, dayKey), created when that pair is first scored.
// Marking is monotonic and idempotent — once playedForScore is true it stays
// true, and re-marking is a no-op rather than an error.

package completion

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"puzzlepack/internal/game"
	"puzzlepack/internal/kv"
)

// Record marks a (game, day) pair as played for score.
type Record struct {
	GameID         game.ID `json:"gameId"`
	DayKey         string  `json:"dayKey"`
	PlayedForScore bool    `json:"playedForScore"`
}

// Tracker persists completion records through the kv store, with an
// in-memory mirror so a failed write still gates the current session.
type Tracker struct {
	mu    sync.Mutex
	store kv.Store
	seen  map[string]bool
}

func NewTracker(store kv.Store) *Tracker {
	return &Tracker{store: store, seen: make(map[string]bool)}
}

func recordKey(g game.ID, dayKey string) string {
	return fmt.Sprintf("completion_%s_%s", g, dayKey)
}

// IsCompleted reports whether (g, date) has already been played for score.
func (t *Tracker) IsCompleted(g game.ID, date time.Time) bool {
	dayKey := game.DayKey(date)
	key := recordKey(g, dayKey)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seen[key] {
		return true
	}
	data, ok, err := t.store.Get(key)
	if err != nil || !ok {
		return false
	}
	var rec Record
	if json.Unmarshal(data, &rec) != nil {
		return false
	}
	if rec.PlayedForScore {
		t.seen[key] = true
	}
	return rec.PlayedForScore
}

// MarkCompleted records (g, date) as played for score. Idempotent.
func (t *Tracker) MarkCompleted(g game.ID, date time.Time) {
	dayKey := game.DayKey(date)
	key := recordKey(g, dayKey)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seen[key] {
		return
	}
	t.seen[key] = true

	rec := Record{GameID: g, DayKey: dayKey, PlayedForScore: true}
	data, _ := json.Marshal(rec)
	if err := t.store.Set(key, data); err != nil {
		log.Warn().Err(err).Str("game", string(g)).Str("day", dayKey).
			Msg("completion write failed, in-memory mark kept")
	}
}

// ShouldScoreThisPlay reports whether a round started now for (g, date)
// would be eligible for scoring. Callers consult this before the round to
// choose the "play" vs "replay without score" flow, and must re-check at
// score-write time — marking itself stays idempotent either way.
func (t *Tracker) ShouldScoreThisPlay(g game.ID, date time.Time) bool {
	return !t.IsCompleted(g, date)
}
