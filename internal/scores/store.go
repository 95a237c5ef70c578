// internal/scores/store.go
//
// ScoreStore: append-only ledger of score records with query views.
// Records are immutable once created — they are only ever appended, read,
// and filtered. Appends write through to the kv store and then notify
// subscribers, strictly after the in-memory append, so MostRecentScore
// observes a just-finished round with no settling delay.

package scores

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"puzzlepack/internal/game"
	"puzzlepack/internal/kv"
)

const ledgerKey = "score_ledger"

// Record is one scored round. Immutable once created.
type Record struct {
	ID          string      `json:"id"`
	GameID      game.ID     `json:"gameId"`
	Date        time.Time   `json:"date"`
	Attempts    int         `json:"attempts"`
	TimeElapsed float64     `json:"timeElapsed"`
	Won         bool        `json:"won"`
	FinalScore  int         `json:"finalScore"`
	Detail      game.Detail `json:"detail"`
}

// NewRecord builds a Record from a round outcome and its computed score.
func NewRecord(o game.Outcome, finalScore int, at time.Time) Record {
	return Record{
		ID:          uuid.NewString(),
		GameID:      o.Game,
		Date:        at,
		Attempts:    o.Attempts,
		TimeElapsed: o.TimeElapsed,
		Won:         o.Won,
		FinalScore:  finalScore,
		Detail:      o.Detail,
	}
}

// Store is the in-memory ledger with kv write-through.
type Store struct {
	mu      sync.RWMutex
	backing kv.Store
	records []Record
	subs    []func(Record)
}

// NewStore loads any persisted ledger from the kv store. A corrupt ledger
// degrades to empty with a warning.
func NewStore(backing kv.Store) *Store {
	s := &Store{backing: backing}
	data, ok, err := backing.Get(ledgerKey)
	if err == nil && ok {
		if err := json.Unmarshal(data, &s.records); err != nil {
			log.Warn().Err(err).Msg("score ledger unreadable, starting empty")
			s.records = nil
		}
	}
	return s
}

// Subscribe registers fn to run after every successful append. Observers
// live for the app lifetime; there is no unsubscribe.
func (s *Store) Subscribe(fn func(Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Append adds rec to the ledger and persists it. A failed persistence write
// keeps the in-memory ledger authoritative for the session and returns
// kv.ErrWrite (wrapped); the next append retries the full ledger.
func (s *Store) Append(rec Record) error {
	s.mu.Lock()
	s.records = append(s.records, rec)
	data, _ := json.Marshal(s.records)
	err := s.backing.Set(ledgerKey, data)
	subs := append(([]func(Record))(nil), s.subs...)
	s.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Str("game", string(rec.GameID)).
			Msg("score write failed, ledger kept in memory")
	}
	for _, fn := range subs {
		fn(rec)
	}
	return err
}

// Query returns records for gameID (or all records when gameID is empty),
// sorted by score descending, ties broken most-recent-first.
func (s *Store) Query(gameID game.ID) []Record {
	s.mu.RLock()
	out := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if gameID == "" || r.GameID == gameID {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// TopN returns the n highest scores across all games.
func (s *Store) TopN(n int) []Record {
	all := s.Query("")
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// Recent returns the n most recently played records across all games.
func (s *Store) Recent(n int) []Record {
	s.mu.RLock()
	out := append([]Record(nil), s.records...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// MostRecentScore returns the latest record for gameID, surfacing "your last
// result" right after a round ends.
func (s *Store) MostRecentScore(gameID game.ID) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best Record
	found := false
	for _, r := range s.records {
		if r.GameID != gameID {
			continue
		}
		if !found || r.Date.After(best.Date) {
			best = r
			found = true
		}
	}
	return best, found
}

// Len reports the ledger size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
