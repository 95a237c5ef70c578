// internal/daily/selector.go
//
// DailyPuzzleSelector: resolves "the puzzle for game G on date D".
// Resolution order:
//   1. Today-cache (avoids rescanning the catalog on every call).
//   2. Catalog lookup by dayKey.
//   3. Previously persisted override.
//   4. Fresh generation, persisted as an override so repeated calls for the
//      same day stay stable. Generation is seeded per (salt, game, day), so
//      even a failed override write regenerates identical content.
//
// Generation for a given (game, day) is at-most-once in steady state; two
// concurrent first callers may each generate (an accepted single-device
// race — the deterministic seed makes both results identical anyway).

package daily

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"puzzlepack/internal/catalog"
	"puzzlepack/internal/game"
	"puzzlepack/internal/kv"
)

const (
	wordsPerDay     = 5
	equationsPerDay = 10
)

// Selector resolves daily puzzles against the catalog and override store.
type Selector struct {
	mu    sync.Mutex
	set   *catalog.Set
	store kv.Store
	salt  string
	now   func() time.Time

	cache map[game.ID]cached // today's puzzle per game
	// overrides generated this session; authoritative even when the kv
	// write failed.
	session map[string]catalog.Entry
}

type cached struct {
	dayKey string
	entry  catalog.Entry
}

// Option tweaks a Selector; used by tests to pin the clock.
type Option func(*Selector)

func WithNow(now func() time.Time) Option {
	return func(s *Selector) { s.now = now }
}

// New constructs a Selector over the loaded content set and override store.
func New(set *catalog.Set, store kv.Store, salt string, opts ...Option) *Selector {
	s := &Selector{
		set:     set,
		store:   store,
		salt:    salt,
		now:     time.Now,
		cache:   make(map[game.ID]cached),
		session: make(map[string]catalog.Entry),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Puzzle returns the puzzle for (g, date), generating and persisting one if
// the catalog has no entry for that day.
func (s *Selector) Puzzle(g game.ID, date time.Time) (catalog.Entry, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("daily: unknown game %q", g)
	}

	dayKey := game.DayKey(date)
	today := game.DayKey(s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	if dayKey == today {
		if c, ok := s.cache[g]; ok && c.dayKey == dayKey {
			return c.entry, nil
		}
	}

	if e, ok := s.set.ForGame(g).Lookup(dayKey); ok {
		s.cacheToday(g, dayKey, today, e)
		return e, nil
	}

	if e, ok := s.session[overrideKey(g, dayKey)]; ok {
		s.cacheToday(g, dayKey, today, e)
		return e, nil
	}

	if e, ok := s.loadOverride(g, dayKey); ok {
		s.session[overrideKey(g, dayKey)] = e
		s.cacheToday(g, dayKey, today, e)
		return e, nil
	}

	e := s.generate(g, dayKey)
	s.session[overrideKey(g, dayKey)] = e
	s.persistOverride(g, dayKey, e)
	s.cacheToday(g, dayKey, today, e)
	log.Info().Str("game", string(g)).Str("day", dayKey).Msg("generated daily puzzle")
	return e, nil
}

func (s *Selector) cacheToday(g game.ID, dayKey, today string, e catalog.Entry) {
	if dayKey == today {
		s.cache[g] = cached{dayKey: dayKey, entry: e}
	}
}

func overrideKey(g game.ID, dayKey string) string {
	return fmt.Sprintf("%s_puzzle_%s", g, dayKey)
}

// generate builds a fresh entry for a day with no authored content, seeded
// deterministically per (salt, game, day).
func (s *Selector) generate(g game.ID, dayKey string) catalog.Entry {
	date, _ := game.ParseDayKey(dayKey)
	rng := rand.New(rand.NewSource(DaySeed(s.salt, g, dayKey)))

	switch g {
	case game.Decode:
		pegs := make([]int, game.NumPegs)
		for i := range pegs {
			pegs[i] = rng.Intn(game.NumColors) + 1
		}
		return catalog.CodePuzzle{ID: dayKey, Date: date, Pegs: pegs}

	case game.Anagrams:
		p := &pool{store: s.store, key: "used_words_anagrams"}
		words := p.draw(s.set.WordPool, wordsPerDay, rng)
		return catalog.WordSet{ID: dayKey, Date: date, Words: words}

	default: // flashdance
		exprs, byExpr := masterEquations()
		p := &pool{store: s.store, key: "used_equations_flashdance"}
		picked := p.draw(exprs, equationsPerDay, rng)
		eqs := make([]game.Equation, 0, len(picked))
		for _, expr := range picked {
			eqs = append(eqs, byExpr[expr])
		}
		return catalog.EquationSet{ID: dayKey, Date: date, Equations: eqs}
	}
}

// loadOverride reads a previously generated entry from the kv store.
func (s *Selector) loadOverride(g game.ID, dayKey string) (catalog.Entry, bool) {
	data, ok, err := s.store.Get(overrideKey(g, dayKey))
	if err != nil || !ok {
		return nil, false
	}
	var e catalog.Entry
	switch g {
	case game.Decode:
		var p catalog.CodePuzzle
		if json.Unmarshal(data, &p) != nil {
			return nil, false
		}
		e = p
	case game.Anagrams:
		var w catalog.WordSet
		if json.Unmarshal(data, &w) != nil {
			return nil, false
		}
		e = w
	default:
		var q catalog.EquationSet
		if json.Unmarshal(data, &q) != nil {
			return nil, false
		}
		e = q
	}
	return e, true
}

// persistOverride writes a generated entry through to the kv store.
// Failure is soft: the session map stays authoritative and the deterministic
// seed reproduces the same entry after a restart.
func (s *Selector) persistOverride(g game.ID, dayKey string, e catalog.Entry) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Warn().Err(err).Str("game", string(g)).Str("day", dayKey).Msg("override encode failed")
		return
	}
	if err := s.store.Set(overrideKey(g, dayKey), data); err != nil {
		log.Warn().Err(err).Str("game", string(g)).Str("day", dayKey).Msg("override write failed")
	}
}
