package daily

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"puzzlepack/internal/catalog"
	"puzzlepack/internal/game"
	"puzzlepack/internal/kv"
)

var fixedNow = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

func testSet(t *testing.T) *catalog.Set {
	t.Helper()
	authored := []catalog.Entry{
		catalog.WordSet{ID: "2025-09-01", Date: day("2025-09-01"), Words: []string{"PLANET", "GARDEN"}},
	}
	return &catalog.Set{
		Decode:     catalog.Empty(game.Decode),
		Flashdance: catalog.Empty(game.Flashdance),
		Anagrams:   catalog.New(game.Anagrams, authored),
		WordPool: []string{
			"ANCHOR", "BASKET", "CAMERA", "DRAGON", "FLOWER", "GUITAR",
			"HAMMER", "ISLAND", "JUNGLE", "LADDER", "MARBLE", "POCKET",
		},
	}
}

func day(key string) time.Time {
	t, _ := game.ParseDayKey(key)
	return t
}

func newSelector(t *testing.T, store kv.Store) *Selector {
	t.Helper()
	return New(testSet(t), store, "test_salt", WithNow(func() time.Time { return fixedNow }))
}

func TestPuzzlePrefersCatalogEntry(t *testing.T) {
	s := newSelector(t, kv.NewMemory())
	e, err := s.Puzzle(game.Anagrams, day("2025-09-01"))
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	ws := e.(catalog.WordSet)
	if !reflect.DeepEqual(ws.Words, []string{"PLANET", "GARDEN"}) {
		t.Errorf("catalog entry not returned: %+v", ws)
	}
}

func TestPuzzleGenerationIsIdempotent(t *testing.T) {
	store := kv.NewMemory()
	s := newSelector(t, store)
	date := day("2025-09-05") // no authored entry

	for _, g := range game.All {
		first, err := s.Puzzle(g, date)
		if err != nil {
			t.Fatalf("Puzzle(%s): %v", g, err)
		}
		second, err := s.Puzzle(g, date)
		if err != nil {
			t.Fatalf("Puzzle(%s) again: %v", g, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated calls differ:\n%+v\n%+v", g, first, second)
		}
	}
}

func TestGeneratedPuzzleSurvivesRestart(t *testing.T) {
	store := kv.NewMemory()
	date := day("2025-09-06")

	first, err := newSelector(t, store).Puzzle(game.Decode, date)
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	// A fresh selector over the same store must read the persisted override.
	second, err := newSelector(t, store).Puzzle(game.Decode, date)
	if err != nil {
		t.Fatalf("Puzzle after restart: %v", err)
	}
	if first.(catalog.CodePuzzle).ID != second.(catalog.CodePuzzle).ID ||
		!reflect.DeepEqual(first.(catalog.CodePuzzle).Pegs, second.(catalog.CodePuzzle).Pegs) {
		t.Errorf("override not stable across restart:\n%+v\n%+v", first, second)
	}
}

func TestGeneratedDecodePegsInRange(t *testing.T) {
	s := newSelector(t, kv.NewMemory())
	e, err := s.Puzzle(game.Decode, day("2025-09-07"))
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	pegs := e.(catalog.CodePuzzle).Pegs
	if len(pegs) != game.NumPegs {
		t.Fatalf("pegs = %v, want %d of them", pegs, game.NumPegs)
	}
	for _, p := range pegs {
		if p < 1 || p > game.NumColors {
			t.Errorf("peg %d out of [1,%d]", p, game.NumColors)
		}
	}
}

func TestTodayCacheServesRepeatCalls(t *testing.T) {
	s := newSelector(t, kv.NewMemory())
	first, err := s.Puzzle(game.Flashdance, fixedNow)
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	second, err := s.Puzzle(game.Flashdance, fixedNow)
	if err != nil {
		t.Fatalf("Puzzle: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("today's puzzle changed between calls")
	}
}

func TestUnknownGameRejected(t *testing.T) {
	s := newSelector(t, kv.NewMemory())
	if _, err := s.Puzzle("chess", fixedNow); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestDaySeedDeterministicAndPerGame(t *testing.T) {
	a := DaySeed("salt", game.Decode, "2025-09-10")
	b := DaySeed("salt", game.Decode, "2025-09-10")
	if a != b {
		t.Error("same inputs produced different seeds")
	}
	if DaySeed("salt", game.Anagrams, "2025-09-10") == a {
		t.Error("games share a daily seed")
	}
	if DaySeed("salt", game.Decode, "2025-09-11") == a {
		t.Error("days share a seed")
	}
	if DaySeed("other", game.Decode, "2025-09-10") == a {
		t.Error("salts share a seed")
	}
}

// ------------------------------- pool ---------------------------------------

func TestPoolDrawWithoutReplacement(t *testing.T) {
	p := &pool{store: kv.NewMemory(), key: "used_test"}
	master := []string{"A", "B", "C", "D", "E", "F"}
	rng := rand.New(rand.NewSource(1))

	out := p.draw(master, 4, rng)
	if len(out) != 4 {
		t.Fatalf("drew %d items, want 4", len(out))
	}
	seen := map[string]bool{}
	for _, it := range out {
		if seen[it] {
			t.Errorf("item %q drawn twice within the pool", it)
		}
		seen[it] = true
	}
}

func TestPoolExcludesUsedUntilReset(t *testing.T) {
	store := kv.NewMemory()
	p := &pool{store: store, key: "used_test"}
	master := []string{"A", "B", "C", "D", "E", "F"}
	rng := rand.New(rand.NewSource(7))

	first := p.draw(master, 3, rng)
	second := p.draw(master, 3, rng)
	for _, a := range first {
		for _, b := range second {
			if a == b {
				t.Fatalf("item %q repeated before the pool was exhausted", a)
			}
		}
	}

	// Pool is now fully used; the next draw must reset rather than fail.
	third := p.draw(master, 3, rng)
	if len(third) != 3 {
		t.Fatalf("post-reset draw = %d items, want 3", len(third))
	}
}

func TestPoolSmallerThanRequestCycles(t *testing.T) {
	p := &pool{store: kv.NewMemory(), key: "used_test"}
	master := []string{"CAT", "DOG"}
	rng := rand.New(rand.NewSource(3))

	out := p.draw(master, 3, rng)
	if len(out) != 3 {
		t.Fatalf("drew %d items, want 3", len(out))
	}
	counts := map[string]int{}
	for _, it := range out {
		counts[it]++
	}
	if counts["CAT"] == 0 || counts["DOG"] == 0 {
		t.Errorf("both pool words must appear before any repeat: %v", out)
	}
	if counts["CAT"]+counts["DOG"] != 3 {
		t.Errorf("unexpected items drawn: %v", out)
	}
}

func TestPoolEmptyMasterReturnsShort(t *testing.T) {
	p := &pool{store: kv.NewMemory(), key: "used_test"}
	if out := p.draw(nil, 5, rand.New(rand.NewSource(1))); len(out) != 0 {
		t.Errorf("empty master drew %v", out)
	}
}

func TestPoolCorruptUsedSetResets(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set("used_test", []byte("not json"))
	p := &pool{store: store, key: "used_test"}
	out := p.draw([]string{"A", "B", "C"}, 2, rand.New(rand.NewSource(1)))
	if len(out) != 2 {
		t.Errorf("draw over corrupt state = %v", out)
	}
}
