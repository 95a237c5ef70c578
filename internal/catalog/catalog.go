// internal/catalog/catalog.go
//
// Read-only, date-keyed tables of pre-authored daily content, one per game.
//
// Loading behavior:
//   - Content is a JSON array per game type (see the record structs below
//     for the authoring format).
//   - Malformed content yields ErrMalformedCatalog together with an EMPTY
//     catalog: a corrupt bundle degrades to zero entries, it never takes the
//     caller down. Missing content behaves the same via ErrCatalogMissing.
//   - Authoring order is preserved; it defines the canonical date ordering
//     used for the available date range.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"puzzlepack/internal/game"
)

var (
	ErrMalformedCatalog = errors.New("catalog: malformed content")
	ErrCatalogMissing   = errors.New("catalog: content missing")
)

// emptyRangeDays is the fallback window when a catalog has no entries.
const emptyRangeDays = 30

// Catalog is the loaded content table for one game.
type Catalog struct {
	game    game.ID
	entries []Entry
	index   map[string]Entry
}

// New builds a catalog over entries, preserving their order. Later entries
// with a duplicate dayKey are dropped (values are unique per key).
func New(g game.ID, entries []Entry) *Catalog {
	c := &Catalog{game: g, index: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if _, dup := c.index[e.DayKey()]; dup {
			continue
		}
		c.index[e.DayKey()] = e
		c.entries = append(c.entries, e)
	}
	return c
}

// Empty returns a zero-entry catalog for g.
func Empty(g game.ID) *Catalog { return New(g, nil) }

func (c *Catalog) Game() game.ID { return c.game }
func (c *Catalog) Len() int      { return len(c.entries) }

// Lookup returns the entry for dayKey, if authored.
func (c *Catalog) Lookup(dayKey string) (Entry, bool) {
	e, ok := c.index[dayKey]
	return e, ok
}

// Entries returns the entries in authoring order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// DateRange reports the earliest and latest authored days, taken from the
// first and last loaded entries. An empty catalog falls back to the last
// emptyRangeDays days ending at now.
func (c *Catalog) DateRange(now time.Time) (earliest, latest time.Time) {
	if len(c.entries) == 0 {
		today, _ := game.ParseDayKey(game.DayKey(now))
		return today.AddDate(0, 0, -emptyRangeDays), today
	}
	first, _ := game.ParseDayKey(c.entries[0].DayKey())
	last, _ := game.ParseDayKey(c.entries[len(c.entries)-1].DayKey())
	return first, last
}

// ---------------------------- authoring records -----------------------------

// codeRecord is the bundled JSON shape for a Decode day.
type codeRecord struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Peg1 int    `json:"peg1"`
	Peg2 int    `json:"peg2"`
	Peg3 int    `json:"peg3"`
	Peg4 int    `json:"peg4"`
	Peg5 int    `json:"peg5"`
}

type equationRecord struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Equations []game.Equation `json:"equations"`
}

type wordRecord struct {
	ID    string   `json:"id"`
	Date  string   `json:"date"`
	Words []string `json:"words"`
}

// parseDate accepts the authored yyyy-MM-dd date, derives the dayKey when the
// id is blank, and rejects id/date disagreement.
func parseDate(id, date string) (string, time.Time, error) {
	t, err := game.ParseDayKey(date)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("bad date %q: %w", date, err)
	}
	key := game.DayKey(t)
	if id == "" {
		id = key
	}
	if id != key {
		return "", time.Time{}, fmt.Errorf("id %q does not match date %q", id, date)
	}
	return id, t, nil
}

// LoadCode parses the Decode catalog. On any parse failure the returned
// catalog is empty and the error is ErrMalformedCatalog.
func LoadCode(r io.Reader) (*Catalog, error) {
	var recs []codeRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return Empty(game.Decode), fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		id, t, err := parseDate(rec.ID, rec.Date)
		if err != nil {
			return Empty(game.Decode), fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
		entries = append(entries, CodePuzzle{
			ID:   id,
			Date: t,
			Pegs: []int{rec.Peg1, rec.Peg2, rec.Peg3, rec.Peg4, rec.Peg5},
		})
	}
	return New(game.Decode, entries), nil
}

// LoadEquations parses the Flashdance catalog. Same failure contract as
// LoadCode.
func LoadEquations(r io.Reader) (*Catalog, error) {
	var recs []equationRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return Empty(game.Flashdance), fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		id, t, err := parseDate(rec.ID, rec.Date)
		if err != nil {
			return Empty(game.Flashdance), fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
		entries = append(entries, EquationSet{ID: id, Date: t, Equations: rec.Equations})
	}
	return New(game.Flashdance, entries), nil
}

// LoadWords parses the Anagrams catalog. Same failure contract as LoadCode.
func LoadWords(r io.Reader) (*Catalog, error) {
	var recs []wordRecord
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return Empty(game.Anagrams), fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	entries := make([]Entry, 0, len(recs))
	for _, rec := range recs {
		id, t, err := parseDate(rec.ID, rec.Date)
		if err != nil {
			return Empty(game.Anagrams), fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
		entries = append(entries, WordSet{ID: id, Date: t, Words: rec.Words})
	}
	return New(game.Anagrams, entries), nil
}
