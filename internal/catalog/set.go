// internal/catalog/set.go
//
// Set bundles the three per-game catalogs plus the master word pool used to
// generate anagram days that have no authored entry. LoadBundled reads the
// embedded app data once at startup; every failure path degrades to empty
// content (or the built-in word pool) with a warning, never an error that
// stops the app.

package catalog

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/rs/zerolog/log"

	"puzzlepack/assets"
	"puzzlepack/internal/game"
)

// Set holds all loaded daily content.
type Set struct {
	Decode     *Catalog
	Flashdance *Catalog
	Anagrams   *Catalog
	WordPool   []string
}

// ForGame returns the catalog for g, or an empty catalog for unknown ids.
func (s *Set) ForGame(g game.ID) *Catalog {
	switch g {
	case game.Decode:
		return s.Decode
	case game.Flashdance:
		return s.Flashdance
	case game.Anagrams:
		return s.Anagrams
	}
	return Empty(g)
}

// LoadBundled loads the embedded catalogs and master word list.
func LoadBundled() *Set {
	s := &Set{}

	if data, err := assets.DecodeCatalog(); err != nil {
		log.Warn().Err(err).Msg("decode catalog missing, using empty")
		s.Decode = Empty(game.Decode)
	} else if s.Decode, err = LoadCode(bytes.NewReader(data)); err != nil {
		log.Warn().Err(err).Msg("decode catalog unreadable, using empty")
	}

	if data, err := assets.FlashdanceCatalog(); err != nil {
		log.Warn().Err(err).Msg("flashdance catalog missing, using empty")
		s.Flashdance = Empty(game.Flashdance)
	} else if s.Flashdance, err = LoadEquations(bytes.NewReader(data)); err != nil {
		log.Warn().Err(err).Msg("flashdance catalog unreadable, using empty")
	}

	if data, err := assets.AnagramsCatalog(); err != nil {
		log.Warn().Err(err).Msg("anagrams catalog missing, using empty")
		s.Anagrams = Empty(game.Anagrams)
	} else if s.Anagrams, err = LoadWords(bytes.NewReader(data)); err != nil {
		log.Warn().Err(err).Msg("anagrams catalog unreadable, using empty")
	}

	s.WordPool = loadWordPool()
	return s
}

// loadWordPool reads the embedded master word list, falling back to the
// built-in pool so generation never fails.
func loadWordPool() []string {
	data, err := assets.MasterWords()
	if err != nil {
		log.Warn().Err(err).Msg("master word list missing, using built-in pool")
		return append([]string(nil), builtinWordPool...)
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		log.Warn().Msg("master word list empty, using built-in pool")
		return append([]string(nil), builtinWordPool...)
	}
	return out
}

// builtinWordPool keeps anagram generation alive with no bundled list.
var builtinWordPool = []string{
	"APPLE", "BEACH", "BRAVE", "CANDY", "CHAIR", "CLOUD", "DANCE", "DREAM",
	"EAGLE", "FLAME", "FROST", "GHOST", "GRAPE", "HEART", "HONEY", "LEMON",
	"LIGHT", "MAGIC", "MUSIC", "OCEAN", "PEARL", "PIANO", "PLANT", "RIVER",
	"SMILE", "SNAKE", "STONE", "STORM", "SUGAR", "TIGER", "TRAIN", "WHALE",
}
