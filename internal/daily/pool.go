// internal/daily/pool.go
//
// Anti-repetition pool used when generating word and equation days.
// Items emitted by earlier generations are excluded until the remaining
// candidate set is too small for the request, at which point the used-set
// resets and the full master pool cycles again. Guarantees termination and
// accepts eventual repeats once the pool is exhausted.

package daily

import (
	"encoding/json"
	"math/rand"
	"sort"

	"github.com/rs/zerolog/log"

	"puzzlepack/internal/kv"
)

type pool struct {
	store kv.Store
	key   string // kv key holding the used-set
}

// loadUsed reads the persisted used-set; corrupt or missing state resets it.
func (p *pool) loadUsed() map[string]bool {
	used := make(map[string]bool)
	data, ok, err := p.store.Get(p.key)
	if err != nil || !ok {
		return used
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Str("key", p.key).Msg("used-set unreadable, resetting")
		return used
	}
	for _, it := range items {
		used[it] = true
	}
	return used
}

func (p *pool) saveUsed(used map[string]bool) {
	items := make([]string, 0, len(used))
	for it := range used {
		items = append(items, it)
	}
	sort.Strings(items)
	data, _ := json.Marshal(items)
	if err := p.store.Set(p.key, data); err != nil {
		log.Warn().Err(err).Str("key", p.key).Msg("used-set write failed")
	}
}

// draw picks count items uniformly without replacement from master minus the
// used-set. When the remaining candidates cannot satisfy the request the
// used-set resets (full-cycle reuse); when the master pool itself is smaller
// than count, items recycle within the one result rather than failing.
// An empty master pool yields an empty (short) result.
func (p *pool) draw(master []string, count int, rng *rand.Rand) []string {
	if count <= 0 || len(master) == 0 {
		if len(master) == 0 && count > 0 {
			log.Warn().Str("key", p.key).Msg("generation pool empty, returning short result")
		}
		return nil
	}

	used := p.loadUsed()
	candidates := filter(master, used)
	if len(candidates) < count {
		used = make(map[string]bool)
		candidates = append([]string(nil), master...)
	}

	out := make([]string, 0, count)
	for len(out) < count {
		if len(candidates) == 0 {
			// Request exceeds the whole pool; cycle it again.
			used = make(map[string]bool)
			candidates = append([]string(nil), master...)
		}
		i := rng.Intn(len(candidates))
		pick := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)
		out = append(out, pick)
		used[pick] = true
	}

	p.saveUsed(used)
	return out
}

func filter(master []string, used map[string]bool) []string {
	out := make([]string, 0, len(master))
	for _, it := range master {
		if !used[it] {
			out = append(out, it)
		}
	}
	return out
}
