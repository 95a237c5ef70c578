// internal/access/cache.go
//
// Device-local tier cache. The purchase system is not reachable on every
// request (offline play, watch companion), so the last verified tier is
// persisted through the kv store and used whenever a request carries no
// entitlement token.

package access

import (
	"sync"

	"github.com/rs/zerolog/log"

	"puzzlepack/internal/kv"
)

const tierKey = "subscription_tier"

// TierCache remembers the last verified subscription tier.
type TierCache struct {
	mu     sync.Mutex
	store  kv.Store
	tier   Tier
	loaded bool
}

func NewTierCache(store kv.Store) *TierCache {
	return &TierCache{store: store}
}

// Current returns the cached tier, loading it from the store on first use.
// Missing or unreadable state means Basic.
func (c *TierCache) Current() Tier {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		c.loaded = true
		c.tier = Basic
		if data, ok, err := c.store.Get(tierKey); err == nil && ok {
			if t, err := ParseTier(string(data)); err == nil {
				c.tier = t
			}
		}
	}
	return c.tier
}

// Update records a freshly verified tier. Writes through on change; a failed
// write keeps the in-memory value for the session.
func (c *TierCache) Update(t Tier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded && c.tier == t {
		return
	}
	c.tier = t
	c.loaded = true
	if err := c.store.Set(tierKey, []byte(t.String())); err != nil {
		log.Warn().Err(err).Str("tier", t.String()).Msg("tier write failed, cached in memory")
	}
}
