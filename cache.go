package patfmt

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// cacheKey identifies one compiled spec.  Locale and currency participate
// because they are baked into the compiled closure's defaults.
type cacheKey struct {
	pattern  string
	typ      FormatType
	locale   string
	currency string
}

// flightKey renders the key for singleflight, which requires a string.
// NUL never appears in patterns' option fields, so it is a safe joiner.
func (k cacheKey) flightKey() string {
	return strings.Join([]string{k.pattern, string(k.typ), k.locale, k.currency}, "\x00")
}

// specCache memoizes compiled specs for the process lifetime.  Reads take
// the shared lock; concurrent compilations of the same key are collapsed to
// a single build via singleflight, so a caller can never observe a
// partially constructed spec.
type specCache struct {
	mu    sync.RWMutex
	specs map[cacheKey]*CompiledFormatSpec
	group singleflight.Group
}

// defaultCache is the process-lifetime cache used by Parse.  Entries never
// expire; callers opt out per call with FormatOptions.NoCache.
var defaultCache = newSpecCache()

func newSpecCache() *specCache {
	return &specCache{specs: make(map[cacheKey]*CompiledFormatSpec)}
}

// getOrCompile returns the cached spec for the key, building it at most
// once across concurrent callers.
func (c *specCache) getOrCompile(pattern string, typ FormatType, o FormatOptions, build func() *CompiledFormatSpec) *CompiledFormatSpec {
	key := cacheKey{pattern: pattern, typ: typ, locale: o.Locale, currency: o.Currency}

	c.mu.RLock()
	spec, ok := c.specs[key]
	c.mu.RUnlock()
	if ok {
		return spec
	}

	v, _, _ := c.group.Do(key.flightKey(), func() (any, error) {
		// Double-check: the winner of a previous flight may have stored it.
		c.mu.RLock()
		spec, ok := c.specs[key]
		c.mu.RUnlock()
		if ok {
			return spec, nil
		}

		spec = build()

		c.mu.Lock()
		c.specs[key] = spec
		c.mu.Unlock()
		return spec, nil
	})
	return v.(*CompiledFormatSpec)
}

// len reports the number of cached specs (test hook).
func (c *specCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.specs)
}
