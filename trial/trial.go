// Package trial holds the Bernoulli-trial data model: the Verdict of one
// oracle evaluation, and the concurrent Cache that memoizes assignment to
// verdict so repeated parameter draws skip the oracle.
package trial

import (
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"statsmc/errs"
)

// Verdict is the outcome of one oracle evaluation: whether the goal region
// is reachable under the sampled assignment.
type Verdict bool

const (
	Unsat Verdict = false
	Sat   Verdict = true
)

// keySep separates assignment fields in a cache key. Assignment values are
// rendered numeric text from the sampling layer and never contain a NUL
// byte, so joining on it keeps equality exact without risking a collision
// between, say, ["1", "23"] and ["12", "3"].
const keySep = "\x00"

// Key canonicalizes an assignment into the cache's lookup key.
func Key(assignment []string) string {
	return strings.Join(assignment, keySep)
}

// Cache is a concurrent assignment -> verdict map. It grows monotonically;
// entries are never removed, and a duplicate Insert with the same verdict
// is a no-op. Modeled on stateManager.TreeStateManager's embedded
// sync.RWMutex discipline: readers and writers never block each other
// longer than the map access itself.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Verdict
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Verdict)}
}

// Lookup returns the memoized verdict for assignment, if any.
func (c *Cache) Lookup(assignment []string) (Verdict, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[Key(assignment)]
	return v, ok
}

// Insert records assignment -> verdict. A repeated insert with a matching
// verdict is idempotent. A repeated insert with a conflicting verdict
// returns an *errs.OracleNondeterministic error; the entry is left as
// first recorded.
func (c *Cache) Insert(assignment []string, verdict Verdict) error {
	key := Key(assignment)

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.entries[key]
	if !ok {
		c.entries[key] = verdict
		return nil
	}
	if existing != verdict {
		return &errs.OracleNondeterministic{
			Assignment: assignment,
			First:      bool(existing),
			Second:     bool(verdict),
		}
	}
	return nil
}

// Len returns the number of distinct assignments memoized so far.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns every memoized assignment key in sorted order. It exists
// for diagnostics and tests that need a stable view of the cache; the
// driver's hot path never calls it. Modeled on
// stateManager.TreeStateManager's maps.Keys + slices.Sort pairing for
// deterministic iteration over a concurrent map.
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := maps.Keys(c.entries)
	slices.Sort(keys)
	return keys
}
