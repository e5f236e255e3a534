package astar

import (
	"sync"

	"github.com/katalvlaran/navgrid/grid"
)

// pairKey keys the cache by (start, goal). The active oracle is implicit:
// any topology change clears the cache, so no entry can outlive the
// oracle that produced it.
type pairKey struct {
	start, goal grid.Coord
}

// Cache memoizes positive path results for a single world. It is guarded
// by a mutex so a future background recomputation can share it; inside
// the single-threaded tick loop the lock is uncontended.
type Cache struct {
	mu    sync.Mutex
	paths map[pairKey]Path
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{paths: make(map[pairKey]Path)}
}

// GetOrCompute returns the cached path for (start, goal) if present;
// otherwise it calls compute, stores a successful result, and returns it.
// Failures are never cached, so a later map edit can succeed without a
// prior invalidation. The returned path is a copy; callers may keep it
// across a Clear.
func (c *Cache) GetOrCompute(start, goal grid.Coord, compute func() (Path, error)) (Path, error) {
	key := pairKey{start: start, goal: goal}

	c.mu.Lock()
	if p, ok := c.paths[key]; ok {
		c.mu.Unlock()

		return p.Clone(), nil
	}
	c.mu.Unlock()

	// Compute outside the lock: A* may be slow and the cache must stay
	// usable for concurrent readers of other keys.
	p, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.paths[key] = p
	c.mu.Unlock()

	return p.Clone(), nil
}

// Clear empties the store. Must be called on any grid mutation or
// topology change.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.paths = make(map[pairKey]Path)
	c.mu.Unlock()
}

// Len reports the number of memoized paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.paths)
}
