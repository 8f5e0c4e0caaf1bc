// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "fmt"

// opCacheEntry is one slot of the flat operation cache. A zero opID is a
// valid operator (AND == 0), so empty slots are distinguished by lhs ==
// cacheEmpty instead.
type opCacheEntry struct {
	opID   Operator
	lhs    int32
	rhs    int32
	result int32
}

const cacheEmpty int32 = -1

// opCache is a single flat, open-addressed, lossy memo table shared by every
// binary operator. A collision simply overwrites the existing entry: this
// is a weak cache, not a source of truth, and Apply must always be correct
// whether or not a given pair hits.
type opCache struct {
	entries []opCacheEntry
	ratio   int
	hits    int64
	misses  int64
}

func newOpCache(size int) *opCache {
	c := &opCache{entries: make([]opCacheEntry, primeGte(size))}
	c.clear()
	return c
}

func (c *opCache) clear() {
	for i := range c.entries {
		c.entries[i].lhs = cacheEmpty
	}
	c.hits, c.misses = 0, 0
}

func (c *opCache) slot(op Operator, lhs, rhs int32) int {
	h := triple(uint64(op), uint64(uint32(lhs)), uint64(uint32(rhs)))
	return int(h % uint64(len(c.entries)))
}

func (c *opCache) find(op Operator, lhs, rhs int32) (int32, bool) {
	if len(c.entries) == 0 {
		return 0, false
	}
	e := &c.entries[c.slot(op, lhs, rhs)]
	if e.lhs == lhs && e.rhs == rhs && e.opID == op {
		c.hits++
		return e.result, true
	}
	c.misses++
	return 0, false
}

func (c *opCache) put(op Operator, lhs, rhs, result int32) {
	if len(c.entries) == 0 {
		return
	}
	e := &c.entries[c.slot(op, lhs, rhs)]
	e.opID, e.lhs, e.rhs, e.result = op, lhs, rhs, result
}

// removeUnused drops every entry that refers to a node no longer in use,
// called right after a GC sweep reclaims dead nodes: a stale entry would
// otherwise let Apply return an id that has been recycled for something
// else.
func (c *opCache) removeUnused(nodes []node) {
	for i := range c.entries {
		e := &c.entries[i]
		if e.lhs == cacheEmpty {
			continue
		}
		if !nodes[e.lhs].inuse || !nodes[e.rhs].inuse || !nodes[e.result].inuse {
			e.lhs = cacheEmpty
		}
	}
}

func (c *opCache) resize(size int) {
	c.entries = make([]opCacheEntry, primeGte(size))
	c.clear()
}

func (c *opCache) String() string {
	total := c.hits + c.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(c.hits) / float64(total) * 100
	}
	return fmt.Sprintf("entries: %d, hits: %d, misses: %d (%.3g%%)", len(c.entries), c.hits, c.misses, ratio)
}
