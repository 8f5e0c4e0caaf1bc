// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// uniqueTable hash-conses every internal node for a single variable index:
// two internal nodes at the same index with equal son tuples are always the
// same node id. Collisions chain through node.next, reusing the same field
// the free list uses while a node is unallocated.
type uniqueTable struct {
	buckets []int32 // bucket head node id, or nilNode
	count   int32   // number of live entries
}

func newUniqueTable(size int) *uniqueTable {
	return &uniqueTable{buckets: make([]int32, primeGte(size))}
}

// sonsHash combines a variable index and its son tuple into a bucket index.
// It folds sons pairwise with the Cantor-style pairing function used
// throughout the operation cache, so two tuples that differ in any son
// land, with overwhelming probability, in different buckets.
func sonsHash(index int32, sons []int32) uint64 {
	h := pair(uint64(index), uint64(len(sons)))
	for _, s := range sons {
		h = pair(h, uint64(uint32(s)))
	}
	return h
}

func (u *uniqueTable) bucket(index int32, sons []int32) int32 {
	return int32(sonsHash(index, sons) % uint64(len(u.buckets)))
}

// find looks up an internal node with the given index and son tuple. The
// nodes slice is the manager's pool, needed to compare and walk chains.
func (u *uniqueTable) find(nodes []node, index int32, sons []int32) (int32, bool) {
	if len(u.buckets) == 0 {
		return nilNode, false
	}
	b := u.bucket(index, sons)
	for id := u.buckets[b]; id != nilNode; id = nodes[id].next {
		cand := &nodes[id]
		if cand.index != index || len(cand.sons) != len(sons) {
			continue
		}
		match := true
		for k := range sons {
			if cand.sons[k] != sons[k] {
				match = false
				break
			}
		}
		if match {
			return id, true
		}
	}
	return nilNode, false
}

// insert adds id (already filled in with index and sons) to the table,
// growing it first if the load factor has been crossed.
func (u *uniqueTable) insert(nodes []node, id int32) {
	if u.count*100 >= int32(len(u.buckets))*loadFactorPercent {
		u.grow(nodes)
	}
	n := &nodes[id]
	b := u.bucket(n.index, n.sons)
	n.next = u.buckets[b]
	u.buckets[b] = id
	u.count++
}

func (u *uniqueTable) grow(nodes []node) {
	size := nextTableSize(len(u.buckets))
	old := u.buckets
	u.buckets = make([]int32, size)
	for _, head := range old {
		for id := head; id != nilNode; {
			n := &nodes[id]
			next := n.next
			b := u.bucket(n.index, n.sons)
			n.next = u.buckets[b]
			u.buckets[b] = id
			id = next
		}
	}
}

// reset empties the table without touching the nodes themselves; used by
// the GC sweep, which rebuilds every table from the set of surviving nodes.
func (u *uniqueTable) reset() {
	for i := range u.buckets {
		u.buckets[i] = nilNode
	}
	u.count = 0
}

// pair is the Cantor pairing-style combinator used to fold a sequence of
// integers into one hash, for both the unique tables and the operation
// cache.
func pair(a, b uint64) uint64 {
	return (a+b)*(a+b+1)/2 + b
}

func triple(a, b, c uint64) uint64 {
	return pair(pair(a, b), c)
}
