// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// Node id 0 is never allocated to a real node; it is reserved so that a
// zero int32 can always be read as "no node" without ambiguity.
const nilNode int32 = 0

// growPool appends an overflow slab of size count to the node pool and
// links every new slot into the free list. It is the only place the
// backing slice is reallocated; existing node ids stay valid across the
// call because they are indices, not pointers, into m.nodes.
func (m *Manager) growPool(count int) {
	if count <= 0 {
		count = len(m.nodes)
		if count == 0 {
			count = 2
		}
	}
	start := int32(len(m.nodes))
	m.nodes = append(m.nodes, make([]node, count)...)
	for i := int32(count) - 1; i >= 0; i-- {
		id := start + i
		m.nodes[id].next = m.freeHead
		m.freeHead = id
		m.freeCount++
	}
	if _LOGLEVEL > 0 {
		logf("pool grown to %d nodes (+%d)", len(m.nodes), count)
	}
}

// alloc pops a free slot off the free list, growing the pool first if
// necessary. The caller is responsible for filling in the returned node's
// fields before it is published anywhere (unique table, cache, handle).
func (m *Manager) alloc() int32 {
	if m.freeCount == 0 && !m.reordering {
		m.reclaim()
	}
	if m.freeCount == 0 {
		inc := m.overflow
		if inc <= 0 {
			inc = len(m.nodes)
		}
		if m.maxnodeincrease > 0 && inc > m.maxnodeincrease {
			inc = m.maxnodeincrease
		}
		if m.maxnodesize > 0 && len(m.nodes)+inc > m.maxnodesize {
			inc = m.maxnodesize - len(m.nodes)
		}
		if inc <= 0 {
			m.seterror("%s", errMemory)
			return nilNode
		}
		m.growPool(inc)
		if m.cacheratio > 0 {
			m.cache.resize(len(m.nodes) * m.cacheratio / 100)
		}
	}
	id := m.freeHead
	m.freeHead = m.nodes[id].next
	m.freeCount--
	m.nodes[id].inuse = true
	m.nodes[id].mark = false
	m.nodes[id].refcou = 0
	m.nodes[id].next = nilNode
	m.allocCount++
	return id
}

// free returns a slot to the free list. It does not touch reference counts
// of the node's former sons; callers that destroy live nodes must decrement
// those themselves (see reclaim in gc.go, which does this during sweep).
func (m *Manager) free(id int32) {
	n := &m.nodes[id]
	n.inuse = false
	n.sons = nil
	n.next = m.freeHead
	m.freeHead = id
	m.freeCount++
}
