// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// gcpoint is a snapshot of pool occupancy taken at the start of each
// garbage collection, kept around for Stats.
type gcpoint struct {
	nodes     int
	freenodes int
}

// reclaim runs a mark-sweep garbage collection: every node reachable from a
// positive reference count (external Diagram handles and internal parent
// edges alike) is protected, along with anything still on the transient
// protected stack used mid-Apply; everything else is swept back onto the
// free list and its unique-table entry removed. Unlike plain reference
// counting, this also reclaims cycles that reference counting alone cannot
// see (none are possible here, since son levels strictly increase, but it
// is also the only path that actually removes now-dead unique-table and
// operation-cache entries).
func (m *Manager) reclaim() {
	logf("starting GC (%d nodes, %d free)", len(m.nodes), m.freeCount)
	m.gcHistory = append(m.gcHistory, gcpoint{nodes: len(m.nodes), freenodes: int(m.freeCount)})

	for _, r := range m.protected {
		m.markrec(r)
	}
	for id := int32(1); id < int32(len(m.nodes)); id++ {
		if m.nodes[id].inuse && m.nodes[id].refcou > 0 {
			m.markrec(id)
		}
	}

	for _, t := range m.tables {
		t.reset()
	}
	m.freeHead = nilNode
	m.freeCount = 0

	for id := int32(len(m.nodes)) - 1; id >= 1; id-- {
		n := &m.nodes[id]
		if !n.inuse {
			n.next = m.freeHead
			m.freeHead = id
			m.freeCount++
			continue
		}
		if n.isTerminal() {
			// terminals are pinned at _MAXREFCOUNT and never swept
			n.mark = false
			continue
		}
		if n.mark {
			n.mark = false
			m.tables[n.index].insert(m.nodes, id)
			continue
		}
		for _, s := range n.sons {
			m.decRef(s)
		}
		m.free(id)
	}

	m.cache.removeUnused(m.nodes)
	m.gcCount++

	if int(m.freeCount)*100 < len(m.nodes)*m.minfreenodes {
		inc := len(m.nodes)
		if m.maxnodeincrease > 0 && inc > m.maxnodeincrease {
			inc = m.maxnodeincrease
		}
		if m.maxnodesize == 0 || len(m.nodes)+inc <= m.maxnodesize {
			m.growPool(inc)
			if m.cacheratio > 0 {
				m.cache.resize(len(m.nodes) * m.cacheratio / 100)
			}
		}
	}
	logf("end GC; free: %d", m.freeCount)
}

func (m *Manager) markrec(id int32) {
	n := &m.nodes[id]
	if n.mark || !n.inuse {
		return
	}
	n.mark = true
	for _, s := range n.sons {
		m.markrec(s)
	}
}

// ForceGC runs an immediate garbage collection regardless of pool
// occupancy. Mostly useful for tests and for Stats-driven diagnostics.
func (m *Manager) ForceGC() {
	m.reclaim()
}
