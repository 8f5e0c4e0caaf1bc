// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// swapAdjacent exchanges the variables sitting at level and level+1,
// rebuilding every node at level so that it tests the variable that used to
// be one level below, and vice versa. The function the diagram represents
// never changes; only the node count used to represent it does, which is
// exactly what sifting (sift.go) is probing for.
//
// The algorithm rebuilds, for every node n currently indexed by the
// shallower variable x that actually depends on the deeper variable y, a
// cofactor matrix C[p][q]: row p ranges over n's own sons, column q ranges
// over y's domain. Column q becomes a new x-indexed node (the "new
// low/high" in the classical binary case); n itself is mutated in place to
// test y and point at these new columns. Nodes at x that do not depend on
// y are independent of the exchange and stay exactly as they are. This
// keeps every node id stable across the swap, which matters because
// external Diagram handles only ever remember an id.
func (m *Manager) swapAdjacent(level int32) {
	x := m.levelToIndex[level]
	y := m.levelToIndex[level+1]
	a := m.domains[x]
	b := m.domains[y]

	ids := m.tables[x].allIDs(m.nodes)
	m.tables[x].reset()

	// Growth must not trigger a mark-sweep pass while the snapshot above is
	// pending: a collection would reinsert (or reclaim) nodes that have been
	// taken out of their table but not yet rebuilt.
	m.reordering = true

	// Independent nodes go back into the table first, so that a column
	// built below can find them instead of duplicating one.
	var dependent []int32
	for _, id := range ids {
		if m.dependsOn(id, y) {
			dependent = append(dependent, id)
		} else {
			m.tables[x].insert(m.nodes, id)
		}
	}
	for _, id := range dependent {
		oldSons := m.nodes[id].sons

		// A freshly built column has nothing pointing at it until newSons
		// is wired into the node further down; push each one onto the
		// protected stack as it is built so a pool growth triggered by a
		// later makeInternal call cannot lose track of it.
		base := len(m.protected)
		newSons := make([]int32, b)
		for q := int32(0); q < b; q++ {
			col := make([]int32, a)
			for p := int32(0); p < a; p++ {
				son := oldSons[p]
				sn := &m.nodes[son]
				if !sn.isTerminal() && sn.index == y {
					col[p] = sn.sons[q]
				} else {
					col[p] = son
				}
			}
			newSons[q] = m.makeInternal(x, col)
			m.protected = append(m.protected, newSons[q])
		}
		m.protected = m.protected[:base]

		for _, s := range oldSons {
			m.decRef(s)
		}
		for _, s := range newSons {
			m.incRef(s)
		}

		// makeInternal may have grown the pool, so the pointer into the
		// node slice must be taken after the columns are built.
		n := &m.nodes[id]
		n.index = y
		n.sons = newSons
		m.tables[y].insert(m.nodes, id)
	}

	m.reordering = false

	m.levelToIndex[level], m.levelToIndex[level+1] = y, x
	m.indexToLevel[x], m.indexToLevel[y] = level+1, level
}

// dependsOn reports whether any son of the node tests the variable with
// the given index.
func (m *Manager) dependsOn(id int32, index int32) bool {
	for _, s := range m.nodes[id].sons {
		sn := &m.nodes[s]
		if !sn.isTerminal() && sn.index == index {
			return true
		}
	}
	return false
}

// allIDs collects every live node id currently chained in the table; used
// by swapAdjacent, which must snapshot the set before mutating it (the
// table is rebuilt in place as a side effect of relocating its entries).
func (u *uniqueTable) allIDs(nodes []node) []int32 {
	ids := make([]int32, 0, u.count)
	for _, head := range u.buckets {
		for id := head; id != nilNode; id = nodes[id].next {
			ids = append(ids, id)
		}
	}
	return ids
}
