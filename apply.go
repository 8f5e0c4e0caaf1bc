// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// Apply combines two diagrams with a binary operator, returning a fresh
// external handle on the result. Both diagrams must come from this
// manager.
func (m *Manager) Apply(op Operator, l, r Diagram) Diagram {
	if l.m != m || r.m != m {
		m.seterror("apply: diagram belongs to a different manager")
		return m.newHandle(m.makeTerminal(Undefined))
	}
	m.protected = m.protected[:0]
	res := m.apply(op, l.id, r.id)
	d := m.newHandle(res)
	m.maybeAutoReorder()
	return d
}

// maybeAutoReorder runs Sift when AutoReorder is enabled and the node pool
// has doubled in size since the last reorder.
func (m *Manager) maybeAutoReorder() {
	if !m.autoreorder {
		return
	}
	if len(m.nodes) < 2*m.reorderCheckpoint {
		return
	}
	m.Sift()
	m.reorderCheckpoint = len(m.nodes)
}

// apply is the recursive core of the operator. It mirrors Shannon's
// expansion theorem generalized to an arbitrary-arity domain: at the
// shallower of the two operand levels, it recurses once per value of that
// variable's domain, then reduces and canonicalizes the results into one
// node.
func (m *Manager) apply(op Operator, l, r int32) int32 {
	if m.err != nil {
		return m.undefID
	}
	lNode, rNode := &m.nodes[l], &m.nodes[r]
	if lNode.isTerminal() && rNode.isTerminal() {
		return m.makeTerminal(applyOp(op, lNode.value, rNode.value, m.codomain))
	}

	key1, key2 := l, r
	if commutative[op] && key1 > key2 {
		key1, key2 = key2, key1
	}
	if res, ok := m.cache.find(op, key1, key2); ok {
		return res
	}

	lv := m.level(lNode)
	rv := m.level(rNode)
	top := mini32(lv, rv)
	index := m.levelToIndex[top]
	d := m.domains[index]

	sons := make([]int32, d)
	m.protected = append(m.protected, l, r)
	base := len(m.protected)
	for k := int32(0); k < d; k++ {
		lk, rk := l, r
		if lv == top {
			lk = lNode.sons[k]
		}
		if rv == top {
			rk = rNode.sons[k]
		}
		sons[k] = m.apply(op, lk, rk)
		if m.err != nil {
			m.protected = m.protected[:base-2]
			return m.undefID
		}
		m.protected = append(m.protected, sons[k])
	}
	res := m.makeInternal(index, sons)
	m.protected = m.protected[:base-2]

	m.cache.put(op, key1, key2, res)
	return res
}

// level returns the level of a node, pool-wide: internal nodes use their
// variable's current level, terminals sit one level below the deepest
// variable (at level == varcount).
func (m *Manager) level(n *node) int32 {
	if n.isTerminal() {
		return int32(m.varcount)
	}
	return m.indexToLevel[n.index]
}

// ApplyN folds a binary operator left-to-right over a sequence of
// diagrams. It panics if diagrams is empty.
func (m *Manager) ApplyN(op Operator, diagrams ...Diagram) Diagram {
	acc := diagrams[0]
	for _, d := range diagrams[1:] {
		acc = m.Apply(op, acc, d)
	}
	return acc
}

// TreeFold folds a binary operator over a sequence of diagrams pairwise, in
// O(log n) passes rather than ApplyN's O(n) left fold. For an associative,
// commutative operator the two give the same result; TreeFold tends to
// build smaller intermediate diagrams because structurally similar operands
// are combined earlier.
func (m *Manager) TreeFold(op Operator, diagrams ...Diagram) Diagram {
	level := append([]Diagram(nil), diagrams...)
	for len(level) > 1 {
		next := make([]Diagram, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, m.Apply(op, level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0]
}
