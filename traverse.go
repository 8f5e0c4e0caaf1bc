// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "sort"

// ForEachNode visits every node reachable from d exactly once, in
// post-order (every son is visited before its parent), calling terminal or
// internal as appropriate. It gives callers outside the package access to
// node structure (variable index, level, son ids), which is not otherwise
// exported; ForEachNodeByLevel and NodeCount are built on it.
func (m *Manager) ForEachNode(d Diagram, terminal func(id int32, value int32), internal func(id int32, index int32, level int32, sons []int32)) {
	seen := make(map[int32]bool)
	var walk func(id int32)
	walk = func(id int32) {
		if seen[id] {
			return
		}
		seen[id] = true
		n := &m.nodes[id]
		if n.isTerminal() {
			terminal(id, n.value)
			return
		}
		for _, s := range n.sons {
			walk(s)
		}
		internal(id, n.index, m.indexToLevel[n.index], n.sons)
	}
	walk(d.id)
}

// FoldPost computes a value bottom-up over the diagram rooted at d: leaf
// assigns a result to every terminal from its value, node combines a
// result for an internal node from its variable index and the
// already-computed results of its sons, in domain order. Each node is
// folded exactly once and the result memoized by id, so sharing in the DAG
// is preserved in the cost of the fold.
func FoldPost[T any](m *Manager, d Diagram, leaf func(value int32) T, node func(index int32, sons []T) T) T {
	memo := make(map[int32]T)
	var walk func(id int32) T
	walk = func(id int32) T {
		if v, ok := memo[id]; ok {
			return v
		}
		n := &m.nodes[id]
		var res T
		if n.isTerminal() {
			res = leaf(n.value)
		} else {
			sons := make([]T, len(n.sons))
			for k, s := range n.sons {
				sons[k] = walk(s)
			}
			res = node(n.index, sons)
		}
		memo[id] = res
		return res
	}
	return walk(d.id)
}

// ForEachNodeByLevel visits every node reachable from d in level order:
// shallower nodes (closer to the root) first, terminals last. Nodes on the
// same level are visited in discovery order.
func (m *Manager) ForEachNodeByLevel(d Diagram, f func(id int32, level int32)) {
	type entry struct{ id, level int32 }
	var all []entry
	m.ForEachNode(d,
		func(id, value int32) { all = append(all, entry{id, int32(m.varcount)}) },
		func(id, index, level int32, sons []int32) { all = append(all, entry{id, level}) })
	sort.SliceStable(all, func(i, j int) bool { return all[i].level < all[j].level })
	for _, e := range all {
		f(e.id, e.level)
	}
}

// NodeCount returns the number of distinct nodes (terminals included) in
// the DAG rooted at d.
func (m *Manager) NodeCount(d Diagram) int {
	count := 0
	m.ForEachNode(d,
		func(id, value int32) { count++ },
		func(id, index, level int32, sons []int32) { count++ })
	return count
}

// RootIndex returns the variable index tested at the root of d, or -1 if d
// is a terminal.
func (m *Manager) RootIndex(d Diagram) int32 {
	n := &m.nodes[d.id]
	if n.isTerminal() {
		return -1
	}
	return n.index
}
