// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "sort"

// Sift reorders every variable using Rudell's sifting heuristic: each
// variable, in turn, is walked from its current level to the top and then
// to the bottom (one adjacent swap at a time), and left at whichever level
// along that walk produced the fewest live nodes overall. The function any
// diagram represents is unchanged; only the total node count can shrink.
func (m *Manager) Sift() {
	logf("starting sift (%d nodes)", m.GetNodeCount())
	// Variables with the most nodes are sifted first: they are the ones
	// with the most to gain from a better position.
	order := make([]int32, m.varcount)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		return m.tables[order[i]].count > m.tables[order[j]].count
	})
	for _, index := range order {
		m.siftVariable(index)
	}
	logf("end sift (%d nodes)", m.GetNodeCount())
}

// siftVariable walks a single variable across every level, recording the
// node count seen at each position, then settles it back at the best one.
func (m *Manager) siftVariable(index int32) {
	start := m.indexToLevel[index]

	// A swap never frees the nodes it leaves dead, so collect them before
	// each count: positions are compared on live nodes only.
	liveCount := func() int {
		m.reclaim()
		return m.GetNodeCount()
	}

	best := liveCount()
	bestLevel := start

	level := start
	for level > 0 {
		m.swapAdjacent(level - 1)
		level--
		if n := liveCount(); n < best {
			best, bestLevel = n, level
		}
	}
	for level < int32(m.varcount)-1 {
		m.swapAdjacent(level)
		level++
		if n := liveCount(); n < best {
			best, bestLevel = n, level
		}
	}
	for level > bestLevel {
		m.swapAdjacent(level - 1)
		level--
	}
}
