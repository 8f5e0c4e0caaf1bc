// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"math"
	"math/big"
)

// SatisfyCount returns the number of full variable assignments for which d
// evaluates to a nonzero value other than Undefined, using arbitrary-precision arithmetic so the
// result never overflows regardless of variable count or domain sizes.
// Reduction means some diagrams skip variables entirely; every skipped
// variable multiplies the count by its domain size, since
// any of its values satisfies the function equally.
func (m *Manager) SatisfyCount(d Diagram) *big.Int {
	return m.CountWhere(d, func(v int32) bool { return v != 0 && v != Undefined })
}

// CountWhere returns the number of full variable assignments for which d
// evaluates to a value accepted by pred, using the same arbitrary-precision
// gap accounting as SatisfyCount.
func (m *Manager) CountWhere(d Diagram, pred func(v int32) bool) *big.Int {
	memo := make(map[int32]*big.Int)
	rootLevel := m.levelOfID(d.id)
	gap := m.domainProduct(0, rootLevel)
	return new(big.Int).Mul(gap, m.countWhere(d.id, pred, memo))
}

// SatisfyCountLn returns the natural logarithm of SatisfyCount(d), or
// negative infinity for the constant-0 diagram. Callers that only compare
// counts of very large systems can work in the log domain without ever
// materializing the full integer.
func (m *Manager) SatisfyCountLn(d Diagram) float64 {
	c := m.SatisfyCount(d)
	if c.Sign() == 0 {
		return math.Inf(-1)
	}
	mant := new(big.Float)
	exp := new(big.Float).SetInt(c).MantExp(mant)
	f, _ := mant.Float64()
	return math.Log(f) + float64(exp)*math.Ln2
}

// TotalAssignments returns the total number of full variable assignments
// over this manager's variable universe, i.e. the product of every
// variable's domain size.
func (m *Manager) TotalAssignments() *big.Int {
	return m.domainProduct(0, int32(m.varcount))
}

func (m *Manager) levelOfID(id int32) int32 {
	n := &m.nodes[id]
	if n.isTerminal() {
		return int32(m.varcount)
	}
	return m.indexToLevel[n.index]
}

// domainProduct returns the product of the domain sizes of the variables
// sitting at levels [from, to), i.e. how many distinct assignments of those
// variables exist.
func (m *Manager) domainProduct(from, to int32) *big.Int {
	p := big.NewInt(1)
	for l := from; l < to; l++ {
		p.Mul(p, big.NewInt(int64(m.domains[m.levelToIndex[l]])))
	}
	return p
}

func (m *Manager) countWhere(id int32, pred func(int32) bool, memo map[int32]*big.Int) *big.Int {
	n := &m.nodes[id]
	if n.isTerminal() {
		if pred(n.value) {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	if v, ok := memo[id]; ok {
		return v
	}
	lvl := m.indexToLevel[n.index]
	total := big.NewInt(0)
	for _, son := range n.sons {
		gap := m.domainProduct(lvl+1, m.levelOfID(son))
		contrib := new(big.Int).Mul(gap, m.countWhere(son, pred, memo))
		total.Add(total, contrib)
	}
	memo[id] = total
	return total
}

// SatisfyAll enumerates every full variable assignment for which d
// evaluates to a nonzero value other than Undefined, calling f once per assignment (indexed by
// variable index, not level) until f returns an error or every assignment
// has been produced. Variables a reduced diagram skips are enumerated over
// their entire domain, exactly as SatisfyCount counts them.
func (m *Manager) SatisfyAll(d Diagram, f func(assignment []int32) error) error {
	values := make([]int32, m.varcount)
	return m.satisfyAll(d.id, 0, values, f)
}

func (m *Manager) satisfyAll(id int32, level int32, values []int32, f func([]int32) error) error {
	n := &m.nodes[id]
	if level == int32(m.varcount) {
		if n.value != 0 && n.value != Undefined {
			return f(append([]int32(nil), values...))
		}
		return nil
	}
	index := m.levelToIndex[level]
	if !n.isTerminal() && n.index == index {
		for v, son := range n.sons {
			values[index] = int32(v)
			if err := m.satisfyAll(son, level+1, values, f); err != nil {
				return err
			}
		}
		return nil
	}
	// this level was reduced away below id: any value satisfies equally
	for v := int32(0); v < m.domains[index]; v++ {
		values[index] = v
		if err := m.satisfyAll(id, level+1, values, f); err != nil {
			return err
		}
	}
	return nil
}
