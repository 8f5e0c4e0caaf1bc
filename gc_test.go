// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd_test

import (
	"runtime"
	"testing"

	teddy "github.com/go-mdd/teddy"
)

// TestForceGCReclaimsUnreachable checks that a forced collection after a
// result is discarded does not grow the live node count, and that a
// diagram still referenced keeps evaluating correctly.
func TestForceGCReclaimsUnreachable(t *testing.T) {
	m, v := newBoolManager(t, 3)
	kept := m.Apply(teddy.AND, v[0], v[1])
	_ = m.Apply(teddy.OR, v[0], v[2]) // result discarded, becomes garbage

	before := m.GetNodeCount()
	runtime.GC() // run finalizers for the discarded diagram handle
	runtime.GC()
	m.ForceGC()
	after := m.GetNodeCount()

	if after > before {
		t.Errorf("node count grew after ForceGC: %d -> %d", before, after)
	}
	if m.Evaluate(kept, []int32{1, 1, 0}) != 1 {
		t.Error("ForceGC invalidated a diagram that was still referenced")
	}
}

// TestSiftPreservesEvaluation checks sifting invariance on a smaller diagram than
// the dedicated sifting-invariance scenario, exercising sifting after a
// ForceGC has already run once.
func TestSiftPreservesEvaluation(t *testing.T) {
	m, v := newBoolManager(t, 4)
	f := m.Apply(teddy.OR,
		m.Apply(teddy.AND, v[0], v[1]),
		m.Apply(teddy.AND, v[2], v[3]))
	m.ForceGC()

	assignments := [][]int32{
		{0, 0, 0, 0}, {1, 1, 0, 0}, {0, 0, 1, 1}, {1, 0, 1, 0}, {1, 1, 1, 1},
	}
	before := make([]int32, len(assignments))
	for i, a := range assignments {
		before[i] = m.Evaluate(f, a)
	}

	m.Sift()

	for i, a := range assignments {
		if got := m.Evaluate(f, a); got != before[i] {
			t.Errorf("assignment %v: before=%d after=%d", a, before[i], got)
		}
	}
	checkInvariants(t, m, f)
}

// TestSiftStableRootForUnrelatedHandle checks that sifting leaves the root of
// a handle that depends on no other variable testing the same variable
// index.
func TestSiftStableRootForUnrelatedHandle(t *testing.T) {
	m, v := newBoolManager(t, 3)
	f := v[0] // root tests only variable 0
	rootBefore := m.RootIndex(f)

	m.Sift()

	rootAfter := m.RootIndex(f)
	if rootBefore != rootAfter {
		t.Errorf("root variable index changed from %d to %d after sifting", rootBefore, rootAfter)
	}
}
