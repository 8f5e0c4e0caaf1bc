// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd_test

import (
	"math"
	"testing"

	teddy "github.com/go-mdd/teddy"
)

func TestNodeCount(t *testing.T) {
	m, v := newBoolManager(t, 2)
	f := m.Apply(teddy.AND, v[0], v[1])
	// root, the node testing variable 1, and the two terminals
	if got := m.NodeCount(f); got != 4 {
		t.Errorf("NodeCount = %d, want 4", got)
	}
}

func TestSatisfyCountLn(t *testing.T) {
	m, v := newBoolManager(t, 4)
	f := m.Apply(teddy.OR, m.Apply(teddy.AND, v[0], v[1]), v[2])
	want := math.Log(10)
	if got := m.SatisfyCountLn(f); math.Abs(got-want) > 1e-9 {
		t.Errorf("SatisfyCountLn = %g, want %g", got, want)
	}
	if got := m.SatisfyCountLn(m.Constant(0)); !math.IsInf(got, -1) {
		t.Errorf("SatisfyCountLn(constant 0) = %g, want -Inf", got)
	}
}

func TestForEachNodeByLevel(t *testing.T) {
	m, v := newBoolManager(t, 3)
	f := m.Apply(teddy.OR, m.Apply(teddy.AND, v[0], v[1]), v[2])
	last := int32(-1)
	m.ForEachNodeByLevel(f, func(id, level int32) {
		if level < last {
			t.Errorf("node %d at level %d visited after a node at level %d", id, level, last)
		}
		last = level
	})
}
