// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd_test

import (
	"fmt"
	"testing"

	teddy "github.com/go-mdd/teddy"
)

func Example_basic() {
	m, _ := teddy.NewBSS(4, 1000)
	x0 := m.Variable(0)
	x1 := m.Variable(1)
	x2 := m.Variable(2)
	n := m.Apply(teddy.OR, m.Apply(teddy.AND, x0, x1), x2)
	fmt.Printf("Number of sat. assignments is %s\n", m.SatisfyCount(n))
	// Output:
	// Number of sat. assignments is 10
}

func Example_satisfyAll() {
	m, _ := teddy.NewBSS(3, 1000)
	n := m.Apply(teddy.AND, m.Variable(0), m.Variable(1))
	count := 0
	m.SatisfyAll(n, func(values []int32) error {
		count++
		return nil
	})
	fmt.Println(count)
	// Output:
	// 2
}

func newBoolManager(t *testing.T, n int) (*teddy.Manager, []teddy.Diagram) {
	t.Helper()
	m, err := teddy.NewBSS(n, 1000)
	if err != nil {
		t.Fatalf("NewBSS: %v", err)
	}
	vars := make([]teddy.Diagram, n)
	for i := range vars {
		vars[i] = m.Variable(i)
	}
	return m, vars
}

// TestApplyCommutative checks that commutative operators
// give the same result regardless of operand order.
func TestApplyCommutative(t *testing.T) {
	m, v := newBoolManager(t, 2)
	for _, op := range []teddy.Operator{teddy.AND, teddy.OR, teddy.XOR, teddy.EQ} {
		a := m.Apply(op, v[0], v[1])
		b := m.Apply(op, v[1], v[0])
		if !a.Equal(b) {
			t.Errorf("%s is not commutative on these operands", op)
		}
	}
}

// TestApplyAssociative checks associativity of AND and OR.
func TestApplyAssociative(t *testing.T) {
	m, v := newBoolManager(t, 3)
	for _, op := range []teddy.Operator{teddy.AND, teddy.OR} {
		left := m.Apply(op, m.Apply(op, v[0], v[1]), v[2])
		right := m.Apply(op, v[0], m.Apply(op, v[1], v[2]))
		if !left.Equal(right) {
			t.Errorf("%s is not associative on these operands", op)
		}
	}
}

// TestApplyIdentity checks the identities x AND 1 == x and x OR 0 == x.
func TestApplyIdentity(t *testing.T) {
	m, v := newBoolManager(t, 1)
	one := m.Constant(1)
	zero := m.Constant(0)
	if !m.Apply(teddy.AND, v[0], one).Equal(v[0]) {
		t.Error("x AND 1 != x")
	}
	if !m.Apply(teddy.OR, v[0], zero).Equal(v[0]) {
		t.Error("x OR 0 != x")
	}
}

// TestApplyAnnihilator checks the annihilators x AND 0 == 0 and x OR 1 == 1.
func TestApplyAnnihilator(t *testing.T) {
	m, v := newBoolManager(t, 1)
	one := m.Constant(1)
	zero := m.Constant(0)
	if !m.Apply(teddy.AND, v[0], zero).Equal(zero) {
		t.Error("x AND 0 != 0")
	}
	if !m.Apply(teddy.OR, v[0], one).Equal(one) {
		t.Error("x OR 1 != 1")
	}
}

// TestApplyIdempotent checks x AND x == x and x OR x == x.
func TestApplyIdempotent(t *testing.T) {
	m, v := newBoolManager(t, 1)
	if !m.Apply(teddy.AND, v[0], v[0]).Equal(v[0]) {
		t.Error("x AND x != x")
	}
	if !m.Apply(teddy.OR, v[0], v[0]).Equal(v[0]) {
		t.Error("x OR x != x")
	}
}

// TestNegateInvolution checks that NOT(NOT(x)) == x.
func TestNegateInvolution(t *testing.T) {
	m, v := newBoolManager(t, 1)
	doubled := m.Negate(m.Negate(v[0]))
	if !doubled.Equal(v[0]) {
		t.Error("NOT(NOT(x)) != x")
	}
}

// TestDeMorgan checks De Morgan's law.
func TestDeMorgan(t *testing.T) {
	m, v := newBoolManager(t, 2)
	left := m.Negate(m.Apply(teddy.AND, v[0], v[1]))
	right := m.Apply(teddy.OR, m.Negate(v[0]), m.Negate(v[1]))
	if !left.Equal(right) {
		t.Error("NOT(x AND y) != NOT(x) OR NOT(y)")
	}
}

func TestMultiValuedComparisons(t *testing.T) {
	m, err := teddy.NewMSS(1, 4, 1000)
	if err != nil {
		t.Fatalf("NewMSS: %v", err)
	}
	x := m.Variable(0)
	three := m.Constant(3)
	less := m.Apply(teddy.LESS, x, three)
	for v := int32(0); v < 4; v++ {
		got := m.Evaluate(less, []int32{v})
		want := int32(0)
		if v < 3 {
			want = 1
		}
		if got != want {
			t.Errorf("Evaluate(x<3, x=%d) = %d, want %d", v, got, want)
		}
	}
}

func TestMultiValuedOr(t *testing.T) {
	m, err := teddy.NewMSS(1, 4, 1000)
	if err != nil {
		t.Fatalf("NewMSS: %v", err)
	}
	if got := m.Apply(teddy.OR, m.Constant(2), m.Constant(3)); !got.Equal(m.Constant(2)) {
		t.Error("OR(2, 3) should reduce to the constant 2")
	}
	x := m.Variable(0)
	f := m.Apply(teddy.OR, x, m.Constant(3))
	for v, want := range []int32{3, 1, 2, 3} {
		if got := m.Evaluate(f, []int32{int32(v)}); got != want {
			t.Errorf("Evaluate(x OR 3, x=%d) = %d, want %d", v, got, want)
		}
	}
}

func TestMinMaxSaturation(t *testing.T) {
	m, err := teddy.NewMSS(2, 3, 1000)
	if err != nil {
		t.Fatalf("NewMSS: %v", err)
	}
	x, y := m.Variable(0), m.Variable(1)
	max := m.Apply(teddy.MAX, x, y)
	if got := m.Evaluate(max, []int32{2, 1}); got != 2 {
		t.Errorf("MAX(2,1) = %d, want 2", got)
	}
	min := m.Apply(teddy.MIN, x, y)
	if got := m.Evaluate(min, []int32{0, 2}); got != 0 {
		t.Errorf("MIN(0,2) = %d, want 0", got)
	}
}

func TestRestrict(t *testing.T) {
	m, v := newBoolManager(t, 2)
	n := m.Apply(teddy.AND, v[0], v[1])
	restricted := m.Restrict(n, 0, 1)
	if !restricted.Equal(v[1]) {
		t.Error("(x0 AND x1) restricted to x0=1 should equal x1")
	}
	zero := m.Restrict(n, 0, 0)
	if !zero.Equal(m.Constant(0)) {
		t.Error("(x0 AND x1) restricted to x0=0 should equal constant 0")
	}
}
