// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reliability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	teddy "github.com/go-mdd/teddy"
	"github.com/go-mdd/teddy/reliability"
)

func uniform(m *teddy.Manager) reliability.Probabilities {
	p := make(reliability.Probabilities, m.Varcount())
	for i := range p {
		domain := m.Domain(i)
		row := make([]float64, domain)
		for k := range row {
			row[k] = 1 / float64(domain)
		}
		p[i] = row
	}
	return p
}

// TestAvailabilityComplement checks that availability(j) +
// unavailability(j) = 1 modulo floating error.
func TestAvailabilityComplement(t *testing.T) {
	m, err := teddy.NewMSS(3, 3, 1000)
	require.NoError(t, err)
	x, y, z := m.Variable(0), m.Variable(1), m.Variable(2)
	d := m.Apply(teddy.MAX, m.Apply(teddy.MIN, x, y), z)
	p := uniform(m)

	for j := int32(0); j < 3; j++ {
		a := reliability.Availability(m, d, j, p)
		u := reliability.Unavailability(m, d, j, p)
		require.InDelta(t, 1.0, a+u, 1e-8)
	}
}

// TestStateFrequencyMatchesDefinition checks that StateFrequency
// equals the structural fraction of assignments mapping to that state.
func TestStateFrequencyMatchesDefinition(t *testing.T) {
	m, err := teddy.NewBSS(3, 1000)
	require.NoError(t, err)
	d := m.Apply(teddy.AND, m.Variable(0), m.Variable(1))

	freq1 := reliability.StateFrequency(m, d, 1)
	count := m.CountWhere(d, func(v int32) bool { return v == 1 })
	total := m.TotalAssignments()
	want := float64(count.Int64()) / float64(total.Int64())
	require.InDelta(t, want, freq1, 1e-9)
}

// TestProbabilitySumsToOne checks that the probabilities over
// every system state must sum to 1.
func TestProbabilitySumsToOne(t *testing.T) {
	m, err := teddy.NewMSS(2, 3, 1000)
	require.NoError(t, err)
	x, y := m.Variable(0), m.Variable(1)
	d := m.Apply(teddy.MAX, x, y)
	p := uniform(m)

	sum := 0.0
	for j := int32(0); j < m.Codomain(); j++ {
		sum += reliability.Probability(m, d, j, p)
	}
	require.InDelta(t, 1.0, sum, 1e-8)
}

func TestDPLDDetectsCriticalComponent(t *testing.T) {
	m, err := teddy.NewBSS(2, 1000)
	require.NoError(t, err)
	d := m.Apply(teddy.AND, m.Variable(0), m.Variable(1))

	// Component 0 going from 0 to 1 is critical exactly when component 1 is
	// already 1: the system then crosses the boundary state j=1.
	deriv := reliability.DPLD(m, d, 0, 0, 1, 1)
	require.EqualValues(t, 0, m.Evaluate(deriv, []int32{0, 0}))
	require.EqualValues(t, 1, m.Evaluate(deriv, []int32{0, 1}))
}

func TestStructuralImportanceOfSeriesSystem(t *testing.T) {
	m, err := teddy.NewBSS(2, 1000)
	require.NoError(t, err)
	d := m.Apply(teddy.AND, m.Variable(0), m.Variable(1))
	si := reliability.StructuralImportance(m, d, 0, 0, 1, 1)
	// exactly one of the two values of the other component makes component
	// 0 critical, out of its two possible values.
	require.InDelta(t, 0.5, si, 1e-9)
}

