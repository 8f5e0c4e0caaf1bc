// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package reliability layers the usual multi-state reliability derivations
// on top of a diagram: component/system state probabilities, availability
// and unavailability at a boundary state, state frequency, and the
// structural and Birnbaum importance measures built from the direct
// partial logic derivative (DPLD) of a structure function.
package reliability

import (
	"math/big"

	teddy "github.com/go-mdd/teddy"
)

// Probabilities gives, for each component (variable index), the
// probability of each of its states: Probabilities[i][k] is the
// probability that component i is in state k. Every row must sum to 1.
type Probabilities [][]float64

// SymbolicProbability returns, for every system state 0..M-1, the
// probability that the structure function d evaluates to that state, given
// component state probabilities p. The computation is a single bottom-up
// sum-of-products pass over the shared DAG, in ordinary floating point;
// PreciseAvailability is the arbitrary-precision variant.
func SymbolicProbability(m *teddy.Manager, d teddy.Diagram, p Probabilities) []float64 {
	codomain := int(m.Codomain())
	return teddy.FoldPost(m, d,
		func(value int32) []float64 {
			v := make([]float64, codomain)
			if value >= 0 && int(value) < codomain {
				v[value] = 1
			}
			return v
		},
		func(index int32, sons [][]float64) []float64 {
			v := make([]float64, codomain)
			probs := p[index]
			for k, son := range sons {
				w := probs[k]
				if w == 0 {
					continue
				}
				for s := range v {
					v[s] += w * son[s]
				}
			}
			return v
		})
}

// Probability returns the probability that d evaluates to state j.
func Probability(m *teddy.Manager, d teddy.Diagram, j int32, p Probabilities) float64 {
	return SymbolicProbability(m, d, p)[j]
}

// Availability returns the probability that d evaluates to at least state
// j, the usual multi-state reliability reading of "available at level j or
// better".
func Availability(m *teddy.Manager, d teddy.Diagram, j int32, p Probabilities) float64 {
	probs := SymbolicProbability(m, d, p)
	total := 0.0
	for s := int(j); s < len(probs); s++ {
		total += probs[s]
	}
	return total
}

// Unavailability is 1 - Availability(j): the probability that d evaluates
// to a state strictly below j.
func Unavailability(m *teddy.Manager, d teddy.Diagram, j int32, p Probabilities) float64 {
	return 1 - Availability(m, d, j, p)
}

// PreciseAvailability is the arbitrary-precision counterpart of
// Availability, used when the caller needs a result immune to
// floating-point drift (e.g. summing many components each close to 0 or
// 1). The algorithm is the same bottom-up sum-of-products pass, carried
// out on big.Float values instead of float64.
func PreciseAvailability(m *teddy.Manager, d teddy.Diagram, j int32, p Probabilities) *big.Float {
	codomain := int(m.Codomain())
	vec := teddy.FoldPost(m, d,
		func(value int32) []*big.Float {
			v := make([]*big.Float, codomain)
			for i := range v {
				v[i] = big.NewFloat(0)
			}
			if value >= 0 && int(value) < codomain {
				v[value] = big.NewFloat(1)
			}
			return v
		},
		func(index int32, sons [][]*big.Float) []*big.Float {
			v := make([]*big.Float, codomain)
			for i := range v {
				v[i] = big.NewFloat(0)
			}
			probs := p[index]
			for k, son := range sons {
				w := big.NewFloat(probs[k])
				for s := range v {
					v[s].Add(v[s], new(big.Float).Mul(w, son[s]))
				}
			}
			return v
		})
	total := big.NewFloat(0)
	for s := int(j); s < len(vec); s++ {
		total.Add(total, vec[s])
	}
	return total
}

// StateFrequency returns |{x : f(x) = j}| / |D|, the structural (not
// probabilistic) fraction of the full assignment space that maps to state
// j. Unlike Probability, this assumes every assignment equally likely.
func StateFrequency(m *teddy.Manager, d teddy.Diagram, j int32) float64 {
	count := m.CountWhere(d, func(v int32) bool { return v == j })
	total := m.TotalAssignments()
	ratio := new(big.Float).Quo(new(big.Float).SetInt(count), new(big.Float).SetInt(total))
	f, _ := ratio.Float64()
	return f
}

// DPLD computes the direct partial logic derivative of d with respect to
// component i's transition from state a to state b: the diagram, over the
// remaining variables, of "changing component i from a to b changes the
// system state from one boundary side of j to the other". Concretely it is
// 1 wherever restricting i to a yields a value below j and restricting i to
// b yields a value at or above j.
func DPLD(m *teddy.Manager, d teddy.Diagram, index int, a, b int32, j int32) teddy.Diagram {
	lo := m.Restrict(d, index, a)
	hi := m.Restrict(d, index, b)
	below := teddyLess(m, lo, j)
	atOrAbove := teddyGreaterEq(m, hi, j)
	return m.Apply(teddy.AND, below, atOrAbove)
}

func teddyLess(m *teddy.Manager, d teddy.Diagram, j int32) teddy.Diagram {
	return m.Apply(teddy.LESS, d, m.Constant(j))
}

func teddyGreaterEq(m *teddy.Manager, d teddy.Diagram, j int32) teddy.Diagram {
	return m.Apply(teddy.GREATEREQ, d, m.Constant(j))
}

// StructuralImportance is the fraction of assignments to every component
// other than i for which flipping component i from a to b moves the system
// across the boundary state j, i.e. the structural (uniform-probability)
// reading of Birnbaum's importance measure.
func StructuralImportance(m *teddy.Manager, d teddy.Diagram, index int, a, b int32, j int32) float64 {
	deriv := DPLD(m, d, index, a, b, j)
	count := m.CountWhere(deriv, func(v int32) bool { return v != 0 })
	total := m.TotalAssignments()
	ratio := new(big.Float).Quo(new(big.Float).SetInt(count), new(big.Float).SetInt(total))
	f, _ := ratio.Float64()
	return f
}

// BirnbaumImportance is the probabilistic counterpart of
// StructuralImportance: the probability, under the given component state
// probabilities, that the remaining components sit in a configuration
// where flipping component i from a to b crosses the boundary state j.
func BirnbaumImportance(m *teddy.Manager, d teddy.Diagram, index int, a, b int32, j int32, p Probabilities) float64 {
	deriv := DPLD(m, d, index, a, b, j)
	// The derivative no longer depends on component index, so the fold
	// never reads that component's probability row.
	return Probability(m, deriv, 1, p)
}
