// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import "fmt"

// NewBSS creates a manager for a Boolean structure function: n variables,
// each with domain {0, 1}, codomain {0, 1}. "BSS" names the binary single
// -state flavor (bss_manager in the originating reliability literature).
func NewBSS(n, poolsize int, opts ...Option) (*Manager, error) {
	domains := make([]int32, n)
	for i := range domains {
		domains[i] = 2
	}
	return newManagerWithDomains(domains, 2, poolsize, opts)
}

// NewMSS creates a manager for a homogeneous multi-state structure
// function: n variables, every one with the same domain size m, codomain m.
func NewMSS(n int, m int32, poolsize int, opts ...Option) (*Manager, error) {
	domains := make([]int32, n)
	for i := range domains {
		domains[i] = m
	}
	return newManagerWithDomains(domains, m, poolsize, opts)
}

// NewIMSS creates a manager for an inhomogeneous (mixed-domain) multi-state
// structure function: domains gives each variable's own domain size, and
// the codomain is taken to be the largest of them.
func NewIMSS(domains []int32, poolsize int, opts ...Option) (*Manager, error) {
	codomain := int32(0)
	for _, d := range domains {
		if d > codomain {
			codomain = d
		}
	}
	return newManagerWithDomains(domains, codomain, poolsize, opts)
}

// NewIFMSS creates a manager for a mixed-domain structure function with an
// explicit, possibly larger, fixed upper bound on the codomain.
func NewIFMSS(domains []int32, m int32, poolsize int, opts ...Option) (*Manager, error) {
	return newManagerWithDomains(domains, m, poolsize, opts)
}

func newManagerWithDomains(domains []int32, codomain int32, poolsize int, opts []Option) (*Manager, error) {
	c := makeconfigs(domains, codomain)
	c.nodesize = poolsize
	for _, opt := range opts {
		opt(c)
	}
	return newManager(c)
}

// Variable returns the diagram for "the value of variable index", i.e. the
// node whose k-th son is the terminal k, for k in [0..domain(index)).
func (m *Manager) Variable(index int) Diagram {
	d := m.domains[index]
	sons := make([]int32, d)
	for k := int32(0); k < d; k++ {
		sons[k] = m.makeTerminal(k)
	}
	id := m.makeInternal(int32(index), sons)
	return m.newHandle(id)
}

// Constant returns the diagram for the constant function returning v.
func (m *Manager) Constant(v int32) Diagram {
	return m.newHandle(m.makeTerminal(v))
}

// Negate returns NOT(d), defined only over the Boolean codomain {0,1}: it is
// shorthand for Apply(XOR, d, Constant(1)).
func (m *Manager) Negate(d Diagram) Diagram {
	return m.Apply(XOR, d, m.Constant(1))
}

// Evaluate computes the value of the function represented by d at the
// point given by values (values[i] is the value assigned to variable i). It
// returns Undefined if a value read along the path from the root is outside
// its variable's domain; values of variables the path does not test are not
// checked.
func (m *Manager) Evaluate(d Diagram, values []int32) int32 {
	return m.evaluateID(d.id, values)
}

// Stats returns a short textual summary of the manager: node pool
// occupancy, GC history, and operation cache hit ratio.
func (m *Manager) Stats() string {
	res := fmt.Sprintf("Varcount:   %d\n", m.varcount)
	res += fmt.Sprintf("Allocated:  %d\n", len(m.nodes))
	res += fmt.Sprintf("Produced:   %d\n", m.allocCount)
	free := float64(m.freeCount) / float64(len(m.nodes)) * 100
	res += fmt.Sprintf("Free:       %d  (%.3g %%)\n", m.freeCount, free)
	res += fmt.Sprintf("Used:       %d  (%.3g %%)\n", m.GetNodeCount(), 100.0-free)
	res += fmt.Sprintf("# of GC:    %d\n", m.gcCount)
	res += "==============\n"
	res += "Cache: " + m.cache.String() + "\n"
	return res
}
