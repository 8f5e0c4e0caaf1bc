// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"
	"runtime"
)

// Manager owns a node pool, one unique table per variable, an operation
// cache, and the bookkeeping needed to move variables between levels. All
// diagrams built from the same Manager share structure through the unique
// tables; diagrams from different managers are never comparable.
type Manager struct {
	varcount int
	domains  []int32 // per-variable domain size, indexed by variable index
	codomain int32   // M

	levelToIndex []int32 // level -> variable index currently at that level
	indexToLevel []int32 // variable index -> current level

	nodes     []node
	freeHead  int32
	freeCount int32

	tables []*uniqueTable  // indexed by variable index
	terms  map[int32]int32 // terminal value -> node id

	cache      *opCache
	cacheratio int

	protected []int32 // transient ref stack, protects nodes mid-construction from GC

	overflow        int // capacity of each overflow slab appended to the pool
	maxnodesize     int
	maxnodeincrease int
	minfreenodes    int
	autoreorder     bool

	allocCount int64
	gcCount    int
	gcHistory  []gcpoint

	reorderCheckpoint int
	reordering        bool

	// undefID is the terminal for Undefined, created at construction so
	// every failure path has a valid node id to return.
	undefID int32

	err error
}

func newManager(c *configs) (*Manager, error) {
	n := c.varcount
	if int32(n) > _MAXVAR {
		return nil, fmt.Errorf("too many variables (%d, max %d)", n, _MAXVAR)
	}
	if c.codomain < 2 || c.codomain >= Nondetermined {
		return nil, fmt.Errorf("codomain size %d out of range", c.codomain)
	}
	for i, d := range c.domains {
		if d < 2 {
			return nil, fmt.Errorf("variable %d has domain size %d, need at least 2", i, d)
		}
	}
	overflow := c.overflow
	if overflow <= 0 {
		overflow = c.nodesize / 2
		if overflow < 16 {
			overflow = 16
		}
	}
	m := &Manager{
		varcount:        n,
		domains:         append([]int32(nil), c.domains...),
		codomain:        c.codomain,
		levelToIndex:    append([]int32(nil), int32Slice(c.order)...),
		indexToLevel:    make([]int32, n),
		tables:          make([]*uniqueTable, n),
		terms:           make(map[int32]int32),
		cache:           newOpCache(c.cachesize),
		cacheratio:      c.cacheratio,
		overflow:        overflow,
		maxnodesize:     c.maxnodesize,
		maxnodeincrease: c.maxnodeincrease,
		minfreenodes:    c.minfreenodes,
		autoreorder:     c.autoreorder,
	}
	for level, index := range m.levelToIndex {
		m.indexToLevel[index] = int32(level)
	}
	for i := 0; i < n; i++ {
		m.tables[i] = newUniqueTable(firstTableSize)
	}
	m.growPool(c.nodesize)
	// node id 0 is reserved invalid; allocate and discard it so that real
	// ids start at 1.
	m.alloc()
	m.undefID = m.makeTerminal(Undefined)
	m.reorderCheckpoint = len(m.nodes)
	return m, nil
}

func int32Slice(a []int) []int32 {
	r := make([]int32, len(a))
	for i, v := range a {
		r[i] = int32(v)
	}
	return r
}

// Varcount returns the number of declared variables.
func (m *Manager) Varcount() int { return m.varcount }

// Codomain returns the size M of the output codomain.
func (m *Manager) Codomain() int32 { return m.codomain }

// Domain returns the domain size of the variable with the given index.
func (m *Manager) Domain(index int) int32 { return m.domains[index] }

// Level returns the current level of the variable with the given index.
func (m *Manager) Level(index int) int32 { return m.indexToLevel[index] }

// Index returns the variable index currently sitting at the given level.
func (m *Manager) Index(level int32) int32 { return m.levelToIndex[level] }

// Order returns the current variable order as order[level] = index.
func (m *Manager) Order() []int32 { return append([]int32(nil), m.levelToIndex...) }

// GetNodeCount returns the number of live (allocated, in-use) nodes.
func (m *Manager) GetNodeCount() int {
	return len(m.nodes) - int(m.freeCount) - 1 // -1 for the reserved id 0
}

// SetAutoReorder switches automatic sifting on or off at runtime; see the
// AutoReorder construction option.
func (m *Manager) SetAutoReorder(on bool) {
	m.autoreorder = on
	if on {
		m.reorderCheckpoint = len(m.nodes)
	}
}

// SetCacheRatio changes the operation cache growth ratio (%) relative to
// the node pool and resizes the cache accordingly right away; see the
// Cacheratio construction option.
func (m *Manager) SetCacheRatio(ratio int) {
	m.cacheratio = ratio
	if ratio > 0 {
		m.cache.resize(len(m.nodes) * ratio / 100)
	}
}

// SetGCRatio changes the percentage of free nodes that must remain after a
// garbage collection before the pool is reused as-is; below it the pool
// grows instead. See the Minfreenodes construction option.
func (m *Manager) SetGCRatio(ratio int) {
	m.minfreenodes = ratio
}

// makeTerminal returns the (shared) terminal node for value v, creating it
// on first use. Terminal nodes are pinned at _MAXREFCOUNT: they live for
// the lifetime of the manager.
func (m *Manager) makeTerminal(v int32) int32 {
	if id, ok := m.terms[v]; ok {
		return id
	}
	id := m.alloc()
	if m.err != nil {
		return m.undefID
	}
	n := &m.nodes[id]
	n.index = leafIndex
	n.value = v
	n.sons = nil
	n.refcou = _MAXREFCOUNT
	m.terms[v] = id
	return id
}

// makeInternal canonicalizes an internal node at the given variable index
// with the given son tuple: if every son is identical the node reduces away
// and its single son is returned (ref-neutral); otherwise the unique table
// for that index is consulted, returning a shared node on a hit or building
// a fresh one on a miss. On a miss, the son reference counts are each
// incremented by one: the new node becomes a parent of each of its sons.
func (m *Manager) makeInternal(index int32, sons []int32) int32 {
	if allEqual(sons) {
		return sons[0]
	}
	if id, ok := m.tables[index].find(m.nodes, index, sons); ok {
		return id
	}
	id := m.alloc()
	if m.err != nil {
		return m.undefID
	}
	// alloc() may have triggered a GC, which can invalidate previously
	// computed son ids only if they had a zero reference count and were
	// not protected; apply.go always pushes operands onto the protected
	// stack before recursing, so sons here are guaranteed live.
	n := &m.nodes[id]
	n.index = index
	n.sons = append([]int32(nil), sons...)
	n.refcou = 0
	m.tables[index].insert(m.nodes, id)
	for _, s := range n.sons {
		m.incRef(s)
	}
	return id
}

func allEqual(sons []int32) bool {
	for i := 1; i < len(sons); i++ {
		if sons[i] != sons[0] {
			return false
		}
	}
	return true
}

func (m *Manager) incRef(id int32) {
	n := &m.nodes[id]
	if n.refcou < _MAXREFCOUNT {
		n.refcou++
	}
}

func (m *Manager) decRef(id int32) {
	n := &m.nodes[id]
	if n.refcou > 0 && n.refcou < _MAXREFCOUNT {
		n.refcou--
	}
}

// newHandle wraps a node id into an externally-visible Diagram, bumping its
// reference count and arranging for the count to drop again once the
// handle becomes unreachable to the Go runtime. Diagram is itself a pointer
// type so the finalizer is tied to exactly the object the caller holds,
// not to a copy of it.
func (m *Manager) newHandle(id int32) Diagram {
	m.incRef(id)
	d := &diagramHandle{id: id, m: m}
	runtime.SetFinalizer(d, func(d *diagramHandle) {
		m.decRef(d.id)
	})
	return d
}
