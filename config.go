// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// configs stores the parameters used to build a Manager. It is populated by
// makeconfigs and then refined by the Option values passed to a constructor.
type configs struct {
	varcount        int     // number of variables (n)
	domains         []int32 // per-variable domain size D_i, len == varcount
	codomain        int32   // M, size of the output codomain
	order           []int   // initial variable order, order[level] = index
	nodesize        int     // initial capacity of the node pool
	overflow        int     // size of each additional overflow slab
	cachesize       int     // initial operation cache size
	cacheratio      int     // cache growth ratio (%) relative to the pool, 0 if fixed
	maxnodesize     int     // maximum total nodes (0 if unbounded)
	maxnodeincrease int     // maximum nodes added by a single resize (0 if unbounded)
	minfreenodes    int     // minimum free-node percentage required after a GC
	autoreorder     bool    // whether Apply triggers Sift automatically
}

// Option configures a Manager at construction time.
type Option func(*configs)

func makeconfigs(domains []int32, codomain int32) *configs {
	n := len(domains)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return &configs{
		varcount:        n,
		domains:         domains,
		codomain:        codomain,
		order:           order,
		nodesize:        2*n + 2,
		cachesize:       _DEFAULTCACHESIZE,
		minfreenodes:    _MINFREENODES,
		maxnodeincrease: _DEFAULTMAXNODEINC,
	}
}

// Order sets the initial variable order, as a permutation of variable
// indices from the root level downward: order[0] is the index held by level
// 0, order[1] the index at level 1, and so on. It must be a permutation of
// [0..n) or it is ignored.
func Order(order []int) Option {
	return func(c *configs) {
		if len(order) != c.varcount {
			return
		}
		seen := make([]bool, c.varcount)
		for _, idx := range order {
			if idx < 0 || idx >= c.varcount || seen[idx] {
				return
			}
			seen[idx] = true
		}
		c.order = append([]int(nil), order...)
	}
}

// Nodesize sets a preferred initial size for the node pool. The pool grows
// automatically as needed; this only avoids a few early resizes.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varcount+2 {
			c.nodesize = size
		}
	}
}

// Overflow sets the size of each additional slab appended to the node pool
// when it runs out of free nodes. The default is half of the initial pool
// size.
func Overflow(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.overflow = size
		}
	}
}

// Maxnodesize bounds the total number of nodes a manager can allocate. An
// operation that would grow the pool past this limit fails and records an
// error instead. The default, zero, means unbounded.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// Maxnodeincrease bounds how many nodes a single pool growth can add. The
// default is about a million nodes; zero removes the limit.
func Maxnodeincrease(size int) Option {
	return func(c *configs) {
		c.maxnodeincrease = size
	}
}

// Minfreenodes sets the percentage of free nodes that must remain after a
// garbage collection before the manager reuses the pool as-is; below this
// threshold the pool is grown instead. The default is 20%.
func Minfreenodes(ratio int) Option {
	return func(c *configs) {
		c.minfreenodes = ratio
	}
}

// Cachesize sets the initial number of entries in the operation cache. The
// default is 10 007 (a prime close to 10 000).
func Cachesize(size int) Option {
	return func(c *configs) {
		c.cachesize = size
	}
}

// Cacheratio sets a cache growth ratio (%) relative to the node pool: with a
// ratio of r, the cache keeps r entries for every 100 pool slots whenever the
// pool is resized. The default, zero, keeps the cache size fixed.
func Cacheratio(ratio int) Option {
	return func(c *configs) {
		c.cacheratio = ratio
	}
}

// AutoReorder enables automatic sifting: the manager calls Sift on its own
// whenever the node pool has grown by a set amount since the last reorder.
// Disabled by default, matching the Non-goal of no automatic variable-order
// deduction beyond what the caller explicitly requests.
func AutoReorder(on bool) Option {
	return func(c *configs) {
		c.autoreorder = on
	}
}
