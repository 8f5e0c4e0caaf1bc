// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"errors"
	"math"
)

// Undefined (the bottom sentinel) marks a result that is explicitly outside
// the declared codomain of a manager: "no defined output for this input".
// It sits at the high end of the int32 range, far above any value a manager
// with a realistic codomain M will ever produce, so it can never collide
// with a legitimate user value.
const Undefined int32 = math.MaxInt32

// Nondetermined marks a result that several operators (equality and order
// comparisons, the modular arithmetic operators, IMPLIES outside of {0,1})
// refuse to determine because at least one operand already carries a
// sentinel. It is distinct from Undefined: Undefined means "no answer was
// ever defined here", Nondetermined means "an answer exists in principle but
// this operator cannot derive it from its current operands".
const Nondetermined int32 = math.MaxInt32 - 1

// leafIndex tags a node as a terminal. Terminal nodes store their payload in
// value and carry a nil sons slice; level (apply.go) treats them as sitting at the
// manager's leaf level (equal to its variable count n).
const leafIndex int32 = -1

// _MAXVAR bounds the number of variables a single manager can declare.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the saturating ceiling of a node's reference counter.
// Nodes that must never be reclaimed (terminals) are pinned at this value.
const _MAXREFCOUNT int32 = 0x3FFFFFFF

// _MINFREENODES is the minimal percentage of free nodes that must remain in
// the pool after a garbage collection; below this threshold the pool grows
// instead of being reused as-is.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC bounds how many nodes a single pool growth can add.
const _DEFAULTMAXNODEINC int = 1 << 20

// _DEFAULTCACHESIZE is the operation cache size used when a manager is built
// without an explicit Cachesize option.
const _DEFAULTCACHESIZE int = 10007

// firstTableSize is the initial bucket count of a freshly created
// per-variable unique table.
const firstTableSize int = 307

// loadFactorPercent is the load factor (as a percentage of buckets in use)
// that triggers a rehash of a unique table. The operation cache does not
// rehash on load; it only changes size through Cacheratio.
const loadFactorPercent = 75

var errMemory = errors.New("unable to free memory or grow the node pool")
