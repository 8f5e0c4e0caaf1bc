// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package mdd implements reduced ordered multi-valued decision diagrams
(MDD), a canonical, shared representation of functions over a fixed,
ordered set of finite-domain variables. Binary decision diagrams (BDD) are
the special case where every variable has domain {0, 1}.

Basics

A Manager owns a fixed variable universe, declared when it is created
(see NewBSS, NewMSS, NewIMSS, NewIFMSS), plus a fixed output codomain of
size M. Each variable has an index in [0..n) and a current level given by
the manager's variable order; the order can change at runtime (see Sift)
without changing any index. Diagrams are built by composing variables and
constants with Apply, and are returned as a Diagram: a handle carrying a
node id, tied to the manager that produced it.

Canonicity and sharing

Two structurally identical sub-diagrams are always the same node: a
per-variable unique table hash-conses every internal node on creation, so
equality of Diagrams can be tested by comparing node ids. A lossy
operation cache memoizes the results of Apply so that repeated
sub-computations are not rebuilt, at the cost of occasional cache misses
after a garbage collection or a table resize.

Memory management

Like the library this package is modeled on, node reclamation mixes
reference counting with a stop-the-world mark-sweep pass: every node
tracks how many other nodes and external Diagram handles point at it, and
a Diagram's finalizer drops that count when the handle is collected by
the Go runtime. Reaching zero only makes a node eligible for reclamation;
actual reclamation, and the corresponding invalidation of unique-table
entries and cache entries, happens during the next garbage collection
pass, triggered automatically when the node pool runs low.

Dynamic reordering

Manager.Sift reorders variables using Rudell's sifting heuristic: each
variable is walked, one adjacent transposition at a time, across every
level, and left at whichever position produced the fewest live nodes.
Sifting never changes the function represented by a diagram, only the
node count used to represent it.
*/
package mdd
