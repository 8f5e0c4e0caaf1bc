// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

// Diagram is an external handle onto a node of a Manager. It is a pointer
// type so that a finalizer attached when the handle is created runs exactly
// once, when the handle itself (not some copy of its contents) becomes
// unreachable, decrementing the node's reference count so the manager can
// eventually reclaim it.
type Diagram = *diagramHandle

type diagramHandle struct {
	id int32
	m  *Manager
}

// Equal reports whether two diagrams are the same node of the same
// manager. Because every node is hash-consed, structural equality and
// pointer (id) equality coincide.
func (d Diagram) Equal(other Diagram) bool {
	return other != nil && d.m == other.m && d.id == other.id
}

// Manager returns the manager that produced this diagram.
func (d Diagram) Manager() *Manager { return d.m }

// nodeID returns the underlying node id. Package-internal code reads d.id
// directly.
func (d Diagram) nodeID() int32 { return d.id }
