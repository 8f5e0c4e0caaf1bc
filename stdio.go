// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Print writes a textual table of every node reachable from d (or of every
// live node in the manager if no diagram is given) to standard output: one
// row per node, its variable index, and its son ids.
func (m *Manager) Print(d ...Diagram) {
	m.print(os.Stdout, d...)
}

func (m *Manager) print(w io.Writer, d ...Diagram) {
	if mesg := m.Error(); mesg != "" {
		fmt.Fprintf(w, "Error: %s\n", mesg)
		return
	}
	type row struct {
		id    int32
		index int32
		value int32
		sons  []int32
	}
	var rows []row
	visit := func(id int32, index int32, value int32, sons []int32) {
		i := sort.Search(len(rows), func(i int) bool { return rows[i].id >= id })
		rows = append(rows, row{})
		copy(rows[i+1:], rows[i:])
		rows[i] = row{id, index, value, sons}
	}
	seen := make(map[int32]bool)
	var walk func(id int32)
	walk = func(id int32) {
		if seen[id] {
			return
		}
		seen[id] = true
		n := &m.nodes[id]
		if n.isTerminal() {
			visit(id, leafIndex, n.value, nil)
			return
		}
		visit(id, n.index, 0, n.sons)
		for _, s := range n.sons {
			walk(s)
		}
	}
	if len(d) > 0 {
		for _, diagram := range d {
			walk(diagram.id)
		}
	} else {
		for id := int32(1); id < int32(len(m.nodes)); id++ {
			if m.nodes[id].inuse {
				walk(id)
			}
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, r := range rows {
		if r.index == leafIndex {
			fmt.Fprintf(tw, "%d\t[leaf]\t= %d\n", r.id, r.value)
			continue
		}
		fmt.Fprintf(tw, "%d\t[var %d]\t-> %v\n", r.id, r.index, r.sons)
	}
	tw.Flush()
}
