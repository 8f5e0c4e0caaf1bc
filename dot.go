// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/emicklei/dot"
)

// WriteDot renders the diagrams in d (or every live node, if none are
// given) as a Graphviz graph. Terminals are drawn as filled boxes labeled
// with their value; internal nodes are circles labeled with their variable
// index, annotated with their level, with one outgoing edge per son: dashed
// for son 0 and solid for son 1 when the variable is binary, labeled by the
// value that selects it otherwise. Nodes sharing a level are grouped
// in a rank=same block so Graphviz draws each level as one horizontal row.
func (m *Manager) WriteDot(w io.Writer, d ...Diagram) error {
	if mesg := m.Error(); mesg != "" {
		fmt.Fprintf(w, "Error: %s\n", mesg)
		return fmt.Errorf("%s", mesg)
	}
	g := dot.NewGraph(dot.Directed)

	seen := make(map[int32]dot.Node)
	ranks := make(map[int32][]string) // level -> quoted node ids on that level
	var visit func(id int32) dot.Node
	visit = func(id int32) dot.Node {
		if gn, ok := seen[id]; ok {
			return gn
		}
		n := &m.nodes[id]
		key := fmt.Sprintf("%d", id)
		ranks[m.level(n)] = append(ranks[m.level(n)], fmt.Sprintf("%q", key))
		var gn dot.Node
		if n.isTerminal() {
			text := fmt.Sprintf("%d", n.value)
			if n.value == Undefined {
				text = "*"
			}
			gn = g.Node(key).Attr("shape", "box").Attr("style", "filled").Attr("label", text)
		} else {
			text := fmt.Sprintf("x%d [%d]", n.index, m.indexToLevel[n.index])
			gn = g.Node(key).Attr("shape", "circle").Attr("label", text)
			seen[id] = gn
			// Binary variables use the classical dashed-0 / solid-1 edge
			// style; wider domains label each edge with the value that
			// selects it.
			binary := len(n.sons) == 2
			for k, son := range n.sons {
				sonNode := visit(son)
				e := g.Edge(gn, sonNode)
				if binary {
					if k == 0 {
						e.Attr("style", "dashed")
					} else {
						e.Attr("style", "solid")
					}
				} else {
					e.Attr("label", fmt.Sprintf("%d", k))
				}
			}
		}
		seen[id] = gn
		return gn
	}

	if len(d) > 0 {
		for _, diagram := range d {
			visit(diagram.id)
		}
	} else {
		for id := int32(1); id < int32(len(m.nodes)); id++ {
			if m.nodes[id].inuse {
				visit(id)
			}
		}
	}
	// The dot package has no primitive for bare rank constraints, but its
	// output is plain graph text: splice one {rank=same; ...} block per
	// level in front of the closing brace.
	out := g.String()
	levels := make([]int32, 0, len(ranks))
	for lv := range ranks {
		levels = append(levels, lv)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	var groups strings.Builder
	for _, lv := range levels {
		ids := ranks[lv]
		sort.Strings(ids)
		fmt.Fprintf(&groups, "\t{rank=same; %s}\n", strings.Join(ids, "; "))
	}
	if i := strings.LastIndex(out, "}"); i >= 0 {
		out = out[:i] + groups.String() + out[i:]
	}
	_, err := io.WriteString(w, out)
	return err
}

// PrintDot is a convenience wrapper around WriteDot that writes to a named
// file, or to standard output when filename is "-".
func (m *Manager) PrintDot(filename string, d ...Diagram) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	return m.WriteDot(out, d...)
}
