// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package pla loads the classical Espresso PLA subset described for this
// library: .i/.o/.p sizing directives, .ilb/.ob labels, the multi-valued
// .mv directive, and product-term rows made of cube characters. A File is
// a structured, line-number-free view of the parsed directives; Build
// compiles it into a diagram over a freshly created manager.
package pla

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	teddy "github.com/go-mdd/teddy"
)

// SyntaxError is returned by Load when the input cannot be parsed; it
// carries the 1-based line number of the offending directive or row so
// that a caller can report it back to whoever wrote the file.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pla: line %d: %s", e.Line, e.Message)
}

// File is the parsed form of a PLA source: sizing, optional labels, and the
// raw product-term rows (a cube string per input group, an output cube).
type File struct {
	Inputs       int      // .i
	Outputs      int      // .o
	Products     int      // .p, 0 if not given
	InputLabels  []string // .ilb, one per input variable (binary case)
	OutputLabels []string // .ob
	MVDomains    []int32  // .mv domains, one per variable (binary vars get domain 2)
	MVBinary     int      // .mv n_bin: number of purely binary variables preceding the MV ones
	Rows         []Row
}

// Row is one product term: one cube string per input variable (a single
// character for binary variables, a one-hot group for MV variables) and one
// output cube string.
type Row struct {
	Inputs []string
	Output string
}

// Load parses r as a PLA source. Directives are case-sensitive and must
// appear before the rows that depend on them (.i/.o before any row, .mv
// before rows that use multi-valued groups), matching the Espresso
// convention.
func Load(r io.Reader) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case ".i":
			n, err := expectInt(fields, line, ".i")
			if err != nil {
				return nil, err
			}
			f.Inputs = n
		case ".o":
			n, err := expectInt(fields, line, ".o")
			if err != nil {
				return nil, err
			}
			f.Outputs = n
		case ".p":
			n, err := expectInt(fields, line, ".p")
			if err != nil {
				return nil, err
			}
			f.Products = n
		case ".ilb":
			f.InputLabels = append([]string(nil), fields[1:]...)
		case ".ob":
			f.OutputLabels = append([]string(nil), fields[1:]...)
		case ".mv":
			if len(fields) < 3 {
				return nil, &SyntaxError{line, ".mv needs at least a variable count and binary count"}
			}
			nvars, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &SyntaxError{line, "malformed .mv variable count"}
			}
			nbin, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &SyntaxError{line, "malformed .mv binary count"}
			}
			f.MVBinary = nbin
			domains := make([]int32, 0, nvars)
			for i := 0; i < nbin; i++ {
				domains = append(domains, 2)
			}
			for _, tok := range fields[3:] {
				d, err := strconv.Atoi(tok)
				if err != nil {
					return nil, &SyntaxError{line, "malformed .mv domain size " + tok}
				}
				domains = append(domains, int32(d))
			}
			if len(domains) != nvars {
				return nil, &SyntaxError{line, "number of .mv domains does not match declared variable count"}
			}
			f.MVDomains = domains
		case ".e", ".end":
			return f, nil
		default:
			if strings.HasPrefix(fields[0], ".") {
				return nil, &SyntaxError{line, "unrecognized directive " + fields[0]}
			}
			row, err := parseRow(f, fields, line)
			if err != nil {
				return nil, err
			}
			f.Rows = append(f.Rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "pla: read error")
	}
	return f, nil
}

func expectInt(fields []string, line int, directive string) (int, error) {
	if len(fields) != 2 {
		return 0, &SyntaxError{line, directive + " expects exactly one integer argument"}
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, errors.Wrapf(&SyntaxError{line, directive + ": not an integer"}, "parsing %q", fields[1])
	}
	return n, nil
}

func parseRow(f *File, fields []string, line int) (Row, error) {
	if len(fields) != 2 {
		return Row{}, &SyntaxError{line, "expected exactly one input cube and one output cube"}
	}
	var inputs []string
	if len(f.MVDomains) > 0 {
		groups := strings.Split(fields[0], "|")
		if len(groups) != len(f.MVDomains) {
			return Row{}, &SyntaxError{line, "input cube does not match the number of .mv variables"}
		}
		inputs = groups
	} else {
		for _, c := range fields[0] {
			inputs = append(inputs, string(c))
		}
	}
	return Row{Inputs: inputs, Output: fields[1]}, nil
}

// cubeMatches reports whether the cube string group (one character per
// value of the variable's domain, for MV groups; one of '0'/'1'/don't-care
// for binary groups) selects value v. Don't-care characters ('-', '~',
// '2', '3' in this subset) match every value; '4' is folded onto '1'.
func cubeMatches(group string, v int32, domain int32) bool {
	if domain == 2 && len(group) == 1 {
		switch group[0] {
		case '0':
			return v == 0
		case '1', '4':
			return v == 1
		case '-', '~', '2', '3':
			return true
		}
	}
	if int(v) >= len(group) {
		return false
	}
	switch group[v] {
	case '1', '4':
		return true
	default:
		return false
	}
}

// Build compiles the parsed file into a single diagram, one manager
// variable per PLA input variable, ORing together every product term whose
// output cube selects a nonzero output value. It only supports a single
// output column collapsed to one structure function; for multi-output PLAs
// the caller should slice Rows by output label and call Build per output.
func Build(f *File) (*teddy.Manager, teddy.Diagram, error) {
	domains := f.MVDomains
	if len(domains) == 0 {
		domains = make([]int32, f.Inputs)
		for i := range domains {
			domains[i] = 2
		}
	}
	m, err := teddy.NewIMSS(domains, 1000)
	if err != nil {
		return nil, nil, err
	}
	acc := m.Constant(0)
	for _, row := range f.Rows {
		if !strings.ContainsAny(row.Output, "14") {
			continue
		}
		term := m.Constant(1)
		for i, group := range row.Inputs {
			lit := variableMatchesGroup(m, i, group, domains[i])
			term = m.Apply(teddy.AND, term, lit)
		}
		acc = m.Apply(teddy.OR, acc, term)
	}
	return m, acc, nil
}

// variableMatchesGroup builds the diagram for "variable i's value is one of
// the ones the cube group selects", by ORing together the constant-1
// branches that satisfy cubeMatches and relying on Apply's canonicalization
// to collapse the whole-domain case back to the constant function.
func variableMatchesGroup(m *teddy.Manager, index int, group string, domain int32) teddy.Diagram {
	variable := m.Variable(index)
	acc := m.Constant(0)
	for v := int32(0); v < domain; v++ {
		if !cubeMatches(group, v, domain) {
			continue
		}
		hit := m.Apply(teddy.EQ, variable, m.Constant(v))
		acc = m.Apply(teddy.OR, acc, hit)
	}
	return acc
}
