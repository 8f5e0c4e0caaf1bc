// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pla_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-mdd/teddy/pla"
)

// xor5PLA is a 5-input, single-output PLA whose rows enumerate every input
// combination with an odd number of ones, i.e. a 5-input XOR;
// 16 of the 32 possible inputs satisfy it.
func xor5PLA() string {
	var b strings.Builder
	b.WriteString(".i 5\n.o 1\n")
	for x := 0; x < 32; x++ {
		ones := 0
		for b := 0; b < 5; b++ {
			if x&(1<<uint(b)) != 0 {
				ones++
			}
		}
		if ones%2 != 1 {
			continue
		}
		cube := make([]byte, 5)
		for b := 0; b < 5; b++ {
			if x&(1<<uint(b)) != 0 {
				cube[b] = '1'
			} else {
				cube[b] = '0'
			}
		}
		fmt.Fprintf(&b, "%s 1\n", cube)
	}
	b.WriteString(".e\n")
	return b.String()
}

func TestLoadAndBuildXOR5(t *testing.T) {
	f, err := pla.Load(strings.NewReader(xor5PLA()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Inputs != 5 || f.Outputs != 1 {
		t.Fatalf("Inputs=%d Outputs=%d, want 5 and 1", f.Inputs, f.Outputs)
	}
	if len(f.Rows) != 16 {
		t.Fatalf("got %d rows, want 16", len(f.Rows))
	}
	m, d, err := pla.Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := m.SatisfyCount(d); got.Int64() != 16 {
		t.Errorf("SatisfyCount = %s, want 16", got)
	}
}

func TestLoadRejectsUnknownDirective(t *testing.T) {
	_, err := pla.Load(strings.NewReader(".i 2\n.bogus foo\n"))
	if err == nil {
		t.Fatal("expected an error for an unrecognized directive")
	}
}

func TestLoadMultiValued(t *testing.T) {
	src := ".i 2\n.o 1\n.mv 2 0 2 3\n10|100 1\n01|010 1\n.e\n"
	f, err := pla.Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.MVDomains) != 2 || f.MVDomains[0] != 2 || f.MVDomains[1] != 3 {
		t.Fatalf("MVDomains = %v, want [2 3]", f.MVDomains)
	}
	m, d, err := pla.Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := m.Evaluate(d, []int32{0, 0}); got != 1 {
		t.Errorf("Evaluate(f, [0,0]) = %d, want 1", got)
	}
	if got := m.Evaluate(d, []int32{1, 1}); got != 1 {
		t.Errorf("Evaluate(f, [1,1]) = %d, want 1", got)
	}
	if got := m.Evaluate(d, []int32{1, 2}); got != 0 {
		t.Errorf("Evaluate(f, [1,2]) = %d, want 0", got)
	}
}
