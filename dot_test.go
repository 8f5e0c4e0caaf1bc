// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mdd_test

import (
	"strings"
	"testing"

	teddy "github.com/go-mdd/teddy"
)

func TestWriteDotRanksByLevel(t *testing.T) {
	m, v := newBoolManager(t, 2)
	f := m.Apply(teddy.AND, v[0], v[1])
	var b strings.Builder
	if err := m.WriteDot(&b, f); err != nil {
		t.Fatalf("WriteDot: %v", err)
	}
	out := b.String()
	if got := strings.Count(out, "rank=same"); got != 3 {
		t.Errorf("got %d rank=same groups, want 3 (one per variable level plus the terminals)", got)
	}
	if !strings.Contains(out, "dashed") || !strings.Contains(out, "solid") {
		t.Error("binary edges should use the dashed/solid style")
	}
}
