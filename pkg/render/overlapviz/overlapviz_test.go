package overlapviz

import (
	"strings"
	"testing"

	"github.com/LyteFM/overlap-components/pkg/core/overlap"
)

func TestToDOTRejectsMismatchedLabels(t *testing.T) {
	g := overlap.NewGraph(3)
	if _, err := ToDOT(g, []int{0, 1}); err == nil {
		t.Fatal("expected an error when len(labels) != g.N()")
	}
}

func TestToDOTIncludesEveryVertexAndEdgeOnce(t *testing.T) {
	g := overlap.NewGraph(3)
	g.AddEdge(0, 1)
	sorted := g.Sort()

	dot, err := ToDOT(sorted, []int{0, 0, 1})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	for _, want := range []string{"n0", "n1", "n2", "n0 -- n1"} {
		if !strings.Contains(dot, want) {
			t.Fatalf("expected DOT output to contain %q, got:\n%s", want, dot)
		}
	}
	if strings.Count(dot, "n0 -- n1") != 1 && strings.Count(dot, "n1 -- n0") != 1 {
		t.Fatalf("expected the n0/n1 edge exactly once, got:\n%s", dot)
	}
}

func TestToDOTColorsByComponentLabel(t *testing.T) {
	g := overlap.NewGraph(2)
	dot, err := ToDOT(g, []int{0, 1})
	if err != nil {
		t.Fatalf("ToDOT: %v", err)
	}
	if !strings.Contains(dot, palette[0]) || !strings.Contains(dot, palette[1]) {
		t.Fatalf("expected both palette colors to appear, got:\n%s", dot)
	}
}
