package render

import (
	"strings"
	"testing"

	"plexus/weft/internal/graph"
)

func TestDOT_EmitsOneStatementPerEdge(t *testing.T) {
	adj := graph.BuildAdjacency([]graph.Edge{
		{U: "a", V: "b"}, {U: "a", V: "c"}, {U: "b", V: "c"}, {U: "c", V: "a"},
	}, nil, true)

	out := DOT(adj)
	if !strings.HasPrefix(strings.TrimSpace(out), "digraph") {
		t.Errorf("output should be a digraph, got %q", out)
	}
	if got := strings.Count(out, "->"); got != 4 {
		t.Errorf("expected 4 edge statements, got %d in %q", got, out)
	}
	for _, label := range []string{`"a"`, `"b"`, `"c"`} {
		if !strings.Contains(out, label) {
			t.Errorf("output missing vertex %s: %q", label, out)
		}
	}
}

func TestDOT_IncludesIsolatedVertices(t *testing.T) {
	adj := graph.BuildAdjacency([]graph.Edge{{U: "a", V: "b"}}, []string{"lonely"}, true)
	out := DOT(adj)
	if !strings.Contains(out, `"lonely"`) {
		t.Errorf("isolated vertex should be declared, got %q", out)
	}
}

func TestDOT_Deterministic(t *testing.T) {
	edges := []graph.Edge{{U: "a", V: "c"}, {U: "a", V: "b"}, {U: "b", V: "c"}}
	first := DOT(graph.BuildAdjacency(edges, nil, true))
	for i := 0; i < 10; i++ {
		if again := DOT(graph.BuildAdjacency(edges, nil, true)); again != first {
			t.Fatalf("output not deterministic:\n%q\nvs\n%q", first, again)
		}
	}
}

func TestDOT_Empty(t *testing.T) {
	out := DOT(graph.Adjacency{})
	if strings.Contains(out, "->") {
		t.Errorf("empty adjacency should have no edges, got %q", out)
	}
}
