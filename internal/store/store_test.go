package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"plexus/weft/internal/graph"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "graph.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	edges := []graph.Edge{{U: "a", V: "b"}, {U: "b", V: "c"}}
	if err := s.InsertGraph(edges, []string{"lonely"}); err != nil {
		t.Fatalf("InsertGraph failed: %v", err)
	}

	gotEdges, gotVertices, err := s.LoadGraph()
	if err != nil {
		t.Fatalf("LoadGraph failed: %v", err)
	}
	if !reflect.DeepEqual(gotEdges, edges) {
		t.Errorf("edges = %v, want %v", gotEdges, edges)
	}
	wantVertices := []string{"a", "b", "c", "lonely"}
	if !reflect.DeepEqual(gotVertices, wantVertices) {
		t.Errorf("vertices = %v, want %v", gotVertices, wantVertices)
	}
}

func TestStore_EmptyGraph(t *testing.T) {
	s := openTestStore(t)
	edges, vertices, err := s.LoadGraph()
	if err != nil {
		t.Fatalf("LoadGraph failed: %v", err)
	}
	if len(edges) != 0 || len(vertices) != 0 {
		t.Errorf("fresh store should be empty, got %v %v", edges, vertices)
	}
}

func TestStore_RepeatedImportUpsertsVertices(t *testing.T) {
	s := openTestStore(t)
	edges := []graph.Edge{{U: "a", V: "b"}}
	if err := s.InsertGraph(edges, nil); err != nil {
		t.Fatalf("first InsertGraph failed: %v", err)
	}
	if err := s.InsertGraph(edges, nil); err != nil {
		t.Fatalf("second InsertGraph failed: %v", err)
	}

	gotEdges, gotVertices, err := s.LoadGraph()
	if err != nil {
		t.Fatalf("LoadGraph failed: %v", err)
	}
	if len(gotVertices) != 2 {
		t.Errorf("vertices should be upserted once each, got %v", gotVertices)
	}
	// Duplicate edges are allowed; component partitions are unaffected.
	if len(gotEdges) != 2 {
		t.Errorf("expected 2 stored edges, got %v", gotEdges)
	}
	comps := graph.Normalize(graph.ComponentsQuickUnion(gotEdges, gotVertices))
	if len(comps) != 1 {
		t.Errorf("expected 1 component after reload, got %v", comps)
	}
}
