package store

import (
	"fmt"

	"plexus/weft/internal/graph"
)

// InsertGraph writes an edge list and explicit vertices in one transaction.
// Vertices are upserted so repeated imports of overlapping graphs work;
// edges are appended as-is (the component algorithms are idempotent under
// duplicates).
func (s *Store) InsertGraph(edges []graph.Edge, vertices []string) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	insVertex, err := tx.Prepare("INSERT OR IGNORE INTO vertices (id) VALUES (?)")
	if err != nil {
		return fmt.Errorf("preparing vertex insert: %w", err)
	}
	defer insVertex.Close()

	insEdge, err := tx.Prepare("INSERT INTO edges (source, target) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer insEdge.Close()

	for _, v := range graph.VerticesOf(edges, vertices) {
		if _, err := insVertex.Exec(v); err != nil {
			return fmt.Errorf("inserting vertex %q: %w", v, err)
		}
	}
	for _, e := range edges {
		if _, err := insEdge.Exec(e.U, e.V); err != nil {
			return fmt.Errorf("inserting edge %q -> %q: %w", e.U, e.V, err)
		}
	}

	return tx.Commit()
}

// LoadGraph returns all stored edges plus every vertex id, so isolated
// vertices survive the round trip.
func (s *Store) LoadGraph() ([]graph.Edge, []string, error) {
	rows, err := s.conn.Query("SELECT source, target FROM edges")
	if err != nil {
		return nil, nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var edges []graph.Edge
	for rows.Next() {
		var e graph.Edge
		if err := rows.Scan(&e.U, &e.V); err != nil {
			return nil, nil, fmt.Errorf("scanning edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	vrows, err := s.conn.Query("SELECT id FROM vertices ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("querying vertices: %w", err)
	}
	defer vrows.Close()

	var vertices []string
	for vrows.Next() {
		var id string
		if err := vrows.Scan(&id); err != nil {
			return nil, nil, fmt.Errorf("scanning vertex: %w", err)
		}
		vertices = append(vertices, id)
	}
	return edges, vertices, vrows.Err()
}
