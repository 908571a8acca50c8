// Package render turns adjacency structures into Graphviz DOT text.
package render

import (
	"sort"

	"github.com/emicklei/dot"

	"plexus/weft/internal/graph"
)

// DOT renders the adjacency as a directed graph: one node per vertex, one
// edge statement per (source, destination) pair. Vertices and neighbors are
// emitted in sorted order so output is stable. Purely presentational; the
// adjacency's directedness is whatever it was built with.
func DOT(adj graph.Adjacency) string {
	g := dot.NewGraph(dot.Directed)

	// Declare isolated vertices too, or they would vanish from the drawing.
	ids := make(map[string]bool, len(adj))
	for u, neighbors := range adj {
		ids[u] = true
		for v := range neighbors {
			ids[v] = true
		}
	}
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	for _, id := range sorted {
		g.Node(id)
	}

	neighbors := graph.SortedNeighbors(adj)
	for _, u := range sorted {
		for _, v := range neighbors[u] {
			g.Edge(g.Node(u), g.Node(v))
		}
	}
	return g.String()
}
