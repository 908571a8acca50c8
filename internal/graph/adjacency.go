package graph

import "sort"

// Adjacency maps each vertex to the set of its neighbors.
type Adjacency map[string]map[string]bool

// BuildAdjacency builds an adjacency structure from an edge list. When
// directed is true each edge contributes only source -> target and only
// sources get map entries; when false both directions are added and both
// endpoints get entries. Explicit vertices always get an entry, with an
// empty neighbor set if no edge touches them.
func BuildAdjacency(edges []Edge, vertices []string, directed bool) Adjacency {
	adj := make(Adjacency)
	for _, e := range edges {
		adj.add(e.U, e.V)
		if !directed {
			adj.add(e.V, e.U)
		}
	}
	for _, v := range vertices {
		if adj[v] == nil {
			adj[v] = make(map[string]bool)
		}
	}
	return adj
}

func (a Adjacency) add(u, v string) {
	if a[u] == nil {
		a[u] = make(map[string]bool)
	}
	a[u][v] = true
}

// Reverse inverts every edge: v appears among Reverse(a)[u] iff u appears
// among a[v]. Vertices that only ever appear as sources are dropped, like
// targets are in a directed build.
func Reverse(a Adjacency) Adjacency {
	rev := make(Adjacency, len(a))
	for u, neighbors := range a {
		for v := range neighbors {
			rev.add(v, u)
		}
	}
	return rev
}

// SortedNeighbors flattens the adjacency sets into sorted slices for
// deterministic listing.
func SortedNeighbors(a Adjacency) map[string][]string {
	out := make(map[string][]string, len(a))
	for u, neighbors := range a {
		ns := make([]string, 0, len(neighbors))
		for v := range neighbors {
			ns = append(ns, v)
		}
		sort.Strings(ns)
		out[u] = ns
	}
	return out
}

// sortedKeys returns the adjacency's vertices in sorted order, so traversal
// starting points are deterministic.
func sortedKeys(a Adjacency) []string {
	keys := make([]string, 0, len(a))
	for v := range a {
		keys = append(keys, v)
	}
	sort.Strings(keys)
	return keys
}
