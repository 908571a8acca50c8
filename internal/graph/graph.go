// Package graph partitions vertex sets into connected components.
//
// Six interchangeable strategies implement the same contract: given an edge
// list (plus optional explicit vertices), return the components of the
// undirected reachability closure. All state is built per call and discarded
// on return.
package graph

import "sort"

// Edge asserts that two vertices are connected. Direction only matters to
// adjacency construction; component finding ignores it.
type Edge struct {
	U string
	V string
}

// Component is the vertex set of one connected component. Members are in
// discovery order until passed through Normalize.
type Component []string

// VerticesOf returns the sorted, deduplicated union of all edge endpoints
// and the extra vertices.
func VerticesOf(edges []Edge, extra []string) []string {
	seen := make(map[string]bool, 2*len(edges)+len(extra))
	for _, e := range edges {
		seen[e.U] = true
		seen[e.V] = true
	}
	for _, v := range extra {
		seen[v] = true
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)
	return ids
}

// Normalize sorts each component's members and then the components
// themselves, producing the canonical form used for comparison and output.
// The input slices are sorted in place. An empty partition always comes
// back as a non-nil empty slice, whichever way the strategy represented
// it, so canonical forms are directly comparable and encode as [] in JSON.
func Normalize(comps []Component) []Component {
	if len(comps) == 0 {
		return []Component{}
	}
	for _, c := range comps {
		sort.Strings(c)
	}
	sort.Slice(comps, func(i, j int) bool {
		return lessComponent(comps[i], comps[j])
	})
	return comps
}

func lessComponent(a, b Component) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
