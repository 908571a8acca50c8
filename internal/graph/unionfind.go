package graph

// UnionFind implements union-find with path compression and union by rank.
// This is the asymptotically best of the strategies (amortized
// inverse-Ackermann per operation) and the default when only one is needed.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	size   map[string]int
}

// NewUnionFind creates a UnionFind where each id is its own component.
func NewUnionFind(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		size:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.Add(id)
	}
	return uf
}

// Add registers id as its own singleton component if not already present.
func (uf *UnionFind) Add(id string) {
	if _, ok := uf.parent[id]; ok {
		return
	}
	uf.parent[id] = id
	uf.rank[id] = 0
	uf.size[id] = 1
}

// Find returns the root of the component containing id, compressing the
// path so future lookups are direct. Trees stay O(log n) tall under union
// by rank, so the recursion here is shallow.
func (uf *UnionFind) Find(id string) string {
	parent, ok := uf.parent[id]
	if !ok {
		return id
	}
	if parent != id {
		root := uf.Find(parent)
		uf.parent[id] = root
		return root
	}
	return id
}

// Union merges the components containing a and b, attaching the lower-rank
// root under the higher. Returns true if they were separate.
func (uf *UnionFind) Union(a, b string) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}

	rankA := uf.rank[rootA]
	rankB := uf.rank[rootB]
	total := uf.size[rootA] + uf.size[rootB]

	switch {
	case rankA < rankB:
		uf.parent[rootA] = rootB
		uf.size[rootB] = total
	case rankA > rankB:
		uf.parent[rootB] = rootA
		uf.size[rootA] = total
	default:
		uf.parent[rootB] = rootA
		uf.size[rootA] = total
		uf.rank[rootA]++
	}
	return true
}

// SizeOf returns the size of the component containing id.
func (uf *UnionFind) SizeOf(id string) int {
	return uf.size[uf.Find(id)]
}

// Components groups every registered vertex by its root.
func (uf *UnionFind) Components() []Component {
	byRoot := make(map[string]Component)
	for id := range uf.parent {
		root := uf.Find(id)
		byRoot[root] = append(byRoot[root], id)
	}
	comps := make([]Component, 0, len(byRoot))
	for _, members := range byRoot {
		comps = append(comps, members)
	}
	return comps
}

// ComponentsQuickUnion finds connected components with rank-balanced,
// path-compressed union-find over the edge list.
func ComponentsQuickUnion(edges []Edge, vertices []string) []Component {
	uf := NewUnionFind(VerticesOf(edges, vertices))
	for _, e := range edges {
		uf.Union(e.U, e.V)
	}
	return uf.Components()
}
