package graph

import (
	"errors"
	"fmt"
)

// maxTraversalDepth caps the recursive DFS variant. The limit demonstrates
// that naive recursive traversal is depth-bounded by its host; long
// path-shaped graphs must fail loudly instead of being silently handled.
// The iterative variants carry no such limit.
const maxTraversalDepth = 1000

// ErrDepthLimit is returned by ComponentsDFSRecursive when a traversal
// exceeds maxTraversalDepth.
var ErrDepthLimit = errors.New("traversal depth limit exceeded")

// ComponentsDFSRecursive finds connected components by recursive
// depth-first search over the undirected adjacency of the edge list.
//
// A component containing a path longer than the depth limit makes the whole
// call fail with ErrDepthLimit; use ComponentsStack or ComponentsBFS for
// graphs that may contain long chains.
func ComponentsDFSRecursive(edges []Edge, vertices []string) ([]Component, error) {
	adj := BuildAdjacency(edges, vertices, false)
	visited := make(map[string]bool, len(adj))

	var dfs func(v string, depth int, comp *Component) error
	dfs = func(v string, depth int, comp *Component) error {
		if depth > maxTraversalDepth {
			return fmt.Errorf("recursive search at %q: %w", v, ErrDepthLimit)
		}
		if visited[v] {
			return nil
		}
		visited[v] = true
		*comp = append(*comp, v)
		for n := range adj[v] {
			if err := dfs(n, depth+1, comp); err != nil {
				return err
			}
		}
		return nil
	}

	var comps []Component
	for _, start := range sortedKeys(adj) {
		if visited[start] {
			continue
		}
		var comp Component
		if err := dfs(start, 1, &comp); err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// ComponentsStack finds connected components by stack-based search. This is
// a naturally iterative traversal, similar to but not the same as iterative
// DFS, and handles arbitrarily long chains.
func ComponentsStack(edges []Edge, vertices []string) []Component {
	adj := BuildAdjacency(edges, vertices, false)
	visited := make(map[string]bool, len(adj))

	var comps []Component
	for _, start := range sortedKeys(adj) {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack := []string{start}
		var comp Component
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for n := range adj[v] {
				if visited[n] {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ComponentsBFS finds connected components by breadth-first search, and
// like ComponentsStack handles arbitrarily long chains.
func ComponentsBFS(edges []Edge, vertices []string) []Component {
	adj := BuildAdjacency(edges, vertices, false)
	visited := make(map[string]bool, len(adj))

	var comps []Component
	for _, start := range sortedKeys(adj) {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []string{start}
		var comp Component
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			comp = append(comp, v)
			for n := range adj[v] {
				if visited[n] {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
