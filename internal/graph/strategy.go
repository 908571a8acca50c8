package graph

import "fmt"

// Strategy selects one of the interchangeable component-finding algorithms.
// All strategies produce the same partition for the same input; they differ
// in mechanics and cost.
type Strategy int

const (
	QuickFind        Strategy = iota // set merging with union by size
	QuickFindClassic                 // representative chains
	QuickUnion                       // union by rank + path compression
	DFSRecursive                     // recursive depth-first, depth-limited
	StackSearch                      // explicit-stack search
	BFS                              // queue-based breadth-first
)

var strategyNames = map[Strategy]string{
	QuickFind:        "quickfind",
	QuickFindClassic: "quickfind-classic",
	QuickUnion:       "quickunion",
	DFSRecursive:     "dfs",
	StackSearch:      "stack",
	BFS:              "bfs",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name (as accepted on the command line) to
// its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want one of quickfind, quickfind-classic, quickunion, dfs, stack, bfs)", name)
}

// Strategies lists every strategy, quick-find variants first.
func Strategies() []Strategy {
	return []Strategy{QuickFind, QuickFindClassic, QuickUnion, DFSRecursive, StackSearch, BFS}
}

// Components runs the chosen strategy over the edge list plus optional
// explicit vertices. Only DFSRecursive can fail (ErrDepthLimit).
func Components(s Strategy, edges []Edge, vertices []string) ([]Component, error) {
	switch s {
	case QuickFind:
		return ComponentsQuickFind(edges, vertices), nil
	case QuickFindClassic:
		return ComponentsQuickFindClassic(edges, vertices), nil
	case QuickUnion:
		return ComponentsQuickUnion(edges, vertices), nil
	case DFSRecursive:
		return ComponentsDFSRecursive(edges, vertices)
	case StackSearch:
		return ComponentsStack(edges, vertices), nil
	case BFS:
		return ComponentsBFS(edges, vertices), nil
	default:
		return nil, fmt.Errorf("unknown strategy %d", int(s))
	}
}
