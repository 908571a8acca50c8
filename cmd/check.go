package cmd

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"plexus/weft/internal/graph"
)

var checkVertices []string

var checkCmd = &cobra.Command{
	Use:   "check [FILE]",
	Short: "Run every strategy and verify they produce the same partition",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, vertices, err := loadInput(args)
		if err != nil {
			return fmt.Errorf("loading edges: %w", err)
		}
		vertices = append(vertices, checkVertices...)

		baseline := graph.Normalize(graph.ComponentsQuickUnion(edges, vertices))
		fmt.Printf("  %-18s %d components (baseline)\n", graph.QuickUnion, len(baseline))

		diverged := false
		for _, s := range graph.Strategies() {
			if s == graph.QuickUnion {
				continue
			}
			comps, err := graph.Components(s, edges, vertices)
			if errors.Is(err, graph.ErrDepthLimit) {
				fmt.Printf("  %-18s skipped: %v\n", s, err)
				continue
			}
			if err != nil {
				return fmt.Errorf("running %s: %w", s, err)
			}
			comps = graph.Normalize(comps)
			if reflect.DeepEqual(comps, baseline) {
				fmt.Printf("  %-18s agrees\n", s)
			} else {
				diverged = true
				fmt.Printf("  %-18s DIVERGES: %d components\n", s, len(comps))
			}
		}

		if diverged {
			return fmt.Errorf("strategies disagree on the component partition")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkVertices, "vertex", nil, "Explicit vertex to include even if no edge mentions it (repeatable)")
	rootCmd.AddCommand(checkCmd)
}
