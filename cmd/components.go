package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"plexus/weft/internal/graph"
)

var (
	componentsStrategy string
	componentsJSON     bool
	componentsVertices []string
)

var componentsCmd = &cobra.Command{
	Use:   "components [FILE]",
	Short: "Partition a graph into connected components",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, vertices, err := loadInput(args)
		if err != nil {
			return fmt.Errorf("loading edges: %w", err)
		}
		vertices = append(vertices, componentsVertices...)

		strategy, err := resolveStrategy(componentsStrategy)
		if err != nil {
			return err
		}

		comps, err := graph.Components(strategy, edges, vertices)
		if err != nil {
			return fmt.Errorf("finding components: %w", err)
		}
		comps = graph.Normalize(comps)

		if componentsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(comps)
		}

		printComponentSummary(comps, strategy, len(edges))
		return nil
	},
}

func init() {
	componentsCmd.Flags().StringVar(&componentsStrategy, "strategy", "", "Algorithm: quickfind, quickfind-classic, quickunion, dfs, stack, bfs")
	componentsCmd.Flags().BoolVar(&componentsJSON, "json", false, "Output as JSON")
	componentsCmd.Flags().StringArrayVar(&componentsVertices, "vertex", nil, "Explicit vertex to include even if no edge mentions it (repeatable)")
	rootCmd.AddCommand(componentsCmd)
}

func printComponentSummary(comps []graph.Component, strategy graph.Strategy, edgeCount int) {
	totalVertices := 0
	largest, smallest := 0, 0
	for i, c := range comps {
		totalVertices += len(c)
		if len(c) > largest {
			largest = len(c)
		}
		if i == 0 || len(c) < smallest {
			smallest = len(c)
		}
	}

	fmt.Printf("\n  COMPONENTS (%s)\n", strategy)
	fmt.Println("  ────────────────────────────────────────")
	fmt.Printf("  Vertices: %d  Edges: %d  Components: %d\n", totalVertices, edgeCount, len(comps))
	if len(comps) > 0 {
		fmt.Printf("  Largest component: %d  Smallest: %d\n", largest, smallest)
	}
	for i, c := range comps {
		fmt.Printf("  [%d] %s\n", i+1, formatMembers(c, 12))
	}
	fmt.Println()
}

// formatMembers lists up to max members, eliding the rest.
func formatMembers(c graph.Component, max int) string {
	if len(c) <= max {
		return strings.Join(c, " ")
	}
	return fmt.Sprintf("%s ... and %d more", strings.Join(c[:max], " "), len(c)-max)
}
