package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plexus/weft/internal/graph"
	"plexus/weft/internal/render"
)

var (
	drawUndirected bool
	drawOut        string
)

var drawCmd = &cobra.Command{
	Use:   "draw [FILE]",
	Short: "Render a graph as Graphviz DOT",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, vertices, err := loadInput(args)
		if err != nil {
			return fmt.Errorf("loading edges: %w", err)
		}

		adj := graph.BuildAdjacency(edges, vertices, !drawUndirected)
		out := render.DOT(adj)

		if drawOut != "" {
			if err := os.WriteFile(drawOut, []byte(out), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", drawOut, err)
			}
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	drawCmd.Flags().BoolVar(&drawUndirected, "undirected", false, "Add each edge in both directions")
	drawCmd.Flags().StringVarP(&drawOut, "out", "o", "", "Write DOT to a file instead of stdout")
	rootCmd.AddCommand(drawCmd)
}
