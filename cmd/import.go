package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plexus/weft/internal/edgelist"
	"plexus/weft/internal/store"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import an edge file into a SQLite graph database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edges, vertices, err := edgelist.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading edges: %w", err)
		}

		s, err := store.Open(importDB)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Init(); err != nil {
			return err
		}
		if err := s.InsertGraph(edges, vertices); err != nil {
			return fmt.Errorf("importing graph: %w", err)
		}

		fmt.Printf("imported %d edges and %d isolated vertices into %s\n",
			len(edges), len(vertices), importDB)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importDB, "into", "weft.db", "Destination SQLite database")
	rootCmd.AddCommand(importCmd)
}
