package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"plexus/weft/internal/edgelist"
	"plexus/weft/internal/graph"
	"plexus/weft/internal/watch"
)

var watchStrategy string

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Recompute components whenever an edge file changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		strategy, err := resolveStrategy(watchStrategy)
		if err != nil {
			return err
		}

		recompute := func() {
			edges, vertices, err := edgelist.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
				return
			}
			comps, err := graph.Components(strategy, edges, vertices)
			if err != nil {
				fmt.Fprintf(os.Stderr, "recompute failed: %v\n", err)
				return
			}
			printComponentSummary(graph.Normalize(comps), strategy, len(edges))
		}
		recompute()

		w, err := watch.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Stop()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		fmt.Printf("watching %s (Ctrl-C to stop)\n", path)
		for {
			select {
			case <-w.Changes:
				recompute()
			case <-interrupt:
				fmt.Println()
				return nil
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchStrategy, "strategy", "", "Algorithm: quickfind, quickfind-classic, quickunion, dfs, stack, bfs")
	rootCmd.AddCommand(watchCmd)
}
