package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plexus/weft/internal/config"
	"plexus/weft/internal/edgelist"
	"plexus/weft/internal/graph"
	"plexus/weft/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Connected-components toolkit for edge-list graphs",
	Long: "Weft partitions a vertex set into connected components using one of six\n" +
		"interchangeable algorithms, reads edge lists from text, JSON, or SQLite,\n" +
		"and renders graphs as Graphviz DOT.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "SQLite graph database to read when no edge file argument is given")
	_ = viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	viper.SetConfigName(".weft")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("WEFT")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadInput resolves the graph input for a command. An explicit edge file
// argument always wins; the configured database is the fallback when no
// file is named.
func loadInput(args []string) ([]graph.Edge, []string, error) {
	if len(args) > 0 {
		return edgelist.Load(args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database == "" {
		return nil, nil, fmt.Errorf("no input: pass an edge file or set --db")
	}
	if _, err := os.Stat(cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("database not found at %s", cfg.Database)
	}
	s, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()
	return s.LoadGraph()
}

// resolveStrategy picks the strategy from the flag when given, falling back
// to the configured default.
func resolveStrategy(flagValue string) (graph.Strategy, error) {
	name := flagValue
	if name == "" {
		cfg, err := config.Load()
		if err != nil {
			return 0, err
		}
		name = cfg.Strategy
	}
	return graph.ParseStrategy(name)
}
