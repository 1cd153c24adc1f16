// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables
// prefixed with MESHGRAPH, or meshgraph.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("meshgraph")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MESHGRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/meshgraph", "$HOME/.meshgraph", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// the yaml file is optional
	_ = viper.ReadInConfig()

	return &cobra.Command{
		Use:   "meshgraph",
		Short: "Build spatial adjacency matrices of census meshblocks",
		Long: `Build spatial adjacency matrices of census meshblocks.

The pipeline downloads the geometries of a data domain into the raw directory, then computes
the QUEEN contiguity or INVD inverse distance weights between every pair of units and writes
them as a CSV matrix, with an optional Graphviz rendering of the neighbour graph.`,
		SilenceUsage: true,
	}
}
