package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lacas-dev/lacas"
)

// Version is the version reported by `lacas --version`; lacas.Info()
// carries the same value for an embedder that never shells out.
var Version = lacas.Info()["version"]

var rootCmd = &cobra.Command{
	Use:     "lacas",
	Short:   "A small computer algebra system",
	Version: Version,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
