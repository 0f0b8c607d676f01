package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/lacas-dev/lacas"
)

var evalCmd = &cobra.Command{
	Use:   "eval <latex>",
	Short: "Evaluate one piece of LaTeX input against a fresh session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := lacas.New()
		result := engine.Eval(args[0])
		fmt.Println(string(pretty.Pretty([]byte(result))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
