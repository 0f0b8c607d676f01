package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/lacas-dev/lacas"
)

// introspectCmd demonstrates the introspection shape on a fresh
// session ({} — nothing bound); the interesting use of Introspect is
// mid-repl, via ":introspect".
var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Show a fresh session's variable and function bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := lacas.New()
		fmt.Println(string(pretty.Pretty([]byte(engine.Introspect()))))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(introspectCmd)
}
