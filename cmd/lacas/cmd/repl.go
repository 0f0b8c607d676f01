package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/lacas-dev/lacas"
)

// replCmd is the interactive loop: one Engine persists across lines,
// so a variable assignment on one line is visible on the next. The
// read-one-line/evaluate/print shape is grounded on ivy.go's own
// top-level stdin loop (run/run.go's run()), generalized from ivy's
// line-oriented expression language to meta-commands plus LaTeX input.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(in io.Reader, out io.Writer) error {
	engine := lacas.New()
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case ":quit", ":exit":
			return nil
		case ":introspect":
			fmt.Fprintln(out, string(pretty.Pretty([]byte(engine.Introspect()))))
			continue
		case ":clear":
			fmt.Fprintln(out, string(pretty.Pretty([]byte(engine.Clear()))))
			continue
		}
		if line == "" {
			continue
		}
		fmt.Fprintln(out, string(pretty.Pretty([]byte(engine.Eval(line)))))
	}
	return scanner.Err()
}
