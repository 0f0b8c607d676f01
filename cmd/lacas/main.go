// Command lacas is a thin demo CLI over the lacas library: it is not
// part of the embeddable core (the browser host talks to the Engine
// type directly), just a terminal harness for trying it out. Grounded
// on go-dws's cmd/dwscript layout (a package-level rootCmd plus one
// file per subcommand) rather than ivy's flag-package main, since the
// command tree here (eval / repl / introspect / clear) is naturally a
// cobra command set.
package main

import (
	"fmt"
	"os"

	"github.com/lacas-dev/lacas/cmd/lacas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lacas:", err)
		os.Exit(1)
	}
}
