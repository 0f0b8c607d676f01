// Package dispatch implements the command-priority pipeline (spec
// §4.2): for one piece of preprocessed input, try a named command,
// then a LaTeX big-operator form, then a matrix literal, then a
// function definition, then a variable assignment, then an equation,
// and finally fall back to plain-expression evaluation. Grounded on
// run/run.go's top-level dispatch-by-shape loop, generalized from
// ivy's "statement vs. expression" split into this spec's seven-way
// priority list.
package dispatch

import (
	"strings"

	"github.com/lacas-dev/lacas/latex"
)

// knownCommands is the closed set from spec §4.2.
var knownCommands = map[string]bool{
	"solve": true, "factor": true, "expand": true, "simplify": true,
	"diff": true, "integrate": true, "limit": true, "series": true,
	"n": true, "subs": true,
	"det": true, "inv": true, "trace": true, "transpose": true,
	"eigenvals": true, "eigenvects": true, "rank": true, "rref": true,
	"charpoly": true, "nullspace": true, "colspace": true,
}

// detectNamedCommand recognizes "NAME(...)", optionally backslash
// prefixed, where NAME (case-insensitive) is in knownCommands and the
// parenthesized argument list spans the rest of the (trimmed) input.
// It returns NAME lowercased and the comma-split argument strings.
func detectNamedCommand(pre string) (name string, args []string, ok bool) {
	s := strings.TrimSpace(pre)
	s = strings.TrimPrefix(s, `\`)
	i := strings.IndexByte(s, '(')
	if i <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	rawName := s[:i]
	lower := strings.ToLower(rawName)
	if !knownCommands[lower] {
		return "", nil, false
	}
	inner := s[i+1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return lower, nil, true
	}
	return lower, latex.SplitTopLevel(inner), true
}
