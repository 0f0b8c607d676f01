package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplEvaluatesAndRetainsState(t *testing.T) {
	in := strings.NewReader("x=5\nx\n")
	var out strings.Builder
	require.NoError(t, runRepl(in, &out))
	// Once for the assignment, once more for reading x back.
	require.Equal(t, 2, strings.Count(out.String(), `"plain": "5"`))
}

func TestReplIntrospectAndClearMetaCommands(t *testing.T) {
	in := strings.NewReader("x=5\n:introspect\n:clear\n:quit\nx\n")
	var out strings.Builder
	require.NoError(t, runRepl(in, &out))
	text := out.String()
	require.Contains(t, text, "variables")
	require.Contains(t, text, `"ok": true`)
	// ":quit" stops the loop, so the trailing "x" line is never evaluated
	// and never surfaces a circular/unbound-symbol error for it.
	require.NotContains(t, text, "error")
}
