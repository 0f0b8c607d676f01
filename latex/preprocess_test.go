package latex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lacas-dev/lacas/latex"
)

func TestPreprocessEmptyInputYieldsSentinel(t *testing.T) {
	require.Equal(t, latex.EmptySentinel, latex.Preprocess("   "))
	require.Equal(t, latex.EmptySentinel, latex.Preprocess(""))
}

func TestPreprocessStripsLeftRight(t *testing.T) {
	require.Equal(t, "(x+1)", latex.Preprocess(`\left(x+1\right)`))
}

func TestPreprocessReplacesOperators(t *testing.T) {
	require.Equal(t, "2*3", latex.Preprocess(`2\cdot 3`))
	require.Equal(t, "2*3", latex.Preprocess(`2\times 3`))
	require.Equal(t, "2/3", latex.Preprocess(`2\div 3`))
}

func TestPreprocessUnwrapsOperatorname(t *testing.T) {
	require.Equal(t, "argmax(x)", latex.Preprocess(`\operatorname{argmax}(x)`))
}

func TestPreprocessNormalizesLnToLog(t *testing.T) {
	require.Equal(t, `\log{x}`, latex.Preprocess(`\ln{x}`))
}

// Scenario 12 from spec §8: "\lim x+2" must read as the \lim command
// applied to "x+2", never as the product i*l*i*m*x (bare-function
// backslash insertion only fires once another command is present, and
// bare "lim" with no following backslash command stays untouched here
// since the algebraic lexer already knows the word "lim").
func TestPreprocessDoesNotMangleLimWithoutBackslashCommand(t *testing.T) {
	got := latex.Preprocess(`\lim x+2`)
	require.Contains(t, got, `\lim`)
	require.NotContains(t, got, "i*l*i*m*x")
}

func TestPreprocessInsertsBackslashBeforeBareFunctionWhenAnotherCommandPresent(t *testing.T) {
	got := latex.Preprocess(`\frac{1}{2}+sin(x)`)
	require.Contains(t, got, `\sin(x)`)
}

func TestPreprocessLeavesPlainIdentifierAlone(t *testing.T) {
	got := latex.Preprocess(`\frac{1}{2}+sinx`)
	require.NotContains(t, got, `\sin`)
}

func TestPreprocessNormalizesSuperscriptBraces(t *testing.T) {
	require.Equal(t, "x^{2}", latex.Preprocess("x^2"))
	require.Equal(t, "x^{2}", latex.Preprocess("x^{2}"))
}

func TestPreprocessNormalizesSubscriptBracesAfterBigOperator(t *testing.T) {
	got := latex.Preprocess(`\int_0^5 x`)
	require.Contains(t, got, `\int_{0}`)
}

func TestPreprocessLeavesIdentifierSubscriptAlone(t *testing.T) {
	got := latex.Preprocess(`e_1`)
	require.Equal(t, "e_1", got)
}
