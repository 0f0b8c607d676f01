package latex_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/latex"
)

func parseAlgebraic(t *testing.T, src string, vars, funcs []string) expr.Expr {
	t.Helper()
	table := latex.NewNameTable(vars, funcs)
	return latex.ParseExpr(latex.ToAlgebraic(src), table)
}

func TestAlgebraicImplicitMultiplication(t *testing.T) {
	got := parseAlgebraic(t, "2x", nil, nil)
	want := expr.Product(expr.NewInt(2), expr.NewSymbol("x"))
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicUnknownMultiCharIdentifierSplitsIntoProduct(t *testing.T) {
	got := parseAlgebraic(t, "xy", nil, nil)
	want := expr.Product(expr.NewSymbol("x"), expr.NewSymbol("y"))
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicKnownMultiCharVariableStaysWhole(t *testing.T) {
	got := parseAlgebraic(t, "xy", []string{"xy"}, nil)
	want := expr.NewSymbol("xy")
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicGreekSpelledOutNameStaysWhole(t *testing.T) {
	got := parseAlgebraic(t, "alpha", nil, nil)
	want := expr.NewSymbol("alpha")
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicUnaryMinusBindsLooserThanPower(t *testing.T) {
	got := parseAlgebraic(t, "-x^2", nil, nil)
	x := expr.NewSymbol("x")
	want := expr.Product(expr.NewInt(-1), expr.Power(x, expr.NewInt(2)))
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicFunctionCall(t *testing.T) {
	got := parseAlgebraic(t, "sin(x)", nil, nil)
	want := expr.NewApplied("sin", expr.NewSymbol("x"))
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicEquationForm(t *testing.T) {
	got := parseAlgebraic(t, "x+1=2", nil, nil)
	eq, ok := got.(*expr.Equation)
	require.True(t, ok)
	require.True(t, expr.Equal(eq.Lhs, expr.Sum(expr.NewSymbol("x"), expr.NewInt(1))))
	require.True(t, expr.Equal(eq.Rhs, expr.NewInt(2)))
}

func TestAlgebraicDivisionBuildsPowerOfNegativeOne(t *testing.T) {
	got := parseAlgebraic(t, "1/2", nil, nil)
	want := expr.NewRational(big.NewInt(1), big.NewInt(2))
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicConstants(t *testing.T) {
	got := parseAlgebraic(t, "pi+e+i", nil, nil)
	want := expr.Sum(expr.ConstPi, expr.ConstE, expr.ConstI)
	require.True(t, expr.Equal(got, want))
}

func TestAlgebraicParenthesesOverrideImplicitMultiplication(t *testing.T) {
	got := parseAlgebraic(t, "(x+1)(x-1)", nil, nil)
	x := expr.NewSymbol("x")
	want := expr.Product(expr.Sum(x, expr.NewInt(1)), expr.Sum(x, expr.Product(expr.NewInt(-1), expr.NewInt(1))))
	require.True(t, expr.Equal(got, want))
}
