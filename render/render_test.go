package render_test

import (
	"math/big"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/render"
)

func TestLaTeXRationalRendersAsFrac(t *testing.T) {
	r := expr.NewRational(big.NewInt(1), big.NewInt(2))
	require.Equal(t, "\\frac{1}{2}", render.LaTeX(r))
}

func TestLaTeXPolynomial(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Sum(expr.Power(x, expr.NewInt(2)), expr.Product(expr.NewInt(2), x), expr.NewInt(1))
	snaps.MatchSnapshot(t, "poly_latex", render.LaTeX(body))
}

func TestPlainPowerUsesSuperscript(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Power(x, expr.NewInt(2))
	require.Equal(t, "x²", render.Plain(body))
}

func TestPlainMatrix(t *testing.T) {
	m := expr.NewMatrix(2, 2, []expr.Expr{
		expr.NewInt(1), expr.NewInt(2),
		expr.NewInt(3), expr.NewInt(4),
	})
	snaps.MatchSnapshot(t, "matrix_plain", render.Plain(m))
}

func TestResultBuilderAssignment(t *testing.T) {
	b := render.NewBuilder("x = 5", "x = 5", render.TypeAssignment).Name("x")
	res := b.Build()
	require.Contains(t, res.JSON(), `"name":"x"`)
	require.Contains(t, res.JSON(), `"type":"assignment"`)
}

func TestEmptyResult(t *testing.T) {
	require.Contains(t, render.Empty().JSON(), `"type":"empty"`)
}

func TestErrorResult(t *testing.T) {
	j := render.ErrorResult("Circular dependency detected involving 'p'").JSON()
	require.Contains(t, j, `"ok":false`)
	require.Contains(t, j, "ircular")
}
