package expr_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lacas-dev/lacas/expr"
)

func TestRationalReducesAndCollapsesToInteger(t *testing.T) {
	r := expr.NewRational(big.NewInt(4), big.NewInt(2))
	i, ok := r.(*expr.Integer)
	require.True(t, ok, "4/2 should collapse to an Integer")
	require.Equal(t, int64(2), i.Val.Int64())

	r2 := expr.NewRational(big.NewInt(-2), big.NewInt(-4))
	rat, ok := r2.(*expr.Rational)
	require.True(t, ok)
	require.Equal(t, "1", rat.Num.String())
	require.Equal(t, "2", rat.Den.String())
}

func TestSumCombinesLikeTerms(t *testing.T) {
	x := expr.NewSymbol("x")
	sum := expr.Sum(x, x)
	mul, ok := sum.(*expr.Mul)
	require.True(t, ok, "x+x should canonicalize to 2*x, got %v", sum)
	require.True(t, expr.Equal(mul.Factors[0], expr.NewInt(2)))
	require.True(t, expr.Equal(mul.Factors[1], x))
}

func TestSumOfNumbersCollapses(t *testing.T) {
	got := expr.Sum(expr.NewInt(1), expr.NewInt(2), expr.NewInt(3))
	require.True(t, expr.Equal(got, expr.NewInt(6)))
}

func TestProductOfLikeBasesCombinesExponents(t *testing.T) {
	x := expr.NewSymbol("x")
	got := expr.Product(x, x)
	pow, ok := got.(*expr.Pow)
	require.True(t, ok, "x*x should canonicalize to x^2, got %v", got)
	require.True(t, expr.Equal(pow.Exp, expr.NewInt(2)))
}

func TestProductByZeroIsZero(t *testing.T) {
	x := expr.NewSymbol("x")
	got := expr.Product(x, expr.NewInt(0))
	require.True(t, expr.Equal(got, expr.NewInt(0)))
}

func TestPowerIdentities(t *testing.T) {
	x := expr.NewSymbol("x")
	require.True(t, expr.Equal(expr.Power(x, expr.NewInt(0)), expr.NewInt(1)))
	require.True(t, expr.Equal(expr.Power(x, expr.NewInt(1)), x))
	require.True(t, expr.Equal(expr.Power(expr.NewInt(2), expr.NewInt(3)), expr.NewInt(8)))
}

func TestPowerOfPowerCollapses(t *testing.T) {
	x := expr.NewSymbol("x")
	inner := expr.Power(x, expr.NewInt(2))
	got := expr.Power(inner, expr.NewInt(3))
	pow, ok := got.(*expr.Pow)
	require.True(t, ok)
	require.True(t, expr.Equal(pow.Base, x))
	require.True(t, expr.Equal(pow.Exp, expr.NewInt(6)))
}

func TestFreeSymbols(t *testing.T) {
	x, y := expr.NewSymbol("x"), expr.NewSymbol("y")
	e := expr.Sum(expr.Product(x, y), expr.NewInt(1))
	names := expr.FreeSymbolNames(e)
	require.Equal(t, []string{"x", "y"}, names)
}

func TestSubstitute(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Sum(expr.Power(x, expr.NewInt(2)), expr.NewInt(1))
	got := expr.Substitute(body, "x", expr.NewInt(3))
	require.True(t, expr.Equal(got, expr.NewInt(10)))
}

func TestMatrixRejectsEmptyOrMismatched(t *testing.T) {
	require.Panics(t, func() { expr.NewMatrix(0, 0, nil) })
	require.Panics(t, func() { expr.NewMatrix(2, 2, []expr.Expr{expr.NewInt(1)}) })
}

func TestMatrixAtAndSet(t *testing.T) {
	m := expr.NewMatrix(2, 2, []expr.Expr{
		expr.NewInt(1), expr.NewInt(2),
		expr.NewInt(3), expr.NewInt(4),
	})
	require.True(t, expr.Equal(m.At(1, 0), expr.NewInt(3)))
	m.Set(0, 0, expr.NewInt(9))
	require.True(t, expr.Equal(m.At(0, 0), expr.NewInt(9)))
	require.True(t, m.IsSquare())
}
