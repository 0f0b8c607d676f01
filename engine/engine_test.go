package engine_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/expr"
)

func TestDiffPowerRule(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Power(x, expr.NewInt(3))
	got := engine.Diff(body, "x", 1)
	want := expr.Product(expr.NewInt(3), expr.Power(x, expr.NewInt(2)))
	require.True(t, expr.Equal(got, want))
}

func TestDiffProductRule(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Product(x, expr.NewApplied("sin", x))
	got := engine.Diff(body, "x", 1)
	want := expr.Sum(
		expr.NewApplied("sin", x),
		expr.Product(x, expr.NewApplied("cos", x)),
	)
	require.True(t, expr.Equal(got, want))
}

func TestDiffChainRuleSin(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.NewApplied("sin", expr.Power(x, expr.NewInt(2)))
	got := engine.Diff(body, "x", 1)
	want := expr.Product(
		expr.NewApplied("cos", expr.Power(x, expr.NewInt(2))),
		expr.NewInt(2), x,
	)
	require.True(t, expr.Equal(got, want))
}

func TestExpandDistributesProduct(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Product(expr.Sum(x, expr.NewInt(1)), expr.Sum(x, expr.NewInt(-1)))
	got := engine.Expand(body)
	want := expr.Sum(expr.Power(x, expr.NewInt(2)), expr.NewInt(-1))
	require.True(t, expr.Equal(got, want))
}

func TestSimplifyFoldsPythagoreanIdentity(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Sum(
		expr.Power(expr.NewApplied("sin", x), expr.NewInt(2)),
		expr.Power(expr.NewApplied("cos", x), expr.NewInt(2)),
	)
	got := engine.Simplify(body)
	require.True(t, expr.Equal(got, expr.NewInt(1)))
}

func TestSimplifyEvaluatesExactTrigAtZero(t *testing.T) {
	got := engine.Simplify(expr.NewApplied("sin", expr.NewInt(0)))
	require.True(t, expr.Equal(got, expr.NewInt(0)))
}

func TestFactorPullsOutGCD(t *testing.T) {
	x, y := expr.NewSymbol("x"), expr.NewSymbol("y")
	body := expr.Sum(expr.Product(expr.NewInt(4), x), expr.Product(expr.NewInt(6), y))
	got := engine.Factor(body)
	want := expr.Product(expr.NewInt(2), expr.Sum(expr.Product(expr.NewInt(2), x), expr.Product(expr.NewInt(3), y)))
	require.True(t, expr.Equal(got, want))
}

func TestFactorQuadraticWithIntegerRoots(t *testing.T) {
	x := expr.NewSymbol("x")
	// x^2 - 5x + 6 = (x-2)(x-3)
	body := expr.Sum(expr.Power(x, expr.NewInt(2)), expr.Product(expr.NewInt(-5), x), expr.NewInt(6))
	got := engine.Factor(body)
	want := expr.Product(
		expr.NewInt(1),
		expr.Sum(x, expr.NewInt(-2)),
		expr.Sum(x, expr.NewInt(-3)),
	)
	require.True(t, expr.Equal(got, want))
}

func TestSolveLinear(t *testing.T) {
	x := expr.NewSymbol("x")
	// 2x + 4 = 0 -> x = -2
	lhs := expr.Sum(expr.Product(expr.NewInt(2), x), expr.NewInt(4))
	got := engine.Solve(lhs, expr.NewInt(0), "x")
	require.Len(t, got, 1)
	require.True(t, expr.Equal(got[0], expr.NewInt(-2)))
}

func TestSolveQuadraticTwoRealRoots(t *testing.T) {
	x := expr.NewSymbol("x")
	// x^2 - 1 = 0 -> x = -1, 1
	lhs := expr.Sum(expr.Power(x, expr.NewInt(2)), expr.NewInt(-1))
	got := engine.Solve(lhs, expr.NewInt(0), "x")
	require.Len(t, got, 2)
	require.True(t, expr.Equal(got[0], expr.NewInt(-1)))
	require.True(t, expr.Equal(got[1], expr.NewInt(1)))
}

func TestIntegratePowerRule(t *testing.T) {
	x := expr.NewSymbol("x")
	got := engine.Integrate(expr.Power(x, expr.NewInt(2)), "x", nil, nil)
	want := expr.Product(expr.NewRational(big.NewInt(1), big.NewInt(3)), expr.Power(x, expr.NewInt(3)))
	require.True(t, expr.Equal(got, want))
}

func TestIntegrateDefinite(t *testing.T) {
	x := expr.NewSymbol("x")
	got := engine.Integrate(x, "x", expr.NewInt(0), expr.NewInt(2))
	require.True(t, expr.Equal(got, expr.NewInt(2)))
}

func TestLimitDirectSubstitution(t *testing.T) {
	x := expr.NewSymbol("x")
	got := engine.Limit(expr.Sum(x, expr.NewInt(1)), "x", expr.NewInt(2))
	require.True(t, expr.Equal(got, expr.NewInt(3)))
}

func TestLimitLHopitalOnZeroOverZero(t *testing.T) {
	x := expr.NewSymbol("x")
	// lim x->0 of sin(x)/x = 1
	body := expr.Product(expr.NewApplied("sin", x), expr.Power(x, expr.NewInt(-1)))
	got := engine.Limit(body, "x", expr.NewInt(0))
	require.True(t, expr.Equal(got, expr.NewInt(1)))
}

func TestSubsReplacesAndSimplifies(t *testing.T) {
	x := expr.NewSymbol("x")
	body := expr.Power(x, expr.NewInt(2))
	got := engine.Subs(body, "x", expr.NewInt(3))
	require.True(t, expr.Equal(got, expr.NewInt(9)))
}

func TestSeriesOfExpAtZero(t *testing.T) {
	x := expr.NewSymbol("x")
	got := engine.Series(expr.NewApplied("exp", x), "x", expr.NewInt(0), 2)
	want := expr.Sum(
		expr.NewInt(1),
		x,
		expr.Product(expr.NewRational(big.NewInt(1), big.NewInt(2)), expr.Power(x, expr.NewInt(2))),
	)
	require.True(t, expr.Equal(got, want))
}

func TestNEvaluatesToFloat(t *testing.T) {
	got := engine.N(expr.NewRational(big.NewInt(1), big.NewInt(4)), 64)
	f, _ := got.Val.Float64()
	require.InDelta(t, 0.25, f, 1e-9)
}
