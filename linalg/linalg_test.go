package linalg_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/linalg"
)

func mat2(a, b, c, d int64) *expr.Matrix {
	return expr.NewMatrix(2, 2, []expr.Expr{
		expr.NewInt(a), expr.NewInt(b), expr.NewInt(c), expr.NewInt(d),
	})
}

func TestDetTwoByTwo(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	got := linalg.Det(m)
	require.True(t, expr.Equal(got, expr.NewInt(-2)))
}

func TestDetThrowsOnNonSquare(t *testing.T) {
	m := expr.NewMatrix(1, 2, []expr.Expr{expr.NewInt(1), expr.NewInt(2)})
	require.Panics(t, func() { linalg.Det(m) })
}

func TestTraceTwoByTwo(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	got := linalg.Trace(m)
	require.True(t, expr.Equal(got, expr.NewInt(5)))
}

func TestTransposeSwapsRowsAndCols(t *testing.T) {
	m := expr.NewMatrix(2, 3, []expr.Expr{
		expr.NewInt(1), expr.NewInt(2), expr.NewInt(3),
		expr.NewInt(4), expr.NewInt(5), expr.NewInt(6),
	})
	got := linalg.Transpose(m)
	require.Equal(t, 3, got.Rows)
	require.Equal(t, 2, got.Cols)
	require.True(t, expr.Equal(got.At(1, 0), expr.NewInt(2)))
	require.True(t, expr.Equal(got.At(2, 1), expr.NewInt(6)))
}

func TestInverseTwoByTwo(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	got := linalg.Inverse(m)
	want := expr.NewMatrix(2, 2, []expr.Expr{
		expr.NewInt(-2), expr.NewInt(1),
		expr.NewRational(big.NewInt(3), big.NewInt(2)), expr.NewRational(big.NewInt(-1), big.NewInt(2)),
	})
	for i := range want.Data {
		require.True(t, expr.Equal(got.Data[i], want.Data[i]), "entry %d: got %s want %s", i, got.Data[i], want.Data[i])
	}
}

func TestInverseOneByOne(t *testing.T) {
	m := expr.NewMatrix(1, 1, []expr.Expr{expr.NewInt(5)})
	got := linalg.Inverse(m)
	require.Equal(t, 1, got.Rows)
	require.Equal(t, 1, got.Cols)
	require.True(t, expr.Equal(got.At(0, 0), expr.NewRational(big.NewInt(1), big.NewInt(5))))
}

func TestInverseThrowsOnSingular(t *testing.T) {
	m := mat2(1, 2, 2, 4)
	require.Panics(t, func() { linalg.Inverse(m) })
}

func TestRrefIdentifiesFullRankPivots(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	rref, pivots := linalg.Rref(m)
	require.Equal(t, []int{0, 1}, pivots)
	require.True(t, expr.Equal(rref.At(0, 0), expr.NewInt(1)))
	require.True(t, expr.Equal(rref.At(0, 1), expr.NewInt(0)))
	require.True(t, expr.Equal(rref.At(1, 0), expr.NewInt(0)))
	require.True(t, expr.Equal(rref.At(1, 1), expr.NewInt(1)))
}

func TestRankOfSingularMatrixIsOne(t *testing.T) {
	m := mat2(1, 2, 2, 4)
	require.Equal(t, 1, linalg.Rank(m))
}

func TestNullspaceOfSingularMatrix(t *testing.T) {
	m := mat2(1, 2, 2, 4)
	basis := linalg.Nullspace(m)
	require.Len(t, basis, 1)
	// basis vector is (-2, 1): row 0 is 1*x0 + 2*x1 = 0, free var x1=1 -> x0=-2
	require.True(t, expr.Equal(basis[0].At(0, 0), expr.NewInt(-2)))
	require.True(t, expr.Equal(basis[0].At(1, 0), expr.NewInt(1)))
}

func TestColspaceOfSingularMatrix(t *testing.T) {
	m := mat2(1, 2, 2, 4)
	cols := linalg.Colspace(m)
	require.Len(t, cols, 1)
	require.True(t, expr.Equal(cols[0].At(0, 0), expr.NewInt(1)))
	require.True(t, expr.Equal(cols[0].At(1, 0), expr.NewInt(2)))
}

func TestCharpolyIsSumInFreshVariableOnly(t *testing.T) {
	m := mat2(1, 2, 3, 4)
	poly := linalg.Charpoly(m)
	// lambda^2 - 5*lambda - 2 has roots (5 +- sqrt(33))/2; instead of
	// comparing the expanded form verbatim, check it is an Add whose
	// free symbols are exactly {λ}.
	require.IsType(t, &expr.Add{}, poly)
	require.Equal(t, []string{linalg.CharVar}, expr.FreeSymbolNames(poly))
}

func TestEigenvalsOfDiagonalMatrix(t *testing.T) {
	m := mat2(2, 0, 0, 3)
	evals := linalg.Eigenvals(m)
	require.Len(t, evals, 2)
	found2, found3 := false, false
	for _, ev := range evals {
		if expr.Equal(ev.Value, expr.NewInt(2)) {
			found2 = true
		}
		if expr.Equal(ev.Value, expr.NewInt(3)) {
			found3 = true
		}
		require.Equal(t, 1, ev.Mult)
	}
	require.True(t, found2)
	require.True(t, found3)
}

func TestEigenvectsOfDiagonalMatrix(t *testing.T) {
	m := mat2(2, 0, 0, 3)
	evs := linalg.Eigenvects(m)
	require.Len(t, evs, 2)
	for _, ev := range evs {
		require.Len(t, ev.Basis, 1)
	}
}

func TestSimplifyNoOpOnIntegerMatrixEntries(t *testing.T) {
	// sanity check that linalg doesn't depend on engine.Simplify
	// mutating a plain integer matrix's values unexpectedly.
	m := mat2(1, 0, 0, 1)
	got := engine.Simplify(linalg.Trace(m))
	require.True(t, expr.Equal(got, expr.NewInt(2)))
}
