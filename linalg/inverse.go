package linalg

import (
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// Inverse computes M^-1 via the classical adjugate (transpose of the
// cofactor matrix) divided by the determinant (spec §4.8: square and
// non-singular precondition). The adjugate method only divides once,
// at the very end, by a single scalar — unlike Gauss-Jordan pivoting,
// it never risks dividing by a symbolic entry that merely looks
// nonzero before simplification runs.
func Inverse(m *expr.Matrix) *expr.Matrix {
	if !m.IsSquare() {
		errs.Throw(errs.NonSquare, "inverse requires a square matrix")
	}
	det := Det(m)
	if expr.IsZero(det) {
		errs.Throw(errs.Singular, "matrix is singular")
	}
	n := m.Rows
	if n == 1 {
		return expr.NewMatrix(1, 1, []expr.Expr{engine.Simplify(expr.Power(det, expr.NewInt(-1)))})
	}
	adj := expr.NewMatrix(n, n, make([]expr.Expr, n*n))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sign := int64(1)
			if (r+c)%2 == 1 {
				sign = -1
			}
			cof := engine.Simplify(expr.Product(expr.NewInt(sign), detRec(minorMatrix(m, r, c))))
			adj.Set(c, r, cof) // transposed in place: this is the adjugate
		}
	}
	invDet := expr.Power(det, expr.NewInt(-1))
	out := expr.NewMatrix(n, n, make([]expr.Expr, n*n))
	for i, a := range adj.Data {
		out.Data[i] = engine.Simplify(expr.Product(a, invDet))
	}
	return out
}
