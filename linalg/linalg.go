// Package linalg implements the matrix commands of spec §4.8 (det,
// inv, trace, transpose, eigenvals, eigenvects, rank, rref, charpoly,
// nullspace, colspace) over expr.Matrix.
//
// Grounded on value/matrix.go's inverse(), which builds an augmented
// [M | I] matrix and drives it to [I | M^-1] with whole-row
// operations. That method divides by the pivot in place, which is
// fine for value.Value's runtime-dispatched arithmetic but fragile for
// a matrix that may hold free symbols: a symbolic pivot that happens
// to simplify to zero only later is easy to divide by unnoticed. This
// package keeps the teacher's row-reduction shape for rref/rank/
// nullspace/colspace (those only ever need a yes/no zero test per
// pivot), but uses the division-free cofactor/adjugate method for
// det/inverse/charpoly, where exactness matters most.
package linalg

import (
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/expr"
)

func isZeroExpr(e expr.Expr) bool {
	return expr.IsZero(engine.Simplify(e))
}

func simplifyEntry(e expr.Expr) expr.Expr {
	return engine.Simplify(e)
}

func minorMatrix(m *expr.Matrix, skipRow, skipCol int) *expr.Matrix {
	data := make([]expr.Expr, 0, (m.Rows-1)*(m.Cols-1))
	for r := 0; r < m.Rows; r++ {
		if r == skipRow {
			continue
		}
		for c := 0; c < m.Cols; c++ {
			if c == skipCol {
				continue
			}
			data = append(data, m.At(r, c))
		}
	}
	return expr.NewMatrix(m.Rows-1, m.Cols-1, data)
}

func swapRows(m *expr.Matrix, a, b int) {
	ra, rb := m.Row(a), m.Row(b)
	for c := 0; c < m.Cols; c++ {
		m.Set(a, c, rb[c])
		m.Set(b, c, ra[c])
	}
}
