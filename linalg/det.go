package linalg

import (
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// Det computes the determinant by cofactor expansion along the first
// row (spec §4.8: square precondition, simplified scalar result).
func Det(m *expr.Matrix) expr.Expr {
	if !m.IsSquare() {
		errs.Throw(errs.NonSquare, "determinant requires a square matrix")
	}
	return engine.Simplify(detRec(m))
}

func detRec(m *expr.Matrix) expr.Expr {
	n := m.Rows
	if n == 1 {
		return m.At(0, 0)
	}
	if n == 2 {
		return expr.Sum(
			expr.Product(m.At(0, 0), m.At(1, 1)),
			expr.Product(expr.NewInt(-1), m.At(0, 1), m.At(1, 0)),
		)
	}
	terms := make([]expr.Expr, 0, n)
	for c := 0; c < n; c++ {
		sign := int64(1)
		if c%2 == 1 {
			sign = -1
		}
		minor := minorMatrix(m, 0, c)
		terms = append(terms, expr.Product(expr.NewInt(sign), m.At(0, c), detRec(minor)))
	}
	return expr.Sum(terms...)
}
