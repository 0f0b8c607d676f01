package linalg

import (
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// CharVar is the fresh variable name spec §4.8 names for the
// characteristic polynomial.
const CharVar = "λ"

// Charpoly returns det(m - λI), expanded (spec §4.8: square
// precondition, result is a polynomial in the fresh variable λ).
func Charpoly(m *expr.Matrix) expr.Expr {
	if !m.IsSquare() {
		errs.Throw(errs.NonSquare, "characteristic polynomial requires a square matrix")
	}
	n := m.Rows
	lambda := expr.NewSymbol(CharVar)
	shifted := expr.NewMatrix(n, n, make([]expr.Expr, n*n))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := m.At(r, c)
			if r == c {
				v = expr.Sum(v, expr.Product(expr.NewInt(-1), lambda))
			}
			shifted.Set(r, c, v)
		}
	}
	return engine.Expand(engine.Simplify(detRec(shifted)))
}
