package linalg

import (
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// Trace sums the diagonal entries (spec §4.8: square precondition,
// simplified scalar result).
func Trace(m *expr.Matrix) expr.Expr {
	if !m.IsSquare() {
		errs.Throw(errs.NonSquare, "trace requires a square matrix")
	}
	terms := make([]expr.Expr, m.Rows)
	for i := range terms {
		terms[i] = m.At(i, i)
	}
	return engine.Simplify(expr.Sum(terms...))
}
