package linalg

import "github.com/lacas-dev/lacas/expr"

// Transpose swaps rows and columns; any shape is accepted (spec §4.8).
func Transpose(m *expr.Matrix) *expr.Matrix {
	out := expr.NewMatrix(m.Cols, m.Rows, make([]expr.Expr, m.Rows*m.Cols))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}
