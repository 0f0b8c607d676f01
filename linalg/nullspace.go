package linalg

import "github.com/lacas-dev/lacas/expr"

// Nullspace returns a basis for the solution space of m*x = 0, one
// vector per free (non-pivot) column of m's rref: the free variable is
// set to 1, every other free variable to 0, and each pivot variable is
// read off its row (spec §4.8).
func Nullspace(m *expr.Matrix) []*expr.Matrix {
	r, pivots := Rref(m)
	isPivotCol := make(map[int]int, len(pivots))
	for i, c := range pivots {
		isPivotCol[c] = i
	}
	var basis []*expr.Matrix
	for f := 0; f < m.Cols; f++ {
		if _, ok := isPivotCol[f]; ok {
			continue
		}
		vec := make([]expr.Expr, m.Cols)
		for i := range vec {
			vec[i] = expr.NewInt(0)
		}
		vec[f] = expr.NewInt(1)
		for _, pc := range pivots {
			pr := isPivotCol[pc]
			vec[pc] = simplifyEntry(expr.Product(expr.NewInt(-1), r.At(pr, f)))
		}
		basis = append(basis, expr.NewMatrix(m.Cols, 1, vec))
	}
	return basis
}

// Colspace returns the original (not reduced) columns of m that
// correspond to pivot columns of its rref — a basis for the column
// space (spec §4.8).
func Colspace(m *expr.Matrix) []*expr.Matrix {
	_, pivots := Rref(m)
	out := make([]*expr.Matrix, len(pivots))
	for i, c := range pivots {
		out[i] = expr.NewMatrix(m.Rows, 1, m.Col(c))
	}
	return out
}
