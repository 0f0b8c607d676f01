package linalg

import "github.com/lacas-dev/lacas/expr"

// Rref drives m to reduced row-echelon form by whole-row operations,
// the same shape as value/matrix.go's inverse() elimination loop
// (scan down the column for a usable pivot, normalize it to 1, clear
// every other row), generalized from a fixed augmented-identity layout
// to a plain m-by-n matrix and from runtime-dispatched arithmetic to
// expr construction plus engine.Simplify. Returns the reduced matrix
// and the 0-indexed pivot columns, in order (spec §4.8).
func Rref(m *expr.Matrix) (*expr.Matrix, []int) {
	work := m.Clone()
	rows, cols := work.Rows, work.Cols
	pivotRow := 0
	var pivots []int
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if !isZeroExpr(work.At(r, col)) {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		if sel != pivotRow {
			swapRows(work, sel, pivotRow)
		}
		pivot := work.At(pivotRow, col)
		invPivot := expr.Power(pivot, expr.NewInt(-1))
		for c := 0; c < cols; c++ {
			work.Set(pivotRow, c, simplifyEntry(expr.Product(work.At(pivotRow, c), invPivot)))
		}
		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := work.At(r, col)
			if isZeroExpr(factor) {
				continue
			}
			for c := 0; c < cols; c++ {
				term := expr.Sum(work.At(r, c), expr.Product(expr.NewInt(-1), factor, work.At(pivotRow, c)))
				work.Set(r, c, simplifyEntry(term))
			}
		}
		pivots = append(pivots, col)
		pivotRow++
	}
	return work, pivots
}

// Rank is the number of pivots found by Rref (spec §4.8: any shape).
func Rank(m *expr.Matrix) int {
	_, pivots := Rref(m)
	return len(pivots)
}
