package latex

import (
	"strings"

	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

var matrixEnvNames = []string{"pmatrix", "bmatrix", "vmatrix", "matrix", "Bmatrix", "Vmatrix", "smallmatrix"}

// detectMatrixEnv reports whether s (already LaTeX-preprocessed) is a
// single \begin{...matrix}...\end{...matrix} environment, and if so
// returns its inner content.
func detectMatrixEnv(s string) (inner string, ok bool) {
	s = strings.TrimSpace(s)
	for _, name := range matrixEnvNames {
		begin := `\begin{` + name + `}`
		end := `\end{` + name + `}`
		if strings.HasPrefix(s, begin) && strings.HasSuffix(s, end) {
			return s[len(begin) : len(s)-len(end)], true
		}
	}
	return "", false
}

// ParseMatrix parses a matrix environment's content into an
// expr.Matrix (spec §4.4): rows are split on "\\", cells within a row
// on "&", an empty cell reads as zero, and a row-length mismatch
// across the matrix throws errs.JaggedMatrix.
func ParseMatrix(inner string, table *NameTable) *expr.Matrix {
	rowStrs := strings.Split(inner, `\\`)
	var rows [][]expr.Expr
	cols := -1
	for _, rowStr := range rowStrs {
		rowStr = strings.TrimSpace(rowStr)
		if rowStr == "" {
			continue
		}
		cellStrs := strings.Split(rowStr, "&")
		row := make([]expr.Expr, len(cellStrs))
		for i, cellStr := range cellStrs {
			cellStr = strings.TrimSpace(cellStr)
			if cellStr == "" {
				row[i] = expr.NewInt(0)
				continue
			}
			row[i] = ParseExpr(ToAlgebraic(cellStr), table)
		}
		if cols == -1 {
			cols = len(row)
		} else if len(row) != cols {
			errs.Throw(errs.JaggedMatrix, "matrix rows have inconsistent lengths")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 || cols <= 0 {
		errs.Throw(errs.JaggedMatrix, "matrix has no rows")
	}
	data := make([]expr.Expr, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return expr.NewMatrix(len(rows), cols, data)
}
