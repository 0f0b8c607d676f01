package linalg

import (
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/expr"
)

// EigenValue pairs a root of the characteristic polynomial with its
// algebraic multiplicity (spec §4.8).
type EigenValue struct {
	Value expr.Expr
	Mult  int
}

// Eigenvals solves the characteristic polynomial for λ. Solve only
// closes linear and quadratic equations, so this only succeeds for
// 1x1 matrices and for 2x2 matrices whose eigenvalues Solve can write
// exactly (no irrational roots) — the textbook scope spec §4.7's Non-goals
// imply for the algebra engine generally; a 3x3-or-larger input
// surfaces Solve's engine_error rather than silently stopping short.
func Eigenvals(m *expr.Matrix) []EigenValue {
	poly := Charpoly(m)
	roots := engine.Solve(poly, expr.NewInt(0), CharVar)
	return groupMultiplicities(roots)
}

func groupMultiplicities(roots []expr.Expr) []EigenValue {
	var out []EigenValue
	for _, r := range roots {
		merged := false
		for i := range out {
			if expr.Equal(out[i].Value, r) {
				out[i].Mult++
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, EigenValue{Value: r, Mult: 1})
		}
	}
	return out
}

// EigenVect pairs an eigenvalue with a basis for its eigenspace (spec
// §4.8: list of eigenvalue, multiplicity, basis vectors).
type EigenVect struct {
	Value expr.Expr
	Mult  int
	Basis []*expr.Matrix
}

func Eigenvects(m *expr.Matrix) []EigenVect {
	n := m.Rows
	out := make([]EigenVect, 0)
	for _, ev := range Eigenvals(m) {
		shifted := expr.NewMatrix(n, n, make([]expr.Expr, n*n))
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v := m.At(r, c)
				if r == c {
					v = engine.Simplify(expr.Sum(v, expr.Product(expr.NewInt(-1), ev.Value)))
				}
				shifted.Set(r, c, v)
			}
		}
		out = append(out, EigenVect{Value: ev.Value, Mult: ev.Mult, Basis: Nullspace(shifted)})
	}
	return out
}
