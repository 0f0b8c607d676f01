package engine

import (
	"math/big"

	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// Solve finds the roots of lhs = rhs for the variable named varName.
// It handles linear equations in that one variable, and quadratics
// with integer coefficients whose roots are rational, or complex with
// a perfect-square discriminant; irrational roots are not written in
// radical form (spec §4.7's textbook-level scope). Anything else throws
// engine_error, matching spec §7's guidance that an unsolvable input
// is reported rather than silently returning an unevaluated form.
func Solve(lhs, rhs expr.Expr, varName string) []expr.Expr {
	moved := expr.Sum(lhs, expr.Product(expr.NewInt(-1), rhs))
	add, ok := moved.(*expr.Add)
	if !ok {
		return solveSingleTerm(moved, varName)
	}
	if q, v, ok := asQuadratic(add); ok && v == varName {
		return solveQuadratic(q)
	}
	return solveLinear(add, varName)
}

// solveSingleTerm handles the degenerate case where lhs-rhs collapsed
// to one term: k*x = 0 -> x = 0, or a bare constant (no solution
// unless it's already zero).
func solveSingleTerm(e expr.Expr, varName string) []expr.Expr {
	coeff, rest := splitCoeffPublic(e)
	if sym, ok := rest.(*expr.Symbol); ok && sym.Name == varName {
		return []expr.Expr{expr.NewInt(0)}
	}
	if expr.IsOne(rest) && coeff.Sign() == 0 {
		return nil // 0 = 0: every value solves it; nothing discrete to report
	}
	engineErrorNoSolution(varName)
	return nil
}

func solveLinear(add *expr.Add, varName string) []expr.Expr {
	a, b := big.NewRat(0, 1), big.NewRat(0, 1)
	for _, t := range add.Terms {
		coeff, rest := splitCoeffPublic(t)
		if expr.IsOne(rest) {
			b.Add(b, coeff)
			continue
		}
		if sym, ok := rest.(*expr.Symbol); ok && sym.Name == varName {
			a.Add(a, coeff)
			continue
		}
		engineErrorNoSolution(varName)
	}
	if a.Sign() == 0 {
		engineErrorNoSolution(varName)
	}
	root := new(big.Rat).Neg(b)
	root.Quo(root, a)
	return []expr.Expr{expr.FromRat(root)}
}

func solveQuadratic(q quadratic) []expr.Expr {
	if !q.a.IsInt() || !q.b.IsInt() || !q.c.IsInt() {
		engineErrorNoSolution("")
	}
	a, b, c := q.a.Num(), q.b.Num(), q.c.Num()
	disc := new(big.Int).Mul(b, b)
	fourAC := new(big.Int).Mul(big.NewInt(4), new(big.Int).Mul(a, c))
	disc.Sub(disc, fourAC)
	twoA := new(big.Int).Mul(bigTwo, a)
	if disc.Sign() < 0 {
		// Complex roots: (-b +- sqrt(disc)) / 2a, rendered with the
		// imaginary constant since disc is negative.
		sqrtAbs := new(big.Int).Sqrt(new(big.Int).Abs(disc))
		if new(big.Int).Mul(sqrtAbs, sqrtAbs).Cmp(new(big.Int).Abs(disc)) == 0 {
			realPart := expr.FromRat(new(big.Rat).SetFrac(new(big.Int).Neg(b), twoA))
			imagCoeff := expr.FromRat(new(big.Rat).SetFrac(sqrtAbs, twoA))
			imagPart := expr.Product(imagCoeff, expr.ConstI)
			return []expr.Expr{
				expr.Sum(realPart, imagPart),
				expr.Sum(realPart, expr.Product(expr.NewInt(-1), imagPart)),
			}
		}
		engineErrorNoSolution("")
	}
	root := isqrtExact(disc)
	if root == nil {
		engineErrorNoSolution("")
	}
	r1 := new(big.Rat).SetFrac(new(big.Int).Sub(root, b), twoA)
	r2 := new(big.Rat).SetFrac(new(big.Int).Neg(new(big.Int).Add(b, root)), twoA)
	if r1.Cmp(r2) == 0 {
		return []expr.Expr{expr.FromRat(r1)}
	}
	return []expr.Expr{expr.FromRat(r2), expr.FromRat(r1)}
}

func engineErrorNoSolution(varName string) {
	if varName == "" {
		errs.Throw(errs.EngineError, "no closed-form solution found")
	}
	errs.Throw(errs.EngineError, "no closed-form solution found for '%s'", varName)
}
