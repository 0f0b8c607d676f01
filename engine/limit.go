package engine

import (
	"github.com/lacas-dev/lacas/expr"
)

// Limit evaluates lim_{varName -> point} body by direct substitution,
// falling back to a single application of L'Hopital's rule when the
// substitution produces the indeterminate form 0/0 (spec §4.7's
// textbook scope: one L'Hopital pass, not an iterated/limit-theory
// engine). If neither resolves it, the delayed expr.Limit form is
// returned for the renderer to display unevaluated, mirroring how a
// bare \lim with no bound variable is already handled upstream.
func Limit(body expr.Expr, varName string, point expr.Expr) expr.Expr {
	num, den, isQuotient := asQuotient(body)
	if !isQuotient {
		direct := Simplify(expr.Substitute(body, varName, point))
		if isIndeterminate(direct) {
			return &expr.Limit{Body: body, Var: expr.NewSymbol(varName), Point: point}
		}
		return direct
	}

	num0 := Simplify(expr.Substitute(num, varName, point))
	den0 := Simplify(expr.Substitute(den, varName, point))
	if !expr.IsZero(den0) {
		return Simplify(expr.Product(num0, expr.Power(den0, expr.NewInt(-1))))
	}
	if !expr.IsZero(num0) {
		return &expr.Limit{Body: body, Var: expr.NewSymbol(varName), Point: point}
	}

	dNum := Diff(num, varName, 1)
	dDen := Diff(den, varName, 1)
	retryNum := Simplify(expr.Substitute(dNum, varName, point))
	retryDen := Simplify(expr.Substitute(dDen, varName, point))
	if expr.IsZero(retryDen) {
		return &expr.Limit{Body: body, Var: expr.NewSymbol(varName), Point: point}
	}
	return Simplify(expr.Product(retryNum, expr.Power(retryDen, expr.NewInt(-1))))
}

// isIndeterminate reports whether e is a Pow whose base is zero — the
// shape a substituted denominator leaves behind, since Power(0,-1) is
// a genuine division by zero and never canonicalizes to a number.
func isIndeterminate(e expr.Expr) bool {
	_, isPow := e.(*expr.Pow)
	return isPow && expr.IsZero(e.(*expr.Pow).Base)
}

// asQuotient decomposes e into (numerator, denominator) when e is a
// Mul containing one or more factors raised to a negative power.
func asQuotient(e expr.Expr) (num, den expr.Expr, ok bool) {
	m, isMul := e.(*expr.Mul)
	if !isMul {
		return nil, nil, false
	}
	var numFactors, denFactors []expr.Expr
	for _, f := range m.Factors {
		if p, isPow := f.(*expr.Pow); isPow {
			if n, isInt := p.Exp.(*expr.Integer); isInt && n.Val.Sign() < 0 {
				denFactors = append(denFactors, expr.Power(p.Base, expr.Product(expr.NewInt(-1), p.Exp)))
				continue
			}
		}
		numFactors = append(numFactors, f)
	}
	if len(denFactors) == 0 {
		return nil, nil, false
	}
	return expr.Product(numFactors...), expr.Product(denFactors...), true
}
