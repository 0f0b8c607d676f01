package engine

import (
	"math/big"

	"github.com/lacas-dev/lacas/expr"
)

// Series builds the Taylor expansion of body around point, truncated
// after the degree-order term: sum_{k=0}^{order} f^(k)(point)/k! * (x-point)^k.
// Repeated differentiation is the textbook approach and matches
// spec §4.7's scope; a convergence analysis is explicitly out of
// scope.
func Series(body expr.Expr, varName string, point expr.Expr, order int) expr.Expr {
	var terms []expr.Expr
	deriv := body
	fact := big.NewInt(1)
	x := expr.NewSymbol(varName)
	for k := 0; k <= order; k++ {
		if k > 0 {
			deriv = Diff(deriv, varName, 1)
			fact.Mul(fact, big.NewInt(int64(k)))
		}
		coeffVal := Simplify(expr.Substitute(deriv, varName, point))
		if expr.IsZero(coeffVal) {
			continue
		}
		coeff := expr.Product(coeffVal, expr.NewRational(bigOne, fact))
		delta := expr.Sum(x, expr.Product(expr.NewInt(-1), point))
		var powerTerm expr.Expr
		if k == 0 {
			powerTerm = expr.NewInt(1)
		} else {
			powerTerm = expr.Power(delta, expr.NewInt(int64(k)))
		}
		terms = append(terms, expr.Product(coeff, powerTerm))
	}
	return expr.Sum(terms...)
}
