// Package engine implements the algebraic commands (spec §4.7): one
// file per operation, grounded on value/power.go, value/sqrt.go,
// value/sin.go, value/log.go, and value/binary.go's convention of a
// small dedicated file per builtin instead of one giant switch.
package engine

import (
	"github.com/lacas-dev/lacas/expr"
)

// Diff differentiates body with respect to the symbol named varName,
// order times (order defaults to 1 at the call site). Unrecognized
// Applied heads differentiate via the chain rule only when the engine
// knows the head's derivative (diffApplied); anything else is left as
// an undifferentiated expr.Derivative, per the textbook-level scope
// spec §4.7's Non-goals set for this command.
func Diff(body expr.Expr, varName string, order int) expr.Expr {
	for i := 0; i < order; i++ {
		body = diff1(body, varName)
	}
	return body
}

func diff1(e expr.Expr, v string) expr.Expr {
	switch n := e.(type) {
	case *expr.Integer, *expr.Rational, *expr.Float, *expr.Constant:
		return expr.NewInt(0)
	case *expr.Symbol:
		if n.Name == v {
			return expr.NewInt(1)
		}
		return expr.NewInt(0)
	case *expr.Add:
		terms := make([]expr.Expr, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = diff1(t, v)
		}
		return expr.Sum(terms...)
	case *expr.Mul:
		return diffProduct(n.Factors, v)
	case *expr.Pow:
		return diffPow(n, v)
	case *expr.Applied:
		return diffApplied(n, v)
	default:
		return &expr.Derivative{Body: e, Var: expr.NewSymbol(v), Order: 1}
	}
}

// diffProduct applies the generalized product rule: d/dx(f1*f2*...*fn)
// = sum over i of (d/dx fi) * product of the rest.
func diffProduct(factors []expr.Expr, v string) expr.Expr {
	var terms []expr.Expr
	for i := range factors {
		rest := make([]expr.Expr, 0, len(factors)-1)
		for j, f := range factors {
			if j != i {
				rest = append(rest, f)
			}
		}
		d := diff1(factors[i], v)
		terms = append(terms, expr.Product(append(rest, d)...))
	}
	return expr.Sum(terms...)
}

// diffPow handles base^exp. When exp is a constant w.r.t. v, the power
// rule applies (n*base^(n-1)*base'). When base is a constant w.r.t. v
// and exp depends on v, it's an exponential derivative
// (base^exp * ln(base) * exp'). A base that depends on v with a
// non-constant exponent falls back to logarithmic differentiation.
func diffPow(p *expr.Pow, v string) expr.Expr {
	baseHasV := expr.FreeSymbols(p.Base)[v]
	expHasV := expr.FreeSymbols(p.Exp)[v]
	switch {
	case !baseHasV && !expHasV:
		return expr.NewInt(0)
	case baseHasV && !expHasV:
		power := expr.Power(p.Base, expr.Sum(p.Exp, expr.NewInt(-1)))
		return expr.Product(p.Exp, power, diff1(p.Base, v))
	case !baseHasV && expHasV:
		lnBase := expr.NewApplied("log", p.Base)
		return expr.Product(p, lnBase, diff1(p.Exp, v))
	default:
		// d/dx base^exp = base^exp * (exp' * ln(base) + exp * base'/base)
		lnBase := expr.NewApplied("log", p.Base)
		term1 := expr.Product(diff1(p.Exp, v), lnBase)
		term2 := expr.Product(p.Exp, diff1(p.Base, v), expr.Power(p.Base, expr.NewInt(-1)))
		return expr.Product(p, expr.Sum(term1, term2))
	}
}

// diffApplied holds the chain rule for the builtin functions the
// engine recognizes; derivative of f(u) is f'(u)*u'.
func diffApplied(a *expr.Applied, v string) expr.Expr {
	if len(a.Args) != 1 {
		return &expr.Derivative{Body: a, Var: expr.NewSymbol(v), Order: 1}
	}
	u := a.Args[0]
	du := diff1(u, v)
	switch a.Head {
	case "sin":
		return expr.Product(expr.NewApplied("cos", u), du)
	case "cos":
		return expr.Product(expr.NewInt(-1), expr.NewApplied("sin", u), du)
	case "tan":
		sec2 := expr.Power(expr.NewApplied("cos", u), expr.NewInt(-2))
		return expr.Product(sec2, du)
	case "exp":
		return expr.Product(a, du)
	case "log":
		return expr.Product(expr.Power(u, expr.NewInt(-1)), du)
	case "sqrt":
		half := expr.NewRational(bigOne, bigTwo)
		return expr.Product(half, expr.Power(u, expr.NewRational(bigMinusOne, bigTwo)), du)
	case "arcsin":
		inner := expr.Power(expr.Sum(expr.NewInt(1), expr.Product(expr.NewInt(-1), expr.Power(u, expr.NewInt(2)))), expr.NewRational(bigMinusOne, bigTwo))
		return expr.Product(inner, du)
	case "arctan":
		inner := expr.Power(expr.Sum(expr.NewInt(1), expr.Power(u, expr.NewInt(2))), expr.NewInt(-1))
		return expr.Product(inner, du)
	case "sinh":
		return expr.Product(expr.NewApplied("cosh", u), du)
	case "cosh":
		return expr.Product(expr.NewApplied("sinh", u), du)
	default:
		return &expr.Derivative{Body: a, Var: expr.NewSymbol(v), Order: 1}
	}
}
