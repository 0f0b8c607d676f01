package engine

import (
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// Integrate computes the indefinite integral of body with respect to
// varName (lower/upper nil), or the definite integral over
// [lower,upper] otherwise. It recognizes the sum rule, constant
// multiple rule, the power rule (including negative and fractional
// exponents other than -1), and the elementary forms for sin, cos,
// exp, and 1/x — the textbook set spec §4.7 names. An integrand
// outside that set throws engine_error rather than returning an
// unevaluated form, since the dispatcher's contract is "evaluate or
// report why not".
func Integrate(body expr.Expr, varName string, lower, upper expr.Expr) expr.Expr {
	antideriv := integrate1(body, varName)
	if lower == nil {
		return antideriv
	}
	at := func(point expr.Expr) expr.Expr {
		return expr.Substitute(antideriv, varName, point)
	}
	return expr.Sum(at(upper), expr.Product(expr.NewInt(-1), at(lower)))
}

func integrate1(e expr.Expr, v string) expr.Expr {
	if !expr.FreeSymbols(e)[v] {
		return expr.Product(e, expr.NewSymbol(v))
	}
	switch n := e.(type) {
	case *expr.Symbol:
		if n.Name == v {
			return expr.Product(expr.NewRational(bigOne, bigTwo), expr.Power(n, expr.NewInt(2)))
		}
	case *expr.Add:
		terms := make([]expr.Expr, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = integrate1(t, v)
		}
		return expr.Sum(terms...)
	case *expr.Mul:
		if _, ok := expr.AsRat(n.Factors[0]); ok {
			coeff, rest := splitCoeffPublic(n)
			return expr.Product(expr.FromRat(coeff), integrate1(rest, v))
		}
	case *expr.Pow:
		if sym, ok := n.Base.(*expr.Symbol); ok && sym.Name == v {
			if k, ok := expr.AsRat(n.Exp); ok {
				if k.Cmp(bigRatMinusOne) == 0 {
					return expr.NewApplied("log", n.Base)
				}
				newExp := expr.Sum(n.Exp, expr.NewInt(1))
				return expr.Product(expr.Power(newExp, expr.NewInt(-1)), expr.Power(n.Base, newExp))
			}
		}
	case *expr.Applied:
		if len(n.Args) == 1 {
			if sym, ok := n.Args[0].(*expr.Symbol); ok && sym.Name == v {
				switch n.Head {
				case "sin":
					return expr.Product(expr.NewInt(-1), expr.NewApplied("cos", sym))
				case "cos":
					return expr.NewApplied("sin", sym)
				case "exp":
					return expr.NewApplied("exp", sym)
				}
			}
		}
	}
	errs.Throw(errs.EngineError, "don't know how to integrate %s with respect to %s", e.String(), v)
	panic("unreachable")
}
