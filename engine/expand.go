package engine

import (
	"github.com/lacas-dev/lacas/expr"
)

// Expand distributes products over sums and expands integer powers of
// sums, recursively. Grounded on ivy's binary.go dispatch-by-shape
// style, generalized from numeric binary ops to a tree rewrite.
func Expand(e expr.Expr) expr.Expr {
	switch n := e.(type) {
	case *expr.Add:
		terms := make([]expr.Expr, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = Expand(t)
		}
		return expr.Sum(terms...)
	case *expr.Mul:
		return expandProduct(n.Factors)
	case *expr.Pow:
		return expandPow(Expand(n.Base), n.Exp)
	case *expr.Applied:
		args := make([]expr.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = Expand(a)
		}
		return expr.NewApplied(n.Head, args...)
	default:
		return e
	}
}

// expandProduct distributes each Add factor against the accumulated
// product of the rest, one factor at a time.
func expandProduct(factors []expr.Expr) expr.Expr {
	acc := expr.Expr(expr.NewInt(1))
	for _, f := range factors {
		acc = distribute(acc, Expand(f))
	}
	return acc
}

func distribute(a, b expr.Expr) expr.Expr {
	aTerms := summands(a)
	bTerms := summands(b)
	var out []expr.Expr
	for _, at := range aTerms {
		for _, bt := range bTerms {
			out = append(out, expr.Product(at, bt))
		}
	}
	return expr.Sum(out...)
}

func summands(e expr.Expr) []expr.Expr {
	if a, ok := e.(*expr.Add); ok {
		return a.Terms
	}
	return []expr.Expr{e}
}

// expandPow expands base^n for small positive integer n via repeated
// distribution (binomial-style, but done by direct multiplication
// rather than computing binomial coefficients, since n is expected to
// be small for a textbook-level CAS). Anything else passes through
// Power unexpanded.
func expandPow(base, exp expr.Expr) expr.Expr {
	n, ok := exp.(*expr.Integer)
	if !ok || !n.Val.IsInt64() {
		return expr.Power(base, exp)
	}
	k := n.Val.Int64()
	if k <= 1 || k > 12 {
		return expr.Power(base, exp)
	}
	if _, isAdd := base.(*expr.Add); !isAdd {
		return expr.Power(base, exp)
	}
	acc := expr.Expr(expr.NewInt(1))
	for i := int64(0); i < k; i++ {
		acc = distribute(acc, base)
	}
	return acc
}
