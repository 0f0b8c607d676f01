package engine

import (
	"math/big"

	"github.com/lacas-dev/lacas/expr"
)

// Simplify rewrites e into a shorter equivalent form using a fixed
// set of textbook-level identities (spec §4.7's Non-goals exclude a
// general-purpose simplifier, so this deliberately stops at: evaluate
// applied functions at recognized exact points, fold sin^2+cos^2,
// cancel double negation/division, and re-run the canonicalizing
// constructors so any rewrite lower in the tree propagates upward).
// Applied bottom-up, then re-applied once more in case a rewrite at
// one level exposes another higher up (e.g. sin(0)+cos(0) -> 0+1 -> 1).
func Simplify(e expr.Expr) expr.Expr {
	once := simplifyPass(e)
	twice := simplifyPass(once)
	return twice
}

func simplifyPass(e expr.Expr) expr.Expr {
	switch n := e.(type) {
	case *expr.Add:
		terms := make([]expr.Expr, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = simplifyPass(t)
		}
		return foldPythagorean(expr.Sum(terms...))
	case *expr.Mul:
		factors := make([]expr.Expr, len(n.Factors))
		for i, f := range n.Factors {
			factors[i] = simplifyPass(f)
		}
		return expr.Product(factors...)
	case *expr.Pow:
		return expr.Power(simplifyPass(n.Base), simplifyPass(n.Exp))
	case *expr.Applied:
		args := make([]expr.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = simplifyPass(a)
		}
		return simplifyApplied(n.Head, args)
	case *expr.Equation:
		return &expr.Equation{Lhs: simplifyPass(n.Lhs), Rhs: simplifyPass(n.Rhs)}
	default:
		return e
	}
}

// simplifyApplied folds the exact values it recognizes: sin, cos, tan
// and exp at 0, log(1)=0, log(e)=1, and sqrt of a non-negative
// perfect-square integer. Other arguments, multiples of pi/2 included,
// are left unevaluated.
func simplifyApplied(head string, args []expr.Expr) expr.Expr {
	if len(args) != 1 {
		return expr.NewApplied(head, args...)
	}
	u := args[0]
	switch head {
	case "sin":
		if expr.IsZero(u) {
			return expr.NewInt(0)
		}
	case "cos":
		if expr.IsZero(u) {
			return expr.NewInt(1)
		}
	case "tan":
		if expr.IsZero(u) {
			return expr.NewInt(0)
		}
	case "exp":
		if expr.IsZero(u) {
			return expr.NewInt(1)
		}
	case "log":
		if expr.IsOne(u) {
			return expr.NewInt(0)
		}
		if c, ok := u.(*expr.Constant); ok && c.C == expr.E {
			return expr.NewInt(1)
		}
	case "sqrt":
		if n, ok := u.(*expr.Integer); ok && n.Val.Sign() >= 0 {
			if r := isqrtExact(n.Val); r != nil {
				return expr.NewIntegerFromBig(r)
			}
		}
	}
	return expr.NewApplied(head, args...)
}

func isqrtExact(n *big.Int) *big.Int {
	if n.Sign() == 0 {
		return big.NewInt(0)
	}
	r := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(r, r)
	if sq.Cmp(n) == 0 {
		return r
	}
	return nil
}

// foldPythagorean rewrites sin(u)^2 + cos(u)^2 -> 1 when both terms
// share the same argument u and appear among the sum's terms.
func foldPythagorean(e expr.Expr) expr.Expr {
	add, ok := e.(*expr.Add)
	if !ok {
		return e
	}
	terms := add.Terms
	for i, ti := range terms {
		siArg, isSin2 := sinSquaredArg(ti)
		if !isSin2 {
			continue
		}
		for j, tj := range terms {
			if i == j {
				continue
			}
			cjArg, isCos2 := cosSquaredArg(tj)
			if isCos2 && expr.Equal(siArg, cjArg) {
				rest := make([]expr.Expr, 0, len(terms)-1)
				for k, t := range terms {
					if k != i && k != j {
						rest = append(rest, t)
					}
				}
				rest = append(rest, expr.NewInt(1))
				return expr.Sum(rest...)
			}
		}
	}
	return e
}

func sinSquaredArg(e expr.Expr) (expr.Expr, bool) {
	p, ok := e.(*expr.Pow)
	if !ok {
		return nil, false
	}
	n, ok := p.Exp.(*expr.Integer)
	if !ok || n.Val.Cmp(bigTwo) != 0 {
		return nil, false
	}
	a, ok := p.Base.(*expr.Applied)
	if !ok || a.Head != "sin" || len(a.Args) != 1 {
		return nil, false
	}
	return a.Args[0], true
}

func cosSquaredArg(e expr.Expr) (expr.Expr, bool) {
	p, ok := e.(*expr.Pow)
	if !ok {
		return nil, false
	}
	n, ok := p.Exp.(*expr.Integer)
	if !ok || n.Val.Cmp(bigTwo) != 0 {
		return nil, false
	}
	a, ok := p.Base.(*expr.Applied)
	if !ok || a.Head != "cos" || len(a.Args) != 1 {
		return nil, false
	}
	return a.Args[0], true
}
