package engine

import (
	"math/big"

	"github.com/lacas-dev/lacas/expr"
)

// Factor handles the two textbook-level cases spec §4.7 asks for:
// pulling out an integer GCD common to every term of a sum, and
// factoring a single-variable monic-or-not quadratic with rational
// roots into a*(x-r1)*(x-r2) form. Anything else is returned unchanged
// — general polynomial factorization is explicitly out of scope.
func Factor(e expr.Expr) expr.Expr {
	add, ok := e.(*expr.Add)
	if !ok {
		return e
	}
	if q, varName, ok := asQuadratic(add); ok {
		if factored, ok := factorQuadratic(q, varName); ok {
			return factored
		}
	}
	return factorGCD(add)
}

// factorGCD pulls the integer GCD of every term's numeric coefficient
// out as a leading factor: 2x+4y -> 2*(x+2y).
func factorGCD(add *expr.Add) expr.Expr {
	g := big.NewInt(0)
	coeffs := make([]*big.Rat, len(add.Terms))
	for i, t := range add.Terms {
		c, _ := splitCoeffPublic(t)
		coeffs[i] = c
		if c.IsInt() {
			g.GCD(nil, nil, g, new(big.Int).Abs(c.Num()))
		} else {
			return add // mixed fractional coefficients: skip
		}
	}
	if g.Cmp(bigOne) <= 0 {
		return add
	}
	rest := make([]expr.Expr, len(add.Terms))
	for i, t := range add.Terms {
		rest[i] = expr.Product(expr.NewRational(big.NewInt(1), g), t)
	}
	return expr.Product(expr.NewIntegerFromBig(g), expr.Sum(rest...))
}

// splitCoeffPublic mirrors expr's internal splitCoeff for a Mul/plain
// term, returning its leading rational coefficient.
func splitCoeffPublic(t expr.Expr) (*big.Rat, expr.Expr) {
	if r, ok := expr.AsRat(t); ok {
		return r, expr.NewInt(1)
	}
	m, ok := t.(*expr.Mul)
	if !ok {
		return big.NewRat(1, 1), t
	}
	if len(m.Factors) > 0 {
		if r, ok := expr.AsRat(m.Factors[0]); ok {
			return r, expr.Product(m.Factors[1:]...)
		}
	}
	return big.NewRat(1, 1), t
}

type quadratic struct {
	a, b, c *big.Rat
}

// asQuadratic recognizes add as a*x^2+b*x+c in a single free variable
// and returns its coefficients.
func asQuadratic(add *expr.Add) (quadratic, string, bool) {
	free := expr.FreeSymbolNames(add)
	if len(free) != 1 {
		return quadratic{}, "", false
	}
	v := free[0]
	a, b, c := big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1)
	for _, t := range add.Terms {
		coeff, rest := splitCoeffPublic(t)
		if expr.IsOne(rest) {
			c.Add(c, coeff)
			continue
		}
		if sym, ok := rest.(*expr.Symbol); ok && sym.Name == v {
			b.Add(b, coeff)
			continue
		}
		if p, ok := rest.(*expr.Pow); ok {
			sym, ok2 := p.Base.(*expr.Symbol)
			n, ok3 := p.Exp.(*expr.Integer)
			if ok2 && ok3 && sym.Name == v && n.Val.Cmp(bigTwo) == 0 {
				a.Add(a, coeff)
				continue
			}
		}
		return quadratic{}, "", false
	}
	if a.Sign() == 0 {
		return quadratic{}, "", false
	}
	return quadratic{a: a, b: b, c: c}, v, true
}

// factorQuadratic finds integer or rational roots via the quadratic
// formula and, when the discriminant is a perfect square, returns
// a*(x-r1)*(x-r2).
func factorQuadratic(q quadratic, v string) (expr.Expr, bool) {
	// discriminant = b^2 - 4ac, all as big.Rat; only handle the
	// integer-coefficient case so the discriminant's perfect-square
	// test is well-defined.
	if !q.a.IsInt() || !q.b.IsInt() || !q.c.IsInt() {
		return nil, false
	}
	a, b, c := q.a.Num(), q.b.Num(), q.c.Num()
	disc := new(big.Int).Mul(b, b)
	fourAC := new(big.Int).Mul(big.NewInt(4), new(big.Int).Mul(a, c))
	disc.Sub(disc, fourAC)
	if disc.Sign() < 0 {
		return nil, false
	}
	root := isqrtExact(disc)
	if root == nil {
		return nil, false
	}
	twoA := new(big.Int).Mul(bigTwo, a)
	r1 := big.NewRat(1, 1).SetFrac(new(big.Int).Neg(new(big.Int).Add(b, root)), twoA)
	r2 := big.NewRat(1, 1).SetFrac(new(big.Int).Sub(root, b), twoA)
	x := expr.NewSymbol(v)
	f1 := expr.Sum(x, expr.FromRat(new(big.Rat).Neg(r1)))
	f2 := expr.Sum(x, expr.FromRat(new(big.Rat).Neg(r2)))
	return expr.Product(expr.NewIntegerFromBig(a), f1, f2), true
}
