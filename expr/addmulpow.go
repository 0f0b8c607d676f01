package expr

import "math/big"

// Add is the canonical sum node: it flattens nested Adds, combines
// numeric terms, sums the coefficients of like terms (x + x -> 2*x),
// drops zero terms, and sorts the remainder into a stable order. The
// data-model invariant ("operands are already in canonical form")
// holds because every Expr reaching here was itself built through
// these constructors. Build one with Sum, never with a struct literal.
type Add struct {
	Terms []Expr
}

func (a *Add) Kind() Kind { return KindAdd }
func (a *Add) String() string {
	s := ""
	for i, t := range a.Terms {
		if i > 0 {
			s += " + "
		}
		s += t.String()
	}
	if s == "" {
		return "0"
	}
	return s
}

// Sum builds a canonical Add (or collapses to a simpler Expr when the
// result has zero or one surviving term).
func Sum(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	var flatten func(Expr)
	flatten = func(e Expr) {
		if a, ok := e.(*Add); ok {
			for _, t := range a.Terms {
				flatten(t)
			}
			return
		}
		flat = append(flat, e)
	}
	for _, t := range terms {
		flatten(t)
	}

	numSum := new(big.Rat)
	var floatSum *big.Float
	type group struct {
		rest  Expr
		coeff *big.Rat
	}
	order := []string{}
	groups := map[string]*group{}

	for _, t := range flat {
		if f, ok := t.(*Float); ok {
			if floatSum == nil {
				floatSum = new(big.Float).SetPrec(f.Val.Prec())
			}
			floatSum.Add(floatSum, f.Val)
			continue
		}
		if IsNumeric(t) {
			r, _ := AsRat(t)
			numSum.Add(numSum, r)
			continue
		}
		coeff, rest := splitCoeff(t)
		key := rest.String()
		g, ok := groups[key]
		if !ok {
			g = &group{rest: rest, coeff: new(big.Rat)}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff.Add(g.coeff, coeff)
	}

	var result []Expr
	sortStrings(order)
	for _, key := range order {
		g := groups[key]
		if g.coeff.Sign() == 0 {
			continue
		}
		if g.coeff.Cmp(big.NewRat(1, 1)) == 0 {
			result = append(result, g.rest)
		} else {
			result = append(result, Product(FromRat(g.coeff), g.rest))
		}
	}
	sortExprs(result)

	if floatSum != nil {
		// Mixing exact and float terms collapses everything to float,
		// matching "Float: only when user forces numeric".
		rf, _ := new(big.Float).SetPrec(floatSum.Prec()).SetRat(numSum).Float64()
		floatSum.Add(floatSum, big.NewFloat(rf))
		for _, r := range result {
			rv, _ := new(big.Float).SetPrec(floatSum.Prec()).SetString(r.String())
			if rv != nil {
				floatSum.Add(floatSum, rv)
			}
		}
		return &Float{Val: floatSum, Prec: 15}
	}

	if numSum.Sign() != 0 {
		result = append(result, FromRat(numSum))
	}
	switch len(result) {
	case 0:
		return NewInt(0)
	case 1:
		return result[0]
	default:
		return &Add{Terms: result}
	}
}

// splitCoeff decomposes t into (numeric coefficient, rest) so that
// t == coeff * rest. Used to detect and combine like terms in Sum.
func splitCoeff(t Expr) (*big.Rat, Expr) {
	one := big.NewRat(1, 1)
	m, ok := t.(*Mul)
	if !ok {
		return one, t
	}
	if len(m.Factors) > 0 && IsNumeric(m.Factors[0]) {
		r, _ := AsRat(m.Factors[0])
		rest := m.Factors[1:]
		switch len(rest) {
		case 0:
			return r, NewInt(1)
		case 1:
			return r, rest[0]
		default:
			return r, &Mul{Factors: rest}
		}
	}
	return one, t
}

// Mul is the canonical product node: flattens nested Muls, combines
// the numeric coefficient, merges like bases by summing exponents
// (x*x -> x^2), drops a factor whose exponent reduces to zero, and
// short-circuits to 0 on a numeric zero factor. Build one with
// Product, never with a struct literal.
type Mul struct {
	Factors []Expr
}

func (m *Mul) Kind() Kind { return KindMul }
func (m *Mul) String() string {
	s := ""
	for i, f := range m.Factors {
		if i > 0 {
			s += "*"
		}
		s += f.String()
	}
	if s == "" {
		return "1"
	}
	return s
}

// Product builds a canonical Mul (or collapses to a simpler Expr).
func Product(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	var flatten func(Expr)
	flatten = func(e Expr) {
		if m, ok := e.(*Mul); ok {
			for _, f := range m.Factors {
				flatten(f)
			}
			return
		}
		flat = append(flat, e)
	}
	for _, f := range factors {
		flatten(f)
	}

	coeff := big.NewRat(1, 1)
	var floatCoeff *big.Float
	type group struct {
		base Expr
		exp  []Expr
	}
	order := []string{}
	groups := map[string]*group{}

	for _, f := range flat {
		if fl, ok := f.(*Float); ok {
			if floatCoeff == nil {
				floatCoeff = big.NewFloat(1).SetPrec(fl.Val.Prec())
			}
			floatCoeff.Mul(floatCoeff, fl.Val)
			continue
		}
		if IsNumeric(f) {
			if IsZero(f) {
				return NewInt(0)
			}
			r, _ := AsRat(f)
			coeff.Mul(coeff, r)
			continue
		}
		base, exp := f, Expr(NewInt(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.Base, p.Exp
		}
		key := base.String()
		g, ok := groups[key]
		if !ok {
			g = &group{base: base}
			groups[key] = g
			order = append(order, key)
		}
		g.exp = append(g.exp, exp)
	}

	var result []Expr
	sortStrings(order)
	for _, key := range order {
		g := groups[key]
		exp := Sum(g.exp...)
		if IsZero(exp) {
			continue
		}
		result = append(result, Power(g.base, exp))
	}
	sortExprs(result)

	if floatCoeff != nil {
		cf, _ := new(big.Float).SetPrec(floatCoeff.Prec()).SetRat(coeff).Float64()
		floatCoeff.Mul(floatCoeff, big.NewFloat(cf))
		for _, r := range result {
			rv, _ := new(big.Float).SetPrec(floatCoeff.Prec()).SetString(r.String())
			if rv != nil {
				floatCoeff.Mul(floatCoeff, rv)
			}
		}
		return &Float{Val: floatCoeff, Prec: 15}
	}

	if coeff.Sign() == 0 {
		return NewInt(0)
	}
	if coeff.Cmp(big.NewRat(1, 1)) != 0 {
		result = append([]Expr{FromRat(coeff)}, result...)
	}
	switch len(result) {
	case 0:
		return NewInt(1)
	case 1:
		return result[0]
	default:
		return &Mul{Factors: result}
	}
}

// Pow is the canonical power node. Build one with Power, never with a
// struct literal: Power applies the identities x^0=1, x^1=x, 1^x=1,
// 0^positive=0, computes numeric^integer exactly, and collapses a
// power of a power via (a^b)^c = a^(b*c).
type Pow struct {
	Base, Exp Expr
}

func (p *Pow) Kind() Kind { return KindPow }
func (p *Pow) String() string {
	return p.Base.String() + "^" + p.Exp.String()
}

// Power builds a canonical Pow (or collapses to a simpler Expr).
func Power(base, exp Expr) Expr {
	if IsZero(exp) {
		return NewInt(1)
	}
	if IsOne(exp) {
		return base
	}
	if IsZero(base) {
		if n, ok := exp.(*Integer); ok && n.Val.Sign() > 0 {
			return NewInt(0)
		}
		return &Pow{Base: base, Exp: exp}
	}
	if n, ok := base.(*Integer); ok && n.Val.Cmp(big.NewInt(1)) == 0 {
		return NewInt(1)
	}
	if IsNumeric(base) {
		if n, ok := exp.(*Integer); ok && n.Val.IsInt64() {
			return numPowInt(base, n.Val.Int64())
		}
	}
	if p, ok := base.(*Pow); ok {
		return Power(p.Base, Product(p.Exp, exp))
	}
	return &Pow{Base: base, Exp: exp}
}
