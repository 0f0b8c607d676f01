package expr

import (
	"math/big"
)

// Integer is an arbitrary-precision exact signed integer.
type Integer struct {
	Val *big.Int
}

func (i *Integer) Kind() Kind   { return KindInteger }
func (i *Integer) String() string { return i.Val.String() }

// NewInt builds an Integer from a native int64. Convenience for
// constants the engine produces internally (0, 1, -1, small orders).
func NewInt(n int64) *Integer { return &Integer{Val: big.NewInt(n)} }

// NewIntegerFromBig takes ownership of v; callers must not mutate v afterward.
func NewIntegerFromBig(v *big.Int) *Integer { return &Integer{Val: v} }

// Rational is an arbitrary-precision exact fraction, always stored
// with gcd(Num, Den) = 1 and Den > 0, per the data-model invariant.
type Rational struct {
	Num, Den *big.Int
}

func (r *Rational) Kind() Kind { return KindRational }
func (r *Rational) String() string {
	return r.Num.String() + "/" + r.Den.String()
}

// NewRational builds a canonical Expr from num/den: reduces by the
// gcd, normalizes the sign onto the numerator, and collapses to an
// Integer when the denominator reduces to 1. den == 0 is a kernel
// invariant violation, not user input, so it panics with a plain
// message rather than throwing an errs.Error.
func NewRational(num, den *big.Int) Expr {
	if den.Sign() == 0 {
		panic("expr: rational with zero denominator")
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	if d.Cmp(big.NewInt(1)) == 0 {
		return &Integer{Val: n}
	}
	return &Rational{Num: n, Den: d}
}

// Float is an arbitrary-precision real carrying the bit precision it
// was computed at, used only when the user forces numeric evaluation
// via N() or when a command (series, N) intrinsically produces one.
type Float struct {
	Val  *big.Float
	Prec int // significant decimal digits, for display purposes
}

func (f *Float) Kind() Kind   { return KindFloat }
func (f *Float) String() string { return f.Val.Text('g', f.Prec) }

func NewFloatVal(v *big.Float, prec int) *Float {
	return &Float{Val: v, Prec: prec}
}

// ConstKind enumerates the distinct named constants, kept apart from
// plain Symbols per the data-model note that "known constants never
// appear as raw symbols in parsed output".
type ConstKind int

const (
	Pi ConstKind = iota
	E
	I
	Infinity
)

type Constant struct {
	C ConstKind
}

func (c *Constant) Kind() Kind { return KindConstant }
func (c *Constant) String() string {
	switch c.C {
	case Pi:
		return "pi"
	case E:
		return "e"
	case I:
		return "i"
	case Infinity:
		return "oo"
	}
	return "?"
}

var (
	ConstPi  = &Constant{C: Pi}
	ConstE   = &Constant{C: E}
	ConstI   = &Constant{C: I}
	ConstInf = &Constant{C: Infinity}
)

// IsZero reports whether e is the exact numeric value zero.
func IsZero(e Expr) bool {
	switch v := e.(type) {
	case *Integer:
		return v.Val.Sign() == 0
	case *Rational:
		return v.Num.Sign() == 0
	case *Float:
		return v.Val.Sign() == 0
	}
	return false
}

// IsOne reports whether e is the exact numeric value one.
func IsOne(e Expr) bool {
	switch v := e.(type) {
	case *Integer:
		return v.Val.Cmp(big.NewInt(1)) == 0
	case *Rational:
		return false // a reduced rational with den=1 is always an Integer
	case *Float:
		one := big.NewFloat(1)
		return v.Val.Cmp(one) == 0
	}
	return false
}

// IsNumeric reports whether e is a leaf numeric value (Integer,
// Rational, or Float) as opposed to a symbolic subtree.
func IsNumeric(e Expr) bool {
	switch e.(type) {
	case *Integer, *Rational, *Float:
		return true
	}
	return false
}

// AsRat returns e's value as a *big.Rat when e is an Integer or
// Rational, and ok=false otherwise (including for Float, which is
// intentionally not convertible without losing the "exact" contract).
func AsRat(e Expr) (*big.Rat, bool) {
	switch v := e.(type) {
	case *Integer:
		return new(big.Rat).SetInt(v.Val), true
	case *Rational:
		return new(big.Rat).SetFrac(v.Num, v.Den), true
	}
	return nil, false
}

// FromRat builds a canonical Expr from a *big.Rat.
func FromRat(r *big.Rat) Expr {
	return NewRational(new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()))
}

// numAdd adds two numeric Exprs (Integer/Rational only; Float numerics
// are handled separately by the N command, which works entirely in
// big.Float and never round-trips through this).
func numAdd(a, b Expr) Expr {
	ra, _ := AsRat(a)
	rb, _ := AsRat(b)
	return FromRat(new(big.Rat).Add(ra, rb))
}

func numMul(a, b Expr) Expr {
	ra, _ := AsRat(a)
	rb, _ := AsRat(b)
	return FromRat(new(big.Rat).Mul(ra, rb))
}

// numPowInt raises the numeric base to an integer power, exactly.
func numPowInt(base Expr, n int64) Expr {
	r, _ := AsRat(base)
	if n == 0 {
		return NewInt(1)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := new(big.Rat).SetInt64(1)
	b := new(big.Rat).Set(r)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, b)
		}
		b.Mul(b, b)
		n >>= 1
	}
	if neg {
		result.Inv(result)
	}
	return FromRat(result)
}
