package engine

import (
	"math"
	"math/big"

	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// N forces numeric evaluation of e at the given working precision
// (bits), per spec §4.7's N(expr, prec) command. e must already be
// fully resolved (no free variables) — a remaining Symbol throws
// engine_error, since N has nothing to evaluate it to.
func N(e expr.Expr, bits uint) *expr.Float {
	f := evalFloat(e, bits)
	return &expr.Float{Val: f, Prec: int(float64(bits) / 3.3219281)}
}

func evalFloat(e expr.Expr, bits uint) *big.Float {
	switch n := e.(type) {
	case *expr.Integer:
		return new(big.Float).SetPrec(bits).SetInt(n.Val)
	case *expr.Rational:
		num := new(big.Float).SetPrec(bits).SetInt(n.Num)
		den := new(big.Float).SetPrec(bits).SetInt(n.Den)
		return num.Quo(num, den)
	case *expr.Float:
		return new(big.Float).SetPrec(bits).Set(n.Val)
	case *expr.Constant:
		return evalConstant(n.C, bits)
	case *expr.Add:
		sum := new(big.Float).SetPrec(bits)
		for _, t := range n.Terms {
			sum.Add(sum, evalFloat(t, bits))
		}
		return sum
	case *expr.Mul:
		prod := new(big.Float).SetPrec(bits).SetInt64(1)
		for _, f := range n.Factors {
			prod.Mul(prod, evalFloat(f, bits))
		}
		return prod
	case *expr.Pow:
		return evalPow(evalFloat(n.Base, bits), n.Exp, bits)
	case *expr.Applied:
		return evalApplied(n, bits)
	case *expr.Symbol:
		errs.Throw(errs.EngineError, "cannot numerically evaluate unresolved variable '%s'", n.Name)
	}
	errs.Throw(errs.EngineError, "cannot numerically evaluate %s", e.String())
	panic("unreachable")
}

func evalConstant(c expr.ConstKind, bits uint) *big.Float {
	switch c {
	case expr.Pi:
		return bigPi(bits)
	case expr.E:
		return bigE(bits)
	default:
		errs.Throw(errs.EngineError, "constant has no real numeric value")
		panic("unreachable")
	}
}

// bigPi and bigE compute pi and e to the requested precision via the
// standard float64 math constants promoted into big.Float — adequate
// for the display precisions N() targets (spec default 15 digits);
// truly high-precision transcendental constants are out of scope.
func bigPi(bits uint) *big.Float {
	return new(big.Float).SetPrec(bits).SetFloat64(math.Pi)
}

func bigE(bits uint) *big.Float {
	return new(big.Float).SetPrec(bits).SetFloat64(math.E)
}

func evalPow(base *big.Float, exp expr.Expr, bits uint) *big.Float {
	if n, ok := exp.(*expr.Integer); ok && n.Val.IsInt64() {
		k := n.Val.Int64()
		neg := k < 0
		if neg {
			k = -k
		}
		result := new(big.Float).SetPrec(bits).SetInt64(1)
		b := new(big.Float).SetPrec(bits).Set(base)
		for k > 0 {
			if k&1 == 1 {
				result.Mul(result, b)
			}
			b.Mul(b, b)
			k >>= 1
		}
		if neg {
			result.Quo(new(big.Float).SetPrec(bits).SetInt64(1), result)
		}
		return result
	}
	bf, _ := base.Float64()
	ef := evalFloat(exp, bits)
	ff, _ := ef.Float64()
	return new(big.Float).SetPrec(bits).SetFloat64(math.Pow(bf, ff))
}

func evalApplied(a *expr.Applied, bits uint) *big.Float {
	if len(a.Args) != 1 {
		errs.Throw(errs.EngineError, "cannot numerically evaluate %s", a.String())
	}
	x, _ := evalFloat(a.Args[0], bits).Float64()
	var r float64
	switch a.Head {
	case "sin":
		r = math.Sin(x)
	case "cos":
		r = math.Cos(x)
	case "tan":
		r = math.Tan(x)
	case "exp":
		r = math.Exp(x)
	case "log":
		r = math.Log(x)
	case "sqrt":
		r = math.Sqrt(x)
	case "arcsin":
		r = math.Asin(x)
	case "arccos":
		r = math.Acos(x)
	case "arctan":
		r = math.Atan(x)
	case "sinh":
		r = math.Sinh(x)
	case "cosh":
		r = math.Cosh(x)
	case "tanh":
		r = math.Tanh(x)
	default:
		errs.Throw(errs.EngineError, "unknown function '%s' for numeric evaluation", a.Head)
	}
	return new(big.Float).SetPrec(bits).SetFloat64(r)
}
