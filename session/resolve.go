package session

import (
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// visited is a small set of in-progress variable names, propagated by
// value into each recursive call. Passing a clone (rather than a
// shared pointer) is what gives sibling independence: resolving the
// two operands of an Add for the same variable must not have one
// branch's recursion poison the other's view of what's "in progress".
type visited map[string]bool

func (v visited) with(name string) visited {
	out := make(visited, len(v)+1)
	for k := range v {
		out[k] = true
	}
	out[name] = true
	return out
}

// Resolve substitutes defined variables and expands user-function
// applications throughout e. exclude names the resolver must leave
// alone even if bound — the bound variable of a surrounding operator
// (diff(expr, x) must not substitute a prior assignment to x).
//
// Resolve is a pure transformation: it never mutates the session.
func (s *Session) Resolve(e expr.Expr, exclude map[string]bool) expr.Expr {
	return s.resolve(e, exclude, visited{})
}

func (s *Session) resolve(e expr.Expr, exclude map[string]bool, seen visited) expr.Expr {
	switch v := e.(type) {
	case *expr.Symbol:
		if exclude[v.Name] {
			return v
		}
		binding, ok := s.LookupVar(v.Name)
		if !ok {
			return v
		}
		if seen[v.Name] {
			errs.Throw(errs.CircularDependency, "Circular dependency detected involving '%s'", v.Name)
		}
		return s.resolve(binding.Body, exclude, seen.with(v.Name))

	case *expr.Applied:
		args := make([]expr.Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = s.resolve(a, exclude, seen)
		}
		fn, ok := s.LookupFunc(v.Head)
		if !ok || len(fn.Params) != len(args) {
			return expr.NewApplied(v.Head, args...)
		}
		body := fn.Body
		for i, p := range fn.Params {
			body = expr.Substitute(body, p, args[i])
		}
		return s.resolve(body, exclude, seen)

	case *expr.Add:
		terms := make([]expr.Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = s.resolve(t, exclude, seen)
		}
		return expr.Sum(terms...)

	case *expr.Mul:
		factors := make([]expr.Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = s.resolve(f, exclude, seen)
		}
		return expr.Product(factors...)

	case *expr.Pow:
		return expr.Power(s.resolve(v.Base, exclude, seen), s.resolve(v.Exp, exclude, seen))

	case *expr.Matrix:
		data := make([]expr.Expr, len(v.Data))
		for i, d := range v.Data {
			data[i] = s.resolve(d, exclude, seen)
		}
		return expr.NewMatrix(v.Rows, v.Cols, data)

	case *expr.Equation:
		return &expr.Equation{Lhs: s.resolve(v.Lhs, exclude, seen), Rhs: s.resolve(v.Rhs, exclude, seen)}

	case *expr.Derivative:
		return &expr.Derivative{Body: s.resolve(v.Body, excludeWith(exclude, v.Var), seen), Var: v.Var, Order: v.Order}

	case *expr.Integral:
		n := &expr.Integral{Body: s.resolve(v.Body, excludeWith(exclude, v.Var), seen), Var: v.Var}
		if v.Lower != nil {
			n.Lower = s.resolve(v.Lower, exclude, seen)
			n.Upper = s.resolve(v.Upper, exclude, seen)
		}
		return n

	case *expr.Limit:
		point := v.Point
		if point != nil {
			point = s.resolve(point, exclude, seen)
		}
		ex := exclude
		if v.Var != nil {
			ex = excludeWith(exclude, v.Var)
		}
		return &expr.Limit{Body: s.resolve(v.Body, ex, seen), Var: v.Var, Point: point}

	case *expr.Series:
		return &expr.Series{
			Body:  s.resolve(v.Body, excludeWith(exclude, v.Var), seen),
			Var:   v.Var,
			Point: s.resolve(v.Point, exclude, seen),
			Order: v.Order,
		}

	default:
		return e // numeric leaves, constants
	}
}

func excludeWith(exclude map[string]bool, varExpr expr.Expr) map[string]bool {
	sym, ok := varExpr.(*expr.Symbol)
	if !ok {
		return exclude
	}
	out := make(map[string]bool, len(exclude)+1)
	for k := range exclude {
		out[k] = true
	}
	out[sym.Name] = true
	return out
}
