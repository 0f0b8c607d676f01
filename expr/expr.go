// Package expr implements the expression kernel: the algebraic data
// model shared by the parser, the session store, the algebra and
// calculus engine, and the renderer. Every variant is immutable once
// constructed; the canonicalizing constructors (Sum, Product, Power, NewRational)
// are the only way to build compound nodes, so a tree built through this
// package is always already in canonical form.
package expr // import "github.com/lacas-dev/lacas/expr"

// Kind tags the variant of an Expr without needing a type switch at
// every call site that only cares about the shape of the tree.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindFloat
	KindConstant
	KindSymbol
	KindApplied
	KindAdd
	KindMul
	KindPow
	KindMatrix
	KindEquation
	KindDerivative
	KindIntegral
	KindLimit
	KindSeries
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindRational:
		return "Rational"
	case KindFloat:
		return "Float"
	case KindConstant:
		return "Constant"
	case KindSymbol:
		return "Symbol"
	case KindApplied:
		return "Applied"
	case KindAdd:
		return "Add"
	case KindMul:
		return "Mul"
	case KindPow:
		return "Pow"
	case KindMatrix:
		return "Matrix"
	case KindEquation:
		return "Equation"
	case KindDerivative:
		return "Derivative"
	case KindIntegral:
		return "Integral"
	case KindLimit:
		return "Limit"
	case KindSeries:
		return "Series"
	}
	return "Unknown"
}

// Expr is the sum type every node in an expression tree satisfies.
// String returns a short debug form, not the rendered output — that
// belongs to the render package, which knows about LaTeX and
// pretty-printing conventions this package has no business knowing.
type Expr interface {
	Kind() Kind
	String() string
}

// Children returns the immediate subexpressions of e, in the order
// relevant to substitution and free-symbol collection. Leaves return nil.
func Children(e Expr) []Expr {
	switch v := e.(type) {
	case *Applied:
		return v.Args
	case *Add:
		return v.Terms
	case *Mul:
		return v.Factors
	case *Pow:
		return []Expr{v.Base, v.Exp}
	case *Matrix:
		return v.Data
	case *Equation:
		return []Expr{v.Lhs, v.Rhs}
	case *Derivative:
		return []Expr{v.Body, v.Var}
	case *Integral:
		if v.Lower != nil && v.Upper != nil {
			return []Expr{v.Body, v.Var, v.Lower, v.Upper}
		}
		return []Expr{v.Body, v.Var}
	case *Limit:
		return []Expr{v.Body, v.Var, v.Point}
	case *Series:
		return []Expr{v.Body, v.Var, v.Point}
	default:
		return nil
	}
}

// FreeSymbols returns the set of distinct symbol names appearing
// anywhere in e, as a map for O(1) membership tests.
func FreeSymbols(e Expr) map[string]bool {
	out := map[string]bool{}
	var walk func(Expr)
	walk = func(n Expr) {
		if s, ok := n.(*Symbol); ok {
			out[s.Name] = true
			return
		}
		for _, c := range Children(n) {
			walk(c)
		}
	}
	walk(e)
	return out
}

// FreeSymbolNames returns FreeSymbols as a sorted slice, for
// deterministic iteration (e.g. picking "the first free symbol").
func FreeSymbolNames(e Expr) []string {
	set := FreeSymbols(e)
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sortStrings(names)
	return names
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Contains reports whether target occurs structurally within e.
func Contains(e, target Expr) bool {
	if Equal(e, target) {
		return true
	}
	for _, c := range Children(e) {
		if Contains(c, target) {
			return true
		}
	}
	return false
}

// Substitute returns a copy of e with every occurrence of the symbol
// named name replaced by replacement. It does not simplify; callers
// that need a canonical result should feed it back through the
// canonicalizing constructors or the engine's simplifier.
func Substitute(e Expr, name string, replacement Expr) Expr {
	if s, ok := e.(*Symbol); ok {
		if s.Name == name {
			return replacement
		}
		return s
	}
	switch v := e.(type) {
	case *Applied:
		args := make([]Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, name, replacement)
		}
		return NewApplied(v.Head, args...)
	case *Add:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = Substitute(t, name, replacement)
		}
		return Sum(terms...)
	case *Mul:
		factors := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = Substitute(f, name, replacement)
		}
		return Product(factors...)
	case *Pow:
		return Power(Substitute(v.Base, name, replacement), Substitute(v.Exp, name, replacement))
	case *Matrix:
		data := make([]Expr, len(v.Data))
		for i, d := range v.Data {
			data[i] = Substitute(d, name, replacement)
		}
		return &Matrix{Rows: v.Rows, Cols: v.Cols, Data: data}
	case *Equation:
		return &Equation{Lhs: Substitute(v.Lhs, name, replacement), Rhs: Substitute(v.Rhs, name, replacement)}
	case *Derivative:
		return &Derivative{Body: Substitute(v.Body, name, replacement), Var: v.Var, Order: v.Order}
	case *Integral:
		n := &Integral{Body: Substitute(v.Body, name, replacement), Var: v.Var}
		if v.Lower != nil {
			n.Lower = Substitute(v.Lower, name, replacement)
			n.Upper = Substitute(v.Upper, name, replacement)
		}
		return n
	case *Limit:
		return &Limit{Body: Substitute(v.Body, name, replacement), Var: v.Var, Point: Substitute(v.Point, name, replacement)}
	case *Series:
		return &Series{Body: Substitute(v.Body, name, replacement), Var: v.Var, Point: Substitute(v.Point, name, replacement), Order: v.Order}
	default:
		return e // numeric leaves and constants are substitution-invariant
	}
}
