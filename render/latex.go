// Package render formats an Expr as LaTeX and as a unicode
// pretty-print, and packages an evaluation outcome into the result
// record spec §4.9 and §6 describe. Grounded on value/format.go's
// fmtText (format dispatch by variant) and value/matrix.go's write2d
// (2-D layout), generalized from ivy's APL display conventions to
// LaTeX and to the textbook math notation a CAS is expected to show.
package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/lacas-dev/lacas/expr"
)

var bigOne = big.NewInt(1)

var greekLetters = map[string]string{
	"alpha": "\\alpha", "beta": "\\beta", "gamma": "\\gamma", "delta": "\\delta",
	"epsilon": "\\epsilon", "zeta": "\\zeta", "eta": "\\eta", "theta": "\\theta",
	"lambda": "\\lambda", "mu": "\\mu", "sigma": "\\sigma", "phi": "\\phi",
	"omega": "\\omega", "Delta": "\\Delta", "Sigma": "\\Sigma", "Omega": "\\Omega",
	"lambda_": "\\lambda",
}

var funcLatexNames = map[string]string{
	"sin": "\\sin", "cos": "\\cos", "tan": "\\tan", "cot": "\\cot",
	"sec": "\\sec", "csc": "\\csc", "log": "\\log", "exp": "\\exp",
	"arcsin": "\\arcsin", "arccos": "\\arccos", "arctan": "\\arctan",
	"sinh": "\\sinh", "cosh": "\\cosh", "tanh": "\\tanh", "det": "\\det",
}

// LaTeX renders e as a LaTeX fragment suitable for a math-editor
// widget to display (no surrounding $ delimiters — that's the
// caller's concern).
func LaTeX(e expr.Expr) string {
	return latex(e)
}

// prec gives the binding power used to decide when a child needs
// parens: lower-precedence children inside a higher-precedence
// context get wrapped.
const (
	precAdd = 1
	precMul = 2
	precUnary = 3
	precPow = 4
	precAtom = 5
)

func precOf(e expr.Expr) int {
	switch e.(type) {
	case *expr.Add:
		return precAdd
	case *expr.Mul:
		return precMul
	case *expr.Pow:
		return precPow
	default:
		return precAtom
	}
}

func latexParen(e expr.Expr, minPrec int) string {
	s := latex(e)
	if precOf(e) < minPrec {
		return "\\left(" + s + "\\right)"
	}
	return s
}

func latex(e expr.Expr) string {
	switch v := e.(type) {
	case *expr.Integer:
		return v.Val.String()
	case *expr.Rational:
		sign := ""
		num := v.Num
		if num.Sign() < 0 {
			sign = "-"
			num = new(big.Int).Abs(num)
		}
		return fmt.Sprintf("%s\\frac{%s}{%s}", sign, num.String(), v.Den.String())
	case *expr.Float:
		return v.Val.Text('g', v.Prec)
	case *expr.Constant:
		switch v.C {
		case expr.Pi:
			return "\\pi"
		case expr.E:
			return "e"
		case expr.I:
			return "i"
		case expr.Infinity:
			return "\\infty"
		}
		return "?"
	case *expr.Symbol:
		if g, ok := greekLetters[v.Name]; ok {
			return g
		}
		if len(v.Name) > 1 {
			// name_subscript convention for multi-letter identifiers
			// produced by the parser's underscore handling (e.g. x_1).
			if i := strings.IndexByte(v.Name, '_'); i > 0 {
				return v.Name[:i] + "_{" + v.Name[i+1:] + "}"
			}
		}
		return v.Name
	case *expr.Applied:
		return latexApplied(v)
	case *expr.Add:
		return latexAdd(v)
	case *expr.Mul:
		return latexMul(v)
	case *expr.Pow:
		return latexPow(v)
	case *expr.Matrix:
		return latexMatrix(v)
	case *expr.Equation:
		return latex(v.Lhs) + " = " + latex(v.Rhs)
	case *expr.Derivative:
		return latexDerivative(v)
	case *expr.Integral:
		return latexIntegral(v)
	case *expr.Limit:
		return latexLimit(v)
	case *expr.Series:
		return latex(v.Body)
	default:
		return e.String()
	}
}

func latexApplied(a *expr.Applied) string {
	if a.Head == "sqrt" && len(a.Args) == 1 {
		return "\\sqrt{" + latex(a.Args[0]) + "}"
	}
	name, ok := funcLatexNames[a.Head]
	if !ok {
		name = "\\operatorname{" + a.Head + "}"
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = latex(arg)
	}
	return name + "\\left(" + strings.Join(parts, ", ") + "\\right)"
}

func latexAdd(a *expr.Add) string {
	var b strings.Builder
	for i, t := range a.Terms {
		s := latex(t)
		if i == 0 {
			b.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			b.WriteString(" - ")
			b.WriteString(s[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	if a.Terms == nil {
		return "0"
	}
	return b.String()
}

func latexMul(m *expr.Mul) string {
	// A leading numeric -1 renders as a unary minus rather than "-1 \cdot x".
	factors := m.Factors
	neg := false
	if len(factors) > 0 {
		if n, ok := factors[0].(*expr.Integer); ok && n.Val.Sign() < 0 && n.Val.CmpAbs(bigOne) == 0 {
			neg = true
			factors = factors[1:]
		}
	}
	var parts []string
	for _, f := range factors {
		parts = append(parts, latexParen(f, precMul))
	}
	body := strings.Join(parts, " \\cdot ")
	if body == "" {
		body = "1"
	}
	if neg {
		return "-" + body
	}
	return body
}

func latexPow(p *expr.Pow) string {
	if n, ok := p.Exp.(*expr.Rational); ok && n.Num.Sign() > 0 && n.Num.CmpAbs(bigOne) == 0 && n.Den.Int64() == 2 {
		return "\\sqrt{" + latex(p.Base) + "}"
	}
	base := latexParen(p.Base, precPow+1)
	return base + "^{" + latex(p.Exp) + "}"
}

func latexMatrix(m *expr.Matrix) string {
	var b strings.Builder
	b.WriteString("\\begin{pmatrix}")
	for r := 0; r < m.Rows; r++ {
		if r > 0 {
			b.WriteString(" \\\\ ")
		}
		for c := 0; c < m.Cols; c++ {
			if c > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(latex(m.At(r, c)))
		}
	}
	b.WriteString("\\end{pmatrix}")
	return b.String()
}

func latexDerivative(d *expr.Derivative) string {
	if d.Order <= 1 {
		return "\\frac{d}{d" + latex(d.Var) + "}\\left(" + latex(d.Body) + "\\right)"
	}
	return fmt.Sprintf("\\frac{d^{%d}}{d%s^{%d}}\\left(%s\\right)", d.Order, latex(d.Var), d.Order, latex(d.Body))
}

func latexIntegral(n *expr.Integral) string {
	if n.Lower != nil {
		return "\\int_{" + latex(n.Lower) + "}^{" + latex(n.Upper) + "} " + latex(n.Body) + "\\,d" + latex(n.Var)
	}
	return "\\int " + latex(n.Body) + "\\,d" + latex(n.Var)
}

func latexLimit(l *expr.Limit) string {
	if l.Var == nil {
		return "\\lim " + latex(l.Body)
	}
	return "\\lim_{" + latex(l.Var) + " \\to " + latex(l.Point) + "} " + latex(l.Body)
}
