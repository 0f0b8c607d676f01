package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lacas-dev/lacas/expr"
)

var superscriptDigits = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func superscript(s string) string {
	var b strings.Builder
	for _, r := range s {
		if sup, ok := superscriptDigits[r]; ok {
			b.WriteRune(sup)
		} else {
			return "^" + s // not all-digit; fall back to caret form
		}
	}
	return b.String()
}

var unicodeConst = map[expr.ConstKind]string{
	expr.Pi: "π", expr.E: "e", expr.I: "i", expr.Infinity: "∞",
}

var unicodeFunc = map[string]string{
	"sqrt": "√",
}

// Plain renders e as a unicode pretty-printed plaintext string, the
// form meant for a terminal or a non-LaTeX display surface. The
// output is run through NFC normalization: superscripts and Greek
// letters are assembled piecemeal across several concatenations
// above, which can leave combining sequences a terminal renders
// inconsistently unless they are folded into their composed form.
func Plain(e expr.Expr) string {
	return norm.NFC.String(plain(e))
}

func plain(e expr.Expr) string {
	switch v := e.(type) {
	case *expr.Integer:
		return v.Val.String()
	case *expr.Rational:
		return fmt.Sprintf("%s/%s", v.Num.String(), v.Den.String())
	case *expr.Float:
		return v.Val.Text('g', v.Prec)
	case *expr.Constant:
		return unicodeConst[v.C]
	case *expr.Symbol:
		return v.Name
	case *expr.Applied:
		return plainApplied(v)
	case *expr.Add:
		return plainAdd(v)
	case *expr.Mul:
		return plainMul(v)
	case *expr.Pow:
		return plainPow(v)
	case *expr.Matrix:
		return plainMatrix(v)
	case *expr.Equation:
		return plain(v.Lhs) + " = " + plain(v.Rhs)
	case *expr.Derivative:
		return fmt.Sprintf("d/d%s(%s)", plain(v.Var), plain(v.Body))
	case *expr.Integral:
		if v.Lower != nil {
			return fmt.Sprintf("∫[%s,%s] %s d%s", plain(v.Lower), plain(v.Upper), plain(v.Body), plain(v.Var))
		}
		return fmt.Sprintf("∫ %s d%s", plain(v.Body), plain(v.Var))
	case *expr.Limit:
		if v.Var == nil {
			return "lim " + plain(v.Body)
		}
		return fmt.Sprintf("lim[%s->%s] %s", plain(v.Var), plain(v.Point), plain(v.Body))
	case *expr.Series:
		return plain(v.Body)
	default:
		return e.String()
	}
}

func plainApplied(a *expr.Applied) string {
	if sym, ok := unicodeFunc[a.Head]; ok && len(a.Args) == 1 {
		return sym + "(" + plain(a.Args[0]) + ")"
	}
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = plain(arg)
	}
	return a.Head + "(" + strings.Join(parts, ", ") + ")"
}

func plainAdd(a *expr.Add) string {
	if len(a.Terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range a.Terms {
		s := plain(t)
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
	return b.String()
}

func plainMul(m *expr.Mul) string {
	factors := m.Factors
	neg := false
	if len(factors) > 0 {
		if n, ok := factors[0].(*expr.Integer); ok && n.Val.Sign() < 0 && n.Val.CmpAbs(bigOne) == 0 {
			neg = true
			factors = factors[1:]
		}
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = plainParen(f, precMul)
	}
	body := strings.Join(parts, "*")
	if body == "" {
		body = "1"
	}
	if neg {
		return "-" + body
	}
	return body
}

func plainParen(e expr.Expr, minPrec int) string {
	s := plain(e)
	if precOf(e) < minPrec {
		return "(" + s + ")"
	}
	return s
}

func plainPow(p *expr.Pow) string {
	base := plainParen(p.Base, precPow+1)
	expStr := plain(p.Exp)
	if _, ok := p.Exp.(*expr.Integer); ok {
		return base + superscript(expStr)
	}
	return base + "^" + plainParen(p.Exp, precPow)
}

func plainMatrix(m *expr.Matrix) string {
	cells := make([][]string, m.Rows)
	width := 0
	for r := 0; r < m.Rows; r++ {
		cells[r] = make([]string, m.Cols)
		for c := 0; c < m.Cols; c++ {
			s := plain(m.At(r, c))
			cells[r][c] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}
	var b strings.Builder
	for r := 0; r < m.Rows; r++ {
		b.WriteString("[ ")
		for c := 0; c < m.Cols; c++ {
			b.WriteString(padLeft(cells[r][c], width))
			if c < m.Cols-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString(" ]")
		if r < m.Rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}
