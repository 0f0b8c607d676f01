package engine

import "github.com/lacas-dev/lacas/expr"

// Subs replaces every occurrence of the symbol named varName in body
// with replacement and re-simplifies, implementing the subs() command
// (spec §4.7).
func Subs(body expr.Expr, varName string, replacement expr.Expr) expr.Expr {
	return Simplify(expr.Substitute(body, varName, replacement))
}
