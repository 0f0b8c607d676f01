package dispatch

import (
	"github.com/lacas-dev/lacas/config"
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/render"
	"github.com/lacas-dev/lacas/session"
)

// stripTrailingDVar recognizes a trailing "d<var>" differential on an
// integral's body (spec §4.7): "5x dx" binds x, leaving "5x". Only a
// single trailing letter after the 'd' is treated as a differential,
// so a body ending in an unrelated word like "delta" is left alone.
func stripTrailingDVar(body string) (stripped, varName string, ok bool) {
	s := body
	for {
		trimmed := false
		for _, sep := range []string{`\,`, `\;`, `\!`, `\:`} {
			for len(s) >= len(sep) && s[len(s)-len(sep):] == sep {
				s = s[:len(s)-len(sep)]
				trimmed = true
			}
		}
		for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
			s = s[:len(s)-1]
			trimmed = true
		}
		if !trimmed {
			break
		}
	}
	end := len(s)
	start := end
	for start > 0 && isLetter(s[start-1]) {
		start--
	}
	run := s[start:end]
	if len(run) == 2 && run[0] == 'd' {
		return trimTrailingSpace(s[:start]), string(run[1]), true
	}
	return body, "", false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// trimTrailingSpace removes trailing blanks and LaTeX spacing commands
// (\, \; \! \:), so "5x \, dx" leaves "5x" once dx is cut off.
func trimTrailingSpace(s string) string {
	for {
		n := len(s)
		for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
			s = s[:len(s)-1]
		}
		for _, sep := range []string{`\,`, `\;`, `\!`, `\:`} {
			if len(s) >= len(sep) && s[len(s)-len(sep):] == sep {
				s = s[:len(s)-len(sep)]
			}
		}
		if len(s) == n {
			return s
		}
	}
}

// evalIntegralForm implements spec §4.7's integral binding rule: a
// trailing d<var> wins; otherwise x if free in the body, else the
// first free symbol, else a fresh dummy.
func evalIntegralForm(form integralForm, sess *session.Session, cfg *config.Config) render.Result {
	bodyStr, dVar, stripped := stripTrailingDVar(form.Body)
	bodyExpr0 := mustParseFragment(bodyStr, sess)
	varName := dVar
	if !stripped {
		free := expr.FreeSymbolNames(bodyExpr0)
		switch {
		case containsName(free, "x"):
			varName = "x"
		case len(free) > 0:
			varName = free[0]
		default:
			varName = "t"
		}
	}
	excl := map[string]bool{varName: true}
	body := sess.Resolve(bodyExpr0, excl)
	var lower, upper expr.Expr
	if form.Definite {
		lower = sess.Resolve(mustParseFragment(form.Lower, sess), nil)
		upper = sess.Resolve(mustParseFragment(form.Upper, sess), nil)
	}
	result := engine.Simplify(engine.Integrate(body, varName, lower, upper))
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// evalSumProdForm evaluates a \sum or \prod by direct term expansion
// (spec §4.7): the lower bound is either "var=value" or a bare bound
// over the body's first free symbol, and both bounds must settle to
// integers.
func evalSumProdForm(form bigOpForm, sess *session.Session, cfg *config.Config) render.Result {
	bodyExpr0 := mustParseFragment(form.Body, sess)
	var varName string
	var startExpr expr.Expr
	if lhs, rhs, ok := splitTopLevelEquals(form.Lower); ok {
		varName = bareIdentArg(lhs)
		startExpr = mustParseFragment(rhs, sess)
	} else {
		free := expr.FreeSymbolNames(bodyExpr0)
		if len(free) == 0 {
			errs.Throw(errs.EngineError, "\\%s has no free variable to bind", form.Head)
		}
		varName = free[0]
		startExpr = mustParseFragment(form.Lower, sess)
	}
	startVal := sess.Resolve(startExpr, nil)
	upperVal := sess.Resolve(mustParseFragment(form.Upper, sess), nil)
	low, ok1 := asIntBound(engine.Simplify(startVal))
	up, ok2 := asIntBound(engine.Simplify(upperVal))
	if !ok1 || !ok2 {
		errs.Throw(errs.EngineError, "\\%s bounds must be integers", form.Head)
	}
	excl := map[string]bool{varName: true}
	bodyResolved := sess.Resolve(bodyExpr0, excl)
	var acc expr.Expr
	if form.Head == "sum" {
		acc = expr.NewInt(0)
	} else {
		acc = expr.NewInt(1)
	}
	for k := low; k <= up; k++ {
		term := engine.Simplify(expr.Substitute(bodyResolved, varName, expr.NewInt(k)))
		if form.Head == "sum" {
			acc = engine.Simplify(expr.Sum(acc, term))
		} else {
			acc = engine.Simplify(expr.Product(acc, term))
		}
	}
	return buildResult(render.TypeCommand, acc, cfg, false).Build()
}

func asIntBound(e expr.Expr) (int64, bool) {
	n, ok := e.(*expr.Integer)
	if !ok || !n.Val.IsInt64() {
		return 0, false
	}
	return n.Val.Int64(), true
}

// evalLimitForm implements spec §4.7's limit rule: a bound variable
// dispatches to engine.Limit; a bare "\lim body" keeps the \lim symbol
// and only simplifies the body.
func evalLimitForm(form limitForm, sess *session.Session, cfg *config.Config) render.Result {
	bodyExpr0 := mustParseFragment(form.Body, sess)
	if !form.HasVar {
		simplified := engine.Simplify(sess.Resolve(bodyExpr0, nil))
		result := &expr.Limit{Body: simplified}
		return render.NewBuilder(render.LaTeX(result), render.Plain(result), render.TypeCommand).Build()
	}
	varName := bareIdentArg(form.Var)
	point := sess.Resolve(mustParseFragment(form.Point, sess), nil)
	excl := map[string]bool{varName: true}
	body := sess.Resolve(bodyExpr0, excl)
	result := engine.Limit(body, varName, point)
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}
