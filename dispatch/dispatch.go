package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lacas-dev/lacas/config"
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/latex"
	"github.com/lacas-dev/lacas/linalg"
	"github.com/lacas-dev/lacas/render"
	"github.com/lacas-dev/lacas/session"
)

// Eval is the evaluation entry point (spec §6): it runs the full
// seven-step dispatch priority on one piece of raw LaTeX input against
// sess, recovering any internal panic into the {ok:false} error shape
// rather than letting it escape. Grounded on run/run.go's top-level
// recover-and-report loop.
func Eval(raw string, sess *session.Session, cfg *config.Config) (out render.Result) {
	defer func() {
		if r := recover(); r != nil {
			out = render.ErrorResult(fmt.Sprintf("internal error: %v", r))
		}
	}()
	var oerr *errs.Error
	func() {
		defer errs.Recover(&oerr)
		out = evalInner(raw, sess, cfg)
	}()
	if oerr != nil {
		return render.ErrorResult(oerr.Message)
	}
	return out
}

func evalInner(raw string, sess *session.Session, cfg *config.Config) render.Result {
	pre := latex.Preprocess(raw)
	if pre == latex.EmptySentinel {
		return render.Empty()
	}

	// 1. Named command.
	if name, args, ok := detectNamedCommand(pre); ok {
		return dispatchCommand(name, args, sess, cfg)
	}

	// 2. LaTeX big-operator.
	if form, ok := detectIntegral(pre); ok {
		return evalIntegralForm(form, sess, cfg)
	}
	if form, ok := detectSumProd(pre); ok {
		return evalSumProdForm(form, sess, cfg)
	}
	if form, ok := detectLimit(pre); ok {
		return evalLimitForm(form, sess, cfg)
	}

	// 3. Matrix literal.
	if strings.HasPrefix(strings.TrimSpace(pre), `\begin{`) {
		e := mustParseFragment(pre, sess)
		m, ok := e.(*expr.Matrix)
		if !ok {
			errs.Throw(errs.ParseError, "malformed matrix literal")
		}
		m = simplifyMatrixCells(sess.Resolve(m, nil).(*expr.Matrix))
		return buildResult(render.TypeValue, m, cfg, false).Build()
	}

	// 4. Function definition.
	if fd, ok := detectFuncDef(pre); ok {
		body := mustParseFragment(fd.Body, sess)
		excl := make(map[string]bool, len(fd.Params))
		for _, p := range fd.Params {
			excl[p] = true
		}
		deps := sess.DepsOf(body)
		sess.BindFunc(fd.Name, fd.Params, body, deps)
		b := render.NewBuilder(render.LaTeX(body), render.Plain(body), render.TypeFunctionDef)
		b.Name(fd.Name)
		b.Params(fd.Params)
		return b.Build()
	}

	// 5. Variable assignment.
	if as, ok := detectAssignment(pre); ok {
		bodyPre := strings.TrimSpace(as.Body)
		var bodyExpr expr.Expr
		if strings.HasPrefix(bodyPre, `\begin{`) {
			bodyExpr = mustParseFragment(bodyPre, sess)
		} else {
			bodyExpr = mustParseFragment(as.Body, sess)
		}
		deps := sess.DepsOf(bodyExpr)
		sess.BindVar(as.Name, bodyExpr, deps)
		resolved := sess.Resolve(bodyExpr, nil)
		resolved = simplifyAny(resolved)
		b := buildResult(render.TypeAssignment, resolved, cfg, false)
		b.Name(as.Name)
		return b.Build()
	}

	// 6. Equation form.
	if eq, ok := detectEquation(pre); ok {
		lhsSrc, rhsSrc := strings.TrimSpace(eq.Lhs), strings.TrimSpace(eq.Rhs)
		if lhsSrc != "" && rhsSrc != "" {
			result, ok := tryEquation(lhsSrc, rhsSrc, sess, cfg)
			if ok {
				return result
			}
		}
	}

	// 7. Plain expression.
	e := mustParseFragment(pre, sess)
	resolved := sess.Resolve(e, nil)
	resolved = simplifyAny(resolved)
	return buildResult(render.TypeValue, resolved, cfg, false).Build()
}

// tryEquation attempts the equation-form path; a parse failure on
// either side falls through to plain evaluation (spec §4.2 point 6).
func tryEquation(lhsSrc, rhsSrc string, sess *session.Session, cfg *config.Config) (result render.Result, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	lhs := mustParseFragment(lhsSrc, sess)
	rhs := mustParseFragment(rhsSrc, sess)
	eq := &expr.Equation{Lhs: sess.Resolve(lhs, nil), Rhs: sess.Resolve(rhs, nil)}
	simplified := &expr.Equation{Lhs: simplifyAny(eq.Lhs), Rhs: simplifyAny(eq.Rhs)}
	return buildResult(render.TypeEquation, simplified, cfg, false).Build(), true
}

// mustParseFragment runs the full LaTeX front end on a (possibly
// already-preprocessed) fragment, re-throwing any parse error from
// latex.Parse's own recover boundary through this call's.
func mustParseFragment(s string, sess *session.Session) expr.Expr {
	e, err := latex.Parse(s, sess)
	if err != nil {
		errs.Throw(err.Kind, "%s", err.Message)
	}
	if e == nil {
		errs.Throw(errs.ParseError, "expected an expression")
	}
	return e
}

// simplifyAny applies engine.Simplify to a scalar Expr, and cell-wise
// to a Matrix (engine.Simplify itself only walks the scalar algebra
// shapes it has identities for).
func simplifyAny(e expr.Expr) expr.Expr {
	if m, ok := e.(*expr.Matrix); ok {
		return simplifyMatrixCells(m)
	}
	return engine.Simplify(e)
}

func simplifyMatrixCells(m *expr.Matrix) *expr.Matrix {
	data := make([]expr.Expr, len(m.Data))
	for i, d := range m.Data {
		data[i] = engine.Simplify(d)
	}
	return expr.NewMatrix(m.Rows, m.Cols, data)
}

// buildResult assembles a render.Result for a single Expr (scalar or
// matrix), attaching numeric_latex/numeric_plain when appropriate
// (spec §4.9) unless suppressNumeric is set (series, N).
func buildResult(typ render.Type, e expr.Expr, cfg *config.Config, suppressNumeric bool) *render.Builder {
	b := render.NewBuilder(render.LaTeX(e), render.Plain(e), typ)
	if m, ok := e.(*expr.Matrix); ok {
		b.Matrix(m.Rows, m.Cols)
		return b
	}
	if !suppressNumeric {
		attachNumeric(b, e, cfg)
	}
	return b
}

// attachNumeric adds numeric_latex/numeric_plain for a non-integer
// scalar that can be fully evaluated (no free symbols); anything that
// fails to evaluate (e.g. a complex value, or a leftover Symbol) is
// silently left without numeric fields rather than surfacing an error
// for what is, per spec §4.9, an optional field.
func attachNumeric(b *render.Builder, e expr.Expr, cfg *config.Config) {
	if _, ok := e.(*expr.Integer); ok {
		return
	}
	if len(expr.FreeSymbols(e)) > 0 {
		return
	}
	var f *expr.Float
	func() {
		defer func() { recover() }()
		f = engine.N(e, cfg.BigPrecision())
	}()
	if f == nil {
		return
	}
	f.Prec = cfg.Precision()
	b.Numeric(render.LaTeX(f), render.Plain(f))
}

func bareIdentArg(s string) string {
	name, ok := isBareIdent(s)
	if !ok {
		errs.Throw(errs.ParseError, "expected a variable name, got '%s'", strings.TrimSpace(s))
	}
	return name
}

func intArg(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		errs.Throw(errs.ParseError, "expected an integer, got '%s'", strings.TrimSpace(s))
	}
	return n
}

func equationParts(e expr.Expr) (lhs, rhs expr.Expr) {
	if eq, ok := e.(*expr.Equation); ok {
		return eq.Lhs, eq.Rhs
	}
	return e, expr.NewInt(0)
}
