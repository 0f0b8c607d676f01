package dispatch

import (
	"fmt"
	"strings"

	"github.com/lacas-dev/lacas/config"
	"github.com/lacas-dev/lacas/engine"
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/linalg"
	"github.com/lacas-dev/lacas/render"
	"github.com/lacas-dev/lacas/session"
)

// dispatchCommand runs a named command (spec §4.2 point 1) against its
// already comma-split argument strings.
func dispatchCommand(name string, args []string, sess *session.Session, cfg *config.Config) render.Result {
	switch name {
	case "solve":
		return cmdSolve(args, sess, cfg)
	case "factor":
		return cmdUnary(args, sess, cfg, engine.Factor)
	case "expand":
		return cmdUnary(args, sess, cfg, engine.Expand)
	case "simplify":
		return cmdUnary(args, sess, cfg, engine.Simplify)
	case "diff":
		return cmdDiff(args, sess, cfg)
	case "integrate":
		return cmdIntegrate(args, sess, cfg)
	case "limit":
		return cmdLimit(args, sess, cfg)
	case "series":
		return cmdSeries(args, sess, cfg)
	case "n":
		return cmdN(args, sess, cfg)
	case "subs":
		return cmdSubs(args, sess, cfg)
	case "det", "inv", "trace", "transpose", "eigenvals", "eigenvects", "rank", "rref", "charpoly", "nullspace", "colspace":
		return cmdMatrix(name, args, sess, cfg)
	}
	errs.Throw(errs.UnknownCommand, "unknown command '%s'", name)
	panic("unreachable")
}

func cmdUnary(args []string, sess *session.Session, cfg *config.Config, fn func(expr.Expr) expr.Expr) render.Result {
	if len(args) != 1 {
		errs.Throw(errs.ArityMismatch, "expected 1 argument, got %d", len(args))
	}
	body := sess.Resolve(mustParseFragment(args[0], sess), nil)
	result := fn(body)
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}

func cmdSolve(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) < 1 || len(args) > 2 {
		errs.Throw(errs.ArityMismatch, "solve expects 1 or 2 arguments, got %d", len(args))
	}
	e := mustParseFragment(args[0], sess)
	varName := ""
	if len(args) == 2 {
		varName = bareIdentArg(args[1])
	}
	lhs0, rhs0 := equationParts(e)
	if varName == "" {
		names := expr.FreeSymbolNames(expr.Sum(lhs0, expr.Product(expr.NewInt(-1), rhs0)))
		if len(names) != 1 {
			errs.Throw(errs.EngineError, "solve requires an explicit variable when more than one free symbol is present")
		}
		varName = names[0]
	}
	excl := map[string]bool{varName: true}
	lhs := sess.Resolve(lhs0, excl)
	rhs := sess.Resolve(rhs0, excl)
	roots := engine.Solve(lhs, rhs, varName)
	latexStr, plainStr := renderExprList(roots)
	return render.NewBuilder(latexStr, plainStr, render.TypeCommand).Build()
}

func cmdDiff(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) < 2 || len(args) > 3 {
		errs.Throw(errs.ArityMismatch, "diff expects 2 or 3 arguments, got %d", len(args))
	}
	varName := bareIdentArg(args[1])
	order := 1
	if len(args) == 3 {
		order = intArg(args[2])
	}
	excl := map[string]bool{varName: true}
	body := sess.Resolve(mustParseFragment(args[0], sess), excl)
	result := engine.Simplify(engine.Diff(body, varName, order))
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}

func cmdIntegrate(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) != 2 && len(args) != 4 {
		errs.Throw(errs.ArityMismatch, "integrate expects 2 or 4 arguments, got %d", len(args))
	}
	varName := bareIdentArg(args[1])
	excl := map[string]bool{varName: true}
	body := sess.Resolve(mustParseFragment(args[0], sess), excl)
	var lower, upper expr.Expr
	if len(args) == 4 {
		lower = sess.Resolve(mustParseFragment(args[2], sess), nil)
		upper = sess.Resolve(mustParseFragment(args[3], sess), nil)
	}
	result := engine.Simplify(engine.Integrate(body, varName, lower, upper))
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}

func cmdLimit(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) != 3 {
		errs.Throw(errs.ArityMismatch, "limit expects 3 arguments, got %d", len(args))
	}
	varName := bareIdentArg(args[1])
	point := sess.Resolve(mustParseFragment(args[2], sess), nil)
	excl := map[string]bool{varName: true}
	body := sess.Resolve(mustParseFragment(args[0], sess), excl)
	result := engine.Limit(body, varName, point)
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}

func cmdSeries(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) < 1 || len(args) > 4 {
		errs.Throw(errs.ArityMismatch, "series expects 1 to 4 arguments, got %d", len(args))
	}
	e0 := mustParseFragment(args[0], sess)
	varName := ""
	if len(args) >= 2 {
		varName = bareIdentArg(args[1])
	}
	var point expr.Expr = expr.NewInt(0)
	if len(args) >= 3 {
		point = mustParseFragment(args[2], sess)
	}
	order := cfg.SeriesOrder()
	if len(args) == 4 {
		order = intArg(args[3])
	}
	if varName == "" {
		names := expr.FreeSymbolNames(e0)
		if len(names) != 1 {
			errs.Throw(errs.EngineError, "series requires an explicit variable when more than one free symbol is present")
		}
		varName = names[0]
	}
	excl := map[string]bool{varName: true}
	body := sess.Resolve(e0, excl)
	point = sess.Resolve(point, nil)
	result := engine.Series(body, varName, point, order)
	return buildResult(render.TypeCommand, result, cfg, true).Build()
}

func cmdN(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) < 1 || len(args) > 2 {
		errs.Throw(errs.ArityMismatch, "N expects 1 or 2 arguments, got %d", len(args))
	}
	e := engine.Simplify(sess.Resolve(mustParseFragment(args[0], sess), nil))
	prec := cfg.Precision()
	if len(args) == 2 {
		prec = intArg(args[1])
	}
	f := engine.N(e, bitsForDigits(prec))
	f.Prec = prec
	return buildResult(render.TypeCommand, f, cfg, true).Build()
}

func cmdSubs(args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) != 3 {
		errs.Throw(errs.ArityMismatch, "subs expects 3 arguments, got %d", len(args))
	}
	body := sess.Resolve(mustParseFragment(args[0], sess), nil)
	oldName := bareIdentArg(args[1])
	newVal := sess.Resolve(mustParseFragment(args[2], sess), nil)
	result := engine.Subs(body, oldName, newVal)
	return buildResult(render.TypeCommand, result, cfg, false).Build()
}

// bitsForDigits mirrors config.bitsForDigits (unexported there): the
// N() command can request a precision other than the session default
// without mutating cfg.
func bitsForDigits(digits int) uint {
	return uint(float64(digits)*3.3219281) + 64
}

func cmdMatrix(name string, args []string, sess *session.Session, cfg *config.Config) render.Result {
	if len(args) != 1 {
		errs.Throw(errs.ArityMismatch, "%s expects 1 argument, got %d", name, len(args))
	}
	m := resolveMatrixArg(args[0], sess)
	switch name {
	case "det":
		return buildResult(render.TypeCommand, linalg.Det(m), cfg, false).Build()
	case "trace":
		return buildResult(render.TypeCommand, linalg.Trace(m), cfg, false).Build()
	case "transpose":
		return buildResult(render.TypeCommand, linalg.Transpose(m), cfg, false).Build()
	case "inv":
		return buildResult(render.TypeCommand, linalg.Inverse(m), cfg, false).Build()
	case "rank":
		return buildResult(render.TypeCommand, expr.NewInt(int64(linalg.Rank(m))), cfg, false).Build()
	case "charpoly":
		return buildResult(render.TypeCommand, linalg.Charpoly(m), cfg, false).Build()
	case "rref":
		rref, pivots := linalg.Rref(m)
		b := buildResult(render.TypeCommand, rref, cfg, false)
		b.Pivots(pivots)
		return b.Build()
	case "eigenvals":
		latexStr, plainStr := renderEigenvals(linalg.Eigenvals(m))
		return render.NewBuilder(latexStr, plainStr, render.TypeCommand).Build()
	case "eigenvects":
		latexStr, plainStr := renderEigenvects(linalg.Eigenvects(m))
		return render.NewBuilder(latexStr, plainStr, render.TypeCommand).Build()
	case "nullspace":
		latexStr, plainStr := renderVectorSet(linalg.Nullspace(m))
		return render.NewBuilder(latexStr, plainStr, render.TypeCommand).Build()
	case "colspace":
		latexStr, plainStr := renderVectorSet(linalg.Colspace(m))
		return render.NewBuilder(latexStr, plainStr, render.TypeCommand).Build()
	}
	errs.Throw(errs.UnknownCommand, "unknown matrix command '%s'", name)
	panic("unreachable")
}

func resolveMatrixArg(s string, sess *session.Session) *expr.Matrix {
	e := sess.Resolve(mustParseFragment(s, sess), nil)
	m, ok := e.(*expr.Matrix)
	if !ok {
		errs.Throw(errs.NotAMatrix, "expected a matrix, got '%s'", strings.TrimSpace(s))
	}
	return simplifyMatrixCells(m)
}

func renderExprList(items []expr.Expr) (latexStr, plainStr string) {
	if len(items) == 0 {
		return `\{\}`, "{}"
	}
	lp := make([]string, len(items))
	pp := make([]string, len(items))
	for i, it := range items {
		lp[i] = render.LaTeX(it)
		pp[i] = render.Plain(it)
	}
	return strings.Join(lp, ", "), strings.Join(pp, ", ")
}

func renderVectorSet(vecs []*expr.Matrix) (latexStr, plainStr string) {
	if len(vecs) == 0 {
		return `\{0\}`, "{0}"
	}
	lp := make([]string, len(vecs))
	pp := make([]string, len(vecs))
	for i, v := range vecs {
		lp[i] = render.LaTeX(v)
		pp[i] = render.Plain(v)
	}
	return `\left\{` + strings.Join(lp, ", ") + `\right\}`, "{" + strings.Join(pp, ", ") + "}"
}

func renderEigenvals(evs []linalg.EigenValue) (latexStr, plainStr string) {
	if len(evs) == 0 {
		return `\{\}`, "{}"
	}
	lp := make([]string, len(evs))
	pp := make([]string, len(evs))
	for i, ev := range evs {
		lp[i] = fmt.Sprintf(`%s \mapsto %d`, render.LaTeX(ev.Value), ev.Mult)
		pp[i] = fmt.Sprintf("%s -> %d", render.Plain(ev.Value), ev.Mult)
	}
	return `\left\{` + strings.Join(lp, ", ") + `\right\}`, "{" + strings.Join(pp, ", ") + "}"
}

func renderEigenvects(evs []linalg.EigenVect) (latexStr, plainStr string) {
	if len(evs) == 0 {
		return `\{\}`, "{}"
	}
	lp := make([]string, len(evs))
	pp := make([]string, len(evs))
	for i, ev := range evs {
		bl, bp := renderVectorSet(ev.Basis)
		lp[i] = fmt.Sprintf(`(%s, %d, %s)`, render.LaTeX(ev.Value), ev.Mult, bl)
		pp[i] = fmt.Sprintf("(%s, %d, %s)", render.Plain(ev.Value), ev.Mult, bp)
	}
	return `\left\{` + strings.Join(lp, ", ") + `\right\}`, "{" + strings.Join(pp, ", ") + "}"
}
