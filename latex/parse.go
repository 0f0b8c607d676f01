package latex

import (
	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
	"github.com/lacas-dev/lacas/session"
)

// Parse runs the full LaTeX front end (spec §4.1, §4.3, §4.4) on raw
// MathQuill output: preprocess, detect a matrix environment or fall
// through to the algebraic surface form, and parse. sess supplies the
// currently bound variable and function names for the name table;
// Parse itself never mutates sess.
//
// A blank or all-whitespace input returns (nil, nil) — the caller
// (the dispatcher) is expected to special-case that into the empty
// result (spec §8 scenario 11) before calling Parse at all, but Parse
// tolerates it too.
func Parse(raw string, sess *session.Session) (result expr.Expr, err *errs.Error) {
	defer errs.Recover(&err)

	pre := Preprocess(raw)
	if pre == EmptySentinel {
		return nil, nil
	}

	table := NewNameTable(sess.VarNames(), sess.FuncNames())

	if inner, ok := detectMatrixEnv(pre); ok {
		return ParseMatrix(inner, table), nil
	}

	return ParseExpr(ToAlgebraic(pre), table), nil
}
