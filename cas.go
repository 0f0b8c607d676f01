// Package lacas is the embeddable core of a browser-side computer
// algebra system: a reactive session of variables and functions,
// evaluated against LaTeX input through the command-dispatch pipeline
// in dispatch, and reported back as the JSON result record render
// assembles (spec §6 external interfaces).
//
// Grounded on ivy's own top-level driver (run/run.go, ivy.go), which
// wraps one long-lived Context behind a small set of entry points
// (run a line, reset state, report errors) — generalized here from a
// single os.Stdin REPL loop into the four calls a host embedder
// (a JS/Wasm bridge, a CLI, a test) actually needs.
package lacas

import (
	"github.com/lacas-dev/lacas/config"
	"github.com/lacas-dev/lacas/dispatch"
	"github.com/lacas-dev/lacas/render"
	"github.com/lacas-dev/lacas/session"
)

// Engine is one independent CAS session: its own variable/function
// bindings and its own numeric/series configuration. The zero value
// is not usable; construct with New.
type Engine struct {
	sess *session.Session
	cfg  *config.Config
}

// New returns an Engine with an empty session and default
// configuration (15 significant digits, series order 6 — spec §4.7).
func New() *Engine {
	return &Engine{sess: session.New(), cfg: config.New()}
}

// Eval runs one piece of raw LaTeX input through the dispatch pipeline
// and returns the {ok, ...} result record as JSON (spec §6, §4.9).
// It never panics: any internal failure is reported as {ok:false,
// error} rather than propagated to the caller.
func (e *Engine) Eval(raw string) string {
	return dispatch.Eval(raw, e.sess, e.cfg).JSON()
}

// Introspect returns the current variable and function bindings as
// the {variables, functions} JSON object spec §6 describes, each
// entry carrying its stored (unresolved) LaTeX form and its current
// dependency list.
func (e *Engine) Introspect() string {
	vars, funcs := e.sess.Snapshot()
	vv := make([]render.VarView, len(vars))
	for i, v := range vars {
		vv[i] = render.VarView{Name: v.Name, Latex: v.Latex, Deps: v.Deps}
	}
	fv := make([]render.FuncView, len(funcs))
	for i, f := range funcs {
		fv[i] = render.FuncView{Name: f.Name, Latex: f.Latex, Params: f.Params, Deps: f.Deps}
	}
	return render.StateJSON(vv, fv)
}

// Clear discards every variable and function binding, returning the
// session to a blank slate, and reports {ok:true} (spec §6).
func (e *Engine) Clear() string {
	e.sess.Clear()
	return render.ClearJSON()
}

// SetPrecision changes the significant-digit precision used by N()
// and by the numeric_latex/numeric_plain auto-evaluation fields (spec
// §4.7, §4.9) for values evaluated after this call.
func (e *Engine) SetPrecision(digits int) {
	e.cfg.SetPrecision(digits)
}

// SetSeriesOrder changes the default truncation order series() uses
// when no explicit order argument is given (spec §4.7).
func (e *Engine) SetSeriesOrder(n int) {
	e.cfg.SetSeriesOrder(n)
}

// Info reports the engine's identifying metadata (spec §6 "engine
// info"): a host embedder surfaces this in an about dialog or a
// support bundle without needing to know the module path.
func Info() map[string]string {
	return map[string]string{
		"name":    "lacas",
		"version": version,
	}
}

// version is bumped by hand at release points; there is no build-time
// injection step in this module (spec's Non-goals exclude a packaging
// pipeline).
const version = "0.1.0"
