package session

import "github.com/lacas-dev/lacas/render"

// VarSnapshot and FuncSnapshot are the serialized description of one
// binding, as returned by Snapshot (spec §4.6, §6 state introspection).
type VarSnapshot struct {
	Name  string
	Latex string
	Deps  []string
}

type FuncSnapshot struct {
	Name   string
	Latex  string
	Params []string
	Deps   []string
}

// Snapshot returns a serialized description of both binding tables,
// rendering each stored body to LaTeX. It does not resolve bodies
// against the session — introspection shows what was stored, not what
// it currently evaluates to.
func (s *Session) Snapshot() (vars []VarSnapshot, funcs []FuncSnapshot) {
	for _, name := range s.VarNames() {
		b := s.vars[name]
		vars = append(vars, VarSnapshot{Name: name, Latex: render.LaTeX(b.Body), Deps: b.Deps})
	}
	for _, name := range s.FuncNames() {
		b := s.funcs[name]
		funcs = append(funcs, FuncSnapshot{Name: name, Latex: render.LaTeX(b.Body), Params: b.Params, Deps: b.Deps})
	}
	return vars, funcs
}
