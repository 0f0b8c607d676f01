package session

import "github.com/lacas-dev/lacas/expr"

// DepsOf returns the subset of body's free symbol names that are
// currently bound (as a variable or a function) in the session — the
// "dependency" of a binding per the glossary. Computed at bind time
// and stored alongside the binding for introspection; resolution
// itself always re-walks body rather than trusting this cache, so a
// stale Deps list never causes incorrect evaluation, only a stale
// introspection answer until the next bind.
func (s *Session) DepsOf(body expr.Expr) []string {
	var deps []string
	for name := range expr.FreeSymbols(body) {
		if _, ok := s.LookupVar(name); ok {
			deps = append(deps, name)
		}
	}
	for head := range appliedHeads(body) {
		if _, ok := s.LookupFunc(head); ok {
			deps = append(deps, head)
		}
	}
	insertionSort(deps)
	return deps
}

func appliedHeads(e expr.Expr) map[string]bool {
	out := map[string]bool{}
	var walk func(expr.Expr)
	walk = func(n expr.Expr) {
		if a, ok := n.(*expr.Applied); ok {
			out[a.Head] = true
		}
		for _, c := range expr.Children(n) {
			walk(c)
		}
	}
	walk(e)
	return out
}
