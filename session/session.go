// Package session implements the variable and function binding tables
// (spec §4.6) and the resolver that walks an expression tree
// substituting bound names and expanding user-function applications
// (spec §4.5), with cycle detection that propagates a visited set by
// value rather than mutating a shared one.
//
// Grounded on exec.Context's Globals map and value.Context's
// stack-of-symtabs Lookup/Assign, generalized from a lexical-scope
// model (ivy has local function frames) to a flat, reactive,
// name-keyed table: there is no lexical nesting in this CAS, only a
// single process-wide session, so one map per table suffices.
package session

import "github.com/lacas-dev/lacas/expr"

// VarBinding is a variable binding: name -> body plus its declared
// dependency set (the free names in body that are themselves bound at
// definition time — recomputed on every bind, not cached across
// redefinitions of other names).
type VarBinding struct {
	Name string
	Body expr.Expr
	Deps []string
}

// FuncBinding is a function definition: name -> (params, body). The
// body is stored UNRESOLVED against the session (design note in
// spec §9: function bodies are stored unresolved so later variable
// changes propagate; variable bodies are stored as-parsed too, with
// resolution happening at read time for both).
type FuncBinding struct {
	Name   string
	Params []string
	Body   expr.Expr
	Deps   []string
}

// Session holds the two binding tables and the symbol cache for one
// process-wide CAS session (spec §5: single-threaded, caller
// serializes access).
type Session struct {
	vars    map[string]*VarBinding
	funcs   map[string]*FuncBinding
	symbols map[string]*expr.Symbol
}

// New returns an empty session.
func New() *Session {
	return &Session{
		vars:    map[string]*VarBinding{},
		funcs:   map[string]*FuncBinding{},
		symbols: map[string]*expr.Symbol{},
	}
}

// Symbol returns the canonical Symbol for name, interning it on first
// use. The cache lives for the lifetime of the session (spec §3).
func (s *Session) Symbol(name string) *expr.Symbol {
	if sym, ok := s.symbols[name]; ok {
		return sym
	}
	sym := expr.NewSymbol(name)
	s.symbols[name] = sym
	return sym
}

// BindVar inserts or replaces a variable binding. deps is the set of
// free names in body that name depends on (used for introspection and
// is not itself consulted by resolution, which always re-walks body).
func (s *Session) BindVar(name string, body expr.Expr, deps []string) {
	s.vars[name] = &VarBinding{Name: name, Body: body, Deps: deps}
}

// BindFunc inserts or replaces a function definition.
func (s *Session) BindFunc(name string, params []string, body expr.Expr, deps []string) {
	s.funcs[name] = &FuncBinding{Name: name, Params: params, Body: body, Deps: deps}
}

func (s *Session) LookupVar(name string) (*VarBinding, bool) {
	b, ok := s.vars[name]
	return b, ok
}

func (s *Session) LookupFunc(name string) (*FuncBinding, bool) {
	b, ok := s.funcs[name]
	return b, ok
}

// Clear empties all three tables.
func (s *Session) Clear() {
	s.vars = map[string]*VarBinding{}
	s.funcs = map[string]*FuncBinding{}
	s.symbols = map[string]*expr.Symbol{}
}

// VarNames and FuncNames return the bound names in a stable (sorted)
// order, for introspection.
func (s *Session) VarNames() []string { return sortedKeysVar(s.vars) }
func (s *Session) FuncNames() []string { return sortedKeysFunc(s.funcs) }

func sortedKeysVar(m map[string]*VarBinding) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	insertionSort(out)
	return out
}

func sortedKeysFunc(m map[string]*FuncBinding) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	insertionSort(out)
	return out
}

func insertionSort(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
