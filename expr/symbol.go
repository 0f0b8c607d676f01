package expr

// Symbol is an interned identifier. Interning itself is the session's
// job (symbol cache lives for the lifetime of the session, per the
// data model) — this type is just the comparable value a cache maps
// names onto.
type Symbol struct {
	Name string
}

func (s *Symbol) Kind() Kind   { return KindSymbol }
func (s *Symbol) String() string { return s.Name }

// NewSymbol builds a Symbol directly, bypassing any cache. Used by
// code that doesn't have a session handle (e.g. the engine's internal
// fresh-dummy-variable generation).
func NewSymbol(name string) *Symbol { return &Symbol{Name: name} }

// Applied is a function application: a head (builtin or user-defined
// name) and an ordered argument list.
type Applied struct {
	Head string
	Args []Expr
}

func (a *Applied) Kind() Kind { return KindApplied }
func (a *Applied) String() string {
	s := a.Head + "("
	for i, arg := range a.Args {
		if i > 0 {
			s += ", "
		}
		s += arg.String()
	}
	return s + ")"
}

// NewApplied builds an Applied node. No simplification happens here —
// that's the engine's job; the kernel only guarantees structural shape.
func NewApplied(head string, args ...Expr) *Applied {
	return &Applied{Head: head, Args: args}
}
