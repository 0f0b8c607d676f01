// Package errs defines the closed set of error kinds the evaluation
// entry point can report, and the single recover boundary that turns
// an internal panic into one of them.
//
// Internal engine code raises failures with Throw rather than
// threading an error return through every recursive call — simplify,
// resolve, and the parsers call each other many levels deep, and a
// Go error return at every level would bury the one place that
// actually handles failure: the top of Eval.
package errs

import "fmt"

// Kind is the closed set of error kinds from spec §7.
type Kind string

const (
	ParseError         Kind = "parse_error"
	UnknownCommand     Kind = "unknown_command"
	ArityMismatch      Kind = "arity_mismatch"
	NotAMatrix         Kind = "not_a_matrix"
	NonSquare          Kind = "non_square"
	Singular           Kind = "singular"
	JaggedMatrix       Kind = "jagged_matrix"
	CircularDependency Kind = "circular_dependency"
	EngineError        Kind = "engine_error"
)

// Error is the Go error value carried by a panic raised with Throw,
// and the value ultimately surfaced to the caller of Eval.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Throw panics with an *Error of the given kind. Used throughout the
// parser and engine instead of returning (Value, error) at every call
// site; Recover at the top of Eval turns it back into a value.
func Throw(kind Kind, format string, args ...any) {
	panic(New(kind, format, args...))
}

// Recover must be deferred at the top of any function that is a public
// entry point into the engine. On a panic raised via Throw, *err is
// set to the carried *Error. Any other panic is re-raised — a bug should not be silently
// turned into "engine_error" and hidden from tests.
func Recover(err **Error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*Error); ok {
		*err = e
		return
	}
	panic(r)
}
