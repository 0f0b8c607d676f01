package dispatch

import (
	"strings"

	"github.com/lacas-dev/lacas/latex"
)

// reservedAssignNames are the names spec §4.2 point 5 excludes from
// variable assignment — they already denote constants.
var reservedAssignNames = map[string]bool{
	"e": true, "i": true, "pi": true, "E": true, "I": true,
}

// splitTopLevelEquals finds the first '=' at bracket depth zero and
// splits pre around it. It is the shared primitive behind function
// definition, variable assignment, and equation-form detection, since
// all three hinge on "is there a top-level assignment/equality sign".
func splitTopLevelEquals(pre string) (lhs, rhs string, ok bool) {
	depth := 0
	for i, r := range pre {
		switch r {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		case '=':
			if depth == 0 {
				return strings.TrimSpace(pre[:i]), strings.TrimSpace(pre[i+len(string(r)):]), true
			}
		}
	}
	return "", "", false
}

// isBareIdent reports whether s lexes as exactly one identifier token.
func isBareIdent(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	toks := latex.NewLexer(s).Tokens()
	if len(toks) == 1 && toks[0].Type == latex.TokIdent {
		return toks[0].Text, true
	}
	return "", false
}

// funcDefForm is the parsed shape of "name(p1,p2,...) = body".
type funcDefForm struct {
	Name   string
	Params []string
	Body   string
}

// detectFuncDef recognizes function definitions (spec §4.2 point 4,
// §4.6): the left side of a top-level '=' must be a bare identifier
// immediately followed by a parenthesized, comma-separated list of
// bare identifier parameters with nothing else in the left side.
func detectFuncDef(pre string) (funcDefForm, bool) {
	lhs, rhs, ok := splitTopLevelEquals(pre)
	if !ok {
		return funcDefForm{}, false
	}
	open := strings.IndexByte(lhs, '(')
	if open <= 0 || !strings.HasSuffix(lhs, ")") {
		return funcDefForm{}, false
	}
	name, ok := isBareIdent(lhs[:open])
	if !ok {
		return funcDefForm{}, false
	}
	inner := lhs[open+1 : len(lhs)-1]
	if strings.TrimSpace(inner) == "" {
		return funcDefForm{Name: name, Params: nil, Body: rhs}, true
	}
	rawParams := latex.SplitTopLevel(inner)
	params := make([]string, len(rawParams))
	for i, p := range rawParams {
		pn, ok := isBareIdent(p)
		if !ok {
			return funcDefForm{}, false
		}
		params[i] = pn
	}
	return funcDefForm{Name: name, Params: params, Body: rhs}, true
}

// assignForm is the parsed shape of "name = body".
type assignForm struct {
	Name string
	Body string
}

// detectAssignment recognizes variable assignment (spec §4.2 point 5):
// a bare, non-reserved identifier on the left of a top-level '='.
func detectAssignment(pre string) (assignForm, bool) {
	lhs, rhs, ok := splitTopLevelEquals(pre)
	if !ok {
		return assignForm{}, false
	}
	name, ok := isBareIdent(lhs)
	if !ok || reservedAssignNames[name] {
		return assignForm{}, false
	}
	return assignForm{Name: name, Body: rhs}, true
}

// equationForm is the parsed shape of a bare "lhs = rhs" that is
// neither a function definition nor a variable assignment.
type equationForm struct {
	Lhs, Rhs string
}

// detectEquation recognizes the general equation form (spec §4.2
// point 6), the fallback once function-definition and assignment have
// both been ruled out.
func detectEquation(pre string) (equationForm, bool) {
	lhs, rhs, ok := splitTopLevelEquals(pre)
	if !ok {
		return equationForm{}, false
	}
	return equationForm{Lhs: lhs, Rhs: rhs}, true
}
