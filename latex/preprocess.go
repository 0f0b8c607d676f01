// Package latex normalizes MathQuill-style LaTeX into a canonical
// form (Preprocess) and parses it — via an algebraic surface form —
// into an expression tree (Parse). Grounded on scan/scan.go's Token/
// Type convention for the surface lexer, and parse/parse.go's
// recursive-descent shape for the expression grammar; the LaTeX
// surface grammar itself has no analog in the teacher and is new.
package latex

import (
	"strings"
)

// EmptySentinel is what an all-whitespace or empty input preprocesses
// to; the dispatcher checks for it before attempting to parse.
const EmptySentinel = ""

var bareFuncNames = []string{
	"sin", "cos", "tan", "cot", "sec", "csc",
	"arcsin", "arccos", "arctan",
	"sinh", "cosh", "tanh",
	"log", "ln", "exp", "sqrt", "det", "lim",
}

var bigOpSubscriptPrefixes = []string{"\\int", "\\sum", "\\prod", "\\lim", "\\log", "\\ln"}

// Preprocess applies spec §4.1's normalization pipeline, in order.
func Preprocess(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return EmptySentinel
	}

	s = stripLeftRight(s)
	s = replaceOperators(s)
	s = replaceOperatorname(s)
	s = normalizeLog(s)

	hasBackslashCommand := strings.ContainsRune(s, '\\')
	if hasBackslashCommand {
		s = insertBareFunctionBackslashes(s)
	}

	s = normalizeSuperscriptBraces(s)
	s = normalizeSubscriptBraces(s)

	return s
}

func stripLeftRight(s string) string {
	s = strings.ReplaceAll(s, `\left`, "")
	s = strings.ReplaceAll(s, `\right`, "")
	return s
}

// replaceOperators rewrites the operator commands to their ASCII
// forms; like any LaTeX control word, each command also swallows one
// following space ("2\cdot 3" becomes "2*3").
func replaceOperators(s string) string {
	for _, op := range []struct{ cmd, with string }{
		{`\cdot`, "*"}, {`\times`, "*"}, {`\div`, "/"}, {`\pm`, "+"},
	} {
		s = strings.ReplaceAll(s, op.cmd+" ", op.with)
		s = strings.ReplaceAll(s, op.cmd, op.with)
	}
	return s
}

// replaceOperatorname rewrites \operatorname{NAME} to NAME.
func replaceOperatorname(s string) string {
	const marker = `\operatorname{`
	for {
		i := strings.Index(s, marker)
		if i < 0 {
			return s
		}
		rest := s[i+len(marker):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return s
		}
		name := rest[:end]
		s = s[:i] + name + rest[end+1:]
	}
}

// normalizeLog maps \ln to \log. Only the backslashed form is
// rewritten: a bare ln stays ln, including one the bare-function pass
// below turns into \ln after this step has run.
func normalizeLog(s string) string {
	s = strings.ReplaceAll(s, `\ln`, `\log`)
	return s
}

// insertBareFunctionBackslashes inserts a backslash before a bare
// function name immediately followed by ( or {, when the input
// already contains some other backslash command. Applied only in that
// case (step 6): pure-plain inputs go through the algebraic surface
// parser instead, where "sin" is already a known function name.
func insertBareFunctionBackslashes(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '\\' {
			// Skip the command name so we don't double-backslash it.
			b.WriteByte(s[i])
			i++
			for i < len(s) && isIdentByte(s[i]) {
				b.WriteByte(s[i])
				i++
			}
			continue
		}
		matched := false
		for _, name := range bareFuncNames {
			if matchesWordAt(s, i, name) {
				after := i + len(name)
				if after < len(s) && (s[after] == '(' || s[after] == '{') {
					b.WriteByte('\\')
					b.WriteString(name)
					i = after
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// matchesWordAt reports whether name occurs at s[i:] as a whole word
// (not preceded or followed by another identifier byte, aside from
// the deliberately-checked trailing '(' or '{').
func matchesWordAt(s string, i int, name string) bool {
	if i+len(name) > len(s) {
		return false
	}
	if s[i:i+len(name)] != name {
		return false
	}
	if i > 0 && isIdentByte(s[i-1]) {
		return false
	}
	return true
}

// normalizeSuperscriptBraces turns ^x (single non-brace character)
// into ^{x}, so "\int_0^55x" reads as \int_0^{5}5x rather than
// swallowing the following digit into the exponent.
func normalizeSuperscriptBraces(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == '^' && i+1 < len(s) && s[i+1] != '{' {
			b.WriteByte('{')
			b.WriteByte(s[i+1])
			b.WriteByte('}')
			i++
		}
	}
	return b.String()
}

// normalizeSubscriptBraces turns _x into _{x} when preceded by
// whitespace, ')', '}', or one of the big-operator/log command names
// — but leaves plain identifiers like e_var alone, since there _ is
// part of the identifier the algebraic parser/renderer already
// understand, not a LaTeX subscript needing brace-wrapping.
func normalizeSubscriptBraces(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' || i+1 >= len(s) || s[i+1] == '{' {
			b.WriteByte(c)
			continue
		}
		if precededByBoundary(s, i) {
			b.WriteByte('_')
			b.WriteByte('{')
			b.WriteByte(s[i+1])
			b.WriteByte('}')
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// precededByBoundary reports whether the '_' at s[i] should have its
// single-character argument brace-wrapped: true when it follows
// whitespace, ')', '}', or one of the big-operator/log command names
// directly (e.g. "\int_0"). False for a plain identifier like e_var,
// where '_' is part of the name.
func precededByBoundary(s string, i int) bool {
	if i == 0 {
		return true
	}
	prev := s[i-1]
	if prev == ' ' || prev == ')' || prev == '}' {
		return true
	}
	for _, cmd := range bigOpSubscriptPrefixes {
		if i >= len(cmd) && s[i-len(cmd):i] == cmd {
			return true
		}
	}
	return false
}
