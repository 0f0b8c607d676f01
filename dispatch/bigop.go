package dispatch

import "strings"

// extractBrace reads a balanced {...} group starting at s[i] == '{'.
// Mirrors latex's unexported braceArg; duplicated here since the two
// packages parse different surface shapes and sharing isn't worth an
// exported API neither package otherwise needs.
func extractBrace(s string, i int) (content string, next int, ok bool) {
	if i >= len(s) || s[i] != '{' {
		return "", i, false
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", i, false
}

type integralForm struct {
	Lower, Upper string // empty when indefinite
	Body         string
	Definite     bool
}

// detectIntegral recognizes "\int_{a}^{b} body" or bare "\int body"
// (spec §4.2 big-operator form).
func detectIntegral(pre string) (integralForm, bool) {
	const marker = `\int`
	if !strings.HasPrefix(pre, marker) {
		return integralForm{}, false
	}
	rest := strings.TrimLeft(pre[len(marker):], " ")
	if strings.HasPrefix(rest, "_{") {
		lower, j, ok := extractBrace(rest, 1)
		if !ok {
			return integralForm{}, false
		}
		rest2 := rest[j:]
		if !strings.HasPrefix(rest2, "^{") {
			return integralForm{}, false
		}
		upper, k, ok := extractBrace(rest2, 1)
		if !ok {
			return integralForm{}, false
		}
		body := strings.TrimSpace(rest2[k:])
		return integralForm{Lower: lower, Upper: upper, Body: body, Definite: true}, true
	}
	return integralForm{Body: strings.TrimSpace(rest), Definite: false}, true
}

type bigOpForm struct {
	Head  string // "sum" or "prod"
	Lower string
	Upper string
	Body  string
}

// detectSumProd recognizes "\sum_{lower}^{upper} body" and the \prod
// equivalent.
func detectSumProd(pre string) (bigOpForm, bool) {
	for _, marker := range []string{`\sum`, `\prod`} {
		if !strings.HasPrefix(pre, marker) {
			continue
		}
		rest := strings.TrimLeft(pre[len(marker):], " ")
		if !strings.HasPrefix(rest, "_{") {
			continue
		}
		lower, j, ok := extractBrace(rest, 1)
		if !ok {
			continue
		}
		rest2 := rest[j:]
		if !strings.HasPrefix(rest2, "^{") {
			continue
		}
		upper, k, ok := extractBrace(rest2, 1)
		if !ok {
			continue
		}
		head := "sum"
		if marker == `\prod` {
			head = "prod"
		}
		return bigOpForm{Head: head, Lower: lower, Upper: upper, Body: strings.TrimSpace(rest2[k:])}, true
	}
	return bigOpForm{}, false
}

type limitForm struct {
	Var, Point string
	Body       string
	HasVar     bool
}

var arrowTokens = []string{`\to`, `\rightarrow`, "→"}

// detectLimit recognizes "\lim_{var \to point} body" and the bare
// "\lim body" form (spec §4.2, §8 scenario 12).
func detectLimit(pre string) (limitForm, bool) {
	const marker = `\lim`
	if !strings.HasPrefix(pre, marker) {
		return limitForm{}, false
	}
	rest := strings.TrimLeft(pre[len(marker):], " ")
	if strings.HasPrefix(rest, "_{") {
		sub, j, ok := extractBrace(rest, 1)
		if !ok {
			return limitForm{}, false
		}
		v, point, ok := splitArrow(sub)
		if !ok {
			return limitForm{}, false
		}
		body := strings.TrimSpace(rest[j:])
		return limitForm{Var: v, Point: point, Body: body, HasVar: true}, true
	}
	return limitForm{Body: strings.TrimSpace(rest), HasVar: false}, true
}

func splitArrow(s string) (lhs, rhs string, ok bool) {
	for _, a := range arrowTokens {
		if i := strings.Index(s, a); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(a):]), true
		}
	}
	return "", "", false
}
