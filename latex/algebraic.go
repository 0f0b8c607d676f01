package latex

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/lacas-dev/lacas/errs"
	"github.com/lacas-dev/lacas/expr"
)

// greekAsciiNames lists the spelled-out Greek letter names the name
// table recognizes as a single multi-character symbol (spec §4.3):
// "alpha" parses as one symbol, not a*l*p*h*a.
var greekAsciiNames = []string{
	"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
	"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "rho",
	"sigma", "tau", "upsilon", "phi", "chi", "psi", "omega",
	"Gamma", "Delta", "Theta", "Lambda", "Xi", "Sigma", "Upsilon", "Phi", "Psi", "Omega",
}

// NameTable records which multi-character identifiers the parser
// should treat as a single name, rather than splitting into a product
// of single-letter symbols (spec §4.3's implicit-multiplication rule).
type NameTable struct {
	functions map[string]bool
	known     map[string]bool
}

// NewNameTable builds the table from the currently bound variable and
// function names plus the fixed sets of built-in function names and
// spelled-out Greek letters.
func NewNameTable(varNames, funcNames []string) *NameTable {
	t := &NameTable{functions: map[string]bool{}, known: map[string]bool{}}
	for _, n := range bareFuncNames {
		t.functions[n] = true
	}
	for _, n := range funcNames {
		t.functions[n] = true
	}
	for _, n := range greekAsciiNames {
		t.known[n] = true
	}
	for _, n := range varNames {
		t.known[n] = true
	}
	t.known["pi"] = true
	t.known["e"] = true
	t.known["i"] = true
	t.known["oo"] = true
	t.known["inf"] = true
	t.known["infty"] = true
	return t
}

func (t *NameTable) isFunction(name string) bool { return t.functions[name] }
func (t *NameTable) isKnown(name string) bool     { return t.known[name] || t.functions[name] }

// Parser is a recursive-descent parser over the algebraic surface
// form (the output of ToAlgebraic), shaped after parse/parse.go's
// grammar but specialized to the fixed set of productions this
// package needs: sums, products with implicit multiplication, powers,
// unary minus, factorial, function application, and parenthesization.
type Parser struct {
	toks  []Token
	pos   int
	table *NameTable
}

func NewParser(src string, table *NameTable) *Parser {
	return &Parser{toks: NewLexer(src).Tokens(), table: table}
}

func (p *Parser) peek() Token  { return p.toks[p.pos] }
func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tt TokType, what string) Token {
	if p.peek().Type != tt {
		errs.Throw(errs.ParseError, "expected %s", what)
	}
	return p.advance()
}

// ParseExpr parses a full expression or equation (spec §4.3, §4.6):
// a single "=" at the top level yields an expr.Equation.
func ParseExpr(src string, table *NameTable) expr.Expr {
	p := NewParser(src, table)
	lhs := p.parseAddSub()
	if p.peek().Type == TokEquals {
		p.advance()
		rhs := p.parseAddSub()
		if p.peek().Type != TokEOF {
			errs.Throw(errs.ParseError, "unexpected trailing input after equation")
		}
		return &expr.Equation{Lhs: lhs, Rhs: rhs}
	}
	if p.peek().Type != TokEOF {
		errs.Throw(errs.ParseError, "unexpected trailing input")
	}
	return lhs
}

func (p *Parser) parseAddSub() expr.Expr {
	terms := []expr.Expr{p.parseMulDiv()}
	for {
		switch p.peek().Type {
		case TokPlus:
			p.advance()
			terms = append(terms, p.parseMulDiv())
		case TokMinus:
			p.advance()
			terms = append(terms, expr.Product(expr.NewInt(-1), p.parseMulDiv()))
		default:
			return expr.Sum(terms...)
		}
	}
}

func (p *Parser) parseMulDiv() expr.Expr {
	factors := []expr.Expr{p.parseUnary()}
	for {
		switch p.peek().Type {
		case TokStar:
			p.advance()
			factors = append(factors, p.parseUnary())
		case TokSlash:
			p.advance()
			factors = append(factors, expr.Power(p.parseUnary(), expr.NewInt(-1)))
		default:
			if p.startsFactor() {
				factors = append(factors, p.parseUnary())
				continue
			}
			return expr.Product(factors...)
		}
	}
}

// startsFactor reports whether the current token can begin a new
// factor with no explicit operator — implicit multiplication, e.g.
// "2x" or "(x+1)(x-1)".
func (p *Parser) startsFactor() bool {
	switch p.peek().Type {
	case TokNumber, TokIdent, TokLParen:
		return true
	default:
		return false
	}
}

// parseUnary binds more loosely than parsePower, so "-x^2" reads as
// -(x^2) rather than (-x)^2.
func (p *Parser) parseUnary() expr.Expr {
	if p.peek().Type == TokMinus {
		p.advance()
		return expr.Product(expr.NewInt(-1), p.parseUnary())
	}
	if p.peek().Type == TokPlus {
		p.advance()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *Parser) parsePower() expr.Expr {
	base := p.parsePostfix()
	if p.peek().Type == TokCaret || p.peek().Type == TokStarStar {
		p.advance()
		exp := p.parseUnary() // right-associative; allows e.g. 2^-1
		return expr.Power(base, exp)
	}
	return base
}

func (p *Parser) parsePostfix() expr.Expr {
	e := p.parsePrimary()
	for p.peek().Type == TokBang {
		p.advance()
		e = &expr.Applied{Head: "factorial", Args: []expr.Expr{e}}
	}
	return e
}

func (p *Parser) parsePrimary() expr.Expr {
	tok := p.peek()
	switch tok.Type {
	case TokNumber:
		p.advance()
		return parseNumberToken(tok.Text)
	case TokLParen:
		p.advance()
		e := p.parseAddSub()
		p.expect(TokRParen, "')'")
		return e
	case TokIdent:
		p.advance()
		return p.parseIdentOrSplit(tok.Text)
	}
	errs.Throw(errs.ParseError, "unexpected token %q", tok.Text)
	panic("unreachable")
}

func parseNumberToken(text string) expr.Expr {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			errs.Throw(errs.ParseError, "invalid number %q", text)
		}
		return expr.NewFloatVal(big.NewFloat(f), 15)
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		errs.Throw(errs.ParseError, "invalid integer %q", text)
	}
	return expr.NewIntegerFromBig(n)
}

// parseIdentOrSplit implements the name-table lookup: a known
// function name is applied to a parenthesized argument list, a known
// symbol name (single-char or a recognized multi-char name such as a
// Greek letter) becomes one Symbol, and any other multi-character
// identifier is split into a product of single-character symbols
// (spec §4.3).
func (p *Parser) parseIdentOrSplit(name string) expr.Expr {
	if p.table.isFunction(name) && p.peek().Type == TokLParen {
		return p.parseCall(name)
	}
	if p.table.isKnown(name) || len([]rune(name)) == 1 {
		return symbolOrConstant(name)
	}
	runes := []rune(name)
	factors := make([]expr.Expr, len(runes))
	for i, r := range runes {
		factors[i] = symbolOrConstant(string(r))
	}
	return expr.Product(factors...)
}

func symbolOrConstant(name string) expr.Expr {
	switch name {
	case "pi":
		return expr.ConstPi
	case "e":
		return expr.ConstE
	case "i":
		return expr.ConstI
	case "oo", "inf", "infty":
		return expr.ConstInf
	}
	return expr.NewSymbol(name)
}

func (p *Parser) parseCall(name string) expr.Expr {
	p.expect(TokLParen, "'('")
	var args []expr.Expr
	if p.peek().Type != TokRParen {
		args = append(args, p.parseAddSub())
		for p.peek().Type == TokComma {
			p.advance()
			args = append(args, p.parseAddSub())
		}
	}
	p.expect(TokRParen, "')'")
	return expr.NewApplied(name, args...)
}
