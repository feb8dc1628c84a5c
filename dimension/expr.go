package dimension

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Resolver maps an identifier in an expression to a dimension
type Resolver interface {
	Resolve(ident string) (Dimension, error)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(ident string) (Dimension, error)

// Resolve implements Resolver
func (f ResolverFunc) Resolve(ident string) (Dimension, error) { return f(ident) }

// SyntaxError reports a malformed dimension expression
type SyntaxError struct {
	Expr string
	Pos  int // byte offset into Expr
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d in %q: %s", e.Pos, e.Expr, e.Msg)
}

// ValidName reports whether name can be declared and referenced in expressions:
// a letter or underscore followed by letters, digits or underscores.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if !isIdentRune(r, i == 0) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

// Parse evaluates a dimension expression.
//
// Grammar:
//
//	expr   = term { ( "*" | "·" | "⋅" | "/" | <space> ) term }
//	term   = factor [ "^" int ]
//	factor = ident | "1" | "(" expr ")"
//
// Operators are left-associative with equal precedence, so "L/T*T" is L and
// "L/T^2" is L·T⁻². Juxtaposition multiplies: "M L^-1" is M·L⁻¹.
func Parse(src string, r Resolver) (Dimension, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks, resolver: r}
	d, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected %s", tok)
	}
	return d, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokMul
	tokDiv
	tokPow
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of expression"
	}
	return strconv.Quote(t.text)
}

func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		start := i
		switch {
		case unicode.IsSpace(r):
			i += size
		case r == '*' || r == '·' || r == '⋅':
			toks = append(toks, token{kind: tokMul, text: string(r), pos: start})
			i += size
		case r == '/':
			toks = append(toks, token{kind: tokDiv, text: "/", pos: start})
			i += size
		case r == '^':
			toks = append(toks, token{kind: tokPow, text: "^", pos: start})
			i += size
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: start})
			i += size
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: start})
			i += size
		case r == '-' || r == '+' || unicode.IsDigit(r):
			i += size
			for i < len(src) && src[i] >= '0' && src[i] <= '9' {
				i++
			}
			if (r == '-' || r == '+') && i == start+1 {
				return nil, &SyntaxError{Expr: src, Pos: start, Msg: "sign without digits"}
			}
			toks = append(toks, token{kind: tokInt, text: src[start:i], pos: start})
		case isIdentRune(r, true):
			i += size
			for i < len(src) {
				r, size = utf8.DecodeRuneInString(src[i:])
				if !isIdentRune(r, false) {
					break
				}
				i += size
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		default:
			return nil, &SyntaxError{Expr: src, Pos: start, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})
	return toks, nil
}

type parser struct {
	src      string
	toks     []token
	pos      int
	resolver Resolver
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return &SyntaxError{Expr: p.src, Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expr() (Dimension, error) {
	d, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokMul:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			d = Multiply(d, rhs)
		case tokDiv:
			p.next()
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			d = Divide(d, rhs)
		case tokIdent, tokLParen:
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			d = Multiply(d, rhs)
		default:
			return d, nil
		}
	}
}

func (p *parser) term() (Dimension, error) {
	d, err := p.factor()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return d, nil
	}
	p.next()
	tok := p.next()
	if tok.kind != tokInt {
		return nil, p.errorf(tok, "expected integer exponent, got %s", tok)
	}
	n, err := strconv.Atoi(tok.text)
	if err != nil {
		return nil, p.errorf(tok, "invalid exponent %s", tok)
	}
	return Pow(d, n), nil
}

func (p *parser) factor() (Dimension, error) {
	tok := p.next()
	switch tok.kind {
	case tokIdent:
		d, err := p.resolver.Resolve(tok.text)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", tok.pos, err)
		}
		return d, nil
	case tokInt:
		if tok.text != "1" {
			return nil, p.errorf(tok, "only 1 may appear as a factor, got %s", tok)
		}
		return One, nil
	case tokLParen:
		d, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing, "expected \")\", got %s", closing)
		}
		return d, nil
	default:
		return nil, p.errorf(tok, "expected dimension, got %s", tok)
	}
}
