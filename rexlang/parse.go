package rexlang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/regal"
	"github.com/npillmayer/regal/lang"
)

// ErrSyntax is returned for malformed patterns.
var ErrSyntax = errors.New("pattern syntax error")

// ErrUndefined is returned for references to names without a definition.
var ErrUndefined = errors.New("undefined name")

// Compile translates a pattern into a language tree over bytes.
// Names are resolved in env; if env is nil, the standard environment is used.
//
// Errors wrap ErrSyntax or ErrUndefined and report the position within the pattern.
func Compile(pattern string, env *Environment) (*lang.Language[byte], error) {
	if env == nil {
		env = Standard()
	}
	scan, err := NewScanner(pattern)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: scan, env: env}
	scan.SetErrorHandler(func(e error) {
		p.fail(fmt.Errorf("%w: %v", ErrSyntax, e))
	})
	p.advance()
	l := p.alternation()
	if p.err == nil && p.tok.TokType() != EOF {
		p.unexpected()
	}
	if p.err != nil {
		tracer().Debugf("cannot compile %q: %v", pattern, p.err)
		return nil, p.err
	}
	tracer().Debugf("compiled %q to %s", pattern, l)
	return l, nil
}

// MustCompile is like Compile, but panics if the pattern cannot be compiled.
func MustCompile(pattern string, env *Environment) *lang.Language[byte] {
	l, err := Compile(pattern, env)
	if err != nil {
		panic(fmt.Sprintf("rexlang: cannot compile %q: %v", pattern, err))
	}
	return l
}

// --- Recursive descent -----------------------------------------------------

// parser is a recursive descent parser with one token lookahead. Binary
// operators associate to the left, i.e. a|b|c is parsed as (a|b)|c.
type parser struct {
	scan *Scanner
	env  *Environment
	tok  regal.Token // lookahead
	err  error       // first error encountered
}

func (p *parser) advance() {
	p.tok = p.scan.NextToken()
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *parser) unexpected() {
	p.fail(fmt.Errorf("%w: unexpected %v at %v", ErrSyntax, p.tok, p.tok.Span()))
}

func (p *parser) is(lit byte) bool {
	return p.tok.TokType() == regal.TokType(lit)
}

// Alternation ::= Concatenation ( '|' Concatenation )*
func (p *parser) alternation() *lang.Language[byte] {
	l := p.concatenation()
	for p.err == nil && p.is('|') {
		p.advance()
		l = lang.Union(l, p.concatenation())
	}
	return l
}

// Concatenation ::= Postfix*
func (p *parser) concatenation() *lang.Language[byte] {
	var l *lang.Language[byte]
	for p.err == nil && p.startsAtom() {
		f := p.postfix()
		if l == nil {
			l = f
		} else {
			l = lang.Concatenation(l, f)
		}
	}
	if l == nil {
		return lang.EmptyWord[byte]()
	}
	return l
}

func (p *parser) startsAtom() bool {
	switch p.tok.TokType() {
	case CHAR, ESCAPE, NAME, regal.TokType('('):
		return true
	}
	return false
}

// Postfix ::= Atom ( '*' | '+' | '?' )*
func (p *parser) postfix() *lang.Language[byte] {
	l := p.atom()
	for p.err == nil {
		switch {
		case p.is('*'):
			l = lang.Repetition(l)
		case p.is('+'):
			l = lang.Concatenation(l, lang.Repetition(l))
		case p.is('?'):
			l = lang.Union(l, lang.EmptyWord[byte]())
		default:
			return l
		}
		p.advance()
	}
	return l
}

// Atom ::= char | '\' char | '{' name '}' | '(' Alternation ')'
func (p *parser) atom() *lang.Language[byte] {
	tok := p.tok
	switch tok.TokType() {
	case CHAR:
		p.advance()
		return lang.Singleton(tok.Lexeme()[0])
	case ESCAPE:
		p.advance()
		if c := tok.Lexeme()[1]; c != '0' {
			return lang.Singleton(c)
		}
		return lang.Empty[byte]()
	case NAME:
		p.advance()
		name := strings.TrimSuffix(strings.TrimPrefix(tok.Lexeme(), "{"), "}")
		l, _ := p.env.Resolve(name)
		if l == nil {
			p.fail(fmt.Errorf("%w: {%s} at %v", ErrUndefined, name, tok.Span()))
			return lang.Empty[byte]()
		}
		return l
	case regal.TokType('('):
		p.advance()
		l := p.alternation()
		if p.err == nil && !p.is(')') {
			if p.tok.TokType() == EOF {
				p.fail(fmt.Errorf("%w: missing ')' for group at %v", ErrSyntax, tok.Span().Extend(p.tok.Span())))
			} else {
				p.unexpected()
			}
		}
		p.advance()
		return l
	}
	p.unexpected()
	return lang.Empty[byte]()
}
