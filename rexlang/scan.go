package rexlang

import (
	"fmt"
	"sync"

	"github.com/npillmayer/regal"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types which are not literal one-char lexemes. Literals ('(', '|', …)
// have their byte value as token type.
const (
	EOF    regal.TokType = -1
	CHAR   regal.TokType = -2 // a literal byte
	ESCAPE regal.TokType = -3 // a backslash followed by a byte
	NAME   regal.TokType = -4 // a reference to a definition, in braces
)

// The tokens representing literal one-char lexemes
var literals = []string{"(", ")", "|", "*", "+", "?"}

// tokenIds will be set in initTokens()
var tokenIds map[string]regal.TokType // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]regal.TokType)
		tokenIds["CHAR"] = CHAR
		tokenIds["ESCAPE"] = ESCAPE
		tokenIds["NAME"] = NAME
		for _, lit := range literals {
			tokenIds[lit] = regal.TokType(lit[0])
		}
	})
}

// Token returns a token name and its type.
func Token(t string) (string, regal.TokType) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

// --- Lexer -----------------------------------------------------------------

var lexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for patterns. The DFA is compiled once.
func Lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		initTokens()
		tracer().Infof("Creating lexer")
		lex := lexmachine.NewLexer()
		// literals go first: on a tie, lexmachine prefers earlier patterns
		for _, lit := range literals {
			lex.Add([]byte(`\`+lit), makeToken(lit))
		}
		lex.Add([]byte(`\\(.|\n)`), makeToken("ESCAPE"))
		lex.Add([]byte(`\{([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*\}`), makeToken("NAME"))
		lex.Add([]byte(`.|\n`), makeToken("CHAR"))
		if lexerErr = lex.Compile(); lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
			return
		}
		lexer = lex
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	_, id := Token(s)
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(id), string(m.Bytes), m), nil
	}
}

// --- Scanner ---------------------------------------------------------------

// Scanner produces the tokens of a pattern.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler
}

// NewScanner creates a scanner for a pattern.
func NewScanner(pattern string) (*Scanner, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	s, err := lex.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		sc.Error = logError
		return
	}
	sc.Error = h
}

// NextToken returns the next token of the pattern. At the end of the pattern
// a token of type EOF is returned.
func (sc *Scanner) NextToken() regal.Token {
	tok, err, eof := sc.scanner.Next()
	for err != nil {
		sc.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.scanner.TC = ui.FailTC
		}
		tok, err, eof = sc.scanner.Next()
	}
	if eof {
		end := uint64(sc.scanner.TC)
		return patternToken{toktype: EOF, span: regal.Span{end, end}}
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %q | %d", token.Lexeme, token.Type)
	return patternToken{
		toktype: regal.TokType(token.Type),
		lexeme:  string(token.Lexeme),
		span:    regal.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	}
}

// patternToken is the token type of the scanner.
type patternToken struct {
	toktype regal.TokType
	lexeme  string
	span    regal.Span
}

var _ regal.Token = patternToken{}

func (t patternToken) TokType() regal.TokType {
	return t.toktype
}

func (t patternToken) Lexeme() string {
	return t.lexeme
}

func (t patternToken) Span() regal.Span {
	return t.span
}

func (t patternToken) String() string {
	if t.toktype == EOF {
		return "end of pattern"
	}
	return fmt.Sprintf("%q", t.lexeme)
}
