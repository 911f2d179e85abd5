package expression

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenVector // [1, 2/3, 4]
	TokenScalar // -5 4/3

	TokenPlus   // +
	TokenMinus  // -
	TokenDot    // *
	TokenCross  // x
	TokenLParen // (
	TokenRParen // )
)

// String returns a readable name for the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "end of input"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenVector:
		return "vector"
	case TokenScalar:
		return "scalar"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenDot:
		return "'*'"
	case TokenCross:
		return "'x'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "UNKNOWN"
	}
}

// Token is a lexical token with its byte offset in the input.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// String returns a representation of the token for error messages.
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return t.Type.String()
	case TokenVector, TokenScalar:
		return fmt.Sprintf("%s %q", t.Type, t.Value)
	default:
		return fmt.Sprintf("%q", t.Value)
	}
}

// startsOperand reports whether the token can begin a term.
func (t Token) startsOperand() bool {
	return t.Type == TokenVector || t.Type == TokenScalar || t.Type == TokenLParen
}

// Lexer splits an expression into tokens.
type Lexer struct {
	input string
	pos   int

	// afterOperand is set once a vector or ')' has been emitted, so that a
	// following '-' reads as subtraction.
	afterOperand bool
}

// NewLexer creates a lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns every token of input, ending with TokenEOF.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// Next returns the next token. Only an unterminated vector literal is a
// lexical error; unknown characters come back as TokenIllegal.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Position: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch == '[':
		end := strings.IndexByte(l.input[start:], ']')
		if end < 0 {
			return Token{}, newSyntaxError(start, "vector literal is missing ']'", domain.ErrFormat)
		}
		l.pos = start + end + 1
		l.afterOperand = true
		return Token{Type: TokenVector, Value: l.input[start:l.pos], Position: start}, nil

	case ch == '-' && l.afterOperand:
		return l.single(TokenMinus), nil

	case ch == '-' || isDigit(ch):
		for l.pos < len(l.input) && isScalarChar(l.input[l.pos]) {
			l.pos++
		}
		l.afterOperand = false
		value := strings.TrimRight(l.input[start:l.pos], " \t")
		return Token{Type: TokenScalar, Value: value, Position: start}, nil

	case ch == '+':
		return l.single(TokenPlus), nil
	case ch == '*':
		return l.single(TokenDot), nil
	case ch == 'x':
		return l.single(TokenCross), nil
	case ch == '(':
		return l.single(TokenLParen), nil
	case ch == ')':
		tok := l.single(TokenRParen)
		l.afterOperand = true
		return tok, nil
	default:
		_, size := utf8.DecodeRuneInString(l.input[start:])
		l.pos += size
		l.afterOperand = false
		return Token{Type: TokenIllegal, Value: l.input[start:l.pos], Position: start}, nil
	}
}

// single consumes one byte as a token of type tt.
func (l *Lexer) single(tt TokenType) Token {
	tok := Token{Type: tt, Value: l.input[l.pos : l.pos+1], Position: l.pos}
	l.pos++
	l.afterOperand = false
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isScalarChar(ch byte) bool {
	return isDigit(ch) || ch == '/' || ch == '-' || ch == ' ' || ch == '\t'
}
