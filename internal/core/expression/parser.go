package expression

import (
	"fmt"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// Parser is a recursive descent parser over a Lexer.
type Parser struct {
	lexer   *Lexer
	current Token
}

// Parse parses input into an expression tree.
func Parse(input string) (Node, error) {
	p := &Parser{lexer: NewLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.unexpected(TokenEOF.String())
	}
	return node, nil
}

func (p *Parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// parseAdditive parses dot (("+" | "-") dot)*.
func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseDot()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := OpAdd
		if p.current.Type == TokenMinus {
			op = OpSub
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseDot()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseDot parses cross ("*" cross)*.
func (p *Parser) parseDot() (Node, error) {
	left, err := p.parseCross()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenDot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseCross()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: OpDot, Left: left, Right: right}
	}
	return left, nil
}

// parseCross parses term ("x" term)*.
func (p *Parser) parseCross() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TokenCross {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: OpCross, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm parses [scalar] (vector | "(" additive ")").
func (p *Parser) parseTerm() (Node, error) {
	var factor *domain.Rational
	if p.current.Type == TokenScalar {
		r, err := parseScalar(p.current)
		if err != nil {
			return nil, err
		}
		factor = &r
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	var node Node
	switch p.current.Type {
	case TokenVector:
		v, err := domain.ParseVector(p.current.Value)
		if err != nil {
			return nil, newSyntaxError(p.current.Position, "", err)
		}
		node = &Literal{Value: v}
		if err := p.advance(); err != nil {
			return nil, err
		}

	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.unexpected(TokenRParen.String())
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		node = inner

	default:
		what := "vector or '('"
		if factor != nil {
			what += " after scalar"
		}
		return nil, newSyntaxError(p.current.Position,
			fmt.Sprintf("expected %s but found %s", what, p.current), domain.ErrFormat)
	}

	if factor != nil {
		node = &Scaled{Factor: *factor, Operand: node}
	}
	return node, nil
}

// unexpected reports the current token where an operator or the closing
// token named by want should follow a complete operand.
func (p *Parser) unexpected(want string) error {
	tok := p.current
	switch {
	case tok.startsOperand():
		return newSyntaxError(tok.Position, fmt.Sprintf("missing operator before %s", tok), domain.ErrOperator)
	case tok.Type == TokenIllegal:
		return newSyntaxError(tok.Position, fmt.Sprintf("unknown operator %q", tok.Value), domain.ErrOperator)
	default:
		return newSyntaxError(tok.Position, fmt.Sprintf("expected %s but found %s", want, tok), domain.ErrFormat)
	}
}

// parseScalar reads a scalar prefix. A lone "-" negates.
func parseScalar(tok Token) (domain.Rational, error) {
	if tok.Value == "-" {
		return domain.NewInt(-1), nil
	}
	r, err := domain.ParseRational(tok.Value)
	if err != nil {
		return domain.Rational{}, newSyntaxError(tok.Position, "", err)
	}
	return r, nil
}
