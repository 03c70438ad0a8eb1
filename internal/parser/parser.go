// Package parser evaluates one postfix (RPN) p-adic expression against a
// variable environment, per spec.md §6.2. Because the grammar is
// postfix, parsing and evaluation are the same pass: each token either
// pushes a value onto a stack or pops operands and pushes a result.
package parser

import (
	"strings"

	"github.com/jbjava/padic/internal/combinator"
	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/env"
	"github.com/jbjava/padic/internal/lexer"
	"github.com/jbjava/padic/internal/perr"
	"github.com/jbjava/padic/internal/stream"
)

// Parser evaluates a fixed token list against one Env and base.
type Parser struct {
	tokens []lexer.Token
	base   digit.Base
	env    *env.Env
}

// NewParser builds a Parser over tokens, evaluating number literals and
// operators at the given base and resolving "&" references against env.
func NewParser(tokens []lexer.Token, base digit.Base, e *env.Env) *Parser {
	return &Parser{tokens: tokens, base: base, env: e}
}

// Parse evaluates the token stream and returns the single resulting
// Number, a ParseError if the stack doesn't end with exactly one value,
// an unknown token appears, or brackets are used, or an UnknownVariable
// error if a referenced variable is undefined.
func (p *Parser) Parse() (stream.Number, error) {
	var stack []stream.Number
	for _, tok := range p.tokens {
		switch tok.Type {
		case lexer.TokenNumber:
			n, err := parseNumber(p.base, tok.Lexeme)
			if err != nil {
				return stream.Number{}, err
			}
			stack = append(stack, n)
		case lexer.TokenRef:
			n, err := p.resolveRef(tok.Lexeme)
			if err != nil {
				return stream.Number{}, err
			}
			stack = append(stack, n)
		case lexer.TokenPlus, lexer.TokenMinus, lexer.TokenStar, lexer.TokenSlash:
			b, a, err := pop2(&stack)
			if err != nil {
				return stream.Number{}, err
			}
			var result stream.Number
			switch tok.Type {
			case lexer.TokenPlus:
				result, err = combinator.Add(a, b)
			case lexer.TokenMinus:
				result, err = combinator.Sub(a, b)
			case lexer.TokenStar:
				result, err = combinator.Mul(a, b)
			case lexer.TokenSlash:
				result, err = combinator.Div(a, b)
			}
			if err != nil {
				return stream.Number{}, err
			}
			stack = append(stack, result)
		case lexer.TokenSquare:
			a, err := pop1(&stack)
			if err != nil {
				return stream.Number{}, err
			}
			result, err := combinator.Square(a)
			if err != nil {
				return stream.Number{}, err
			}
			stack = append(stack, result)
		case lexer.TokenLBracket, lexer.TokenRBracket:
			return stream.Number{}, perr.New(perr.ParseError, "brackets are reserved and not supported yet")
		default:
			return stream.Number{}, perr.New(perr.ParseError, "unknown token %q", tok.Lexeme)
		}
	}
	if len(stack) != 1 {
		return stream.Number{}, perr.New(perr.ParseError, "expression left %d values on the stack, expected 1", len(stack))
	}
	return stack[0], nil
}

func (p *Parser) resolveRef(lexeme string) (stream.Number, error) {
	name := ""
	if lexeme != "&" {
		name = strings.TrimSuffix(strings.TrimPrefix(lexeme, "&{"), "}")
	}
	if name == "" {
		n, ok := p.env.Last()
		if !ok {
			return stream.Number{}, perr.New(perr.UnknownVariable, "no anonymous result yet")
		}
		return n, nil
	}
	n, ok := p.env.Get(name)
	if !ok {
		return stream.Number{}, perr.New(perr.UnknownVariable, "%s", name)
	}
	return n, nil
}

func pop1(stack *[]stream.Number) (stream.Number, error) {
	s := *stack
	if len(s) < 1 {
		return stream.Number{}, perr.New(perr.ParseError, "too few values on stack")
	}
	a := s[len(s)-1]
	*stack = s[:len(s)-1]
	return a, nil
}

func pop2(stack *[]stream.Number) (b, a stream.Number, err error) {
	s := *stack
	if len(s) < 2 {
		return stream.Number{}, stream.Number{}, perr.New(perr.ParseError, "too few values on stack")
	}
	b = s[len(s)-1]
	a = s[len(s)-2]
	*stack = s[:len(s)-2]
	return b, a, nil
}
