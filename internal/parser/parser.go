// Package parser builds an AST from a token stream using recursive descent
// for statements and precedence climbing (Pratt parsing) for expressions.
//
// The parser never panics on malformed input: each parse method that fails
// records a *ParseError and returns nil, and the statement loop
// synchronizes to the next likely statement boundary before continuing, so
// a single syntax error does not prevent the rest of the program from being
// reported on.
package parser

import (
	"fmt"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(left ast.Expression) ast.Expression
)

// Parser turns a token stream into an *ast.Program.
type Parser struct {
	cursor *TokenCursor
	errors []*ParseError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	loopDepth  int
	classDepth int
}

// New creates a Parser over the tokens l produces.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{cursor: NewTokenCursor(l)}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENTIFIER: p.parseIdentifier,
		token.INT:        p.parseIntegerLiteral,
		token.FLOAT:      p.parseFloatLiteral,
		token.STRING:     p.parseStringLiteral,
		token.F_STRING:   p.parseFStringLiteral,
		token.TRUE:       p.parseBoolean,
		token.FALSE:      p.parseBoolean,
		token.NULL:       p.parseNullLiteral,
		token.BANG:       p.parsePrefixExpression,
		token.MINUS:      p.parsePrefixExpression,
		token.LPAREN:     p.parseGroupedExpression,
		token.LBRACKET:   p.parseArrayLiteral,
		token.LBRACE:     p.parseHashLiteral,
		token.FUNCTION:   p.parseFunctionLiteral,
		token.IF:         p.parseIfExpression,
		token.THIS:       p.parseThisExpression,
		token.SUPER:      p.parseSuperExpression,
		token.NEW:        p.parseNewExpression,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LT_EQ:    p.parseInfixExpression,
		token.GT_EQ:    p.parseInfixExpression,
		token.SHL:      p.parseInfixExpression,
		token.SHR:      p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
		token.DOT:      p.parsePropertyExpression,
	}

	return p
}

// Errors returns every parse error accumulated while building the program.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

func (p *Parser) addError(pos token.Position, code, format string, args ...interface{}) {
	p.errors = append(p.errors, newParseError(pos, code, fmt.Sprintf(format, args...)))
}

// ParseProgram parses the whole token stream into a Program, continuing
// past statement-level errors so later, independent statements are still
// reported.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.cursor.IsEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
			p.cursor = p.cursor.Advance()
		} else {
			p.synchronize()
		}
	}

	return program
}

// synchronize advances the cursor to the start of what looks like the next
// statement, so one malformed statement doesn't cascade into spurious
// errors for the rest of the program.
func (p *Parser) synchronize() {
	for !p.cursor.IsEOF() {
		if p.cursor.Is(token.SEMICOLON) {
			p.cursor = p.cursor.Advance()
			return
		}
		switch p.cursor.Peek(1).Type {
		case token.LET, token.CONST, token.IF, token.WHILE, token.FOR,
			token.FUNCTION, token.CLASS, token.RETURN, token.BREAK, token.CONTINUE, token.RBRACE:
			p.cursor = p.cursor.Advance()
			return
		}
		p.cursor = p.cursor.Advance()
	}
}

func (p *Parser) expectCurrent(t token.Type, code, message string) bool {
	if p.cursor.Is(t) {
		return true
	}
	p.addError(p.cursor.Current().Position, code, "%s, got %s", message, p.cursor.Current().Type)
	return false
}

// expectPeek advances onto the next token if it matches t, reporting an
// error and leaving the cursor unmoved otherwise.
func (p *Parser) expectPeek(t token.Type, code, message string) bool {
	if p.cursor.PeekIs(1, t) {
		p.cursor = p.cursor.Advance()
		return true
	}
	p.addError(p.cursor.Peek(1).Position, code, "%s, got %s", message, p.cursor.Peek(1).Type)
	return false
}

func (p *Parser) skipOptionalSemicolon() {
	if p.cursor.PeekIs(1, token.SEMICOLON) {
		p.cursor = p.cursor.Advance()
	}
}
