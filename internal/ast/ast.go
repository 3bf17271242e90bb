// Package ast defines the abstract syntax tree produced by the parser and
// walked by the evaluator.
//
// The tree is a closed variant type: every statement and expression the
// grammar can produce has a concrete Go type here, and every node retains
// the token it originated from so diagnostics can point back at source
// positions. There is no visitor hierarchy — the evaluator dispatches on
// each node's concrete type with a type switch.
package ast

import (
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// Node is implemented by every statement and expression.
type Node interface {
	// TokenLiteral returns the literal text of the node's originating token.
	TokenLiteral() string
	// Pos returns the position of the node's originating token.
	Pos() token.Position
	// String renders the node as source-like text, used in diagnostics and
	// tests.
	String() string
}

// Statement is a node executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every AST: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return p.Statements[0].Pos()
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}
