package ast

import (
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// LetStatement is `let name = value;`.
type LetStatement struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()           {}
func (ls *LetStatement) TokenLiteral() string      { return ls.Token.Literal }
func (ls *LetStatement) Pos() token.Position       { return ls.Token.Position }
func (ls *LetStatement) String() string {
	var sb strings.Builder
	sb.WriteString("let ")
	sb.WriteString(ls.Name.String())
	sb.WriteString(" = ")
	if ls.Value != nil {
		sb.WriteString(ls.Value.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// ConstStatement is `const name = value;`; the binding cannot be reassigned.
type ConstStatement struct {
	Token token.Token // the 'const' token
	Name  *Identifier
	Value Expression
}

func (cs *ConstStatement) statementNode()      {}
func (cs *ConstStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ConstStatement) Pos() token.Position  { return cs.Token.Position }
func (cs *ConstStatement) String() string {
	var sb strings.Builder
	sb.WriteString("const ")
	sb.WriteString(cs.Name.String())
	sb.WriteString(" = ")
	if cs.Value != nil {
		sb.WriteString(cs.Value.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// ReturnStatement is `return expr?;`.
type ReturnStatement struct {
	Token       token.Token // the 'return' token
	ReturnValue Expression  // nil for a bare `return;`
}

func (rs *ReturnStatement) statementNode()      {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Position }
func (rs *ReturnStatement) String() string {
	var sb strings.Builder
	sb.WriteString("return")
	if rs.ReturnValue != nil {
		sb.WriteString(" ")
		sb.WriteString(rs.ReturnValue.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// ExpressionStatement wraps an expression evaluated for its side effects
// (or as the final value of a block).
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()      {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Position }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// BlockStatement is `{ stmt* }`, evaluated in its own child scope.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()      {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position  { return bs.Token.Position }
func (bs *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range bs.Statements {
		sb.WriteString(s.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token     token.Token // the 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()      {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Position }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

// ForStatement is `for (init; cond; update) body`.
type ForStatement struct {
	Token     token.Token // the 'for' token
	Init      Statement   // typically a LetStatement or ExpressionStatement
	Condition Expression
	Update    Expression
	Body      *BlockStatement
}

func (fs *ForStatement) statementNode()      {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Position }
func (fs *ForStatement) String() string {
	var sb strings.Builder
	sb.WriteString("for (")
	if fs.Init != nil {
		sb.WriteString(fs.Init.String())
	}
	sb.WriteString(" ")
	if fs.Condition != nil {
		sb.WriteString(fs.Condition.String())
	}
	sb.WriteString("; ")
	if fs.Update != nil {
		sb.WriteString(fs.Update.String())
	}
	sb.WriteString(") ")
	sb.WriteString(fs.Body.String())
	return sb.String()
}

// BreakStatement is `break;`. The parser only accepts it within a loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()      {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() token.Position  { return bs.Token.Position }
func (bs *BreakStatement) String() string       { return "break;" }

// ContinueStatement is `continue;`. The parser only accepts it within a loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()      {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() token.Position  { return cs.Token.Position }
func (cs *ContinueStatement) String() string       { return "continue;" }

// ClassStatement is `class Name (extends Parent)? { method* }`. One method
// may be named "constructor"; it is stored in Constructor rather than
// Methods.
type ClassStatement struct {
	Token       token.Token // the 'class' token
	Name        *Identifier
	Parent      *Identifier // nil when there is no `extends` clause
	Constructor *FunctionLiteral
	Methods     []*MethodDefinition
}

func (cs *ClassStatement) statementNode()      {}
func (cs *ClassStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClassStatement) Pos() token.Position  { return cs.Token.Position }
func (cs *ClassStatement) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(cs.Name.String())
	if cs.Parent != nil {
		sb.WriteString(" extends ")
		sb.WriteString(cs.Parent.String())
	}
	sb.WriteString(" { ")
	if cs.Constructor != nil {
		sb.WriteString("constructor")
		sb.WriteString(cs.Constructor.String())
		sb.WriteString(" ")
	}
	for _, m := range cs.Methods {
		sb.WriteString(m.Name)
		sb.WriteString(m.Function.String())
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String()
}

// MethodDefinition names a method declared inside a class body.
type MethodDefinition struct {
	Name     string
	Function *FunctionLiteral
}
