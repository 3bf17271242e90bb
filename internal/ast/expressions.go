package ast

import (
	"strconv"
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// Identifier is a bare name reference, e.g. `x`.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()     {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() token.Position  { return i.Token.Position }
func (i *Identifier) String() string       { return i.Value }

// PrefixExpression is `!rhs` or `-rhs`.
type PrefixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()     {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) Pos() token.Position  { return pe.Token.Position }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

// InfixExpression is `lhs op rhs`.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()     {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) Pos() token.Position  { return ie.Token.Position }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// Boolean is `true` or `false`.
type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) expressionNode()     {}
func (b *Boolean) TokenLiteral() string { return b.Token.Literal }
func (b *Boolean) Pos() token.Position  { return b.Token.Position }
func (b *Boolean) String() string       { return b.Token.Literal }

// IntegerLiteral is a 64-bit integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()     {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Position }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(il.Value, 10) }

// FloatLiteral is a 64-bit floating point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()     {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() token.Position  { return fl.Token.Position }
func (fl *FloatLiteral) String() string       { return strconv.FormatFloat(fl.Value, 'g', -1, 64) }

// StringLiteral is a plain (non-interpolated) string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()     {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) Pos() token.Position  { return sl.Token.Position }
func (sl *StringLiteral) String() string       { return strconv.Quote(sl.Value) }

// FStringLiteral is an f"..." literal: alternating static text and embedded
// expressions, with len(StaticParts) == len(Embedded)+1.
type FStringLiteral struct {
	Token       token.Token
	StaticParts []string
	Embedded    []Expression
}

func (fs *FStringLiteral) expressionNode()     {}
func (fs *FStringLiteral) TokenLiteral() string { return fs.Token.Literal }
func (fs *FStringLiteral) Pos() token.Position  { return fs.Token.Position }
func (fs *FStringLiteral) String() string {
	var sb strings.Builder
	sb.WriteString(`f"`)
	for i, part := range fs.StaticParts {
		sb.WriteString(part)
		if i < len(fs.Embedded) {
			sb.WriteString("{")
			sb.WriteString(fs.Embedded[i].String())
			sb.WriteString("}")
		}
	}
	sb.WriteString(`"`)
	return sb.String()
}

// NullLiteral is `null`.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()     {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) Pos() token.Position  { return nl.Token.Position }
func (nl *NullLiteral) String() string       { return "null" }

// ArrayLiteral is `[elem, ...]`.
type ArrayLiteral struct {
	Token    token.Token // the '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()     {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) Pos() token.Position  { return al.Token.Position }
func (al *ArrayLiteral) String() string {
	parts := make([]string, len(al.Elements))
	for i, e := range al.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashLiteral is `{key: value, ...}`, preserving insertion order.
type HashLiteral struct {
	Token token.Token // the '{' token
	Keys  []Expression
	Values []Expression
}

func (hl *HashLiteral) expressionNode()     {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) Pos() token.Position  { return hl.Token.Position }
func (hl *HashLiteral) String() string {
	parts := make([]string, len(hl.Keys))
	for i := range hl.Keys {
		parts[i] = hl.Keys[i].String() + ": " + hl.Values[i].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionLiteral is `fn(params) { body }`.
type FunctionLiteral struct {
	Token      token.Token // the 'fn' token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()     {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) Pos() token.Position  { return fl.Token.Position }
func (fl *FunctionLiteral) String() string {
	params := make([]string, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p.String()
	}
	return "fn(" + strings.Join(params, ", ") + ") " + fl.Body.String()
}

// IfExpression is `if (c1) b1 (elif (c2) b2)* (else alt)?`, parsed into
// parallel Conditions/Consequences arrays plus an optional Alternative.
// len(Conditions) == len(Consequences).
type IfExpression struct {
	Token        token.Token // the 'if' token
	Conditions   []Expression
	Consequences []*BlockStatement
	Alternative  *BlockStatement // nil when there is no trailing `else`
}

func (ie *IfExpression) expressionNode()     {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) Pos() token.Position  { return ie.Token.Position }
func (ie *IfExpression) String() string {
	var sb strings.Builder
	for i, cond := range ie.Conditions {
		if i == 0 {
			sb.WriteString("if (")
		} else {
			sb.WriteString("elif (")
		}
		sb.WriteString(cond.String())
		sb.WriteString(") ")
		sb.WriteString(ie.Consequences[i].String())
		sb.WriteString(" ")
	}
	if ie.Alternative != nil {
		sb.WriteString("else ")
		sb.WriteString(ie.Alternative.String())
	}
	return sb.String()
}

// CallExpression is `callee(args)`.
type CallExpression struct {
	Token     token.Token // the '(' token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()     {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Position }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

// IndexExpression is `target[index]`.
type IndexExpression struct {
	Token  token.Token // the '[' token
	Left   Expression
	Index  Expression
}

func (ie *IndexExpression) expressionNode()     {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Position }
func (ie *IndexExpression) String() string {
	return "(" + ie.Left.String() + "[" + ie.Index.String() + "])"
}

// AssignExpression is `target = value`. Target must be an *Identifier,
// *IndexExpression, or *PropertyExpression; the parser enforces this.
type AssignExpression struct {
	Token  token.Token // the '=' token
	Target Expression
	Value  Expression
}

func (ae *AssignExpression) expressionNode()     {}
func (ae *AssignExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignExpression) Pos() token.Position  { return ae.Token.Position }
func (ae *AssignExpression) String() string {
	return ae.Target.String() + " = " + ae.Value.String()
}

// PropertyExpression is `object.property`.
type PropertyExpression struct {
	Token    token.Token // the '.' token
	Object   Expression
	Property *Identifier
}

func (pe *PropertyExpression) expressionNode()     {}
func (pe *PropertyExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PropertyExpression) Pos() token.Position  { return pe.Token.Position }
func (pe *PropertyExpression) String() string {
	return "(" + pe.Object.String() + "." + pe.Property.String() + ")"
}

// NewExpression is `new Class(args)`.
type NewExpression struct {
	Token     token.Token // the 'new' token
	Class     Expression
	Arguments []Expression
}

func (ne *NewExpression) expressionNode()     {}
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewExpression) Pos() token.Position  { return ne.Token.Position }
func (ne *NewExpression) String() string {
	args := make([]string, len(ne.Arguments))
	for i, a := range ne.Arguments {
		args[i] = a.String()
	}
	return "new " + ne.Class.String() + "(" + strings.Join(args, ", ") + ")"
}

// ThisExpression is `this`, resolved to the currently bound instance.
type ThisExpression struct {
	Token token.Token
}

func (te *ThisExpression) expressionNode()     {}
func (te *ThisExpression) TokenLiteral() string { return te.Token.Literal }
func (te *ThisExpression) Pos() token.Position  { return te.Token.Position }
func (te *ThisExpression) String() string       { return "this" }

// SuperExpression is `super(args)` (parent constructor call, when Method is
// nil) or `super.method(args)` (parent method call).
type SuperExpression struct {
	Token     token.Token // the 'super' token
	Method    *Identifier // nil for a parent-constructor call
	Arguments []Expression
}

func (se *SuperExpression) expressionNode()     {}
func (se *SuperExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SuperExpression) Pos() token.Position  { return se.Token.Position }
func (se *SuperExpression) String() string {
	args := make([]string, len(se.Arguments))
	for i, a := range se.Arguments {
		args[i] = a.String()
	}
	if se.Method == nil {
		return "super(" + strings.Join(args, ", ") + ")"
	}
	return "super." + se.Method.String() + "(" + strings.Join(args, ", ") + ")"
}
