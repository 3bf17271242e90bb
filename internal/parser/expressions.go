package parser

import (
	"strconv"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// parseExpression implements precedence-climbing (Pratt parsing): it looks
// up a prefix handler for the current token, then repeatedly folds in infix
// operators whose precedence exceeds the caller's floor. Assignment binds
// right-associatively and is handled as a special case once an operand has
// been parsed, since its left side must be validated as an assignable
// target rather than folded like a normal binary operator.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cursor.Current().Type]
	if !ok {
		p.addError(p.cursor.Current().Position, ErrNoPrefixParse, "no prefix parse function for %s", p.cursor.Current().Type)
		return nil
	}
	left := prefix()

	for !p.cursor.PeekIs(1, token.SEMICOLON) && precedence < precedenceOf(p.cursor.Peek(1).Type) {
		infix, ok := p.infixParseFns[p.cursor.Peek(1).Type]
		if !ok {
			return left
		}
		p.cursor = p.cursor.Advance()
		left = infix(left)
	}

	if precedence < ASSIGN && assignmentOperators[p.cursor.Peek(1).Type] {
		return p.parseAssignExpression(left)
	}

	return left
}

func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	switch left.(type) {
	case *ast.Identifier, *ast.IndexExpression, *ast.PropertyExpression:
	default:
		p.addError(p.cursor.Peek(1).Position, ErrInvalidAssignTarget, "invalid assignment target")
	}

	p.cursor = p.cursor.Advance() // consume the assignment operator
	opTok := p.cursor.Current()
	p.cursor = p.cursor.Advance()
	value := p.parseExpression(ASSIGN - 1)

	if opTok.Type == token.ASSIGN {
		return &ast.AssignExpression{Token: opTok, Target: left, Value: value}
	}

	// Desugar compound assignment (x += v) into x = x + v.
	op := map[token.Type]string{
		token.PLUS_ASSIGN:     "+",
		token.MINUS_ASSIGN:    "-",
		token.ASTERISK_ASSIGN: "*",
		token.SLASH_ASSIGN:    "/",
		token.PERCENT_ASSIGN:  "%",
	}[opTok.Type]
	combined := &ast.InfixExpression{Token: opTok, Left: left, Operator: op, Right: value}
	return &ast.AssignExpression{Token: opTok, Target: left, Value: combined}
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cursor.Current()
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError(tok.Position, ErrUnexpectedToken, "could not parse %q as integer", tok.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cursor.Current()
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError(tok.Position, ErrUnexpectedToken, "could not parse %q as float", tok.Literal)
		return nil
	}
	return &ast.FloatLiteral{Token: tok, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.cursor.Current(), Value: p.cursor.Is(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.cursor.Current()}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.cursor.Current(), Operator: p.cursor.Current().Literal}
	p.cursor = p.cursor.Advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.cursor.Current(), Left: left, Operator: p.cursor.Current().Literal}
	prec := precedenceOf(p.cursor.Current().Type)
	p.cursor = p.cursor.Advance()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.cursor = p.cursor.Advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN, ErrMissingRParen, "expected ')' to close grouped expression") {
		return nil
	}
	return expr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression

	if p.cursor.PeekIs(1, end) {
		p.cursor = p.cursor.Advance()
		return list
	}

	p.cursor = p.cursor.Advance()
	list = append(list, p.parseExpression(LOWEST))

	for p.cursor.PeekIs(1, token.COMMA) {
		p.cursor = p.cursor.Advance()
		p.cursor = p.cursor.Advance()
		list = append(list, p.parseExpression(LOWEST))
	}

	code := ErrMissingRParen
	if end == token.RBRACKET {
		code = ErrMissingRBracket
	}
	if !p.expectPeek(end, code, "expected '"+end.String()+"' to close list") {
		return list
	}
	return list
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.cursor.Current()}
	arr.Elements = p.parseExpressionList(token.RBRACKET)
	return arr
}

func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.cursor.Current()}

	for !p.cursor.PeekIs(1, token.RBRACE) {
		p.cursor = p.cursor.Advance()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(token.COLON, ErrMissingColon, "expected ':' after hash key") {
			return hash
		}
		p.cursor = p.cursor.Advance()
		value := p.parseExpression(LOWEST)

		hash.Keys = append(hash.Keys, key)
		hash.Values = append(hash.Values, value)

		if !p.cursor.PeekIs(1, token.RBRACE) {
			if !p.expectPeek(token.COMMA, ErrUnexpectedToken, "expected ',' or '}' in hash literal") {
				return hash
			}
		}
	}

	if !p.expectPeek(token.RBRACE, ErrMissingRBrace, "expected '}' to close hash literal") {
		return hash
	}
	return hash
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	var params []*ast.Identifier

	if p.cursor.PeekIs(1, token.RPAREN) {
		p.cursor = p.cursor.Advance()
		return params
	}

	p.cursor = p.cursor.Advance()
	params = append(params, &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal})

	for p.cursor.PeekIs(1, token.COMMA) {
		p.cursor = p.cursor.Advance()
		p.cursor = p.cursor.Advance()
		params = append(params, &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal})
	}

	if !p.expectPeek(token.RPAREN, ErrMissingRParen, "expected ')' after parameter list") {
		return params
	}
	return params
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.cursor.Current()}

	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after 'fn'") {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start function body") {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}

// parseIfExpression parses `if (c) b (elif (c) b)* (else b)?` into the
// parallel Conditions/Consequences arrays ast.IfExpression stores.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.cursor.Current()}

	if !p.parseIfBranch(expr) {
		return expr
	}

	for p.cursor.PeekIs(1, token.ELIF) {
		p.cursor = p.cursor.Advance()
		if !p.parseIfBranch(expr) {
			return expr
		}
	}

	if p.cursor.PeekIs(1, token.ELSE) {
		p.cursor = p.cursor.Advance()
		if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start else body") {
			return expr
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseIfBranch(expr *ast.IfExpression) bool {
	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after 'if'/'elif'") {
		return false
	}
	p.cursor = p.cursor.Advance()
	cond := p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN, ErrMissingRParen, "expected ')' after condition") {
		return false
	}
	if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start branch body") {
		return false
	}
	body := p.parseBlockStatement()

	expr.Conditions = append(expr.Conditions, cond)
	expr.Consequences = append(expr.Consequences, body)
	return true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.cursor.Current(), Function: function}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.cursor.Current(), Left: left}
	p.cursor = p.cursor.Advance()
	expr.Index = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RBRACKET, ErrMissingRBracket, "expected ']' to close index expression") {
		return expr
	}
	return expr
}

func (p *Parser) parsePropertyExpression(object ast.Expression) ast.Expression {
	expr := &ast.PropertyExpression{Token: p.cursor.Current(), Object: object}
	if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected property name after '.'") {
		return expr
	}
	expr.Property = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}
	return expr
}

func (p *Parser) parseThisExpression() ast.Expression {
	if p.classDepth == 0 {
		p.addError(p.cursor.Current().Position, ErrSuperOutsideClass, "'this' used outside of a class method")
	}
	return &ast.ThisExpression{Token: p.cursor.Current()}
}

func (p *Parser) parseNewExpression() ast.Expression {
	expr := &ast.NewExpression{Token: p.cursor.Current()}
	if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected class name after 'new'") {
		return expr
	}
	expr.Class = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}

	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after class name in 'new' expression") {
		return expr
	}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseSuperExpression() ast.Expression {
	expr := &ast.SuperExpression{Token: p.cursor.Current()}
	if p.classDepth == 0 {
		p.addError(expr.Token.Position, ErrSuperOutsideClass, "'super' used outside of a class method")
	}

	if p.cursor.PeekIs(1, token.DOT) {
		p.cursor = p.cursor.Advance() // consume '.'
		if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected method name after 'super.'") {
			return expr
		}
		expr.Method = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}
	}

	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after 'super'") {
		return expr
	}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}
