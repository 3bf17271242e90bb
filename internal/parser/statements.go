package parser

import (
	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cursor.Current().Type {
	case token.LET:
		return p.parseLetStatement()
	case token.CONST:
		return p.parseConstStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.CLASS:
		return p.parseClassStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.cursor.Current()}

	if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected identifier after 'let'") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}

	if !p.expectPeek(token.ASSIGN, ErrMissingAssign, "expected '=' in let statement") {
		return nil
	}
	p.cursor = p.cursor.Advance()

	stmt.Value = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseConstStatement() ast.Statement {
	stmt := &ast.ConstStatement{Token: p.cursor.Current()}

	if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected identifier after 'const'") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}

	if !p.expectPeek(token.ASSIGN, ErrMissingAssign, "expected '=' in const statement") {
		return nil
	}
	p.cursor = p.cursor.Advance()

	stmt.Value = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.cursor.Current()}

	if p.cursor.PeekIs(1, token.SEMICOLON) {
		p.cursor = p.cursor.Advance()
		return stmt
	}

	p.cursor = p.cursor.Advance()
	stmt.ReturnValue = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.cursor.Current()}
	stmt.Expression = p.parseExpression(LOWEST)
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.cursor.Current()}
	p.cursor = p.cursor.Advance() // consume '{'

	for !p.cursor.Is(token.RBRACE) && !p.cursor.IsEOF() {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
			p.cursor = p.cursor.Advance()
		} else {
			p.synchronize()
		}
	}

	if !p.expectCurrent(token.RBRACE, ErrMissingRBrace, "expected '}' to close block") {
		return block
	}
	return block
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Token: p.cursor.Current()}

	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after 'while'") {
		return nil
	}
	p.cursor = p.cursor.Advance()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN, ErrMissingRParen, "expected ')' after while condition") {
		return nil
	}
	if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start while body") {
		return nil
	}

	p.loopDepth++
	stmt.Body = p.parseBlockStatement()
	p.loopDepth--
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.cursor.Current()}

	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after 'for'") {
		return nil
	}

	p.cursor = p.cursor.Advance()
	if p.cursor.Is(token.SEMICOLON) {
		// no init clause
	} else if p.cursor.Is(token.LET) {
		stmt.Init = p.parseLetStatement()
	} else {
		stmt.Init = p.parseExpressionStatement()
	}
	if !p.cursor.Is(token.SEMICOLON) {
		p.addError(p.cursor.Current().Position, ErrMissingSemicolon, "expected ';' after for-init, got %s", p.cursor.Current().Type)
	} else {
		p.cursor = p.cursor.Advance()
	}

	if !p.cursor.Is(token.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.SEMICOLON, ErrMissingSemicolon, "expected ';' after for-condition") {
		return nil
	}

	p.cursor = p.cursor.Advance()
	if !p.cursor.Is(token.RPAREN) {
		stmt.Update = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.RPAREN, ErrMissingRParen, "expected ')' after for-clauses") {
		return nil
	}
	if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start for body") {
		return nil
	}

	p.loopDepth++
	stmt.Body = p.parseBlockStatement()
	p.loopDepth--
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.cursor.Current()}
	if p.loopDepth == 0 {
		p.addError(stmt.Token.Position, ErrBreakOutsideLoop, "'break' used outside of a loop")
	}
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Statement {
	stmt := &ast.ContinueStatement{Token: p.cursor.Current()}
	if p.loopDepth == 0 {
		p.addError(stmt.Token.Position, ErrContinueOutsideLoop, "'continue' used outside of a loop")
	}
	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseClassStatement() ast.Statement {
	stmt := &ast.ClassStatement{Token: p.cursor.Current()}

	if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected class name") {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}

	if p.cursor.PeekIs(1, token.EXTENDS) {
		p.cursor = p.cursor.Advance()
		if !p.expectPeek(token.IDENTIFIER, ErrExpectedIdent, "expected parent class name after 'extends'") {
			return nil
		}
		stmt.Parent = &ast.Identifier{Token: p.cursor.Current(), Value: p.cursor.Current().Literal}
	}

	if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start class body") {
		return nil
	}
	p.cursor = p.cursor.Advance() // consume '{'

	p.classDepth++
	for !p.cursor.Is(token.RBRACE) && !p.cursor.IsEOF() {
		if !p.cursor.Is(token.IDENTIFIER) && !p.cursor.Is(token.FUNCTION) {
			p.addError(p.cursor.Current().Position, ErrExpectedIdent, "expected method name in class body, got %s", p.cursor.Current().Type)
			p.cursor = p.cursor.Advance()
			continue
		}
		name := p.cursor.Current().Literal
		fn := p.parseMethodFunction()
		if fn == nil {
			continue
		}
		if name == "constructor" {
			stmt.Constructor = fn
		} else {
			stmt.Methods = append(stmt.Methods, &ast.MethodDefinition{Name: name, Function: fn})
		}
		p.cursor = p.cursor.Advance()
	}
	p.classDepth--

	if !p.expectCurrent(token.RBRACE, ErrMissingRBrace, "expected '}' to close class body") {
		return stmt
	}
	return stmt
}

// parseMethodFunction parses `name(params) { body }` inside a class body,
// producing a *ast.FunctionLiteral whose token is the method name token.
func (p *Parser) parseMethodFunction() *ast.FunctionLiteral {
	fn := &ast.FunctionLiteral{Token: p.cursor.Current()}

	if !p.expectPeek(token.LPAREN, ErrMissingLParen, "expected '(' after method name") {
		return nil
	}
	fn.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE, ErrMissingRBrace, "expected '{' to start method body") {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	return fn
}
