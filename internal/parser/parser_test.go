package parser

import (
	"fmt"
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	program := p.ParseProgram()
	checkParserErrors(t, p)
	return program
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error: %s", e.Error())
	}
	t.FailNow()
}

func TestLetStatements(t *testing.T) {
	tests := []struct {
		input         string
		expectedIdent string
	}{
		{"let x = 5;", "x"},
		{"let y = true;", "y"},
		{"let foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("program.Statements has wrong length: %d", len(program.Statements))
		}
		stmt, ok := program.Statements[0].(*ast.LetStatement)
		if !ok {
			t.Fatalf("statement is not *ast.LetStatement, got %T", program.Statements[0])
		}
		if stmt.Name.Value != tt.expectedIdent {
			t.Fatalf("stmt.Name.Value = %q, want %q", stmt.Name.Value, tt.expectedIdent)
		}
	}
}

func TestConstStatement(t *testing.T) {
	program := parseProgram(t, "const PI = 3;")
	stmt, ok := program.Statements[0].(*ast.ConstStatement)
	if !ok {
		t.Fatalf("statement is not *ast.ConstStatement, got %T", program.Statements[0])
	}
	if stmt.Name.Value != "PI" {
		t.Fatalf("name = %q, want PI", stmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return; return x;")
	if len(program.Statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(program.Statements))
	}
	for i, want := range []bool{true, false, true} {
		stmt := program.Statements[i].(*ast.ReturnStatement)
		if (stmt.ReturnValue != nil) != want {
			t.Fatalf("statement %d: ReturnValue presence = %v, want %v", i, stmt.ReturnValue != nil, want)
		}
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"a || b && c", "(a || (b && c))"},
		{"a.b.c", "((a.b).c)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		var got string
		for _, s := range program.Statements {
			got += s.String()
		}
		if got != tt.want {
			t.Fatalf("input %q: got %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIfElifElse(t *testing.T) {
	input := `if (x < y) { x } elif (x == y) { y } else { z }`
	program := parseProgram(t, input)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExpr := stmt.Expression.(*ast.IfExpression)

	if len(ifExpr.Conditions) != 2 {
		t.Fatalf("got %d conditions, want 2", len(ifExpr.Conditions))
	}
	if ifExpr.Alternative == nil {
		t.Fatalf("expected an else branch")
	}
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, `fn(x, y) { x + y; }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn := stmt.Expression.(*ast.FunctionLiteral)

	if len(fn.Parameters) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Parameters))
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Statements))
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expression.(*ast.CallExpression)

	if ident, ok := call.Function.(*ast.Identifier); !ok || ident.Value != "add" {
		t.Fatalf("call.Function = %v", call.Function)
	}
	if len(call.Arguments) != 3 {
		t.Fatalf("got %d arguments, want 3", len(call.Arguments))
	}
}

func TestArrayAndIndexExpressions(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3][1 + 1]")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx := stmt.Expression.(*ast.IndexExpression)
	arr, ok := idx.Left.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("left = %v", idx.Left)
	}
}

func TestHashLiteralParsing(t *testing.T) {
	program := parseProgram(t, `({"one": 1, "two": 2})`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	hash := stmt.Expression.(*ast.HashLiteral)
	if len(hash.Keys) != 2 {
		t.Fatalf("got %d keys, want 2", len(hash.Keys))
	}
}

func TestAssignmentParsesAsAssignExpression(t *testing.T) {
	program := parseProgram(t, "x = 5;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expression.(*ast.AssignExpression)
	if !ok {
		t.Fatalf("expression is not *ast.AssignExpression, got %T", stmt.Expression)
	}
	if ident, ok := assign.Target.(*ast.Identifier); !ok || ident.Value != "x" {
		t.Fatalf("target = %v", assign.Target)
	}
}

func TestCompoundAssignmentDesugarsToInfix(t *testing.T) {
	program := parseProgram(t, "x += 1;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expression.(*ast.AssignExpression)
	infix, ok := assign.Value.(*ast.InfixExpression)
	if !ok || infix.Operator != "+" {
		t.Fatalf("value = %v", assign.Value)
	}
}

func TestInvalidAssignmentTargetReportsError(t *testing.T) {
	p := New(lexer.New("1 = 2;"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected an error for invalid assignment target")
	}
}

func TestWhileAndForStatements(t *testing.T) {
	program := parseProgram(t, `
		while (i < 10) { i = i + 1; }
		for (let i = 0; i < 10; i = i + 1) { break; }
	`)
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.WhileStatement); !ok {
		t.Fatalf("statement 0 is not *ast.WhileStatement")
	}
	forStmt, ok := program.Statements[1].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement 1 is not *ast.ForStatement")
	}
	if forStmt.Init == nil || forStmt.Condition == nil || forStmt.Update == nil {
		t.Fatalf("for statement missing a clause: %+v", forStmt)
	}
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	p := New(lexer.New("break;"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected an error for break outside a loop")
	}
}

func TestClassWithConstructorAndMethodsAndExtends(t *testing.T) {
	input := `
	class Animal {
		constructor(name) { this.name = name; }
		speak() { return "..."; }
	}
	class Dog extends Animal {
		speak() { return super.speak(); }
	}
	`
	program := parseProgram(t, input)
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}

	animal := program.Statements[0].(*ast.ClassStatement)
	if animal.Constructor == nil {
		t.Fatalf("expected a constructor")
	}
	if len(animal.Methods) != 1 || animal.Methods[0].Name != "speak" {
		t.Fatalf("methods = %+v", animal.Methods)
	}

	dog := program.Statements[1].(*ast.ClassStatement)
	if dog.Parent == nil || dog.Parent.Value != "Animal" {
		t.Fatalf("parent = %v", dog.Parent)
	}
}

func TestNewExpression(t *testing.T) {
	program := parseProgram(t, `new Dog("Rex")`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ne := stmt.Expression.(*ast.NewExpression)
	if ne.Class.(*ast.Identifier).Value != "Dog" {
		t.Fatalf("class = %v", ne.Class)
	}
	if len(ne.Arguments) != 1 {
		t.Fatalf("got %d arguments, want 1", len(ne.Arguments))
	}
}

func TestFStringParsesStaticAndEmbeddedParts(t *testing.T) {
	program := parseProgram(t, `f"hello {name}, you are {age + 1} years old"`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fs := stmt.Expression.(*ast.FStringLiteral)

	if len(fs.StaticParts) != len(fs.Embedded)+1 {
		t.Fatalf("invariant violated: %d static, %d embedded", len(fs.StaticParts), len(fs.Embedded))
	}
	if len(fs.Embedded) != 2 {
		t.Fatalf("got %d embedded expressions, want 2", len(fs.Embedded))
	}
	if ident, ok := fs.Embedded[0].(*ast.Identifier); !ok || ident.Value != "name" {
		t.Fatalf("embedded[0] = %v", fs.Embedded[0])
	}
	if infix, ok := fs.Embedded[1].(*ast.InfixExpression); !ok || infix.Operator != "+" {
		t.Fatalf("embedded[1] = %v", fs.Embedded[1])
	}
}

func TestFStringWithNestedHashInEmbeddedExpr(t *testing.T) {
	program := parseProgram(t, `f"map is {({"a": 1})["a"]}"`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fs := stmt.Expression.(*ast.FStringLiteral)
	if len(fs.Embedded) != 1 {
		t.Fatalf("got %d embedded expressions, want 1: %s", len(fs.Embedded), fmt.Sprint(fs.Embedded))
	}
}

func TestErrorRecoverySkipsBadStatementButParsesRest(t *testing.T) {
	p := New(lexer.New("let = ; let y = 5;"))
	program := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least one error")
	}
	found := false
	for _, s := range program.Statements {
		if ls, ok := s.(*ast.LetStatement); ok && ls.Name != nil && ls.Name.Value == "y" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovery to still parse 'let y = 5;', statements: %+v", program.Statements)
	}
}
