package lexer

import (
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

func collectTokens(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestNextTokenBasics(t *testing.T) {
	input := `let five = 5;
let add = fn(x, y) {
  x + y;
};
let result = add(five, 10);
!-/ *5;
5 < 10 > 5;
if (5 < 10) {
  return true;
} elif (5 == 5) {
  return false;
} else {
  return null;
}
10 == 10;
10 != 9;
"foobar";
'foobar';
[1, 2];
{"one": 1};
`

	expected := []struct {
		typ     token.Type
		literal string
	}{
		{token.LET, "let"}, {token.IDENTIFIER, "five"}, {token.ASSIGN, "="}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENTIFIER, "add"}, {token.ASSIGN, "="}, {token.FUNCTION, "fn"}, {token.LPAREN, "("},
		{token.IDENTIFIER, "x"}, {token.COMMA, ","}, {token.IDENTIFIER, "y"}, {token.RPAREN, ")"}, {token.LBRACE, "{"},
		{token.IDENTIFIER, "x"}, {token.PLUS, "+"}, {token.IDENTIFIER, "y"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"}, {token.SEMICOLON, ";"},
		{token.LET, "let"}, {token.IDENTIFIER, "result"}, {token.ASSIGN, "="}, {token.IDENTIFIER, "add"}, {token.LPAREN, "("},
		{token.IDENTIFIER, "five"}, {token.COMMA, ","}, {token.INT, "10"}, {token.RPAREN, ")"}, {token.SEMICOLON, ";"},
		{token.BANG, "!"}, {token.MINUS, "-"}, {token.SLASH, "/"}, {token.ASTERISK, "*"}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.GT, ">"}, {token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.IF, "if"}, {token.LPAREN, "("}, {token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.RETURN, "return"}, {token.TRUE, "true"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.ELIF, "elif"}, {token.LPAREN, "("}, {token.INT, "5"}, {token.EQ, "=="}, {token.INT, "5"}, {token.RPAREN, ")"},
		{token.LBRACE, "{"}, {token.RETURN, "return"}, {token.FALSE, "false"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.ELSE, "else"}, {token.LBRACE, "{"}, {token.RETURN, "return"}, {token.NULL, "null"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"},
		{token.INT, "10"}, {token.EQ, "=="}, {token.INT, "10"}, {token.SEMICOLON, ";"},
		{token.INT, "10"}, {token.NOT_EQ, "!="}, {token.INT, "9"}, {token.SEMICOLON, ";"},
		{token.STRING, "foobar"}, {token.SEMICOLON, ";"},
		{token.STRING, "foobar"}, {token.SEMICOLON, ";"},
		{token.LBRACKET, "["}, {token.INT, "1"}, {token.COMMA, ","}, {token.INT, "2"}, {token.RBRACKET, "]"}, {token.SEMICOLON, ";"},
		{token.LBRACE, "{"}, {token.STRING, "one"}, {token.COLON, ":"}, {token.INT, "1"}, {token.RBRACE, "}"}, {token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	toks := collectTokens(input)
	if len(toks) != len(expected) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(expected))
	}
	for i, want := range expected {
		got := toks[i]
		if got.Type != want.typ || got.Literal != want.literal {
			t.Fatalf("token[%d] = %s(%q), want %s(%q)", i, got.Type, got.Literal, want.typ, want.literal)
		}
	}
}

func TestColumnIsOneBasedAndPostAdvance(t *testing.T) {
	toks := collectTokens(`let`)
	if toks[0].Position.Line != 1 || toks[0].Position.Column != 3 {
		t.Fatalf("position = %d:%d, want 1:3", toks[0].Position.Line, toks[0].Position.Column)
	}
}

func TestTwoCharOperators(t *testing.T) {
	toks := collectTokens(`<= >= += -= *= /= %= << >> // && ||`)
	want := []token.Type{
		token.LT_EQ, token.GT_EQ, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.ASTERISK_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN,
		token.SHL, token.SHR, token.SLASH_SLASH, token.AND, token.OR, token.EOF,
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Fatalf("token[%d] = %s, want %s", i, toks[i].Type, typ)
		}
	}
}

func TestFloatVsIntLexing(t *testing.T) {
	toks := collectTokens(`1 1.5 .5 5.`)
	want := []struct {
		typ     token.Type
		literal string
	}{
		{token.INT, "1"}, {token.FLOAT, "1.5"}, {token.FLOAT, ".5"}, {token.FLOAT, "5."}, {token.EOF, ""},
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.literal {
			t.Fatalf("token[%d] = %s(%q), want %s(%q)", i, toks[i].Type, toks[i].Literal, w.typ, w.literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks := collectTokens(`"a\nb\t\"c\""`)
	if toks[0].Literal != "a\nb\t\"c\"" {
		t.Fatalf("literal = %q", toks[0].Literal)
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	l := New(`"abc`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("token type = %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("errors = %d, want 1", len(l.Errors()))
	}
}

func TestFStringRawBodyWithBalancedBraces(t *testing.T) {
	toks := collectTokens(`f"{name} is {1 + {2}}"`)
	if toks[0].Type != token.F_STRING {
		t.Fatalf("type = %s, want F_STRING", toks[0].Type)
	}
	if toks[0].Literal != "{name} is {1 + {2}}" {
		t.Fatalf("literal = %q", toks[0].Literal)
	}
}

func TestUnmatchedClosingBraceInFStringIsLexError(t *testing.T) {
	l := New(`f"a}b"`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("errors = %d, want 1", len(l.Errors()))
	}
}

func TestLineComment(t *testing.T) {
	toks := collectTokens("let x = 1; # comment\nlet y = 2;")
	// first five tokens through ';', then let y = 2 ;
	if toks[5].Type != token.LET {
		t.Fatalf("expected LET after comment, got %s", toks[5].Type)
	}
}

func TestNestedBlockComment(t *testing.T) {
	toks := collectTokens("1 /* outer /* inner */ still outer */ 2")
	if len(toks) != 3 { // 1, 2, EOF
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if toks[0].Literal != "1" || toks[1].Literal != "2" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestCRLFAndLoneCRLineEndings(t *testing.T) {
	for _, input := range []string{"let\r\nx", "let\rx"} {
		toks := collectTokens(input)
		if toks[1].Position.Line != 2 {
			t.Fatalf("input %q: second token line = %d, want 2", input, toks[1].Position.Line)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	toks := collectTokens("@")
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", toks[0].Type)
	}
}
