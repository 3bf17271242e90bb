package parser

import (
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
)

// parseFStringLiteral rescans the raw body the lexer captured for an
// F_STRING token, splitting it into alternating static text and `{expr}`
// segments. Each embedded segment is source text in its own right, so it is
// handed to a fresh Lexer/Parser pair; any parse errors it raises are
// folded into the outer parser's error list, each reported at the
// f-string token's own position.
func (p *Parser) parseFStringLiteral() ast.Expression {
	tok := p.cursor.Current()
	fs := &ast.FStringLiteral{Token: tok}

	static, embeddedSrcs := splitFStringBody(tok.Literal)
	fs.StaticParts = static

	for _, src := range embeddedSrcs {
		embeddedParser := New(lexer.New(src))
		embeddedParser.classDepth = p.classDepth
		expr := embeddedParser.parseExpression(LOWEST)
		for _, e := range embeddedParser.Errors() {
			p.errors = append(p.errors, newParseError(tok.Position, ErrInvalidFString, "in f-string: "+e.Message))
		}
		if expr == nil {
			expr = &ast.NullLiteral{Token: tok}
		}
		fs.Embedded = append(fs.Embedded, expr)
	}

	return fs
}

// splitFStringBody splits a raw f-string body into static text segments and
// the raw source of each embedded {expr}. len(static) == len(embedded)+1.
// Backslash escapes in static text are resolved the same way a plain string
// literal's are; braces within an embedded segment nest (so a hash literal
// inside an interpolation doesn't end the segment early).
func splitFStringBody(body string) (static []string, embedded []string) {
	runes := []rune(body)
	var cur strings.Builder
	i := 0

	for i < len(runes) {
		ch := runes[i]
		if ch == '\\' && i+1 < len(runes) {
			cur.WriteRune(unescape(runes[i+1]))
			i += 2
			continue
		}
		if ch == '{' {
			static = append(static, cur.String())
			cur.Reset()

			depth := 1
			i++
			var exprSrc strings.Builder
			for i < len(runes) && depth > 0 {
				switch runes[i] {
				case '{':
					depth++
					exprSrc.WriteRune(runes[i])
				case '}':
					depth--
					if depth > 0 {
						exprSrc.WriteRune(runes[i])
					}
				case '\\':
					exprSrc.WriteRune(runes[i])
					if i+1 < len(runes) {
						i++
						exprSrc.WriteRune(runes[i])
					}
				default:
					exprSrc.WriteRune(runes[i])
				}
				i++
			}
			embedded = append(embedded, exprSrc.String())
			continue
		}
		cur.WriteRune(ch)
		i++
	}

	static = append(static, cur.String())
	return static, embedded
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'f':
		return '\f'
	case 'b':
		return '\b'
	case '\\':
		return '\\'
	case '{':
		return '{'
	case '}':
		return '}'
	case '\'':
		return '\''
	case '"':
		return '"'
	default:
		return ch
	}
}
