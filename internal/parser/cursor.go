package parser

import (
	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// TokenCursor is an immutable cursor over a lazily-buffered token stream.
// Every navigation method returns a new cursor rather than mutating the
// receiver, so a parsing function can save a Mark, attempt a speculative
// parse, and ResetTo the mark if it fails, without hand-restoring
// curToken/peekToken-style fields.
type TokenCursor struct {
	lexer  *lexer.Lexer
	tokens []token.Token
	index  int
}

// NewTokenCursor creates a cursor positioned at the first token l produces.
func NewTokenCursor(l *lexer.Lexer) *TokenCursor {
	return &TokenCursor{lexer: l, tokens: []token.Token{l.NextToken()}, index: 0}
}

// Current returns the token at the cursor's position.
func (c *TokenCursor) Current() token.Token {
	return c.tokens[c.index]
}

// Peek returns the token n positions ahead; Peek(0) is Current, Peek(1) is
// the next token. Lookahead past EOF keeps returning EOF.
func (c *TokenCursor) Peek(n int) token.Token {
	target := c.index + n
	for target >= len(c.tokens) && c.tokens[len(c.tokens)-1].Type != token.EOF {
		c.tokens = append(c.tokens, c.lexer.NextToken())
	}
	if target >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[target]
}

// Advance returns a new cursor positioned at the next token.
func (c *TokenCursor) Advance() *TokenCursor {
	c.Peek(1)
	next := c.index + 1
	if next >= len(c.tokens) {
		next = len(c.tokens) - 1
	}
	return &TokenCursor{lexer: c.lexer, tokens: c.tokens, index: next}
}

// Is reports whether the current token has the given type.
func (c *TokenCursor) Is(t token.Type) bool {
	return c.Current().Type == t
}

// PeekIs reports whether the token n positions ahead has the given type.
func (c *TokenCursor) PeekIs(n int, t token.Type) bool {
	return c.Peek(n).Type == t
}

// Mark is a saved cursor position for later backtracking via ResetTo.
type Mark struct {
	index int
}

// Mark captures the current position.
func (c *TokenCursor) Mark() Mark {
	return Mark{index: c.index}
}

// ResetTo returns a cursor rewound to a previously captured Mark.
func (c *TokenCursor) ResetTo(m Mark) *TokenCursor {
	return &TokenCursor{lexer: c.lexer, tokens: c.tokens, index: m.index}
}

// IsEOF reports whether the cursor has reached the end of the token stream.
func (c *TokenCursor) IsEOF() bool {
	return c.Current().Type == token.EOF
}
