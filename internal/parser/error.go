package parser

import (
	"fmt"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// Error codes for programmatic handling by callers (e.g. an editor
// integration that wants to distinguish "missing semicolon" from "unknown
// token").
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrMissingLParen    = "E_MISSING_LPAREN"
	ErrMissingRParen    = "E_MISSING_RPAREN"
	ErrMissingRBracket  = "E_MISSING_RBRACKET"
	ErrMissingRBrace    = "E_MISSING_RBRACE"
	ErrMissingColon     = "E_MISSING_COLON"
	ErrMissingAssign    = "E_MISSING_ASSIGN"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrInvalidAssignTarget = "E_INVALID_ASSIGN_TARGET"
	ErrBreakOutsideLoop    = "E_BREAK_OUTSIDE_LOOP"
	ErrContinueOutsideLoop = "E_CONTINUE_OUTSIDE_LOOP"
	ErrSuperOutsideClass   = "E_SUPER_OUTSIDE_CLASS"
	ErrInvalidFString      = "E_INVALID_FSTRING"
)

// ParseError is a structured parsing diagnostic with position information.
type ParseError struct {
	Message  string
	Code     string
	Position token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Position)
}

func newParseError(pos token.Position, code, message string) *ParseError {
	return &ParseError{Message: message, Code: code, Position: pos}
}
