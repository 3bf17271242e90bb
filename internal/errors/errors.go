// Package errors formats diagnostics with source context: line/column
// information and a caret pointing at the exact failure site, the way a
// compiler error is usually presented to a human reader.
package errors

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// CompilerError is a single diagnostic with enough context to render a
// source snippet around the failure.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError creates a CompilerError.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with a one-line source snippet and a caret.
// When color is true, ANSI escapes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))
	}

	if sourceLine := e.getSourceLine(e.Pos.Line); sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders every error in errs, numbering them when there is
// more than one.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
