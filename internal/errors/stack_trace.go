package errors

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// StackFrame is one entry in a call stack: which function was running and
// where the call into it occurred.
type StackFrame struct {
	Position     *token.Position
	FunctionName string
}

func (sf StackFrame) String() string {
	if sf.Position == nil {
		return sf.FunctionName
	}
	return fmt.Sprintf("%s [line: %d, column: %d]", sf.FunctionName, sf.Position.Line, sf.Position.Column)
}

// StackTrace is a call stack, ordered oldest (bottom) to newest (top).
type StackTrace []StackFrame

// String renders the trace newest-first, one frame per line, matching how
// a traceback is conventionally read (the failing call at the top).
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Top returns the most recently pushed frame, or nil if the trace is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Depth returns the number of frames in the trace.
func (st StackTrace) Depth() int {
	return len(st)
}

// NewStackFrame creates a StackFrame for functionName at position.
func NewStackFrame(functionName string, position *token.Position) StackFrame {
	return StackFrame{FunctionName: functionName, Position: position}
}

// NewStackTrace creates an empty StackTrace.
func NewStackTrace() StackTrace {
	return make(StackTrace, 0)
}
