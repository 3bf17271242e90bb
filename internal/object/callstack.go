package object

import (
	"fmt"

	"github.com/utkarsh5026/interpreter-sub002/internal/errors"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

// CallStack tracks nested function/method calls during evaluation so
// unbounded recursion is caught as a language-level error instead of
// exhausting the Go call stack.
type CallStack struct {
	frames   errors.StackTrace
	maxDepth int
}

const defaultMaxCallDepth = 1024

// NewCallStack creates a call stack allowing at most maxDepth nested calls.
// A non-positive maxDepth falls back to a sane default.
func NewCallStack(maxDepth int) *CallStack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxCallDepth
	}
	return &CallStack{frames: errors.NewStackTrace(), maxDepth: maxDepth}
}

// Push records entry into functionName at pos. It returns an error instead
// of pushing once maxDepth would be exceeded.
func (cs *CallStack) Push(functionName string, pos *token.Position) error {
	if len(cs.frames) >= cs.maxDepth {
		return fmt.Errorf("stack overflow: maximum call depth (%d) exceeded in %s", cs.maxDepth, functionName)
	}
	cs.frames = append(cs.frames, errors.NewStackFrame(functionName, pos))
	return nil
}

// Pop removes the most recently pushed frame. A no-op on an empty stack.
func (cs *CallStack) Pop() {
	if len(cs.frames) > 0 {
		cs.frames = cs.frames[:len(cs.frames)-1]
	}
}

// Depth returns the number of frames currently on the stack.
func (cs *CallStack) Depth() int {
	return len(cs.frames)
}

// Trace returns a copy of the current call stack, oldest first.
func (cs *CallStack) Trace() errors.StackTrace {
	trace := make(errors.StackTrace, len(cs.frames))
	copy(trace, cs.frames)
	return trace
}

// String renders the stack the way a traceback is conventionally read,
// most recent call first.
func (cs *CallStack) String() string {
	return cs.frames.String()
}
