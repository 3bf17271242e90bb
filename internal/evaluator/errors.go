package evaluator

import (
	"fmt"

	"github.com/utkarsh5026/interpreter-sub002/internal/errors"
	"github.com/utkarsh5026/interpreter-sub002/internal/object"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

func newError(pos token.Position, kind, format string, args ...interface{}) *object.Error {
	p := pos
	return &object.Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: &p}
}

// newErrorWithStack is like newError but attaches the call stack active at
// the point of failure, so the rendered error carries a traceback. Used for
// the stack-overflow case, where the stack itself is the diagnostic.
func newErrorWithStack(pos token.Position, kind string, stack errors.StackTrace, format string, args ...interface{}) *object.Error {
	p := pos
	return &object.Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: &p, Stack: stack}
}

func isError(v object.Value) bool {
	if v == nil {
		return false
	}
	return v.Type() == object.ERROR_OBJ
}

func isReturn(v object.Value) (*object.ReturnValue, bool) {
	rv, ok := v.(*object.ReturnValue)
	return rv, ok
}

func isBreak(v object.Value) bool {
	_, ok := v.(*object.BreakSignal)
	return ok
}

func isContinue(v object.Value) bool {
	_, ok := v.(*object.ContinueSignal)
	return ok
}

// isSignal reports whether v is one of the control-flow sentinels or an
// error, i.e. anything a caller must propagate rather than treat as an
// ordinary value.
func isSignal(v object.Value) bool {
	if v == nil {
		return false
	}
	switch v.Type() {
	case object.ERROR_OBJ, object.RETURN_VALUE_OBJ, object.BREAK_OBJ, object.CONTINUE_OBJ:
		return true
	default:
		return false
	}
}
