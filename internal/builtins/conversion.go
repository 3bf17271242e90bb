package builtins

import (
	"fmt"
	"strconv"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

// str renders any value the way it would appear interpolated into an
// f-string.
func builtinStr(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("str() expects 1 argument, got %d", len(args))
	}
	return &object.String{Value: displayArg(args[0])}, nil
}

// int coerces a float or numeric string to an integer, truncating floats
// toward zero.
func builtinInt(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("int() expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *object.Integer:
		return arg, nil
	case *object.Float:
		return &object.Integer{Value: int64(arg.Value)}, nil
	case *object.String:
		n, err := strconv.ParseInt(arg.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int(): %q is not a valid integer", arg.Value)
		}
		return &object.Integer{Value: n}, nil
	case *object.Boolean:
		if arg.Value {
			return &object.Integer{Value: 1}, nil
		}
		return &object.Integer{Value: 0}, nil
	default:
		return nil, fmt.Errorf("int() does not support %s", arg.Type())
	}
}

// float coerces an integer or numeric string to a float.
func builtinFloat(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("float() expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *object.Float:
		return arg, nil
	case *object.Integer:
		return &object.Float{Value: float64(arg.Value)}, nil
	case *object.String:
		f, err := strconv.ParseFloat(arg.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("float(): %q is not a valid float", arg.Value)
		}
		return &object.Float{Value: f}, nil
	default:
		return nil, fmt.Errorf("float() does not support %s", arg.Type())
	}
}

// bool coerces any value to a boolean using the language's truthiness rule:
// false, null, zero, and empty strings/arrays/hashes are falsy.
func builtinBool(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("bool() expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *object.Boolean:
		return arg, nil
	case *object.Null:
		return object.FALSE, nil
	case *object.Integer:
		return object.NativeBool(arg.Value != 0), nil
	case *object.Float:
		return object.NativeBool(arg.Value != 0), nil
	case *object.String:
		return object.NativeBool(arg.Value != ""), nil
	case *object.Array:
		return object.NativeBool(len(arg.Elements) != 0), nil
	case *object.Hash:
		return object.NativeBool(len(arg.Order) != 0), nil
	default:
		return object.TRUE, nil
	}
}
