package builtins

import (
	"fmt"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

// len returns the element count of an array/hash or the rune count of a
// string.
func builtinLen(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("len() expects 1 argument, got %d", len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len([]rune(arg.Value)))}, nil
	case *object.Array:
		return &object.Integer{Value: int64(len(arg.Elements))}, nil
	case *object.Hash:
		return &object.Integer{Value: int64(len(arg.Order))}, nil
	default:
		return nil, fmt.Errorf("len() does not support %s", arg.Type())
	}
}

// push returns a new array with value appended; the original is left
// untouched so the result must be reassigned by the caller.
func builtinPush(args ...object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("push() expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, fmt.Errorf("push() expects an array as its first argument, got %s", args[0].Type())
	}
	elements := make([]object.Value, len(arr.Elements), len(arr.Elements)+1)
	copy(elements, arr.Elements)
	elements = append(elements, args[1])
	return &object.Array{Elements: elements}, nil
}

// pop returns a new array with its last element removed.
func builtinPop(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("pop() expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, fmt.Errorf("pop() expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return nil, fmt.Errorf("pop() called on an empty array")
	}
	elements := make([]object.Value, len(arr.Elements)-1)
	copy(elements, arr.Elements[:len(arr.Elements)-1])
	return &object.Array{Elements: elements}, nil
}

// first returns an array's first element, or an error for an empty array.
func builtinFirst(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("first() expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, fmt.Errorf("first() expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return nil, fmt.Errorf("first() called on an empty array")
	}
	return arr.Elements[0], nil
}

// last returns an array's last element, or an error for an empty array.
func builtinLast(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("last() expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, fmt.Errorf("last() expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return nil, fmt.Errorf("last() called on an empty array")
	}
	return arr.Elements[len(arr.Elements)-1], nil
}

// rest returns a new array holding every element after the first.
func builtinRest(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("rest() expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, fmt.Errorf("rest() expects an array, got %s", args[0].Type())
	}
	if len(arr.Elements) == 0 {
		return &object.Array{}, nil
	}
	elements := make([]object.Value, len(arr.Elements)-1)
	copy(elements, arr.Elements[1:])
	return &object.Array{Elements: elements}, nil
}

// keys returns a hash's keys as an array, in insertion order.
func builtinKeys(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("keys() expects 1 argument, got %d", len(args))
	}
	h, ok := args[0].(*object.Hash)
	if !ok {
		return nil, fmt.Errorf("keys() expects a hash, got %s", args[0].Type())
	}
	elements := make([]object.Value, 0, len(h.Order))
	for _, k := range h.Order {
		elements = append(elements, h.Pairs[k].Key)
	}
	return &object.Array{Elements: elements}, nil
}

// values returns a hash's values as an array, in insertion order.
func builtinValues(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("values() expects 1 argument, got %d", len(args))
	}
	h, ok := args[0].(*object.Hash)
	if !ok {
		return nil, fmt.Errorf("values() expects a hash, got %s", args[0].Type())
	}
	elements := make([]object.Value, 0, len(h.Order))
	for _, k := range h.Order {
		elements = append(elements, h.Pairs[k].Value)
	}
	return &object.Array{Elements: elements}, nil
}
