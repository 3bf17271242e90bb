package builtins

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

func builtinUpper(args ...object.Value) (object.Value, error) {
	s, err := stringArg("upper", args)
	if err != nil {
		return nil, err
	}
	return &object.String{Value: strings.ToUpper(s)}, nil
}

func builtinLower(args ...object.Value) (object.Value, error) {
	s, err := stringArg("lower", args)
	if err != nil {
		return nil, err
	}
	return &object.String{Value: strings.ToLower(s)}, nil
}

func builtinTrim(args ...object.Value) (object.Value, error) {
	s, err := stringArg("trim", args)
	if err != nil {
		return nil, err
	}
	return &object.String{Value: strings.TrimSpace(s)}, nil
}

func builtinSplit(args ...object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("split() expects 2 arguments, got %d", len(args))
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return nil, fmt.Errorf("split() expects a string as its first argument, got %s", args[0].Type())
	}
	sep, ok := args[1].(*object.String)
	if !ok {
		return nil, fmt.Errorf("split() expects a string separator, got %s", args[1].Type())
	}
	parts := strings.Split(s.Value, sep.Value)
	elements := make([]object.Value, len(parts))
	for i, p := range parts {
		elements[i] = &object.String{Value: p}
	}
	return &object.Array{Elements: elements}, nil
}

func builtinJoin(args ...object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("join() expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, fmt.Errorf("join() expects an array as its first argument, got %s", args[0].Type())
	}
	sep, ok := args[1].(*object.String)
	if !ok {
		return nil, fmt.Errorf("join() expects a string separator, got %s", args[1].Type())
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = displayArg(el)
	}
	return &object.String{Value: strings.Join(parts, sep.Value)}, nil
}

func builtinContains(args ...object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("contains() expects 2 arguments, got %d", len(args))
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return nil, fmt.Errorf("contains() expects a string as its first argument, got %s", args[0].Type())
	}
	sub, ok := args[1].(*object.String)
	if !ok {
		return nil, fmt.Errorf("contains() expects a string needle, got %s", args[1].Type())
	}
	return object.NativeBool(strings.Contains(s.Value, sub.Value)), nil
}

func stringArg(name string, args []object.Value) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s() expects 1 argument, got %d", name, len(args))
	}
	s, ok := args[0].(*object.String)
	if !ok {
		return "", fmt.Errorf("%s() expects a string, got %s", name, args[0].Type())
	}
	return s.Value, nil
}
