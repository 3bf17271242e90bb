package builtins

import (
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

func TestBuiltinStr(t *testing.T) {
	tests := []struct {
		arg  object.Value
		want string
	}{
		{&object.Integer{Value: 42}, "42"},
		{&object.String{Value: "hi"}, "hi"},
		{object.TRUE, "true"},
		{object.NULL, "null"},
	}
	for _, tt := range tests {
		result, err := builtinStr(tt.arg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.(*object.String).Value != tt.want {
			t.Errorf("expected %q, got %q", tt.want, result.(*object.String).Value)
		}
	}
}

func TestBuiltinIntFromFloatTruncates(t *testing.T) {
	result, err := builtinInt(&object.Float{Value: 3.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*object.Integer).Value != 3 {
		t.Errorf("expected 3, got %d", result.(*object.Integer).Value)
	}
}

func TestBuiltinIntFromString(t *testing.T) {
	result, err := builtinInt(&object.String{Value: "123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*object.Integer).Value != 123 {
		t.Errorf("expected 123, got %d", result.(*object.Integer).Value)
	}
}

func TestBuiltinIntFromInvalidString(t *testing.T) {
	if _, err := builtinInt(&object.String{Value: "not a number"}); err == nil {
		t.Fatal("expected error for invalid numeric string")
	}
}

func TestBuiltinIntFromBoolean(t *testing.T) {
	result, err := builtinInt(object.TRUE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*object.Integer).Value != 1 {
		t.Errorf("expected 1, got %d", result.(*object.Integer).Value)
	}
}

func TestBuiltinFloatFromIntAndString(t *testing.T) {
	result, err := builtinFloat(&object.Integer{Value: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*object.Float).Value != 5.0 {
		t.Errorf("expected 5.0, got %v", result.(*object.Float).Value)
	}

	result, err = builtinFloat(&object.String{Value: "3.14"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*object.Float).Value != 3.14 {
		t.Errorf("expected 3.14, got %v", result.(*object.Float).Value)
	}
}

func TestBuiltinFloatFromInvalidString(t *testing.T) {
	if _, err := builtinFloat(&object.String{Value: "nope"}); err == nil {
		t.Fatal("expected error for invalid float string")
	}
}

func TestBuiltinBoolTruthiness(t *testing.T) {
	tests := []struct {
		arg  object.Value
		want object.Value
	}{
		{&object.Integer{Value: 0}, object.FALSE},
		{&object.Integer{Value: 5}, object.TRUE},
		{&object.String{Value: ""}, object.FALSE},
		{&object.String{Value: "x"}, object.TRUE},
		{object.NULL, object.FALSE},
		{&object.Array{}, object.FALSE},
		{&object.Array{Elements: []object.Value{object.NULL}}, object.TRUE},
	}
	for _, tt := range tests {
		result, err := builtinBool(tt.arg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != tt.want {
			t.Errorf("for %v expected %v, got %v", tt.arg.Inspect(), tt.want, result)
		}
	}
}
