package builtins

import (
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

func TestBuiltinUpperLowerTrim(t *testing.T) {
	upper, err := builtinUpper(&object.String{Value: "Hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upper.(*object.String).Value != "HELLO" {
		t.Errorf("expected HELLO, got %q", upper.(*object.String).Value)
	}

	lower, err := builtinLower(&object.String{Value: "Hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower.(*object.String).Value != "hello" {
		t.Errorf("expected hello, got %q", lower.(*object.String).Value)
	}

	trimmed, err := builtinTrim(&object.String{Value: "  hi  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trimmed.(*object.String).Value != "hi" {
		t.Errorf("expected 'hi', got %q", trimmed.(*object.String).Value)
	}
}

func TestStringArgWrongType(t *testing.T) {
	if _, err := builtinUpper(&object.Integer{Value: 1}); err == nil {
		t.Fatal("expected error for non-string argument")
	}
}

func TestBuiltinSplit(t *testing.T) {
	result, err := builtinSplit(&object.String{Value: "a,b,c"}, &object.String{Value: ","})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := result.(*object.Array)
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	if arr.Elements[1].(*object.String).Value != "b" {
		t.Errorf("expected second element 'b', got %q", arr.Elements[1].(*object.String).Value)
	}
}

func TestBuiltinJoin(t *testing.T) {
	arr := &object.Array{Elements: []object.Value{
		&object.String{Value: "a"}, &object.Integer{Value: 1}, &object.String{Value: "c"},
	}}
	result, err := builtinJoin(arr, &object.String{Value: "-"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.(*object.String).Value != "a-1-c" {
		t.Errorf("expected 'a-1-c', got %q", result.(*object.String).Value)
	}
}

func TestBuiltinContains(t *testing.T) {
	result, err := builtinContains(&object.String{Value: "hello world"}, &object.String{Value: "world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != object.TRUE {
		t.Errorf("expected TRUE, got %v", result)
	}

	result, err = builtinContains(&object.String{Value: "hello world"}, &object.String{Value: "xyz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != object.FALSE {
		t.Errorf("expected FALSE, got %v", result)
	}
}
