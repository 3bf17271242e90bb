package builtins

import (
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

func TestBuiltinTypeOf(t *testing.T) {
	tests := []struct {
		arg  object.Value
		want string
	}{
		{&object.Integer{Value: 1}, "integer"},
		{&object.Float{Value: 1.5}, "float"},
		{object.TRUE, "boolean"},
		{&object.String{Value: "x"}, "string"},
		{object.NULL, "null"},
		{&object.Array{}, "array"},
		{object.NewHash(), "hash"},
		{&object.Function{}, "function"},
		{&object.Builtin{}, "function"},
		{&object.Class{Name: "Foo"}, "class"},
		{&object.Instance{Class: &object.Class{Name: "Foo"}, Fields: map[string]object.Value{}}, "instance"},
	}

	for _, tt := range tests {
		result, err := builtinTypeOf(tt.arg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.(*object.String).Value != tt.want {
			t.Errorf("expected %q, got %q", tt.want, result.(*object.String).Value)
		}
	}
}

func TestBuiltinTypeOfWrongArgCount(t *testing.T) {
	if _, err := builtinTypeOf(); err == nil {
		t.Fatal("expected error for missing argument")
	}
}
