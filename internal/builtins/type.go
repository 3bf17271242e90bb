package builtins

import (
	"fmt"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

// typeNames maps the internal object.Type tags to the lowercase names the
// language surfaces to user code.
var typeNames = map[object.Type]string{
	object.INTEGER_OBJ:      "integer",
	object.FLOAT_OBJ:        "float",
	object.BOOLEAN_OBJ:      "boolean",
	object.STRING_OBJ:       "string",
	object.NULL_OBJ:         "null",
	object.ARRAY_OBJ:        "array",
	object.HASH_OBJ:         "hash",
	object.FUNCTION_OBJ:     "function",
	object.BUILTIN_OBJ:      "function",
	object.CLASS_OBJ:        "class",
	object.INSTANCE_OBJ:     "instance",
	object.BOUND_METHOD_OBJ: "function",
}

// typeOf returns the user-facing type name of a value, e.g. "integer" or
// "instance".
func builtinTypeOf(args ...object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("typeOf() expects 1 argument, got %d", len(args))
	}
	name, ok := typeNames[args[0].Type()]
	if !ok {
		name = string(args[0].Type())
	}
	return &object.String{Value: name}, nil
}
