package evaluator

import "github.com/utkarsh5026/interpreter-sub002/internal/object"

// isTruthy implements the language's truthiness rule: false, null, zero
// (integer or float), the empty string, and empty arrays/hashes are
// falsy; everything else is truthy.
func isTruthy(v object.Value) bool {
	switch v := v.(type) {
	case *object.Boolean:
		return v.Value
	case *object.Null:
		return false
	case *object.Integer:
		return v.Value != 0
	case *object.Float:
		return v.Value != 0
	case *object.String:
		return v.Value != ""
	case *object.Array:
		return len(v.Elements) > 0
	case *object.Hash:
		return len(v.Order) > 0
	default:
		return true
	}
}
