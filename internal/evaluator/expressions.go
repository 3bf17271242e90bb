package evaluator

import (
	"math"
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if e.builtins != nil {
		if fn, ok := e.builtins.Lookup(node.Value); ok {
			return fn
		}
	}
	return newError(node.Pos(), object.ErrIdentifierNotFound, "identifier not found: %s", node.Value)
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *object.Environment) object.Value {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return object.NativeBool(!isTruthy(right))
	case "-":
		switch right := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -right.Value}
		case *object.Float:
			return &object.Float{Value: -right.Value}
		default:
			return newError(node.Pos(), object.ErrTypeMismatch, "unknown operator: -%s", right.Type())
		}
	default:
		return newError(node.Pos(), object.ErrTypeMismatch, "unknown operator: %s%s", node.Operator, right.Type())
	}
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Value {
	op := node.Operator

	// && and || short-circuit: the right side is only evaluated when the
	// left side doesn't already determine the result.
	if op == "&&" {
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		if !isTruthy(left) {
			return object.FALSE
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return object.NativeBool(isTruthy(right))
	}
	if op == "||" {
		left := e.Eval(node.Left, env)
		if isError(left) {
			return left
		}
		if isTruthy(left) {
			return object.TRUE
		}
		right := e.Eval(node.Right, env)
		if isError(right) {
			return right
		}
		return object.NativeBool(isTruthy(right))
	}

	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch {
	case left.Type() == object.INTEGER_OBJ && right.Type() == object.INTEGER_OBJ:
		return e.evalIntegerInfix(node, left.(*object.Integer), right.(*object.Integer))
	case isNumeric(left) && isNumeric(right):
		return e.evalFloatInfix(node, asFloat(left), asFloat(right))
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return e.evalStringInfix(node, left.(*object.String), right.(*object.String))
	case left.Type() == object.BOOLEAN_OBJ && right.Type() == object.BOOLEAN_OBJ:
		return e.evalBooleanInfix(node, left.(*object.Boolean), right.(*object.Boolean))
	default:
		return newError(node.Pos(), object.ErrTypeMismatch,
			"type mismatch: %s %s %s", left.Type(), op, right.Type())
	}
}

func isNumeric(v object.Value) bool {
	return v.Type() == object.INTEGER_OBJ || v.Type() == object.FLOAT_OBJ
}

func asFloat(v object.Value) float64 {
	switch v := v.(type) {
	case *object.Integer:
		return float64(v.Value)
	case *object.Float:
		return v.Value
	}
	return 0
}

func (e *Evaluator) evalIntegerInfix(node *ast.InfixExpression, left, right *object.Integer) object.Value {
	l, r := left.Value, right.Value
	switch node.Operator {
	case "+":
		return &object.Integer{Value: l + r}
	case "-":
		return &object.Integer{Value: l - r}
	case "*":
		return &object.Integer{Value: l * r}
	case "/":
		if r == 0 {
			return newError(node.Pos(), object.ErrDivisionByZero, "division by zero")
		}
		return &object.Integer{Value: l / r}
	case "%":
		if r == 0 {
			return newError(node.Pos(), object.ErrDivisionByZero, "modulo by zero")
		}
		return &object.Integer{Value: l % r}
	case "<":
		return object.NativeBool(l < r)
	case ">":
		return object.NativeBool(l > r)
	case "<=":
		return object.NativeBool(l <= r)
	case ">=":
		return object.NativeBool(l >= r)
	case "==":
		return object.NativeBool(l == r)
	case "!=":
		return object.NativeBool(l != r)
	default:
		return newError(node.Pos(), object.ErrTypeMismatch, "unknown operator: %s %s %s", left.Type(), node.Operator, right.Type())
	}
}

func (e *Evaluator) evalFloatInfix(node *ast.InfixExpression, l, r float64) object.Value {
	switch node.Operator {
	case "+":
		return &object.Float{Value: l + r}
	case "-":
		return &object.Float{Value: l - r}
	case "*":
		return &object.Float{Value: l * r}
	case "/":
		return &object.Float{Value: l / r}
	case "%":
		if r == 0 {
			return newError(node.Pos(), object.ErrDivisionByZero, "modulo by zero")
		}
		return &object.Float{Value: math.Mod(l, r)}
	case "<":
		return object.NativeBool(l < r)
	case ">":
		return object.NativeBool(l > r)
	case "<=":
		return object.NativeBool(l <= r)
	case ">=":
		return object.NativeBool(l >= r)
	case "==":
		return object.NativeBool(l == r)
	case "!=":
		return object.NativeBool(l != r)
	default:
		return newError(node.Pos(), object.ErrTypeMismatch, "unknown operator: FLOAT %s FLOAT", node.Operator)
	}
}

func (e *Evaluator) evalStringInfix(node *ast.InfixExpression, left, right *object.String) object.Value {
	l, r := left.Value, right.Value
	switch node.Operator {
	case "+":
		return &object.String{Value: l + r}
	case "==":
		return object.NativeBool(l == r)
	case "!=":
		return object.NativeBool(l != r)
	case "<":
		return object.NativeBool(l < r)
	case ">":
		return object.NativeBool(l > r)
	case "<=":
		return object.NativeBool(l <= r)
	case ">=":
		return object.NativeBool(l >= r)
	default:
		return newError(node.Pos(), object.ErrTypeMismatch, "unknown operator: STRING %s STRING", node.Operator)
	}
}

func (e *Evaluator) evalBooleanInfix(node *ast.InfixExpression, left, right *object.Boolean) object.Value {
	switch node.Operator {
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	case "&&":
		return object.NativeBool(left.Value && right.Value)
	case "||":
		return object.NativeBool(left.Value || right.Value)
	default:
		return newError(node.Pos(), object.ErrTypeMismatch, "unknown operator: BOOLEAN %s BOOLEAN", node.Operator)
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *object.Environment) object.Value {
	for i, cond := range node.Conditions {
		val := e.Eval(cond, env)
		if isError(val) {
			return val
		}
		if isTruthy(val) {
			return e.Eval(node.Consequences[i], env)
		}
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return object.NULL
}

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral, env *object.Environment) object.Value {
	elements := make([]object.Value, 0, len(node.Elements))
	for _, el := range node.Elements {
		val := e.Eval(el, env)
		if isError(val) {
			return val
		}
		elements = append(elements, val)
	}
	return &object.Array{Elements: elements}
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *object.Environment) object.Value {
	hash := object.NewHash()
	for i, keyNode := range node.Keys {
		key := e.Eval(keyNode, env)
		if isError(key) {
			return key
		}
		val := e.Eval(node.Values[i], env)
		if isError(val) {
			return val
		}
		if err := hash.Set(key, val); err != nil {
			return newError(node.Pos(), object.ErrTypeMismatch, "%s", err.Error())
		}
	}
	return hash
}

func (e *Evaluator) evalFStringLiteral(node *ast.FStringLiteral, env *object.Environment) object.Value {
	var sb strings.Builder
	for i, static := range node.StaticParts {
		sb.WriteString(static)
		if i < len(node.Embedded) {
			val := e.Eval(node.Embedded[i], env)
			if isError(val) {
				return val
			}
			sb.WriteString(displayString(val))
		}
	}
	return &object.String{Value: sb.String()}
}

// displayString renders a value the way it should appear interpolated into
// an f-string: raw text for strings, Inspect() for everything else.
func displayString(v object.Value) string {
	if s, ok := v.(*object.String); ok {
		return s.Value
	}
	return v.Inspect()
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Value {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if isError(index) {
		return index
	}

	switch left := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return newError(node.Pos(), object.ErrTypeMismatch, "array index must be an integer, got %s", index.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(left.Elements)) {
			return newError(node.Pos(), object.ErrIndexOutOfBounds, "index %d out of bounds for array of length %d", idx.Value, len(left.Elements))
		}
		return left.Elements[idx.Value]

	case *object.Hash:
		val, ok := left.Get(index)
		if !ok {
			return object.NULL
		}
		return val

	case *object.String:
		idx, ok := index.(*object.Integer)
		if !ok {
			return newError(node.Pos(), object.ErrTypeMismatch, "string index must be an integer, got %s", index.Type())
		}
		runes := []rune(left.Value)
		if idx.Value < 0 || idx.Value >= int64(len(runes)) {
			return newError(node.Pos(), object.ErrIndexOutOfBounds, "index %d out of bounds for string of length %d", idx.Value, len(runes))
		}
		return &object.String{Value: string(runes[idx.Value])}

	default:
		return newError(node.Pos(), object.ErrTypeMismatch, "index operator not supported: %s", left.Type())
	}
}

func (e *Evaluator) evalThisExpression(node *ast.ThisExpression, env *object.Environment) object.Value {
	val, ok := env.Get("this")
	if !ok {
		return newError(node.Pos(), object.ErrThisNotAvailable, "'this' is not available outside a method")
	}
	return val
}

func (e *Evaluator) evalSuperExpression(node *ast.SuperExpression, env *object.Environment) object.Value {
	definingClass := e.currentClass()
	if definingClass == nil {
		return newError(node.Pos(), object.ErrSuperNotInMethod, "'super' used outside a method")
	}
	parent := definingClass.Parent
	if parent == nil {
		return newError(node.Pos(), object.ErrSuperNoParent, "class %q has no parent class", definingClass.Name)
	}

	thisVal, ok := env.Get("this")
	if !ok {
		return newError(node.Pos(), object.ErrThisNotAvailable, "'this' is not available outside a method")
	}
	instance, ok := thisVal.(*object.Instance)
	if !ok {
		return newError(node.Pos(), object.ErrThisNotAvailable, "'this' is not an instance")
	}

	args, errVal := e.evalExpressions(node.Arguments, env)
	if errVal != nil {
		return errVal
	}

	if node.Method == nil {
		ctor, owner := parent.FindConstructorOwner()
		if ctor == nil {
			return object.NULL
		}
		return e.callFunction(ctor, args, instance, owner, node.Pos())
	}

	method, owner := parent.FindMethodOwner(node.Method.Value)
	if method == nil {
		return newError(node.Pos(), object.ErrPropertyNotFound, "method %q not found on parent class %q", node.Method.Value, parent.Name)
	}
	return e.callFunction(method, args, instance, owner, node.Pos())
}

func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *object.Environment) ([]object.Value, *object.Error) {
	values := make([]object.Value, 0, len(exprs))
	for _, expr := range exprs {
		val := e.Eval(expr, env)
		if isError(val) {
			return nil, val.(*object.Error)
		}
		values = append(values, val)
	}
	return values, nil
}
