package evaluator

import (
	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/object"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Value {
	callee := e.Eval(node.Function, env)
	if isError(callee) {
		return callee
	}

	args, errVal := e.evalExpressions(node.Arguments, env)
	if errVal != nil {
		return errVal
	}

	return e.applyCallable(callee, args, node.Pos())
}

// applyCallable dispatches a call to whichever kind of callable value was
// resolved: a user function, a builtin, a bound method, or a class (which
// calling as a function is equivalent to `new`).
func (e *Evaluator) applyCallable(callee object.Value, args []object.Value, pos token.Position) object.Value {
	switch callee := callee.(type) {
	case *object.Function:
		if len(args) != len(callee.Parameters) {
			return newError(pos, object.ErrArgumentCountMismatch,
				"expected %d argument(s), got %d", len(callee.Parameters), len(args))
		}
		return e.callFunction(callee, args, nil, nil, pos)

	case *object.Builtin:
		val, err := callee.Fn(args...)
		if err != nil {
			return newError(pos, object.ErrArgumentTypeMismatch, "%s", err.Error())
		}
		return val

	case *object.BoundMethod:
		if len(args) != len(callee.Method.Parameters) {
			return newError(pos, object.ErrArgumentCountMismatch,
				"expected %d argument(s), got %d", len(callee.Method.Parameters), len(args))
		}
		return e.callFunction(callee.Method, args, callee.Receiver, callee.Owner, pos)

	case *object.Class:
		return e.instantiate(callee, args, pos)

	default:
		return newError(pos, object.ErrNotCallable, "not callable: %s", callee.Type())
	}
}

// callFunction runs fn's body in a fresh scope enclosed by its closure
// environment. When this is non-nil, the call is a method invocation:
// `this` is bound and definingClass becomes the super-resolution context
// for the duration of the call.
func (e *Evaluator) callFunction(fn *object.Function, args []object.Value, this *object.Instance, definingClass *object.Class, pos token.Position) object.Value {
	frameName := fn.Name
	if frameName == "" {
		frameName = "<anonymous>"
	}
	if err := e.callStack.Push(frameName, &token.Position{Line: pos.Line, Column: pos.Column}); err != nil {
		return newErrorWithStack(pos, object.ErrStackOverflow, e.callStack.Trace(), "%s", err.Error())
	}
	defer e.callStack.Pop()

	scope := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Parameters {
		scope.Define(param.Value, args[i])
	}
	if this != nil {
		scope.Define("this", this)
		e.pushClass(definingClass)
		defer e.popClass()
	}

	result := e.Eval(fn.Body, scope)

	if rv, ok := isReturn(result); ok {
		return rv.Value
	}
	if isError(result) {
		return result
	}
	if isBreak(result) || isContinue(result) {
		return newError(pos, object.ErrInternal, "break/continue used outside of a loop")
	}
	return result
}

func (e *Evaluator) instantiate(class *object.Class, args []object.Value, pos token.Position) object.Value {
	instance := object.NewInstance(class)

	ctor, owner := class.FindConstructorOwner()
	if ctor == nil {
		if len(args) != 0 {
			return newError(pos, object.ErrConstructorArity, "class %q has no constructor but %d argument(s) were given", class.Name, len(args))
		}
		return instance
	}
	if len(args) != len(ctor.Parameters) {
		return newError(pos, object.ErrConstructorArity,
			"constructor for %q expects %d argument(s), got %d", class.Name, len(ctor.Parameters), len(args))
	}

	result := e.callFunction(ctor, args, instance, owner, pos)
	if isError(result) {
		return result
	}
	return instance
}

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *object.Environment) object.Value {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		if env.IsConstant(target.Value) {
			return newError(node.Pos(), object.ErrConstantReassignment, "cannot assign to constant %q", target.Value)
		}
		if err := env.Set(target.Value, val); err != nil {
			return newError(node.Pos(), object.ErrIdentifierNotFound, "%s", err.Error())
		}
		return val

	case *ast.IndexExpression:
		return e.assignIndex(target, val, env)

	case *ast.PropertyExpression:
		return e.assignProperty(target, val, env)

	default:
		return newError(node.Pos(), object.ErrInvalidAssignTarget, "invalid assignment target")
	}
}

func (e *Evaluator) assignIndex(target *ast.IndexExpression, val object.Value, env *object.Environment) object.Value {
	left := e.Eval(target.Left, env)
	if isError(left) {
		return left
	}
	index := e.Eval(target.Index, env)
	if isError(index) {
		return index
	}

	switch left := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return newError(target.Pos(), object.ErrTypeMismatch, "array index must be an integer, got %s", index.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(left.Elements)) {
			return newError(target.Pos(), object.ErrIndexOutOfBounds, "index %d out of bounds for array of length %d", idx.Value, len(left.Elements))
		}
		left.Elements[idx.Value] = val
		return val

	case *object.Hash:
		if err := left.Set(index, val); err != nil {
			return newError(target.Pos(), object.ErrTypeMismatch, "%s", err.Error())
		}
		return val

	default:
		return newError(target.Pos(), object.ErrTypeMismatch, "index assignment not supported: %s", left.Type())
	}
}

func (e *Evaluator) assignProperty(target *ast.PropertyExpression, val object.Value, env *object.Environment) object.Value {
	obj := e.Eval(target.Object, env)
	if isError(obj) {
		return obj
	}

	instance, ok := obj.(*object.Instance)
	if !ok {
		return newError(target.Pos(), object.ErrTypeMismatch, "cannot set property %q on %s", target.Property.Value, obj.Type())
	}
	instance.Fields[target.Property.Value] = val
	return val
}

func (e *Evaluator) evalPropertyExpression(node *ast.PropertyExpression, env *object.Environment) object.Value {
	obj := e.Eval(node.Object, env)
	if isError(obj) {
		return obj
	}

	switch obj := obj.(type) {
	case *object.Instance:
		if val, ok := obj.Fields[node.Property.Value]; ok {
			return val
		}
		method, owner := obj.Class.FindMethodOwner(node.Property.Value)
		if method == nil {
			return newError(node.Pos(), object.ErrPropertyNotFound, "property %q not found on %s", node.Property.Value, obj.Class.Name)
		}
		return &object.BoundMethod{Receiver: obj, Method: method, Owner: owner}

	case *object.Hash:
		val, ok := obj.Get(&object.String{Value: node.Property.Value})
		if !ok {
			return object.NULL
		}
		return val

	default:
		return newError(node.Pos(), object.ErrPropertyNotFound, "cannot access property %q on %s", node.Property.Value, obj.Type())
	}
}

func (e *Evaluator) evalNewExpression(node *ast.NewExpression, env *object.Environment) object.Value {
	classVal := e.Eval(node.Class, env)
	if isError(classVal) {
		return classVal
	}
	class, ok := classVal.(*object.Class)
	if !ok {
		return newError(node.Pos(), object.ErrNotInstantiable, "%s is not a class", classVal.Type())
	}

	args, errVal := e.evalExpressions(node.Arguments, env)
	if errVal != nil {
		return errVal
	}

	return e.instantiate(class, args, node.Pos())
}
