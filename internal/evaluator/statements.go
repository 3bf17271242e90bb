package evaluator

import (
	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

// evalProgram runs each top-level statement in order. A Return unwraps to
// its value (there is no function boundary at program scope to catch it
// otherwise); an Error short-circuits.
func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Value {
	var result object.Value = object.NULL

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

func (e *Evaluator) evalLetStatement(node *ast.LetStatement, env *object.Environment) object.Value {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	if _, exists := env.GetLocal(node.Name.Value); exists {
		return newError(node.Pos(), object.ErrVariableAlreadyDefined, "variable %q is already declared in this scope", node.Name.Value)
	}
	env.Define(node.Name.Value, val)
	return object.NULL
}

func (e *Evaluator) evalConstStatement(node *ast.ConstStatement, env *object.Environment) object.Value {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	if _, exists := env.GetLocal(node.Name.Value); exists {
		return newError(node.Pos(), object.ErrVariableAlreadyDefined, "variable %q is already declared in this scope", node.Name.Value)
	}
	env.DefineConst(node.Name.Value, val)
	return object.NULL
}

func (e *Evaluator) evalReturnStatement(node *ast.ReturnStatement, env *object.Environment) object.Value {
	if node.ReturnValue == nil {
		return &object.ReturnValue{Value: object.NULL}
	}
	val := e.Eval(node.ReturnValue, env)
	if isError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

// evalBlockStatement runs a block in its own child scope. Unlike
// evalProgram, it does NOT unwrap Return — a block's caller (if/while/for/
// function) must see the sentinel to propagate it further up.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Value {
	scope := object.NewEnclosedEnvironment(env)
	var result object.Value = object.NULL

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, scope)
		if isSignal(result) {
			return result
		}
	}

	return result
}

func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *object.Environment) object.Value {
	iterations := 0
	for {
		cond := e.Eval(node.Condition, env)
		if isError(cond) {
			return cond
		}
		if !isTruthy(cond) {
			break
		}

		iterations++
		if iterations > e.maxLoopIterations {
			return newError(node.Pos(), object.ErrMaxIterationsExceeded,
				"loop exceeded maximum of %d iterations", e.maxLoopIterations)
		}

		result := e.Eval(node.Body, env)
		switch {
		case isBreak(result):
			return object.NULL
		case isContinue(result):
			continue
		case isError(result):
			return result
		}
		if _, ok := isReturn(result); ok {
			return result
		}
	}
	return object.NULL
}

func (e *Evaluator) evalForStatement(node *ast.ForStatement, env *object.Environment) object.Value {
	scope := object.NewEnclosedEnvironment(env)

	if node.Init != nil {
		if init := e.Eval(node.Init, scope); isError(init) {
			return init
		}
	}

	iterations := 0
	for {
		if node.Condition != nil {
			cond := e.Eval(node.Condition, scope)
			if isError(cond) {
				return cond
			}
			if !isTruthy(cond) {
				break
			}
		}

		iterations++
		if iterations > e.maxLoopIterations {
			return newError(node.Pos(), object.ErrMaxIterationsExceeded,
				"loop exceeded maximum of %d iterations", e.maxLoopIterations)
		}

		result := e.Eval(node.Body, scope)
		switch {
		case isBreak(result):
			return object.NULL
		case isContinue(result):
			// fall through to update clause below
		case isError(result):
			return result
		default:
			if _, ok := isReturn(result); ok {
				return result
			}
		}

		if node.Update != nil {
			if upd := e.Eval(node.Update, scope); isError(upd) {
				return upd
			}
		}
	}
	return object.NULL
}

func (e *Evaluator) evalClassStatement(node *ast.ClassStatement, env *object.Environment) object.Value {
	if _, exists := env.GetLocal(node.Name.Value); exists {
		return newError(node.Pos(), object.ErrClassAlreadyDefined, "class %q is already defined", node.Name.Value)
	}

	var parent *object.Class
	if node.Parent != nil {
		parentVal, ok := env.Get(node.Parent.Value)
		if !ok {
			return newError(node.Parent.Pos(), object.ErrParentClassNotFound, "parent class %q not found", node.Parent.Value)
		}
		parentClass, ok := parentVal.(*object.Class)
		if !ok {
			return newError(node.Parent.Pos(), object.ErrNotAClass, "%q is not a class", node.Parent.Value)
		}
		if parentClass.Name == node.Name.Value || parentClass.IsSubclassOf(node.Name.Value) {
			return newError(node.Pos(), object.ErrCircularInheritance, "class %q cannot inherit from itself", node.Name.Value)
		}
		parent = parentClass
	}

	class := object.NewClass(node.Name.Value, parent)
	// Defined early so methods whose bodies reference the class's own name
	// (e.g. constructing siblings) resolve it, and so recursive methods see
	// their own class definition without a forward-reference problem.
	env.Define(node.Name.Value, class)

	if node.Constructor != nil {
		class.Constructor = &object.Function{
			Parameters: node.Constructor.Parameters,
			Body:       node.Constructor.Body,
			Env:        env,
			Name:       node.Name.Value + ".constructor",
		}
	}
	for _, m := range node.Methods {
		class.Methods[m.Name] = &object.Function{
			Parameters: m.Function.Parameters,
			Body:       m.Function.Body,
			Env:        env,
			Name:       node.Name.Value + "." + m.Name,
		}
	}

	return object.NULL
}
