// Package evaluator tree-walks an AST against a lexically-scoped
// environment, producing runtime values. It is a dispatch table keyed by
// the concrete AST node type rather than a visitor hierarchy: Eval takes
// any ast.Node and type-switches to the matching handler.
package evaluator

import (
	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

const (
	defaultMaxLoopIterations = 1_000_000
	defaultMaxCallDepth      = 1000
)

// BuiltinLookup resolves a name to a host-implemented function. The
// identifier evaluator consults it only after the lexical scope chain has
// come up empty, matching the language's "builtins are the outermost
// fallback scope" rule.
type BuiltinLookup interface {
	Lookup(name string) (*object.Builtin, bool)
}

// Options configures resource bounds enforced during evaluation.
type Options struct {
	MaxLoopIterations int
	MaxCallDepth      int
	Builtins          BuiltinLookup
}

// Evaluator walks a program's AST, carrying the call stack and class
// context needed to resolve `this`/`super` and to bound recursion.
type Evaluator struct {
	callStack         *object.CallStack
	maxLoopIterations int
	builtins          BuiltinLookup

	// classStack tracks the class that lexically defines the
	// currently-executing method, innermost call last. It is empty while
	// evaluating a plain function, which is how This/Super tell the two
	// apart.
	classStack []*object.Class
}

// New creates an Evaluator with opts applied; zero-valued fields in opts
// fall back to the language's documented defaults.
func New(opts Options) *Evaluator {
	maxLoop := opts.MaxLoopIterations
	if maxLoop <= 0 {
		maxLoop = defaultMaxLoopIterations
	}
	maxDepth := opts.MaxCallDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxCallDepth
	}
	return &Evaluator{
		callStack:         object.NewCallStack(maxDepth),
		maxLoopIterations: maxLoop,
		builtins:          opts.Builtins,
	}
}

// Eval dispatches node to its handler. Statements and expressions share one
// entry point since both ultimately produce an object.Value: statements
// that have no meaningful result yield NULL.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Value {
	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)
	case *ast.LetStatement:
		return e.evalLetStatement(node, env)
	case *ast.ConstStatement:
		return e.evalConstStatement(node, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(node, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)
	case *ast.WhileStatement:
		return e.evalWhileStatement(node, env)
	case *ast.ForStatement:
		return e.evalForStatement(node, env)
	case *ast.BreakStatement:
		return &object.BreakSignal{}
	case *ast.ContinueStatement:
		return &object.ContinueSignal{}
	case *ast.ClassStatement:
		return e.evalClassStatement(node, env)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.Boolean:
		return object.NativeBool(node.Value)
	case *ast.NullLiteral:
		return object.NULL
	case *ast.FStringLiteral:
		return e.evalFStringLiteral(node, env)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(node, env)
	case *ast.HashLiteral:
		return e.evalHashLiteral(node, env)
	case *ast.Identifier:
		return e.evalIdentifier(node, env)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *ast.IfExpression:
		return e.evalIfExpression(node, env)
	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)
	case *ast.AssignExpression:
		return e.evalAssignExpression(node, env)
	case *ast.PropertyExpression:
		return e.evalPropertyExpression(node, env)
	case *ast.NewExpression:
		return e.evalNewExpression(node, env)
	case *ast.ThisExpression:
		return e.evalThisExpression(node, env)
	case *ast.SuperExpression:
		return e.evalSuperExpression(node, env)
	}

	return object.NULL
}

// Run parses nothing itself; it evaluates an already-built program. It
// exists as the documented evaluate(program, env) entry point for hosts.
func (e *Evaluator) Run(program *ast.Program, env *object.Environment) object.Value {
	return e.Eval(program, env)
}

func (e *Evaluator) currentClass() *object.Class {
	if len(e.classStack) == 0 {
		return nil
	}
	return e.classStack[len(e.classStack)-1]
}

func (e *Evaluator) pushClass(c *object.Class) {
	e.classStack = append(e.classStack, c)
}

func (e *Evaluator) popClass() {
	e.classStack = e.classStack[:len(e.classStack)-1]
}
