package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
	"github.com/utkarsh5026/interpreter-sub002/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and display the AST",
	Long: `Parse a program and display its Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full, indented AST structure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		fmt.Fprintln(os.Stderr, "Parser errors:")
		for _, e := range p.Errors() {
			fmt.Fprintf(os.Stderr, "  %s\n", e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node any, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpASTNode(n.Expression, indent+1)
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.LetStatement:
		fmt.Printf("%sLetStatement: %s\n", prefix, n.Name.Value)
		dumpASTNode(n.Value, indent+1)
	case *ast.ConstStatement:
		fmt.Printf("%sConstStatement: %s\n", prefix, n.Name.Value)
		dumpASTNode(n.Value, indent+1)
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", prefix)
		if n.ReturnValue != nil {
			dumpASTNode(n.ReturnValue, indent+1)
		}
	case *ast.WhileStatement:
		fmt.Printf("%sWhileStatement\n", prefix)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.ForStatement:
		fmt.Printf("%sForStatement\n", prefix)
		dumpASTNode(n.Body, indent+1)
	case *ast.BreakStatement:
		fmt.Printf("%sBreakStatement\n", prefix)
	case *ast.ContinueStatement:
		fmt.Printf("%sContinueStatement\n", prefix)
	case *ast.ClassStatement:
		fmt.Printf("%sClassStatement: %s\n", prefix, n.Name.Value)
		if n.Parent != nil {
			fmt.Printf("%s  extends %s\n", prefix, n.Parent.Value)
		}
		for _, m := range n.Methods {
			fmt.Printf("%s  method %s\n", prefix, m.Name)
		}
	case *ast.InfixExpression:
		fmt.Printf("%sInfixExpression (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.PrefixExpression:
		fmt.Printf("%sPrefixExpression (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Right, indent+1)
	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", prefix, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", prefix, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Value)
	case *ast.FStringLiteral:
		fmt.Printf("%sFStringLiteral (%d embedded expressions)\n", prefix, len(n.Embedded))
	case *ast.Boolean:
		fmt.Printf("%sBoolean: %v\n", prefix, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Value)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", prefix)
	case *ast.ArrayLiteral:
		fmt.Printf("%sArrayLiteral (%d elements)\n", prefix, len(n.Elements))
		for _, el := range n.Elements {
			dumpASTNode(el, indent+1)
		}
	case *ast.HashLiteral:
		fmt.Printf("%sHashLiteral (%d pairs)\n", prefix, len(n.Keys))
	case *ast.FunctionLiteral:
		fmt.Printf("%sFunctionLiteral (%d params)\n", prefix, len(n.Parameters))
		dumpASTNode(n.Body, indent+1)
	case *ast.IfExpression:
		fmt.Printf("%sIfExpression (%d branches)\n", prefix, len(n.Conditions))
		for _, c := range n.Conditions {
			dumpASTNode(c, indent+1)
		}
		if n.Alternative != nil {
			dumpASTNode(n.Alternative, indent+1)
		}
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression (%d args)\n", prefix, len(n.Arguments))
		dumpASTNode(n.Function, indent+1)
	case *ast.IndexExpression:
		fmt.Printf("%sIndexExpression\n", prefix)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Index, indent+1)
	case *ast.AssignExpression:
		fmt.Printf("%sAssignExpression\n", prefix)
		dumpASTNode(n.Target, indent+1)
		dumpASTNode(n.Value, indent+1)
	case *ast.PropertyExpression:
		fmt.Printf("%sPropertyExpression: .%s\n", prefix, n.Property.Value)
		dumpASTNode(n.Object, indent+1)
	case *ast.NewExpression:
		fmt.Printf("%sNewExpression: %s\n", prefix, n.Class.String())
	case *ast.ThisExpression:
		fmt.Printf("%sThisExpression\n", prefix)
	case *ast.SuperExpression:
		fmt.Printf("%sSuperExpression\n", prefix)
	default:
		fmt.Printf("%s%T: %v\n", prefix, node, node)
	}
}
