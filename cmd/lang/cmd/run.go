package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/interpreter-sub002/internal/ast"
	"github.com/utkarsh5026/interpreter-sub002/internal/builtins"
	"github.com/utkarsh5026/interpreter-sub002/internal/config"
	"github.com/utkarsh5026/interpreter-sub002/internal/errors"
	"github.com/utkarsh5026/interpreter-sub002/internal/evaluator"
	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
	"github.com/utkarsh5026/interpreter-sub002/internal/object"
	"github.com/utkarsh5026/interpreter-sub002/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file, an inline expression, or the REPL",
	Long: `Execute a program.

Examples:
  # Run a script file
  lang run script.lang

  # Evaluate an inline expression
  lang run -e "println(\"hello\");"

  # Start an interactive REPL (no file or -e given)
  lang run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before executing")
}

func runScript(_ *cobra.Command, args []string) error {
	if evalExpr == "" && len(args) == 0 {
		return runREPL()
	}

	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	opts, err := evaluatorOptions()
	if err != nil {
		return err
	}

	program, evalErr := parseSource(input, filename)
	if evalErr != nil {
		return evalErr
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	ev := evaluator.New(opts)
	env := object.NewEnvironment()
	result := ev.Run(program, env)

	if errObj, ok := result.(*object.Error); ok {
		fmt.Fprintln(os.Stderr, "runtime error: "+errObj.Inspect())
		return fmt.Errorf("execution failed")
	}

	return nil
}

// parseSource lexes and parses input, reporting both lexical and syntax
// errors through the same pretty source-snippet formatter.
func parseSource(input, filename string) (*ast.Program, error) {
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	var compilerErrs []*errors.CompilerError
	for _, lexErr := range l.Errors() {
		compilerErrs = append(compilerErrs, errors.NewCompilerError(lexErr.Position, lexErr.Message, input, filename))
	}
	for _, parseErr := range p.Errors() {
		compilerErrs = append(compilerErrs, errors.NewCompilerError(parseErr.Position, parseErr.Message, input, filename))
	}

	if len(compilerErrs) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatErrors(compilerErrs, true))
		return nil, fmt.Errorf("parsing failed with %d error(s)", len(compilerErrs))
	}

	return program, nil
}

func evaluatorOptions() (evaluator.Options, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return evaluator.Options{}, err
		}
		cfg = loaded
	}

	return evaluator.Options{
		MaxLoopIterations: cfg.Evaluator.MaxLoopIterations,
		MaxCallDepth:      cfg.Evaluator.MaxCallDepth,
		Builtins:          builtins.NewDefaultRegistry(),
	}, nil
}

// runREPL implements a minimal read-eval-print loop: each line is lexed,
// parsed, and evaluated against a single environment shared across the
// session, so `let`/`const`/`class` bindings persist between lines.
func runREPL() error {
	opts, err := evaluatorOptions()
	if err != nil {
		return err
	}

	ev := evaluator.New(opts)
	env := object.NewEnvironment()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("lang REPL — type :help for commands, :exit to quit")
	for {
		fmt.Print(">> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}

		line := scanner.Text()
		switch line {
		case ":exit", ":quit":
			return nil
		case ":help":
			fmt.Println("  :exit, :quit   leave the REPL")
			fmt.Println("  :help          show this message")
			continue
		case "":
			continue
		}

		program, parseErr := parseSource(line, "<repl>")
		if parseErr != nil {
			continue
		}

		result := ev.Run(program, env)
		if result == nil {
			continue
		}
		if errObj, ok := result.(*object.Error); ok {
			fmt.Println(errObj.Inspect())
			continue
		}
		if result != object.NULL {
			fmt.Println(result.Inspect())
		}
	}
}
