package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/interpreter-sub002/internal/lexer"
	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

var (
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file or expression",
	Long: `Tokenize a program and print the resulting tokens.

If no file is provided, reads from stdin.

Examples:
  # Tokenize a script file
  lang lex script.lang

  # Tokenize an inline expression
  lang lex -e "let x = 42;"

  # Show token types and positions
  lang lex --show-type --show-pos script.lang

  # Show only illegal tokens
  lang lex --only-errors script.lang`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)

	tokenCount := 0
	errorCount := 0

	for {
		tok := l.NextToken()

		if onlyErrors && tok.Type != token.ILLEGAL {
			if tok.Type == token.EOF {
				break
			}
			continue
		}

		tokenCount++
		if tok.Type == token.ILLEGAL {
			errorCount++
		}

		printToken(tok)

		if tok.Type == token.EOF {
			break
		}
	}

	for _, lexErr := range l.Errors() {
		fmt.Fprintf(os.Stderr, "lex error: %s @%s\n", lexErr.Message, lexErr.Position)
	}
	errorCount += len(l.Errors())

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	if onlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d illegal token(s)", errorCount)
	}

	return nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == token.EOF:
		output += " EOF"
	case tok.Type == token.ILLEGAL:
		output += fmt.Sprintf(" ⚠️  ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		output += fmt.Sprintf(" %s", tok.Type)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Position)
	}

	fmt.Println(output)
}

// readSource resolves the -e flag, a file argument, or stdin into program
// text, in that order of precedence.
func readSource(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(data), args[0], nil
	}

	data, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", readErr)
	}
	return string(data), "<stdin>", nil
}
