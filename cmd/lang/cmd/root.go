package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// configPath points at an optional YAML file overriding evaluator resource
// limits; set via the persistent --config flag.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "lang",
	Short: "A tree-walking interpreter for a small C-like scripting language",
	Long: `lang tokenizes, parses, and evaluates programs written in a small
dynamically-typed scripting language with closures, single-inheritance
classes, f-strings, arrays, and hash maps.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file overriding evaluator resource limits")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
