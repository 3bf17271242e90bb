// Command lang is the CLI front-end for the interpreter: tokenizing,
// parsing, and running programs written in the language.
package main

import (
	"fmt"
	"os"

	"github.com/utkarsh5026/interpreter-sub002/cmd/lang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
