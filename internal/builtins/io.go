package builtins

import (
	"fmt"
	"strings"

	"github.com/utkarsh5026/interpreter-sub002/internal/object"
)

func displayArg(v object.Value) string {
	if s, ok := v.(*object.String); ok {
		return s.Value
	}
	return v.Inspect()
}

// print writes its arguments concatenated, with no trailing newline.
func builtinPrint(args ...object.Value) (object.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(displayArg(a))
	}
	fmt.Print(sb.String())
	return object.NULL, nil
}

// println writes its arguments space-separated, followed by a newline.
func builtinPrintln(args ...object.Value) (object.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = displayArg(a)
	}
	fmt.Println(strings.Join(parts, " "))
	return object.NULL, nil
}
