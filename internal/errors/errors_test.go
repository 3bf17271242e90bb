package errors

import (
	"strings"
	"testing"

	"github.com/utkarsh5026/interpreter-sub002/internal/token"
)

func TestCompilerErrorFormatPlain(t *testing.T) {
	source := "let x = ;\nlet y = 5;"
	err := NewCompilerError(token.Position{Line: 1, Column: 9}, "expected expression", source, "")

	out := err.Format(false)
	if !strings.Contains(out, "Error at line 1:9") {
		t.Errorf("missing location header, got:\n%s", out)
	}
	if !strings.Contains(out, "let x = ;") {
		t.Errorf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret, got:\n%s", out)
	}
	if !strings.Contains(out, "expected expression") {
		t.Errorf("missing message, got:\n%s", out)
	}
}

func TestCompilerErrorFormatWithFile(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 3, Column: 1}, "boom", "a\nb\nc", "script.src")
	out := err.Format(false)
	if !strings.Contains(out, "Error in script.src:3:1") {
		t.Errorf("missing file header, got:\n%s", out)
	}
	if !strings.Contains(out, "c") {
		t.Errorf("expected third source line, got:\n%s", out)
	}
}

func TestCompilerErrorFormatColor(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "bad token", "x", "")
	out := err.Format(true)
	if !strings.Contains(out, "\033[1;31m") {
		t.Errorf("expected caret color escape, got:\n%s", out)
	}
	if !strings.Contains(out, "\033[1m") {
		t.Errorf("expected message color escape, got:\n%s", out)
	}
}

func TestCompilerErrorFormatNoSource(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "no source available", "", "")
	out := err.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("did not expect a source snippet line, got:\n%s", out)
	}
	if !strings.Contains(out, "no source available") {
		t.Errorf("missing message, got:\n%s", out)
	}
}

func TestCompilerErrorFormatOutOfRangeLine(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 99, Column: 1}, "oops", "only one line", "")
	out := err.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("did not expect a snippet for an out-of-range line, got:\n%s", out)
	}
}

func TestCompilerErrorError(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 2, Column: 4}, "bad", "a\nb", "")
	if err.Error() != err.Format(false) {
		t.Errorf("Error() should delegate to Format(false)")
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty", got)
	}
}

func TestFormatErrorsSingle(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "bad", "x", "")
	errs := []*CompilerError{err}
	if got := FormatErrors(errs, false); got != err.Format(false) {
		t.Errorf("FormatErrors with one error should equal that error's Format()")
	}
}

func TestFormatErrorsMultiple(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(token.Position{Line: 1, Column: 1}, "first problem", "x\ny", ""),
		NewCompilerError(token.Position{Line: 2, Column: 1}, "second problem", "x\ny", ""),
	}
	out := FormatErrors(errs, false)
	if !strings.Contains(out, "2 error(s)") {
		t.Errorf("missing error count header, got:\n%s", out)
	}
	if !strings.Contains(out, "[Error 1 of 2]") || !strings.Contains(out, "[Error 2 of 2]") {
		t.Errorf("missing numbered error headers, got:\n%s", out)
	}
	if !strings.Contains(out, "first problem") || !strings.Contains(out, "second problem") {
		t.Errorf("missing both messages, got:\n%s", out)
	}
}
