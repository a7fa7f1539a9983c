package errors

import (
	"strings"
	"testing"

	"mylangc/internal/lexer"
)

func TestErrorImplementsErrorInterface(t *testing.T) {
	err := NewCompilerError(lexer.Position{Line: 2, Column: 5}, "undeclared: 'y'", "let x:int=1;\nprint(y);", "test.ml")

	var _ error = err

	msg := err.Error()
	if !strings.Contains(msg, "test.ml:2:5") {
		t.Fatalf("expected error message to carry file:line:col, got:\n%s", msg)
	}
	if !strings.Contains(msg, "undeclared: 'y'") {
		t.Fatalf("expected error message to carry the diagnostic text, got:\n%s", msg)
	}
}

func TestFormatShowsSourceLineAndCaret(t *testing.T) {
	source := "let x:int=1;\nprint(y);"
	err := NewCompilerError(lexer.Position{Line: 2, Column: 7}, "undeclared: 'y'", source, "test.ml")

	got := err.Format(false)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines (header, source, caret), got:\n%s", got)
	}
	if !strings.Contains(lines[1], "print(y);") {
		t.Fatalf("expected the second line to quote the offending source line, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "^") {
		t.Fatalf("expected a caret line pointing at the error column, got %q", lines[2])
	}
}

func TestFormatWithColorWrapsCaretAndMessage(t *testing.T) {
	err := NewCompilerError(lexer.Position{Line: 1, Column: 1}, "undeclared: 'y'", "y;", "test.ml")

	got := err.Format(true)
	if !strings.Contains(got, "\033[1;31m") {
		t.Fatalf("expected a color escape around the caret, got:\n%s", got)
	}
	if !strings.Contains(got, "\033[1m") {
		t.Fatalf("expected a color escape around the message, got:\n%s", got)
	}
}

func TestFormatWithoutSourceOmitsSourceLine(t *testing.T) {
	err := NewCompilerError(lexer.Position{Line: 1, Column: 1}, "undeclared: 'y'", "", "test.ml")

	got := err.Format(false)
	if strings.Contains(got, "|") {
		t.Fatalf("expected no source-line gutter when Source is empty, got:\n%s", got)
	}
}

func TestFormatWithoutFileUsesLineColumnHeader(t *testing.T) {
	err := NewCompilerError(lexer.Position{Line: 3, Column: 1}, "undeclared: 'y'", "", "")

	got := err.Format(false)
	if !strings.Contains(got, "Error at line 3:1") {
		t.Fatalf("expected a file-less header, got:\n%s", got)
	}
}

func TestFormatWithTagAddsBracketedHeaderPrefix(t *testing.T) {
	err := NewCompilerError(lexer.Position{Line: 1, Column: 1}, "'y' is not declared", "y;", "test.ml").
		WithTag("undeclared")

	got := err.Format(false)
	if !strings.HasPrefix(got, "[undeclared] Error in test.ml:1:1") {
		t.Fatalf("expected the diagnostic kind as a bracketed header prefix, got:\n%s", got)
	}
}

func TestFormatWithWidthUnderlinesWholeToken(t *testing.T) {
	source := "let total:int = 1;"
	err := NewCompilerError(lexer.Position{Line: 1, Column: 5}, "redeclaration", source, "test.ml").
		WithWidth(len("total"))

	got := err.Format(false)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 || !strings.Contains(lines[2], strings.Repeat("^", len("total"))) {
		t.Fatalf("expected a %d-wide underline spanning the token, got:\n%s", len("total"), got)
	}
}

func TestFormatWidthBelowOneFallsBackToSingleCaret(t *testing.T) {
	err := NewCompilerError(lexer.Position{Line: 1, Column: 1}, "undeclared: 'y'", "y;", "test.ml").
		WithWidth(0)

	got := err.Format(false)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 || !strings.Contains(lines[2], "^") || strings.Contains(lines[2], "^^") {
		t.Fatalf("expected a single-column caret, got %q", lines[2])
	}
}
