// Package errors provides error formatting utilities for the MyLang compiler.
// It formats compiler errors with source context, line/column information,
// and an underline spanning the offending token's width, tagged with the
// diagnostic's kind when one is known.
package errors

import (
	"fmt"
	"strings"

	"mylangc/internal/lexer"
)

// CompilerError represents the single fatal diagnostic that aborts
// compilation. The pipeline never accumulates more than one: the first
// semantic or generation failure is surfaced and everything downstream
// stops.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position

	// Tag is a short diagnostic category ("type mismatch", "undeclared",
	// …) rendered as a bracketed prefix on the header line. Empty means
	// the caller didn't classify the error (e.g. a raw parser failure).
	Tag string

	// Width is how many source columns, starting at Pos.Column, the
	// underline spans. Values below 1 fall back to a single-column caret.
	Width int
}

// NewCompilerError creates a new compiler error with a single-column caret.
// Use WithTag/WithWidth to attach a diagnostic category or widen the
// underline to cover a multi-character token.
func NewCompilerError(pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
		Width:   1,
	}
}

// WithTag attaches a diagnostic category, shown as a "[tag]" header prefix.
func (e *CompilerError) WithTag(tag string) *CompilerError {
	e.Tag = tag
	return e
}

// WithWidth widens the underline to span n source columns starting at
// Pos.Column, so a diagnostic about a multi-character identifier or
// operator underlines the whole token rather than just its first column.
// n below 1 is ignored.
func (e *CompilerError) WithWidth(n int) *CompilerError {
	if n > 0 {
		e.Width = n
	}
	return e
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context.
// If color is true, ANSI color codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	header := e.header()
	sb.WriteString(header)
	sb.WriteString("\n")

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString(strings.Repeat("^", e.underlineWidth()))
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// header renders the "[tag] Error in file:line:col" (or file-less)
// diagnostic header, omitting the bracketed tag when none was set.
func (e *CompilerError) header() string {
	var loc string
	if e.File != "" {
		loc = fmt.Sprintf("Error in %s:%d:%d", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		loc = fmt.Sprintf("Error at line %d:%d", e.Pos.Line, e.Pos.Column)
	}
	if e.Tag == "" {
		return loc
	}
	return fmt.Sprintf("[%s] %s", e.Tag, loc)
}

func (e *CompilerError) underlineWidth() int {
	if e.Width < 1 {
		return 1
	}
	return e.Width
}

// getSourceLine extracts a specific line from the source code. Lines are
// 1-indexed.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}

	return lines[lineNum-1]
}
