package semantic

import (
	"fmt"

	"mylangc/internal/errors"
	"mylangc/internal/lexer"
)

// Kind tags the category of a semantic diagnostic.
type Kind string

const (
	Undeclared      Kind = "undeclared"
	Redeclaration   Kind = "redeclaration"
	TypeMismatch    Kind = "type mismatch"
	ArityMismatch   Kind = "arity mismatch"
	DuplicateParam  Kind = "duplicate parameter"
	UnknownOperator Kind = "unknown operator"
	InvalidLiteral  Kind = "invalid literal"
)

// Error is the single fatal diagnostic a failed Analyze call returns. It
// wraps errors.CompilerError so the CLI prints it with a source-line
// excerpt, tagging the header with its Kind rather than repeating it
// inline in the message text. Parser errors are plain errors and are not
// formatted this way.
type Error struct {
	Kind Kind
	*errors.CompilerError
}

func newError(kind Kind, pos lexer.Position, source, file, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	ce := errors.NewCompilerError(pos, msg, source, file).WithTag(string(kind))
	return &Error{Kind: kind, CompilerError: ce}
}
