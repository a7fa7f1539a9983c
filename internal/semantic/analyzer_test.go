package semantic

import (
	"testing"

	"mylangc/internal/ast"
	"mylangc/internal/lexer"
	"mylangc/internal/parser"
	"mylangc/internal/symtab"
)

func analyze(t *testing.T, src string) *Error {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	a := NewAnalyzer()
	a.SetSource(src, "test.ml")
	return a.Analyze(prog)
}

func TestAnalyzeValidProgram(t *testing.T) {
	src := `let x:int = 1; print(x);`
	if err := analyze(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeRedeclaration(t *testing.T) {
	src := `let x:int = 1; let x:int = 2;`
	err := analyze(t, src)
	if err == nil || err.Kind != Redeclaration {
		t.Fatalf("expected redeclaration error, got %v", err)
	}
}

func TestAnalyzeUndeclaredAssignment(t *testing.T) {
	src := `x = 1;`
	err := analyze(t, src)
	if err == nil || err.Kind != Undeclared {
		t.Fatalf("expected undeclared error, got %v", err)
	}
}

func TestAnalyzeTypeMismatchInit(t *testing.T) {
	src := `let x:int = true;`
	err := analyze(t, src)
	if err == nil || err.Kind != TypeMismatch {
		t.Fatalf("expected type mismatch error, got %v", err)
	}
}

func TestAnalyzeComparisonTypeMismatch(t *testing.T) {
	src := `let x:bool = (1 == true);`
	err := analyze(t, src)
	if err == nil || err.Kind != TypeMismatch {
		t.Fatalf("expected type mismatch error, got %v", err)
	}
}

func TestAnalyzeArithmeticFloatPromotion(t *testing.T) {
	src := `let x:float = 1 + 2.0;`
	if err := analyze(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAnalyzeFunctionArityMismatch(t *testing.T) {
	src := `function sum(a:int,b:int):int{return a+b;} let x:int = sum(1);`
	err := analyze(t, src)
	if err == nil || err.Kind != ArityMismatch {
		t.Fatalf("expected arity mismatch error, got %v", err)
	}
}

func TestAnalyzeFunctionDuplicateParam(t *testing.T) {
	src := `function f(a:int,a:int):int{return a;}`
	err := analyze(t, src)
	if err == nil || err.Kind != DuplicateParam {
		t.Fatalf("expected duplicate parameter error, got %v", err)
	}
}

func TestAnalyzeReturnTypeMismatch(t *testing.T) {
	src := `function f():int{return true;}`
	err := analyze(t, src)
	if err == nil || err.Kind != TypeMismatch {
		t.Fatalf("expected type mismatch error, got %v", err)
	}
}

func TestAnalyzeMatchCaseTypeMismatch(t *testing.T) {
	src := `let x:int = 2; match (x) { case true: print(x); }`
	err := analyze(t, src)
	if err == nil || err.Kind != TypeMismatch {
		t.Fatalf("expected type mismatch error, got %v", err)
	}
}

func TestAnalyzeForScopeSharesInitAndBody(t *testing.T) {
	src := `for (let i:int = 0; i < 3; i = i + 1) { print(i); }`
	if err := analyze(t, src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestAnalyzeRejectsEmbeddedNUL exercises the semantic analyzer directly
// with a hand-built Literal, since the lexer treats a NUL byte as an EOF
// sentinel and can never hand a string literal containing one up through
// the normal lex/parse path.
func TestAnalyzeRejectsEmbeddedNUL(t *testing.T) {
	a := NewAnalyzer()
	lit := &ast.Literal{Kind: ast.StringLiteral, SVal: "hi\x00there"}
	_, err := a.analyzeExpression(lit, symtab.NewScope())
	if err == nil || err.Kind != InvalidLiteral {
		t.Fatalf("expected an invalid literal error, got %v", err)
	}
}
