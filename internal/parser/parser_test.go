package parser

import (
	"testing"

	"mylangc/internal/ast"
	"mylangc/internal/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return prog
}

func TestParseVarDeclaration(t *testing.T) {
	prog := parseProgram(t, `let x:int = 1;`)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VarDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VarDeclaration, got %T", prog.Statements[0])
	}
	if decl.Name != "x" {
		t.Fatalf("Name = %q, want %q", decl.Name, "x")
	}
}

func TestParseAssignment(t *testing.T) {
	prog := parseProgram(t, `let x:int = 1; x = 2;`)
	if _, ok := prog.Statements[1].(*ast.Assignment); !ok {
		t.Fatalf("expected *ast.Assignment, got %T", prog.Statements[1])
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog := parseProgram(t, `let x:int = 1 + 2 * 3;`)
	decl := prog.Statements[0].(*ast.VarDeclaration)
	bin, ok := decl.Value.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected top-level *ast.BinaryOp, got %T", decl.Value)
	}
	if bin.Operator != "+" {
		t.Fatalf("top-level operator = %q, want %q (multiplication should bind tighter)", bin.Operator, "+")
	}
	if _, ok := bin.Right.(*ast.BinaryOp); !ok {
		t.Fatalf("expected the right operand to itself be a BinaryOp (2 * 3), got %T", bin.Right)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := parseProgram(t, `if (1 == 1) { print(1); } else { print(2); }`)
	stmt, ok := prog.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected *ast.IfStatement, got %T", prog.Statements[0])
	}
	if stmt.Alternative == nil {
		t.Fatal("expected an else block")
	}
}

func TestParseWhileLoop(t *testing.T) {
	prog := parseProgram(t, `while (1 < 2) { print(1); }`)
	if _, ok := prog.Statements[0].(*ast.WhileStatement); !ok {
		t.Fatalf("expected *ast.WhileStatement, got %T", prog.Statements[0])
	}
}

func TestParseForLoop(t *testing.T) {
	prog := parseProgram(t, `for (let i:int = 0; i < 3; i = i + 1) { print(i); }`)
	stmt, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", prog.Statements[0])
	}
	if stmt.Init == nil || stmt.Condition == nil || stmt.Update == nil {
		t.Fatal("expected Init, Condition, and Update to all be populated")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog := parseProgram(t, `function sum(a:int,b:int):int{return a+b;}`)
	decl, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *ast.FunctionDeclaration, got %T", prog.Statements[0])
	}
	if decl.Name != "sum" || len(decl.Params) != 2 {
		t.Fatalf("Name=%q Params=%v, want sum/[a b]", decl.Name, decl.Params)
	}
}

func TestParseFunctionCall(t *testing.T) {
	prog := parseProgram(t, `function sum(a:int,b:int):int{return a+b;} print(sum(1,2));`)
	printStmt := prog.Statements[1].(*ast.PrintStatement)
	call, ok := printStmt.Expression.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("expected *ast.FunctionCall, got %T", printStmt.Expression)
	}
	if call.Name != "sum" || len(call.Arguments) != 2 {
		t.Fatalf("Name=%q Arguments=%v, want sum/[1 2]", call.Name, call.Arguments)
	}
}

func TestParseTryCatch(t *testing.T) {
	prog := parseProgram(t, `try { print(1); } catch (e) { print(2); }`)
	stmt, ok := prog.Statements[0].(*ast.TryCatchStatement)
	if !ok {
		t.Fatalf("expected *ast.TryCatchStatement, got %T", prog.Statements[0])
	}
	if stmt.ExceptionName != "e" {
		t.Fatalf("ExceptionName = %q, want %q", stmt.ExceptionName, "e")
	}
}

func TestParseMatchStatement(t *testing.T) {
	prog := parseProgram(t, `let x:int = 1; match (x) { case 1: print(1); default: print(0); }`)
	stmt, ok := prog.Statements[1].(*ast.MatchStatement)
	if !ok {
		t.Fatalf("expected *ast.MatchStatement, got %T", prog.Statements[1])
	}
	if len(stmt.Cases) != 1 || stmt.Default == nil {
		t.Fatalf("Cases=%d Default=%v, want 1 case and a default", len(stmt.Cases), stmt.Default)
	}
}

func TestParseReportsErrorOnMissingSemicolon(t *testing.T) {
	l := lexer.New(`let x:int = 1`)
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for the missing semicolon")
	}
}

func TestParseReportsErrorOnUnexpectedToken(t *testing.T) {
	l := lexer.New(`let x:int = ;`)
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for the empty expression")
	}
}
