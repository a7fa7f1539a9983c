package codegen

import (
	"strings"
	"testing"

	"mylangc/internal/ir"
	"mylangc/internal/lexer"
	"mylangc/internal/optimizer"
	"mylangc/internal/parser"
	"mylangc/internal/semantic"
)

func TestGeneratorSummaryCountsArtifacts(t *testing.T) {
	src := `let x:int=1; let pi:float=3.14; let greeting:string="hi"; print(greeting); print(pi); print(x);`
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	a := semantic.NewAnalyzer()
	a.SetSource(src, "test.ml")
	if err := a.Analyze(prog); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	instrs := optimizer.Optimize(ir.NewGenerator().Generate(prog))

	g := NewGenerator()
	g.GenerateInstructions(instrs)
	s := g.Summary()

	if s.Variables != 3 {
		t.Fatalf("Variables = %d, want 3", s.Variables)
	}
	if s.Strings != 1 {
		t.Fatalf("Strings = %d, want 1", s.Strings)
	}
	if s.Floats != 1 {
		t.Fatalf("Floats = %d, want 1", s.Floats)
	}

	rendered := s.String()
	for _, want := range []string{"3 variable(s)", "1 string literal(s)", "1 float literal(s)"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("Summary.String() = %q, missing %q", rendered, want)
		}
	}
}

func TestGeneratorSummaryCountsFunctions(t *testing.T) {
	src := `function sum(a:int,b:int):int{return a+b;} print(sum(1,2));`
	l := lexer.New(src)
	p := parser.New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	a := semantic.NewAnalyzer()
	a.SetSource(src, "test.ml")
	if err := a.Analyze(prog); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	instrs := optimizer.Optimize(ir.NewGenerator().Generate(prog))

	g := NewGenerator()
	asm := g.GenerateInstructions(instrs)
	if !strings.Contains(asm, "func_sum:") {
		t.Fatalf("expected the function label in generated NASM, got:\n%s", asm)
	}
	if g.Summary().Functions != 1 {
		t.Fatalf("Summary().Functions = %d, want 1", g.Summary().Functions)
	}
}
