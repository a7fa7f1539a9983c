package cmd

import (
	"fmt"
	"io"
	"os"

	"mylangc/internal/ast"
	"mylangc/internal/config"
	"mylangc/internal/ir"
	"mylangc/internal/lexer"
	"mylangc/internal/optimizer"
	"mylangc/internal/parser"
	"mylangc/internal/semantic"
)

// frontend runs the lexer, parser, and semantic analyzer over a source
// file, printing diagnostics to stderr and returning a plain error for the
// caller to propagate as mylangc's exit status. Every stage after this one
// assumes prog is well-typed.
func frontend(filename string) (*ast.Program, string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", filename, err)
	}
	source := string(content)

	l := lexer.New(source)
	p := parser.New(l)
	prog := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filename, e)
		}
		return nil, "", fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	a := semantic.NewAnalyzer()
	a.SetSource(source, filename)
	if semErr := a.Analyze(prog); semErr != nil {
		fmt.Fprintln(os.Stderr, semErr.Format(true))
		return nil, "", fmt.Errorf("semantic analysis failed: %s", semErr.Kind)
	}

	return prog, source, nil
}

// generateIR lowers prog to IR and runs the optimizer pipeline, subject to
// opts. When verbose is set, it prints the pre-optimization IR listing
// followed by a pass-by-pass trace of the optimizer to stderr.
func generateIR(prog *ast.Program, opts *config.CompileOptions) []ir.Instruction {
	raw := ir.NewGenerator().Generate(prog)
	if !verbose {
		return optimizer.Optimize(raw, opts.OptimizerOptions()...)
	}

	fmt.Fprintln(os.Stderr, "-- IR before optimization --")
	printIR(os.Stderr, raw)

	steps := optimizer.Trace(raw, opts.OptimizerOptions()...)
	for _, step := range steps {
		fmt.Fprintf(os.Stderr, "-- after %s --\n", step.Pass)
		printIR(os.Stderr, step.Result)
	}
	if len(steps) == 0 {
		return raw
	}
	return steps[len(steps)-1].Result
}

func printIR(w io.Writer, instrs []ir.Instruction) {
	for _, in := range instrs {
		fmt.Fprintln(w, "  "+in.String())
	}
}
