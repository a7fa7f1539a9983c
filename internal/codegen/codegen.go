// Package codegen lowers optimized IR to Win64 NASM assembly text.
// Register conventions, stack discipline, and runtime stubs follow
// the Win64 ABI: integer/pointer args in rcx, rdx, r8, r9 then the stack,
// 32-byte shadow space, 16-byte alignment at call sites.
package codegen

import (
	"strconv"
	"strings"

	"mylangc/internal/ir"
)

var argRegisters = []string{"rcx", "rdx", "r8", "r9"}

// reservedLabelPrefixes are the label-name vocabularies the IR generator
// uses (see ir.Generator.newLabel callers); an identifier with one of
// these prefixes is a jump target, never a variable.
var reservedLabelPrefixes = []string{
	"while_start", "while_end",
	"for_start", "for_end",
	"if_else", "if_end",
	"case", "default_case", "end_match",
	"try", "catch", "end_try",
}

// Generator emits a single NASM source file from an instruction list.
// State is confined to one Generate call, matching every other pipeline
// component's single-threaded, instance-local design.
type Generator struct {
	data strings.Builder
	text strings.Builder

	variables   map[string]bool // declared in .data, dq 0 or dd 0.0
	varIsFloat  map[string]bool
	varIsString map[string]bool
	varOrder    []string
	stringLits  map[string]string // str_N -> literal text (unquoted)
	stringOrder []string
	floatLits   map[string]string // float_N -> textual value
	floatOrder  []string
	floatIndex  map[string]string // textual value -> float_N (dedup)

	needsBool      bool
	needsFloatZero bool

	definedLabels    map[string]bool
	definedFunctions map[string]bool
	funcParams       map[string][]string // function name -> parameter cell names

	localLabel int

	entryPoint   string
	emitComments bool
}

// Option configures a Generator. Following this codebase's `WithXxx(...)
// Option` convention for functional options (see internal/config).
type Option func(*Generator)

// WithEntryPoint overrides the NASM entry label name (default "main").
func WithEntryPoint(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.entryPoint = name
		}
	}
}

// WithComments turns on a `; <ir instruction>` comment line emitted ahead
// of each instruction's translation, for readability of the generated
// assembly.
func WithComments(emit bool) Option {
	return func(g *Generator) { g.emitComments = emit }
}

// NewGenerator returns a Generator ready for a single GenerateInstructions
// call. Use this form over Generate when the caller also wants Summary
// afterward.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		variables:        make(map[string]bool),
		varIsFloat:       make(map[string]bool),
		varIsString:      make(map[string]bool),
		stringLits:       make(map[string]string),
		floatLits:        make(map[string]string),
		floatIndex:       make(map[string]string),
		definedLabels:    make(map[string]bool),
		definedFunctions: make(map[string]bool),
		funcParams:       make(map[string][]string),
		entryPoint:       "main",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateInstructions renders instrs as a complete NASM translation unit.
// Call Summary afterward to inspect what was emitted.
func (g *Generator) GenerateInstructions(instrs []ir.Instruction) string {
	g.collectFunctionParams(instrs)
	g.collectVariables(instrs)

	g.emitDataSection(instrs)
	g.emitTextSection(instrs)

	var out strings.Builder
	out.WriteString(g.data.String())
	out.WriteString("\n")
	out.WriteString(g.text.String())
	return out.String()
}

// Generate renders instrs as a complete NASM translation unit using a
// fresh Generator. Equivalent to NewGenerator(opts...).GenerateInstructions(instrs)
// for callers that don't need the Summary.
func Generate(instrs []ir.Instruction, opts ...Option) string {
	return NewGenerator(opts...).GenerateInstructions(instrs)
}

func (g *Generator) emitData(line string) {
	g.data.WriteString(line)
	g.data.WriteString("\n")
}

func (g *Generator) emitText(line string) {
	g.text.WriteString(line)
	g.text.WriteString("\n")
}

func (g *Generator) newLocalLabel(prefix string) string {
	g.localLabel++
	return "." + prefix + "_" + strconv.Itoa(g.localLabel)
}
