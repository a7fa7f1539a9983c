package codegen

import (
	"strconv"
	"strings"

	"mylangc/internal/ir"
)

// emitDataSection renders section .data: the fixed format/error strings,
// the boolean constants when referenced, one storage cell per collected
// variable, and the interned string/float literal tables.
func (g *Generator) emitDataSection(instrs []ir.Instruction) {
	g.internLiterals(instrs)

	g.emitData("section .data")
	g.emitData(`newline    db 10, 0`)
	g.emitData(`format     db "%d", 10, 0`)
	g.emitData(`format_float db "%.6f", 10, 0`)
	g.emitData(`format_str db "%s", 10, 0`)
	g.emitData(`div_zero_err db "Error: division by zero", 10, 0`)

	if g.needsBool {
		g.emitData("True dq 1")
		g.emitData("False dq 0")
	}
	if g.needsFloatZero {
		g.emitData("FloatZero dd 0.0")
	}

	for _, name := range g.varOrder {
		if g.varIsFloat[name] {
			g.emitData(name + " dd 0.0")
		} else {
			g.emitData(name + " dq 0")
		}
	}

	for _, name := range g.stringOrder {
		g.emitData(name + ` db "` + escapeNASMString(g.stringLits[name]) + `", 0`)
	}
	for _, name := range g.floatOrder {
		g.emitData(name + " dd " + g.floatLits[name])
	}
}

// internLiterals walks every value-carrying field once more, assigning a
// stable str_N/float_N name to each distinct quoted-string or
// floating-point literal it finds. Interning happens once up front so text
// emission can assume the tables are already complete.
func (g *Generator) internLiterals(instrs []ir.Instruction) {
	seen := func(v string) {
		v = trimBang(v)
		if v == "" {
			return
		}
		if len(v) >= 2 && v[0] == '"' {
			g.internString(v)
			return
		}
		if isFloatLiteral(v) {
			g.internFloat(v)
		}
	}

	for _, in := range instrs {
		switch in.Kind {
		case ir.Assign:
			seen(in.Value)
		case ir.Print:
			seen(in.Value)
		case ir.Return:
			seen(in.Value)
		case ir.Binary:
			seen(in.Left)
			seen(in.Right)
			if in.Type == "float" && in.Op == "/" {
				g.needsFloatZero = true
			}
		case ir.Unary:
			seen(in.Operand)
		case ir.IfGoto:
			seen(in.Value)
		case ir.Call:
			for _, a := range in.Args {
				seen(a)
			}
		}
	}
}

func (g *Generator) internString(quoted string) string {
	text := strings.TrimSuffix(strings.TrimPrefix(quoted, `"`), `"`)
	for n, t := range g.stringLits {
		if t == text {
			return n
		}
	}
	name := "str_" + strconv.Itoa(len(g.stringOrder))
	g.stringLits[name] = text
	g.stringOrder = append(g.stringOrder, name)
	return name
}

func (g *Generator) internFloat(value string) string {
	if name, ok := g.floatIndex[value]; ok {
		return name
	}
	name := "float_" + strconv.Itoa(len(g.floatOrder))
	g.floatIndex[value] = name
	g.floatLits[name] = value
	g.floatOrder = append(g.floatOrder, name)
	return name
}

// escapeNASMString renders a MyLang string literal's raw text as a NASM
// double-quoted byte string. Escape sequences are not decoded at the
// lexer stage, so the only character that can't appear literally inside
// NASM's own quoting is the quote character itself.
func escapeNASMString(s string) string {
	return strings.ReplaceAll(s, `"`, `", 34, "`)
}
