package codegen

import (
	"fmt"

	"mylangc/internal/ir"
)

// translate lowers a single instruction that is not a FunctionStart/
// FunctionEnd (those are handled by emitFunctions/splitRegions) to its
// NASM form.
func (g *Generator) translate(in ir.Instruction) {
	if g.emitComments {
		g.emitText("    ; " + in.String())
	}
	switch in.Kind {
	case ir.Assign:
		g.translateAssign(in)
	case ir.Print:
		g.translatePrint(in)
	case ir.Return:
		g.translateReturn(in)
	case ir.Label:
		g.translateLabel(in)
	case ir.Goto:
		g.emitText("    jmp " + in.Label)
	case ir.IfGoto:
		g.translateIfGoto(in)
	case ir.Call:
		g.translateCall(in)
	case ir.Binary:
		g.translateBinary(in)
	case ir.Unary:
		g.translateUnary(in)
	}
}

func (g *Generator) translateAssign(in ir.Instruction) {
	if in.Type == "float" || g.isFloatValue(in.Value) {
		g.emitText("    movss xmm0, " + g.resolveFloat(in.Value))
		g.emitText("    movss [rel " + in.Target + "], xmm0")
		return
	}
	if in.Type == "string" || (len(in.Value) > 0 && in.Value[0] == '"') {
		// A string cell holds a pointer to its interned text, not the
		// bytes themselves: mov/lea the address through, same as any
		// other pointer-sized value.
		if len(in.Value) > 0 && in.Value[0] == '"' {
			g.emitText("    lea rax, [rel " + g.resolveString(in.Value) + "]")
		} else {
			g.emitText("    mov rax, [rel " + in.Value + "]")
		}
		g.emitText("    mov qword [rel " + in.Target + "], rax")
		return
	}
	g.emitText("    mov rax, " + g.resolveInt(in.Value))
	g.emitText("    mov qword [rel " + in.Target + "], rax")
}

func (g *Generator) translatePrint(in ir.Instruction) {
	g.emitText("    sub rsp, 32")
	switch {
	case in.Type == "float":
		g.emitText("    movss xmm0, " + g.resolveFloat(in.Value))
		g.emitText("    cvtss2sd xmm0, xmm0")
		g.emitText("    movq rdx, xmm0")
		g.emitText("    lea rcx, [rel format_float]")
		g.emitText("    mov rax, 1")
	case in.Type == "string" || (len(in.Value) > 0 && in.Value[0] == '"'):
		if len(in.Value) > 0 && in.Value[0] == '"' {
			g.emitText("    lea rdx, [rel " + g.resolveString(in.Value) + "]")
		} else {
			g.emitText("    mov rdx, [rel " + in.Value + "]")
		}
		g.emitText("    lea rcx, [rel format_str]")
		g.emitText("    xor rax, rax")
	default:
		g.emitText("    mov rdx, " + g.resolveInt(in.Value))
		g.emitText("    lea rcx, [rel format]")
		g.emitText("    xor rax, rax")
	}
	g.emitText("    call printf")
	g.emitText("    add rsp, 32")
}

func (g *Generator) translateReturn(in ir.Instruction) {
	if in.Value != "" {
		g.emitText("    mov rax, " + g.resolveInt(in.Value))
	}
	g.emitText("    mov rsp, rbp")
	g.emitText("    pop rbp")
	g.emitText("    ret")
}

func (g *Generator) translateLabel(in ir.Instruction) {
	if g.definedLabels[in.Label] {
		return
	}
	g.definedLabels[in.Label] = true
	g.emitText(in.Label + ":")
}

func (g *Generator) translateIfGoto(in ir.Instruction) {
	cond := in.Value
	negated := len(cond) > 0 && cond[0] == '!'
	if negated {
		cond = cond[1:]
	}
	g.emitText("    mov rax, " + g.resolveInt(cond))
	g.emitText("    test rax, rax")
	if negated {
		g.emitText("    je " + in.Label)
	} else {
		g.emitText("    jne " + in.Label)
	}
}

var intCompareSet = map[string]string{
	"<": "setl", ">": "setg", "==": "sete", "!=": "setne",
}

var floatCompareSet = map[string]string{
	"<": "setb", ">": "seta", "==": "sete", "!=": "setne",
}

var intArith = map[string]string{"+": "add", "-": "sub", "*": "imul"}

func (g *Generator) translateBinary(in ir.Instruction) {
	switch in.Op {
	case "&&", "||":
		g.translateLogical(in)
		return
	case "<", ">", "==", "!=":
		if g.isFloatValue(in.Left) || g.isFloatValue(in.Right) {
			g.translateFloatCompare(in)
		} else {
			g.translateIntCompare(in)
		}
		return
	}

	if in.Type == "float" {
		g.translateFloatArith(in)
		return
	}
	g.translateIntArith(in)
}

func (g *Generator) translateIntArith(in ir.Instruction) {
	g.emitText("    mov rax, " + g.resolveInt(in.Left))
	if in.Op == "/" {
		g.emitText("    mov rbx, " + g.resolveInt(in.Right))
		g.emitText("    cmp rbx, 0")
		g.emitText("    je _int_div_zero")
		g.emitText("    cqo")
		g.emitText("    idiv rbx")
	} else {
		g.emitText(fmt.Sprintf("    %s rax, %s", intArith[in.Op], g.resolveInt(in.Right)))
	}
	g.emitText("    mov qword [rel " + in.Target + "], rax")
}

func (g *Generator) translateFloatArith(in ir.Instruction) {
	ops := map[string]string{"+": "addss", "-": "subss", "*": "mulss", "/": "divss"}
	g.emitText("    movss xmm0, " + g.resolveFloat(in.Left))
	g.emitText("    movss xmm1, " + g.resolveFloat(in.Right))
	if in.Op == "/" {
		g.emitText("    ucomiss xmm1, [rel FloatZero]")
		g.emitText("    je _float_div_zero")
	}
	g.emitText(fmt.Sprintf("    %s xmm0, xmm1", ops[in.Op]))
	g.emitText("    movss [rel " + in.Target + "], xmm0")
}

func (g *Generator) translateIntCompare(in ir.Instruction) {
	g.emitText("    mov rax, " + g.resolveInt(in.Left))
	g.emitText("    cmp rax, " + g.resolveInt(in.Right))
	g.emitText("    " + intCompareSet[in.Op] + " al")
	g.emitText("    movzx rax, al")
	g.emitText("    mov qword [rel " + in.Target + "], rax")
}

func (g *Generator) translateFloatCompare(in ir.Instruction) {
	g.emitText("    movss xmm0, " + g.resolveFloat(in.Left))
	g.emitText("    movss xmm1, " + g.resolveFloat(in.Right))
	g.emitText("    ucomiss xmm0, xmm1")
	g.emitText("    " + floatCompareSet[in.Op] + " al")
	g.emitText("    movzx rax, al")
	g.emitText("    mov qword [rel " + in.Target + "], rax")
}

// translateLogical implements short-circuit && / || over the int/bool
// domain: the right operand is only evaluated when the left operand
// doesn't already decide the result.
func (g *Generator) translateLogical(in ir.Instruction) {
	skip := g.newLocalLabel("sc_skip")
	end := g.newLocalLabel("sc_end")

	g.emitText("    mov rax, " + g.resolveInt(in.Left))
	g.emitText("    cmp rax, 0")
	if in.Op == "&&" {
		g.emitText("    je " + skip)
	} else {
		g.emitText("    jne " + skip)
	}
	g.emitText("    mov rax, " + g.resolveInt(in.Right))
	g.emitText("    cmp rax, 0")
	if in.Op == "&&" {
		g.emitText("    je " + skip)
	} else {
		g.emitText("    jne " + skip)
	}
	if in.Op == "&&" {
		g.emitText("    mov al, 1")
	} else {
		g.emitText("    mov al, 0")
	}
	g.emitText("    jmp " + end)
	g.emitText(skip + ":")
	if in.Op == "&&" {
		g.emitText("    mov al, 0")
	} else {
		g.emitText("    mov al, 1")
	}
	g.emitText(end + ":")
	g.emitText("    movzx rax, al")
	g.emitText("    mov qword [rel " + in.Target + "], rax")
}

func (g *Generator) translateUnary(in ir.Instruction) {
	g.emitText("    mov rax, " + g.resolveInt(in.Operand))
	g.emitText("    cmp rax, 0")
	g.emitText("    sete al")
	g.emitText("    movzx rax, al")
	g.emitText("    mov qword [rel " + in.Target + "], rax")
}

func (g *Generator) translateCall(in ir.Instruction) {
	params := g.funcParams[in.Name]
	extra := 0
	if len(in.Args) > len(argRegisters) {
		extra = len(in.Args) - len(argRegisters)
	}
	space := 32 + extra*8
	if space%16 != 0 {
		space += 8
	}

	g.emitText(fmt.Sprintf("    sub rsp, %d", space))
	for i, a := range in.Args {
		g.emitText("    mov rax, " + g.resolveInt(a))
		switch {
		case i < len(argRegisters):
			g.emitText("    mov " + argRegisters[i] + ", rax")
		default:
			offset := 32 + 8*(i-len(argRegisters))
			g.emitText(fmt.Sprintf("    mov [rsp+%d], rax", offset))
		}
		if i < len(params) {
			g.emitText("    mov qword [rel " + params[i] + "], rax")
		}
	}
	g.emitText("    call " + in.Name)
	g.emitText(fmt.Sprintf("    add rsp, %d", space))
	if in.Target != "" {
		g.emitText("    mov qword [rel " + in.Target + "], rax")
	}
}

// isFloatValue reports whether v denotes a float-domain operand: an
// interned float literal or a variable whose declared/inferred type is
// float. Binary comparison results are always bool, so the result Type
// field can't tell float and int comparisons apart; this is what does.
func (g *Generator) isFloatValue(v string) bool {
	v = trimBang(v)
	if isFloatLiteral(v) {
		return true
	}
	return g.varIsFloat[v]
}
