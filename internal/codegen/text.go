package codegen

import (
	"strconv"

	"mylangc/internal/ir"
)

// functionRegion is one FunctionStart...FunctionEnd span extracted from
// the flat instruction list.
type functionRegion struct {
	name   string
	params []string
	body   []ir.Instruction
}

// emitTextSection renders section .text: the externs, every user
// function, then main.
func (g *Generator) emitTextSection(instrs []ir.Instruction) {
	functions, topLevel := splitRegions(instrs)

	g.emitText("section .text")
	g.emitText("default rel")
	g.emitText("extern printf")
	g.emitText("extern ExitProcess")
	g.emitText("global " + g.entryPoint)
	g.emitText("")

	g.emitFunctions(functions)

	g.emitText(g.entryPoint + ":")
	g.emitText("    sub rsp, 32")
	for _, in := range topLevel {
		if in.Kind == ir.Return {
			continue
		}
		g.translate(in)
	}
	g.emitText("    xor ecx, ecx")
	g.emitText("    call ExitProcess")
	g.emitText("    add rsp, 32")
	g.emitText("")
	g.emitDivZeroStubs()
}

// splitRegions separates every FunctionStart...FunctionEnd span from the
// instructions that run at top level (i.e. inside main).
func splitRegions(instrs []ir.Instruction) (functions []functionRegion, topLevel []ir.Instruction) {
	i := 0
	for i < len(instrs) {
		in := instrs[i]
		if in.Kind == ir.FunctionStart {
			name := in.Name
			j := i + 1
			var body []ir.Instruction
			for j < len(instrs) && !(instrs[j].Kind == ir.FunctionEnd && instrs[j].Name == name) {
				body = append(body, instrs[j])
				j++
			}
			functions = append(functions, functionRegion{name: name, params: in.Params, body: body})
			i = j + 1
			continue
		}
		topLevel = append(topLevel, in)
		i++
	}
	return functions, topLevel
}

func (g *Generator) emitFunctions(functions []functionRegion) {
	emitted := make(map[string]bool)
	for _, fn := range functions {
		if emitted[fn.name] {
			continue
		}
		emitted[fn.name] = true
		g.emitFunction(fn)
	}
}

func (g *Generator) emitFunction(fn functionRegion) {
	g.emitText(fn.name + ":")
	g.emitText("    push rbp")
	g.emitText("    mov rbp, rsp")
	for i, p := range fn.params {
		if i < len(argRegisters) {
			g.emitText("    mov qword [rel " + p + "], " + argRegisters[i])
			continue
		}
		offset := 48 + 8*(i-len(argRegisters))
		g.emitText("    mov rax, [rbp+" + strconv.Itoa(offset) + "]")
		g.emitText("    mov qword [rel " + p + "], rax")
	}
	for _, in := range fn.body {
		g.translate(in)
	}
	g.emitText("    pop rbp")
	g.emitText("    ret")
	g.emitText("")
}

func (g *Generator) emitDivZeroStubs() {
	g.emitText("_int_div_zero:")
	g.emitText("    sub rsp, 32")
	g.emitText("    lea rcx, [rel div_zero_err]")
	g.emitText("    call printf")
	g.emitText("    xor ecx, ecx")
	g.emitText("    call ExitProcess")
	g.emitText("")
	g.emitText("_float_div_zero:")
	g.emitText("    sub rsp, 32")
	g.emitText("    lea rcx, [rel div_zero_err]")
	g.emitText("    call printf")
	g.emitText("    xor ecx, ecx")
	g.emitText("    call ExitProcess")
}
