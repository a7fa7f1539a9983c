package codegen

import "mylangc/internal/ir"

// collectFunctionParams records each FunctionStart's parameter cell names,
// so call sites can replicate the prototype generator's quirk of writing
// argument values directly into the callee's parameter cells in addition
// to marshaling them through the ABI registers.
func (g *Generator) collectFunctionParams(instrs []ir.Instruction) {
	for _, in := range instrs {
		if in.Kind == ir.FunctionStart {
			g.funcParams[in.Name] = in.Params
			g.definedFunctions[in.Name] = true
		}
	}
}

// collectVariables scans every value-carrying field of every instruction
// and registers each identifier that is not a digit, a quoted string, a
// function name, a reserved label prefix, or a boolean constant as a
// global storage cell.
func (g *Generator) collectVariables(instrs []ir.Instruction) {
	typeOf := make(map[string]string)
	for _, in := range instrs {
		switch in.Kind {
		case ir.Assign:
			if in.Type != "" {
				typeOf[in.Target] = in.Type
			}
		case ir.Binary:
			if in.Type != "" {
				typeOf[in.Target] = in.Type
			}
		}
	}

	note := func(name string) {
		name = trimBang(name)
		if !g.isVariableName(name) {
			return
		}
		if g.variables[name] {
			return
		}
		g.variables[name] = true
		g.varOrder = append(g.varOrder, name)
		switch typeOf[name] {
		case "float":
			g.varIsFloat[name] = true
		case "string":
			g.varIsString[name] = true
		}
	}

	for _, in := range instrs {
		switch in.Kind {
		case ir.Assign:
			note(in.Target)
			note(in.Value)
		case ir.Print:
			note(in.Value)
		case ir.Return:
			note(in.Value)
		case ir.Binary:
			note(in.Target)
			note(in.Left)
			note(in.Right)
		case ir.Unary:
			note(in.Target)
			note(in.Operand)
		case ir.IfGoto:
			note(in.Value)
		case ir.Call:
			note(in.Target)
			for _, a := range in.Args {
				note(a)
			}
		case ir.FunctionStart:
			for _, p := range in.Params {
				note(p)
			}
		}
	}
}

// isVariableName reports whether name denotes a global storage cell:
// neither a literal, a boolean, a function name, nor a reserved label.
func (g *Generator) isVariableName(name string) bool {
	if name == "" {
		return false
	}
	if isIntLiteral(name) || isFloatLiteral(name) {
		return false
	}
	if len(name) > 0 && name[0] == '"' {
		return false
	}
	if name == "true" || name == "false" {
		g.needsBool = true
		return false
	}
	if g.definedFunctions[name] {
		return false
	}
	if hasReservedPrefix(name) {
		return false
	}
	return true
}

func hasReservedPrefix(name string) bool {
	for _, p := range reservedLabelPrefixes {
		if len(name) >= len(p) && name[:len(p)] == p {
			return true
		}
	}
	return false
}

func trimBang(v string) string {
	if len(v) > 0 && v[0] == '!' {
		return v[1:]
	}
	return v
}

func isIntLiteral(v string) bool {
	if v == "" {
		return false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isFloatLiteral(v string) bool {
	if v == "" {
		return false
	}
	dot := false
	for _, c := range v {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return dot
}
