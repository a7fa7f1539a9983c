package optimizer

import (
	"strings"

	"mylangc/internal/ir"
)

// copyPropagation is pass 2. It is restricted to temp-to-temp copies: a
// user-variable value is never propagated, so the observable ordering of
// user-variable writes cannot be reordered.
func copyPropagation(instrs []ir.Instruction) []ir.Instruction {
	out := make([]ir.Instruction, 0, len(instrs))
	mapping := map[string]string{}

	for _, in := range instrs {
		if in.Kind == ir.Label || in.Kind == ir.FunctionStart || in.Kind == ir.FunctionEnd {
			mapping = map[string]string{}
			out = append(out, in)
			continue
		}

		rewritten := rewriteUses(in, mapping)

		if rewritten.Kind == ir.Assign && isTemp(rewritten.Target) && isTemp(rewritten.Value) {
			mapping[rewritten.Target] = rewritten.Value
		} else if target := instructionTarget(rewritten); target != "" {
			delete(mapping, target)
		}

		out = append(out, rewritten)
	}
	return out
}

func rewriteUses(in ir.Instruction, mapping map[string]string) ir.Instruction {
	switch in.Kind {
	case ir.Assign:
		in.Value = resolveValue(mapping, in.Value)
	case ir.Print:
		in.Value = resolveValue(mapping, in.Value)
	case ir.Return:
		in.Value = resolveValue(mapping, in.Value)
	case ir.IfGoto:
		in.Value = resolveValue(mapping, in.Value)
	case ir.Binary:
		in.Left = resolveValue(mapping, in.Left)
		in.Right = resolveValue(mapping, in.Right)
	case ir.Unary:
		in.Operand = resolveValue(mapping, in.Operand)
	case ir.Call:
		args := make([]string, len(in.Args))
		for i, a := range in.Args {
			args[i] = resolveValue(mapping, a)
		}
		in.Args = args
	}
	return in
}

// instructionTarget returns the name an instruction defines, or "" if it
// defines nothing.
func instructionTarget(in ir.Instruction) string {
	switch in.Kind {
	case ir.Assign, ir.Binary, ir.Unary, ir.Call:
		return in.Target
	default:
		return ""
	}
}

func resolveValue(mapping map[string]string, v string) string {
	if strings.HasPrefix(v, "!") {
		return "!" + resolveTemp(mapping, v[1:])
	}
	return resolveTemp(mapping, v)
}

func resolveTemp(mapping map[string]string, name string) string {
	for {
		next, ok := mapping[name]
		if !ok {
			return name
		}
		name = next
	}
}

// isTemp reports whether name matches the compiler-generated temporary
// shape t<digit>+.
func isTemp(name string) bool {
	if len(name) < 2 || name[0] != 't' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
