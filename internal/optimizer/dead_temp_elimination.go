package optimizer

import (
	"strings"

	"mylangc/internal/ir"
)

// deadTempElimination is pass 3: drop every Assign whose target is a
// temporary that is never read anywhere in the instruction list. This is
// what actually removes the copy-propagated Assigns pass 2 leaves behind.
func deadTempElimination(instrs []ir.Instruction) []ir.Instruction {
	used := make(map[string]bool)
	mark := func(v string) {
		v = strings.TrimPrefix(v, "!")
		if isTemp(v) {
			used[v] = true
		}
	}

	for _, in := range instrs {
		switch in.Kind {
		case ir.Print:
			mark(in.Value)
		case ir.Return:
			mark(in.Value)
		case ir.Binary:
			mark(in.Left)
			mark(in.Right)
		case ir.Unary:
			mark(in.Operand)
		case ir.IfGoto:
			mark(in.Value)
		case ir.Call:
			for _, a := range in.Args {
				mark(a)
			}
		case ir.Assign:
			mark(in.Value)
		}
	}

	out := make([]ir.Instruction, 0, len(instrs))
	for _, in := range instrs {
		if in.Kind == ir.Assign && isTemp(in.Target) && !used[in.Target] {
			continue
		}
		out = append(out, in)
	}
	return out
}
