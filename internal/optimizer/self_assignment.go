package optimizer

import "mylangc/internal/ir"

// selfAssignmentRemoval is pass 4: drop any Assign(x, x) left behind by
// copy propagation or by source-level code like `x = x;`.
func selfAssignmentRemoval(instrs []ir.Instruction) []ir.Instruction {
	out := make([]ir.Instruction, 0, len(instrs))
	for _, in := range instrs {
		if in.Kind == ir.Assign && in.Target == in.Value {
			continue
		}
		out = append(out, in)
	}
	return out
}
