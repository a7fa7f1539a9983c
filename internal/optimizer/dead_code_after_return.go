package optimizer

import "mylangc/internal/ir"

// deadCodeAfterReturn is pass 6: within each FunctionStart...FunctionEnd
// region, drop every instruction strictly after the first Return, up to
// (but not including) the matching FunctionEnd.
func deadCodeAfterReturn(instrs []ir.Instruction) []ir.Instruction {
	out := make([]ir.Instruction, 0, len(instrs))
	inFunction := false
	seenReturn := false

	for _, in := range instrs {
		switch in.Kind {
		case ir.FunctionStart:
			inFunction = true
			seenReturn = false
			out = append(out, in)
		case ir.FunctionEnd:
			inFunction = false
			seenReturn = false
			out = append(out, in)
		case ir.Return:
			if inFunction && seenReturn {
				continue
			}
			out = append(out, in)
			if inFunction {
				seenReturn = true
			}
		default:
			if inFunction && seenReturn {
				continue
			}
			out = append(out, in)
		}
	}
	return out
}
