package optimizer

import (
	"strings"

	"mylangc/internal/ir"
)

// branchSimplification is pass 5. It recognizes four shapes of a
// trivially-decidable IfGoto condition; any other condition is left
// unchanged. "Last preceding Assign" tracking is reset at Label/
// FunctionStart/FunctionEnd boundaries, mirroring pass 2's scoping of
// temporaries.
func branchSimplification(instrs []ir.Instruction) []ir.Instruction {
	out := make([]ir.Instruction, 0, len(instrs))
	lastAssign := map[string]string{}

	for _, in := range instrs {
		if in.Kind == ir.Label || in.Kind == ir.FunctionStart || in.Kind == ir.FunctionEnd {
			lastAssign = map[string]string{}
			out = append(out, in)
			continue
		}

		if in.Kind == ir.IfGoto {
			switch simplifyCondition(in.Value, lastAssign) {
			case alwaysBranch:
				out = append(out, ir.Instruction{Kind: ir.Goto, Label: in.Label})
			case neverBranch:
				// dropped
			default:
				out = append(out, in)
			}
		} else {
			out = append(out, in)
		}

		if in.Kind == ir.Assign {
			lastAssign[in.Target] = in.Value
		}
	}
	return out
}

type branchOutcome int

const (
	unchanged branchOutcome = iota
	alwaysBranch
	neverBranch
)

func simplifyCondition(cond string, lastAssign map[string]string) branchOutcome {
	switch cond {
	case "true":
		return alwaysBranch
	case "false":
		return neverBranch
	case "!true":
		return neverBranch
	case "!false":
		return alwaysBranch
	}

	if strings.HasPrefix(cond, "!") {
		temp := cond[1:]
		if isTemp(temp) {
			switch lastAssign[temp] {
			case "!true":
				// temp holds NOT true == false, so "branch when temp is
				// zero" always fires.
				return alwaysBranch
			case "!false":
				// temp holds NOT false == true, so the branch never fires.
				return neverBranch
			}
		}
	}
	return unchanged
}
