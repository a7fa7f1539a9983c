package optimizer

import (
	"strconv"

	"mylangc/internal/ir"
)

// constantFolding is pass 1: for each Binary whose left and right are
// concrete numeric literals of the same domain, compute the result and
// replace the instruction with a plain Assign. Non-numeric or non-literal
// operands are left untouched.
func constantFolding(instrs []ir.Instruction) []ir.Instruction {
	out := make([]ir.Instruction, 0, len(instrs))
	for _, in := range instrs {
		if in.Kind == ir.Binary {
			if folded, ok := foldBinary(in); ok {
				out = append(out, folded)
				continue
			}
		}
		if in.Kind == ir.Unary && in.Op == "!" && (in.Operand == "true" || in.Operand == "false") {
			// A `!` applied directly to a boolean literal can't be reduced
			// further without evaluating booleans at compile time, but it
			// can be materialized as the negation marker pass 5 looks for.
			out = append(out, ir.Instruction{Kind: ir.Assign, Target: in.Target, Value: "!" + in.Operand})
			continue
		}
		out = append(out, in)
	}
	return out
}

func foldBinary(in ir.Instruction) (ir.Instruction, bool) {
	switch in.Op {
	case "+", "-", "*", "/":
	default:
		return in, false
	}

	if li, ok := parseIntLiteral(in.Left); ok {
		if ri, ok := parseIntLiteral(in.Right); ok {
			result := computeInt(li, in.Op, ri)
			return ir.Instruction{Kind: ir.Assign, Target: in.Target, Value: strconv.FormatInt(result, 10), Type: in.Type}, true
		}
	}
	if lf, ok := parseFloatLiteral(in.Left); ok {
		if rf, ok := parseFloatLiteral(in.Right); ok {
			result := computeFloat(lf, in.Op, rf)
			return ir.Instruction{Kind: ir.Assign, Target: in.Target, Value: formatFloat(result), Type: in.Type}, true
		}
	}
	return in, false
}

func computeInt(l int64, op string, r int64) int64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		if r == 0 {
			return 0
		}
		return l / r
	default:
		return 0
	}
}

func computeFloat(l float32, op string, r float32) float32 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		if r == 0 {
			return 0
		}
		return l / r
	default:
		return 0
	}
}

// parseIntLiteral recognizes a textual IR value as a plain non-negative
// integer literal (no sign: MyLang has no unary minus over numerics, only
// logical negation — UnaryOp only ever carries the `!` operator).
func parseIntLiteral(v string) (int64, bool) {
	if v == "" {
		return 0, false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloatLiteral(v string) (float32, bool) {
	if v == "" {
		return 0, false
	}
	dot := false
	for _, c := range v {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !dot:
			dot = true
		default:
			return 0, false
		}
	}
	if !dot {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
