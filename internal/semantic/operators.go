package semantic

import "mylangc/internal/types"

// checkBinaryOp is a pure function: given the operand types and the
// operator, it returns the result type, or ok=false if the operand types
// are invalid for that operator.
func checkBinaryOp(left types.Type, op string, right types.Type) (result types.Type, ok bool) {
	switch op {
	case "+", "-", "*", "/":
		if !left.IsNumeric() || !right.IsNumeric() {
			return types.Type{}, false
		}
		if left.Kind == types.Float || right.Kind == types.Float {
			return types.FloatType, true
		}
		return types.IntType, true

	case "<", ">", "==", "!=":
		if !left.Equal(right) {
			return types.Type{}, false
		}
		return types.BoolType, true

	case "&&", "||":
		if left.Kind != types.Bool || right.Kind != types.Bool {
			return types.Type{}, false
		}
		return types.BoolType, true

	default:
		return types.Type{}, false
	}
}

// checkUnaryOp implements unary `!`: bool in, bool out.
func checkUnaryOp(op string, operand types.Type) (result types.Type, ok bool) {
	if op != "!" {
		return types.Type{}, false
	}
	if operand.Kind != types.Bool {
		return types.Type{}, false
	}
	return types.BoolType, true
}
