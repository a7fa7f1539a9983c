// Package ir defines MyLang's three-address-code intermediate
// representation and the generator that lowers an annotated AST to it.
package ir

import "fmt"

// Kind tags which of the eleven instruction shapes an Instruction is. An
// IR Kind is one of a small fixed set of three-address forms; the
// operator itself (Op) is carried as a field, not encoded in the Kind.
type Kind int

const (
	// Assign: Target = Value (Type set when known, e.g. from a
	// VarDeclaration's declared type, or carried over from a Binary that
	// constant folding replaced).
	Assign Kind = iota
	// Print: print Value (Type drives NASM format-string selection).
	Print
	// Return: return Value (Value == "" for a bare `return;`).
	Return
	// Label: Label: — a jump target, emitted at most once per name.
	Label
	// Goto: unconditional jump to Label.
	Goto
	// IfGoto: conditional jump to Label. Value holding a leading '!'
	// is the "branch when zero" marker.
	IfGoto
	// Call: Target = call Name(Args...).
	Call
	// Binary: Target = Left Op Right (Type set from the BinaryOp's
	// resolved type).
	Binary
	// Unary: Target = Op Operand.
	Unary
	// FunctionStart: opens a function region ended by a matching
	// FunctionEnd with the same Name.
	FunctionStart
	// FunctionEnd: closes the function region opened by FunctionStart.
	FunctionEnd
)

func (k Kind) String() string {
	switch k {
	case Assign:
		return "Assign"
	case Print:
		return "Print"
	case Return:
		return "Return"
	case Label:
		return "Label"
	case Goto:
		return "Goto"
	case IfGoto:
		return "IfGoto"
	case Call:
		return "Call"
	case Binary:
		return "Binary"
	case Unary:
		return "Unary"
	case FunctionStart:
		return "FunctionStart"
	case FunctionEnd:
		return "FunctionEnd"
	default:
		return "Unknown"
	}
}

// Instruction is one entry in the flat IR list. IR values (Target, Value,
// Left, Right, Operand, Args) are encoded as strings: identifiers and
// temporaries are bare names, numeric/bool literals are their textual
// form, string literals are double-quoted.
type Instruction struct {
	Kind Kind

	Target string // Assign/Binary/Unary/Call result name
	Value  string // Assign/Print/Return/IfGoto value
	Type   string // optional type annotation: "int"|"float"|"bool"|"string"

	Label string // Label/Goto/IfGoto target name

	Left, Right string // Binary operands
	Operand     string // Unary operand
	Op          string // Binary/Unary operator

	Name   string   // Call/FunctionStart/FunctionEnd function name
	Args   []string // Call argument values
	Params []string // FunctionStart parameter names
}

// String renders an instruction in its canonical textual form, used for
// golden-file comparisons and --verbose diagnostics.
func (in Instruction) String() string {
	switch in.Kind {
	case Assign:
		if in.Type != "" {
			return fmt.Sprintf("%s = %s (type=%s)", in.Target, in.Value, in.Type)
		}
		return fmt.Sprintf("%s = %s", in.Target, in.Value)
	case Print:
		if in.Type != "" {
			return fmt.Sprintf("print %s (type=%s)", in.Value, in.Type)
		}
		return fmt.Sprintf("print %s", in.Value)
	case Return:
		if in.Value == "" {
			return "return"
		}
		return fmt.Sprintf("return %s", in.Value)
	case Label:
		return fmt.Sprintf("%s:", in.Label)
	case Goto:
		return fmt.Sprintf("goto %s", in.Label)
	case IfGoto:
		return fmt.Sprintf("if %s goto %s", in.Value, in.Label)
	case Call:
		args := ""
		for i, a := range in.Args {
			if i > 0 {
				args += ", "
			}
			args += a
		}
		return fmt.Sprintf("%s = call %s(%s)", in.Target, in.Name, args)
	case Binary:
		if in.Type != "" {
			return fmt.Sprintf("%s = %s %s %s (type=%s)", in.Target, in.Left, in.Op, in.Right, in.Type)
		}
		return fmt.Sprintf("%s = %s %s %s", in.Target, in.Left, in.Op, in.Right)
	case Unary:
		return fmt.Sprintf("%s = %s%s", in.Target, in.Op, in.Operand)
	case FunctionStart:
		return fmt.Sprintf("function_start %s(%v)", in.Name, in.Params)
	case FunctionEnd:
		return fmt.Sprintf("function_end %s", in.Name)
	default:
		return "<unknown instruction>"
	}
}
