// Package types defines MyLang's primitive type system.
package types

import "fmt"

// Kind is the tag of a primitive type. MyLang has no composite types.
type Kind int

const (
	Invalid Kind = iota
	Int
	Float
	Bool
	String
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "<invalid>"
	}
}

// Type is a resolved MyLang type: either a primitive Kind or a Function
// signature. It is the value stored in a Symbol and the annotation attached
// to BinaryOp/Identifier nodes after semantic analysis.
type Type struct {
	Kind     Kind
	Function *FunctionType // non-nil iff this Type describes a function symbol
}

// FunctionType is the payload of a function symbol: its parameter types in
// declaration order and its return type.
type FunctionType struct {
	Params     []Type
	ReturnType Type
}

// Primitive constructs a primitive Type of the given Kind.
func Primitive(k Kind) Type { return Type{Kind: k} }

var (
	IntType    = Primitive(Int)
	FloatType  = Primitive(Float)
	BoolType   = Primitive(Bool)
	StringType = Primitive(String)
)

// Function constructs a function-valued Type.
func Function(params []Type, ret Type) Type {
	return Type{Kind: Invalid, Function: &FunctionType{Params: params, ReturnType: ret}}
}

// IsFunction reports whether t describes a function symbol.
func (t Type) IsFunction() bool { return t.Function != nil }

// IsNumeric reports whether t is int or float.
func (t Type) IsNumeric() bool { return t.Kind == Int || t.Kind == Float }

// Equal reports whether two types denote the same primitive kind or an
// identical function signature.
func (t Type) Equal(other Type) bool {
	if t.IsFunction() != other.IsFunction() {
		return false
	}
	if t.IsFunction() {
		if len(t.Function.Params) != len(other.Function.Params) {
			return false
		}
		for i := range t.Function.Params {
			if !t.Function.Params[i].Equal(other.Function.Params[i]) {
				return false
			}
		}
		return t.Function.ReturnType.Equal(other.Function.ReturnType)
	}
	return t.Kind == other.Kind
}

func (t Type) String() string {
	if t.IsFunction() {
		return fmt.Sprintf("function%v:%s", t.Function.Params, t.Function.ReturnType)
	}
	return t.Kind.String()
}

// FromKeyword maps a type-annotation keyword (as written in source, e.g.
// "int") to its primitive Type. ok is false for anything else.
func FromKeyword(keyword string) (Type, bool) {
	switch keyword {
	case "int":
		return IntType, true
	case "float":
		return FloatType, true
	case "bool":
		return BoolType, true
	case "string":
		return StringType, true
	default:
		return Type{}, false
	}
}
