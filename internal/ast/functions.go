package ast

import (
	"strings"

	"mylangc/internal/lexer"
	"mylangc/internal/types"
)

// Parameter is one (name, type) entry in a FunctionDeclaration's parameter
// list.
type Parameter struct {
	Name string
	Type types.Type
}

// FunctionDeclaration is a top-level-only function definition.
type FunctionDeclaration struct {
	Token      lexer.Token
	Name       string
	Params     []Parameter
	ReturnType types.Type
	Body       *Block
}

func (f *FunctionDeclaration) statementNode()       {}
func (f *FunctionDeclaration) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclaration) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name + ":" + p.Type.String()
	}
	return "function " + f.Name + "(" + strings.Join(params, ", ") + "):" +
		f.ReturnType.String() + " " + f.Body.String()
}

// FunctionType builds the types.Type payload for this declaration, used
// to define the function's symbol in the enclosing scope.
func (f *FunctionDeclaration) FunctionType() types.Type {
	params := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return types.Function(params, f.ReturnType)
}
