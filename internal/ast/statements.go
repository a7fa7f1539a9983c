package ast

import (
	"mylangc/internal/lexer"
	"mylangc/internal/types"
)

// VarDeclaration introduces a new name in the current scope with an
// explicit declared type and an initializing expression.
type VarDeclaration struct {
	Token        lexer.Token
	Name         string
	DeclaredType types.Type
	Value        Expression
}

func (v *VarDeclaration) statementNode()       {}
func (v *VarDeclaration) TokenLiteral() string { return v.Token.Literal }
func (v *VarDeclaration) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarDeclaration) String() string {
	return "let " + v.Name + ":" + v.DeclaredType.String() + " = " + v.Value.String() + ";"
}

// Assignment rebinds an already-declared name.
type Assignment struct {
	Token lexer.Token
	Name  string
	Value Expression
}

func (a *Assignment) statementNode()       {}
func (a *Assignment) TokenLiteral() string { return a.Token.Literal }
func (a *Assignment) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assignment) String() string       { return a.Name + " = " + a.Value.String() + ";" }

// PrintStatement prints the value of an expression.
type PrintStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (p *PrintStatement) statementNode()       {}
func (p *PrintStatement) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStatement) Pos() lexer.Position  { return p.Token.Pos }
func (p *PrintStatement) String() string       { return "print(" + p.Expression.String() + ");" }

// ReturnStatement returns from the enclosing function, with or without a
// value.
type ReturnStatement struct {
	Token lexer.Token
	Value Expression // nil for a bare `return;`
}

func (r *ReturnStatement) statementNode()       {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Pos() lexer.Position  { return r.Token.Pos }
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}
