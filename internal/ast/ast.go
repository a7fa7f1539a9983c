// Package ast defines the Abstract Syntax Tree node types produced by the
// parser for MyLang source programs.
package ast

import (
	"bytes"
	"strings"

	"mylangc/internal/lexer"
	"mylangc/internal/types"
)

// Node is the interface implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Statement is a Node that appears in statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that appears in expression position and carries a
// type annotation filled in by the semantic analyzer.
type Expression interface {
	Node
	expressionNode()
	GetType() types.Type
	SetType(types.Type)
}

// exprType is embedded by every Expression implementation to carry the
// type_ annotation the semantic analyzer fills in.
type exprType struct {
	typ types.Type
}

func (e *exprType) GetType() types.Type  { return e.typ }
func (e *exprType) SetType(t types.Type) { e.typ = t }

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Block is a brace-delimited ordered sequence of statements introducing its
// own lexical scope.
type Block struct {
	Token      lexer.Token // '{'
	Statements []Statement
}

func (b *Block) statementNode()          {}
func (b *Block) TokenLiteral() string    { return b.Token.Literal }
func (b *Block) Pos() lexer.Position     { return b.Token.Pos }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Identifier is a name reference. Type is filled by the semantic analyzer;
// the IR generator only reads it and never sets it.
type Identifier struct {
	exprType
	Token lexer.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Name }

// LiteralKind tags which concrete value a Literal holds.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	BoolLiteral
	StringLiteral
)

// Literal is a constant value. Its type is inferred purely from Kind, never
// annotated by the analyzer.
type Literal struct {
	exprType
	Token lexer.Token
	Kind  LiteralKind
	IVal  int64
	FVal  float32
	BVal  bool
	SVal  string
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() lexer.Position  { return l.Token.Pos }
func (l *Literal) String() string {
	switch l.Kind {
	case StringLiteral:
		return `"` + l.SVal + `"`
	default:
		return l.Token.Literal
	}
}

// BinaryOp is a binary arithmetic, comparison, or logical expression.
type BinaryOp struct {
	exprType
	Token    lexer.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryOp) expressionNode()      {}
func (b *BinaryOp) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryOp) Pos() lexer.Position  { return b.Token.Pos }
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryOp is a prefix unary expression (only `!` in MyLang).
type UnaryOp struct {
	exprType
	Token    lexer.Token
	Operator string
	Operand  Expression
}

func (u *UnaryOp) expressionNode()      {}
func (u *UnaryOp) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryOp) Pos() lexer.Position  { return u.Token.Pos }
func (u *UnaryOp) String() string       { return "(" + u.Operator + u.Operand.String() + ")" }

// FunctionCall is a call expression, also usable as a statement.
type FunctionCall struct {
	exprType
	Token     lexer.Token // the function name token
	Name      string
	Arguments []Expression
}

func (f *FunctionCall) expressionNode()      {}
func (f *FunctionCall) statementNode()       {}
func (f *FunctionCall) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionCall) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionCall) String() string {
	args := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}
