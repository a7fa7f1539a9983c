// Package semantic implements MyLang's single-pass semantic analyzer: scope
// and declaration checking, type checking, and AST type annotation.
package semantic

import (
	"strings"

	"mylangc/internal/ast"
	"mylangc/internal/symtab"
	"mylangc/internal/types"
)

// Analyzer performs a single pre-order traversal of a Program, enforcing
// scope/declaration/type rules and annotating BinaryOp/Identifier nodes
// with their resolved types. Analysis aborts and returns a single fatal
// diagnostic on the first failure.
type Analyzer struct {
	source string
	file   string
}

// NewAnalyzer creates an Analyzer with no source context set.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// SetSource attaches the original source text and file name so diagnostics
// can include a source-line excerpt, matching the rest of this codebase's
// error formatting.
func (a *Analyzer) SetSource(source, file string) {
	a.source = source
	a.file = file
}

func (a *Analyzer) errf(kind Kind, node ast.Node, format string, args ...interface{}) *Error {
	err := newError(kind, node.Pos(), a.source, a.file, format, args...)
	err.WithWidth(len(node.TokenLiteral()))
	return err
}

// Analyze runs semantic analysis over prog. A nil return means the program
// is well-formed and every BinaryOp/Identifier now carries a resolved type.
func (a *Analyzer) Analyze(prog *ast.Program) *Error {
	root := symtab.NewScope()
	for _, stmt := range prog.Statements {
		if err := a.analyzeStatement(stmt, root); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement, scope *symtab.Scope) *Error {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		return a.analyzeVarDeclaration(s, scope)
	case *ast.Assignment:
		return a.analyzeAssignment(s, scope)
	case *ast.PrintStatement:
		_, err := a.analyzeExpression(s.Expression, scope)
		return err
	case *ast.ReturnStatement:
		return a.analyzeReturn(s, scope)
	case *ast.Block:
		return a.analyzeBlock(s, scope)
	case *ast.IfStatement:
		return a.analyzeIf(s, scope)
	case *ast.WhileStatement:
		return a.analyzeWhile(s, scope)
	case *ast.ForStatement:
		return a.analyzeFor(s, scope)
	case *ast.FunctionDeclaration:
		return a.analyzeFunctionDeclaration(s, scope)
	case *ast.FunctionCall:
		_, err := a.analyzeFunctionCall(s, scope)
		return err
	case *ast.TryCatchStatement:
		return a.analyzeTryCatch(s, scope)
	case *ast.MatchStatement:
		return a.analyzeMatch(s, scope)
	default:
		return a.errf(UnknownOperator, stmt, "unrecognized statement")
	}
}

func (a *Analyzer) analyzeBlock(block *ast.Block, parent *symtab.Scope) *Error {
	child := symtab.NewChildScope(parent)
	for _, stmt := range block.Statements {
		if err := a.analyzeStatement(stmt, child); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeVarDeclaration(decl *ast.VarDeclaration, scope *symtab.Scope) *Error {
	if _, exists := scope.LookupLocal(decl.Name); exists {
		return a.errf(Redeclaration, decl, "%q is already declared in this scope", decl.Name)
	}
	valType, err := a.analyzeExpression(decl.Value, scope)
	if err != nil {
		return err
	}
	if !valType.Equal(decl.DeclaredType) {
		return a.errf(TypeMismatch, decl, "cannot initialize %q of type %s with value of type %s",
			decl.Name, decl.DeclaredType, valType)
	}
	scope.Define(decl.Name, decl.DeclaredType)
	return nil
}

func (a *Analyzer) analyzeAssignment(assign *ast.Assignment, scope *symtab.Scope) *Error {
	sym, ok := scope.Lookup(assign.Name)
	if !ok {
		return a.errf(Undeclared, assign, "%q is not declared", assign.Name)
	}
	valType, err := a.analyzeExpression(assign.Value, scope)
	if err != nil {
		return err
	}
	if !valType.Equal(sym.Type) {
		return a.errf(TypeMismatch, assign, "cannot assign value of type %s to %q of type %s",
			valType, assign.Name, sym.Type)
	}
	return nil
}

func (a *Analyzer) analyzeReturn(ret *ast.ReturnStatement, scope *symtab.Scope) *Error {
	retType, ok := scope.ReturnType()
	if ret.Value == nil {
		return nil
	}
	valType, err := a.analyzeExpression(ret.Value, scope)
	if err != nil {
		return err
	}
	if !ok {
		// A return with a value outside any function body. The parser
		// accepts a top-level return, and only a FunctionDeclaration
		// seeds __return_type__, so reject it here.
		return a.errf(TypeMismatch, ret, "return outside of a function")
	}
	if !valType.Equal(retType) {
		return a.errf(TypeMismatch, ret, "return value of type %s does not match function return type %s",
			valType, retType)
	}
	return nil
}

func (a *Analyzer) analyzeIf(stmt *ast.IfStatement, scope *symtab.Scope) *Error {
	condType, err := a.analyzeExpression(stmt.Condition, scope)
	if err != nil {
		return err
	}
	if condType.Kind != types.Bool {
		return a.errf(TypeMismatch, stmt, "if condition must be bool, got %s", condType)
	}
	if err := a.analyzeBlock(stmt.Then, scope); err != nil {
		return err
	}
	if stmt.Alternative != nil {
		return a.analyzeBlock(stmt.Alternative, scope)
	}
	return nil
}

func (a *Analyzer) analyzeWhile(stmt *ast.WhileStatement, scope *symtab.Scope) *Error {
	condType, err := a.analyzeExpression(stmt.Condition, scope)
	if err != nil {
		return err
	}
	if condType.Kind != types.Bool {
		return a.errf(TypeMismatch, stmt, "while condition must be bool, got %s", condType)
	}
	return a.analyzeBlock(stmt.Body, scope)
}

func (a *Analyzer) analyzeFor(stmt *ast.ForStatement, parent *symtab.Scope) *Error {
	// The for-scope contains init/condition/update and the body: a for
	// loop's init/condition/update execute in the same scope as the body.
	forScope := symtab.NewChildScope(parent)

	if stmt.Init != nil {
		if err := a.analyzeStatement(stmt.Init, forScope); err != nil {
			return err
		}
	}
	if stmt.Condition != nil {
		condType, err := a.analyzeExpression(stmt.Condition, forScope)
		if err != nil {
			return err
		}
		if condType.Kind != types.Bool {
			return a.errf(TypeMismatch, stmt, "for condition must be bool, got %s", condType)
		}
	}
	if stmt.Update != nil {
		if err := a.analyzeStatement(stmt.Update, forScope); err != nil {
			return err
		}
	}
	for _, s := range stmt.Body.Statements {
		if err := a.analyzeStatement(s, forScope); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeFunctionDeclaration(decl *ast.FunctionDeclaration, scope *symtab.Scope) *Error {
	if _, exists := scope.LookupLocal(decl.Name); exists {
		return a.errf(Redeclaration, decl, "function %q is already declared", decl.Name)
	}
	scope.Define(decl.Name, decl.FunctionType())

	fnScope := symtab.NewChildScope(scope)
	fnScope.Define(symtab.ReturnTypeKey, decl.ReturnType)

	seen := make(map[string]bool, len(decl.Params))
	for _, param := range decl.Params {
		if seen[param.Name] {
			return a.errf(DuplicateParam, decl, "duplicate parameter %q in function %q", param.Name, decl.Name)
		}
		seen[param.Name] = true
		fnScope.Define(param.Name, param.Type)
	}

	for _, stmt := range decl.Body.Statements {
		if err := a.analyzeStatement(stmt, fnScope); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeFunctionCall(call *ast.FunctionCall, scope *symtab.Scope) (types.Type, *Error) {
	sym, ok := scope.Lookup(call.Name)
	if !ok || !sym.Type.IsFunction() {
		return types.Type{}, a.errf(Undeclared, call, "%q is not a declared function", call.Name)
	}
	fn := sym.Type.Function
	if len(call.Arguments) != len(fn.Params) {
		return types.Type{}, a.errf(ArityMismatch, call, "%q expects %d argument(s), got %d",
			call.Name, len(fn.Params), len(call.Arguments))
	}
	for i, arg := range call.Arguments {
		argType, err := a.analyzeExpression(arg, scope)
		if err != nil {
			return types.Type{}, err
		}
		if !argType.Equal(fn.Params[i]) {
			return types.Type{}, a.errf(TypeMismatch, call,
				"argument %d to %q has type %s, want %s", i+1, call.Name, argType, fn.Params[i])
		}
	}
	call.SetType(fn.ReturnType)
	return fn.ReturnType, nil
}

func (a *Analyzer) analyzeTryCatch(stmt *ast.TryCatchStatement, scope *symtab.Scope) *Error {
	if err := a.analyzeBlock(stmt.Try, scope); err != nil {
		return err
	}
	catchScope := symtab.NewChildScope(scope)
	catchScope.Define(stmt.ExceptionName, types.StringType)
	for _, s := range stmt.Catch.Statements {
		if err := a.analyzeStatement(s, catchScope); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeMatch(stmt *ast.MatchStatement, scope *symtab.Scope) *Error {
	scrutineeType, err := a.analyzeExpression(stmt.Expression, scope)
	if err != nil {
		return err
	}
	for _, c := range stmt.Cases {
		caseType, err := a.analyzeExpression(c.Value, scope)
		if err != nil {
			return err
		}
		if !caseType.Equal(scrutineeType) {
			return a.errf(TypeMismatch, c.Value, "case value type %s does not match matched expression type %s",
				caseType, scrutineeType)
		}
		caseScope := symtab.NewChildScope(scope)
		for _, s := range c.Body {
			if err := a.analyzeStatement(s, caseScope); err != nil {
				return err
			}
		}
	}
	if stmt.Default != nil {
		defaultScope := symtab.NewChildScope(scope)
		for _, s := range stmt.Default.Body {
			if err := a.analyzeStatement(s, defaultScope); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) analyzeExpression(expr ast.Expression, scope *symtab.Scope) (types.Type, *Error) {
	switch e := expr.(type) {
	case *ast.Literal:
		if e.Kind == ast.StringLiteral && strings.ContainsRune(e.SVal, 0) {
			return types.Type{}, a.errf(InvalidLiteral, e, "string literal contains an embedded NUL byte")
		}
		return literalType(e), nil

	case *ast.Identifier:
		sym, ok := scope.Lookup(e.Name)
		if !ok {
			return types.Type{}, a.errf(Undeclared, e, "%q is not declared", e.Name)
		}
		e.SetType(sym.Type)
		return sym.Type, nil

	case *ast.BinaryOp:
		leftType, err := a.analyzeExpression(e.Left, scope)
		if err != nil {
			return types.Type{}, err
		}
		rightType, err := a.analyzeExpression(e.Right, scope)
		if err != nil {
			return types.Type{}, err
		}
		resultType, ok := checkBinaryOp(leftType, e.Operator, rightType)
		if !ok {
			if isComparison(e.Operator) {
				return types.Type{}, a.errf(TypeMismatch, e,
					"comparison type mismatch: %s %s %s", leftType, e.Operator, rightType)
			}
			return types.Type{}, a.errf(TypeMismatch, e,
				"invalid operand types for %q: %s, %s", e.Operator, leftType, rightType)
		}
		e.SetType(resultType)
		return resultType, nil

	case *ast.UnaryOp:
		operandType, err := a.analyzeExpression(e.Operand, scope)
		if err != nil {
			return types.Type{}, err
		}
		resultType, ok := checkUnaryOp(e.Operator, operandType)
		if !ok {
			return types.Type{}, a.errf(TypeMismatch, e, "invalid operand type for %q: %s", e.Operator, operandType)
		}
		e.SetType(resultType)
		return resultType, nil

	case *ast.FunctionCall:
		return a.analyzeFunctionCall(e, scope)

	default:
		return types.Type{}, a.errf(UnknownOperator, expr, "unrecognized expression")
	}
}

func literalType(lit *ast.Literal) types.Type {
	switch lit.Kind {
	case ast.IntLiteral:
		return types.IntType
	case ast.FloatLiteral:
		return types.FloatType
	case ast.BoolLiteral:
		return types.BoolType
	case ast.StringLiteral:
		return types.StringType
	default:
		return types.Type{}
	}
}

func isComparison(op string) bool {
	switch op {
	case "<", ">", "==", "!=":
		return true
	default:
		return false
	}
}
