package ir

import (
	"strconv"

	"mylangc/internal/ast"
)

// Generator lowers a semantically-analyzed AST (every BinaryOp/Identifier
// already carrying a resolved type) into a flat IR instruction list.
//
// The temp counter is global and never resets at a FunctionStart, and the
// label counter is a single monotonic sequence shared across every label
// prefix — both match the numbering scheme the golden scenarios assume.
type Generator struct {
	instrs  []Instruction
	nextTmp int
	nextLbl int

	definedFuncs  map[string]bool
	emittedLabels map[string]bool
}

// NewGenerator creates an empty Generator.
func NewGenerator() *Generator {
	return &Generator{
		definedFuncs:  make(map[string]bool),
		emittedLabels: make(map[string]bool),
	}
}

// Generate lowers prog to its IR instruction list.
func (g *Generator) Generate(prog *ast.Program) []Instruction {
	for _, stmt := range prog.Statements {
		g.genStatement(stmt)
	}
	return g.instrs
}

func (g *Generator) emit(in Instruction) {
	if in.Kind == Label {
		for g.emittedLabels[in.Label] {
			in.Label = g.newLabel(in.Label)
		}
		g.emittedLabels[in.Label] = true
	}
	g.instrs = append(g.instrs, in)
}

func (g *Generator) newTemp() string {
	t := "t" + strconv.Itoa(g.nextTmp)
	g.nextTmp++
	return t
}

func (g *Generator) newLabel(prefix string) string {
	l := prefix + "_" + strconv.Itoa(g.nextLbl)
	g.nextLbl++
	return l
}

func (g *Generator) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDeclaration:
		g.genVarDeclaration(s)
	case *ast.Assignment:
		g.genAssignment(s)
	case *ast.PrintStatement:
		g.genPrint(s)
	case *ast.ReturnStatement:
		g.genReturn(s)
	case *ast.Block:
		g.genBlock(s)
	case *ast.IfStatement:
		g.genIf(s)
	case *ast.WhileStatement:
		g.genWhile(s)
	case *ast.ForStatement:
		g.genFor(s)
	case *ast.FunctionDeclaration:
		g.genFunctionDeclaration(s)
	case *ast.FunctionCall:
		g.genExpr(s)
	case *ast.TryCatchStatement:
		g.genTryCatch(s)
	case *ast.MatchStatement:
		g.genMatch(s)
	}
}

func (g *Generator) genBlock(block *ast.Block) {
	for _, stmt := range block.Statements {
		g.genStatement(stmt)
	}
}

func (g *Generator) genVarDeclaration(decl *ast.VarDeclaration) {
	val := g.genExpr(decl.Value)
	g.emit(Instruction{Kind: Assign, Target: decl.Name, Value: val, Type: decl.DeclaredType.String()})
}

func (g *Generator) genAssignment(assign *ast.Assignment) {
	val := g.genExpr(assign.Value)
	g.emit(Instruction{Kind: Assign, Target: assign.Name, Value: val})
}

func (g *Generator) genPrint(p *ast.PrintStatement) {
	val := g.genExpr(p.Expression)
	g.emit(Instruction{Kind: Print, Value: val, Type: inferExprType(p.Expression)})
}

func (g *Generator) genReturn(r *ast.ReturnStatement) {
	if r.Value == nil {
		g.emit(Instruction{Kind: Return})
		return
	}
	val := g.genExpr(r.Value)
	g.emit(Instruction{Kind: Return, Value: val})
}

func (g *Generator) genIf(stmt *ast.IfStatement) {
	cond := g.genExpr(stmt.Condition)
	if stmt.Alternative != nil {
		elseLabel := g.newLabel("if_else")
		endLabel := g.newLabel("if_end")
		g.emit(Instruction{Kind: IfGoto, Value: "!" + cond, Label: elseLabel})
		g.genBlock(stmt.Then)
		g.emit(Instruction{Kind: Goto, Label: endLabel})
		g.emit(Instruction{Kind: Label, Label: elseLabel})
		g.genBlock(stmt.Alternative)
		g.emit(Instruction{Kind: Label, Label: endLabel})
		return
	}
	endLabel := g.newLabel("if_end")
	g.emit(Instruction{Kind: IfGoto, Value: "!" + cond, Label: endLabel})
	g.genBlock(stmt.Then)
	g.emit(Instruction{Kind: Label, Label: endLabel})
}

func (g *Generator) genWhile(stmt *ast.WhileStatement) {
	startLabel := g.newLabel("while_start")
	endLabel := g.newLabel("while_end")
	g.emit(Instruction{Kind: Label, Label: startLabel})
	cond := g.genExpr(stmt.Condition)
	g.emit(Instruction{Kind: IfGoto, Value: "!" + cond, Label: endLabel})
	g.genBlock(stmt.Body)
	g.emit(Instruction{Kind: Goto, Label: startLabel})
	g.emit(Instruction{Kind: Label, Label: endLabel})
}

func (g *Generator) genFor(stmt *ast.ForStatement) {
	if stmt.Init != nil {
		g.genStatement(stmt.Init)
	}
	startLabel := g.newLabel("for_start")
	endLabel := g.newLabel("for_end")
	g.emit(Instruction{Kind: Label, Label: startLabel})
	if stmt.Condition != nil {
		cond := g.genExpr(stmt.Condition)
		g.emit(Instruction{Kind: IfGoto, Value: "!" + cond, Label: endLabel})
	}
	g.genBlock(stmt.Body)
	if stmt.Update != nil {
		g.genStatement(stmt.Update)
	}
	g.emit(Instruction{Kind: Goto, Label: startLabel})
	g.emit(Instruction{Kind: Label, Label: endLabel})
}

func (g *Generator) genFunctionDeclaration(decl *ast.FunctionDeclaration) {
	fullName := "func_" + decl.Name
	if g.definedFuncs[decl.Name] {
		return
	}
	g.definedFuncs[decl.Name] = true

	params := make([]string, len(decl.Params))
	for i, p := range decl.Params {
		params[i] = p.Name
	}
	g.emit(Instruction{Kind: FunctionStart, Name: fullName, Params: params})
	g.genBlock(decl.Body)
	g.emit(Instruction{Kind: FunctionEnd, Name: fullName})
}

func (g *Generator) genTryCatch(stmt *ast.TryCatchStatement) {
	tryLabel := g.newLabel("try")
	catchLabel := g.newLabel("catch")
	endLabel := g.newLabel("end_try")

	g.emit(Instruction{Kind: Label, Label: tryLabel})
	g.genBlock(stmt.Try)
	g.emit(Instruction{Kind: Goto, Label: endLabel})
	g.emit(Instruction{Kind: Label, Label: catchLabel})
	g.genBlock(stmt.Catch)
	g.emit(Instruction{Kind: Label, Label: endLabel})
}

func (g *Generator) genMatch(stmt *ast.MatchStatement) {
	scrutinee := g.genExpr(stmt.Expression)
	endLabel := g.newLabel("end_match")

	caseLabels := make([]string, len(stmt.Cases))
	for i, c := range stmt.Cases {
		caseVal := g.genExpr(c.Value)
		eqTemp := g.newTemp()
		g.emit(Instruction{Kind: Binary, Target: eqTemp, Left: scrutinee, Op: "==", Right: caseVal, Type: "bool"})
		caseLabels[i] = g.newLabel("case")
		g.emit(Instruction{Kind: IfGoto, Value: eqTemp, Label: caseLabels[i]})
	}

	if stmt.Default != nil {
		defaultLabel := g.newLabel("default_case")
		g.emit(Instruction{Kind: Goto, Label: defaultLabel})
		for i, c := range stmt.Cases {
			g.emit(Instruction{Kind: Label, Label: caseLabels[i]})
			for _, s := range c.Body {
				g.genStatement(s)
			}
			g.emit(Instruction{Kind: Goto, Label: endLabel})
		}
		g.emit(Instruction{Kind: Label, Label: defaultLabel})
		for _, s := range stmt.Default.Body {
			g.genStatement(s)
		}
		g.emit(Instruction{Kind: Goto, Label: endLabel})
	} else {
		g.emit(Instruction{Kind: Goto, Label: endLabel})
		for i, c := range stmt.Cases {
			g.emit(Instruction{Kind: Label, Label: caseLabels[i]})
			for _, s := range c.Body {
				g.genStatement(s)
			}
			g.emit(Instruction{Kind: Goto, Label: endLabel})
		}
	}

	g.emit(Instruction{Kind: Label, Label: endLabel})
}

// genExpr lowers an expression and returns its IR value (a bare
// identifier/temp name, or a literal's textual form).
func (g *Generator) genExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalIRValue(e)

	case *ast.Identifier:
		return e.Name

	case *ast.BinaryOp:
		left := g.genExpr(e.Left)
		right := g.genExpr(e.Right)
		target := g.newTemp()
		g.emit(Instruction{Kind: Binary, Target: target, Left: left, Op: e.Operator, Right: right, Type: e.GetType().String()})
		return target

	case *ast.UnaryOp:
		operand := g.genExpr(e.Operand)
		target := g.newTemp()
		g.emit(Instruction{Kind: Unary, Target: target, Op: e.Operator, Operand: operand})
		return target

	case *ast.FunctionCall:
		args := make([]string, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = g.genExpr(a)
		}
		target := g.newTemp()
		g.emit(Instruction{Kind: Call, Target: target, Name: "func_" + e.Name, Args: args})
		return target

	default:
		return ""
	}
}

func literalIRValue(lit *ast.Literal) string {
	switch lit.Kind {
	case ast.StringLiteral:
		return `"` + lit.SVal + `"`
	default:
		return lit.Token.Literal
	}
}

// inferExprType infers a Print value's type from the expression: Literal
// kind, Identifier symbol (annotated by semantic analysis), or the
// BinaryOp's resolved type.
func inferExprType(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.IntLiteral:
			return "int"
		case ast.FloatLiteral:
			return "float"
		case ast.BoolLiteral:
			return "bool"
		case ast.StringLiteral:
			return "string"
		}
	case *ast.Identifier, *ast.BinaryOp, *ast.UnaryOp, *ast.FunctionCall:
		if e.GetType().Kind != 0 || e.GetType().IsFunction() {
			return e.GetType().String()
		}
	}
	return ""
}
