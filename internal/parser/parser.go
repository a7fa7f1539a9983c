// Package parser implements a small recursive-descent / Pratt parser that
// turns a MyLang token stream into the internal/ast node set. The grammar
// here is a reasonable concrete syntax for the AST shape the rest of the
// pipeline requires; any other parser producing the same tree would do.
package parser

import (
	"fmt"

	"mylangc/internal/ast"
	"mylangc/internal/lexer"
	"mylangc/internal/types"
)

// precedence levels, lowest to highest.
const (
	_ int = iota
	lowest
	logicalOr
	logicalAnd
	equality
	relational
	additive
	multiplicative
	unary
)

var precedences = map[lexer.TokenType]int{
	lexer.OR:    logicalOr,
	lexer.AND:   logicalAnd,
	lexer.EQ:    equality,
	lexer.NEQ:   equality,
	lexer.LT:    relational,
	lexer.GT:    relational,
	lexer.PLUS:  additive,
	lexer.MINUS: additive,
	lexer.STAR:  multiplicative,
	lexer.SLASH: multiplicative,
}

// Parser is a single-pass, two-token-lookahead parser.
type Parser struct {
	l *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	errors []error
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) errorf(pos lexer.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Errorf("%s: %s", pos, fmt.Sprintf(format, args...)))
}

func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	tok := p.cur
	if p.cur.Type != t {
		p.errorf(p.cur.Pos, "expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	}
	p.next()
	return tok
}

// ParseProgram parses the entire token stream into a Program node.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Type != lexer.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		} else {
			p.next()
		}
	}
	return prog
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case lexer.LET:
		return p.parseVarDeclaration()
	case lexer.PRINT:
		return p.parsePrintStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration()
	case lexer.TRY:
		return p.parseTryCatchStatement()
	case lexer.MATCH:
		return p.parseMatchStatement()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IDENT:
		if p.peek.Type == lexer.ASSIGN {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseTypeAnnotation() types.Type {
	tok := p.cur
	var typ types.Type
	switch tok.Type {
	case lexer.TYPE_INT:
		typ = types.IntType
	case lexer.TYPE_FLOAT:
		typ = types.FloatType
	case lexer.TYPE_BOOL:
		typ = types.BoolType
	case lexer.TYPE_STRING:
		typ = types.StringType
	default:
		p.errorf(tok.Pos, "expected type name, got %q", tok.Literal)
	}
	p.next()
	return typ
}

func (p *Parser) parseVarDeclaration() *ast.VarDeclaration {
	tok := p.expect(lexer.LET)
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.COLON)
	declType := p.parseTypeAnnotation()
	p.expect(lexer.ASSIGN)
	value := p.parseExpression(lowest)
	p.expectSemicolon()
	return &ast.VarDeclaration{Token: tok, Name: name, DeclaredType: declType, Value: value}
}

func (p *Parser) parseAssignment() *ast.Assignment {
	nameTok := p.expect(lexer.IDENT)
	tok := p.expect(lexer.ASSIGN)
	value := p.parseExpression(lowest)
	p.expectSemicolon()
	return &ast.Assignment{Token: tok, Name: nameTok.Literal, Value: value}
}

// parseAssignmentNoSemicolon is used for a for-loop's init/update clauses,
// which are not terminated by ';' on their own (the surrounding for(...)
// syntax supplies the separators).
func (p *Parser) parseAssignmentNoSemicolon() *ast.Assignment {
	nameTok := p.expect(lexer.IDENT)
	tok := p.expect(lexer.ASSIGN)
	value := p.parseExpression(lowest)
	return &ast.Assignment{Token: tok, Name: nameTok.Literal, Value: value}
}

func (p *Parser) parseVarDeclarationNoSemicolon() *ast.VarDeclaration {
	tok := p.expect(lexer.LET)
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.COLON)
	declType := p.parseTypeAnnotation()
	p.expect(lexer.ASSIGN)
	value := p.parseExpression(lowest)
	return &ast.VarDeclaration{Token: tok, Name: name, DeclaredType: declType, Value: value}
}

func (p *Parser) expectSemicolon() {
	if p.cur.Type == lexer.SEMICOLON {
		p.next()
		return
	}
	p.errorf(p.cur.Pos, "expected ';', got %q", p.cur.Literal)
}

func (p *Parser) parsePrintStatement() *ast.PrintStatement {
	tok := p.expect(lexer.PRINT)
	p.expect(lexer.LPAREN)
	expr := p.parseExpression(lowest)
	p.expect(lexer.RPAREN)
	p.expectSemicolon()
	return &ast.PrintStatement{Token: tok, Expression: expr}
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.expect(lexer.RETURN)
	if p.cur.Type == lexer.SEMICOLON {
		p.next()
		return &ast.ReturnStatement{Token: tok}
	}
	value := p.parseExpression(lowest)
	p.expectSemicolon()
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(lexer.LBRACE)
	block := &ast.Block{Token: tok}
	for p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.next()
		}
	}
	p.expect(lexer.RBRACE)
	return block
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression(lowest)
	p.expect(lexer.RPAREN)
	then := p.parseBlock()
	stmt := &ast.IfStatement{Token: tok, Condition: cond, Then: then}
	if p.cur.Type == lexer.ELSE {
		p.next()
		stmt.Alternative = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	tok := p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpression(lowest)
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parseForStatement parses `for (init; cond; update) { body }`, where each
// of init/cond/update may be omitted.
func (p *Parser) parseForStatement() *ast.ForStatement {
	tok := p.expect(lexer.FOR)
	p.expect(lexer.LPAREN)

	stmt := &ast.ForStatement{Token: tok}

	if p.cur.Type != lexer.SEMICOLON {
		if p.cur.Type == lexer.LET {
			stmt.Init = p.parseVarDeclarationNoSemicolon()
		} else {
			stmt.Init = p.parseAssignmentNoSemicolon()
		}
	}
	p.expect(lexer.SEMICOLON)

	if p.cur.Type != lexer.SEMICOLON {
		stmt.Condition = p.parseExpression(lowest)
	}
	p.expect(lexer.SEMICOLON)

	if p.cur.Type != lexer.RPAREN {
		stmt.Update = p.parseAssignmentNoSemicolon()
	}
	p.expect(lexer.RPAREN)

	stmt.Body = p.parseBlock()
	return stmt
}

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	tok := p.expect(lexer.FUNCTION)
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LPAREN)

	var params []ast.Parameter
	for p.cur.Type != lexer.RPAREN {
		pname := p.expect(lexer.IDENT).Literal
		p.expect(lexer.COLON)
		ptyp := p.parseTypeAnnotation()
		params = append(params, ast.Parameter{Name: pname, Type: ptyp})
		if p.cur.Type == lexer.COMMA {
			p.next()
		}
	}
	p.expect(lexer.RPAREN)
	p.expect(lexer.COLON)
	retType := p.parseTypeAnnotation()
	body := p.parseBlock()

	return &ast.FunctionDeclaration{Token: tok, Name: name, Params: params, ReturnType: retType, Body: body}
}

func (p *Parser) parseTryCatchStatement() *ast.TryCatchStatement {
	tok := p.expect(lexer.TRY)
	tryBlock := p.parseBlock()
	p.expect(lexer.CATCH)
	p.expect(lexer.LPAREN)
	excName := p.expect(lexer.IDENT).Literal
	p.expect(lexer.RPAREN)
	catchBlock := p.parseBlock()
	return &ast.TryCatchStatement{Token: tok, Try: tryBlock, ExceptionName: excName, Catch: catchBlock}
}

func (p *Parser) parseMatchStatement() *ast.MatchStatement {
	tok := p.expect(lexer.MATCH)
	p.expect(lexer.LPAREN)
	expr := p.parseExpression(lowest)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)

	stmt := &ast.MatchStatement{Token: tok, Expression: expr}
	for p.cur.Type == lexer.CASE || p.cur.Type == lexer.DEFAULT {
		if p.cur.Type == lexer.CASE {
			caseTok := p.expect(lexer.CASE)
			val := p.parseExpression(lowest)
			p.expect(lexer.COLON)
			body := p.parseCaseBody()
			stmt.Cases = append(stmt.Cases, &ast.MatchCase{Token: caseTok, Value: val, Body: body})
		} else {
			defTok := p.expect(lexer.DEFAULT)
			p.expect(lexer.COLON)
			body := p.parseCaseBody()
			stmt.Default = &ast.DefaultCase{Token: defTok, Body: body}
		}
	}
	p.expect(lexer.RBRACE)
	return stmt
}

func (p *Parser) parseCaseBody() []ast.Statement {
	var body []ast.Statement
	for p.cur.Type != lexer.CASE && p.cur.Type != lexer.DEFAULT && p.cur.Type != lexer.RBRACE && p.cur.Type != lexer.EOF {
		if stmt := p.parseStatement(); stmt != nil {
			body = append(body, stmt)
		} else {
			p.next()
		}
	}
	return body
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression(lowest)
	p.expectSemicolon()
	if stmt, ok := expr.(ast.Statement); ok {
		return stmt
	}
	// A bare expression that isn't a FunctionCall has no effect; only
	// FunctionCall doubles as a statement.
	p.errorf(expr.Pos(), "expression result unused")
	return nil
}

// parseExpression implements Pratt parsing over the precedence table.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()

	for p.cur.Type != lexer.SEMICOLON && minPrec < precedences[p.cur.Type] {
		op := p.cur
		p.next()
		right := p.parseExpression(precedences[op.Type])
		left = &ast.BinaryOp{Token: op, Left: left, Operator: op.Literal, Right: right}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Type {
	case lexer.BANG:
		tok := p.cur
		p.next()
		operand := p.parseExpression(unary)
		return &ast.UnaryOp{Token: tok, Operator: tok.Literal, Operand: operand}
	case lexer.LPAREN:
		p.next()
		expr := p.parseExpression(lowest)
		p.expect(lexer.RPAREN)
		return expr
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolLiteral()
	case lexer.IDENT:
		if p.peek.Type == lexer.LPAREN {
			return p.parseFunctionCall()
		}
		tok := p.cur
		p.next()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	default:
		p.errorf(p.cur.Pos, "unexpected token %q in expression", p.cur.Literal)
		tok := p.cur
		p.next()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.cur
	var v int64
	fmt.Sscanf(tok.Literal, "%d", &v)
	p.next()
	return &ast.Literal{Token: tok, Kind: ast.IntLiteral, IVal: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur
	var v float32
	fmt.Sscanf(tok.Literal, "%f", &v)
	p.next()
	return &ast.Literal{Token: tok, Kind: ast.FloatLiteral, FVal: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	p.next()
	return &ast.Literal{Token: tok, Kind: ast.StringLiteral, SVal: tok.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.cur
	p.next()
	return &ast.Literal{Token: tok, Kind: ast.BoolLiteral, BVal: tok.Type == lexer.TRUE}
}

func (p *Parser) parseFunctionCall() ast.Expression {
	tok := p.cur
	name := tok.Literal
	p.next() // consume name
	p.expect(lexer.LPAREN)

	var args []ast.Expression
	for p.cur.Type != lexer.RPAREN {
		args = append(args, p.parseExpression(lowest))
		if p.cur.Type == lexer.COMMA {
			p.next()
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.FunctionCall{Token: tok, Name: name, Arguments: args}
}
