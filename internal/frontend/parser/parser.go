package parser

import (
	"fmt"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/ast"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// Parser holds temporary state while building the AST for one source unit.
// It consumes the scanner's token sequence with one token of lookahead and
// never panics: grammar violations become diagnostics and the parser
// resynchronizes at the next statement boundary.
type Parser struct {
	tokens      []tokens.Token
	current     int
	diagnostics *diagnostics.Bag
	filepath    string
}

// Parse builds a best-effort Program from the token sequence. The caller
// decides whether a non-empty diagnostics list means a failed compile.
func Parse(toks []tokens.Token, filepath string, diag *diagnostics.Bag) *ast.Program {
	p := &Parser{
		tokens:      toks,
		current:     0,
		diagnostics: diag,
		filepath:    filepath,
	}
	return p.parseProgram()
}

// parseProgram: { FuncDecl } MainFunction EOF
func (p *Parser) parseProgram() *ast.Program {
	program := &ast.Program{
		Funcs: []*ast.FuncDecl{},
	}
	start := p.peek().Start

	for p.peek().Is(tokens.DATATYPE_TOKEN) {
		if fn := p.parseFuncDecl(); fn != nil {
			program.Funcs = append(program.Funcs, fn)
		}
	}

	if p.peek().Subtype != tokens.MAIN_FUNCTION {
		p.errorWithCode(diagnostics.ErrMissingMain,
			fmt.Sprintf("expected main function '%s', found '%s'", tokens.MAIN_LEXEME, p.peek().Lexeme))
		// Skip ahead: the main function may still be further down.
		for !p.isAtEnd() && p.peek().Subtype != tokens.MAIN_FUNCTION {
			p.advance()
		}
	}

	if p.peek().Subtype == tokens.MAIN_FUNCTION {
		program.Main = p.parseMainFunc()
	}

	if !p.isAtEnd() {
		p.errorWithCode(diagnostics.ErrTrailingInput,
			fmt.Sprintf("nothing allowed after the main function, found '%s'", p.peek().Lexeme))
	}

	program.Location = p.makeLocation(start)
	return program
}

// parseFuncDecl: Type IDENT '(' [ Param { ',' Param } ] ')' Block
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	typeTok := p.advance()
	retType, _ := types.FromLexeme(typeTok.Lexeme)

	name, ok := p.expectKind(tokens.IDENTIFIER_TOKEN, "function name")
	if !ok {
		return nil
	}

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}

	params := []ast.Param{}
	for !p.peek().IsLexeme(")") && !p.isAtEnd() {
		param, ok := p.parseParam()
		if !ok {
			return nil
		}
		params = append(params, param)
		if p.peek().IsLexeme(",") {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expectLexeme(")"); !ok {
		return nil
	}

	body := p.parseBlock()

	return &ast.FuncDecl{
		ReturnType: retType,
		Name:       p.identifier(name),
		Params:     params,
		Body:       body,
		Location:   p.makeLocation(typeTok.Start),
	}
}

// parseParam: Type IDENT
func (p *Parser) parseParam() (ast.Param, bool) {
	typeTok, ok := p.expectKind(tokens.DATATYPE_TOKEN, "parameter type")
	if !ok {
		return ast.Param{}, false
	}
	paramType, _ := types.FromLexeme(typeTok.Lexeme)

	name, ok := p.expectKind(tokens.IDENTIFIER_TOKEN, "parameter name")
	if !ok {
		return ast.Param{}, false
	}

	return ast.Param{Type: paramType, Name: p.identifier(name)}, true
}

// parseMainFunc: d7kbdaya '(' ')' Block
func (p *Parser) parseMainFunc() *ast.MainFunc {
	start := p.advance().Start

	p.expectLexeme("(")
	p.expectLexeme(")")

	body := p.parseBlock()

	return &ast.MainFunc{
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseBlock: '{' { Statement } '}'
func (p *Parser) parseBlock() *ast.Block {
	start := p.peek().Start
	p.expectLexeme("{")

	stmts := []ast.Statement{}
	for !p.isAtEnd() && !p.peek().IsLexeme("}") {
		if stmt := p.parseStmt(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	p.expectLexeme("}")

	return &ast.Block{
		Stmts:    stmts,
		Location: p.makeLocation(start),
	}
}

// parseStmt dispatches on the current token. Unknown statement starts are
// reported once and skipped to the next statement boundary.
func (p *Parser) parseStmt() ast.Statement {
	tok := p.peek()

	if tok.Is(tokens.DATATYPE_TOKEN) {
		return p.parseVarDecl()
	}

	if tok.Is(tokens.IDENTIFIER_TOKEN) {
		if p.next().IsLexeme("(") {
			return p.parseCallStmt()
		}
		return p.parseAssignStmt()
	}

	if tok.Is(tokens.KEYWORD_TOKEN) {
		switch tok.Subtype {
		case tokens.IF_STATEMENT:
			return p.parseIfStmt()
		case tokens.WHILE_LOOP:
			return p.parseWhileStmt()
		case tokens.FOR_LOOP:
			return p.parseForStmt()
		case tokens.OUTPUT:
			return p.parseOutputStmt()
		case tokens.INPUT:
			return p.parseInputStmt()
		case tokens.RETURN_STATEMENT:
			return p.parseReturnStmt()
		}
	}

	if tok.IsLexeme(";") {
		// Stray semicolon, harmless.
		p.advance()
		return nil
	}

	p.errorWithCode(diagnostics.ErrUnexpectedToken,
		fmt.Sprintf("unexpected token '%s', expected a statement", tok.Lexeme))
	// Consume the offending token before resynchronizing. synchronize stops
	// at statement boundaries without consuming, and this token may itself be
	// one (a stray d7kbdaya), so skipping it is what guarantees progress.
	p.advance()
	p.synchronize()
	return nil
}

// parseVarDecl: Type IDENT ( '=' Expr )? ';'
func (p *Parser) parseVarDecl() ast.Statement {
	typeTok := p.advance()
	declType, _ := types.FromLexeme(typeTok.Lexeme)

	name, ok := p.expectKind(tokens.IDENTIFIER_TOKEN, "variable name")
	if !ok {
		return nil
	}

	var init ast.Expression
	if p.peek().IsLexeme("=") {
		p.advance()
		init = p.parseExpr()
	}

	p.expectLexeme(";")

	return &ast.VarDecl{
		DeclType: declType,
		Name:     p.identifier(name),
		Init:     init,
		Location: p.makeLocation(typeTok.Start),
	}
}

// parseAssignStmt: IDENT '=' Expr ';'
func (p *Parser) parseAssignStmt() ast.Statement {
	assign := p.parseAssignment()
	if assign == nil {
		return nil
	}
	p.expectLexeme(";")
	return assign
}

// parseAssignment: IDENT '=' Expr  (no terminator; shared with for-clauses)
func (p *Parser) parseAssignment() *ast.AssignStmt {
	name, ok := p.expectKind(tokens.IDENTIFIER_TOKEN, "variable name")
	if !ok {
		return nil
	}
	if _, ok := p.expectLexeme("="); !ok {
		return nil
	}
	value := p.parseExpr()

	return &ast.AssignStmt{
		Name:     p.identifier(name),
		Value:    value,
		Location: p.makeLocation(name.Start),
	}
}

// parseCallStmt: IDENT '(' [ Expr { ',' Expr } ] ')' ';'
func (p *Parser) parseCallStmt() ast.Statement {
	call := p.parseCallExpr()
	if call == nil {
		return nil
	}
	p.expectLexeme(";")
	return &ast.ExprStmt{
		Call:     call,
		Location: call.Location,
	}
}

// parseIfStmt: d7klo '(' Expr ')' Block ( d7k8er Block )?
func (p *Parser) parseIfStmt() ast.Statement {
	start := p.advance().Start

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}
	cond := p.parseExpr()
	p.expectLexeme(")")

	then := p.parseBlock()

	var elseBlock *ast.Block
	if p.peek().Subtype == tokens.ELSE_BLOCK {
		p.advance()
		elseBlock = p.parseBlock()
	}

	return &ast.IfStmt{
		Cond:     cond,
		Then:     then,
		Else:     elseBlock,
		Location: p.makeLocation(start),
	}
}

// parseWhileStmt: d7kdw5ny '(' Expr ')' Block
func (p *Parser) parseWhileStmt() ast.Statement {
	start := p.advance().Start

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}
	cond := p.parseExpr()
	p.expectLexeme(")")

	body := p.parseBlock()

	return &ast.WhileStmt{
		Cond:     cond,
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseForStmt: d7klf '(' Assignment ';' Expr ';' Assignment ')' Block
func (p *Parser) parseForStmt() ast.Statement {
	start := p.advance().Start

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}
	init := p.parseAssignment()
	p.expectLexeme(";")
	cond := p.parseExpr()
	p.expectLexeme(";")
	update := p.parseAssignment()
	p.expectLexeme(")")

	body := p.parseBlock()

	return &ast.ForStmt{
		Init:     init,
		Cond:     cond,
		Update:   update,
		Body:     body,
		Location: p.makeLocation(start),
	}
}

// parseOutputStmt: d7ktba3a '(' Expr ')' ';'
func (p *Parser) parseOutputStmt() ast.Statement {
	start := p.advance().Start

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}
	value := p.parseExpr()
	p.expectLexeme(")")
	p.expectLexeme(";")

	return &ast.OutputStmt{
		Value:    value,
		Location: p.makeLocation(start),
	}
}

// parseInputStmt: d7ked5al '(' IDENT ')' ';'
func (p *Parser) parseInputStmt() ast.Statement {
	start := p.advance().Start

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}
	name, ok := p.expectKind(tokens.IDENTIFIER_TOKEN, "variable name")
	if !ok {
		return nil
	}
	p.expectLexeme(")")
	p.expectLexeme(";")

	return &ast.InputStmt{
		Target:   p.identifier(name),
		Location: p.makeLocation(start),
	}
}

// parseReturnStmt: d7krg3 Expr? ';'
func (p *Parser) parseReturnStmt() ast.Statement {
	start := p.advance().Start

	var result ast.Expression
	if !p.peek().IsLexeme(";") {
		result = p.parseExpr()
	}
	p.expectLexeme(";")

	return &ast.ReturnStmt{
		Result:   result,
		Location: p.makeLocation(start),
	}
}
