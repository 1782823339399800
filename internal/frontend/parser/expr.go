package parser

import (
	"fmt"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/ast"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
)

// Expression grammar, lowest precedence first. Every level is
// left-associative and delegates its operands to the next level up:
//
//	Expr       -> Equality
//	Equality   -> Relational { ( '==' | '!=' ) Relational }
//	Relational -> Additive { ( '<' | '>' | '<=' | '>=' ) Additive }
//	Additive   -> Term { ( '+' | '-' ) Term }
//	Term       -> Primary { ( '*' | '/' ) Primary }
//	Primary    -> NUMBER | STRING | BOOL | IDENT | Call | '(' Expr ')'

func (p *Parser) parseExpr() ast.Expression {
	return p.parseEquality()
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()

	for p.matchLexeme("==", "!=") {
		op := p.advance()
		right := p.parseRelational()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.spanFrom(left),
		}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()

	for p.matchLexeme("<", ">", "<=", ">=") {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.spanFrom(left),
		}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseTerm()

	for p.matchLexeme("+", "-") {
		op := p.advance()
		right := p.parseTerm()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.spanFrom(left),
		}
	}
	return left
}

func (p *Parser) parseTerm() ast.Expression {
	left := p.parsePrimary()

	for p.matchLexeme("*", "/") {
		op := p.advance()
		right := p.parsePrimary()
		left = &ast.BinaryExpr{
			X:        left,
			Op:       op,
			Y:        right,
			Location: p.spanFrom(left),
		}
	}
	return left
}

// parsePrimary never returns nil. When the current token cannot start an
// expression it reports once and leaves an Invalid placeholder without
// consuming the token, so the enclosing statement can still close normally.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()

	switch tok.Kind {
	case tokens.NUMBER_TOKEN:
		p.advance()
		kind := ast.NUMBER
		if tok.Subtype == tokens.DECIMAL_LITERAL {
			kind = ast.DECIMAL
		}
		return &ast.BasicLit{
			Kind:     kind,
			Value:    tok.Lexeme,
			Location: p.makeLocation(tok.Start),
		}

	case tokens.STRING_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.STRING,
			Value:    tok.StringValue(),
			Location: p.makeLocation(tok.Start),
		}

	case tokens.BOOL_TOKEN:
		p.advance()
		return &ast.BasicLit{
			Kind:     ast.BOOL,
			Value:    tok.Lexeme,
			Location: p.makeLocation(tok.Start),
		}

	case tokens.IDENTIFIER_TOKEN:
		if p.next().IsLexeme("(") {
			if call := p.parseCallExpr(); call != nil {
				return call
			}
			return p.invalidExpr(tok)
		}
		name := p.advance()
		return p.identifier(name)
	}

	if tok.IsLexeme("(") {
		p.advance()
		expr := p.parseExpr()
		p.expectLexeme(")")
		return expr
	}

	p.errorWithCode(diagnostics.ErrInvalidExpression,
		fmt.Sprintf("expected expression, found '%s'", tok.Lexeme))
	return p.invalidExpr(tok)
}

// parseCallExpr: IDENT '(' [ Expr { ',' Expr } ] ')'
func (p *Parser) parseCallExpr() *ast.CallExpr {
	name := p.advance()

	if _, ok := p.expectLexeme("("); !ok {
		return nil
	}

	args := []ast.Expression{}
	for !p.peek().IsLexeme(")") && !p.isAtEnd() {
		args = append(args, p.parseExpr())
		if p.peek().IsLexeme(",") {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expectLexeme(")"); !ok {
		return nil
	}

	return &ast.CallExpr{
		Name:     p.identifier(name),
		Args:     args,
		Location: p.makeLocation(name.Start),
	}
}
