package parser

import (
	"fmt"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/ast"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
)

// peek returns the current token without consuming it.
func (p *Parser) peek() tokens.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// next returns the token after the current one. At the end of the stream it
// returns the EOF token.
func (p *Parser) next() tokens.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() tokens.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

// advance consumes and returns the current token. The EOF token is never
// consumed, so advance is always safe to call.
func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Is(tokens.EOF_TOKEN)
}

// matchLexeme reports whether the current token matches any of the given
// lexemes, without consuming it.
func (p *Parser) matchLexeme(lexemes ...string) bool {
	for _, lexeme := range lexemes {
		if p.peek().IsLexeme(lexeme) {
			return true
		}
	}
	return false
}

// expectLexeme consumes the current token if it matches. Otherwise it reports
// one diagnostic and resynchronizes at the next statement boundary.
func (p *Parser) expectLexeme(lexeme string) (tokens.Token, bool) {
	if p.peek().IsLexeme(lexeme) {
		return p.advance(), true
	}
	p.errorWithCode(diagnostics.ErrExpectedToken,
		fmt.Sprintf("expected '%s', found '%s'", lexeme, p.peek().Lexeme))
	p.synchronize()
	return p.peek(), false
}

// expectKind is expectLexeme for token categories. what names the expected
// construct in the diagnostic, e.g. "variable name".
func (p *Parser) expectKind(kind tokens.KIND, what string) (tokens.Token, bool) {
	if p.peek().Is(kind) {
		return p.advance(), true
	}
	p.errorWithCode(diagnostics.ErrExpectedToken,
		fmt.Sprintf("expected %s, found '%s'", what, p.peek().Lexeme))
	p.synchronize()
	return p.peek(), false
}

func (p *Parser) errorWithCode(code, msg string) {
	tok := p.peek()
	start := tok.Start
	end := tok.End
	p.diagnostics.Add(
		diagnostics.NewError(diagnostics.Syntax, msg).
			WithCode(code).
			WithLocation(source.NewLocation(&p.filepath, &start, &end)),
	)
}

// synchronize discards tokens until a likely statement boundary: a token that
// can start a statement, a consumed ';', or a '}' left for the enclosing
// block to close on.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		tok := p.peek()

		if tok.IsLexeme(";") {
			p.advance()
			return
		}
		if tok.IsLexeme("}") {
			return
		}
		if tok.Is(tokens.DATATYPE_TOKEN) || tok.Is(tokens.IDENTIFIER_TOKEN) {
			return
		}
		// d7kbdaya is a boundary too: a missing '}' before the main function
		// should not swallow main. parseStmt consumes it when it shows up in
		// statement position, so stopping here cannot stall the cursor.
		if tok.Is(tokens.KEYWORD_TOKEN) {
			switch tok.Subtype {
			case tokens.IF_STATEMENT, tokens.WHILE_LOOP, tokens.FOR_LOOP,
				tokens.OUTPUT, tokens.INPUT, tokens.RETURN_STATEMENT, tokens.MAIN_FUNCTION:
				return
			}
		}

		p.advance()
	}
}

// identifier wraps an identifier token as an AST node.
func (p *Parser) identifier(tok tokens.Token) *ast.IdentifierExpr {
	start := tok.Start
	end := tok.End
	return &ast.IdentifierExpr{
		Name:     tok.Lexeme,
		Location: *source.NewLocation(&p.filepath, &start, &end),
	}
}

// invalidExpr is the placeholder left behind when an expression cannot be
// parsed. The offending token stays in the stream for the statement to
// recover on.
func (p *Parser) invalidExpr(tok tokens.Token) ast.Expression {
	start := tok.Start
	end := tok.End
	return &ast.Invalid{
		Location: *source.NewLocation(&p.filepath, &start, &end),
	}
}

// makeLocation spans from the given start to the end of the last consumed
// token.
func (p *Parser) makeLocation(start source.Position) source.Location {
	end := p.previous().End
	if end.Index < start.Index {
		end = start
	}
	return *source.NewLocation(&p.filepath, &start, &end)
}

// spanFrom spans from an expression's start to the end of the last consumed
// token, for folding binary expressions.
func (p *Parser) spanFrom(left ast.Expression) source.Location {
	loc := left.Loc()
	if loc == nil || loc.Start == nil {
		return p.makeLocation(p.previous().Start)
	}
	return p.makeLocation(*loc.Start)
}
