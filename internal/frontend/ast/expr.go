package ast

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// LiteralKind distinguishes the literal forms of BasicLit.
type LiteralKind string

const (
	NUMBER  LiteralKind = "NUMBER"
	DECIMAL LiteralKind = "DECIMAL"
	STRING  LiteralKind = "STRING"
	BOOL    LiteralKind = "BOOL"
)

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	X    Expression      // left operand
	Op   tokens.Token    // operator
	Y    Expression      // right operand
	Type types.TYPE_NAME // populated during semantic analysis
	source.Location
}

func (b *BinaryExpr) INode()                {}
func (b *BinaryExpr) Expr()                 {}
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// BasicLit represents a literal of basic type (number, decimal, string, bool).
type BasicLit struct {
	Kind  LiteralKind
	Value string          // literal value without delimiters
	Type  types.TYPE_NAME // populated during semantic analysis
	source.Location
}

func (b *BasicLit) INode()                {}
func (b *BasicLit) Expr()                 {}
func (b *BasicLit) Loc() *source.Location { return &b.Location }

// IdentifierExpr represents a variable reference.
type IdentifierExpr struct {
	Name string
	Type types.TYPE_NAME // populated during semantic analysis, from the symbol table
	source.Location
}

func (i *IdentifierExpr) INode()                {}
func (i *IdentifierExpr) Expr()                 {}
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// CallExpr represents a function call expression.
type CallExpr struct {
	Name *IdentifierExpr // callee
	Args []Expression
	Type types.TYPE_NAME // declared return type, populated during semantic analysis
	source.Location
}

func (c *CallExpr) INode()                {}
func (c *CallExpr) Expr()                 {}
func (c *CallExpr) Loc() *source.Location { return &c.Location }

// Invalid is the placeholder the parser leaves behind when recovery discards
// an expression. The analyzer marks it erroneous and never reports on it.
type Invalid struct {
	source.Location
}

func (i *Invalid) INode()                {}
func (i *Invalid) Expr()                 {}
func (i *Invalid) Loc() *source.Location { return &i.Location }
