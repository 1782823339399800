package ast

import (
	"encoding/json"
	"io"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// Block represents a braced statement list. Each Block opens a new lexical
// scope during semantic analysis.
type Block struct {
	Stmts []Statement
	source.Location
}

func (b *Block) INode()                {}
func (b *Block) Stmt()                 {}
func (b *Block) Loc() *source.Location { return &b.Location }

// Param is one typed parameter of a function declaration.
type Param struct {
	Type types.TYPE_NAME
	Name *IdentifierExpr
}

// FuncDecl represents a function declared before the main function:
// Type IDENT '(' Params? ')' Block
type FuncDecl struct {
	ReturnType types.TYPE_NAME
	Name       *IdentifierExpr
	Params     []Param
	Body       *Block
	source.Location
}

func (f *FuncDecl) INode()                {}
func (f *FuncDecl) Loc() *source.Location { return &f.Location }

// MainFunc represents the program entry point: d7kbdaya '(' ')' Block
type MainFunc struct {
	Body *Block
	source.Location
}

func (m *MainFunc) INode()                {}
func (m *MainFunc) Loc() *source.Location { return &m.Location }

// Program is the root of the syntax tree. A well-formed program has exactly
// one MainFunc; Funcs holds the declarations that precede it.
type Program struct {
	Funcs []*FuncDecl
	Main  *MainFunc
	source.Location
}

func (p *Program) INode()                {}
func (p *Program) Loc() *source.Location { return &p.Location }

// WriteJSON pretty-prints the tree as JSON, for the --ast dump.
func (p *Program) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(p)
}
