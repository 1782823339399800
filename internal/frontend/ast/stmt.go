package ast

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// VarDecl represents a variable declaration: Type IDENT ( '=' Expr )? ';'
type VarDecl struct {
	DeclType types.TYPE_NAME // resolved from the datatype keyword
	Name     *IdentifierExpr
	Init     Expression // can be nil
	source.Location
}

func (v *VarDecl) INode()                {}
func (v *VarDecl) Stmt()                 {}
func (v *VarDecl) Loc() *source.Location { return &v.Location }

// AssignStmt represents an assignment: IDENT '=' Expr
type AssignStmt struct {
	Name  *IdentifierExpr
	Value Expression
	source.Location
}

func (a *AssignStmt) INode()                {}
func (a *AssignStmt) Stmt()                 {}
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// IfStmt represents an if statement with an optional else block.
type IfStmt struct {
	Cond Expression
	Then *Block
	Else *Block // can be nil
	source.Location
}

func (i *IfStmt) INode()                {}
func (i *IfStmt) Stmt()                 {}
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt represents a while loop.
type WhileStmt struct {
	Cond Expression
	Body *Block
	source.Location
}

func (w *WhileStmt) INode()                {}
func (w *WhileStmt) Stmt()                 {}
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// ForStmt represents a for loop: d7klf '(' Assignment ';' Expr ';' Assignment ')' Block
type ForStmt struct {
	Init   *AssignStmt
	Cond   Expression
	Update *AssignStmt
	Body   *Block
	source.Location
}

func (f *ForStmt) INode()                {}
func (f *ForStmt) Stmt()                 {}
func (f *ForStmt) Loc() *source.Location { return &f.Location }

// OutputStmt represents d7ktba3a '(' Expr ')' ';'
type OutputStmt struct {
	Value Expression
	source.Location
}

func (o *OutputStmt) INode()                {}
func (o *OutputStmt) Stmt()                 {}
func (o *OutputStmt) Loc() *source.Location { return &o.Location }

// InputStmt represents d7ked5al '(' IDENT ')' ';'
type InputStmt struct {
	Target *IdentifierExpr
	source.Location
}

func (i *InputStmt) INode()                {}
func (i *InputStmt) Stmt()                 {}
func (i *InputStmt) Loc() *source.Location { return &i.Location }

// ReturnStmt represents d7krg3 Expr? ';'
type ReturnStmt struct {
	Result Expression // can be nil
	source.Location
}

func (r *ReturnStmt) INode()                {}
func (r *ReturnStmt) Stmt()                 {}
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }

// ExprStmt represents a call used as a statement: IDENT '(' Args ')' ';'
type ExprStmt struct {
	Call *CallExpr
	source.Location
}

func (e *ExprStmt) INode()                {}
func (e *ExprStmt) Stmt()                 {}
func (e *ExprStmt) Loc() *source.Location { return &e.Location }
