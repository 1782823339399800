package ast

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// Node is the base interface for all AST nodes.
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value.
type Expression interface {
	Node
	Expr()
}

// Statement represents any node that performs an action.
type Statement interface {
	Node
	Stmt()
}

// TypeOf returns the type annotation the semantic analyzer attached to an
// expression, or TYPE_UNKNOWN for nodes it never reached.
func TypeOf(e Expression) types.TYPE_NAME {
	switch n := e.(type) {
	case *BinaryExpr:
		return n.Type
	case *BasicLit:
		return n.Type
	case *IdentifierExpr:
		return n.Type
	case *CallExpr:
		return n.Type
	default:
		return types.TYPE_UNKNOWN
	}
}
