package table

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// Symbol is one declared variable: its type and where it was declared.
type Symbol struct {
	Name  string
	Type  types.TYPE_NAME
	Depth int // scope depth at declaration, 0 is outermost
	Decl  *source.Location
}

// ScopeStack tracks lexical scopes during analysis. Each block pushes a
// scope; lookup walks from the innermost scope outward, so an inner
// declaration shadows an outer one with the same name.
type ScopeStack struct {
	scopes []map[string]*Symbol
}

// NewScopeStack returns an empty stack. The analyzer pushes the function
// scope itself.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		scopes: make([]map[string]*Symbol, 0, 4),
	}
}

// Push opens a new innermost scope.
func (s *ScopeStack) Push() {
	s.scopes = append(s.scopes, make(map[string]*Symbol))
}

// Pop closes the innermost scope and discards its symbols.
func (s *ScopeStack) Pop() {
	if len(s.scopes) == 0 {
		return
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Depth returns the number of open scopes.
func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}

// Declare adds a symbol to the innermost scope. It fails when the same name
// is already declared in that scope; shadowing an outer scope is fine.
func (s *ScopeStack) Declare(name string, symbolType types.TYPE_NAME, decl *source.Location) (*Symbol, bool) {
	if len(s.scopes) == 0 {
		s.Push()
	}
	innermost := s.scopes[len(s.scopes)-1]
	if _, exists := innermost[name]; exists {
		return nil, false
	}
	sym := &Symbol{
		Name:  name,
		Type:  symbolType,
		Depth: len(s.scopes) - 1,
		Decl:  decl,
	}
	innermost[name] = sym
	return sym, true
}

// Lookup resolves a name against the open scopes, innermost first.
func (s *ScopeStack) Lookup(name string) (*Symbol, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if sym, ok := s.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal resolves a name in the innermost scope only.
func (s *ScopeStack) LookupLocal(name string) (*Symbol, bool) {
	if len(s.scopes) == 0 {
		return nil, false
	}
	sym, ok := s.scopes[len(s.scopes)-1][name]
	return sym, ok
}

// FuncSymbol is one declared function signature.
type FuncSymbol struct {
	Name       string
	ReturnType types.TYPE_NAME
	Params     []types.TYPE_NAME
	Decl       *source.Location
}

// FunctionTable holds the flat namespace of functions declared before main.
type FunctionTable struct {
	funcs map[string]*FuncSymbol
	order []string
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{
		funcs: make(map[string]*FuncSymbol),
		order: make([]string, 0),
	}
}

// Declare registers a function signature. It fails on a duplicate name.
func (t *FunctionTable) Declare(sym *FuncSymbol) bool {
	if _, exists := t.funcs[sym.Name]; exists {
		return false
	}
	t.funcs[sym.Name] = sym
	t.order = append(t.order, sym.Name)
	return true
}

// Lookup resolves a function by name.
func (t *FunctionTable) Lookup(name string) (*FuncSymbol, bool) {
	sym, ok := t.funcs[name]
	return sym, ok
}

// Names returns the declared function names in declaration order.
func (t *FunctionTable) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}
