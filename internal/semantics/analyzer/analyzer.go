package analyzer

import (
	"fmt"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/ast"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/semantics/table"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/types"
)

// Analyzer walks the syntax tree once, resolving every identifier against
// the scope stack and annotating every expression with its type. It never
// stops at the first error: erroneous expressions get TYPE_UNKNOWN, which
// suppresses follow-on reports about the same subtree.
type Analyzer struct {
	diagnostics *diagnostics.Bag
	filepath    string
	functions   *table.FunctionTable
	scopes      *table.ScopeStack

	// currentReturn is the declared return type of the function body being
	// analyzed. TYPE_VOID means the main function.
	currentReturn types.TYPE_NAME
	inMain        bool
}

// Analyze type-checks a program and returns the populated function table.
func Analyze(program *ast.Program, filepath string, diag *diagnostics.Bag) *table.FunctionTable {
	a := &Analyzer{
		diagnostics: diag,
		filepath:    filepath,
		functions:   table.NewFunctionTable(),
		scopes:      table.NewScopeStack(),
	}

	// Signatures first, so calls between functions resolve regardless of
	// declaration order.
	for _, fn := range program.Funcs {
		a.declareFunction(fn)
	}

	for _, fn := range program.Funcs {
		a.analyzeFunction(fn)
	}

	if program.Main != nil {
		a.analyzeMain(program.Main)
	}

	return a.functions
}

func (a *Analyzer) declareFunction(fn *ast.FuncDecl) {
	if fn.Name == nil {
		return
	}
	params := make([]types.TYPE_NAME, len(fn.Params))
	for i, param := range fn.Params {
		params[i] = param.Type
	}
	sym := &table.FuncSymbol{
		Name:       fn.Name.Name,
		ReturnType: fn.ReturnType,
		Params:     params,
		Decl:       fn.Loc(),
	}
	if !a.functions.Declare(sym) {
		a.errorAt(diagnostics.ErrDuplicateSymbol,
			fmt.Sprintf("duplicate declaration of '%s'", fn.Name.Name), fn.Loc())
	}
}

func (a *Analyzer) analyzeFunction(fn *ast.FuncDecl) {
	a.currentReturn = fn.ReturnType
	a.inMain = false

	// Parameters live in the same scope as the body's top level.
	a.scopes.Push()
	for _, param := range fn.Params {
		if param.Name == nil {
			continue
		}
		if _, ok := a.scopes.Declare(param.Name.Name, param.Type, param.Name.Loc()); !ok {
			a.errorAt(diagnostics.ErrDuplicateSymbol,
				fmt.Sprintf("duplicate declaration of '%s'", param.Name.Name), param.Name.Loc())
		}
		param.Name.Type = param.Type
	}
	if fn.Body != nil {
		for _, stmt := range fn.Body.Stmts {
			a.analyzeStmt(stmt)
		}
	}
	a.scopes.Pop()
}

func (a *Analyzer) analyzeMain(main *ast.MainFunc) {
	a.currentReturn = types.TYPE_VOID
	a.inMain = true

	a.scopes.Push()
	if main.Body != nil {
		for _, stmt := range main.Body.Stmts {
			a.analyzeStmt(stmt)
		}
	}
	a.scopes.Pop()
}

// analyzeBlock opens a fresh scope for a nested block.
func (a *Analyzer) analyzeBlock(block *ast.Block) {
	if block == nil {
		return
	}
	a.scopes.Push()
	for _, stmt := range block.Stmts {
		a.analyzeStmt(stmt)
	}
	a.scopes.Pop()
}

func (a *Analyzer) analyzeStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(s)
	case *ast.AssignStmt:
		a.analyzeAssign(s)
	case *ast.IfStmt:
		a.checkCondition(s.Cond)
		a.analyzeBlock(s.Then)
		a.analyzeBlock(s.Else)
	case *ast.WhileStmt:
		a.checkCondition(s.Cond)
		a.analyzeBlock(s.Body)
	case *ast.ForStmt:
		if s.Init != nil {
			a.analyzeAssign(s.Init)
		}
		a.checkCondition(s.Cond)
		if s.Update != nil {
			a.analyzeAssign(s.Update)
		}
		a.analyzeBlock(s.Body)
	case *ast.OutputStmt:
		a.analyzeExpr(s.Value)
	case *ast.InputStmt:
		a.analyzeInput(s)
	case *ast.ReturnStmt:
		a.analyzeReturn(s)
	case *ast.ExprStmt:
		if s.Call != nil {
			a.analyzeExpr(s.Call)
		}
	}
}

func (a *Analyzer) analyzeVarDecl(decl *ast.VarDecl) {
	var initType types.TYPE_NAME = types.TYPE_UNKNOWN
	if decl.Init != nil {
		initType = a.analyzeExpr(decl.Init)
	}

	if decl.Name == nil {
		return
	}
	if _, ok := a.scopes.Declare(decl.Name.Name, decl.DeclType, decl.Loc()); !ok {
		a.errorAt(diagnostics.ErrDuplicateSymbol,
			fmt.Sprintf("duplicate declaration of '%s'", decl.Name.Name), decl.Loc())
	}
	decl.Name.Type = decl.DeclType

	if decl.Init != nil && !types.Assignable(decl.DeclType, initType) {
		a.errorAt(diagnostics.ErrTypeMismatch,
			fmt.Sprintf("type mismatch: expected %s, found %s", decl.DeclType, initType), decl.Loc())
	}
}

func (a *Analyzer) analyzeAssign(assign *ast.AssignStmt) {
	valueType := a.analyzeExpr(assign.Value)

	if assign.Name == nil {
		return
	}
	sym, ok := a.scopes.Lookup(assign.Name.Name)
	if !ok {
		a.errorAt(diagnostics.ErrUndeclaredSymbol,
			fmt.Sprintf("undeclared identifier: %s", assign.Name.Name), assign.Name.Loc())
		assign.Name.Type = types.TYPE_UNKNOWN
		return
	}
	assign.Name.Type = sym.Type

	if !types.Assignable(sym.Type, valueType) {
		a.errorAt(diagnostics.ErrTypeMismatch,
			fmt.Sprintf("type mismatch: expected %s, found %s", sym.Type, valueType), assign.Loc())
	}
}

func (a *Analyzer) analyzeInput(input *ast.InputStmt) {
	if input.Target == nil {
		return
	}
	sym, ok := a.scopes.Lookup(input.Target.Name)
	if !ok {
		a.errorAt(diagnostics.ErrUndeclaredSymbol,
			fmt.Sprintf("undeclared identifier: %s", input.Target.Name), input.Target.Loc())
		input.Target.Type = types.TYPE_UNKNOWN
		return
	}
	input.Target.Type = sym.Type
}

func (a *Analyzer) analyzeReturn(ret *ast.ReturnStmt) {
	if a.inMain {
		if ret.Result != nil {
			a.analyzeExpr(ret.Result)
			a.errorAt(diagnostics.ErrInvalidReturn,
				"the main function cannot return a value", ret.Loc())
		}
		return
	}

	if ret.Result == nil {
		a.errorAt(diagnostics.ErrInvalidReturn,
			fmt.Sprintf("return value of type %s required", a.currentReturn), ret.Loc())
		return
	}
	resultType := a.analyzeExpr(ret.Result)
	if !types.Assignable(a.currentReturn, resultType) {
		a.errorAt(diagnostics.ErrTypeMismatch,
			fmt.Sprintf("type mismatch: expected %s, found %s", a.currentReturn, resultType), ret.Loc())
	}
}

// checkCondition requires a BOOL-typed controlling expression.
func (a *Analyzer) checkCondition(cond ast.Expression) {
	if cond == nil {
		return
	}
	condType := a.analyzeExpr(cond)
	if types.IsUnknown(condType) {
		return
	}
	if condType != types.TYPE_BOOL {
		a.errorAt(diagnostics.ErrInvalidCondition,
			fmt.Sprintf("condition must be %s, found %s", types.TYPE_BOOL, condType), cond.Loc())
	}
}

// analyzeExpr resolves an expression's type and records it on the node.
func (a *Analyzer) analyzeExpr(expr ast.Expression) types.TYPE_NAME {
	switch e := expr.(type) {
	case *ast.BasicLit:
		e.Type = literalType(e.Kind)
		return e.Type

	case *ast.IdentifierExpr:
		sym, ok := a.scopes.Lookup(e.Name)
		if !ok {
			a.errorAt(diagnostics.ErrUndeclaredSymbol,
				fmt.Sprintf("undeclared identifier: %s", e.Name), e.Loc())
			e.Type = types.TYPE_UNKNOWN
			return e.Type
		}
		e.Type = sym.Type
		return e.Type

	case *ast.BinaryExpr:
		e.Type = a.analyzeBinary(e)
		return e.Type

	case *ast.CallExpr:
		e.Type = a.analyzeCall(e)
		return e.Type

	case *ast.Invalid:
		return types.TYPE_UNKNOWN
	}
	return types.TYPE_UNKNOWN
}

func (a *Analyzer) analyzeBinary(bin *ast.BinaryExpr) types.TYPE_NAME {
	left := a.analyzeExpr(bin.X)
	right := a.analyzeExpr(bin.Y)

	if types.IsUnknown(left) || types.IsUnknown(right) {
		return types.TYPE_UNKNOWN
	}

	op := bin.Op.Lexeme
	switch op {
	case "+":
		if left == types.TYPE_STRING && right == types.TYPE_STRING {
			return types.TYPE_STRING
		}
		fallthrough
	case "-", "*", "/":
		if types.IsNumeric(left) && types.IsNumeric(right) {
			return types.Widen(left, right)
		}
		a.errorAt(diagnostics.ErrInvalidOperation,
			fmt.Sprintf("invalid operation: %s %s %s", left, op, right), bin.Loc())
		return types.TYPE_UNKNOWN

	case "==", "!=":
		if types.Comparable(left, right) {
			return types.TYPE_BOOL
		}
		a.errorAt(diagnostics.ErrInvalidOperation,
			fmt.Sprintf("invalid operation: %s %s %s", left, op, right), bin.Loc())
		return types.TYPE_UNKNOWN

	case "<", ">", "<=", ">=":
		if types.IsNumeric(left) && types.IsNumeric(right) {
			return types.TYPE_BOOL
		}
		a.errorAt(diagnostics.ErrInvalidOperation,
			fmt.Sprintf("invalid operation: %s %s %s", left, op, right), bin.Loc())
		return types.TYPE_UNKNOWN
	}
	return types.TYPE_UNKNOWN
}

func (a *Analyzer) analyzeCall(call *ast.CallExpr) types.TYPE_NAME {
	argTypes := make([]types.TYPE_NAME, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = a.analyzeExpr(arg)
	}

	if call.Name == nil {
		return types.TYPE_UNKNOWN
	}
	fn, ok := a.functions.Lookup(call.Name.Name)
	if !ok {
		a.errorAt(diagnostics.ErrUndeclaredFunction,
			fmt.Sprintf("undeclared function: %s", call.Name.Name), call.Loc())
		return types.TYPE_UNKNOWN
	}
	call.Name.Type = fn.ReturnType

	if len(argTypes) != len(fn.Params) {
		a.errorAt(diagnostics.ErrWrongArgumentCount,
			fmt.Sprintf("function '%s' expects %d argument(s), found %d",
				fn.Name, len(fn.Params), len(argTypes)), call.Loc())
		return fn.ReturnType
	}
	for i, paramType := range fn.Params {
		if !types.Assignable(paramType, argTypes[i]) {
			a.errorAt(diagnostics.ErrTypeMismatch,
				fmt.Sprintf("type mismatch: expected %s, found %s", paramType, argTypes[i]),
				call.Args[i].Loc())
		}
	}
	return fn.ReturnType
}

func literalType(kind ast.LiteralKind) types.TYPE_NAME {
	switch kind {
	case ast.NUMBER:
		return types.TYPE_NUMBER
	case ast.DECIMAL:
		return types.TYPE_DECIMAL
	case ast.STRING:
		return types.TYPE_STRING
	case ast.BOOL:
		return types.TYPE_BOOL
	}
	return types.TYPE_UNKNOWN
}

func (a *Analyzer) errorAt(code, msg string, loc *source.Location) {
	a.diagnostics.Add(
		diagnostics.NewError(diagnostics.Semantic, msg).
			WithCode(code).
			WithLocation(loc),
	)
}
