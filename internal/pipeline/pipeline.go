package pipeline

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/ast"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/lexer"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/parser"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/phase"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/semantics/analyzer"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/semantics/table"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
)

// Options controls optional pipeline behavior.
type Options struct {
	// Debug dumps the token stream to stderr after scanning.
	Debug bool
}

// Result carries everything the front end produced for one source unit. The
// Phase field records how far the unit got; later artifacts are nil when an
// earlier phase cut the run short.
type Result struct {
	Tokens      []tokens.Token
	Program     *ast.Program
	Functions   *table.FunctionTable
	Diagnostics *diagnostics.Bag
	Phase       phase.UnitPhase
}

// Run drives one source unit through scanning, parsing and semantic
// analysis. Diagnostics never abort the run except when the scanner reports
// a truncated token stream, in which case parsing would only produce noise.
func Run(filepath, content string, opts Options) *Result {
	result := &Result{
		Diagnostics: diagnostics.NewBag(filepath),
		Phase:       phase.NotStarted,
	}
	result.Diagnostics.AddSourceContent(content)

	scanner := lexer.New(filepath, content, result.Diagnostics)
	result.Tokens = scanner.Tokenize(opts.Debug)
	result.Phase = phase.Scanned

	if scanner.Truncated() {
		return result
	}

	if !phase.CanAdvance(result.Phase, phase.Parsed) {
		return result
	}
	result.Program = parser.Parse(result.Tokens, filepath, result.Diagnostics)
	result.Phase = phase.Parsed

	result.Functions = analyzer.Analyze(result.Program, filepath, result.Diagnostics)
	result.Phase = phase.Analyzed

	return result
}
