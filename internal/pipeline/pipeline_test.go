package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/frontend/ast"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/phase"
)

func TestRunCleanProgram(t *testing.T) {
	result := Run("test.d7k", `d7kbdaya() { d7krqm x = 5; d7ktba3a(x); }`, Options{})

	assert.Equal(t, phase.Analyzed, result.Phase)
	assert.False(t, result.Diagnostics.HasErrors())
	require.NotNil(t, result.Program)
	require.NotNil(t, result.Program.Main)
	require.Len(t, result.Program.Main.Body.Stmts, 2)
	assert.NotNil(t, result.Functions)
}

func TestRunSemanticError(t *testing.T) {
	result := Run("test.d7k", `d7kbdaya() { d7kmslsl s = 5; }`, Options{})

	assert.Equal(t, phase.Analyzed, result.Phase)
	semantic := result.Diagnostics.ByPhase(diagnostics.Semantic)
	require.Len(t, semantic, 1)
	assert.Contains(t, semantic[0].Message, "type mismatch: expected STRING, found NUMBER")
	assert.Equal(t, 1, semantic[0].Line())
}

func TestRunUndeclaredIdentifier(t *testing.T) {
	result := Run("test.d7k", `d7kbdaya() { x = 1; }`, Options{})

	semantic := result.Diagnostics.ByPhase(diagnostics.Semantic)
	require.Len(t, semantic, 1)
	assert.Contains(t, semantic[0].Message, "undeclared identifier: x")
}

func TestRunSyntaxErrorStillBuildsTree(t *testing.T) {
	result := Run("test.d7k", `d7kbdaya() { d7klo (1 > ) { } }`, Options{})

	assert.Equal(t, phase.Analyzed, result.Phase)
	require.Equal(t, 1, result.Diagnostics.ErrorCount())
	assert.Len(t, result.Diagnostics.ByPhase(diagnostics.Syntax), 1)

	require.NotNil(t, result.Program)
	require.Len(t, result.Program.Main.Body.Stmts, 1)
	_, ok := result.Program.Main.Body.Stmts[0].(*ast.IfStmt)
	assert.True(t, ok)
}

func TestRunSkipsParsingTruncatedUnit(t *testing.T) {
	result := Run("test.d7k", "d7kbdaya() { d7kmslsl s = \"oops\n}", Options{})

	assert.Equal(t, phase.Scanned, result.Phase)
	assert.Nil(t, result.Program)
	assert.Nil(t, result.Functions)
	require.Equal(t, 1, result.Diagnostics.ErrorCount())
	assert.Equal(t, diagnostics.ErrUnterminatedString, result.Diagnostics.Diagnostics()[0].Code)
}

func TestRunReportsAllPhasesInOnePass(t *testing.T) {
	// One lexical error (bad character), the rest of the program is intact
	// and still reaches semantic analysis.
	source := `d7kbdaya() { d7krqm x = 5 @; d7kmslsl s = 5; }`

	result := Run("test.d7k", source, Options{})

	assert.Equal(t, phase.Analyzed, result.Phase)
	assert.Len(t, result.Diagnostics.ByPhase(diagnostics.Lexical), 1)
	assert.Len(t, result.Diagnostics.ByPhase(diagnostics.Semantic), 1)
}
