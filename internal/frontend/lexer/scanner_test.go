package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
)

func scan(source string) ([]tokens.Token, *diagnostics.Bag, bool) {
	bag := diagnostics.NewBag("test.d7k")
	scanner := New("test.d7k", source, bag)
	toks := scanner.Tokenize(false)
	return toks, bag, scanner.Truncated()
}

func kinds(toks []tokens.Token) []tokens.KIND {
	result := make([]tokens.KIND, len(toks))
	for i, tok := range toks {
		result[i] = tok.Kind
	}
	return result
}

func TestTokenizeBasicProgram(t *testing.T) {
	toks, bag, truncated := scan(`d7kbdaya() { d7krqm x = 5; d7ktba3a(x); }`)

	require.False(t, bag.HasErrors())
	require.False(t, truncated)
	assert.Equal(t, []tokens.KIND{
		tokens.KEYWORD_TOKEN,    // d7kbdaya
		tokens.SYMBOL_TOKEN,     // (
		tokens.SYMBOL_TOKEN,     // )
		tokens.SYMBOL_TOKEN,     // {
		tokens.DATATYPE_TOKEN,   // d7krqm
		tokens.IDENTIFIER_TOKEN, // x
		tokens.SYMBOL_TOKEN,     // =
		tokens.NUMBER_TOKEN,     // 5
		tokens.SYMBOL_TOKEN,     // ;
		tokens.KEYWORD_TOKEN,    // d7ktba3a
		tokens.SYMBOL_TOKEN,     // (
		tokens.IDENTIFIER_TOKEN, // x
		tokens.SYMBOL_TOKEN,     // )
		tokens.SYMBOL_TOKEN,     // ;
		tokens.SYMBOL_TOKEN,     // }
		tokens.EOF_TOKEN,
	}, kinds(toks))
}

func TestKeywordClassification(t *testing.T) {
	tests := []struct {
		lexeme  string
		kind    tokens.KIND
		subtype tokens.SUBTYPE
	}{
		{"d7kbdaya", tokens.KEYWORD_TOKEN, tokens.MAIN_FUNCTION},
		{"d7ktba3a", tokens.KEYWORD_TOKEN, tokens.OUTPUT},
		{"d7ked5al", tokens.KEYWORD_TOKEN, tokens.INPUT},
		{"d7klo", tokens.KEYWORD_TOKEN, tokens.IF_STATEMENT},
		{"d7k8er", tokens.KEYWORD_TOKEN, tokens.ELSE_BLOCK},
		{"d7kdw5ny", tokens.KEYWORD_TOKEN, tokens.WHILE_LOOP},
		{"d7klf", tokens.KEYWORD_TOKEN, tokens.FOR_LOOP},
		{"d7krg3", tokens.KEYWORD_TOKEN, tokens.RETURN_STATEMENT},
		{"d7krqm", tokens.DATATYPE_TOKEN, tokens.INTEGER_TYPE},
		{"d7k34ry", tokens.DATATYPE_TOKEN, tokens.DOUBLE_TYPE},
		{"d7kmslsl", tokens.DATATYPE_TOKEN, tokens.STRING_TYPE},
		{"d7kmntq", tokens.DATATYPE_TOKEN, tokens.BOOLEAN_TYPE},
		{"true", tokens.BOOL_TOKEN, tokens.NO_SUBTYPE},
		{"false", tokens.BOOL_TOKEN, tokens.NO_SUBTYPE},
		{"x", tokens.IDENTIFIER_TOKEN, tokens.NO_SUBTYPE},
		{"d7krqm2", tokens.IDENTIFIER_TOKEN, tokens.NO_SUBTYPE}, // keyword prefix, still an identifier
	}

	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			toks, bag, _ := scan(tt.lexeme)
			require.False(t, bag.HasErrors())
			require.Len(t, toks, 2) // token + EOF
			assert.Equal(t, tt.kind, toks[0].Kind)
			assert.Equal(t, tt.subtype, toks[0].Subtype)
			assert.Equal(t, tt.lexeme, toks[0].Lexeme)
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	toks, bag, _ := scan("5 3.14")

	require.False(t, bag.HasErrors())
	require.Len(t, toks, 3)
	assert.Equal(t, tokens.INTEGER_LITERAL, toks[0].Subtype)
	assert.Equal(t, tokens.DECIMAL_LITERAL, toks[1].Subtype)
}

func TestStringLiteral(t *testing.T) {
	toks, bag, _ := scan(`"hello world"`)

	require.False(t, bag.HasErrors())
	require.Len(t, toks, 2)
	assert.Equal(t, tokens.STRING_TOKEN, toks[0].Kind)
	assert.Equal(t, `"hello world"`, toks[0].Lexeme)
	assert.Equal(t, "hello world", toks[0].StringValue())
}

func TestMultiCharOperators(t *testing.T) {
	toks, bag, _ := scan("== != <= >= < > =")

	require.False(t, bag.HasErrors())
	lexemes := make([]string, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []string{"==", "!=", "<=", ">=", "<", ">", "="}, lexemes)
}

func TestCommentsAreSkipped(t *testing.T) {
	toks, bag, truncated := scan("// line comment\n/* block\ncomment */ 5")

	require.False(t, bag.HasErrors())
	require.False(t, truncated)
	require.Len(t, toks, 2)
	assert.Equal(t, tokens.NUMBER_TOKEN, toks[0].Kind)
	assert.Equal(t, 3, toks[0].Start.Line)
}

func TestUnterminatedString(t *testing.T) {
	toks, bag, truncated := scan("d7krqm x = \"oops\nd7krqm y = 2;")

	require.True(t, truncated)
	require.Equal(t, 1, bag.ErrorCount())

	diag := bag.Diagnostics()[0]
	assert.Equal(t, diagnostics.ErrUnterminatedString, diag.Code)
	assert.Equal(t, diagnostics.Lexical, diag.Phase)
	assert.Equal(t, 1, diag.Line())

	// Scanning resumes on the next line.
	var sawSecondLine bool
	for _, tok := range toks {
		if tok.Start.Line == 2 {
			sawSecondLine = true
		}
	}
	assert.True(t, sawSecondLine)
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag, truncated := scan("d7krqm x = 5; /* never closed")

	require.True(t, truncated)
	require.Equal(t, 1, bag.ErrorCount())
	assert.Equal(t, diagnostics.ErrUnterminatedComment, bag.Diagnostics()[0].Code)
}

func TestUnrecognizedCharacterRecovery(t *testing.T) {
	toks, bag, truncated := scan("d7krqm x @ = # 5;")

	require.False(t, truncated)
	assert.Equal(t, 2, bag.ErrorCount())
	for _, diag := range bag.Diagnostics() {
		assert.Equal(t, diagnostics.ErrUnexpectedCharacter, diag.Code)
	}

	// The bad characters are skipped, everything around them still tokenizes.
	assert.Equal(t, []tokens.KIND{
		tokens.DATATYPE_TOKEN,
		tokens.IDENTIFIER_TOKEN,
		tokens.SYMBOL_TOKEN, // =
		tokens.NUMBER_TOKEN,
		tokens.SYMBOL_TOKEN, // ;
		tokens.EOF_TOKEN,
	}, kinds(toks))
}

func TestPositionsAreTracked(t *testing.T) {
	toks, _, _ := scan("d7krqm x\nd7krqm y")

	require.Len(t, toks, 5)
	assert.Equal(t, 1, toks[0].Start.Line)
	assert.Equal(t, 1, toks[0].Start.Column)
	assert.Equal(t, 1, toks[1].Start.Line)
	assert.Equal(t, 8, toks[1].Start.Column)
	assert.Equal(t, 2, toks[2].Start.Line)
	assert.Equal(t, 1, toks[2].Start.Column)
}

func TestTokenizeIsDeterministic(t *testing.T) {
	source := `d7kbdaya() { d7krqm x = 5; d7klo (x < 10) { d7ktba3a("hi"); } }`

	first, _, _ := scan(source)
	second, _, _ := scan(source)
	assert.Equal(t, first, second)
}
