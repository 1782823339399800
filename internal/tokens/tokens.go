package tokens

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
)

// KIND is the coarse token category produced by the scanner.
type KIND string

const (
	KEYWORD_TOKEN    KIND = "KEYWORD"
	DATATYPE_TOKEN   KIND = "DATATYPE"
	IDENTIFIER_TOKEN KIND = "IDENTIFIER"
	NUMBER_TOKEN     KIND = "NUMBER"
	STRING_TOKEN     KIND = "STRING"
	BOOL_TOKEN       KIND = "BOOL_LITERAL"
	SYMBOL_TOKEN     KIND = "SYMBOL"
	OPERATOR_TOKEN   KIND = "OPERATOR"
	EOF_TOKEN        KIND = "EOF"
)

// SUBTYPE is the finer classification for keywords and datatypes.
type SUBTYPE string

const (
	MAIN_FUNCTION    SUBTYPE = "MAIN_FUNCTION"
	IF_STATEMENT     SUBTYPE = "IF_STATEMENT"
	ELSE_BLOCK       SUBTYPE = "ELSE_BLOCK"
	WHILE_LOOP       SUBTYPE = "WHILE_LOOP"
	FOR_LOOP         SUBTYPE = "FOR_LOOP"
	RETURN_STATEMENT SUBTYPE = "RETURN_STATEMENT"
	OUTPUT           SUBTYPE = "OUTPUT"
	INPUT            SUBTYPE = "INPUT"

	INTEGER_TYPE SUBTYPE = "INTEGER_TYPE"
	DOUBLE_TYPE  SUBTYPE = "DOUBLE_TYPE"
	STRING_TYPE  SUBTYPE = "STRING_TYPE"
	BOOLEAN_TYPE SUBTYPE = "BOOLEAN_TYPE"

	INTEGER_LITERAL SUBTYPE = "INTEGER_LITERAL"
	DECIMAL_LITERAL SUBTYPE = "DECIMAL_LITERAL"

	NO_SUBTYPE SUBTYPE = ""
)

// D7K keyword lexemes. The scanner matches a generic identifier first and
// then consults this table, so keywords never match as a prefix of a longer
// identifier.
const (
	MAIN_LEXEME   = "d7kbdaya"
	OUTPUT_LEXEME = "d7ktba3a"
	INPUT_LEXEME  = "d7ked5al"
	IF_LEXEME     = "d7klo"
	ELSE_LEXEME   = "d7k8er"
	WHILE_LEXEME  = "d7kdw5ny"
	FOR_LEXEME    = "d7klf"
	RETURN_LEXEME = "d7krg3"
)

var keywordSubtypes = map[string]SUBTYPE{
	MAIN_LEXEME:   MAIN_FUNCTION,
	OUTPUT_LEXEME: OUTPUT,
	INPUT_LEXEME:  INPUT,
	IF_LEXEME:     IF_STATEMENT,
	ELSE_LEXEME:   ELSE_BLOCK,
	WHILE_LEXEME:  WHILE_LOOP,
	FOR_LEXEME:    FOR_LOOP,
	RETURN_LEXEME: RETURN_STATEMENT,
}

var datatypeSubtypes = map[string]SUBTYPE{
	"d7krqm":   INTEGER_TYPE,
	"d7k34ry":  DOUBLE_TYPE,
	"d7kmslsl": STRING_TYPE,
	"d7kmntq":  BOOLEAN_TYPE,
}

var boolLiterals = map[string]bool{
	"true":  true,
	"false": true,
}

// Keyword looks up an identifier lexeme in the keyword table.
func Keyword(lexeme string) (SUBTYPE, bool) {
	st, ok := keywordSubtypes[lexeme]
	return st, ok
}

// Datatype looks up an identifier lexeme in the datatype table.
func Datatype(lexeme string) (SUBTYPE, bool) {
	st, ok := datatypeSubtypes[lexeme]
	return st, ok
}

// IsBoolLiteral reports whether an identifier lexeme is `true` or `false`.
func IsBoolLiteral(lexeme string) bool {
	return boolLiterals[lexeme]
}

// Token is one classified unit of source text. Tokens are immutable once
// produced by the scanner.
type Token struct {
	Kind    KIND
	Subtype SUBTYPE
	Lexeme  string
	Start   source.Position
	End     source.Position
}

func NewToken(kind KIND, subtype SUBTYPE, lexeme string, start, end source.Position) Token {
	return Token{
		Kind:    kind,
		Subtype: subtype,
		Lexeme:  lexeme,
		Start:   start,
		End:     end,
	}
}

// Line returns the 1-based source line the token starts on.
func (t Token) Line() int {
	return t.Start.Line
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind KIND) bool {
	return t.Kind == kind
}

// IsLexeme reports whether the token matched the exact text.
func (t Token) IsLexeme(lexeme string) bool {
	return t.Lexeme == lexeme
}

// StringValue returns a string literal's content without the quote
// delimiters. For any other kind it returns the lexeme unchanged.
func (t Token) StringValue() string {
	if t.Kind == STRING_TOKEN && len(t.Lexeme) >= 2 {
		return t.Lexeme[1 : len(t.Lexeme)-1]
	}
	return t.Lexeme
}
