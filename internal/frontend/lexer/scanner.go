package lexer

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/diagnostics"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/tokens"
)

type regexHandler func(s *Scanner, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// Scanner converts D7K source text into a token sequence. Patterns are tried
// in order at the cursor; the first anchored match wins, so multi-character
// operators sit above their single-character prefixes and keywords are
// resolved by table lookup after generic identifier matching.
type Scanner struct {
	diagnostics *diagnostics.Bag
	Tokens      []tokens.Token
	Position    source.Position
	sourceCode  []byte
	patterns    []regexPattern
	FilePath    string
	truncated   bool
}

func (s *Scanner) advance(match string) {
	s.Position.Advance(match)
}

func (s *Scanner) push(token tokens.Token) {
	s.Tokens = append(s.Tokens, token)
}

func (s *Scanner) remainder() string {
	return string(s.sourceCode)[s.Position.Index:]
}

func (s *Scanner) atEOF() bool {
	return s.Position.Index >= len(s.sourceCode)
}

func New(filepath, content string, diag *diagnostics.Bag) *Scanner {
	s := &Scanner{
		sourceCode: []byte(content),
		Tokens:     make([]tokens.Token, 0),
		Position: source.Position{
			Line:   1,
			Column: 1,
			Index:  0,
		},

		diagnostics: diag,

		FilePath: filepath,

		patterns: []regexPattern{
			{regexp.MustCompile(`\s+`), skipHandler},                            // whitespace
			{regexp.MustCompile(`//[^\n]*`), skipHandler},                       // single line comments
			{regexp.MustCompile(`/\*[\s\S]*?\*/|/\*[\s\S]*`), blockCommentHandler},
			{regexp.MustCompile(`"[^"\n]*"?`), stringHandler},                   // string literals
			{regexp.MustCompile(`\d+(\.\d+)?`), numberHandler},                  // integer and decimal literals
			{regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_]*`), identifierHandler},   // identifiers, keywords, datatypes
			{regexp.MustCompile(`==`), operatorHandler("==")},
			{regexp.MustCompile(`!=`), operatorHandler("!=")},
			{regexp.MustCompile(`<=`), operatorHandler("<=")},
			{regexp.MustCompile(`>=`), operatorHandler(">=")},
			{regexp.MustCompile(`\+\+`), operatorHandler("++")},
			{regexp.MustCompile(`--`), operatorHandler("--")},
			{regexp.MustCompile(`\{`), symbolHandler("{")},
			{regexp.MustCompile(`\}`), symbolHandler("}")},
			{regexp.MustCompile(`\(`), symbolHandler("(")},
			{regexp.MustCompile(`\)`), symbolHandler(")")},
			{regexp.MustCompile(`\[`), symbolHandler("[")},
			{regexp.MustCompile(`\]`), symbolHandler("]")},
			{regexp.MustCompile(`;`), symbolHandler(";")},
			{regexp.MustCompile(`,`), symbolHandler(",")},
			{regexp.MustCompile(`\+`), symbolHandler("+")},
			{regexp.MustCompile(`-`), symbolHandler("-")},
			{regexp.MustCompile(`\*`), symbolHandler("*")},
			{regexp.MustCompile(`/`), symbolHandler("/")},
			{regexp.MustCompile(`<`), symbolHandler("<")},
			{regexp.MustCompile(`>`), symbolHandler(">")},
			{regexp.MustCompile(`=`), symbolHandler("=")},
		},
	}
	return s
}

func symbolHandler(lexeme string) regexHandler {
	return func(s *Scanner, _ *regexp.Regexp) {
		start := s.Position
		s.advance(lexeme)
		end := s.Position
		s.push(tokens.NewToken(tokens.SYMBOL_TOKEN, tokens.NO_SUBTYPE, lexeme, start, end))
	}
}

func operatorHandler(lexeme string) regexHandler {
	return func(s *Scanner, _ *regexp.Regexp) {
		start := s.Position
		s.advance(lexeme)
		end := s.Position
		s.push(tokens.NewToken(tokens.OPERATOR_TOKEN, tokens.NO_SUBTYPE, lexeme, start, end))
	}
}

func identifierHandler(s *Scanner, regex *regexp.Regexp) {
	identifier := regex.FindString(s.remainder())
	start := s.Position
	s.advance(identifier)
	end := s.Position

	if subtype, ok := tokens.Keyword(identifier); ok {
		s.push(tokens.NewToken(tokens.KEYWORD_TOKEN, subtype, identifier, start, end))
		return
	}
	if subtype, ok := tokens.Datatype(identifier); ok {
		s.push(tokens.NewToken(tokens.DATATYPE_TOKEN, subtype, identifier, start, end))
		return
	}
	if tokens.IsBoolLiteral(identifier) {
		s.push(tokens.NewToken(tokens.BOOL_TOKEN, tokens.NO_SUBTYPE, identifier, start, end))
		return
	}
	s.push(tokens.NewToken(tokens.IDENTIFIER_TOKEN, tokens.NO_SUBTYPE, identifier, start, end))
}

func numberHandler(s *Scanner, regex *regexp.Regexp) {
	match := regex.FindString(s.remainder())
	start := s.Position
	s.advance(match)
	end := s.Position

	subtype := tokens.INTEGER_LITERAL
	if strings.Contains(match, ".") {
		subtype = tokens.DECIMAL_LITERAL
	}
	s.push(tokens.NewToken(tokens.NUMBER_TOKEN, subtype, match, start, end))
}

func stringHandler(s *Scanner, regex *regexp.Regexp) {
	match := regex.FindString(s.remainder())
	start := s.Position
	s.advance(match)
	end := s.Position

	if len(match) < 2 || !strings.HasSuffix(match, `"`) {
		// Opening quote with no close before end of line. Report once at the
		// quote and keep scanning on the next line.
		s.diagnostics.Add(
			diagnostics.NewError(diagnostics.Lexical, "unterminated string literal").
				WithCode(diagnostics.ErrUnterminatedString).
				WithLocation(source.NewLocation(&s.FilePath, &start, &end)).
				WithHelp(`close the literal with a matching "`),
		)
		s.truncated = true
		return
	}
	s.push(tokens.NewToken(tokens.STRING_TOKEN, tokens.NO_SUBTYPE, match, start, end))
}

func blockCommentHandler(s *Scanner, regex *regexp.Regexp) {
	match := regex.FindString(s.remainder())
	start := s.Position
	s.advance(match)
	end := s.Position

	if !strings.HasSuffix(match, "*/") {
		// The unterminated alternative swallowed everything to end of input,
		// so scanning stops here by construction.
		s.diagnostics.Add(
			diagnostics.NewError(diagnostics.Lexical, "unterminated block comment").
				WithCode(diagnostics.ErrUnterminatedComment).
				WithLocation(source.NewLocation(&s.FilePath, &start, &end)).
				WithHelp("close the comment with */"),
		)
		s.truncated = true
	}
}

// skipHandler consumes text that produces no token.
func skipHandler(s *Scanner, regex *regexp.Regexp) {
	match := regex.FindString(s.remainder())
	s.advance(match)
}

// Tokenize scans the whole source unit. Unrecognized characters are reported
// and skipped so one pass surfaces every lexical error.
func (s *Scanner) Tokenize(debug bool) []tokens.Token {

	for !s.atEOF() {

		matched := false

		for _, pattern := range s.patterns {

			loc := pattern.regex.FindStringIndex(s.remainder())

			if loc != nil && loc[0] == 0 {
				pattern.handler(s, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			bad := []rune(s.remainder())[0]
			pos := s.Position
			s.diagnostics.Add(
				diagnostics.NewError(diagnostics.Lexical, fmt.Sprintf("unrecognized character '%c'", bad)).
					WithCode(diagnostics.ErrUnexpectedCharacter).
					WithLocation(source.NewLocation(&s.FilePath, &pos, &pos)),
			)
			// Skip the bad character and continue to find more errors.
			s.advance(string(bad))
		}
	}

	s.push(tokens.NewToken(tokens.EOF_TOKEN, tokens.NO_SUBTYPE, "end of file", s.Position, s.Position))

	if debug {
		for _, token := range s.Tokens {
			fmt.Fprintf(os.Stderr, "%s:%d:%d %s %s %q\n",
				s.FilePath, token.Start.Line, token.Start.Column, token.Kind, token.Subtype, token.Lexeme)
		}
	}

	return s.Tokens
}

// Truncated reports whether an unterminated string or comment cut the token
// stream short. The pipeline skips parsing for a truncated unit.
func (s *Scanner) Truncated() bool {
	return s.truncated
}
