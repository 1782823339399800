package diagnostics

import (
	"github.com/AhmedAdel7472/Compiler-Project-Team/internal/source"
)

// Phase identifies which analysis pass produced a diagnostic.
type Phase int

const (
	Lexical Phase = iota
	Syntax
	Semantic
)

func (p Phase) String() string {
	switch p {
	case Lexical:
		return "LEXICAL"
	case Syntax:
		return "SYNTAX"
	case Semantic:
		return "SEMANTIC"
	default:
		return "UNKNOWN"
	}
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Note represents additional information attached to a diagnostic.
type Note struct {
	Message string
}

// Diagnostic is a structured error record: which phase flagged it, what went
// wrong, and where.
type Diagnostic struct {
	Phase    Phase
	Severity Severity
	Message  string
	Code     string // error code like "L0001"
	Location *source.Location
	Notes    []Note
	Help     string
}

// NewError creates a new error diagnostic for the given phase.
func NewError(phase Phase, message string) *Diagnostic {
	return &Diagnostic{
		Phase:    phase,
		Severity: Error,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// NewWarning creates a new warning diagnostic for the given phase.
func NewWarning(phase Phase, message string) *Diagnostic {
	return &Diagnostic{
		Phase:    phase,
		Severity: Warning,
		Message:  message,
		Notes:    make([]Note, 0),
	}
}

// WithCode sets the error code.
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithLocation attaches the offending source span.
func (d *Diagnostic) WithLocation(loc *source.Location) *Diagnostic {
	d.Location = loc
	return d
}

// WithNote adds a note to the diagnostic.
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Message: message})
	return d
}

// WithHelp sets a suggestion for fixing the error.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// Line returns the 1-based line of the offending span, 0 if unknown.
func (d *Diagnostic) Line() int {
	return d.Location.Line()
}
