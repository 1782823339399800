package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	locStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Emitter renders diagnostics for one source unit.
type Emitter struct {
	writer   io.Writer
	filepath string
	lines    []string
}

// NewEmitter creates an emitter over the unit's cached source lines.
func NewEmitter(w io.Writer, filepath string, lines []string) *Emitter {
	return &Emitter{
		writer:   w,
		filepath: filepath,
		lines:    lines,
	}
}

func (e *Emitter) severityStyle(s Severity) lipgloss.Style {
	switch s {
	case Error:
		return errorStyle
	case Warning:
		return warningStyle
	default:
		return infoStyle
	}
}

// Emit renders one diagnostic: header, source line with an underline marker,
// then notes and help.
func (e *Emitter) Emit(diag *Diagnostic) {
	style := e.severityStyle(diag.Severity)

	header := diag.Severity.String()
	if diag.Code != "" {
		header += "[" + diag.Code + "]"
	}
	fmt.Fprintf(e.writer, "%s: %s %s\n",
		style.Render(header),
		gutterStyle.Render("("+diag.Phase.String()+")"),
		diag.Message)

	e.printSpan(diag)

	for _, note := range diag.Notes {
		fmt.Fprintf(e.writer, "  %s %s\n", noteStyle.Render("= note:"), note.Message)
	}
	if diag.Help != "" {
		fmt.Fprintf(e.writer, "  %s %s\n", helpStyle.Render("= help:"), diag.Help)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) printSpan(diag *Diagnostic) {
	loc := diag.Location
	if loc == nil || loc.Start == nil {
		return
	}

	line := loc.Start.Line
	fmt.Fprintf(e.writer, " %s\n", locStyle.Render(fmt.Sprintf("--> %s:%d:%d", e.filepath, line, loc.Start.Column)))

	if line < 1 || line > len(e.lines) {
		return
	}
	sourceLine := e.lines[line-1]

	gutter := fmt.Sprintf("%d | ", line)
	fmt.Fprintf(e.writer, " %s%s\n", gutterStyle.Render(gutter), sourceLine)

	// Underline the span on its first line.
	padding := loc.Start.Column - 1
	length := 1
	if loc.End != nil && loc.End.Line == line && loc.End.Column > loc.Start.Column {
		length = loc.End.Column - loc.Start.Column
	}
	if padding < 0 {
		padding = 0
	}
	marker := "^"
	if length > 1 {
		marker = strings.Repeat("~", length)
	}
	fmt.Fprintf(e.writer, " %s%s%s\n",
		strings.Repeat(" ", len(gutter)),
		strings.Repeat(" ", padding),
		markerStyle.Render(marker))
}

// Summary prints the compilation outcome line.
func (e *Emitter) Summary(errors, warnings int) {
	if errors > 0 {
		msg := fmt.Sprintf("compilation failed with %d error(s)", errors)
		if warnings > 0 {
			msg += fmt.Sprintf(" and %d warning(s)", warnings)
		}
		fmt.Fprintln(e.writer, errorStyle.Render(msg))
	} else if warnings > 0 {
		fmt.Fprintln(e.writer, warningStyle.Render(fmt.Sprintf("compilation succeeded with %d warning(s)", warnings)))
	}
}
