package diagnostics

import (
	"io"
	"os"
	"sync"
)

// Bag collects diagnostics across all phases of one compilation unit.
type Bag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	filepath    string
	sourceLines []string
}

// NewBag creates a new diagnostic bag for a source unit.
func NewBag(filepath string) *Bag {
	return &Bag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// AddSourceContent caches the unit's source text so the emitter can render
// the offending lines without touching the filesystem.
func (b *Bag) AddSourceContent(content string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sourceLines = splitLines(content)
}

func splitLines(content string) []string {
	lines := make([]string, 0)
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// Add adds a diagnostic to the bag.
func (b *Bag) Add(diag *Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.diagnostics = append(b.diagnostics, diag)

	switch diag.Severity {
	case Error:
		b.errorCount++
	case Warning:
		b.warnCount++
	}
}

// HasErrors returns true if there are any errors.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount > 0
}

// ErrorCount returns the number of errors.
func (b *Bag) ErrorCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errorCount
}

// WarningCount returns the number of warnings.
func (b *Bag) WarningCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.warnCount
}

// Diagnostics returns a copy of all diagnostics.
func (b *Bag) Diagnostics() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]*Diagnostic, len(b.diagnostics))
	copy(result, b.diagnostics)
	return result
}

// ByPhase returns the diagnostics produced by one phase, in source order.
func (b *Bag) ByPhase(phase Phase) []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]*Diagnostic, 0)
	for _, d := range b.diagnostics {
		if d.Phase == phase {
			result = append(result, d)
		}
	}
	return result
}

// EmitAll renders every diagnostic plus a summary to stderr.
func (b *Bag) EmitAll() {
	b.EmitAllTo(os.Stderr)
}

// EmitAllTo renders every diagnostic plus a summary to the given writer.
func (b *Bag) EmitAllTo(w io.Writer) {
	b.mu.Lock()
	diagnostics := make([]*Diagnostic, len(b.diagnostics))
	copy(diagnostics, b.diagnostics)
	lines := b.sourceLines
	filepath := b.filepath
	b.mu.Unlock()

	emitter := NewEmitter(w, filepath, lines)
	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}
	emitter.Summary(b.ErrorCount(), b.WarningCount())
}

// Clear removes all diagnostics.
func (b *Bag) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.diagnostics = make([]*Diagnostic, 0)
	b.errorCount = 0
	b.warnCount = 0
}
