package source

import "fmt"

// Location represents a span of source code with start and end positions.
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions.
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

func (l *Location) String() string {
	if l.Start == nil || l.End == nil {
		return "location(unknown)"
	}
	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// Line returns the 1-based line the span starts on, or 0 for an unknown span.
func (l *Location) Line() int {
	if l == nil || l.Start == nil {
		return 0
	}
	return l.Start.Line
}
