package source

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number, 1-based.
	Column int // Column number, 1-based.
	Index  int // Byte index into the source.
}

// Advance updates the Position by walking over the bytes of the matched text.
// Newlines increment the line number and reset the column; every other rune
// advances the column. The index always advances by the byte length.
func (p *Position) Advance(matched string) *Position {
	for _, char := range matched {
		if char == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Index += len(string(char))
	}
	return p
}
