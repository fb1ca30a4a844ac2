// Package cursor implements the position record threaded through every
// event in the pipeline: a stream name plus a begin/end line and column.
package cursor

import "fmt"

// Cursor is an immutable span within a named input stream. Lines and
// columns are 1-based. A Cursor for a single byte has Begin == End.
type Cursor struct {
	Stream               string
	BeginLine, BeginCol   int
	EndLine, EndCol       int
}

// At returns a single-position Cursor (Begin == End) at the given
// position.
func At(stream string, line, col int) Cursor {
	return Cursor{Stream: stream, BeginLine: line, BeginCol: col, EndLine: line, EndCol: col}
}

// Span returns a Cursor that begins where c begins and ends where other
// ends. Both must belong to the same stream; callers that span across a
// stream boundary (there should never be a reason to) get the receiver's
// stream name.
func (c Cursor) Span(other Cursor) Cursor {
	return Cursor{
		Stream:    c.Stream,
		BeginLine: c.BeginLine,
		BeginCol:  c.BeginCol,
		EndLine:   other.EndLine,
		EndCol:    other.EndCol,
	}
}

// WithEnd returns a copy of c with its end position replaced.
func (c Cursor) WithEnd(line, col int) Cursor {
	c.EndLine = line
	c.EndCol = col
	return c
}

func (c Cursor) String() string {
	if c.BeginLine == c.EndLine && c.BeginCol == c.EndCol {
		return fmt.Sprintf("%s:%d:%d", c.Stream, c.BeginLine, c.BeginCol)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", c.Stream, c.BeginLine, c.BeginCol, c.EndLine, c.EndCol)
}

// Advance returns the line and column that follow (line, col) once the
// byte b at that position has been consumed. A newline bumps the line and
// resets the column to 1; any other byte bumps the column. Tabs are not
// expanded, per the fixed column-advance rule of the pipeline.
func Advance(line, col int, b byte) (nextLine, nextCol int) {
	if b == '\n' {
		return line + 1, 1
	}
	return line, col + 1
}
