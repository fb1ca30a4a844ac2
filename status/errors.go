package status

import (
	"fmt"
	"strings"

	"github.com/cparselex/cparselex/cursor"
)

// PositionedError pairs a failure Status with the cursor it occurred
// at and a human-readable detail, mirroring sqlparser.Error in the
// donor.
type PositionedError struct {
	Status  Status
	Cursor  cursor.Cursor
	Message string
}

func (e PositionedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Cursor, e.Status, e.Message)
}

// Errors aggregates one PositionedError per failing input, the way
// the donor's SQLCodeParseErrors aggregates one sqlparser.Error per
// syntax error when a caller wants to keep going across several
// top-level files instead of stopping at the first failure.
type Errors struct {
	Errors []PositionedError
}

func (e *Errors) Add(err PositionedError) {
	e.Errors = append(e.Errors, err)
}

func (e Errors) HasErrors() bool { return len(e.Errors) > 0 }

func (e Errors) Error() string {
	var b strings.Builder
	b.WriteString("cparselex: errors:\n")
	for _, err := range e.Errors {
		b.WriteString("  ")
		b.WriteString(err.Error())
		b.WriteByte('\n')
	}
	return b.String()
}
