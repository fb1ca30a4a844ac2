package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	c := At("f.c", 3, 5)
	assert.Equal(t, Cursor{Stream: "f.c", BeginLine: 3, BeginCol: 5, EndLine: 3, EndCol: 5}, c)
}

func TestSpan(t *testing.T) {
	a := At("f.c", 1, 1)
	b := At("f.c", 2, 4)
	got := a.Span(b)
	assert.Equal(t, Cursor{Stream: "f.c", BeginLine: 1, BeginCol: 1, EndLine: 2, EndCol: 4}, got)
}

func TestWithEnd(t *testing.T) {
	c := At("f.c", 1, 1).WithEnd(3, 9)
	assert.Equal(t, 1, c.BeginLine)
	assert.Equal(t, 3, c.EndLine)
	assert.Equal(t, 9, c.EndCol)
}

func TestString(t *testing.T) {
	assert.Equal(t, "f.c:1:1", At("f.c", 1, 1).String())
	assert.Equal(t, "f.c:1:1-2:4", At("f.c", 1, 1).Span(At("f.c", 2, 4)).String())
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name          string
		line, col     int
		b             byte
		wantL, wantC  int
	}{
		{"newline bumps line, resets column", 4, 7, '\n', 5, 1},
		{"ordinary byte bumps column", 4, 7, 'x', 4, 8},
		{"tab is not expanded", 4, 7, '\t', 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotL, gotC := Advance(tt.line, tt.col, tt.b)
			assert.Equal(t, tt.wantL, gotL)
			assert.Equal(t, tt.wantC, gotC)
		})
	}
}
