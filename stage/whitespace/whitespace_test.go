package whitespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/status"
)

func noopDownstream(ctx any, m *message.Message) status.Status { return status.OK }

func feed(t *testing.T, f *Filter, in []event.Event) []event.Event {
	t.Helper()
	var got []event.Event
	f.Subscribe(nil, func(ctx any, e *event.Event) status.Status {
		got = append(got, e.Clone())
		return status.OK
	})
	for i := range in {
		require.True(t, f.onEvent(nil, &in[i]).Ok())
	}
	return got
}

func chars(stream string, line int, s string) []event.Event {
	var out []event.Event
	col := 1
	for i := 0; i < len(s); i++ {
		out = append(out, event.RawChar(cursor.At(stream, line, col), s[i]))
		col++
	}
	return out
}

// S5a: input "a  \t b" -> RawChar('a'), Whitespace, RawChar('b'), Eof.
func TestS5NonNewlineRunCollapsesToWhitespace(t *testing.T) {
	f := New(noopDownstream)
	in := append(chars("f.c", 1, "a  \t b"), event.EOF(cursor.At("f.c", 1, 7)))
	got := feed(t, f, in)

	require.Len(t, got, 4)
	assert.Equal(t, event.KindRawChar, got[0].Kind)
	assert.Equal(t, event.KindWhitespace, got[1].Kind)
	assert.Equal(t, event.KindRawChar, got[2].Kind)
	assert.Equal(t, byte('b'), got[2].Byte)
	assert.Equal(t, event.KindEOF, got[3].Kind)
}

// S5b: input "a \n b" -> RawChar('a'), Newline, RawChar('b'), Eof.
func TestS5NewlineContainingRunCollapsesToNewline(t *testing.T) {
	f := New(noopDownstream)
	in := append(chars("f.c", 1, "a \n b"), event.EOF(cursor.At("f.c", 2, 3)))
	got := feed(t, f, in)

	require.Len(t, got, 4)
	assert.Equal(t, event.KindNewline, got[1].Kind)
}

func TestRunFlushedAtEof(t *testing.T) {
	f := New(noopDownstream)
	in := append(chars("f.c", 1, "a  "), event.EOF(cursor.At("f.c", 1, 4)))
	got := feed(t, f, in)

	require.Len(t, got, 3)
	assert.Equal(t, event.KindWhitespace, got[1].Kind)
	assert.Equal(t, event.KindEOF, got[2].Kind)
}
