package commentscanner

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

func feed(t *testing.T, s *Scanner, in []event.Event) ([]event.Event, status.Status) {
	t.Helper()
	var got []event.Event
	s.Subscribe(nil, func(ctx any, e *event.Event) status.Status {
		got = append(got, e.Clone())
		return status.OK
	})
	var last status.Status
	for i := range in {
		last = s.onEvent(nil, &in[i])
		if !last.Ok() {
			return got, last
		}
	}
	return got, last
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

// S3: input "a/*c*/b" -> RawChar('a'), CommentBlockBegin, RawChar('c'), CommentBlockEnd, RawChar('b'), Eof.
func TestS3BlockComment(t *testing.T) {
	s := New(noopDownstream)
	in := append(chars("f.c", 1, "a/*c*/b"), event.EOF(cursor.At("f.c", 1, 8)))
	got, st := feed(t, s, in)
	require.True(t, st.Ok())

	kinds := kindsOf(got)
	assert.Equal(t, []event.Kind{
		event.KindRawChar,
		event.KindCommentBlockBegin,
		event.KindRawChar,
		event.KindCommentBlockEnd,
		event.KindRawChar,
		event.KindEOF,
	}, kinds)
	assert.Equal(t, byte('a'), got[0].Byte)
	assert.Equal(t, byte('c'), got[2].Byte)
	assert.Equal(t, byte('b'), got[4].Byte)
}

func TestLineComment(t *testing.T) {
	s := New(noopDownstream)
	in := append(chars("f.c", 1, "a//c\nb"), event.EOF(cursor.At("f.c", 2, 2)))
	got, st := feed(t, s, in)
	require.True(t, st.Ok())

	kinds := kindsOf(got)
	assert.Equal(t, []event.Kind{
		event.KindRawChar,
		event.KindCommentLineBegin,
		event.KindRawChar,
		event.KindCommentLineEnd,
		event.KindRawChar, // the newline itself, not consumed
		event.KindRawChar,
		event.KindEOF,
	}, kinds)
}

func TestSlashInsideStringIsNotAComment(t *testing.T) {
	s := New(noopDownstream)
	in := append(chars("f.c", 1, `"a/*b"`), event.EOF(cursor.At("f.c", 1, 7)))
	got, st := feed(t, s, in)
	require.True(t, st.Ok())

	for _, e := range got {
		if e.Kind == event.KindCommentBlockBegin {
			t.Fatalf("a '/' inside a string literal must not start a comment")
		}
	}
}

func TestUnterminatedBlockCommentAtEof(t *testing.T) {
	s := New(noopDownstream)
	in := append(chars("f.c", 1, "/*oops"), event.EOF(cursor.At("f.c", 1, 7)))
	_, st := feed(t, s, in)
	assert.Equal(t, status.CommentExpectingStarSlash, st)
}

func TestUnterminatedStringAtEof(t *testing.T) {
	s := New(noopDownstream)
	in := append(chars("f.c", 1, `"oops`), event.EOF(cursor.At("f.c", 1, 6)))
	_, st := feed(t, s, in)
	assert.Equal(t, status.CommentExpectingDoubleQuote, st)
}

func kindsOf(events []event.Event) []event.Kind {
	out := make([]event.Kind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
