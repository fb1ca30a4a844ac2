package rawstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/instream"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/status"
)

func collect(s *Scanner) *[]event.Event {
	events := &[]event.Event{}
	s.Subscribe(nil, func(ctx any, e *event.Event) status.Status {
		*events = append(*events, e.Clone())
		return status.OK
	})
	return events
}

// S1: input "a\nb" -> RawChar('a' @1:1), RawChar('\n' @1:2), RawChar('b' @2:1), Eof.
func TestS1SingleStream(t *testing.T) {
	s := New()
	events := collect(s)

	add := message.AddInputStream("f.c", instream.FromString("a\nb"))
	require.True(t, s.Handle(nil, &add).Ok())

	run := message.Run()
	require.True(t, s.Handle(nil, &run).Ok())

	require.Len(t, *events, 4)
	got := *events
	assert.Equal(t, event.KindRawChar, got[0].Kind)
	assert.Equal(t, byte('a'), got[0].Byte)
	assert.Equal(t, 1, got[0].Cursor.BeginLine)
	assert.Equal(t, 1, got[0].Cursor.BeginCol)

	assert.Equal(t, byte('\n'), got[1].Byte)
	assert.Equal(t, 1, got[1].Cursor.BeginLine)
	assert.Equal(t, 2, got[1].Cursor.BeginCol)

	assert.Equal(t, byte('b'), got[2].Byte)
	assert.Equal(t, 2, got[2].Cursor.BeginLine)
	assert.Equal(t, 1, got[2].Cursor.BeginCol)

	assert.Equal(t, event.KindEOF, got[3].Kind)
}

func TestLIFOStackingForIncludeNesting(t *testing.T) {
	s := New()
	events := collect(s)

	outer := message.AddInputStream("outer.c", instream.FromString("O"))
	require.True(t, s.Handle(nil, &outer).Ok())
	inner := message.AddInputStream("inner.h", instream.FromString("I"))
	require.True(t, s.Handle(nil, &inner).Ok())

	run := message.Run()
	require.True(t, s.Handle(nil, &run).Ok())

	require.Len(t, *events, 3)
	got := *events
	assert.Equal(t, "inner.h", got[0].Cursor.Stream)
	assert.Equal(t, byte('I'), got[0].Byte)
	assert.Equal(t, "outer.c", got[1].Cursor.Stream)
	assert.Equal(t, byte('O'), got[1].Byte)
	assert.Equal(t, event.KindEOF, got[2].Kind)
}

func TestEmptyStackEmitsEofOnly(t *testing.T) {
	s := New()
	events := collect(s)
	run := message.Run()
	require.True(t, s.Handle(nil, &run).Ok())
	require.Len(t, *events, 1)
	assert.Equal(t, event.KindEOF, (*events)[0].Kind)
}

func TestUnrecognisedMessageIsRejected(t *testing.T) {
	s := New()
	sub := message.Subscribe(message.StageLineWrap, func(ctx any, e *event.Event) status.Status { return status.OK })
	got := s.Handle(nil, &sub)
	assert.Equal(t, status.UnhandledMessage, got)
}
