// Package rawstack implements stage 0 of the pipeline: a LIFO of
// named input streams multiplexed into a single stream of positioned
// RawChar events, per spec.md §4.2.
package rawstack

import (
	"io"

	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/instream"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

// frame is one entry of the input-stream stack: a name, the stream
// itself, and the cursor position the next byte read from it will
// carry.
type frame struct {
	name   string
	stream instream.Stream
	line   int
	col    int
}

// Scanner is stage 0, the bottom of the pipeline. It owns the LIFO of
// input streams pushed via AddInputStream and is the only stage that
// either consumes a Message outright or rejects it with
// status.UnhandledMessage; there is no stage below it to forward to.
type Scanner struct {
	stack   []frame
	reactor stage.Reactor
}

var _ stage.Stage = (*Scanner)(nil)

// New returns an empty raw-stack scanner with no input streams.
func New() *Scanner {
	return &Scanner{}
}

// Subscribe attaches h to this stage's EventReactor.
func (s *Scanner) Subscribe(ctx any, h event.Handler) {
	s.reactor.Subscribe(ctx, h)
}

// Handle processes one downward Message.
func (s *Scanner) Handle(ctx any, m *message.Message) status.Status {
	switch m.Kind {
	case message.KindAddInputStream:
		s.push(m.StreamName, m.Stream)
		return status.OK
	case message.KindSubscribe:
		if m.Target != message.StageRawStack {
			return status.UnhandledMessage
		}
		s.Subscribe(ctx, m.Handler)
		return status.OK
	case message.KindRun:
		return s.drain(ctx)
	default:
		return status.UnhandledMessage
	}
}

// push adds a new frame on top of the stack. The cursor starts at
// (line=1, col=1), per spec.md §4.2.
func (s *Scanner) push(name string, stream instream.Stream) {
	s.stack = append(s.stack, frame{name: name, stream: stream, line: 1, col: 1})
}

// top returns the LIFO's current top frame, or nil if empty.
func (s *Scanner) top() *frame {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

// pop releases the top frame.
func (s *Scanner) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// drain runs the loop described in spec.md §4.2: read one byte from
// the top frame, broadcast it as a RawChar, advance the cursor; on a
// frame's clean EOF pop it and continue; when the stack is empty
// broadcast EOF once and return.
func (s *Scanner) drain(ctx any) status.Status {
	for {
		f := s.top()
		if f == nil {
			c := cursor.At("", 0, 0)
			evt := event.EOF(c)
			return s.reactor.Broadcast(&evt)
		}

		b, err := f.stream.ReadByte()
		if err == io.EOF {
			s.pop()
			continue
		}
		if err != nil {
			return status.InputStreamIoError
		}

		c := cursor.At(f.name, f.line, f.col)
		evt := event.RawChar(c, b)
		if st := s.reactor.Broadcast(&evt); !st.Ok() {
			return st
		}

		f.line, f.col = cursor.Advance(f.line, f.col, b)
	}
}
