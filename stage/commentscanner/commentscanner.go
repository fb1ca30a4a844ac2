// Package commentscanner implements stage 3 of the pipeline: a state
// machine that recognises /* */ and // comments (string- and
// character-literal aware, so a comment leader inside a literal is not
// mistaken for one) and emits delimiter markers around them, per
// spec.md §4.5.
package commentscanner

import (
	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

type state int

const (
	stateInit state = iota
	stateMaybeComment
	stateLineComment
	stateBlockComment
	stateBlockCommentMaybeEnd
	stateInString
	stateInStringEscape
	stateInChar
	stateInCharEscape
)

// Scanner is stage 3.
type Scanner struct {
	downstream stage.Downstream
	reactor    stage.Reactor

	st       state
	buffered event.Event   // buffered '/' (MaybeComment) or '*' (BlockCommentMaybeEnd), valid per state
	lastLine cursor.Cursor // cursor of the last byte seen in stateLineComment, for CommentLineEnd's span
}

var _ stage.Stage = (*Scanner)(nil)

func New(downstream stage.Downstream) *Scanner {
	return &Scanner{downstream: downstream}
}

func (s *Scanner) Subscribe(ctx any, h event.Handler) {
	s.reactor.Subscribe(ctx, h)
}

func (s *Scanner) Handle(ctx any, m *message.Message) status.Status {
	if m.Kind == message.KindSubscribe && m.Target == message.StageCommentScanner {
		s.Subscribe(ctx, m.Handler)
		return status.OK
	}
	return s.downstream(ctx, m)
}

// EventHandler exposes onEvent for the pipeline constructor.
func (s *Scanner) EventHandler() event.Handler { return s.onEvent }

func (s *Scanner) onEvent(ctx any, e *event.Event) status.Status {
	if e.Kind == event.KindEOF {
		return s.onEOF(e)
	}
	if e.Kind != event.KindRawChar {
		// Whitespace/Newline never reach this stage in the pipeline's
		// wiring (it sits directly above stage 2), but forward
		// defensively rather than drop.
		return s.reactor.Broadcast(e)
	}
	return s.onByte(e)
}

func (s *Scanner) onEOF(e *event.Event) status.Status {
	switch s.st {
	case stateInit, stateLineComment:
		// In stateLineComment, no trailing newline arrived; nothing
		// further to flush, the interior bytes were already emitted
		// as they came.
		return s.reactor.Broadcast(e)
	case stateMaybeComment:
		// A lone trailing '/' was buffered; flush it, then EOF.
		if st := s.reactor.Broadcast(&s.buffered); !st.Ok() {
			return st
		}
		return s.reactor.Broadcast(e)
	case stateBlockComment, stateBlockCommentMaybeEnd:
		return status.CommentExpectingStarSlash
	case stateInString:
		return status.CommentExpectingDoubleQuote
	case stateInChar:
		return status.CommentExpectingSingleQuote
	case stateInStringEscape:
		return status.CommentExpectingCharDoubleQuote
	case stateInCharEscape:
		return status.CommentExpectingCharSingleQuote
	default:
		return status.CommentBadState
	}
}

func (s *Scanner) onByte(e *event.Event) status.Status {
	b := e.Byte
	switch s.st {
	case stateInit:
		switch b {
		case '/':
			s.buffered = *e
			s.st = stateMaybeComment
			return status.OK
		case '"':
			s.st = stateInString
			return s.reactor.Broadcast(e)
		case '\'':
			s.st = stateInChar
			return s.reactor.Broadcast(e)
		default:
			return s.reactor.Broadcast(e)
		}

	case stateMaybeComment:
		switch b {
		case '/':
			begin := event.Marker(event.KindCommentLineBegin, s.buffered.Cursor.Span(e.Cursor))
			s.st = stateLineComment
			s.lastLine = e.Cursor
			return s.reactor.Broadcast(&begin)
		case '*':
			begin := event.Marker(event.KindCommentBlockBegin, s.buffered.Cursor.Span(e.Cursor))
			s.st = stateBlockComment
			return s.reactor.Broadcast(&begin)
		default:
			flushed := s.buffered
			s.st = stateInit
			if st := s.reactor.Broadcast(&flushed); !st.Ok() {
				return st
			}
			return s.onByte(e)
		}

	case stateLineComment:
		if b == '\n' {
			// the end marker's cursor sits just before the newline, at
			// the last comment-body byte, not on the newline itself
			end := event.Marker(event.KindCommentLineEnd, s.lastLine)
			s.st = stateInit
			if st := s.reactor.Broadcast(&end); !st.Ok() {
				return st
			}
			// the newline itself is not consumed
			return s.reactor.Broadcast(e)
		}
		s.lastLine = e.Cursor
		return s.reactor.Broadcast(e)

	case stateBlockComment:
		if b == '*' {
			s.buffered = *e
			s.st = stateBlockCommentMaybeEnd
			return status.OK
		}
		return s.reactor.Broadcast(e)

	case stateBlockCommentMaybeEnd:
		switch b {
		case '/':
			end := event.Marker(event.KindCommentBlockEnd, s.buffered.Cursor.Span(e.Cursor))
			s.st = stateInit
			return s.reactor.Broadcast(&end)
		case '*':
			// the previously buffered '*' was interior; this one might
			// still end the comment, so stay in BlockCommentMaybeEnd
			interior := s.buffered
			s.buffered = *e
			return s.reactor.Broadcast(&interior)
		default:
			interior := s.buffered
			s.st = stateBlockComment
			if st := s.reactor.Broadcast(&interior); !st.Ok() {
				return st
			}
			return s.reactor.Broadcast(e)
		}

	case stateInString:
		switch b {
		case '\\':
			s.st = stateInStringEscape
			return s.reactor.Broadcast(e)
		case '"':
			s.st = stateInit
			return s.reactor.Broadcast(e)
		default:
			return s.reactor.Broadcast(e)
		}

	case stateInStringEscape:
		s.st = stateInString
		return s.reactor.Broadcast(e)

	case stateInChar:
		switch b {
		case '\\':
			s.st = stateInCharEscape
			return s.reactor.Broadcast(e)
		case '\'':
			s.st = stateInit
			return s.reactor.Broadcast(e)
		default:
			return s.reactor.Broadcast(e)
		}

	case stateInCharEscape:
		s.st = stateInChar
		return s.reactor.Broadcast(e)

	default:
		return status.CommentBadState
	}
}
