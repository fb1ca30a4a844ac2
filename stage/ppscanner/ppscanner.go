// Package ppscanner implements stage 6 of the pipeline, the
// preprocessor token scanner: identifiers, pp-numbers, string/char
// literals, and punctuators, with multi-character lookahead, per
// spec.md §4.8. It is the largest stage in the pipeline.
package ppscanner

import (
	"strings"

	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

type state int

const (
	stateIdle state = iota
	stateIdentifier
	statePpNumber
	stateDot // a lone '.' has been seen; next byte decides number-vs-punctuator
	stateString
	stateStringEscape
	stateChar
	stateCharEscape
	statePunct
)

// Scanner is stage 6.
type Scanner struct {
	downstream stage.Downstream
	reactor    stage.Reactor

	st    state
	buf   strings.Builder
	start cursor.Cursor
	last  cursor.Cursor
}

var _ stage.Stage = (*Scanner)(nil)

func New(downstream stage.Downstream) *Scanner {
	return &Scanner{downstream: downstream}
}

func (s *Scanner) Subscribe(ctx any, h event.Handler) {
	s.reactor.Subscribe(ctx, h)
}

func (s *Scanner) Handle(ctx any, m *message.Message) status.Status {
	if m.Kind == message.KindSubscribe && m.Target == message.StagePpScanner {
		s.Subscribe(ctx, m.Handler)
		return status.OK
	}
	return s.downstream(ctx, m)
}

// EventHandler exposes onEvent for the pipeline constructor.
func (s *Scanner) EventHandler() event.Handler { return s.onEvent }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentStart(b byte) bool { return isLetter(b) || b == '_' }

func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }

func isExponentMarker(b byte) bool {
	switch b {
	case 'e', 'E', 'p', 'P':
		return true
	default:
		return false
	}
}

// onEvent dispatches a single upward event from stage 5. Whitespace
// and Newline terminate whatever token is in progress, except a string
// or character literal, which absorbs the run instead.
func (s *Scanner) onEvent(ctx any, e *event.Event) status.Status {
	switch e.Kind {
	case event.KindEOF:
		return s.onTerminator(e)
	case event.KindWhitespace, event.KindNewline:
		if s.inLiteral() {
			// A whitespace/newline run inside a string or character
			// literal carries no payload (spec.md §3), so its exact
			// bytes can't be recovered; approximate it from the run's
			// cursor span rather than letting it prematurely end the
			// literal.
			return s.absorbRun(e)
		}
		return s.onTerminator(e)
	case event.KindRawChar:
		return s.onByte(e)
	default:
		return s.reactor.Broadcast(e)
	}
}

// inLiteral reports whether a string or character literal is
// currently being accumulated.
func (s *Scanner) inLiteral() bool {
	switch s.st {
	case stateString, stateStringEscape, stateChar, stateCharEscape:
		return true
	default:
		return false
	}
}

// absorbRun folds a Whitespace/Newline run into the literal text being
// accumulated.
func (s *Scanner) absorbRun(e *event.Event) status.Status {
	s.buf.WriteString(approximateRun(e.Cursor, e.Kind == event.KindNewline))
	s.last = e.Cursor
	if s.st == stateStringEscape {
		s.st = stateString
	}
	if s.st == stateCharEscape {
		s.st = stateChar
	}
	return status.OK
}

func approximateRun(c cursor.Cursor, newline bool) string {
	if newline {
		n := c.EndLine - c.BeginLine
		if n < 1 {
			n = 1
		}
		return strings.Repeat("\n", n)
	}
	n := c.EndCol - c.BeginCol
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

// onTerminator flushes any in-progress token, then forwards e
// (Whitespace/Newline/EOF) unchanged.
func (s *Scanner) onTerminator(e *event.Event) status.Status {
	wasLiteral := s.inLiteral()
	if st := s.flushPending(); !st.Ok() {
		return st
	}
	if wasLiteral && e.Kind == event.KindEOF {
		s.st = stateIdle
		return status.PpScannerBadState
	}
	return s.reactor.Broadcast(e)
}

// flushPending emits whatever token Idle-incompatible state currently
// holds, given that the byte stream has hit a boundary (whitespace,
// newline, EOF, or a byte that can't extend the current token).
func (s *Scanner) flushPending() status.Status {
	switch s.st {
	case stateIdle:
		return status.OK
	case stateIdentifier:
		return s.emitIdentifier()
	case statePpNumber:
		return s.emitPpNumber()
	case stateDot:
		return s.emitPunct(".")
	case statePunct:
		return s.emitPunct(s.buf.String())
	default:
		// string/char literal in progress: unterminated, caller reports it
		return status.OK
	}
}

func (s *Scanner) beginToken(e *event.Event) {
	s.buf.Reset()
	s.buf.WriteByte(e.Byte)
	s.start = e.Cursor
	s.last = e.Cursor
}

func (s *Scanner) extendToken(e *event.Event) {
	s.buf.WriteByte(e.Byte)
	s.last = e.Cursor
}

func (s *Scanner) span() cursor.Cursor { return s.start.Span(s.last) }

func (s *Scanner) onByte(e *event.Event) status.Status {
	b := e.Byte
	switch s.st {
	case stateIdle:
		return s.dispatchStart(e)

	case stateIdentifier:
		if isIdentCont(b) {
			s.extendToken(e)
			return status.OK
		}
		if st := s.emitIdentifier(); !st.Ok() {
			return st
		}
		return s.dispatchStart(e)

	case statePpNumber:
		prev := s.lastByte()
		if isDigit(b) || b == '.' || isLetter(b) || ((b == '+' || b == '-') && isExponentMarker(prev)) {
			s.extendToken(e)
			return status.OK
		}
		if st := s.emitPpNumber(); !st.Ok() {
			return st
		}
		return s.dispatchStart(e)

	case stateDot:
		if isDigit(b) {
			// "." digit begins a pp-number per the permissive C rule.
			s.extendToken(e)
			s.st = statePpNumber
			return status.OK
		}
		// Not a pp-number: hand off to the generic greedy punctuator
		// matcher so "." can still extend into ".." and "..."
		// (Ellipsis) instead of always being emitted alone.
		s.st = statePunct
		return s.onByte(e)

	case stateString:
		switch b {
		case '\\':
			s.extendToken(e)
			s.st = stateStringEscape
			return status.OK
		case '"':
			s.extendToken(e)
			return s.emitString()
		default:
			s.extendToken(e)
			return status.OK
		}

	case stateStringEscape:
		s.extendToken(e)
		s.st = stateString
		return status.OK

	case stateChar:
		switch b {
		case '\\':
			s.extendToken(e)
			s.st = stateCharEscape
			return status.OK
		case '\'':
			s.extendToken(e)
			return s.emitCharLit()
		default:
			s.extendToken(e)
			return status.OK
		}

	case stateCharEscape:
		s.extendToken(e)
		s.st = stateChar
		return status.OK

	case statePunct:
		candidate := s.buf.String() + string(b)
		if punctPrefixes[candidate] {
			s.extendToken(e)
			return status.OK
		}
		if st := s.emitPunct(s.buf.String()); !st.Ok() {
			return st
		}
		return s.dispatchStart(e)

	default:
		return status.PpScannerBadState
	}
}

func (s *Scanner) lastByte() byte {
	str := s.buf.String()
	if len(str) == 0 {
		return 0
	}
	return str[len(str)-1]
}

// dispatchStart routes a byte arriving in the Idle state (or
// re-dispatches the byte that terminated a previous token).
func (s *Scanner) dispatchStart(e *event.Event) status.Status {
	b := e.Byte
	switch {
	case isIdentStart(b):
		s.beginToken(e)
		s.st = stateIdentifier
		return status.OK
	case isDigit(b):
		s.beginToken(e)
		s.st = statePpNumber
		return status.OK
	case b == '.':
		s.beginToken(e)
		s.st = stateDot
		return status.OK
	case b == '"':
		s.beginToken(e)
		s.st = stateString
		return status.OK
	case b == '\'':
		s.beginToken(e)
		s.st = stateChar
		return status.OK
	case event.PunctuatorStartBytes[b]:
		s.beginToken(e)
		s.st = statePunct
		return status.OK
	default:
		return status.PpScannerUnexpectedCharacter
	}
}

func (s *Scanner) emitIdentifier() status.Status {
	name := s.buf.String()
	span := s.span()
	s.st = stateIdle
	out := event.Identifier(span, name)
	return s.reactor.Broadcast(&out)
}

func (s *Scanner) emitPunct(text string) status.Status {
	kind, ok := event.Punctuators[text]
	if !ok {
		return status.PpScannerBadState
	}
	span := s.span()
	s.st = stateIdle
	out := event.Punctuator(span, kind)
	return s.reactor.Broadcast(&out)
}

func (s *Scanner) emitString() status.Status {
	literal := s.buf.String()
	span := s.span()
	s.st = stateIdle
	out := event.RawString(span, literal, false)
	return s.reactor.Broadcast(&out)
}

func (s *Scanner) emitCharLit() status.Status {
	literal := s.buf.String()
	span := s.span()
	s.st = stateIdle
	out := event.RawCharLit(span, literal)
	return s.reactor.Broadcast(&out)
}

func (s *Scanner) emitPpNumber() status.Status {
	digits := s.buf.String()
	span := s.span()
	s.st = stateIdle

	lower := strings.ToLower(digits)
	isHex := strings.HasPrefix(lower, "0x")
	hasDot := strings.ContainsRune(digits, '.')

	if isHex {
		hasP := strings.ContainsAny(digits, "pP")
		if hasDot && !hasP {
			return status.PpScannerHexFloatExpectingP
		}
		if hasDot || hasP {
			out := event.RawFloat(span, digits)
			return s.reactor.Broadcast(&out)
		}
		out := event.RawInteger(span, digits, event.IntKindHex)
		return s.reactor.Broadcast(&out)
	}

	hasExp := strings.ContainsAny(digits, "eE")
	if hasDot || hasExp {
		out := event.RawFloat(span, digits)
		return s.reactor.Broadcast(&out)
	}
	out := event.RawInteger(span, digits, event.IntKindDecOrOctal)
	return s.reactor.Broadcast(&out)
}

var punctPrefixes = buildPunctPrefixes()

func buildPunctPrefixes() map[string]bool {
	m := make(map[string]bool, len(event.Punctuators)*2)
	for k := range event.Punctuators {
		for i := 1; i <= len(k); i++ {
			m[k[:i]] = true
		}
	}
	return m
}
