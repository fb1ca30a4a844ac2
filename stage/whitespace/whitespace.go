// Package whitespace implements stage 5 of the pipeline: collapsing
// runs of non-newline whitespace into a single Whitespace event while
// keeping newline-containing runs distinct as Newline events, per
// spec.md §4.7.
package whitespace

import (
	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

type state int

const (
	stateNormal state = iota
	stateInRun
)

// isSpace reports whether b is whitespace under this pipeline's fixed
// rule (space, tab, \n, \r, \v, \f); tab is never expanded.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Filter is stage 5.
type Filter struct {
	downstream stage.Downstream
	reactor    stage.Reactor

	st         state
	hasNewline bool
	accum      cursor.Cursor
}

var _ stage.Stage = (*Filter)(nil)

func New(downstream stage.Downstream) *Filter {
	return &Filter{downstream: downstream}
}

func (f *Filter) Subscribe(ctx any, h event.Handler) {
	f.reactor.Subscribe(ctx, h)
}

func (f *Filter) Handle(ctx any, m *message.Message) status.Status {
	if m.Kind == message.KindSubscribe && m.Target == message.StageWhitespace {
		f.Subscribe(ctx, m.Handler)
		return status.OK
	}
	return f.downstream(ctx, m)
}

// EventHandler exposes onEvent for the pipeline constructor.
func (f *Filter) EventHandler() event.Handler { return f.onEvent }

func (f *Filter) onEvent(ctx any, e *event.Event) status.Status {
	if e.Kind == event.KindEOF {
		if f.st == stateInRun {
			if st := f.flush(); !st.Ok() {
				return st
			}
		}
		return f.reactor.Broadcast(e)
	}

	if e.Kind != event.KindRawChar {
		return f.reactor.Broadcast(e)
	}

	if isSpace(e.Byte) {
		if f.st == stateNormal {
			f.st = stateInRun
			f.hasNewline = e.Byte == '\n'
			f.accum = e.Cursor
		} else {
			f.accum = f.accum.Span(e.Cursor)
			if e.Byte == '\n' {
				f.hasNewline = true
			}
		}
		return status.OK
	}

	if f.st == stateInRun {
		if st := f.flush(); !st.Ok() {
			return st
		}
	}
	return f.reactor.Broadcast(e)
}

func (f *Filter) flush() status.Status {
	kind := event.KindWhitespace
	if f.hasNewline {
		kind = event.KindNewline
	}
	run := event.Marker(kind, f.accum)
	f.st = stateNormal
	return f.reactor.Broadcast(&run)
}
