// Package linewrap implements stage 2 of the pipeline: eliding
// backslash-newline sequences while preserving the cursor of the
// buffered backslash, per spec.md §4.4.
package linewrap

import (
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

type state int

const (
	stateNormal state = iota
	stateSawBackslash
)

// Filter is stage 2: a two-state machine over RawChar/EOF events.
type Filter struct {
	downstream stage.Downstream
	reactor    stage.Reactor

	st       state
	buffered event.Event // the buffered '\\' RawChar, valid when st == stateSawBackslash
}

var _ stage.Stage = (*Filter)(nil)

func New(downstream stage.Downstream) *Filter {
	return &Filter{downstream: downstream}
}

func (f *Filter) Subscribe(ctx any, h event.Handler) {
	f.reactor.Subscribe(ctx, h)
}

func (f *Filter) Handle(ctx any, m *message.Message) status.Status {
	if m.Kind == message.KindSubscribe && m.Target == message.StageLineWrap {
		f.Subscribe(ctx, m.Handler)
		return status.OK
	}
	return f.downstream(ctx, m)
}

// onEvent is wired as this stage's subscription to stage 1.
func (f *Filter) onEvent(ctx any, e *event.Event) status.Status {
	switch f.st {
	case stateNormal:
		if e.Kind == event.KindRawChar && e.Byte == '\\' {
			f.buffered = *e
			f.st = stateSawBackslash
			return status.OK
		}
		return f.reactor.Broadcast(e)

	case stateSawBackslash:
		if e.Kind == event.KindRawChar && e.Byte == '\n' {
			// The escape is consumed: neither the backslash nor the
			// newline is observable upstream.
			f.st = stateNormal
			return status.OK
		}
		// Flush the buffered backslash, return to Normal, and
		// reprocess the current event from there.
		buffered := f.buffered
		f.st = stateNormal
		if st := f.reactor.Broadcast(&buffered); !st.Ok() {
			return st
		}
		if e.Kind == event.KindEOF {
			return f.reactor.Broadcast(e)
		}
		return f.onEvent(ctx, e)
	}
	return status.OK
}

// EventHandler exposes onEvent for the pipeline constructor.
func (f *Filter) EventHandler() event.Handler { return f.onEvent }
