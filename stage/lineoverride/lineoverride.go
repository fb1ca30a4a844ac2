// Package lineoverride implements stage 1 of the pipeline: rewriting
// RawChar cursors in response to a latched file/line override (the
// #line directive, recognised by a stage above this core), per
// spec.md §4.3.
package lineoverride

import (
	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

// Filter is stage 1. It holds a downstream Sink (stage 0) it forwards
// unrecognised messages to, and the latched override state: once set,
// the next emitted RawChar is rewritten to the override's file/line at
// column 1, and this stage tracks its own line/column from there,
// since it has now diverged from stage 0's cursor.
type Filter struct {
	downstream stage.Downstream
	reactor    stage.Reactor

	pending     bool
	overrideSet bool // file-position cache latch: "an override has been set since the last RawChar applied it"
	file        *string
	line        int

	diverged  bool // this stage is now tracking its own line/col
	curLine   int
	curCol    int
}

var _ stage.Stage = (*Filter)(nil)

// New returns a stage-1 filter sitting on top of downstream.
func New(downstream stage.Downstream) *Filter {
	return &Filter{downstream: downstream}
}

func (f *Filter) Subscribe(ctx any, h event.Handler) {
	f.reactor.Subscribe(ctx, h)
}

func (f *Filter) Handle(ctx any, m *message.Message) status.Status {
	switch m.Kind {
	case message.KindFileLineOverride:
		if f.overrideSet {
			return status.FilePositionCacheAlreadySet
		}
		f.overrideSet = true
		f.pending = true
		f.file = m.OverrideFile
		f.line = m.OverrideLine
		return status.OK
	case message.KindSubscribe:
		if m.Target == message.StageLineOverride {
			f.Subscribe(ctx, m.Handler)
			return status.OK
		}
		return f.downstream(ctx, m)
	default:
		return f.downstream(ctx, m)
	}
}

// onRawChar is the event.Handler this stage subscribes to stage 0
// with (wired by the pipeline constructor). It rewrites the cursor per
// the latched override, if any, and re-broadcasts upward.
func (f *Filter) onRawChar(ctx any, e *event.Event) status.Status {
	switch e.Kind {
	case event.KindEOF:
		return f.reactor.Broadcast(e)
	case event.KindRawChar:
		out := *e
		if f.pending {
			if !f.overrideSet {
				return status.FilePositionCacheNotSet
			}
			stream := out.Cursor.Stream
			if f.file != nil {
				stream = *f.file
			}
			out.Cursor.Stream = stream
			out.Cursor.BeginLine, out.Cursor.BeginCol = f.line, 1
			out.Cursor.EndLine, out.Cursor.EndCol = f.line, 1
			f.diverged = true
			f.curLine, f.curCol = f.line, 1
			f.pending = false
			f.overrideSet = false
		} else if f.diverged {
			out.Cursor.BeginLine, out.Cursor.BeginCol = f.curLine, f.curCol
			out.Cursor.EndLine, out.Cursor.EndCol = f.curLine, f.curCol
		}
		if f.diverged {
			f.curLine, f.curCol = cursor.Advance(f.curLine, f.curCol, out.Byte)
		}
		return f.reactor.Broadcast(&out)
	default:
		return f.reactor.Broadcast(e)
	}
}

// EventHandler exposes onRawChar for the pipeline constructor to wire
// as this stage's subscription to stage 0's reactor.
func (f *Filter) EventHandler() event.Handler { return f.onRawChar }
