// Package commentfilter implements stage 4 of the pipeline: collapsing
// each comment (as delimited by stage 3's markers) into a single
// synthetic space RawChar, per spec.md §4.6.
package commentfilter

import (
	"github.com/cparselex/cparselex/cursor"
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/stage"
	"github.com/cparselex/cparselex/status"
)

// Filter is stage 4.
type Filter struct {
	downstream stage.Downstream
	reactor    stage.Reactor

	inComment   bool
	commentSpan cursor.Cursor
}

var _ stage.Stage = (*Filter)(nil)

func New(downstream stage.Downstream) *Filter {
	return &Filter{downstream: downstream}
}

func (f *Filter) Subscribe(ctx any, h event.Handler) {
	f.reactor.Subscribe(ctx, h)
}

func (f *Filter) Handle(ctx any, m *message.Message) status.Status {
	if m.Kind == message.KindSubscribe && m.Target == message.StageCommentFilter {
		f.Subscribe(ctx, m.Handler)
		return status.OK
	}
	return f.downstream(ctx, m)
}

// EventHandler exposes onEvent for the pipeline constructor.
func (f *Filter) EventHandler() event.Handler { return f.onEvent }

func (f *Filter) onEvent(ctx any, e *event.Event) status.Status {
	switch e.Kind {
	case event.KindCommentBlockBegin, event.KindCommentLineBegin:
		f.inComment = true
		f.commentSpan = e.Cursor
		return status.OK
	case event.KindCommentBlockEnd, event.KindCommentLineEnd:
		span := f.commentSpan.Span(e.Cursor)
		f.inComment = false
		space := event.RawChar(span, ' ')
		return f.reactor.Broadcast(&space)
	case event.KindRawChar:
		if f.inComment {
			// swallow comment interior bytes
			return status.OK
		}
		return f.reactor.Broadcast(e)
	default:
		return f.reactor.Broadcast(e)
	}
}
