// Package handler implements the EventReactor every stage uses to fan
// its events out to subscribers, per spec.md §4.1.
package handler

import (
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/status"
)

// subscription pairs a handler with the opaque context it was
// subscribed with, matching the "callable carrying an opaque context"
// shape spec.md describes. Go closures already carry their own state,
// so ctx is typically nil here and folded into the handler's closure
// instead; every caller in this module passes nil, and the field stays
// for callers that want to share one handler across several contexts.
type subscription struct {
	ctx     any
	handler event.Handler
}

// EventReactor maintains an ordered list of subscribed handlers and
// broadcasts events to them in subscription order.
type EventReactor struct {
	subs []subscription
}

// Subscribe appends handler (with ctx) to the reactor's subscriber
// list. Subscription order is broadcast order.
func (r *EventReactor) Subscribe(ctx any, h event.Handler) {
	r.subs = append(r.subs, subscription{ctx: ctx, handler: h})
}

// Broadcast dispatches evt to every subscriber in subscription order.
// If a handler returns a non-OK status, broadcast stops immediately
// and returns that status; no later handler sees the event.
func (r *EventReactor) Broadcast(evt *event.Event) status.Status {
	for _, s := range r.subs {
		if st := s.handler(s.ctx, evt); !st.Ok() {
			return st
		}
	}
	return status.OK
}

// Len reports the number of subscribed handlers, mainly for tests.
func (r *EventReactor) Len() int { return len(r.subs) }
