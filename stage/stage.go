// Package stage declares the shared shape every pipeline stage
// implements: a MessageSink for downward control and an EventReactor
// for upward data, per spec.md §2.
package stage

import (
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/handler"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/status"
)

// Stage is the common shape of every pipeline node: it accepts
// downward Messages and lets callers subscribe to the Events it
// publishes upward.
type Stage interface {
	// Handle processes one downward Message. A stage that does not
	// recognise it MUST forward to its own downstream Sink; the bottom
	// stage (raw-stack scanner) either consumes or returns
	// status.UnhandledMessage.
	Handle(ctx any, m *message.Message) status.Status

	// Subscribe attaches h (called with ctx) to this stage's
	// EventReactor.
	Subscribe(ctx any, h event.Handler)
}

// Downstream is the interface a filter/scanner stage holds a reference
// to: the stage immediately below it in the pipeline. It is exactly
// message.Handler — kept as a named type here purely so stage
// implementations read as "I forward to my Downstream", matching
// spec.md's MessageSink terminology.
type Downstream = message.Handler

// Reactor is an alias of handler.EventReactor so stage implementations
// can hold it by value without repeating the subscribe/broadcast
// boilerplate in every package.
type Reactor = handler.EventReactor
