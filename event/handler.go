package event

import "github.com/cparselex/cparselex/status"

// Handler is the upward counterpart of message.Handler: a value-type
// callable carrying an opaque context, copied cheaply into an
// EventReactor's subscriber list. A handler that does not care about a
// given event returns status.OK without effect.
type Handler func(ctx any, e *Event) status.Status
