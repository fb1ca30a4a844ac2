// Package parser implements AbstractParser, the façade a caller drives
// a pipeline through: typed convenience methods over the raw downward
// Message protocol, plus a handler_override swap, per spec.md §4.1.
package parser

import (
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/instream"
	"github.com/cparselex/cparselex/message"
	"github.com/cparselex/cparselex/status"
)

// AbstractParser wraps a root message.Handler — the top of an assembled
// pipeline — and offers typed convenience methods instead of requiring
// callers to build message.Message values by hand. It carries no
// pipeline logic of its own; every call is a one-line translation into
// the downward protocol, exactly as the donor's Scanner wraps a raw
// byte buffer behind NextToken/NextNonWhitespaceToken.
type AbstractParser struct {
	root message.Handler
}

// New wraps root in an AbstractParser.
func New(root message.Handler) *AbstractParser {
	return &AbstractParser{root: root}
}

// PushInputStream adds a named input stream to the raw-stack scanner's
// LIFO. The most recently pushed stream is drained first; pushing a
// second stream before the first is exhausted implements #include-style
// nesting (spec.md §4.2).
func (p *AbstractParser) PushInputStream(name string, stream instream.Stream) status.Status {
	m := message.AddInputStream(name, stream)
	return p.root(nil, &m)
}

// PushFile opens path and pushes it as a named input stream.
func (p *AbstractParser) PushFile(path string) status.Status {
	stream, err := instream.FromFile(path)
	if err != nil {
		return status.InputStreamIoError
	}
	return p.PushInputStream(path, stream)
}

// PushString pushes an in-memory string as a named input stream,
// primarily for tests.
func (p *AbstractParser) PushString(name, contents string) status.Status {
	return p.PushInputStream(name, instream.FromString(contents))
}

// SubscribeRawStack attaches h to stage 0's events (raw bytes, before
// any filtering).
func (p *AbstractParser) SubscribeRawStack(h event.Handler) status.Status {
	return p.subscribe(message.StageRawStack, h)
}

// SubscribeLineOverride attaches h to stage 1's events.
func (p *AbstractParser) SubscribeLineOverride(h event.Handler) status.Status {
	return p.subscribe(message.StageLineOverride, h)
}

// SubscribeLineWrap attaches h to stage 2's events.
func (p *AbstractParser) SubscribeLineWrap(h event.Handler) status.Status {
	return p.subscribe(message.StageLineWrap, h)
}

// SubscribeCommentScanner attaches h to stage 3's events.
func (p *AbstractParser) SubscribeCommentScanner(h event.Handler) status.Status {
	return p.subscribe(message.StageCommentScanner, h)
}

// SubscribeCommentFilter attaches h to stage 4's events.
func (p *AbstractParser) SubscribeCommentFilter(h event.Handler) status.Status {
	return p.subscribe(message.StageCommentFilter, h)
}

// SubscribeWhitespace attaches h to stage 5's events.
func (p *AbstractParser) SubscribeWhitespace(h event.Handler) status.Status {
	return p.subscribe(message.StageWhitespace, h)
}

// SubscribePpScanner attaches h to stage 6's events — the fully
// tokenised preprocessor token stream, the level almost every caller
// wants.
func (p *AbstractParser) SubscribePpScanner(h event.Handler) status.Status {
	return p.subscribe(message.StagePpScanner, h)
}

func (p *AbstractParser) subscribe(target message.Stage, h event.Handler) status.Status {
	m := message.Subscribe(target, h)
	return p.root(nil, &m)
}

// FileLineOverride latches a #line-directive-style file/line rewrite
// at stage 1; it takes effect on the next RawChar stage 1 observes.
// file == nil keeps the current stream name.
func (p *AbstractParser) FileLineOverride(line int, file *string) status.Status {
	m := message.FileLineOverride(line, file)
	return p.root(nil, &m)
}

// Run drains every pushed input stream through the full pipeline,
// broadcasting events to every subscriber as they are produced, until
// the stack is empty and a terminal EOF has been broadcast.
func (p *AbstractParser) Run() status.Status {
	m := message.Run()
	return p.root(nil, &m)
}

// HandlerOverride atomically swaps the root handler the façade drives,
// returning the previous one so the caller can restore it later. This
// mirrors the donor's pattern of keeping a single mutable entry point
// (sqlparser.Scanner's current-token cursor) that call sites can
// temporarily redirect and then put back.
func (p *AbstractParser) HandlerOverride(next message.Handler) message.Handler {
	old := p.root
	p.root = next
	return old
}
