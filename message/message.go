// Package message defines the downward-flowing tagged union that
// controls a pipeline: attach input streams, subscribe handlers,
// override file/line, and run.
package message

import (
	"github.com/cparselex/cparselex/event"
	"github.com/cparselex/cparselex/instream"
	"github.com/cparselex/cparselex/status"
)

// Kind discriminates a Message.
type Kind int

const (
	KindAddInputStream Kind = iota + 1
	KindSubscribe
	KindRun
	KindFileLineOverride
)

func (k Kind) String() string {
	switch k {
	case KindAddInputStream:
		return "AddInputStream"
	case KindSubscribe:
		return "Subscribe"
	case KindRun:
		return "Run"
	case KindFileLineOverride:
		return "FileLineOverride"
	default:
		return "KindInvalid"
	}
}

// Stage selects which publisher level a Subscribe message attaches a
// handler to; it mirrors the stage table in spec.md §2.
type Stage int

const (
	StageRawStack Stage = iota
	StageLineOverride
	StageLineWrap
	StageCommentScanner
	StageCommentFilter
	StageWhitespace
	StagePpScanner
)

func (s Stage) String() string {
	switch s {
	case StageRawStack:
		return "RawStack"
	case StageLineOverride:
		return "LineOverride"
	case StageLineWrap:
		return "LineWrap"
	case StageCommentScanner:
		return "CommentScanner"
	case StageCommentFilter:
		return "CommentFilter"
	case StageWhitespace:
		return "Whitespace"
	case StagePpScanner:
		return "PpScanner"
	default:
		return "StageInvalid"
	}
}

// Message is a single tagged-variant value over the four downward
// control operations. A stage that does not recognise it forwards it
// unchanged to its own downstream MessageSink.
type Message struct {
	Kind Kind

	// KindAddInputStream
	StreamName string
	Stream     instream.Stream

	// KindSubscribe
	Target  Stage
	Handler event.Handler

	// KindFileLineOverride
	OverrideFile *string
	OverrideLine int
}

// Handler is the downward counterpart of event.Handler: a value-type
// callable, copyable and cheap to pass, that a stage that does not
// recognise a message forwards to its own downstream Handler. Failing
// to forward an unrecognised message is a protocol violation (spec.md
// §4.1).
type Handler func(ctx any, m *Message) status.Status

// AddInputStream builds a KindAddInputStream message.
func AddInputStream(name string, stream instream.Stream) Message {
	return Message{Kind: KindAddInputStream, StreamName: name, Stream: stream}
}

// Subscribe builds a KindSubscribe message.
func Subscribe(target Stage, handler event.Handler) Message {
	return Message{Kind: KindSubscribe, Target: target, Handler: handler}
}

// Run builds a KindRun message.
func Run() Message {
	return Message{Kind: KindRun}
}

// FileLineOverride builds a KindFileLineOverride message.
func FileLineOverride(line int, file *string) Message {
	return Message{Kind: KindFileLineOverride, OverrideLine: line, OverrideFile: file}
}
