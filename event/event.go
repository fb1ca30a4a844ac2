// Package event defines the upward-flowing tagged union every pipeline
// stage publishes, and the cursor every event carries.
package event

import "github.com/cparselex/cparselex/cursor"

// Event is a single tagged-variant value carrying a Cursor and, for a
// subset of Kinds, payload data. This is the direct Go translation of
// spec.md §9's design note: the donor's polymorphic event/detail
// hierarchy collapses into one struct with a Kind discriminant and a
// handful of fields that are only meaningful for certain kinds.
//
// Events are short-lived: the emitter owns the value during dispatch.
// A subscriber that needs to retain it calls Clone, which for this Go
// shape is a plain value copy (strings are immutable and already
// independently owned) — the resolution to the event_copy open
// question left unspecified in the donor's C sources.
type Event struct {
	Kind   Kind
	Cursor cursor.Cursor

	// KindRawChar
	Byte byte

	// KindIdentifier
	Name string

	// KindRawInteger / KindRawFloat
	Digits     string
	IntKind    IntKind
	SignedFlag bool

	// KindRawString / KindRawCharLit
	Literal string
	System  bool // true for `<...>` system-include-style strings

	// KindPunctuator
	Punct PunctKind

	// KindInclude (emitted by a higher stage; defined here because the
	// taxonomy is shared)
	Path string

	// KindIntegerToken (emitted by a higher stage)
	IntegerValue int64
}

// Clone returns an independent copy of e. Every field of Event is
// either a value type or an immutable string, so this is just a value
// copy; the method exists to give callers an explicit, self-documenting
// way to say "I am retaining this past the dispatch call".
func (e Event) Clone() Event {
	return e
}

// EOF builds a KindEOF event at the given cursor.
func EOF(c cursor.Cursor) Event { return Event{Kind: KindEOF, Cursor: c} }

// RawChar builds a KindRawChar event for a single byte.
func RawChar(c cursor.Cursor, b byte) Event {
	return Event{Kind: KindRawChar, Cursor: c, Byte: b}
}

// Marker builds a no-payload event of the given Kind (comment
// delimiters, Whitespace, Newline).
func Marker(kind Kind, c cursor.Cursor) Event {
	return Event{Kind: kind, Cursor: c}
}

// Identifier builds a KindIdentifier event.
func Identifier(c cursor.Cursor, name string) Event {
	return Event{Kind: KindIdentifier, Cursor: c, Name: name}
}

// RawInteger builds a KindRawInteger event.
func RawInteger(c cursor.Cursor, digits string, kind IntKind) Event {
	return Event{Kind: KindRawInteger, Cursor: c, Digits: digits, IntKind: kind}
}

// RawFloat builds a KindRawFloat event.
func RawFloat(c cursor.Cursor, digits string) Event {
	return Event{Kind: KindRawFloat, Cursor: c, Digits: digits}
}

// RawString builds a KindRawString event.
func RawString(c cursor.Cursor, literal string, system bool) Event {
	return Event{Kind: KindRawString, Cursor: c, Literal: literal, System: system}
}

// RawCharLit builds a KindRawCharLit event.
func RawCharLit(c cursor.Cursor, literal string) Event {
	return Event{Kind: KindRawCharLit, Cursor: c, Literal: literal}
}

// Punctuator builds a KindPunctuator event.
func Punctuator(c cursor.Cursor, kind PunctKind) Event {
	return Event{Kind: KindPunctuator, Cursor: c, Punct: kind}
}
