package event

// Kind discriminates the tagged union of upward events a stage can
// publish. This collapses the donor C library's polymorphic
// event/detail/upcast hierarchy into the single discriminant a Go
// reimplementation needs; "downcast" is simply a switch on Kind.
type Kind int

const (
	// KindEOF carries no payload. Emitted exactly once per Run, after
	// every input stream has drained and every stage has flushed its
	// pending state.
	KindEOF Kind = iota + 1

	// KindRawChar is the raw scanner's unit of output: one source byte.
	KindRawChar

	// Comment delimiter markers. Line-end precedes but does not consume
	// the newline; block begin/end consume their delimiters.
	KindCommentBlockBegin
	KindCommentBlockEnd
	KindCommentLineBegin
	KindCommentLineEnd

	// KindWhitespace is a run of non-newline whitespace; no payload.
	KindWhitespace

	// KindNewline is a run containing at least one newline; no payload.
	KindNewline

	// KindIdentifier carries a C identifier or keyword; the lexer does
	// not classify keywords.
	KindIdentifier

	// KindRawInteger carries the raw digit text of a pp-number that
	// classified as an integer, plus its radix kind.
	KindRawInteger

	// KindRawFloat carries the raw digit text of a pp-number that
	// classified as a float.
	KindRawFloat

	// KindRawString carries a string literal including its quotes and
	// any prefix.
	KindRawString

	// KindRawCharLit carries a character literal including its quotes.
	KindRawCharLit

	// KindPunctuator carries the discriminant of a matched C punctuator.
	KindPunctuator

	// KindInclude and KindIntegerToken are produced by a stage above
	// this core (the preprocessor-control-line scanner and the
	// higher-level integer classifier respectively); they are part of
	// the shared event taxonomy but this module never emits them.
	KindInclude
	KindIntegerToken
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "KindInvalid"
}

var kindNames = map[Kind]string{
	KindEOF:               "EOF",
	KindRawChar:           "RawChar",
	KindCommentBlockBegin: "CommentBlockBegin",
	KindCommentBlockEnd:   "CommentBlockEnd",
	KindCommentLineBegin:  "CommentLineBegin",
	KindCommentLineEnd:    "CommentLineEnd",
	KindWhitespace:        "Whitespace",
	KindNewline:           "Newline",
	KindIdentifier:        "Identifier",
	KindRawInteger:        "RawInteger",
	KindRawFloat:          "RawFloat",
	KindRawString:         "RawString",
	KindRawCharLit:        "RawCharLit",
	KindPunctuator:        "Punctuator",
	KindInclude:           "Include",
	KindIntegerToken:      "IntegerToken",
}

func init() {
	// Every Kind declared above must have a description; a gap here
	// means an event was added without updating kindNames.
	for k := KindEOF; k <= KindIntegerToken; k++ {
		if _, ok := kindNames[k]; !ok {
			panic("event: kind without description")
		}
	}
}
