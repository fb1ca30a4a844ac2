// Package status implements the flat status-code taxonomy every stage
// operation returns, per spec.md §6/§7: success is the zero value,
// failure codes are disjoint by subsystem, and InputStreamEof is never
// a failure at the stage boundary.
package status

import "fmt"

// Status is a result code. The zero value, OK, is success.
type Status int

const (
	OK Status = iota

	OutOfMemory
	InputStreamIoError
	InputStreamEof
	InputStreamNull
	BadCast
	UnhandledMessage

	CommentBadState
	CommentExpectingSlash
	CommentExpectingStarSlash
	CommentExpectingSingleQuote
	CommentExpectingCharSingleQuote
	CommentExpectingDoubleQuote
	CommentExpectingCharDoubleQuote

	FilePositionCacheAlreadySet
	FilePositionCacheNotSet

	WhitespaceBadState

	PpScannerUnexpectedCharacter
	PpScannerBadState
	PpScannerExpectingCharacter
	PpScannerExpectingDigit
	PpScannerHexFloatExpectingP

	BadIntegerConversion
	EntryNotFound

	FileClose
	FileOpen
	FileSeek
	FileTell
	OutOfBounds
)

// Ok reports whether s is the success code.
func (s Status) Ok() bool { return s == OK }

func (s Status) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Error lets a Status be returned and compared as an error; OK.Error()
// is never called in practice since OK is never surfaced as a failure.
func (s Status) Error() string { return s.String() }

var names = map[Status]string{
	OK:               "OK",
	OutOfMemory:      "OutOfMemory",
	InputStreamIoError: "InputStreamIoError",
	InputStreamEof:   "InputStreamEof",
	InputStreamNull:  "InputStreamNull",
	BadCast:          "BadCast",
	UnhandledMessage: "UnhandledMessage",

	CommentBadState:                 "CommentBadState",
	CommentExpectingSlash:           "CommentExpectingSlash",
	CommentExpectingStarSlash:       "CommentExpectingStarSlash",
	CommentExpectingSingleQuote:     "CommentExpectingSingleQuote",
	CommentExpectingCharSingleQuote: "CommentExpectingCharSingleQuote",
	CommentExpectingDoubleQuote:     "CommentExpectingDoubleQuote",
	CommentExpectingCharDoubleQuote: "CommentExpectingCharDoubleQuote",

	FilePositionCacheAlreadySet: "FilePositionCacheAlreadySet",
	FilePositionCacheNotSet:     "FilePositionCacheNotSet",

	WhitespaceBadState: "WhitespaceBadState",

	PpScannerUnexpectedCharacter: "PpScannerUnexpectedCharacter",
	PpScannerBadState:            "PpScannerBadState",
	PpScannerExpectingCharacter:  "PpScannerExpectingCharacter",
	PpScannerExpectingDigit:      "PpScannerExpectingDigit",
	PpScannerHexFloatExpectingP:  "PpScannerHexFloatExpectingP",

	BadIntegerConversion: "BadIntegerConversion",
	EntryNotFound:        "EntryNotFound",

	FileClose:   "FileClose",
	FileOpen:    "FileOpen",
	FileSeek:    "FileSeek",
	FileTell:    "FileTell",
	OutOfBounds: "OutOfBounds",
}

func init() {
	// Self-check: every declared code must have a description, the way
	// sqlparser.TokenType's init() panics on a missing entry in
	// tokenToDescription.
	for s := OK; s <= OutOfBounds; s++ {
		if _, ok := names[s]; !ok {
			panic("status: code without description")
		}
	}
}
