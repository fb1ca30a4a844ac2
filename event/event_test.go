package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cparselex/cparselex/cursor"
)

func TestKindNamesComplete(t *testing.T) {
	// init() already panics if this isn't true; re-asserting here gives
	// a readable failure instead of relying solely on package init.
	for k := KindEOF; k <= KindIntegerToken; k++ {
		assert.NotEqual(t, "KindInvalid", k.String())
	}
}

func TestPunctNamesComplete(t *testing.T) {
	for k := PunctLParen; k <= PunctDigraphHashHash; k++ {
		assert.NotEqual(t, "PunctInvalid", k.String())
	}
}

func TestConstructors(t *testing.T) {
	c := cursor.At("f.c", 1, 1)

	e := RawChar(c, 'x')
	assert.Equal(t, KindRawChar, e.Kind)
	assert.Equal(t, byte('x'), e.Byte)

	id := Identifier(c, "foo")
	assert.Equal(t, KindIdentifier, id.Kind)
	assert.Equal(t, "foo", id.Name)

	i := RawInteger(c, "0x1F", IntKindHex)
	assert.Equal(t, KindRawInteger, i.Kind)
	assert.Equal(t, IntKindHex, i.IntKind)

	p := Punctuator(c, PunctArrow)
	assert.Equal(t, KindPunctuator, p.Kind)
	assert.Equal(t, PunctArrow, p.Punct)

	eof := EOF(c)
	assert.Equal(t, KindEOF, eof.Kind)
}

func TestClone(t *testing.T) {
	c := cursor.At("f.c", 1, 1)
	e := Identifier(c, "foo")
	clone := e.Clone()
	assert.Equal(t, e, clone)

	// mutating the clone must not affect the original
	clone.Name = "bar"
	assert.Equal(t, "foo", e.Name)
}

func TestPunctuatorTableGreedyPrefixes(t *testing.T) {
	// every spelling's first byte must be in PunctuatorStartBytes,
	// otherwise the ppscanner's Start dispatch never enters the
	// punctuator state and can't ever reach that spelling.
	for spelling := range Punctuators {
		assert.True(t, PunctuatorStartBytes[spelling[0]], "spelling %q", spelling)
	}
	assert.Equal(t, 4, MaxPunctuatorLen)
	assert.Equal(t, PunctDigraphHashHash, Punctuators["%:%:"])
}
