// Package instream defines the input-stream contract the raw-stack
// scanner consumes. Per spec.md §1 the concrete backends are external
// collaborators; this package carries only the one-method contract and
// the two minimal backends ("string", "file") a CLI front-end needs.
package instream

import (
	"bufio"
	"io"
	"os"
)

// Stream is an opaque byte producer: read one byte, or io.EOF, or any
// other error (treated by the raw-stack scanner as an I/O failure,
// unlike io.EOF which is a clean end of stream, not a pipeline
// failure — spec.md §7).
type Stream interface {
	ReadByte() (byte, error)
}

// stringStream reads from an in-memory string. Grounded on the
// donor's Scanner.input []byte slicing, adapted from a pull-scanner's
// random-access buffer to the one-byte-at-a-time push contract this
// pipeline's stage 0 requires.
type stringStream struct {
	data []byte
	pos  int
}

// FromString returns a Stream over s.
func FromString(s string) Stream {
	return &stringStream{data: []byte(s)}
}

func (s *stringStream) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// fileStream reads from an *os.File through a buffered reader.
type fileStream struct {
	f  *os.File
	br *bufio.Reader
}

// FromFile opens path and returns a Stream over its contents. The
// caller is responsible for the file being fully drained (the stream
// closes the file itself once ReadByte returns io.EOF or any other
// error) or for calling Close directly if the pipeline run is aborted
// early.
func FromFile(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileStream{f: f, br: bufio.NewReader(f)}, nil
}

func (s *fileStream) ReadByte() (byte, error) {
	b, err := s.br.ReadByte()
	if err != nil {
		_ = s.f.Close()
		return 0, err
	}
	return b, nil
}

// Close releases the underlying file early, e.g. when a Run is
// aborted before the stream drains naturally.
func (s *fileStream) Close() error {
	return s.f.Close()
}
