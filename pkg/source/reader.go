package source

import (
	"context"
	"io"
)

// ReaderSource yields a single document read from r.
type ReaderSource struct {
	name string
	r    io.Reader
	done bool
}

// NewReaderSource creates a source for one named stream.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// Next returns the document on the first call and io.EOF afterwards.
func (s *ReaderSource) Next(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.done {
		return nil, io.EOF
	}
	s.done = true

	text, err := readAll(s.r)
	if err != nil {
		return nil, err
	}
	return &Document{Path: s.name, Text: text}, nil
}

// Close closes the underlying reader if it is an io.Closer.
func (s *ReaderSource) Close() error {
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
