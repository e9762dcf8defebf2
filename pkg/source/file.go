package source

import (
	"context"
	"fmt"
	"io"
	"os"
)

// MaxDocumentSize bounds how much of a single input is read.
const MaxDocumentSize = 16 << 20

// FileSource implements DocumentSource over a list of paths. The path "-"
// reads from the configured stdin reader.
type FileSource struct {
	paths []string
	stdin io.Reader
	index int
}

// NewFileSource creates a DocumentSource that reads the given paths in order.
func NewFileSource(paths []string) *FileSource {
	return &FileSource{paths: paths, stdin: os.Stdin}
}

// WithStdin replaces the reader used for "-".
func (s *FileSource) WithStdin(r io.Reader) *FileSource {
	s.stdin = r
	return s
}

// Next returns the next document. Returns io.EOF when all paths are read.
func (s *FileSource) Next(ctx context.Context) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.index >= len(s.paths) {
		return nil, io.EOF
	}
	path := s.paths[s.index]
	s.index++

	if path == StdinName {
		text, err := readAll(s.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &Document{Path: StdinName, Text: text}, nil
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening recipe file %s: %w", path, err)
	}
	defer f.Close()

	text, err := readAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Document{Path: path, Text: text}, nil
}

// Close releases resources. Files are closed as soon as they are read.
func (s *FileSource) Close() error {
	return nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxDocumentSize {
		return "", fmt.Errorf("document exceeds %d bytes", MaxDocumentSize)
	}
	return string(data), nil
}
