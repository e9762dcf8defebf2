// Package source reads recipe documents from files, directories and streams.
package source

import "context"

// StdinName is the input name that selects standard input.
const StdinName = "-"

// Document is one recipe markdown document and where it came from.
type Document struct {
	// Path is the file path, or "-" for standard input.
	Path string

	// Text is the full document content.
	Text string
}

// DocumentSource provides an iterator over documents.
// Implementations must be safe for sequential access (not concurrent).
type DocumentSource interface {
	// Next returns the next document.
	// Returns io.EOF when no more documents are available.
	Next(ctx context.Context) (*Document, error)

	// Close releases any resources held by the source.
	Close() error
}
