package output

import (
	"context"
	"io"
)

// Formatter renders import reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, markdown, json, yaml, pretty, html).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes per-recipe detail and timing.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool

	// Style is the glamour style for the pretty format ("auto" if empty).
	Style string

	// WordWrap is the pretty format's wrap width (80 if zero).
	WordWrap int
}
