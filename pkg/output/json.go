package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter writes the report as indented JSON. Quiet mode writes only
// the summary.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report. Recipe text such as "salt & pepper" is written
// as-is rather than with & escapes.
func (f *JSONFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	var v any = report
	if f.opts.Quiet {
		v = report.Summary
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
