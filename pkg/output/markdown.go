package output

import (
	"context"
	"io"

	"github.com/ccollicutt/recipemd/pkg/recipemd"
)

// MarkdownFormatter writes every parsed recipe back as canonical recipe
// markdown. Rejected blocks are left out.
type MarkdownFormatter struct {
	opts FormatOptions
}

// NewMarkdownFormatter creates a new markdown formatter with the given options.
func NewMarkdownFormatter(opts FormatOptions) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Name returns the format name.
func (f *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format renders the report's recipes as one document.
func (f *MarkdownFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	_, err := io.WriteString(w, recipemd.SerializeAll(report.Recipes()))
	return err
}
