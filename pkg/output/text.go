package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/recipemd/pkg/importer"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "recipemd: %d documents, %d recipes, %d rejected blocks\n",
		report.Summary.Documents,
		report.Summary.Recipes,
		report.Summary.Rejected)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Recipe Import Report ===")
	fmt.Fprintln(w)

	for _, doc := range report.Documents {
		f.formatDocument(doc, w)
	}

	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d documents, %d blocks, %d recipes, %d rejected\n",
		report.Summary.Documents,
		report.Summary.Blocks,
		report.Summary.Recipes,
		report.Summary.Rejected)
	if err != nil {
		return err
	}

	if !report.HasRecipes() {
		fmt.Fprintln(w, "No valid recipe found.")
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatDocument(doc *importer.DocumentResult, w io.Writer) {
	fmt.Fprintf(w, "[%s]\n", doc.Source)

	if doc.Blocks == 0 {
		fmt.Fprintln(w, "  Empty document")
		fmt.Fprintln(w)
		return
	}

	for _, r := range doc.Recipes {
		fmt.Fprintf(w, "  + %s\n", r.Title)
		if !f.opts.Verbose {
			continue
		}
		fmt.Fprintf(w, "      %d ingredients, %d steps", len(r.Ingredients()), len(r.Instructions))
		if r.Yield != "" {
			fmt.Fprintf(w, ", yield %s", r.Yield)
		}
		if r.TotalTime != "" {
			fmt.Fprintf(w, ", time %s", r.TotalTime)
		}
		fmt.Fprintln(w)
	}

	for _, rej := range doc.Rejected {
		fmt.Fprintf(w, "  - line %d: %q rejected (%s)\n", rej.Line, rej.Heading, rej.Reason.Description())
	}

	fmt.Fprintln(w)
}
