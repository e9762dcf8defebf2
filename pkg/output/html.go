package output

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HTMLFormatter renders recipes as an HTML fragment, one <article> per
// recipe. Raw HTML in recipe text is dropped by the markdown renderer; the
// title attribute is escaped.
type HTMLFormatter struct {
	opts FormatOptions
	md   goldmark.Markdown
}

// NewHTMLFormatter creates a new HTML formatter with the given options.
func NewHTMLFormatter(opts FormatOptions) *HTMLFormatter {
	return &HTMLFormatter{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Name returns the format name.
func (f *HTMLFormatter) Name() string {
	return "html"
}

// Format renders each recipe through the markdown engine.
func (f *HTMLFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	var buf bytes.Buffer
	for _, r := range report.Recipes() {
		buf.Reset()
		if err := f.md.Convert([]byte(toMarkdown(r)), &buf); err != nil {
			return fmt.Errorf("rendering %q: %w", r.Title, err)
		}
		if _, err := fmt.Fprintf(w, "<article class=\"recipe\" data-title=\"%s\">\n%s</article>\n",
			html.EscapeString(r.Title), buf.String()); err != nil {
			return err
		}
	}
	return nil
}
