package output

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/ccollicutt/recipemd/pkg/recipemd"
)

const defaultWordWrap = 80

// PrettyFormatter renders recipes for the terminal through glamour.
type PrettyFormatter struct {
	opts FormatOptions
}

// NewPrettyFormatter creates a new pretty formatter with the given options.
func NewPrettyFormatter(opts FormatOptions) *PrettyFormatter {
	return &PrettyFormatter{opts: opts}
}

// Name returns the format name.
func (f *PrettyFormatter) Name() string {
	return "pretty"
}

// Format renders each recipe as styled terminal output.
func (f *PrettyFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return NewTextFormatter(f.opts).Format(ctx, report, w)
	}

	renderer, err := f.renderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	for _, r := range report.Recipes() {
		out, err := renderer.Render(toMarkdown(r))
		if err != nil {
			return fmt.Errorf("rendering %q: %w", r.Title, err)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}

func (f *PrettyFormatter) renderer() (*glamour.TermRenderer, error) {
	wrap := f.opts.WordWrap
	if wrap <= 0 {
		wrap = defaultWordWrap
	}

	style := glamour.WithAutoStyle()
	if f.opts.Style != "" && f.opts.Style != "auto" {
		style = glamour.WithStandardStyle(f.opts.Style)
	}
	return glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
}

// toMarkdown turns a recipe into ordinary markdown. The recipe grammar's
// frontmatter would otherwise render as horizontal rules.
func toMarkdown(r recipemd.ParsedRecipe) string {
	var b []byte
	b = fmt.Appendf(b, "# %s\n\n", r.Title)

	if r.Yield != "" || r.TotalTime != "" {
		if r.Yield != "" {
			b = fmt.Appendf(b, "**Yield:** %s  \n", r.Yield)
		}
		if r.TotalTime != "" {
			b = fmt.Appendf(b, "**Time:** %s  \n", r.TotalTime)
		}
		b = append(b, '\n')
	}

	b = append(b, "## Ingredients\n\n"...)
	for _, g := range r.IngredientGroups {
		if g.Label != "" {
			b = fmt.Appendf(b, "### %s\n\n", g.Label)
		}
		for _, item := range g.Items {
			b = fmt.Appendf(b, "- %s\n", item)
		}
		b = append(b, '\n')
	}

	b = append(b, "## Instructions\n\n"...)
	for i, step := range r.Instructions {
		b = fmt.Appendf(b, "%d. %s\n", i+1, step)
	}
	return string(b)
}
