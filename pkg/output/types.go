// Package output provides formatting for import results.
package output

import (
	"fmt"
	"time"

	"github.com/ccollicutt/recipemd/pkg/importer"
	"github.com/ccollicutt/recipemd/pkg/recipemd"
)

// Report is the complete import output.
type Report struct {
	Summary   Summary                    `json:"summary" yaml:"summary"`
	Documents []*importer.DocumentResult `json:"documents" yaml:"documents"`
	Metadata  Metadata                   `json:"metadata" yaml:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	Documents int `json:"documents" yaml:"documents"`
	Blocks    int `json:"blocks" yaml:"blocks"`
	Recipes   int `json:"recipes" yaml:"recipes"`
	Rejected  int `json:"rejected" yaml:"rejected"`
}

// Metadata provides context about the import run.
type Metadata struct {
	ConfigFile string        `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	Sources    []string      `json:"sources" yaml:"sources"`
	ImportedAt time.Time     `json:"imported_at" yaml:"imported_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Strict     bool          `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// NewReport creates a Report from an import result.
func NewReport(result *importer.Result, configFile string) *Report {
	return &Report{
		Documents: result.Documents,
		Summary: Summary{
			Documents: len(result.Documents),
			Blocks:    result.TotalBlocks(),
			Recipes:   result.TotalRecipes(),
			Rejected:  result.TotalRejected(),
		},
		Metadata: Metadata{
			ConfigFile: configFile,
			Sources:    result.Metadata.Sources,
			ImportedAt: result.Metadata.EndTime,
			Duration:   result.Metadata.EndTime.Sub(result.Metadata.StartTime),
			Strict:     result.Metadata.Strict,
		},
	}
}

// HasRecipes returns true if at least one recipe was parsed.
func (r *Report) HasRecipes() bool {
	return r.Summary.Recipes > 0
}

// HasRejections returns true if any block was rejected.
func (r *Report) HasRejections() bool {
	return r.Summary.Rejected > 0
}

// Recipes returns every recipe in document order.
func (r *Report) Recipes() []recipemd.ParsedRecipe {
	var out []recipemd.ParsedRecipe
	for _, d := range r.Documents {
		out = append(out, d.Recipes...)
	}
	return out
}

// New returns the formatter for the named format.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "markdown":
		return NewMarkdownFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "yaml":
		return NewYAMLFormatter(opts), nil
	case "pretty":
		return NewPrettyFormatter(opts), nil
	case "html":
		return NewHTMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, markdown, json, yaml, pretty or html)", name)
	}
}
