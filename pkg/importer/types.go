package importer

import (
	"time"

	"github.com/ccollicutt/recipemd/pkg/recipemd"
)

// Result is the complete import output.
type Result struct {
	// Documents holds one entry per document read, in source order.
	Documents []*DocumentResult

	Metadata Metadata
}

// DocumentResult holds what was found in one document.
type DocumentResult struct {
	// Source is the document path, or "-" for stdin.
	Source string `json:"source" yaml:"source"`

	// Blocks is the number of candidate blocks the document was split into.
	Blocks int `json:"blocks" yaml:"blocks"`

	Recipes  []recipemd.ParsedRecipe `json:"recipes" yaml:"recipes"`
	Rejected []Rejected              `json:"rejected" yaml:"rejected"`
}

// Rejected describes a block that did not produce a recipe.
type Rejected struct {
	// Line is the 1-based line where the block starts.
	Line int `json:"line" yaml:"line"`

	// Heading is the first non-blank line of the block.
	Heading string `json:"heading" yaml:"heading"`

	Reason recipemd.Rejection `json:"reason" yaml:"reason"`
}

// Metadata provides context about the import run.
type Metadata struct {
	Sources   []string
	StartTime time.Time
	EndTime   time.Time
	Strict    bool
}

// TotalRecipes returns the number of recipes across all documents.
func (r *Result) TotalRecipes() int {
	total := 0
	for _, d := range r.Documents {
		total += len(d.Recipes)
	}
	return total
}

// TotalRejected returns the number of rejected blocks across all documents.
func (r *Result) TotalRejected() int {
	total := 0
	for _, d := range r.Documents {
		total += len(d.Rejected)
	}
	return total
}

// TotalBlocks returns the number of candidate blocks across all documents.
func (r *Result) TotalBlocks() int {
	total := 0
	for _, d := range r.Documents {
		total += d.Blocks
	}
	return total
}

// Recipes returns every recipe in document order.
func (r *Result) Recipes() []recipemd.ParsedRecipe {
	out := make([]recipemd.ParsedRecipe, 0, r.TotalRecipes())
	for _, d := range r.Documents {
		out = append(out, d.Recipes...)
	}
	return out
}
