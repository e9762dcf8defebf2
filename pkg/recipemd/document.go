package recipemd

import "strings"

// ParseDocument parses every block of a document and returns the recipes in
// document order. Blocks that do not form a complete recipe are skipped, so
// an empty result means no valid recipe was found.
func ParseDocument(text string) []ParsedRecipe {
	var recipes []ParsedRecipe
	for _, b := range segment(text) {
		if r, reason := parseLines(b.lines); reason == RejectNone {
			recipes = append(recipes, r)
		}
	}
	return recipes
}

// BlockResult is the outcome of parsing one block of a document.
type BlockResult struct {
	// Index is the 0-based position of the block in the document.
	Index int `json:"index" yaml:"index"`

	// Line is the 1-based line number where the block starts.
	Line int `json:"line" yaml:"line"`

	// Heading is the block's first non-blank line.
	Heading string `json:"heading" yaml:"heading"`

	// Recipe is set when the block was accepted.
	Recipe *ParsedRecipe `json:"recipe,omitempty" yaml:"recipe,omitempty"`

	// Reason is RejectNone for accepted blocks.
	Reason Rejection `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Accepted reports whether the block produced a recipe.
func (b *BlockResult) Accepted() bool {
	return b.Reason == RejectNone
}

// Diagnose parses a document like ParseDocument but reports every block,
// including the reason rejected blocks were dropped.
func Diagnose(text string) []BlockResult {
	blocks := segment(text)
	results := make([]BlockResult, 0, len(blocks))
	for i, b := range blocks {
		res := BlockResult{
			Index:   i,
			Line:    b.start,
			Heading: firstNonBlank(b.lines),
		}
		r, reason := parseLines(b.lines)
		res.Reason = reason
		if reason == RejectNone {
			res.Recipe = &r
		}
		results = append(results, res)
	}
	return results
}

func firstNonBlank(lines []string) string {
	for _, line := range lines {
		if !isBlank(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
