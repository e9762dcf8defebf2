package recipemd

import (
	"strconv"
	"strings"
)

// Serialize renders a recipe as a canonical block. Ingredient groups are
// flattened into a single unlabeled list, so labels do not survive a round
// trip. Instructions are renumbered from 1.
func Serialize(r ParsedRecipe) string {
	var b strings.Builder

	b.WriteString(titlePrefix)
	b.WriteString(r.Title)
	b.WriteByte('\n')

	if r.Yield != "" || r.TotalTime != "" {
		b.WriteString(frontmatterDelim + "\n")
		if r.Yield != "" {
			b.WriteString("yield: " + r.Yield + "\n")
		}
		if r.TotalTime != "" {
			b.WriteString("time: " + r.TotalTime + "\n")
		}
		b.WriteString(frontmatterDelim + "\n")
	}

	b.WriteByte('\n')
	for _, item := range r.Ingredients() {
		b.WriteString("- " + item + "\n")
	}

	b.WriteByte('\n')
	for i, step := range r.Instructions {
		b.WriteString(strconv.Itoa(i+1) + ". " + step + "\n")
	}

	return b.String()
}

// SerializeAll renders several recipes into one document, separated by a
// blank line.
func SerializeAll(recipes []ParsedRecipe) string {
	parts := make([]string, 0, len(recipes))
	for _, r := range recipes {
		parts = append(parts, Serialize(r))
	}
	return strings.Join(parts, "\n")
}
