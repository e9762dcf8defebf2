// Package recipemd parses and serializes recipe markdown documents.
//
// A document holds one or more recipes, each starting with a "# " title line,
// followed by optional "---" delimited frontmatter, a bulleted ingredient list
// and a list of instruction steps. Parsing never fails: blocks that do not form
// a complete recipe are dropped. All functions are pure and safe for
// concurrent use.
package recipemd

// ParsedRecipe is the structured form of one recipe block.
type ParsedRecipe struct {
	// Title is the trimmed text after the "# " prefix.
	Title string `json:"title" yaml:"title"`

	// IngredientGroups holds the ingredient items. The parser always
	// produces a single group with an empty label.
	IngredientGroups []IngredientGroup `json:"ingredient_groups" yaml:"ingredient_groups"`

	// Instructions are the steps in order, without their list markers.
	Instructions []string `json:"instructions" yaml:"instructions"`

	// Yield is free-form text such as "4 servings". Empty when absent.
	Yield string `json:"yield,omitempty" yaml:"yield,omitempty"`

	// TotalTime is free-form text such as "45m". Empty when absent.
	TotalTime string `json:"total_time,omitempty" yaml:"total_time,omitempty"`
}

// IngredientGroup is an optionally labeled run of ingredient items.
type IngredientGroup struct {
	Label string   `json:"label" yaml:"label"`
	Items []string `json:"items" yaml:"items"`
}

// Ingredients returns every item across all groups, in group order.
func (r *ParsedRecipe) Ingredients() []string {
	var items []string
	for _, g := range r.IngredientGroups {
		items = append(items, g.Items...)
	}
	return items
}

// Rejection names the reason a block did not produce a recipe.
type Rejection string

const (
	// RejectNone means the block was accepted.
	RejectNone Rejection = ""

	// RejectEmpty means the block had no non-blank lines.
	RejectEmpty Rejection = "empty_block"

	// RejectMissingTitle means the first non-blank line was not a "# " title
	// or the title text was empty.
	RejectMissingTitle Rejection = "missing_title"

	// RejectUnterminatedFrontmatter means a "---" block was opened but never
	// closed, so it swallowed the rest of the recipe.
	RejectUnterminatedFrontmatter Rejection = "unterminated_frontmatter"

	// RejectNoIngredients means no ingredient lines followed the title.
	RejectNoIngredients Rejection = "no_ingredients"

	// RejectNoInstructions means no instruction lines followed the ingredients.
	RejectNoInstructions Rejection = "no_instructions"
)

// Description returns a short human readable explanation.
func (r Rejection) Description() string {
	switch r {
	case RejectNone:
		return "accepted"
	case RejectEmpty:
		return "block contains only blank lines"
	case RejectMissingTitle:
		return "block does not start with a \"# \" title line"
	case RejectUnterminatedFrontmatter:
		return "frontmatter opened with \"---\" is never closed"
	case RejectNoIngredients:
		return "no ingredient lines found after the title"
	case RejectNoInstructions:
		return "no instruction lines found after the ingredients"
	default:
		return string(r)
	}
}
