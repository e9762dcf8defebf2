package recipemd

import (
	"regexp"
	"strings"
)

var (
	// An ingredient is either a "-" or "*" bullet or an indented line.
	ingredientLine = regexp.MustCompile(`^(?:\s*[-*]\s+|\s+)(\S.*)$`)

	instructionMarker = regexp.MustCompile(`^(?:\d+[.)]|[-*])\s+`)
)

func parseIngredient(line string) (string, bool) {
	if isBlank(line) {
		return "", false
	}
	m := ingredientLine.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	// \S in the pattern is ASCII-only; TrimSpace also strips Unicode spaces.
	item := strings.TrimSpace(m[1])
	if item == "" {
		return "", false
	}
	return item, true
}

func parseInstruction(line string) string {
	line = strings.TrimSpace(line)
	line = instructionMarker.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// parseLines runs the block state machine: title, frontmatter, ingredients,
// instructions. It returns the rejection reason when no recipe is formed.
func parseLines(lines []string) (ParsedRecipe, Rejection) {
	c := newCursor(lines)

	c.skipBlank()
	line, ok := c.next()
	if !ok {
		return ParsedRecipe{}, RejectEmpty
	}
	if !isTitle(line) {
		return ParsedRecipe{}, RejectMissingTitle
	}
	title := strings.TrimSpace(strings.TrimPrefix(line, titlePrefix))
	if title == "" {
		return ParsedRecipe{}, RejectMissingTitle
	}

	c.skipBlank()
	fm, opened := parseFrontmatter(c)

	c.skipBlank()
	items := c.takeWhile(parseIngredient)

	c.skipBlank()
	var steps []string
	for _, l := range c.rest() {
		if isBlank(l) {
			continue
		}
		if step := parseInstruction(l); step != "" {
			steps = append(steps, step)
		}
	}

	switch {
	case len(items) == 0 && opened && !fm.terminated:
		return ParsedRecipe{}, RejectUnterminatedFrontmatter
	case len(items) == 0:
		return ParsedRecipe{}, RejectNoIngredients
	case len(steps) == 0:
		return ParsedRecipe{}, RejectNoInstructions
	}

	return ParsedRecipe{
		Title:            title,
		IngredientGroups: []IngredientGroup{{Label: "", Items: items}},
		Instructions:     steps,
		Yield:            fm.yield,
		TotalTime:        fm.totalTime,
	}, RejectNone
}

// ParseBlock parses a single recipe block. It reports false when the block
// lacks a title, ingredients or instructions.
func ParseBlock(text string) (ParsedRecipe, bool) {
	r, reason := parseLines(splitLines(text))
	return r, reason == RejectNone
}
