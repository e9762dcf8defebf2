package recipemd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecipe is wrapped by Validate failures.
var ErrInvalidRecipe = errors.New("invalid recipe")

// Validate reports whether r can be serialized and parsed back unchanged:
// a single-line title, at least one ingredient item and one instruction,
// and no empty or multi-line item, step, yield or time.
func (r ParsedRecipe) Validate() error {
	if err := checkLine("title", r.Title, true); err != nil {
		return err
	}

	items := 0
	for gi, g := range r.IngredientGroups {
		for ii, item := range g.Items {
			if err := checkLine(fmt.Sprintf("ingredient_groups[%d].items[%d]", gi, ii), item, true); err != nil {
				return err
			}
			items++
		}
	}
	if items == 0 {
		return fmt.Errorf("%w: no ingredient items", ErrInvalidRecipe)
	}

	if len(r.Instructions) == 0 {
		return fmt.Errorf("%w: no instructions", ErrInvalidRecipe)
	}
	for i, step := range r.Instructions {
		if err := checkLine(fmt.Sprintf("instructions[%d]", i), step, true); err != nil {
			return err
		}
	}

	if err := checkLine("yield", r.Yield, false); err != nil {
		return err
	}
	return checkLine("total_time", r.TotalTime, false)
}

func checkLine(field, value string, required bool) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s spans several lines", ErrInvalidRecipe, field)
	}
	if required && strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidRecipe, field)
	}
	return nil
}
