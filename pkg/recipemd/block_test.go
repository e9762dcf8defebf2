package recipemd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func single(items ...string) []IngredientGroup {
	return []IngredientGroup{{Label: "", Items: items}}
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name   string
		block  string
		want   ParsedRecipe
		wantOK bool
	}{
		{
			name:  "minimal",
			block: "# Toast\n- bread\n\n1. toast it",
			want: ParsedRecipe{
				Title:            "Toast",
				IngredientGroups: single("bread"),
				Instructions:     []string{"toast it"},
			},
			wantOK: true,
		},
		{
			name:  "title trimmed",
			block: "#    Soup   \n- water\n\nboil",
			want: ParsedRecipe{
				Title:            "Soup",
				IngredientGroups: single("water"),
				Instructions:     []string{"boil"},
			},
			wantOK: true,
		},
		{
			name:  "leading blank lines",
			block: "\n\n# Soup\n- water\n\nboil",
			want: ParsedRecipe{
				Title:            "Soup",
				IngredientGroups: single("water"),
				Instructions:     []string{"boil"},
			},
			wantOK: true,
		},
		{
			name:  "frontmatter",
			block: "# Stew\n\n---\nyield: 4 servings\ntime: 2h\n---\n\n- beef\n- carrots\n\n1. brown\n2. simmer",
			want: ParsedRecipe{
				Title:            "Stew",
				IngredientGroups: single("beef", "carrots"),
				Instructions:     []string{"brown", "simmer"},
				Yield:            "4 servings",
				TotalTime:        "2h",
			},
			wantOK: true,
		},
		{
			name:  "frontmatter aliases are case insensitive",
			block: "# Stew\n---\nServings: 6\nDURATION: 90m\n---\n- beef\n\nbrown",
			want: ParsedRecipe{
				Title:            "Stew",
				IngredientGroups: single("beef"),
				Instructions:     []string{"brown"},
				Yield:            "6",
				TotalTime:        "90m",
			},
			wantOK: true,
		},
		{
			name:  "total_time alias",
			block: "# Stew\n---\ntotal_time: 1h 10m\n---\n- beef\n\nbrown",
			want: ParsedRecipe{
				Title:            "Stew",
				IngredientGroups: single("beef"),
				Instructions:     []string{"brown"},
				TotalTime:        "1h 10m",
			},
			wantOK: true,
		},
		{
			name:  "duplicate frontmatter key last wins",
			block: "# Stew\n---\nyield: 2\nservings: 8\ntime: 5m\ntime: 10m\n---\n- beef\n\nbrown",
			want: ParsedRecipe{
				Title:            "Stew",
				IngredientGroups: single("beef"),
				Instructions:     []string{"brown"},
				Yield:            "8",
				TotalTime:        "10m",
			},
			wantOK: true,
		},
		{
			name:  "unknown keys and malformed lines ignored",
			block: "# Stew\n---\nauthor: me\nthis is not a pair\n\nyield:   3  \n---\n- beef\n\nbrown",
			want: ParsedRecipe{
				Title:            "Stew",
				IngredientGroups: single("beef"),
				Instructions:     []string{"brown"},
				Yield:            "3",
			},
			wantOK: true,
		},
		{
			name:  "ingredient markers",
			block: "# Mix\n- one\n*   two  \n  - three\n    four\n\nstir",
			want: ParsedRecipe{
				Title:            "Mix",
				IngredientGroups: single("one", "two", "three", "four"),
				Instructions:     []string{"stir"},
			},
			wantOK: true,
		},
		{
			name:  "unmarked line ends ingredients",
			block: "# Mix\n- flour\n- water\nKnead well\nRest",
			want: ParsedRecipe{
				Title:            "Mix",
				IngredientGroups: single("flour", "water"),
				Instructions:     []string{"Knead well", "Rest"},
			},
			wantOK: true,
		},
		{
			name:  "instruction markers stripped and blanks skipped",
			block: "# Mix\n- a\n\n1. first\n\n2) second\n- third\n* fourth\nfifth\n\n\n10. sixth",
			want: ParsedRecipe{
				Title:            "Mix",
				IngredientGroups: single("a"),
				Instructions:     []string{"first", "second", "third", "fourth", "fifth", "sixth"},
			},
			wantOK: true,
		},
		{
			name:  "only one instruction marker stripped",
			block: "# Mix\n- a\n\n1. 2. odd",
			want: ParsedRecipe{
				Title:            "Mix",
				IngredientGroups: single("a"),
				Instructions:     []string{"2. odd"},
			},
			wantOK: true,
		},
		{
			name:  "marker without whitespace kept",
			block: "# Mix\n- a\n\n1.5 cups is plenty",
			want: ParsedRecipe{
				Title:            "Mix",
				IngredientGroups: single("a"),
				Instructions:     []string{"1.5 cups is plenty"},
			},
			wantOK: true,
		},
		{name: "empty", block: "", wantOK: false},
		{name: "blank", block: "\n  \n", wantOK: false},
		{name: "no title prefix", block: "Toast\n- bread\n\ntoast", wantOK: false},
		{name: "hash without space", block: "#Toast\n- bread\n\ntoast", wantOK: false},
		{name: "empty title", block: "#   \n- bread\n\ntoast", wantOK: false},
		{name: "title only", block: "# Toast", wantOK: false},
		{name: "no ingredients", block: "# Toast\n\n1. toast", wantOK: false},
		{name: "no instructions", block: "# Toast\n- bread\n\n", wantOK: false},
		{name: "unterminated frontmatter", block: "# Toast\n---\nyield: 1\n- bread\n\n1. toast", wantOK: false},
		{name: "no-break space bullet only", block: "# A\n- \u00a0\n\n1. step", wantOK: false},
		{
			name:  "no-break space bullet ends ingredients",
			block: "# A\n- salt\n- \u00a0\n- pepper\n\n1. step",
			want: ParsedRecipe{
				Title:            "A",
				IngredientGroups: single("salt"),
				Instructions:     []string{"-", "pepper", "step"},
			},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBlock(tt.block)
			if ok != tt.wantOK {
				t.Fatalf("ParseBlock() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseBlock() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLines_Rejections(t *testing.T) {
	tests := []struct {
		block string
		want  Rejection
	}{
		{"", RejectEmpty},
		{"\n\n", RejectEmpty},
		{"Toast", RejectMissingTitle},
		{"# ", RejectMissingTitle},
		{"# Toast", RejectNoIngredients},
		{"# Toast\n\n1. toast", RejectNoIngredients},
		{"# Toast\n---\nyield: 1", RejectUnterminatedFrontmatter},
		{"# Toast\n---\nyield: 1\n---\n\n1. toast", RejectNoIngredients},
		{"# Toast\n- bread", RejectNoInstructions},
		{"# Toast\n- bread\n\n1. toast", RejectNone},
	}

	for _, tt := range tests {
		_, got := parseLines(splitLines(tt.block))
		if got != tt.want {
			t.Errorf("parseLines(%q) = %q, want %q", tt.block, got, tt.want)
		}
	}
}

func TestRejection_Description(t *testing.T) {
	reasons := []Rejection{
		RejectNone,
		RejectEmpty,
		RejectMissingTitle,
		RejectUnterminatedFrontmatter,
		RejectNoIngredients,
		RejectNoInstructions,
	}
	seen := make(map[string]bool)
	for _, r := range reasons {
		d := r.Description()
		if d == "" {
			t.Errorf("%q has empty description", r)
		}
		if seen[d] {
			t.Errorf("duplicate description %q", d)
		}
		seen[d] = true
	}
	if got := Rejection("other").Description(); got != "other" {
		t.Errorf("unknown Description() = %q, want %q", got, "other")
	}
}
