package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/recipemd/pkg/recipemd"
	"github.com/ccollicutt/recipemd/pkg/source"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	ShowPassing bool
}

// DiagnosticResult represents the result of checking one block
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "error"
	Message  string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand(g *Globals) *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose [file|dir|glob|-]...",
		Short: "Explain why recipe blocks are rejected",
		Long: `Check every recipe block and explain why blocks fail to parse.

For each block this reports whether it became a recipe and, if not, which
part is missing: the "# " title, the ingredient list, the instructions, or
the closing "---" of the frontmatter.

Example:
  recipemd diagnose recipes/
  recipemd diagnose --all dinner.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowPassing, "all", false, "Also list blocks that parsed")

	return cmd
}

func runDiagnose(cmd *cobra.Command, args []string, g *Globals, opts *DiagnoseOptions) error {
	ctx := contextOf(cmd.Context())

	cfg, err := g.loadConfig(ctx)
	if err != nil {
		return err
	}

	files, err := resolveInputs(args, cfg)
	if err != nil {
		return err
	}

	src := source.NewFileSource(files).WithStdin(cmd.InOrStdin())
	defer src.Close()

	var results []DiagnosticResult
	for {
		doc, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		results = append(results, diagnoseDocument(doc)...)
	}

	if printDiagnostics(cmd.OutOrStdout(), results, opts) > 0 {
		ExitCode = ExitFindings
	}
	return nil
}

func diagnoseDocument(doc *source.Document) []DiagnosticResult {
	blocks := recipemd.Diagnose(doc.Text)
	if len(blocks) == 0 {
		return []DiagnosticResult{{
			Check:   doc.Path,
			Status:  "error",
			Message: "Document is empty",
		}}
	}

	results := make([]DiagnosticResult, 0, len(blocks))
	for _, b := range blocks {
		r := DiagnosticResult{
			Check: fmt.Sprintf("%s:%d %s", doc.Path, b.Line, b.Heading),
		}
		if b.Accepted() {
			r.Status = "ok"
			r.Message = fmt.Sprintf("%d ingredients, %d steps",
				len(b.Recipe.Ingredients()), len(b.Recipe.Instructions))
		} else {
			r.Status = "error"
			r.Message = b.Reason.Description()
			r.Suggests = hintsFor(b.Reason)
		}
		results = append(results, r)
	}
	return results
}

func hintsFor(reason recipemd.Rejection) []string {
	switch reason {
	case recipemd.RejectMissingTitle:
		return []string{
			`Start each recipe with "# " followed by its name`,
			"Text before the first title is treated as its own block",
		}
	case recipemd.RejectUnterminatedFrontmatter:
		return []string{`Close the metadata section with a line containing only "---"`}
	case recipemd.RejectNoIngredients:
		return []string{
			`List ingredients as "- item" lines directly after the title or frontmatter`,
			"Separate ingredients from instructions with a blank line",
		}
	case recipemd.RejectNoInstructions:
		return []string{"Add at least one instruction after a blank line following the ingredients"}
	default:
		return nil
	}
}

// printDiagnostics writes the results and returns the number of failures.
func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) int {
	fmt.Fprintln(w, "=== Recipe Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	errCount := 0

	for _, r := range results {
		if r.Status == "ok" {
			okCount++
			if !opts.ShowPassing {
				continue
			}
		} else {
			errCount++
		}

		icon := "PASS"
		if r.Status != "ok" {
			icon = "FAIL"
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)
		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d recipes, %d rejected blocks\n", okCount, errCount)

	if errCount == 0 {
		fmt.Fprintln(w, "\nAll blocks parse.")
	}
	return errCount
}
