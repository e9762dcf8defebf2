package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/recipemd/pkg/config"
	"github.com/ccollicutt/recipemd/pkg/source"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a recipemd configuration file without importing anything.

Checks:
  - YAML syntax
  - Output format
  - Server settings
  - Webhook URLs and triggers
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(contextOf(cmd.Context()), configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Inputs:   %d pattern(s)\n", len(cfg.Inputs))
	fmt.Fprintf(out, "  Output:   %s\n", cfg.Output)
	fmt.Fprintf(out, "  Strict:   %t\n", cfg.Strict)
	fmt.Fprintf(out, "  Workers:  %d\n", cfg.Workers)
	fmt.Fprintf(out, "  Server:   %s\n", cfg.Server.Addr)
	fmt.Fprintf(out, "  Webhooks: %d\n", len(cfg.Webhooks))

	for i, wh := range cfg.Webhooks {
		fmt.Fprintf(out, "    %d. [%s] %s\n", i+1, wh.Trigger, wh.DisplayName())
	}

	if len(cfg.Inputs) == 0 {
		return nil
	}

	files, err := source.ExpandInputs(cfg.Inputs, cfg.Extensions)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: Error expanding input patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Fprintf(out, "\nWarning: No files match input patterns\n")
	} else {
		fmt.Fprintf(out, "\nRecipe files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}

	return nil
}
