package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/recipemd/pkg/importer"
	"github.com/ccollicutt/recipemd/pkg/recipemd"
	"github.com/ccollicutt/recipemd/pkg/source"
)

// FormatOptions holds command-line options for the format command.
type FormatOptions struct {
	Write bool
	Check bool
	Force bool
}

// NewFormatCommand creates the format command.
func NewFormatCommand(g *Globals) *cobra.Command {
	opts := &FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format [file|dir|glob|-]...",
		Short: "Rewrite recipe markdown in canonical form",
		Long: `Parse recipe documents and print them back in canonical form:
"- " ingredient bullets, steps renumbered from 1, and frontmatter reduced
to yield and time.

Ingredient group labels are not part of the text format, so every group is
written as one flat list.

With --write, files are rewritten in place. Files containing rejected
blocks are left untouched unless --force is given, since rewriting would
drop those blocks. With --check, nothing is written; files that are not
canonical are listed and the exit code is 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, g, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "Rewrite files in place")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "List files that are not canonical and exit 1")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "With --write, rewrite files even if blocks would be dropped")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, g *Globals, opts *FormatOptions) error {
	if opts.Write && opts.Check {
		return errors.New("--write and --check are mutually exclusive")
	}

	ctx := contextOf(cmd.Context())

	cfg, err := g.loadConfig(ctx)
	if err != nil {
		return err
	}

	log, err := g.logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	files, err := resolveInputs(args, cfg)
	if err != nil {
		return err
	}

	src := source.NewFileSource(files).WithStdin(cmd.InOrStdin())
	defer src.Close()

	out := cmd.OutOrStdout()
	found := 0
	for {
		doc, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		n, err := formatDocument(log, doc, opts, out)
		if err != nil {
			return err
		}
		found += n
	}

	if found == 0 {
		log.Warn(importer.ErrNoRecipes.Error())
		ExitCode = ExitFindings
	}
	return nil
}

// formatDocument handles one document and returns how many recipes it held.
func formatDocument(log *zap.Logger, doc *source.Document, opts *FormatOptions, out io.Writer) (int, error) {
	dr := importer.ImportDocument(doc)
	canonical := recipemd.SerializeAll(dr.Recipes)

	switch {
	case opts.Check:
		if canonical != doc.Text {
			fmt.Fprintln(out, doc.Path)
			ExitCode = ExitFindings
		}

	case opts.Write && doc.Path != source.StdinName:
		if canonical == doc.Text {
			log.Debug("already canonical", zap.String("path", doc.Path))
			break
		}
		if len(dr.Recipes) == 0 {
			log.Warn("no recipes found, file left unchanged", zap.String("path", doc.Path))
			break
		}
		if len(dr.Rejected) > 0 && !opts.Force {
			log.Warn("file has rejected blocks, left unchanged (use --force to rewrite)",
				zap.String("path", doc.Path),
				zap.Int("rejected", len(dr.Rejected)))
			ExitCode = ExitFindings
			break
		}
		if err := writeFilePreservingMode(doc.Path, canonical); err != nil {
			return 0, err
		}
		log.Info("formatted", zap.String("path", doc.Path), zap.Int("recipes", len(dr.Recipes)))

	default:
		if _, err := io.WriteString(out, canonical); err != nil {
			return 0, err
		}
	}

	return len(dr.Recipes), nil
}

func writeFilePreservingMode(path, text string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	// #nosec G306 -- keeps the file's existing permissions
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
