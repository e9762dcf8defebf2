package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/recipemd/pkg/config"
	"github.com/ccollicutt/recipemd/pkg/importer"
	"github.com/ccollicutt/recipemd/pkg/output"
	"github.com/ccollicutt/recipemd/pkg/source"
	"github.com/ccollicutt/recipemd/pkg/webhook"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output  string
	Strict  bool
	Quiet   bool
	Style   string
	Workers int

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewParseCommand creates the parse command.
func NewParseCommand(g *Globals) *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file|dir|glob|-]...",
		Short: "Parse recipe markdown and report what was found",
		Long: `Parse one or more recipe markdown documents.

Each document may hold several recipes, each starting with a "# Title" line,
followed by optional --- frontmatter (yield, time), a bulleted ingredient list
and the instruction steps. Blocks missing a title, ingredients or instructions
are skipped and listed as rejected.

Output formats:
  text      - import report (default)
  markdown  - the parsed recipes in canonical recipe markdown
  json      - full report as JSON
  yaml      - full report as YAML
  pretty    - recipes rendered for the terminal
  html      - recipes as an HTML fragment

Exit codes:
  0 - At least one recipe parsed
  1 - No recipe found, or a block was rejected with --strict
  2 - Configuration or runtime error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|markdown|json|yaml|pretty|html)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when any block is rejected")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Documents parsed concurrently (default from config)")
	cmd.Flags().StringVar(&opts.Style, "style", "auto", "Glamour style for pretty output (auto|dark|light|notty)")

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_recipes", "When to fire webhook (on_recipes|always|never)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, g *Globals, opts *ParseOptions) error {
	ctx := contextOf(cmd.Context())

	cfg, err := g.loadConfig(ctx)
	if err != nil {
		return err
	}

	webhooks, err := collectWebhooks(cfg, opts)
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

	format := opts.Output
	if format == "" {
		format = cfg.Output
	}
	formatter, err := output.New(format, output.FormatOptions{
		Verbose: g.Verbose,
		Quiet:   opts.Quiet,
		Style:   opts.Style,
	})
	if err != nil {
		return err
	}

	src := source.NewFileSource(files).WithStdin(cmd.InOrStdin())
	defer src.Close()

	imp := importer.New(
		importer.WithLogger(log),
		importer.WithStrict(opts.Strict || cfg.Strict),
		importer.WithWorkers(workers(opts.Workers, cfg.Workers)),
	)

	result, importErr := imp.Import(ctx, src)
	if importErr != nil && !isFinding(importErr) {
		return fmt.Errorf("import failed: %w", importErr)
	}

	report := output.NewReport(result, g.ConfigFile)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Webhook failures are logged but do not fail the import.
	sendWebhooks(ctx, log, webhooks, report)

	if importErr != nil {
		log.Warn("import finished with findings", zap.Error(importErr))
		ExitCode = ExitFindings
	}

	return nil
}

// workers prefers the flag over the config value.
func workers(flag, configured int) int {
	if flag > 0 {
		return flag
	}
	return configured
}

func isFinding(err error) bool {
	return errors.Is(err, importer.ErrNoRecipes) || errors.Is(err, importer.ErrRejectedBlocks)
}

// sendWebhooks sends the report to all configured webhooks.
func sendWebhooks(ctx context.Context, log *zap.Logger, webhooks []config.WebhookConfig, report *output.Report) {
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasRecipes()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
			Retries: wh.Retries,
		})

		if resp.Success() {
			log.Info("webhook sent",
				zap.String("webhook", wh.DisplayName()),
				zap.Int("status", resp.StatusCode),
				zap.String("request_id", resp.RequestID),
				zap.Int("attempts", resp.Attempts),
				zap.Duration("duration", resp.Duration))
		} else {
			log.Error("webhook failed",
				zap.String("webhook", wh.DisplayName()),
				zap.String("request_id", resp.RequestID),
				zap.Int("attempts", resp.Attempts),
				zap.Error(resp.Error))
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ParseOptions) ([]config.WebhookConfig, error) {
	trigger, err := config.ParseWebhookTrigger(opts.WebhookTrigger)
	if err != nil {
		return nil, fmt.Errorf("--webhook-trigger: %w", err)
	}

	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks, nil
}

// shouldFireWebhook determines if a webhook should fire.
func shouldFireWebhook(trigger config.WebhookTrigger, hasRecipes bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasRecipes
	}
}
