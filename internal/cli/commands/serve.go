package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/recipemd/pkg/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(g *Globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recipe conversion HTTP service",
		Long: `Run an HTTP service exposing the parser and serializer.

Endpoints:
  GET  /healthz        liveness check
  POST /v1/parse       recipe markdown in, JSON recipes and rejected blocks out
  POST /v1/format      recipe markdown in, canonical recipe markdown out
  POST /v1/serialize   JSON recipe (or array) in, recipe markdown out

The service stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(contextOf(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := g.loadConfig(ctx)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log, err := g.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return server.New(cfg.Server, log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config and RECIPEMD_ADDR)")

	return cmd
}
