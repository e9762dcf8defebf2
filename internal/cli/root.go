// Package cli provides the command-line interface for recipemd.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/recipemd/internal/cli/commands"
	"github.com/ccollicutt/recipemd/internal/cli/plugins"
)

// Execute runs the root command against os.Args and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], plugins.StdStreams(), plugins.DefaultFinder())
}

// Run executes the CLI with explicit arguments and streams. Commands that are
// not built in are dispatched to a recipemd-<command> plugin when finder
// locates one.
func Run(ctx context.Context, args []string, s plugins.Streams, finder *plugins.Finder) int {
	commands.ExitCode = commands.ExitOK

	globals := &commands.Globals{}
	rootCmd := NewRootCommand(globals)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(s.In)
	rootCmd.SetOut(s.Out)
	rootCmd.SetErr(s.Err)

	name := firstCommand(args)
	if name != "" && !isBuiltinCommand(rootCmd, name) {
		if pluginPath, err := finder.Find(name); err == nil {
			return plugins.Execute(ctx, pluginPath, args[1:], s)
		}
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if name != "" && !isBuiltinCommand(rootCmd, name) {
			writeErr(s.Err, plugins.NotFoundMessage(name))
			return commands.ExitError
		}
		// SilenceErrors keeps cobra from printing this itself
		writeErr(s.Err, fmt.Sprintf("Error: %v", err))
		return commands.ExitError
	}
	return commands.ExitCode
}

// firstCommand returns args[0] when it looks like a command name.
func firstCommand(args []string) string {
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return ""
	}
	return args[0]
}

func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

func writeErr(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

// NewRootCommand creates the root cobra command.
func NewRootCommand(g *commands.Globals) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recipemd",
		Short: "Parse and format recipe markdown",
		Long: `recipemd converts plain-text recipe documents into structured recipes
and back again.

A document holds one or more recipes, each starting with a "# Title" line,
followed by optional "---" frontmatter (yield, time), a bulleted ingredient
list and the instructions. Blocks that do not form a complete recipe are
skipped; use "recipemd diagnose" to see why.

PLUGINS:
  Unknown commands are looked up as standalone binaries named
  recipemd-<command>, searched in order:
    1. Same directory as the recipemd binary
    2. ~/.recipemd/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.ConfigFile, "config", "c", os.Getenv("RECIPEMD_CONFIG"), "Config file (env RECIPEMD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&g.LogJSON, "log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(commands.NewParseCommand(g))
	rootCmd.AddCommand(commands.NewFormatCommand(g))
	rootCmd.AddCommand(commands.NewDiagnoseCommand(g))
	rootCmd.AddCommand(commands.NewServeCommand(g))
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
