package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ccollicutt/recipemd/internal/logging"
	"github.com/ccollicutt/recipemd/pkg/config"
	"github.com/ccollicutt/recipemd/pkg/source"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1 // no recipes, rejected blocks or non-canonical files
	ExitError    = 2 // configuration or runtime error
)

// Globals holds the persistent flags shared by every command.
type Globals struct {
	ConfigFile string
	Verbose    bool
	LogJSON    bool
}

// errNoInputs is returned when neither arguments nor config name an input.
var errNoInputs = errors.New("no inputs given (pass files, directories, globs or - for stdin)")

func (g *Globals) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, g.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (g *Globals) logger() (*zap.Logger, error) {
	return logging.New(logging.Options{Verbose: g.Verbose, JSON: g.LogJSON})
}

// resolveInputs expands command-line inputs, falling back to the config.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Inputs
	}
	if len(patterns) == 0 {
		return nil, errNoInputs
	}

	files, err := source.ExpandInputs(patterns, cfg.Extensions)
	if err != nil {
		return nil, fmt.Errorf("expanding inputs: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no recipe files matched: %v", patterns)
	}
	return files, nil
}

func contextOf(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
