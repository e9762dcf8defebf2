// Package importer reads recipe documents from a source and collects the
// recipes they contain along with the blocks that were rejected.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ccollicutt/recipemd/pkg/recipemd"
	"github.com/ccollicutt/recipemd/pkg/source"
)

var (
	// ErrNoRecipes is returned when every document was read but none held
	// a valid recipe.
	ErrNoRecipes = errors.New("no valid recipe found")

	// ErrRejectedBlocks is returned in strict mode when any block was dropped.
	ErrRejectedBlocks = errors.New("one or more blocks were rejected")
)

// Importer drives recipe parsing across documents.
type Importer struct {
	log     *zap.Logger
	strict  bool
	workers int
}

// Option configures importer behavior.
type Option func(*Importer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(i *Importer) {
		if l != nil {
			i.log = l
		}
	}
}

// WithStrict makes Import fail when any block is rejected.
func WithStrict(strict bool) Option {
	return func(i *Importer) {
		i.strict = strict
	}
}

// WithWorkers sets how many documents are parsed at once. Values below 1
// mean one.
func WithWorkers(n int) Option {
	return func(i *Importer) {
		i.workers = max(n, 1)
	}
}

// New creates an importer.
func New(opts ...Option) *Importer {
	i := &Importer{log: zap.NewNop(), workers: 1}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import drains src and parses every document. Documents keep their source
// order in the result regardless of the worker count. The result is returned
// even when err is ErrNoRecipes or ErrRejectedBlocks so callers can report it.
func (i *Importer) Import(ctx context.Context, src source.DocumentSource) (*Result, error) {
	result := &Result{
		Documents: []*DocumentResult{},
		Metadata: Metadata{
			StartTime: time.Now(),
			Strict:    i.strict,
		},
	}

	docs, err := drain(ctx, src)
	if err != nil {
		return nil, err
	}

	parsed := make([]*DocumentResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workers)
	for idx, doc := range docs {
		idx, doc := idx, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parsed[idx] = ImportDocument(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, dr := range parsed {
		result.Documents = append(result.Documents, dr)
		result.Metadata.Sources = append(result.Metadata.Sources, dr.Source)
		i.logDocument(dr)
	}

	result.Metadata.EndTime = time.Now()

	switch {
	case result.TotalRecipes() == 0:
		return result, ErrNoRecipes
	case i.strict && result.TotalRejected() > 0:
		return result, fmt.Errorf("%w: %d rejected", ErrRejectedBlocks, result.TotalRejected())
	}
	return result, nil
}

func drain(ctx context.Context, src source.DocumentSource) ([]*source.Document, error) {
	var docs []*source.Document
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := src.Next(ctx)
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading recipe source: %w", err)
		}
		docs = append(docs, doc)
	}
}

func (i *Importer) logDocument(dr *DocumentResult) {
	i.log.Debug("parsed document",
		zap.String("path", dr.Source),
		zap.Int("blocks", dr.Blocks),
		zap.Int("recipes", len(dr.Recipes)),
		zap.Int("rejected", len(dr.Rejected)))
	for _, rej := range dr.Rejected {
		i.log.Info("rejected block",
			zap.String("path", dr.Source),
			zap.Int("line", rej.Line),
			zap.String("heading", rej.Heading),
			zap.String("reason", string(rej.Reason)))
	}
}

// ImportDocument parses a single document.
func ImportDocument(doc *source.Document) *DocumentResult {
	dr := &DocumentResult{
		Source:   doc.Path,
		Recipes:  []recipemd.ParsedRecipe{},
		Rejected: []Rejected{},
	}
	for _, b := range recipemd.Diagnose(doc.Text) {
		dr.Blocks++
		if b.Accepted() {
			dr.Recipes = append(dr.Recipes, *b.Recipe)
			continue
		}
		dr.Rejected = append(dr.Rejected, Rejected{
			Line:    b.Line,
			Heading: b.Heading,
			Reason:  b.Reason,
		})
	}
	return dr
}
