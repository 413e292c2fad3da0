package propgen

import (
	"context"

	"github.com/goliatone/go-propgen/pkg/orchestrator"
	"github.com/goliatone/go-propgen/pkg/render"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// Options carries per-run settings and the swap resolver; alias exported via
// the root package for convenience.
type Options = render.Options

// Settings is the ordered list of boolean toggles a renderer reports.
type Settings = render.Settings

// FormatResult is the renderer output contract.
type FormatResult = render.FormatResult

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the scene source, builds the canonical model from its
// relevant nodes and renders it using the named renderer ("react" when
// empty).
func Generate(ctx context.Context, source scene.Source, rendererName string, options Options, opts ...orchestrator.Option) (FormatResult, error) {
	gen := orchestrator.New(opts...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
		Options:  options,
	})
}

// GenerateFromTree renders an already parsed tree, bypassing the loader and
// parser stages.
func GenerateFromTree(ctx context.Context, tree *scene.Tree, rendererName string, options Options, opts ...orchestrator.Option) (FormatResult, error) {
	gen := orchestrator.New(opts...)
	return gen.Generate(ctx, orchestrator.Request{
		Tree:     tree,
		Renderer: rendererName,
		Options:  options,
	})
}
