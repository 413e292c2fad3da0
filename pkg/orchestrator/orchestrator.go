package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-propgen/internal/logging"
	internalLoader "github.com/goliatone/go-propgen/internal/scene/loader"
	internalParser "github.com/goliatone/go-propgen/internal/scene/parser"
	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
	"github.com/goliatone/go-propgen/pkg/renderers/react"
	"github.com/goliatone/go-propgen/pkg/renderers/vue"
	"github.com/goliatone/go-propgen/pkg/scene"
)

const defaultRendererName = "react"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom scene loader.
func WithLoader(loader scene.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom scene parser.
func WithParser(parser scene.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger routes pipeline and builder debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSanitizedText enables slot text sanitizing on the default renderers.
// It has no effect when a registry is injected.
func WithSanitizedText() Option {
	return func(o *Orchestrator) {
		o.sanitizeText = true
	}
}

// WithTransformer registers a Transformer that mutates the model after
// building and before decorators run.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithModelDecorators registers decorators that run against the built model
// before rendering.
func WithModelDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates the full pipeline from scene document to
// generated code. It applies defaults (React and Vue renderers, React as the
// default target) while remaining open to dependency injection.
type Orchestrator struct {
	loader          scene.Loader
	parser          scene.Parser
	builder         model.Builder
	registry        *render.Registry
	defaultRenderer string
	logger          *slog.Logger
	sanitizeText    bool
	transformer     Transformer
	decorators      []model.Decorator
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs of one generation run.
type Request struct {
	// Source identifies where the scene document lives. Optional when Tree is
	// supplied.
	Source scene.Source

	// Tree allows callers to bypass loading and parsing.
	Tree *scene.Tree

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// Options carries per-run settings. A nil Resolver is replaced by the
	// request tree.
	Options render.Options
}

// Generate executes the loader → parser → model builder → renderer sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (render.FormatResult, error) {
	tree, m, err := o.model(ctx, req)
	if err != nil {
		return render.FormatResult{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return render.FormatResult{}, err
	}

	options := req.Options
	if options.Resolver == nil {
		options.Resolver = tree
	}

	o.logger.Debug("rendering model", "renderer", renderer.Name(), "components", len(m.Components), "definitions", len(m.Definitions))
	result, err := renderer.Format(ctx, m, options)
	if err != nil {
		return render.FormatResult{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return result, nil
}

// Model runs the pipeline up to the canonical model.
func (o *Orchestrator) Model(ctx context.Context, req Request) (model.Model, error) {
	_, m, err := o.model(ctx, req)
	return m, err
}

// LoadTree loads and parses source so several runs can share one tree.
func (o *Orchestrator) LoadTree(ctx context.Context, source scene.Source) (*scene.Tree, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.resolveTree(ctx, Request{Source: source})
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) model(ctx context.Context, req Request) (*scene.Tree, model.Model, error) {
	if ctx == nil {
		return nil, model.Model{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, model.Model{}, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, model.Model{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, model.Model{}, err
		}
	}

	tree, err := o.resolveTree(ctx, req)
	if err != nil {
		return nil, model.Model{}, err
	}

	nodes := tree.Relevant()
	o.logger.Debug("building model", "tree", tree.Name, "nodes", len(nodes))
	m := o.builder.Build(nodes)

	if err := o.applyTransformer(ctx, &m); err != nil {
		return nil, model.Model{}, err
	}
	if err := o.applyDecorators(&m); err != nil {
		return nil, model.Model{}, err
	}
	return tree, m, nil
}

func (o *Orchestrator) resolveTree(ctx context.Context, req Request) (*scene.Tree, error) {
	if req.Tree != nil {
		return req.Tree, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or tree is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	tree, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse document: %w", err)
	}
	return tree, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(m *model.Model) error {
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(m); err != nil {
			return fmt.Errorf("orchestrator: decorate model: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, m *model.Model) error {
	if o.transformer == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, m); err != nil {
		return fmt.Errorf("orchestrator: transform model: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(scene.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(scene.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithLogger(o.logger))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		if err := o.registerDefaultRenderers(); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) registerDefaultRenderers() error {
	var (
		reactOpts []react.Option
		vueOpts   []vue.Option
	)
	if o.sanitizeText {
		reactOpts = append(reactOpts, react.WithSanitizedText())
		vueOpts = append(vueOpts, vue.WithSanitizedText())
	}

	reactRenderer, err := react.New(reactOpts...)
	if err != nil {
		return err
	}
	if err := o.registry.Register(reactRenderer); err != nil {
		return err
	}

	vueRenderer, err := vue.New(vueOpts...)
	if err != nil {
		return err
	}
	return o.registry.Register(vueRenderer)
}
