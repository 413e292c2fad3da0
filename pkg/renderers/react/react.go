package react

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
	rendertemplate "github.com/goliatone/go-propgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-propgen/pkg/render/template/gotemplate"
)

const (
	rendererName       = "react"
	rendererLabel      = "React"
	definitionTemplate = "templates/definition.tpl"
	header             = `import { FC, ReactNode } from "react";`
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizeText     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizedText strips markup from text slot content.
func WithSanitizedText() Option {
	return func(cfg *config) {
		cfg.sanitizeText = true
	}
}

// Renderer emits JSX instances and TSX declarations.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	instance  render.InstanceFormat
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the React renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("react renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	format := render.InstanceFormat{
		Attribute:   formatAttribute,
		Slot:        formatSlot,
		SelfClosing: true,
	}
	if cfg.sanitizeText {
		format.TextFilter = render.SanitizeText
	}

	return &Renderer{templates: renderer, instance: format}, nil
}

func (r *Renderer) Name() string {
	return rendererName
}

func (r *Renderer) Label() string {
	return rendererLabel
}

// Format renders the instance and definitions passes.
func (r *Renderer) Format(ctx context.Context, m model.Model, options render.Options) (render.FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return render.FormatResult{}, err
	}
	if r.templates == nil {
		return render.FormatResult{}, fmt.Errorf("react renderer: template renderer is nil")
	}

	definitions, err := r.formatDefinitions(m, options)
	if err != nil {
		return render.FormatResult{}, err
	}
	return render.FormatResult{
		Label: rendererLabel,
		Items: []render.FormatResultItem{
			r.formatInstances(m, options),
			definitions,
		},
	}, nil
}

func (r *Renderer) formatInstances(m model.Model, options render.Options) render.FormatResultItem {
	settings := render.Merge(render.DefaultInstanceSettings(), options.InstanceSettings)
	decoded := render.DecodeInstanceSettings(settings)

	components := render.SortedComponents(m)
	lines := make([]string, 0, len(components))
	for _, component := range components {
		lines = append(lines, render.FormatInstance(component, m, r.instance, decoded, options.Resolver))
	}

	return render.FormatResultItem{
		Label:       "Instances",
		Code:        []render.Code{{Language: "jsx", Lines: lines}},
		Settings:    settings,
		SettingsKey: render.SettingsKeyInstance,
	}
}
