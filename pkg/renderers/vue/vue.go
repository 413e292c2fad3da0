package vue

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/render"
	rendertemplate "github.com/goliatone/go-propgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-propgen/pkg/render/template/gotemplate"
)

const (
	rendererName        = "vue"
	rendererLabel       = "Vue"
	compositionTemplate = "templates/composition.tpl"
	optionsTemplate     = "templates/options.tpl"
	optionsHeader       = "import { defineComponent, type PropType } from 'vue'"
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

// Renderer emits Vue template instances and script declarations in either
// the composition or the options API style.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	instance  render.InstanceFormat
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Vue renderer applying any provided options.
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
			return nil, fmt.Errorf("vue renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	format := render.InstanceFormat{
		Attribute:     formatAttribute,
		Slot:          formatSlot,
		SelfClosing:   true,
		InstanceSlots: true,
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
		return render.FormatResult{}, fmt.Errorf("vue renderer: template renderer is nil")
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

// formatInstances emits every instance into a single snippet separated by
// blank lines, the way a template block would hold them.
func (r *Renderer) formatInstances(m model.Model, options render.Options) render.FormatResultItem {
	settings := render.Merge(render.DefaultInstanceSettings(), options.InstanceSettings)
	decoded := render.DecodeInstanceSettings(settings)

	components := render.SortedComponents(m)
	blocks := make([]string, 0, len(components))
	for _, component := range components {
		blocks = append(blocks, render.FormatInstance(component, m, r.instance, decoded, options.Resolver))
	}

	var lines []string
	if len(blocks) > 0 {
		lines = []string{strings.Join(blocks, "\n\n")}
	}

	return render.FormatResultItem{
		Label:       "Instances",
		Code:        []render.Code{{Language: "vue", Lines: lines}},
		Settings:    settings,
		SettingsKey: render.SettingsKeyInstance,
	}
}
