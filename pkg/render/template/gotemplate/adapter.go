package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-propgen/pkg/render/template"
)

const defaultExtension = ".tpl"

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	extension  string
	filters    map[string]pongo2.FilterFunction
	globalData map[string]any
}

// WithFS loads templates from files, typically an embedded bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithExtension overrides the extension appended to template names.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		cfg.extension = trimmed
	}
}

// WithFilters registers pongo2 filters when the engine loads. Filters are
// process wide in pongo2, so a name that already exists is left alone.
func WithFilters(filters map[string]pongo2.FilterFunction) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]pongo2.FilterFunction, len(filters))
		}
		for name, fn := range filters {
			if name = strings.TrimSpace(name); name != "" && fn != nil {
				cfg.filters[name] = fn
			}
		}
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Engine implements template.TemplateRenderer on a pongo2 template set.
// Parsed templates are cached by path.
type Engine struct {
	mu sync.RWMutex

	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	extension string
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. A template filesystem is required.
func New(options ...Option) (*Engine, error) {
	cfg := &config{extension: defaultExtension}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		return nil, errors.New("gotemplate: a template filesystem is required")
	}

	engine := &Engine{
		set:       pongo2.NewSet("propgen", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
		extension: cfg.extension,
	}

	registerBuiltinFilters()
	for name, fn := range cfg.filters {
		if !pongo2.FilterExists(name) {
			if err := pongo2.RegisterFilter(name, fn); err != nil {
				return nil, fmt.Errorf("gotemplate: register filter %q: %w", name, err)
			}
		}
	}
	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("gotemplate: apply global data: %w", err)
	}
	return engine, nil
}

// Render treats name as inline template source when it contains template
// tags and as a template path otherwise.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	if strings.Contains(name, "{{") || strings.Contains(name, "{%") {
		return e.RenderString(name, data, out...)
	}
	return e.RenderTemplate(name, data, out...)
}

// RenderTemplate executes the template at name, appending the configured
// extension when missing. The result is also copied to every writer in out.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	path := name
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.template(path)
	if err != nil {
		return "", err
	}
	return e.execute(tmpl, path, data, out)
}

// RenderString parses and executes templateContent.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}
	return e.execute(tmpl, "string", data, out)
}

// RegisterFilter adapts fn into a pongo2 filter. Registering an existing
// name is an error.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("gotemplate: filter name and function required")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("gotemplate: filter %q already exists", name)
	}

	return pongo2.RegisterFilter(name, func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	})
}

// GlobalContext merges data into the values every template sees.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.set == nil {
		return errors.New("gotemplate: engine is nil")
	}
	if data == nil {
		return nil
	}
	globals, err := toContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = make(pongo2.Context)
	}
	e.set.Globals.Update(globals)
	return nil
}

func (e *Engine) execute(tmpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", label, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) template(path string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[path]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[path]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: load template %q: %w", path, err)
	}
	e.templates[path] = tmpl
	return tmpl, nil
}

// toContext accepts maps directly and flattens anything else through JSON so
// templates only ever see maps, slices and scalars.
func toContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("template data must encode as an object: %w", err)
	}
	return out, nil
}

var builtinFilters sync.Once

func registerBuiltinFilters() {
	builtinFilters.Do(func() {
		if !pongo2.FilterExists("indentlines") {
			_ = pongo2.RegisterFilter("indentlines", filterIndentLines)
		}
	})
}

// filterIndentLines prefixes every non-empty line after the first with param
// spaces (default 2) so a multi-line fragment lines up under the tag that
// inserts it.
func filterIndentLines(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	width := 2
	if param != nil && param.IsInteger() {
		width = param.Integer()
	}
	lines := strings.Split(in.String(), "\n")
	pad := strings.Repeat(" ", width)
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return pongo2.AsValue(strings.Join(lines, "\n")), nil
}
