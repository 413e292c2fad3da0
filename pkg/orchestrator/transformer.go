package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-propgen/pkg/model"
)

// Transformer mutates a Model before decorators run. Implementations can
// rename definitions or hide properties.
type Transformer interface {
	Transform(ctx context.Context, m *model.Model) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, m *model.Model) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, m *model.Model) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, m)
}

// PresetTransformer applies declarative overrides loaded from a YAML or JSON
// document keyed by definition id:
//
//	components:
//	  "1:20":
//	    name: PrimaryButton
//	    hide: ["Legacy#3:1"]
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Components map[string]componentPatch `yaml:"components"`
}

type componentPatch struct {
	Name string   `yaml:"name"`
	Hide []string `yaml:"hide"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches onto the supplied model. Patches naming an
// unknown definition or property fail the run.
func (t *PresetTransformer) Transform(ctx context.Context, m *model.Model) error {
	if m == nil {
		return errors.New("preset transformer: model is nil")
	}

	ids := make([]string, 0, len(t.document.Components))
	for id := range t.document.Components {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}
		defs, ok := m.Definitions[id]
		if !ok {
			return fmt.Errorf("preset transformer: definition %q not found", id)
		}
		patch := t.document.Components[id]
		for _, key := range patch.Hide {
			def, ok := defs[key]
			if !ok {
				return fmt.Errorf("preset transformer: property %q not found on %q", key, id)
			}
			def.Hidden = true
			defs[key] = def
		}
		if name := strings.TrimSpace(patch.Name); name != "" {
			rename(m, id, name)
		}
	}
	return nil
}

func rename(m *model.Model, id, name string) {
	if m.Metas == nil {
		m.Metas = make(map[string]model.ComponentMeta)
	}
	meta := m.Metas[id]
	meta.ID = id
	meta.Name = name
	m.Metas[id] = meta

	for key, component := range m.Components {
		if component.Definition != id {
			continue
		}
		component.Name = name
		m.Components[key] = component
	}
}
