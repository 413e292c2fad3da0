package orchestrator_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/orchestrator"
	"github.com/goliatone/go-propgen/pkg/render"
	"github.com/goliatone/go-propgen/pkg/scene"
)

func TestOrchestrator_AppliesModelDecorators(t *testing.T) {
	t.Helper()

	decorator := model.DecoratorFunc(func(m *model.Model) error {
		meta := m.Metas["def"]
		meta.Name = "Decorated"
		m.Metas["def"] = meta
		return nil
	})

	builder := &stubBuilder{model: baseModel()}
	renderer := &stubRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := orchestrator.New(
		orchestrator.WithModelBuilder(builder),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(renderer.Name()),
		orchestrator.WithModelDecorators(decorator),
	)

	result, err := orch.Generate(context.Background(), orchestrator.Request{
		Tree: scene.NewTree("stub", nil, nil),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Label != "ok" {
		t.Fatalf("unexpected renderer output: %s", result.Label)
	}
	if renderer.last.Metas["def"].Name != "Decorated" {
		t.Fatalf("decorator not applied: %#v", renderer.last.Metas)
	}
	if renderer.options.Resolver == nil {
		t.Fatalf("expected the request tree as default resolver")
	}
}

func baseModel() model.Model {
	return model.Model{
		Components: map[string]model.Component{
			"1": {ID: "1", Name: "Card", Definition: "def", Properties: map[string]model.PropertyValue{}},
		},
		Definitions: map[string]model.Definitions{
			"def": {
				"Title": {Name: "title", Type: model.KindText, DefaultValue: model.StringValue("Hello")},
			},
		},
		Metas: map[string]model.ComponentMeta{
			"def": {ID: "def", Name: "Card"},
		},
		References: map[string]model.ReferenceMap{
			"def": {},
		},
	}
}

type stubBuilder struct {
	model model.Model
}

func (s *stubBuilder) Build([]*scene.Node) model.Model {
	return s.model
}

type stubRenderer struct {
	last    model.Model
	options render.Options
}

func (s *stubRenderer) Name() string {
	return "stub"
}

func (s *stubRenderer) Label() string {
	return "Stub"
}

func (s *stubRenderer) Format(_ context.Context, m model.Model, options render.Options) (render.FormatResult, error) {
	s.last = m
	s.options = options
	return render.FormatResult{Label: "ok"}, nil
}
