package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/pkg/model"
)

type namedRenderer string

func (n namedRenderer) Name() string  { return string(n) }
func (n namedRenderer) Label() string { return string(n) }
func (n namedRenderer) Format(context.Context, model.Model, Options) (FormatResult, error) {
	return FormatResult{Label: string(n)}, nil
}

func TestRegistry_RegisterAndList(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(namedRenderer("vue"))
	registry.MustRegister(namedRenderer("react"))

	if diff := cmp.Diff([]string{"react", "vue"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("vue") {
		t.Fatalf("expected vue to be registered")
	}
	if _, err := registry.Get("svelte"); err == nil {
		t.Fatalf("expected error for missing renderer")
	}
}

func TestRegistry_RejectsDuplicatesAndBlankNames(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(namedRenderer("react"))

	if err := registry.Register(namedRenderer("react")); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected blank name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
}

type labelledRenderer struct {
	namedRenderer
	label string
}

func (l labelledRenderer) Label() string { return l.label }

func TestRegistry_LooksUpByLabelIgnoringCase(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(labelledRenderer{namedRenderer: "vue", label: "Vue"})

	for _, name := range []string{"vue", "Vue", " VUE "} {
		renderer, err := registry.Get(name)
		if err != nil {
			t.Fatalf("get %q: %v", name, err)
		}
		if renderer.Name() != "vue" {
			t.Fatalf("get %q returned %q", name, renderer.Name())
		}
	}

	if err := registry.Register(labelledRenderer{namedRenderer: "vue3", label: "vue"}); err == nil {
		t.Fatalf("expected label clash with existing name")
	}
}

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Resolve("", "react"); err == nil {
		t.Fatalf("expected error for empty registry")
	}

	registry.MustRegister(namedRenderer("vue"))
	registry.MustRegister(namedRenderer("react"))

	tests := []struct {
		name, fallback, want string
	}{
		{name: "vue", fallback: "react", want: "vue"},
		{name: "", fallback: "react", want: "react"},
		{name: "", fallback: "svelte", want: "react"},
		{name: "", fallback: "", want: "react"},
	}
	for _, tc := range tests {
		renderer, err := registry.Resolve(tc.name, tc.fallback)
		if err != nil {
			t.Fatalf("resolve(%q, %q): %v", tc.name, tc.fallback, err)
		}
		if renderer.Name() != tc.want {
			t.Fatalf("resolve(%q, %q) = %q, want %q", tc.name, tc.fallback, renderer.Name(), tc.want)
		}
	}

	if _, err := registry.Resolve("svelte", "react"); err == nil {
		t.Fatalf("expected error for unknown explicit renderer")
	}
}
