package testsupport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-propgen/internal/scene/parser"
	pkgmodel "github.com/goliatone/go-propgen/pkg/model"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// LoadTree reads a scene fixture and parses it with the default parser.
func LoadTree(t *testing.T, path string) *scene.Tree {
	t.Helper()

	tree, err := LoadTreeFromPath(path)
	if err != nil {
		t.Fatalf("load tree: %v", err)
	}
	return tree
}

// LoadTreeFromPath returns a parsed Tree without requiring testing.T so
// fixtures can be wired in setup functions.
func LoadTreeFromPath(path string) (*scene.Tree, error) {
	if path == "" {
		return nil, errors.New("testsupport: tree path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read tree: %w", err)
	}
	doc, err := scene.NewDocument(scene.SourceFromFile(path), data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: new document: %w", err)
	}
	tree, err := parser.New(scene.NewParserOptions()).Parse(context.Background(), doc)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse tree: %w", err)
	}
	return tree, nil
}

// MustBuildModel parses a scene fixture and builds the canonical model from
// its relevant nodes. The tree doubles as the instance-swap resolver.
func MustBuildModel(t *testing.T, path string) (pkgmodel.Model, *scene.Tree) {
	t.Helper()

	tree := LoadTree(t, path)
	return pkgmodel.NewBuilder().Build(tree.Relevant()), tree
}

// MustLoadModel loads a JSON golden file into a Model structure.
func MustLoadModel(t *testing.T, path string) pkgmodel.Model {
	t.Helper()

	m, err := LoadModel(path)
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	return m
}

// LoadModel reads a JSON fixture into a Model.
func LoadModel(path string) (pkgmodel.Model, error) {
	if path == "" {
		return pkgmodel.Model{}, errors.New("testsupport: model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.Model{}, fmt.Errorf("testsupport: read model: %w", err)
	}
	var out pkgmodel.Model
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.Model{}, fmt.Errorf("testsupport: unmarshal model: %w", err)
	}
	return out, nil
}

// WriteGolden writes value as indented JSON to a golden file when
// UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
