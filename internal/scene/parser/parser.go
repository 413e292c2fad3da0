package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-propgen/pkg/scene"
)

// Parser implements scene.Parser for JSON and YAML payloads.
type Parser struct {
	options scene.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ scene.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options scene.ParserOptions) scene.Parser {
	return &Parser{options: options}
}

// payload is the on-disk document layout. A bare list of nodes is accepted
// as well and treated as the Nodes field.
type payload struct {
	Name      string        `json:"name" yaml:"name"`
	Selection []string      `json:"selection,omitempty" yaml:"selection,omitempty"`
	Nodes     []*scene.Node `json:"nodes" yaml:"nodes"`
}

// Parse decodes the document and links the resulting tree.
func (p *Parser) Parse(ctx context.Context, doc scene.Document) (*scene.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.New("scene parser: document payload is empty")
	}

	format := p.options.Format
	if format == scene.FormatAuto {
		format = detectFormat(doc.Location(), raw)
	}

	var (
		body payload
		err  error
	)
	switch format {
	case scene.FormatJSON:
		body, err = decodeJSON(raw)
	case scene.FormatYAML:
		body, err = decodeYAML(raw)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("scene parser: decode %s: %w", doc.Location(), err)
	}

	if len(body.Nodes) == 0 && p.options.RequireNodes {
		return nil, errors.New("scene parser: document does not contain any nodes")
	}

	return scene.NewTree(body.Name, body.Nodes, body.Selection), nil
}

func detectFormat(location string, raw []byte) scene.Format {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return scene.FormatJSON
	case ".yaml", ".yml":
		return scene.FormatYAML
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return scene.FormatJSON
	}
	return scene.FormatYAML
}

func decodeJSON(raw []byte) (payload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var nodes []*scene.Node
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return payload{}, err
		}
		return payload{Nodes: nodes}, nil
	}
	var body payload
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return payload{}, err
	}
	return body, nil
}

func decodeYAML(raw []byte) (payload, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return payload{}, err
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 && root.Content[0].Kind == yaml.SequenceNode {
		var nodes []*scene.Node
		if err := root.Content[0].Decode(&nodes); err != nil {
			return payload{}, err
		}
		return payload{Nodes: nodes}, nil
	}
	var body payload
	if err := root.Decode(&body); err != nil {
		return payload{}, err
	}
	return body, nil
}
