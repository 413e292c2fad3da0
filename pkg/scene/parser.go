package scene

import "context"

// Parser decodes a scene Document into a linked Tree.
type Parser interface {
	Parse(ctx context.Context, doc Document) (*Tree, error)
}

// Format names a scene payload encoding.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParserOptions configures decoding.
type ParserOptions struct {
	// Format forces a payload encoding. FormatAuto picks one from the source
	// extension and falls back to sniffing the first byte.
	Format Format

	// RequireNodes rejects documents that decode to an empty node list.
	RequireNodes bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithFormat forces the payload encoding.
func WithFormat(format Format) ParserOption {
	return func(opts *ParserOptions) {
		opts.Format = format
	}
}

// WithRequireNodes toggles rejection of empty documents.
func WithRequireNodes(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.RequireNodes = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		Format:       FormatAuto,
		RequireNodes: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
