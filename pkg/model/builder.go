package model

import (
	"log/slog"

	"github.com/goliatone/go-propgen/internal/model"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// Builder converts host nodes into the canonical model.
type Builder interface {
	Build(nodes []*scene.Node) Model
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	namer  func(string) string
	logger *slog.Logger
}

// WithNamer overrides the default display name function.
func WithNamer(namer func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.namer = namer
	}
}

// WithLogger routes debug records about absorbed input problems.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	internalOpts := model.Options{}
	if cfg.namer != nil {
		internalOpts.Namer = cfg.namer
	}
	if cfg.logger != nil {
		internalOpts.Logger = cfg.logger
	}

	return model.New(internalOpts)
}
