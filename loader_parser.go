package propgen

import (
	internalLoader "github.com/goliatone/go-propgen/internal/scene/loader"
	internalParser "github.com/goliatone/go-propgen/internal/scene/parser"
	"github.com/goliatone/go-propgen/pkg/scene"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...scene.LoaderOption) scene.Loader {
	cfg := scene.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...scene.ParserOption) scene.Parser {
	cfg := scene.NewParserOptions(options...)
	return internalParser.New(cfg)
}
