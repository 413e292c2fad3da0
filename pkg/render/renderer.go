package render

import (
	"context"

	"github.com/goliatone/go-propgen/pkg/model"
)

// Renderer converts the canonical model into source fragments for one UI
// target. Malformed model content never produces an error; errors are
// reserved for template and configuration failures.
type Renderer interface {
	// Name identifies the renderer inside the registry ("react", "vue").
	Name() string
	// Label is the human facing target name used as FormatResult.Label.
	Label() string
	Format(ctx context.Context, m model.Model, options Options) (FormatResult, error)
}
