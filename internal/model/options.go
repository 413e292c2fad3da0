package model

import (
	"log/slog"

	"github.com/goliatone/go-propgen/internal/logging"
)

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	// Namer turns a definition node's label into a display name.
	Namer func(string) string
	// Logger receives debug records for absorbed input problems.
	Logger *slog.Logger
}

func defaultOptions() Options {
	return Options{
		Namer:  CapitalizedName,
		Logger: logging.Discard(),
	}
}
