package scene

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches scene documents from different sources (filesystem, fs.FS,
// HTTP). Implementations live under internal/scene but satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to the
	// operating system if nil.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless AllowHTTPFallback is
	// true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles the default HTTP loader when no client is
	// supplied. Loading stays offline-first unless this is set.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// Headers are sent with every HTTP request, e.g. an API token header for
	// the design tool's export endpoint.
	Headers map[string]string
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for relative paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and assigns an
// optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithHeader adds a header sent with every HTTP request.
func WithHeader(name, value string) LoaderOption {
	return func(opts *LoaderOptions) {
		if name == "" {
			return
		}
		if opts.Headers == nil {
			opts.Headers = make(map[string]string)
		}
		opts.Headers[name] = value
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level propgen package to prevent import cycles.
