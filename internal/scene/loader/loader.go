package loader

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"resty.dev/v3"

	"github.com/goliatone/go-propgen/pkg/scene"
)

// Loader implements scene.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level propgen package.
type Loader struct {
	fs        fs.FS
	http      *resty.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ scene.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options scene.LoaderOptions) scene.Loader {
	timeout := options.RequestTimeout

	var client *resty.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = resty.NewWithClient(&clone)
	case options.AllowHTTPFallback:
		client = resty.New()
		if timeout > 0 {
			client.SetTimeout(timeout)
		}
	}
	if client != nil && len(options.Headers) > 0 {
		client.SetHeaders(options.Headers)
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      client,
		allowHTTP: client != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src scene.Source) (scene.Document, error) {
	if src == nil {
		return scene.Document{}, errors.New("scene loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case scene.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case scene.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case scene.SourceKindURL:
		if !l.allowHTTP {
			return scene.Document{}, errors.New("scene loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("scene loader: unsupported source kind")
	}
	if err != nil {
		return scene.Document{}, err
	}

	return scene.NewDocument(src, data)
}
