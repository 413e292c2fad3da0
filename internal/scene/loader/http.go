package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"resty.dev/v3"
)

func loadHTTP(ctx context.Context, client *resty.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("scene loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("scene loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := client.R().
		SetContext(reqCtx).
		Get(url)
	if err != nil {
		return nil, err
	}
	//nolint:errcheck
	defer resp.Body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("scene loader: unexpected status %s", resp.Status())
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return data, nil
}
