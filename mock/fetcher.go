package mock

import (
	"context"

	"github.com/nkgc/churchdir"
)

var (
	_ churchdir.Fetcher      = (*Fetcher)(nil)
	_ churchdir.ImageFetcher = (*ImageFetcher)(nil)
)

// Fetcher is a mock implementation of churchdir.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// ImageFetcher is a mock implementation of churchdir.ImageFetcher.
type ImageFetcher struct {
	FetchImageFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	return f.FetchImageFn(ctx, url)
}
