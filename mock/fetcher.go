package mock

import (
	"context"

	"github.com/fwojciec/jassdoc"
)

var _ jassdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jassdoc.Fetcher.
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

var _ jassdoc.Loader = (*Loader)(nil)

// Loader is a mock implementation of jassdoc.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, urls []string) ([]string, error)
}

func (l *Loader) Load(ctx context.Context, urls []string) ([]string, error) {
	return l.LoadFn(ctx, urls)
}

var _ jassdoc.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of jassdoc.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
