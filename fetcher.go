package jassdoc

import "context"

// Fetcher retrieves the text of a remote documentation source.
type Fetcher interface {
	// Fetch returns the response body for url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Loader fetches a set of sources as one unit.
type Loader interface {
	// Load fetches every url and returns the bodies in the order of urls.
	// If any fetch fails, Load fails and returns no bodies.
	Load(ctx context.Context, urls []string) ([]string, error)
}

// HostLimiter throttles requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
