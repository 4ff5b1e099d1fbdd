// Package load fetches documentation sources concurrently as one unit.
package load

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/jassdoc"
	"golang.org/x/sync/errgroup"
)

var _ jassdoc.Loader = (*Loader)(nil)

// Loader fetches every source in parallel and succeeds only if all
// fetches succeed.
type Loader struct {
	Fetcher jassdoc.Fetcher

	// Limiter, if set, throttles requests per host.
	Limiter jassdoc.HostLimiter

	// Concurrency caps in-flight fetches. Zero means one goroutine per URL.
	Concurrency int

	// RetryDelays are the waits before each retry of a fetch that failed
	// with a temporary error. Nil disables retries.
	RetryDelays []time.Duration
}

// Load fetches urls and returns their bodies in input order.
// The first failure cancels the remaining fetches and is returned as an
// EUNAVAILABLE error naming the failing URL.
func (l *Loader) Load(ctx context.Context, urls []string) ([]string, error) {
	texts := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	if l.Concurrency > 0 {
		g.SetLimit(l.Concurrency)
	}

	for i, u := range urls {
		g.Go(func() error {
			if l.Limiter != nil {
				if err := l.Limiter.Wait(gctx, host(u)); err != nil {
					return jassdoc.Errorf(jassdoc.EUNAVAILABLE, "fetch %s: %v", u, err)
				}
			}

			text, err := fetchWithRetry(gctx, u, l.Fetcher.Fetch, l.RetryDelays)
			if err != nil {
				return jassdoc.Errorf(jassdoc.EUNAVAILABLE, "fetch %s: %v", u, err)
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// host returns the host of rawURL, or rawURL itself if it does not parse.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
