package load

import (
	"context"
	"sync"

	"github.com/fwojciec/jassdoc"
	"golang.org/x/time/rate"
)

var _ jassdoc.HostLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out requests to the same host with one token bucket
// per host (burst 1). Different hosts never wait on each other.
type HostLimiter struct {
	rps     float64
	buckets sync.Map // host -> *rate.Limiter
}

// NewHostLimiter returns a limiter allowing rps requests per second per host.
// A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{rps: rps}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	if h.rps <= 0 {
		return ctx.Err()
	}
	b, _ := h.buckets.LoadOrStore(host, rate.NewLimiter(rate.Limit(h.rps), 1))
	return b.(*rate.Limiter).Wait(ctx)
}
