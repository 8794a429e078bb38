package grammar

import (
	"context"
	"strconv"

	"github.com/mhollstein/clausescreen/internal/cache"
	"golang.org/x/time/rate"
)

// CachedChecker wraps a Checker with result caching and rate limiting.
// Clause text repeats across documents of a batch (boilerplate), so the
// cache is keyed by a hash of the text. The limiter keeps a shared
// grammar service from being hammered by parallel document workers.
type CachedChecker struct {
	inner   Checker
	store   cache.Cache
	limiter *rate.Limiter
}

// NewCachedChecker creates a caching, rate-limited wrapper around inner
func NewCachedChecker(inner Checker, store cache.Cache, requestsPerSecond float64, burst int) *CachedChecker {
	if burst <= 0 {
		burst = 1
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}

	return &CachedChecker{
		inner:   inner,
		store:   store,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Name returns the underlying provider name
func (c *CachedChecker) Name() string {
	return c.inner.Name()
}

// IsAvailable delegates to the underlying checker
func (c *CachedChecker) IsAvailable(ctx context.Context) bool {
	return c.inner.IsAvailable(ctx)
}

// Check returns a cached issue count when available, otherwise waits for
// rate-limit clearance and queries the underlying checker
func (c *CachedChecker) Check(ctx context.Context, text string) (int, error) {
	key := cache.Key(text)

	if c.store != nil {
		if data, found := c.store.Get(key); found {
			if count, err := strconv.Atoi(string(data)); err == nil {
				return count, nil
			}
			// Corrupt entry; drop it and fall through
			_ = c.store.Delete(key)
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	count, err := c.inner.Check(ctx, text)
	if err != nil {
		return 0, err
	}

	if c.store != nil {
		_ = c.store.Set(key, []byte(strconv.Itoa(count)), 0)
	}

	return count, nil
}
