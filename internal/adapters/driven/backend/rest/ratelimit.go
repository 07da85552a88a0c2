package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// HeaderRetryAfter is the retry-after header (seconds).
const HeaderRetryAfter = "Retry-After"

// rateLimiter throttles outgoing requests.
type rateLimiter struct {
	bucket *rate.Limiter
}

// newRateLimiter returns a limiter allowing rps requests per second.
// A non-positive rps disables throttling.
func newRateLimiter(rps float64, burst int) *rateLimiter {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &rateLimiter{bucket: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a request may be sent.
func (r *rateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// checkResponse returns a RateLimitError for 429 responses.
func (r *rateLimiter) checkResponse(resp *http.Response) error {
	if resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}
	rlErr := &RateLimitError{}
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			rlErr.RetryAfter = time.Duration(seconds) * time.Second
		}
	}
	return rlErr
}
