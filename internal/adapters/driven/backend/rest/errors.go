package rest

import (
	"errors"
	"fmt"
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// ErrNoBaseURL is returned when the client is built without a backend URL.
var ErrNoBaseURL = errors.New("rest: backend url is not configured")

// RateLimitError is returned when the backend answers 429.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rest: rate limited, retry after %s", e.RetryAfter)
	}
	return "rest: rate limited"
}

// RetryDelay exposes RetryAfter to domain.RetryAfter.
func (e *RateLimitError) RetryDelay() time.Duration {
	return e.RetryAfter
}

// Is makes errors.Is(err, domain.ErrRateLimited) true.
func (e *RateLimitError) Is(target error) bool {
	return target == domain.ErrRateLimited
}

// APIError is a non-success response from the backend.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rest: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Is maps 404 to domain.ErrNotFound and 5xx to domain.ErrBackendUnavailable.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == 404
	case domain.ErrBackendUnavailable:
		return e.StatusCode >= 500
	}
	return false
}
