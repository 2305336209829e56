package discogs

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// Rate-limit response headers sent with every API response.
const (
	HeaderRateLimit          = "X-Discogs-Ratelimit"
	HeaderRateLimitUsed      = "X-Discogs-Ratelimit-Used"
	HeaderRateLimitRemaining = "X-Discogs-Ratelimit-Remaining"
)

// ErrMissingHeader is matched by every MissingHeaderError.
var ErrMissingHeader = errors.New("missing rate limit header")

// MissingHeaderError reports an API response without one of the rate-limit
// headers.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingHeader, e.Header)
}

// Is lets errors.Is(err, ErrMissingHeader) match.
func (*MissingHeaderError) Is(target error) bool {
	return target == ErrMissingHeader
}

// RateLimitTracker records the quota reported by the most recent API
// response. It never throttles requests.
type RateLimitTracker struct {
	mu       sync.RWMutex
	current  domain.RateLimit
	observed bool
}

// UpdateFromHeaders parses the three rate-limit headers and replaces the
// stored values. On any error the previous values are kept.
func (t *RateLimitTracker) UpdateFromHeaders(h http.Header) error {
	limit, err := intHeader(h, HeaderRateLimit)
	if err != nil {
		return err
	}
	used, err := intHeader(h, HeaderRateLimitUsed)
	if err != nil {
		return err
	}
	remaining, err := intHeader(h, HeaderRateLimitRemaining)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.current = domain.RateLimit{Limit: limit, Used: used, Remaining: remaining}
	t.observed = true
	t.mu.Unlock()

	metrics.RateLimitLimit.Set(float64(limit))
	metrics.RateLimitUsed.Set(float64(used))
	metrics.RateLimitRemaining.Set(float64(remaining))

	return nil
}

// Snapshot returns the last recorded quota and whether any response has
// been observed yet.
func (t *RateLimitTracker) Snapshot() (domain.RateLimit, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current, t.observed
}

func intHeader(h http.Header, name string) (int, error) {
	values := h.Values(name)
	if len(values) == 0 {
		return 0, &MissingHeaderError{Header: name}
	}
	v, err := strconv.Atoi(values[0])
	if err != nil {
		return 0, fmt.Errorf("parsing header %s: %w", name, err)
	}
	return v, nil
}
