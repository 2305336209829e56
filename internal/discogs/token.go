package discogs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

const defaultUserAgent = "discogs-alert/dev"

// TokenTransport implements Requester with a personal access token sent as
// the "token" query parameter. Every response updates its rate-limit
// tracker.
type TokenTransport struct {
	token     string
	userAgent string
	client    *http.Client
	limits    RateLimitTracker
}

// TokenOption configures the TokenTransport.
type TokenOption func(*TokenTransport)

// WithUserAgent sets the User-Agent header sent to the API.
func WithUserAgent(ua string) TokenOption {
	return func(t *TokenTransport) {
		t.userAgent = ua
	}
}

// WithTokenHTTPClient overrides the default HTTP client.
func WithTokenHTTPClient(hc *http.Client) TokenOption {
	return func(t *TokenTransport) {
		t.client = hc
	}
}

// NewTokenTransport creates a transport authenticating with token.
func NewTokenTransport(token string, opts ...TokenOption) *TokenTransport {
	t := &TokenTransport{
		token:     token,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Request implements Requester. A response missing any rate-limit header
// is returned as an error even when the status is 200.
func (t *TokenTransport) Request(
	ctx context.Context,
	method, rawURL string,
	data []byte,
	header http.Header,
) ([]byte, int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing request URL: %w", err)
	}
	q := u.Query()
	q.Set("token", t.token)
	u.RawQuery = q.Encode()

	var body io.Reader = http.NoBody
	if data != nil {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, 0, fmt.Errorf("creating HTTP request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", t.userAgent)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("executing %s request: %w", method, err)
	}
	defer resp.Body.Close()
	metrics.APIRequestDuration.Observe(time.Since(start).Seconds())
	metrics.APIRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	if err := t.limits.UpdateFromHeaders(resp.Header); err != nil {
		return content, resp.StatusCode, fmt.Errorf("recording rate limit: %w", err)
	}

	return content, resp.StatusCode, nil
}

// RateLimit implements RateLimitReporter.
func (t *TokenTransport) RateLimit() (domain.RateLimit, bool) {
	return t.limits.Snapshot()
}
