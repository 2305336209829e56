package discogs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// DefaultAPIURL is the Discogs API base URL.
const DefaultAPIURL = "https://api.discogs.com"

// Client reads catalog and marketplace resources from the Discogs API.
//
// Read accessors return a nil entity and a nil error when the API answers
// with a non-200 status; the failure is logged. Transport errors and
// undecodable bodies are returned as errors.
type Client struct {
	transport Requester
	baseURL   string
	log       *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithLogger sets the logger used for soft failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a Client that performs requests through r.
func New(r Requester, opts ...Option) *Client {
	c := &Client{
		transport: r,
		baseURL:   DefaultAPIURL,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RateLimit returns the quota recorded by the transport, if it tracks one.
func (c *Client) RateLimit() (domain.RateLimit, bool) {
	if r, ok := c.transport.(RateLimitReporter); ok {
		return r.RateLimit()
	}
	return domain.RateLimit{}, false
}

// GetRelease fetches a release by ID.
func (c *Client) GetRelease(ctx context.Context, id int) (*domain.Release, error) {
	body, ok, err := c.get(ctx, "release", fmt.Sprintf("%s/releases/%d", c.baseURL, id))
	if err != nil || !ok {
		return nil, err
	}

	var r domain.Release
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decoding release %d: %w", id, err)
	}
	return &r, nil
}

// GetListing fetches a single marketplace listing by ID.
func (c *Client) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	body, ok, err := c.get(ctx, "listing", fmt.Sprintf("%s/marketplace/listings/%d", c.baseURL, id))
	if err != nil || !ok {
		return nil, err
	}

	var l apiListing
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("decoding listing %d: %w", id, err)
	}
	listing := l.toDomain()
	return &listing, nil
}

type rawUserList struct {
	domain.UserList
	Items []json.RawMessage `json:"items"`
}

// GetList fetches a user list. Items are decoded into releases one by one
// in their original order.
func (c *Client) GetList(ctx context.Context, id int) (*domain.UserList, error) {
	body, ok, err := c.get(ctx, "list", fmt.Sprintf("%s/lists/%d", c.baseURL, id))
	if err != nil || !ok {
		return nil, err
	}

	var raw rawUserList
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding list %d: %w", id, err)
	}

	list := raw.UserList
	list.Items = make([]domain.Release, 0, len(raw.Items))
	for i, item := range raw.Items {
		var r domain.Release
		if err := json.Unmarshal(item, &r); err != nil {
			return nil, fmt.Errorf("decoding list %d item %d: %w", id, i, err)
		}
		list.Items = append(list.Items, r)
	}
	return &list, nil
}

// GetReleaseStats fetches marketplace statistics for a release. A 200
// response whose body is not a JSON object means the release has no stats
// and yields nil.
func (c *Client) GetReleaseStats(ctx context.Context, id int) (*domain.ReleaseStats, error) {
	body, ok, err := c.get(ctx, "stats", fmt.Sprintf("%s/marketplace/stats/%d", c.baseURL, id))
	if err != nil || !ok {
		return nil, err
	}

	if !isJSONObject(body) {
		c.log.Debug("release has no marketplace stats", "release_id", id)
		return nil, nil
	}

	var s domain.ReleaseStats
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decoding stats for release %d: %w", id, err)
	}
	return &s, nil
}

// GetWantlist fetches the first page of a user's wantlist.
func (c *Client) GetWantlist(ctx context.Context, username string) (*domain.Wantlist, error) {
	u := fmt.Sprintf("%s/users/%s/wants", c.baseURL, url.PathEscape(username))
	body, ok, err := c.get(ctx, "wantlist", u)
	if err != nil || !ok {
		return nil, err
	}

	var w domain.Wantlist
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, fmt.Errorf("decoding wantlist for %s: %w", username, err)
	}
	return &w, nil
}

// Put sends a PUT request and returns the raw response.
func (c *Client) Put(ctx context.Context, u string, data []byte) ([]byte, int, error) {
	return c.transport.Request(ctx, http.MethodPut, u, data, nil)
}

// Post sends a POST request and returns the raw response.
func (c *Client) Post(ctx context.Context, u string, data []byte) ([]byte, int, error) {
	return c.transport.Request(ctx, http.MethodPost, u, data, nil)
}

// Patch sends a PATCH request and returns the raw response.
func (c *Client) Patch(ctx context.Context, u string, data []byte) ([]byte, int, error) {
	return c.transport.Request(ctx, http.MethodPatch, u, data, nil)
}

// Delete sends a DELETE request and returns the raw response.
func (c *Client) Delete(ctx context.Context, u string) ([]byte, int, error) {
	return c.transport.Request(ctx, http.MethodDelete, u, nil, nil)
}

// get performs a GET and reports ok=false for any non-200 status.
func (c *Client) get(ctx context.Context, resource, u string) ([]byte, bool, error) {
	content, status, err := c.transport.Request(ctx, http.MethodGet, u, nil, nil)
	if err != nil {
		return nil, false, fmt.Errorf("fetching %s: %w", resource, err)
	}
	if status != http.StatusOK {
		metrics.APISoftFailuresTotal.WithLabelValues(resource).Inc()
		c.log.Info("discogs request failed",
			"resource", resource,
			"status", status,
			"content", string(content),
		)
		return nil, false, nil
	}
	return content, true, nil
}

func isJSONObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
