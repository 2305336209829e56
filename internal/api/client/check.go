package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/donaldgifford/discogs-alert/internal/engine"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// CheckResponse is the result of a triggered check.
type CheckResponse struct {
	Status string             `json:"status"`
	Result engine.CheckResult `json:"result"`
}

// RateLimitResponse is the server's last observed API quota.
type RateLimitResponse struct {
	Observed bool `json:"observed"`
	domain.RateLimit
}

// ListingsResponse is the server's view of a release's marketplace page.
type ListingsResponse struct {
	ReleaseID int              `json:"release_id"`
	Total     int              `json:"total"`
	Listings  []domain.Listing `json:"listings"`
}

// TriggerCheck runs a check on the server and waits for its counts.
func (c *Client) TriggerCheck(ctx context.Context) (*CheckResponse, error) {
	var resp CheckResponse
	if err := c.post(ctx, "/api/v1/check", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RateLimit returns the rate limit the server last saw from the API.
func (c *Client) RateLimit(ctx context.Context) (*RateLimitResponse, error) {
	var resp RateLimitResponse
	if err := c.get(ctx, "/api/v1/ratelimit", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MarketplaceListings asks the server to render a release's marketplace
// page. maxPrice of 0 returns every listing.
func (c *Client) MarketplaceListings(
	ctx context.Context,
	releaseID int,
	maxPrice float64,
) (*ListingsResponse, error) {
	path := fmt.Sprintf("/api/v1/marketplace/%d", releaseID)
	if maxPrice > 0 {
		q := url.Values{}
		q.Set("max_price", strconv.FormatFloat(maxPrice, 'f', -1, 64))
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ready reports whether the server's marketplace browser is usable.
func (c *Client) Ready(ctx context.Context) error {
	return c.get(ctx, "/readyz", nil)
}
