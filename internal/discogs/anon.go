package discogs

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
	"github.com/donaldgifford/discogs-alert/internal/scrape"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// DefaultSiteURL is the Discogs website base URL.
const DefaultSiteURL = "https://www.discogs.com"

// AnonClient scrapes marketplace pages the API does not expose. It needs
// no credentials; pages are rendered by the Renderer it owns.
type AnonClient struct {
	renderer Renderer
	siteURL  string
	log      *slog.Logger
}

// AnonOption configures the AnonClient.
type AnonOption func(*AnonClient)

// WithSiteURL overrides the default website base URL.
func WithSiteURL(u string) AnonOption {
	return func(c *AnonClient) {
		c.siteURL = strings.TrimRight(u, "/")
	}
}

// WithAnonLogger sets the logger.
func WithAnonLogger(l *slog.Logger) AnonOption {
	return func(c *AnonClient) {
		c.log = l
	}
}

// NewAnonClient creates an AnonClient rendering pages through r. The client
// takes ownership of r and closes it in Close.
func NewAnonClient(r Renderer, opts ...AnonOption) *AnonClient {
	c := &AnonClient{
		renderer: r,
		siteURL:  DefaultSiteURL,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MarketplaceURL returns the marketplace search page for a release, sorted
// by ascending price.
func (c *AnonClient) MarketplaceURL(releaseID int) string {
	q := url.Values{}
	q.Set("ev", "rb")
	q.Set("sort", "price,asc")
	return fmt.Sprintf("%s/sell/release/%d?%s", c.siteURL, releaseID, q.Encode())
}

// GetMarketplaceListings renders the marketplace page for a release and
// parses the listings on it. A page without listings yields an empty
// collection.
func (c *AnonClient) GetMarketplaceListings(ctx context.Context, releaseID int) (*domain.Listings, error) {
	pageURL := c.MarketplaceURL(releaseID)

	start := time.Now()
	html, err := c.renderer.Render(ctx, pageURL)
	metrics.MarketplaceRendersTotal.Inc()
	metrics.MarketplaceRenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MarketplaceRenderErrorsTotal.Inc()
		return nil, fmt.Errorf("rendering marketplace for release %d: %w", releaseID, err)
	}

	listings, err := scrape.ParseListings(html, releaseID)
	if err != nil {
		return nil, fmt.Errorf("parsing marketplace for release %d: %w", releaseID, err)
	}

	metrics.ListingsScrapedTotal.Add(float64(listings.Len()))
	c.log.Debug("scraped marketplace listings",
		"release_id", releaseID,
		"count", listings.Len(),
	)

	return listings, nil
}

// Close releases the browser session.
func (c *AnonClient) Close() error {
	return c.renderer.Close()
}
