// Package discogs provides the Discogs catalog clients: an authenticated
// API client and an anonymous client that renders marketplace pages in a
// headless browser. Both sit on a transport chosen at construction.
package discogs

import (
	"context"
	"net/http"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// Requester executes a raw API call and returns the body and status code.
type Requester interface {
	Request(ctx context.Context, method, url string, data []byte, header http.Header) ([]byte, int, error)
}

// Renderer loads a page in a browser and returns its rendered HTML. The
// session behind it stays open until Close.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
	Close() error
}

// RateLimitReporter is implemented by requesters that track API quota.
type RateLimitReporter interface {
	RateLimit() (domain.RateLimit, bool)
}
