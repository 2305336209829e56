// Package main implements a mock Discogs server for local development.
// It serves canned API responses with rate-limit headers and a static
// marketplace page, so discogs-alert can run without a token or network.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

const rateLimit = 60

// catalog is the fixture served by the API routes, keyed by path id.
type catalog struct {
	Releases map[string]json.RawMessage `json:"releases"`
	Stats    map[string]json.RawMessage `json:"stats"`
	Listings map[string]json.RawMessage `json:"listings"`
	Lists    map[string]json.RawMessage `json:"lists"`
	Wants    map[string]json.RawMessage `json:"wants"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to API fixture")
	marketFile := flag.String("marketplace", "internal/scrape/testdata/marketplace.html",
		"HTML served for every /sell/release page")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	page, err := os.ReadFile(*marketFile) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		logger.Error("failed to load marketplace page", "path", *marketFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "releases", len(fixture.Releases), "lists", len(fixture.Lists))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Discogs server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture, page)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, c *catalog, page []byte) *http.ServeMux {
	q := &quota{}

	mux := http.NewServeMux()
	mux.Handle("GET /releases/{id}", q.wrap(fixtureHandler(logger, c.Releases, "id")))
	mux.Handle("GET /marketplace/stats/{id}", q.wrap(fixtureHandler(logger, c.Stats, "id")))
	mux.Handle("GET /marketplace/listings/{id}", q.wrap(fixtureHandler(logger, c.Listings, "id")))
	mux.Handle("GET /lists/{id}", q.wrap(fixtureHandler(logger, c.Lists, "id")))
	mux.Handle("GET /users/{username}/wants", q.wrap(fixtureHandler(logger, c.Wants, "username")))
	mux.HandleFunc("GET /sell/release/{id}", marketplaceHandler(page))
	return mux
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &c, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// quota mimics the moving-window counters the API reports. The window
// resets once a minute.
type quota struct {
	mu      sync.Mutex
	used    int
	resetAt time.Time
}

func (q *quota) take(now time.Time) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	if now.After(q.resetAt) {
		q.used = 0
		q.resetAt = now.Add(time.Minute)
	}
	if q.used < rateLimit {
		q.used++
	}
	return q.used
}

func (q *quota) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		used := q.take(time.Now())
		w.Header().Set("X-Discogs-Ratelimit", strconv.Itoa(rateLimit))
		w.Header().Set("X-Discogs-Ratelimit-Used", strconv.Itoa(used))
		w.Header().Set("X-Discogs-Ratelimit-Remaining", strconv.Itoa(rateLimit-used))

		if r.URL.Query().Get("token") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"message": "You must authenticate to access this resource.",
			})
			return
		}
		if used >= rateLimit {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"message": "You are making requests too quickly."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func fixtureHandler(logger *slog.Logger, items map[string]json.RawMessage, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue(key)
		body, ok := items[id]
		if !ok {
			logger.Info("fixture miss", "path", r.URL.Path)
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Resource not found."})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(body)
	}
}

func marketplaceHandler(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(page)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
