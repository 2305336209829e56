package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/discogs-alert/internal/api/handlers"
	"github.com/donaldgifford/discogs-alert/internal/engine"
	"github.com/donaldgifford/discogs-alert/internal/engine/mocks"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

type stubChecker struct {
	res *engine.CheckResult
	err error
}

func (s stubChecker) RunCheck(context.Context) (*engine.CheckResult, error) {
	return s.res, s.err
}

type stubRateLimit struct{}

func (stubRateLimit) RateLimit() (domain.RateLimit, bool) {
	return domain.RateLimit{Limit: 60, Used: 7, Remaining: 53}, true
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// newServer wires the real handlers behind Echo the way the watcher does.
func newServer(t *testing.T, checker handlers.Checker, m engine.Marketplace, p handlers.Pinger) *Client {
	t.Helper()

	e := echo.New()
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(p))
	api := humaecho.New(e, huma.DefaultConfig("discogs-alert", "test"))
	handlers.RegisterRateLimitRoutes(api, handlers.NewRateLimitHandler(stubRateLimit{}))
	handlers.RegisterTriggerRoutes(api, handlers.NewCheckHandler(checker))
	handlers.RegisterMarketplaceRoutes(api, handlers.NewMarketplaceHandler(m))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.RateLimit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server not running")
}

func TestClient_HTTPErrorPlainBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom\n"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).RateLimit(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "API error (HTTP 500): boom", err.Error())
}

func TestClient_TriggerCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checker    stubChecker
		wantStatus int
		wantDetail string
		wantResult engine.CheckResult
	}{
		{
			name:       "completed",
			checker:    stubChecker{res: &engine.CheckResult{Releases: 3, Listings: 40, Matches: 2, Notified: 1}},
			wantResult: engine.CheckResult{Releases: 3, Listings: 40, Matches: 2, Notified: 1},
		},
		{
			name:       "already running",
			checker:    stubChecker{err: engine.ErrCheckInProgress},
			wantStatus: http.StatusConflict,
			wantDetail: "a check is already running",
		},
		{
			name:       "failed",
			checker:    stubChecker{err: errors.New("fetching wantlist: status 502")},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "check failed: fetching wantlist: status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newServer(t, tt.checker, mocks.NewMockMarketplace(t), nil)
			resp, err := c.TriggerCheck(context.Background())

			if tt.wantStatus != 0 {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
				assert.Equal(t, tt.wantDetail, apiErr.Detail)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "check completed", resp.Status)
			assert.Equal(t, tt.wantResult, resp.Result)
		})
	}
}

func TestClient_RateLimit(t *testing.T) {
	t.Parallel()

	c := newServer(t, stubChecker{}, mocks.NewMockMarketplace(t), nil)
	resp, err := c.RateLimit(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Observed)
	assert.Equal(t, domain.RateLimit{Limit: 60, Used: 7, Remaining: 53}, resp.RateLimit)
}

func TestClient_MarketplaceListings(t *testing.T) {
	t.Parallel()

	ls := domain.NewListings(1158412)
	ls.Add(domain.Listing{ID: 1, Price: &domain.Price{Value: 12.5, Currency: "EUR"}})
	ls.Add(domain.Listing{ID: 2, Price: &domain.Price{Value: 30, Currency: "EUR"}})

	m := mocks.NewMockMarketplace(t)
	m.EXPECT().
		GetMarketplaceListings(mock.Anything, 1158412).
		Return(ls, nil).
		Times(2)

	c := newServer(t, stubChecker{}, m, nil)

	all, err := c.MarketplaceListings(context.Background(), 1158412, 0)
	require.NoError(t, err)
	assert.Equal(t, 1158412, all.ReleaseID)
	assert.Equal(t, 2, all.Total)

	cheap, err := c.MarketplaceListings(context.Background(), 1158412, 20)
	require.NoError(t, err)
	require.Len(t, cheap.Listings, 1)
	assert.Equal(t, int64(1), cheap.Listings[0].ID)
}

func TestClient_Ready(t *testing.T) {
	t.Parallel()

	c := newServer(t, stubChecker{}, mocks.NewMockMarketplace(t), stubPinger{})
	require.NoError(t, c.Ready(context.Background()))

	c = newServer(t, stubChecker{}, mocks.NewMockMarketplace(t), stubPinger{err: errors.New("browser closed")})
	err := c.Ready(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}
