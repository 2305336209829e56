package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// RateLimitSource exposes the last rate limit reported by the API.
type RateLimitSource interface {
	RateLimit() (domain.RateLimit, bool)
}

// RateLimitHandler provides the API quota endpoint.
type RateLimitHandler struct {
	src RateLimitSource
}

// NewRateLimitHandler creates a new RateLimitHandler. src may be nil when
// the server runs without an API token.
func NewRateLimitHandler(src RateLimitSource) *RateLimitHandler {
	return &RateLimitHandler{src: src}
}

// RateLimitOutput is the response body for the rate limit endpoint.
type RateLimitOutput struct {
	Body struct {
		Observed  bool `json:"observed"  example:"true" doc:"False until the first authenticated request has completed"`
		Limit     int  `json:"limit"     example:"60"   doc:"Requests allowed per window"`
		Used      int  `json:"used"      example:"12"   doc:"Requests used in the current window"`
		Remaining int  `json:"remaining" example:"48"   doc:"Requests left in the current window"`
	}
}

// GetRateLimit returns the most recent rate limit snapshot.
func (h *RateLimitHandler) GetRateLimit(_ context.Context, _ *struct{}) (*RateLimitOutput, error) {
	resp := &RateLimitOutput{}
	if h.src == nil {
		return resp, nil
	}

	rl, observed := h.src.RateLimit()
	resp.Body.Observed = observed
	resp.Body.Limit = rl.Limit
	resp.Body.Used = rl.Used
	resp.Body.Remaining = rl.Remaining

	return resp, nil
}

// RegisterRateLimitRoutes registers the rate limit endpoint with the Huma API.
func RegisterRateLimitRoutes(api huma.API, h *RateLimitHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ratelimit",
		Method:      http.MethodGet,
		Path:        "/api/v1/ratelimit",
		Summary:     "Get Discogs API rate limit",
		Description: "Returns the limit, used and remaining counts from the last authenticated API response.",
		Tags:        []string{"discogs"},
	}, h.GetRateLimit)
}
