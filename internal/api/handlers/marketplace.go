package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/discogs-alert/internal/engine"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// MarketplaceHandler serves scraped marketplace listings.
type MarketplaceHandler struct {
	market engine.Marketplace
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(m engine.Marketplace) *MarketplaceHandler {
	return &MarketplaceHandler{market: m}
}

// GetListingsInput is the input for the marketplace endpoint.
type GetListingsInput struct {
	ReleaseID int     `path:"release_id" doc:"Discogs release ID"                     minimum:"1"`
	MaxPrice  float64 `query:"max_price" doc:"Only return listings at or below price" minimum:"0"`
}

// GetListingsOutput is the response for the marketplace endpoint.
type GetListingsOutput struct {
	Body struct {
		ReleaseID int              `json:"release_id"`
		Total     int              `json:"total"`
		Listings  []domain.Listing `json:"listings"`
	}
}

// GetListings renders the marketplace page for a release and returns its
// listings in page order.
func (h *MarketplaceHandler) GetListings(
	ctx context.Context,
	input *GetListingsInput,
) (*GetListingsOutput, error) {
	ls, err := h.market.GetMarketplaceListings(ctx, input.ReleaseID)
	if err != nil {
		return nil, huma.Error502BadGateway("marketplace unavailable: " + err.Error())
	}
	if ls == nil {
		ls = domain.NewListings(input.ReleaseID)
	}

	if input.MaxPrice > 0 {
		rule := engine.Rule{MaxPrice: input.MaxPrice}
		ls = ls.Filter(func(l domain.Listing) bool { return rule.Match(&l) })
	}

	resp := &GetListingsOutput{}
	resp.Body.ReleaseID = input.ReleaseID
	resp.Body.Total = ls.Len()
	resp.Body.Listings = ls.Items
	return resp, nil
}

// RegisterMarketplaceRoutes registers the marketplace endpoint with the Huma API.
func RegisterMarketplaceRoutes(api huma.API, h *MarketplaceHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-marketplace-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/marketplace/{release_id}",
		Summary:     "Get marketplace listings",
		Description: "Renders the release's marketplace page and returns the parsed listings, cheapest first.",
		Tags:        []string{"discogs"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetListings)
}
