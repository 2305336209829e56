package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func TestNewAlertPayload(t *testing.T) {
	t.Parallel()

	rating := 99.7
	full := domain.Listing{
		ID:              2871103382,
		ReleaseID:       1158412,
		Title:           "Burial - Untrue (2xLP, Album, RP)",
		URL:             "/sell/item/2871103382",
		Price:           &domain.Price{Value: 18.5, Currency: "EUR"},
		Shipping:        &domain.Price{Value: 6.9, Currency: "EUR"},
		MediaCondition:  domain.ConditionVeryGoodPlus,
		SleeveCondition: domain.ConditionVeryGood,
		Seller:          domain.Seller{Username: "wax_stacks", Rating: &rating, NumRatings: 1482},
		ShipsFrom:       "Germany",
	}

	tests := []struct {
		name    string
		release string
		listing domain.Listing
		check   func(t *testing.T, p AlertPayload)
	}{
		{
			name:    "full listing",
			release: "Burial - Untrue",
			listing: full,
			check: func(t *testing.T, p AlertPayload) {
				t.Helper()
				assert.Equal(t, 1158412, p.ReleaseID)
				assert.Equal(t, "Burial - Untrue", p.ReleaseTitle)
				assert.Equal(t, "https://www.discogs.com/sell/item/2871103382", p.ListingURL)
				assert.Equal(t, "18.50 EUR", p.Price)
				assert.Equal(t, "6.90 EUR", p.Shipping)
				assert.Equal(t, "99.7% (1482)", p.SellerRating)
				assert.Equal(t, "Germany", p.ShipsFrom)
			},
		},
		{
			name: "sparse listing falls back to listing title",
			listing: domain.Listing{
				ID:    5,
				Title: "Unknown Artist - White Label",
				URL:   "https://example.com/sell/item/5",
			},
			check: func(t *testing.T, p AlertPayload) {
				t.Helper()
				assert.Equal(t, "Unknown Artist - White Label", p.ReleaseTitle)
				assert.Equal(t, "https://example.com/sell/item/5", p.ListingURL)
				assert.Equal(t, "-", p.Price)
				assert.Equal(t, "-", p.Shipping)
				assert.Equal(t, "-", p.SellerRating)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, NewAlertPayload(tt.release, &tt.listing, "https://www.discogs.com"))
		})
	}
}
