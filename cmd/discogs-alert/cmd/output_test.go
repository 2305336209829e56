package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/discogs-alert/internal/engine"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestPrintListingsTable(t *testing.T) {
	t.Parallel()

	ls := domain.NewListings(1158412)
	ls.Add(domain.Listing{
		ID:              172723812,
		Price:           &domain.Price{Value: 18.5, Currency: "EUR"},
		Shipping:        &domain.Price{Value: 6, Currency: "EUR"},
		MediaCondition:  domain.ConditionVeryGoodPlus,
		SleeveCondition: domain.ConditionGeneric,
		Seller:          domain.Seller{Username: "wax-shack", Rating: ptr(99.8), NumRatings: 1204},
		ShipsFrom:       "Germany",
	})
	ls.Add(domain.Listing{ID: 2, Seller: domain.Seller{Username: "newbie"}})

	var buf bytes.Buffer
	require.NoError(t, printListingsTable(&buf, ls))

	out := buf.String()
	assert.Contains(t, out, "PRICE")
	assert.Contains(t, out, "18.50 EUR")
	assert.Contains(t, out, "6.00 EUR")
	assert.Contains(t, out, "VG+")
	assert.Contains(t, out, "Generic")
	assert.Contains(t, out, "wax-shack (99.8%, 1204)")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "newbie")
}

func TestPrintCheckResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printCheckResult(&buf, &engine.CheckResult{
		Releases: 4, Listings: 37, Matches: 3, Notified: 2, Errors: 1,
	}))

	out := buf.String()
	for _, want := range []string{"Releases:", "37", "Notified:", "Errors:"} {
		assert.Contains(t, out, want)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "Untrue", max: 10, want: "Untrue"},
		{name: "exact", in: "Untrue", max: 6, want: "Untrue"},
		{name: "long", in: "Selected Ambient Works 85-92", max: 12, want: "Selected ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}
