package scrape_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/discogs-alert/internal/scrape"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestParseListings_FullPage(t *testing.T) {
	t.Parallel()

	got, err := scrape.ParseListings(loadFixture(t, "marketplace.html"), 1158412)
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, 1158412, got.ReleaseID)

	first := got.Items[0]
	assert.Equal(t, int64(2871103382), first.ID)
	assert.Equal(t, 1158412, first.ReleaseID)
	assert.Equal(t, "/sell/item/2871103382", first.URL)
	assert.Equal(t, "Burial - Untrue (2xLP, Album, RP)", first.Title)
	require.NotNil(t, first.Price)
	assert.InDelta(t, 18.50, first.Price.Value, 0.001)
	assert.Equal(t, "EUR", first.Price.Currency)
	require.NotNil(t, first.Shipping)
	assert.InDelta(t, 6.90, first.Shipping.Value, 0.001)
	assert.Equal(t, "EUR", first.Shipping.Currency)
	assert.Equal(t, domain.ConditionVeryGoodPlus, first.MediaCondition)
	assert.Equal(t, domain.ConditionVeryGood, first.SleeveCondition)
	assert.Equal(t, "wax_stacks", first.Seller.Username)
	require.NotNil(t, first.Seller.Rating)
	assert.InDelta(t, 99.7, *first.Seller.Rating, 0.001)
	assert.Equal(t, 1482, first.Seller.NumRatings)
	assert.Equal(t, "Germany", first.ShipsFrom)
	assert.Equal(t, "Light marks on side B, plays fine.", first.Comments)

	second := got.Items[1]
	assert.Equal(t, int64(3012245510), second.ID)
	require.NotNil(t, second.Price)
	assert.InDelta(t, 24.00, second.Price.Value, 0.001)
	assert.Equal(t, "GBP", second.Price.Currency)
	assert.Equal(t, domain.ConditionNearMint, second.MediaCondition)
	assert.Equal(t, domain.ConditionGeneric, second.SleeveCondition)
	assert.Equal(t, "United Kingdom", second.ShipsFrom)
	assert.Equal(t, 37, second.Seller.NumRatings)

	third := got.Items[2]
	require.NotNil(t, third.Price)
	assert.InDelta(t, 1234.50, third.Price.Value, 0.001)
	assert.Equal(t, "SEK", third.Price.Currency)
	assert.Nil(t, third.Shipping)
	assert.Nil(t, third.Seller.Rating, "new sellers have no rating")
	assert.Equal(t, domain.ConditionMint, third.MediaCondition)
	assert.Equal(t, "Sweden", third.ShipsFrom)
}

func TestParseListings_EmptyPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fixture string
	}{
		{name: "table without rows", fixture: "no_results.html"},
		{name: "listings not rendered yet", fixture: "loading.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := scrape.ParseListings(loadFixture(t, tt.fixture), 99)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, 99, got.ReleaseID)
			assert.Equal(t, 0, got.Len())
			assert.NotNil(t, got.Items)
		})
	}
}

func TestParseListings_EmptyString(t *testing.T) {
	t.Parallel()

	got, err := scrape.ParseListings("", 5)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestParseListings_MissingPrice(t *testing.T) {
	t.Parallel()

	got, err := scrape.ParseListings(loadFixture(t, "missing_price.html"), 3)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())

	l := got.Items[0]
	assert.Equal(t, int64(555123), l.ID)
	assert.Equal(t, 3, l.ReleaseID)
	assert.Nil(t, l.Price)
	assert.Nil(t, l.Shipping)
	assert.Equal(t, domain.ConditionUnknown, l.MediaCondition)
	assert.Equal(t, domain.ConditionUnknown, l.SleeveCondition)
	assert.Equal(t, "half_rendered", l.Seller.Username)
	assert.Nil(t, l.Seller.Rating)
}

func TestParseListings_PriceFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		priceHTML    string
		wantValue    float64
		wantCurrency string
	}{
		{name: "dollar", priceHTML: `<span class="price">$9.99</span>`, wantValue: 9.99, wantCurrency: "USD"},
		{name: "us dollar prefix", priceHTML: `<span class="price">US$1,050.00</span>`, wantValue: 1050, wantCurrency: "USD"},
		{name: "canadian", priceHTML: `<span class="price">CA$40.00</span>`, wantValue: 40, wantCurrency: "CAD"},
		{name: "yen", priceHTML: `<span class="price">¥3,000</span>`, wantValue: 3000, wantCurrency: "JPY"},
		{name: "european decimal comma", priceHTML: `<span class="price">12,50 €</span>`, wantValue: 12.5, wantCurrency: "EUR"},
		{name: "euro dot thousands prefix", priceHTML: `<span class="price">€1.234</span>`, wantValue: 1234, wantCurrency: "EUR"},
		{name: "euro dot thousands suffix", priceHTML: `<span class="price">1.234 €</span>`, wantValue: 1234, wantCurrency: "EUR"},
		{name: "euro grouped with decimals", priceHTML: `<span class="price">1.234,50 €</span>`, wantValue: 1234.5, wantCurrency: "EUR"},
		{name: "dollar comma thousands", priceHTML: `<span class="price">$1,234</span>`, wantValue: 1234, wantCurrency: "USD"},
		{name: "code after amount", priceHTML: `<span class="price">1,234.00 SEK</span>`, wantValue: 1234, wantCurrency: "SEK"},
		{
			name:         "converted amount ignored",
			priceHTML:    `<span class="price">£10.00 about US$12.50</span>`,
			wantValue:    10,
			wantCurrency: "GBP",
		},
		{
			name:         "trailing symbol of a later amount",
			priceHTML:    `<span class="price">10.00 about US$12.50</span>`,
			wantValue:    10,
			wantCurrency: "",
		},
		{
			name:         "data attributes win",
			priceHTML:    `<span class="price" data-pricevalue="7.25" data-currency="CHF">CHF 7.30</span>`,
			wantValue:    7.25,
			wantCurrency: "CHF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := `<table class="mpitems"><tbody><tr>` +
				`<td class="item_description"><a class="item_description_title" href="/sell/item/1">x</a></td>` +
				`<td class="item_price">` + tt.priceHTML + `</td></tr></tbody></table>`

			got, err := scrape.ParseListings(html, 1)
			require.NoError(t, err)
			require.Equal(t, 1, got.Len())
			require.NotNil(t, got.Items[0].Price)
			assert.InDelta(t, tt.wantValue, got.Items[0].Price.Value, 0.001)
			assert.Equal(t, tt.wantCurrency, got.Items[0].Price.Currency)
		})
	}
}

func TestParseListings_PriceWithoutNumber(t *testing.T) {
	t.Parallel()

	html := `<table class="mpitems"><tbody><tr>` +
		`<td class="item_description"><a class="item_description_title" href="/sell/item/8">x</a></td>` +
		`<td class="item_price"><span class="price">Make an offer</span></td></tr></tbody></table>`

	got, err := scrape.ParseListings(html, 1)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	assert.Nil(t, got.Items[0].Price)
}
