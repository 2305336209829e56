package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/discogs-alert/internal/config"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func testListing() domain.Listing {
	return domain.Listing{
		ID:              100,
		ReleaseID:       1,
		Price:           &domain.Price{Value: 20, Currency: "EUR"},
		MediaCondition:  domain.ConditionVeryGoodPlus,
		SleeveCondition: domain.ConditionVeryGood,
		Seller:          domain.Seller{Username: "s", Rating: ptr(99.5), NumRatings: 300},
		ShipsFrom:       "Germany",
	}
}

func TestRule_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rule   Rule
		modify func(l *domain.Listing)
		want   bool
	}{
		{name: "empty rule accepts priced listing", want: true},
		{
			name:   "empty rule rejects listing without price",
			modify: func(l *domain.Listing) { l.Price = nil },
			want:   false,
		},
		{name: "price at ceiling", rule: Rule{MaxPrice: 20}, want: true},
		{name: "price above ceiling", rule: Rule{MaxPrice: 19.99}, want: false},
		{name: "media meets minimum", rule: Rule{MinMediaCondition: domain.ConditionVeryGoodPlus}, want: true},
		{name: "media below minimum", rule: Rule{MinMediaCondition: domain.ConditionNearMint}, want: false},
		{name: "sleeve below minimum", rule: Rule{MinSleeveCondition: domain.ConditionVeryGoodPlus}, want: false},
		{
			name:   "generic sleeve fails graded minimum",
			rule:   Rule{MinSleeveCondition: domain.ConditionGood},
			modify: func(l *domain.Listing) { l.SleeveCondition = domain.ConditionGeneric },
			want:   false,
		},
		{
			name:   "generic sleeve passes without minimum",
			modify: func(l *domain.Listing) { l.SleeveCondition = domain.ConditionGeneric },
			want:   true,
		},
		{name: "seller rating meets minimum", rule: Rule{MinSellerRating: 99.5}, want: true},
		{name: "seller rating below minimum", rule: Rule{MinSellerRating: 99.8}, want: false},
		{
			name:   "unrated seller fails rating minimum",
			rule:   Rule{MinSellerRating: 90},
			modify: func(l *domain.Listing) { l.Seller.Rating = nil },
			want:   false,
		},
		{
			name:   "unrated seller passes without minimum",
			modify: func(l *domain.Listing) { l.Seller.Rating = nil },
			want:   true,
		},
		{name: "allowed country any case", rule: Rule{CountriesAllowed: []string{"germany"}}, want: true},
		{name: "country not allowed", rule: Rule{CountriesAllowed: []string{"France", "Spain"}}, want: false},
		{name: "blocked country", rule: Rule{CountriesBlocked: []string{"GERMANY"}}, want: false},
		{
			name:   "unknown country fails allow list",
			rule:   Rule{CountriesAllowed: []string{"Germany"}},
			modify: func(l *domain.Listing) { l.ShipsFrom = "" },
			want:   false,
		},
		{
			name: "everything satisfied",
			rule: Rule{
				MaxPrice:           25,
				MinMediaCondition:  domain.ConditionVeryGood,
				MinSleeveCondition: domain.ConditionVeryGood,
				MinSellerRating:    98,
				CountriesAllowed:   []string{"Germany", "Netherlands"},
				CountriesBlocked:   []string{"United States"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := testListing()
			if tt.modify != nil {
				tt.modify(&l)
			}
			assert.Equal(t, tt.want, tt.rule.Match(&l))
		})
	}
}

func TestTargetsFromConfig(t *testing.T) {
	t.Parallel()

	def, targets := TargetsFromConfig(config.AlertsConfig{
		Defaults: config.FilterConfig{
			MaxPrice:          30,
			MinMediaCondition: "VG+",
			MinSellerRating:   97,
			CountriesBlocked:  []string{"Russia"},
		},
		Releases: []config.ReleaseConfig{
			{ID: 249504, MaxPrice: 50},
			{ID: 1158412, MinMediaCondition: "Near Mint (NM or M-)", MinSleeveCondition: "VG"},
		},
	})

	assert.InDelta(t, 30.0, def.MaxPrice, 0.001)
	assert.Equal(t, domain.ConditionVeryGoodPlus, def.MinMediaCondition)
	assert.Equal(t, domain.ConditionUnknown, def.MinSleeveCondition)

	if assert.Len(t, targets, 2) {
		assert.Equal(t, 249504, targets[0].ReleaseID)
		assert.InDelta(t, 50.0, targets[0].Rule.MaxPrice, 0.001)
		assert.Equal(t, domain.ConditionVeryGoodPlus, targets[0].Rule.MinMediaCondition)
		assert.InDelta(t, 97.0, targets[0].Rule.MinSellerRating, 0.001)
		assert.Equal(t, []string{"Russia"}, targets[0].Rule.CountriesBlocked)

		assert.InDelta(t, 30.0, targets[1].Rule.MaxPrice, 0.001)
		assert.Equal(t, domain.ConditionNearMint, targets[1].Rule.MinMediaCondition)
		assert.Equal(t, domain.ConditionVeryGood, targets[1].Rule.MinSleeveCondition)
	}
}
