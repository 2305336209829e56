package engine

import (
	"strings"

	"github.com/donaldgifford/discogs-alert/internal/config"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// Rule decides which marketplace listings are worth an alert.
type Rule struct {
	MaxPrice           float64 // 0 means no ceiling
	MinMediaCondition  domain.Condition
	MinSleeveCondition domain.Condition
	MinSellerRating    float64
	CountriesAllowed   []string
	CountriesBlocked   []string
}

// Match reports whether l passes every constraint of the rule.
func (r *Rule) Match(l *domain.Listing) bool {
	if l.Price == nil {
		return false
	}
	if r.MaxPrice > 0 && l.Price.Value > r.MaxPrice {
		return false
	}

	if !l.MediaCondition.AtLeast(r.MinMediaCondition) {
		return false
	}
	if !l.SleeveCondition.AtLeast(r.MinSleeveCondition) {
		return false
	}

	if r.MinSellerRating > 0 {
		if l.Seller.Rating == nil || *l.Seller.Rating < r.MinSellerRating {
			return false
		}
	}

	if len(r.CountriesAllowed) > 0 && !containsFold(r.CountriesAllowed, l.ShipsFrom) {
		return false
	}
	if containsFold(r.CountriesBlocked, l.ShipsFrom) {
		return false
	}

	return true
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}

// Target is a release to check and the rule its listings must satisfy.
type Target struct {
	ReleaseID int
	Title     string
	Rule      Rule
}

// RuleFromFilter converts the configured default filter into a Rule.
func RuleFromFilter(f config.FilterConfig) Rule {
	return Rule{
		MaxPrice:           f.MaxPrice,
		MinMediaCondition:  domain.ParseCondition(f.MinMediaCondition),
		MinSleeveCondition: domain.ParseCondition(f.MinSleeveCondition),
		MinSellerRating:    f.MinSellerRating,
		CountriesAllowed:   f.CountriesAllowed,
		CountriesBlocked:   f.CountriesBlocked,
	}
}

// TargetsFromConfig returns the default rule and the explicitly configured
// release targets. Fields a release leaves unset inherit the default.
func TargetsFromConfig(a config.AlertsConfig) (Rule, []Target) {
	def := RuleFromFilter(a.Defaults)

	targets := make([]Target, 0, len(a.Releases))
	for _, rc := range a.Releases {
		r := def
		if rc.MaxPrice > 0 {
			r.MaxPrice = rc.MaxPrice
		}
		if rc.MinMediaCondition != "" {
			r.MinMediaCondition = domain.ParseCondition(rc.MinMediaCondition)
		}
		if rc.MinSleeveCondition != "" {
			r.MinSleeveCondition = domain.ParseCondition(rc.MinSleeveCondition)
		}
		targets = append(targets, Target{ReleaseID: rc.ID, Rule: r})
	}

	return def, targets
}
