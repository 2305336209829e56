package domain

import (
	"strconv"
)

// Price is an amount in a single currency.
type Price struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// String renders the price as "12.50 EUR".
func (p *Price) String() string {
	if p == nil {
		return "-"
	}
	s := strconv.FormatFloat(p.Value, 'f', 2, 64)
	if p.Currency == "" {
		return s
	}
	return s + " " + p.Currency
}

// Seller identifies the marketplace seller of a listing.
type Seller struct {
	Username   string   `json:"username"`
	Rating     *float64 `json:"rating,omitempty"`
	NumRatings int      `json:"num_ratings,omitempty"`
}

// Listing is a single marketplace offer for a release. Price and Shipping
// are nil when the page or API response did not carry them.
type Listing struct {
	ID              int64     `json:"id"`
	ReleaseID       int       `json:"release_id"`
	Title           string    `json:"title,omitempty"`
	URL             string    `json:"url,omitempty"`
	Status          string    `json:"status,omitempty"`
	Price           *Price    `json:"price"`
	Shipping        *Price    `json:"shipping,omitempty"`
	MediaCondition  Condition `json:"media_condition"`
	SleeveCondition Condition `json:"sleeve_condition"`
	Seller          Seller    `json:"seller"`
	ShipsFrom       string    `json:"ships_from,omitempty"`
	Comments        string    `json:"comments,omitempty"`
}

// Listings is an ordered collection of listings for one release, in page
// order.
type Listings struct {
	ReleaseID int       `json:"release_id"`
	Items     []Listing `json:"items"`
}

// NewListings returns an empty collection scoped to releaseID.
func NewListings(releaseID int) *Listings {
	return &Listings{ReleaseID: releaseID, Items: []Listing{}}
}

// Add appends l, forcing its release ID to the collection's.
func (ls *Listings) Add(l Listing) {
	l.ReleaseID = ls.ReleaseID
	ls.Items = append(ls.Items, l)
}

// Len returns the number of listings.
func (ls *Listings) Len() int {
	if ls == nil {
		return 0
	}
	return len(ls.Items)
}

// Filter returns a new collection holding the listings keep accepts, in
// their original order.
func (ls *Listings) Filter(keep func(Listing) bool) *Listings {
	out := NewListings(ls.ReleaseID)
	for _, l := range ls.Items {
		if keep(l) {
			out.Items = append(out.Items, l)
		}
	}
	return out
}

// Cheapest returns the priced listing with the lowest value. Listings
// without a price are ignored.
func (ls *Listings) Cheapest() (Listing, bool) {
	var (
		best  Listing
		found bool
	)
	for _, l := range ls.Items {
		if l.Price == nil {
			continue
		}
		if !found || l.Price.Value < best.Price.Value {
			best = l
			found = true
		}
	}
	return best, found
}
