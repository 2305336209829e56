package discogs

import (
	"strconv"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// apiListing mirrors the /marketplace/listings/{id} response.
type apiListing struct {
	ID              int64         `json:"id"`
	Status          string        `json:"status"`
	URI             string        `json:"uri"`
	Condition       string        `json:"condition"`
	SleeveCondition string        `json:"sleeve_condition"`
	Comments        string        `json:"comments"`
	ShipsFrom       string        `json:"ships_from"`
	Price           *domain.Price `json:"price"`
	ShippingPrice   *domain.Price `json:"shipping_price"`
	Seller          apiSeller     `json:"seller"`
	Release         apiRelease    `json:"release"`
}

type apiSeller struct {
	Username string         `json:"username"`
	Stats    apiSellerStats `json:"stats"`
}

// Rating arrives as a string ("99.8") and Total as a number.
type apiSellerStats struct {
	Rating string `json:"rating"`
	Total  int    `json:"total"`
}

type apiRelease struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

func (l *apiListing) toDomain() domain.Listing {
	out := domain.Listing{
		ID:              l.ID,
		ReleaseID:       l.Release.ID,
		Title:           l.Release.Description,
		URL:             l.URI,
		Status:          l.Status,
		Price:           l.Price,
		Shipping:        l.ShippingPrice,
		MediaCondition:  domain.ParseCondition(l.Condition),
		SleeveCondition: domain.ParseCondition(l.SleeveCondition),
		Seller: domain.Seller{
			Username:   l.Seller.Username,
			NumRatings: l.Seller.Stats.Total,
		},
		ShipsFrom: l.ShipsFrom,
		Comments:  l.Comments,
	}
	if r, err := strconv.ParseFloat(l.Seller.Stats.Rating, 64); err == nil {
		out.Seller.Rating = &r
	}
	return out
}
