// Package notify defines the notification interface and implementations
// for marketplace alert delivery.
package notify

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// AlertPayload describes one marketplace listing that matched a release's
// alert rule.
type AlertPayload struct {
	ReleaseID       int
	ReleaseTitle    string
	ListingID       int64
	ListingURL      string
	Price           string
	Shipping        string
	MediaCondition  domain.Condition
	SleeveCondition domain.Condition
	Seller          string
	SellerRating    string
	ShipsFrom       string
	Comments        string
}

// NewAlertPayload builds the payload for a matched listing. Relative
// listing URLs are resolved against siteURL.
func NewAlertPayload(release string, l *domain.Listing, siteURL string) AlertPayload {
	p := AlertPayload{
		ReleaseID:       l.ReleaseID,
		ReleaseTitle:    release,
		ListingID:       l.ID,
		ListingURL:      l.URL,
		Price:           l.Price.String(),
		Shipping:        l.Shipping.String(),
		MediaCondition:  l.MediaCondition,
		SleeveCondition: l.SleeveCondition,
		Seller:          l.Seller.Username,
		SellerRating:    "-",
		ShipsFrom:       l.ShipsFrom,
		Comments:        l.Comments,
	}
	if p.ReleaseTitle == "" {
		p.ReleaseTitle = l.Title
	}
	if len(p.ListingURL) > 0 && p.ListingURL[0] == '/' {
		p.ListingURL = siteURL + p.ListingURL
	}
	if l.Seller.Rating != nil {
		p.SellerRating = fmt.Sprintf("%.1f%% (%d)", *l.Seller.Rating, l.Seller.NumRatings)
	}
	return p
}

// Notifier defines the interface for sending listing alert notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, release string) error
}
