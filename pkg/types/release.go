// Package domain defines the catalog and marketplace types shared by the
// Discogs clients, the listings parser and the alert engine.
package domain

import "fmt"

// Artist is a credited artist on a release.
type Artist struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	ANV  string `json:"anv,omitempty"`
	Join string `json:"join,omitempty"`
	Role string `json:"role,omitempty"`
}

// Format describes one physical or digital format of a release.
type Format struct {
	Name         string   `json:"name"`
	Qty          string   `json:"qty,omitempty"`
	Text         string   `json:"text,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// Release is a catalog item. List items decode into the same type and fill
// the DisplayTitle, Comment and ImageURL fields instead of the full record.
type Release struct {
	ID          int      `json:"id"`
	Title       string   `json:"title,omitempty"`
	Year        int      `json:"year,omitempty"`
	Country     string   `json:"country,omitempty"`
	Artists     []Artist `json:"artists,omitempty"`
	Formats     []Format `json:"formats,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Styles      []string `json:"styles,omitempty"`
	URI         string   `json:"uri,omitempty"`
	ResourceURL string   `json:"resource_url,omitempty"`
	LowestPrice *float64 `json:"lowest_price,omitempty"`
	NumForSale  int      `json:"num_for_sale,omitempty"`

	DisplayTitle string `json:"display_title,omitempty"`
	Comment      string `json:"comment,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Type         string `json:"type,omitempty"`
}

// Name returns the best human-readable label for the release.
func (r *Release) Name() string {
	if r.DisplayTitle != "" {
		return r.DisplayTitle
	}
	if len(r.Artists) > 0 && r.Title != "" {
		return r.Artists[0].Name + " - " + r.Title
	}
	if r.Title != "" {
		return r.Title
	}
	return fmt.Sprintf("release %d", r.ID)
}

// UserList is a named, ordered collection of releases owned by a user.
type UserList struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Public      bool      `json:"public"`
	ResourceURL string    `json:"resource_url,omitempty"`
	URI         string    `json:"uri,omitempty"`
	DateAdded   string    `json:"date_added,omitempty"`
	DateChanged string    `json:"date_changed,omitempty"`
	Items       []Release `json:"items"`
}

// ReleaseStats holds aggregate marketplace statistics for a release.
type ReleaseStats struct {
	LowestPrice     *Price `json:"lowest_price"`
	NumForSale      int    `json:"num_for_sale"`
	BlockedFromSale bool   `json:"blocked_from_sale"`
}

// BasicInformation is the release summary embedded in wantlist entries.
type BasicInformation struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year,omitempty"`
	Artists     []Artist `json:"artists,omitempty"`
	Formats     []Format `json:"formats,omitempty"`
	ResourceURL string   `json:"resource_url,omitempty"`
	Thumb       string   `json:"thumb,omitempty"`
}

// Want is a single wantlist entry.
type Want struct {
	ID               int              `json:"id"`
	Rating           int              `json:"rating"`
	Notes            string           `json:"notes,omitempty"`
	DateAdded        string           `json:"date_added,omitempty"`
	BasicInformation BasicInformation `json:"basic_information"`
}

// Wantlist is the first page of a user's wantlist.
type Wantlist struct {
	Wants []Want `json:"wants"`
}

// RateLimit is the request quota last reported by the API.
type RateLimit struct {
	Limit     int `json:"limit"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}
