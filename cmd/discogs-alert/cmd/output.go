package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/discogs-alert/internal/engine"
	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printReleaseDetail(w io.Writer, r *domain.Release) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", r.ID)
	tw.writef("Title:\t%s\n", r.Name())
	if r.Year > 0 {
		tw.writef("Year:\t%d\n", r.Year)
	}
	if r.Country != "" {
		tw.writef("Country:\t%s\n", r.Country)
	}
	if len(r.Formats) > 0 {
		tw.writef("Format:\t%s\n", formatNames(r.Formats))
	}
	if len(r.Genres) > 0 {
		tw.writef("Genres:\t%s\n", strings.Join(r.Genres, ", "))
	}
	if len(r.Styles) > 0 {
		tw.writef("Styles:\t%s\n", strings.Join(r.Styles, ", "))
	}
	tw.writef("For Sale:\t%d\n", r.NumForSale)
	if r.LowestPrice != nil {
		tw.writef("Lowest:\t%.2f\n", *r.LowestPrice)
	}
	if r.URI != "" {
		tw.writef("URL:\t%s\n", r.URI)
	}
	return tw.finish()
}

func formatNames(fs []domain.Format) string {
	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		s := f.Name
		if len(f.Descriptions) > 0 {
			s += " (" + strings.Join(f.Descriptions, ", ") + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", l.ID)
	tw.writef("Release:\t%d\n", l.ReleaseID)
	if l.Title != "" {
		tw.writef("Title:\t%s\n", l.Title)
	}
	if l.Status != "" {
		tw.writef("Status:\t%s\n", l.Status)
	}
	tw.writef("Price:\t%s\n", l.Price.String())
	if l.Shipping != nil {
		tw.writef("Shipping:\t%s\n", l.Shipping.String())
	}
	tw.writef("Media:\t%s\n", l.MediaCondition.Short())
	tw.writef("Sleeve:\t%s\n", l.SleeveCondition.Short())
	tw.writef("Seller:\t%s\n", sellerLabel(&l.Seller))
	if l.ShipsFrom != "" {
		tw.writef("Ships From:\t%s\n", l.ShipsFrom)
	}
	if l.Comments != "" {
		tw.writef("Comments:\t%s\n", truncate(l.Comments, 80))
	}
	if l.URL != "" {
		tw.writef("URL:\t%s\n", l.URL)
	}
	return tw.finish()
}

func sellerLabel(s *domain.Seller) string {
	if s.Rating == nil {
		return s.Username
	}
	return fmt.Sprintf("%s (%.1f%%, %d)", s.Username, *s.Rating, s.NumRatings)
}

func printListingsTable(w io.Writer, ls *domain.Listings) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPRICE\tSHIPPING\tMEDIA\tSLEEVE\tSELLER\tFROM\n")
	for i := range ls.Items {
		l := &ls.Items[i]
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.Price.String(),
			l.Shipping.String(),
			l.MediaCondition.Short(),
			l.SleeveCondition.Short(),
			sellerLabel(&l.Seller),
			l.ShipsFrom,
		)
	}
	return tw.finish()
}

func printUserList(w io.Writer, l *domain.UserList) error {
	tw := newTabWriter(w)
	tw.writef("List:\t%s (%d)\n", l.Name, l.ID)
	if l.Description != "" {
		tw.writef("Description:\t%s\n", truncate(l.Description, 80))
	}
	tw.writef("Items:\t%d\n\n", len(l.Items))
	tw.writef("ID\tTITLE\tCOMMENT\n")
	for i := range l.Items {
		tw.writef("%d\t%s\t%s\n",
			l.Items[i].ID,
			truncate(l.Items[i].Name(), 50),
			truncate(l.Items[i].Comment, 40),
		)
	}
	return tw.finish()
}

func printStats(w io.Writer, releaseID int, s *domain.ReleaseStats) error {
	tw := newTabWriter(w)
	tw.writef("Release:\t%d\n", releaseID)
	tw.writef("For Sale:\t%d\n", s.NumForSale)
	tw.writef("Lowest:\t%s\n", s.LowestPrice.String())
	tw.writef("Blocked:\t%v\n", s.BlockedFromSale)
	return tw.finish()
}

func printWantlist(w io.Writer, wl *domain.Wantlist) error {
	tw := newTabWriter(w)
	tw.writef("ID\tARTIST\tTITLE\tYEAR\tRATING\n")
	for i := range wl.Wants {
		b := &wl.Wants[i].BasicInformation
		artist := "-"
		if len(b.Artists) > 0 {
			artist = b.Artists[0].Name
		}
		year := "-"
		if b.Year > 0 {
			year = fmt.Sprintf("%d", b.Year)
		}
		tw.writef("%d\t%s\t%s\t%s\t%d\n",
			b.ID,
			truncate(artist, 30),
			truncate(b.Title, 40),
			year,
			wl.Wants[i].Rating,
		)
	}
	return tw.finish()
}

func printCheckResult(w io.Writer, r *engine.CheckResult) error {
	tw := newTabWriter(w)
	tw.writef("Releases:\t%d\n", r.Releases)
	tw.writef("Listings:\t%d\n", r.Listings)
	tw.writef("Matches:\t%d\n", r.Matches)
	tw.writef("Notified:\t%d\n", r.Notified)
	tw.writef("Errors:\t%d\n", r.Errors)
	return tw.finish()
}

func printRateLimit(w io.Writer, rl domain.RateLimit) error {
	_, err := fmt.Fprintf(w, "rate limit: %d/%d used, %d remaining\n", rl.Used, rl.Limit, rl.Remaining)
	return err
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
