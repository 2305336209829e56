// Package scrape extracts marketplace listings from rendered Discogs pages.
// Parsing never touches the network, so it runs against saved HTML.
package scrape

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/donaldgifford/discogs-alert/pkg/types"
)

var (
	listingIDRe  = regexp.MustCompile(`/sell/item/(\d+)`)
	ratingRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	numRatingsRe = regexp.MustCompile(`([\d,]+)\s+ratings?`)
)

// Currency symbols as they appear in marketplace price text.
var currencySymbols = map[string]string{
	"€":   "EUR",
	"£":   "GBP",
	"$":   "USD",
	"US$": "USD",
	"CA$": "CAD",
	"A$":  "AUD",
	"¥":   "JPY",
	"CHF": "CHF",
	"SEK": "SEK",
	"R$":  "BRL",
	"MX$": "MXN",
	"NZ$": "NZD",
	"ZAR": "ZAR",
	"DKK": "DKK",
}

// Longer symbols first so "US$" wins over "$".
var symbolOrder = []string{"US$", "CA$", "MX$", "NZ$", "R$", "A$", "CHF", "SEK", "ZAR", "DKK", "€", "£", "¥", "$"}

var (
	symbolPattern = quoteAll(symbolOrder)
	// priceRe matches the first amount with the symbol written before it.
	priceRe = regexp.MustCompile(`(?:(` + symbolPattern + `)\s*)?(\d[\d.,]*)`)
	// suffixRe matches a symbol written after an amount, as in "12,50 €".
	suffixRe = regexp.MustCompile(`^\s*(` + symbolPattern + `)(\s*\d)?`)
)

func quoteAll(syms []string) string {
	quoted := make([]string, len(syms))
	for i, s := range syms {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return strings.Join(quoted, "|")
}

// ParseListings extracts the listings table from a marketplace page. Fields
// whose nodes are missing are left empty; a page without a listings table
// yields an empty collection.
func ParseListings(html string, releaseID int) (*domain.Listings, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("reading marketplace HTML: %w", err)
	}

	listings := domain.NewListings(releaseID)

	doc.Find("table.mpitems tbody tr").Each(func(_ int, row *goquery.Selection) {
		l, ok := parseRow(row)
		if !ok {
			return
		}
		listings.Add(l)
	})

	return listings, nil
}

// parseRow reports ok=false for rows that carry neither a listing link nor
// a price, such as spacer or ad rows.
func parseRow(row *goquery.Selection) (domain.Listing, bool) {
	var l domain.Listing

	title := row.Find("a.item_description_title").First()
	if href, exists := title.Attr("href"); exists {
		l.URL = href
		if m := listingIDRe.FindStringSubmatch(href); m != nil {
			l.ID, _ = strconv.ParseInt(m[1], 10, 64)
		}
	}
	l.Title = collapse(title.Text())

	priceCell := row.Find("td.item_price")
	l.Price = parsePriceNode(priceCell.Find("span.price").First())
	if shipping := priceCell.Find("span.item_shipping").First(); shipping.Length() > 0 {
		l.Shipping = parsePriceText(shipping.Text())
	}

	if l.ID == 0 && l.Price == nil {
		return l, false
	}

	parseConditions(row.Find("p.item_condition").First(), &l)
	parseSeller(row.Find("td.seller_info").First(), &l)

	l.Comments = collapse(row.Find("td.item_description p.hide_mobile").Last().Text())

	return l, true
}

func parseConditions(cond *goquery.Selection, l *domain.Listing) {
	if cond.Length() == 0 {
		return
	}

	sleeve := cond.Find("span.item_sleeve_condition").First()
	l.SleeveCondition = domain.ParseCondition(sleeve.Text())

	// Media grade is whatever remains once the sleeve span is dropped.
	media := cond.Clone()
	media.Find("span.item_sleeve_condition").Remove()
	media.Find(".condition-label-mobile, .mplabel").Remove()
	l.MediaCondition = domain.ParseCondition(media.Text())
}

func parseSeller(info *goquery.Selection, l *domain.Listing) {
	if info.Length() == 0 {
		return
	}

	l.Seller.Username = collapse(info.Find("div.seller_block a").First().Text())

	text := collapse(info.Text())
	if m := ratingRe.FindStringSubmatch(text); m != nil {
		if r, err := strconv.ParseFloat(m[1], 64); err == nil {
			l.Seller.Rating = &r
		}
	}
	if m := numRatingsRe.FindStringSubmatch(text); m != nil {
		l.Seller.NumRatings, _ = strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	}

	info.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		label := li.Find("span.mplabel").First()
		if !strings.HasPrefix(collapse(label.Text()), "Ships From") {
			return true
		}
		l.ShipsFrom = collapse(strings.TrimPrefix(collapse(li.Text()), collapse(label.Text())))
		return false
	})
}

func parsePriceNode(sel *goquery.Selection) *domain.Price {
	if sel.Length() == 0 {
		return nil
	}
	if raw, ok := sel.Attr("data-pricevalue"); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			currency, _ := sel.Attr("data-currency")
			return &domain.Price{Value: v, Currency: currency}
		}
	}
	return parsePriceText(sel.Text())
}

// parsePriceText reads prices such as "€12.50", "+£3.00 shipping",
// "1,234.00 SEK" or "£10.00 about US$12.50". The currency is the symbol
// next to the first amount. Text without a number yields nil.
func parsePriceText(text string) *domain.Price {
	text = collapse(text)
	loc := priceRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	v, err := strconv.ParseFloat(normalizeAmount(text[loc[4]:loc[5]]), 64)
	if err != nil {
		return nil
	}

	p := &domain.Price{Value: v}
	switch {
	case loc[2] >= 0:
		p.Currency = currencySymbols[text[loc[2]:loc[3]]]
	default:
		// A trailing symbol followed by another amount belongs to that amount.
		if m := suffixRe.FindStringSubmatch(text[loc[1]:]); m != nil && m[2] == "" {
			p.Currency = currencySymbols[m[1]]
		}
	}
	return p
}

// normalizeAmount turns "1,234.50", "1.234,50", "1.234" and "1,234" into a
// plain decimal. With both separators the last one is the decimal mark. A
// lone separator followed by exactly three digits groups thousands.
func normalizeAmount(s string) string {
	s = strings.TrimRight(s, ".,")
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		return decimalOrGrouped(s, ",")
	case lastDot >= 0:
		return decimalOrGrouped(s, ".")
	default:
		return s
	}
}

// decimalOrGrouped handles an amount using only sep.
func decimalOrGrouped(s, sep string) string {
	last := strings.LastIndex(s, sep)
	if strings.Count(s, sep) > 1 || len(s)-last-1 == 3 {
		return strings.ReplaceAll(s, sep, "")
	}
	return strings.Replace(s, sep, ".", 1)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
