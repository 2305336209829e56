package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RenderLatency returns a timeseries panel showing marketplace page render
// times in the headless browser.
func RenderLatency() *timeseries.PanelBuilder {
	const h = "discogs_alert_marketplace_render_duration_seconds"
	return newTimeSeries("Render Latency", "Marketplace page render duration percentiles", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, h), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, h), "p95", "B")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// RenderErrors returns a stat panel showing failed renders in the past
// 24 hours.
func RenderErrors() *stat.PanelBuilder {
	return newStat("Render Errors (24h)", "Marketplace pages that failed to render in the last 24 hours", TSHeight, ThirdWidth).
		WithTarget(PromQuery(`increase(discogs_alert_marketplace_render_errors_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// ListingsScraped returns a timeseries panel comparing scraped and matched
// listings.
func ListingsScraped() *timeseries.PanelBuilder {
	return newTimeSeries("Listings", "Listings scraped and listings passing alert rules, per hour", ThirdWidth).
		WithTarget(PromQuery(`increase(discogs_alert_listings_scraped_total{`+Job+`}[1h])`, "scraped", "A")).
		WithTarget(PromQuery(`increase(discogs_alert_listings_matched_total{`+Job+`}[1h])`, "matched", "B")).
		Tooltip(MultiTooltip())
}
