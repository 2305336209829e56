package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APIRequestRate returns a timeseries panel showing Discogs API requests
// by response status.
func APIRequestRate() *timeseries.PanelBuilder {
	return newTimeSeries("API Requests", "Authenticated Discogs API requests per second by status", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (status) (rate(discogs_alert_api_requests_total{`+Job+`}[5m]))`,
			"{{status}}", "A",
		)).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// RateLimitRemaining returns a timeseries panel tracking the rate-limit
// window reported by the API.
func RateLimitRemaining() *timeseries.PanelBuilder {
	return newTimeSeries("Rate Limit Window", "Requests used and remaining as reported by the last API response", ThirdWidth).
		WithTarget(PromQuery(`discogs_alert_ratelimit_used{`+Job+`}`, "used", "A")).
		WithTarget(PromQuery(`discogs_alert_ratelimit_remaining{`+Job+`}`, "remaining", "B")).
		Tooltip(MultiTooltip())
}

// SoftFailures returns a timeseries panel showing non-200 API responses by
// resource.
func SoftFailures() *timeseries.PanelBuilder {
	return newTimeSeries("API Soft Failures", "Non-200 responses returned as empty results, by resource", ThirdWidth).
		WithTarget(PromQuery(
			`sum by (resource) (increase(discogs_alert_api_soft_failures_total{`+Job+`}[1h]))`,
			"{{resource}}", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		DrawStyle(common.GraphDrawStyleBars)
}
