package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Quantile returns a histogram_quantile expression over a histogram's
// buckets for the discogs-alert job.
func Quantile(q float64, histogram string) string {
	return fmt.Sprintf(
		`histogram_quantile(%g, sum(rate(%s_bucket{%s}[5m])) by (le))`,
		q, histogram, Job,
	)
}

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return newTimeSeries("Request Rate", "HTTP requests per second, health checks and metrics scrapes excluded", ThirdWidth).
		WithTarget(PromQuery(`discogs_alert:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95 and p99
// HTTP request latencies. Manual checks dominate the tail.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const h = "discogs_alert_http_request_duration_seconds"
	return newTimeSeries("Latency Percentiles", "HTTP request duration percentiles", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, h), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, h), "p95", "B")).
		WithTarget(PromQuery(Quantile(0.99, h), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return newTimeSeries("Error Rate %", "HTTP 5xx responses and recovered panics as a percentage of requests", ThirdWidth).
		WithTarget(PromQuery(
			`discogs_alert:http_errors:rate5m / discogs_alert:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
