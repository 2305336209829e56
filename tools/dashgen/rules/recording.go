package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("discogs-alert-recording-rules", "discogs-alert-recording", []Rule{
		{
			Record: "discogs_alert:http_requests:rate5m",
			Expr:   `sum(rate(discogs_alert_http_requests_total[5m]))`,
		},
		{
			Record: "discogs_alert:http_errors:rate5m",
			Expr:   `sum(rate(discogs_alert_http_requests_total{status=~"5.."}[5m]))`,
		},
		{
			Record: "discogs_alert:check_errors:rate5m",
			Expr:   `sum by (stage) (rate(discogs_alert_check_errors_total[5m]))`,
		},
		{
			Record: "discogs_alert:marketplace_render_errors:rate5m",
			Expr:   `rate(discogs_alert_marketplace_render_errors_total[5m])`,
		},
		{
			Record: "discogs_alert:notification_duration:p95_5m",
			Expr: `histogram_quantile(0.95, ` +
				`sum(rate(discogs_alert_notification_duration_seconds_bucket[5m])) by (le))`,
		},
	})
}
