package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// discogs-alert operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("discogs-alert-alerts", "discogs-alert-alerts", []Rule{
		{
			Alert:  "DiscogsAlertDown",
			Expr:   `absent(up{job="discogs-alert"})`,
			For:    "5m",
			Labels: severity("critical"),
			Annotations: map[string]string{
				"summary":     "discogs-alert is down",
				"description": "The discogs-alert job has been absent for more than 5 minutes.",
			},
		},
		{
			Alert:  "DiscogsAlertBrowserDown",
			Expr:   `discogs_alert_readyz_up == 0`,
			For:    "5m",
			Labels: severity("critical"),
			Annotations: map[string]string{
				"summary":     "Headless browser is gone",
				"description": "The readiness check reports the browser session closed; marketplace checks cannot run.",
			},
		},
		{
			Alert:  "DiscogsAlertChecksStalled",
			Expr:   `time() - discogs_alert_last_check_timestamp > 3 * 3600`,
			For:    "10m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "No check has finished in 3 hours",
				"description": "The scheduler has not completed a marketplace check recently.",
			},
		},
		{
			Alert:  "DiscogsAlertRenderFailures",
			Expr:   `discogs_alert:marketplace_render_errors:rate5m > 0`,
			For:    "15m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "Marketplace pages are failing to render",
				"description": "Marketplace renders have been failing for 15 minutes. The site may be blocking the browser.",
			},
		},
		{
			Alert:  "DiscogsAlertRateLimitLow",
			Expr:   `discogs_alert_ratelimit_remaining < 5`,
			For:    "2m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "Discogs API rate limit nearly exhausted",
				"description": "Fewer than 5 requests remain in the current rate-limit window.",
			},
		},
		{
			Alert:  "DiscogsAlertHighErrorRate",
			Expr:   `discogs_alert:http_errors:rate5m / discogs_alert:http_requests:rate5m > 0.05`,
			For:    "5m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "High HTTP error rate on discogs-alert",
				"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
			},
		},
		{
			Alert:  "DiscogsAlertNotificationFailures",
			Expr:   `increase(discogs_alert_notification_failures_total[5m]) > 0`,
			For:    "1m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "Notification delivery failures detected",
				"description": "One or more Discord webhooks failed; the affected listings will be retried next check.",
			},
		},
	})
}

func severity(s string) map[string]string {
	return map[string]string{"severity": s}
}
