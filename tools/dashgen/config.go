package main

import "errors"

// KnownMetrics is the set of metric names exported by discogs-alert plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"discogs_alert_http_request_duration_seconds_bucket": true,
	"discogs_alert_http_requests_total":                  true,
	"discogs_alert_http_panics_total":                    true,

	// Health metrics.
	"discogs_alert_healthz_up": true,
	"discogs_alert_readyz_up":  true,

	// Discogs API metrics.
	"discogs_alert_api_requests_total":                  true,
	"discogs_alert_api_soft_failures_total":             true,
	"discogs_alert_ratelimit_limit":                     true,
	"discogs_alert_ratelimit_used":                      true,
	"discogs_alert_ratelimit_remaining":                 true,
	"discogs_alert_api_request_duration_seconds_bucket": true,

	// Marketplace metrics.
	"discogs_alert_marketplace_render_duration_seconds_bucket": true,
	"discogs_alert_marketplace_render_errors_total":            true,
	"discogs_alert_marketplace_renders_total":                  true,
	"discogs_alert_listings_scraped_total":                     true,

	// Check metrics.
	"discogs_alert_check_duration_seconds_bucket":  true,
	"discogs_alert_check_errors_total":             true,
	"discogs_alert_check_runs_total":               true,
	"discogs_alert_scheduler_next_check_timestamp": true,
	"discogs_alert_last_check_timestamp":           true,

	// Alert metrics.
	"discogs_alert_listings_matched_total":               true,
	"discogs_alert_alerts_fired_total":                   true,
	"discogs_alert_notification_failures_total":          true,
	"discogs_alert_notification_duration_seconds_bucket": true,

	// Recording rules.
	"discogs_alert:http_requests:rate5m":             true,
	"discogs_alert:http_errors:rate5m":               true,
	"discogs_alert:check_errors:rate5m":              true,
	"discogs_alert:marketplace_render_errors:rate5m": true,
	"discogs_alert:notification_duration:p95_5m":     true,

	// Standard Prometheus metrics referenced in alerts.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
