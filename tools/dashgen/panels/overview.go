package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat returns a stat panel showing the health check status.
func HealthzStat() *stat.PanelBuilder {
	return newStat("Healthz", "Health check status (1 = ok, 0 = failing)", StatHeight, StatWidth).
		WithTarget(PromQuery(`discogs_alert_healthz_up`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// ReadyzStat returns a stat panel showing whether the browser session is
// usable.
func ReadyzStat() *stat.PanelBuilder {
	return newStat("Readyz", "Readiness check status (1 = browser up, 0 = browser gone)", StatHeight, StatWidth).
		WithTarget(PromQuery(`discogs_alert_readyz_up`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// RateLimitGauge returns a gauge panel showing the API rate-limit window
// used as a percentage.
func RateLimitGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("API Rate Limit %").
		Description("Requests used in the current Discogs rate-limit window").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`discogs_alert_ratelimit_used / discogs_alert_ratelimit_limit * 100`,
			"", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// LastCheckAge returns a stat panel showing the time since the last check
// finished.
func LastCheckAge() *stat.PanelBuilder {
	return newStat("Last Check", "Time since the last marketplace check finished", StatHeight, StatWidth).
		WithTarget(PromQuery(`time() - discogs_alert_last_check_timestamp{`+Job+`}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(3600, 7200)).
		ColorMode(common.BigValueColorModeBackground)
}
