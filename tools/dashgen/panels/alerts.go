package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsFired returns a stat panel showing listings alerted on in the past
// 24 hours.
func AlertsFired() *stat.PanelBuilder {
	return newStat("Alerts (24h)", "New matching listings delivered in the last 24 hours", TSHeight, ThirdWidth).
		WithTarget(PromQuery(`increase(discogs_alert_alerts_fired_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorMode(common.BigValueColorModeValue).
		GraphMode(common.BigValueGraphModeArea)
}

// NotificationLatency returns a timeseries panel showing the p95
// notification webhook latency.
func NotificationLatency() *timeseries.PanelBuilder {
	return newTimeSeries("Notification Latency (p95)", "95th percentile Discord webhook latency", ThirdWidth).
		WithTarget(PromQuery(`discogs_alert:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// NotificationFailures returns a stat panel showing notification failures
// in the past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return newStat("Notification Failures (24h)", "Failed alert deliveries in the last 24 hours", TSHeight, ThirdWidth).
		WithTarget(PromQuery(`increase(discogs_alert_notification_failures_total{`+Job+`}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
