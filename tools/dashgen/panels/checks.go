package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CheckDuration returns a timeseries panel showing how long full checks
// take.
func CheckDuration() *timeseries.PanelBuilder {
	return newTimeSeries("Check Duration (p95)", "95th percentile duration of a full pass over watched releases", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.95, "discogs_alert_check_duration_seconds"), "p95", "A")).
		Unit("s")
}

// CheckErrors returns a timeseries panel showing check errors by stage.
func CheckErrors() *timeseries.PanelBuilder {
	return newTimeSeries("Check Errors", "Errors during checks by stage (wantlist, list, marketplace, notify)", ThirdWidth).
		WithTarget(PromQuery(`discogs_alert:check_errors:rate5m`, "{{stage}}", "A")).
		Legend(TableLegend("max")).
		Tooltip(MultiTooltip())
}

// NextCheck returns a stat panel counting down to the next scheduled check.
func NextCheck() *stat.PanelBuilder {
	return newStat("Next Check In", "Time until the scheduler starts the next check", TSHeight, ThirdWidth).
		WithTarget(PromQuery(`discogs_alert_scheduler_next_check_timestamp{`+Job+`} - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly())
}
