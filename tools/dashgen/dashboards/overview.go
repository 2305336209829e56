// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/discogs-alert/tools/dashgen/panels"
)

// BuildOverview constructs the discogs-alert overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Discogs Alert Overview").
		Uid("discogs-alert-overview").
		Tags([]string{"discogs-alert"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.RateLimitGauge()).
		WithPanel(panels.LastCheckAge()))

	b.WithRow(dashboard.NewRowBuilder("Checks").
		WithPanel(panels.CheckDuration()).
		WithPanel(panels.CheckErrors()).
		WithPanel(panels.NextCheck()))

	b.WithRow(dashboard.NewRowBuilder("Marketplace").
		WithPanel(panels.RenderLatency()).
		WithPanel(panels.RenderErrors()).
		WithPanel(panels.ListingsScraped()))

	b.WithRow(dashboard.NewRowBuilder("Discogs API").
		WithPanel(panels.APIRequestRate()).
		WithPanel(panels.RateLimitRemaining()).
		WithPanel(panels.SoftFailures()))

	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsFired()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
