package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectors() map[string]prometheus.Collector {
	return map[string]prometheus.Collector{
		"http_request_duration_seconds":       HTTPRequestDuration,
		"http_requests_total":                 HTTPRequestsTotal,
		"healthz_up":                          HealthzUp,
		"readyz_up":                           ReadyzUp,
		"http_panics_total":                   HTTPPanicsTotal,
		"api_requests_total":                  APIRequestsTotal,
		"api_request_duration_seconds":        APIRequestDuration,
		"api_soft_failures_total":             APISoftFailuresTotal,
		"ratelimit_limit":                     RateLimitLimit,
		"ratelimit_used":                      RateLimitUsed,
		"ratelimit_remaining":                 RateLimitRemaining,
		"marketplace_renders_total":           MarketplaceRendersTotal,
		"marketplace_render_errors_total":     MarketplaceRenderErrorsTotal,
		"marketplace_render_duration_seconds": MarketplaceRenderDuration,
		"listings_scraped_total":              ListingsScrapedTotal,
		"check_runs_total":                    CheckRunsTotal,
		"check_errors_total":                  CheckErrorsTotal,
		"check_duration_seconds":              CheckDuration,
		"scheduler_next_check_timestamp":      SchedulerNextCheckTimestamp,
		"last_check_timestamp":                LastCheckTimestamp,
		"listings_matched_total":              ListingsMatchedTotal,
		"alerts_fired_total":                  AlertsFiredTotal,
		"notification_failures_total":         NotificationFailuresTotal,
		"notification_duration_seconds":       NotificationDuration,
	}
}

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	for name, c := range collectors() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.NotNil(t, c)

			ch := make(chan *prometheus.Desc, 1)
			c.Describe(ch)
			desc := (<-ch).String()
			assert.True(t, strings.Contains(desc, `"discogs_alert_`+name+`"`),
				"descriptor %s does not carry name %s", desc, name)
		})
	}
}

func TestRateLimitGauges(t *testing.T) {
	t.Parallel()

	RateLimitLimit.Set(60)
	RateLimitUsed.Set(12)
	RateLimitRemaining.Set(48)

	assert.InDelta(t, 60, testutil.ToFloat64(RateLimitLimit), 0)
	assert.InDelta(t, 12, testutil.ToFloat64(RateLimitUsed), 0)
	assert.InDelta(t, 48, testutil.ToFloat64(RateLimitRemaining), 0)
}

func TestCounterVecsByLabel(t *testing.T) {
	t.Parallel()

	soft := APISoftFailuresTotal.WithLabelValues("release")
	before := testutil.ToFloat64(soft)
	soft.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(soft), 0)

	reqs := APIRequestsTotal.WithLabelValues("GET", "200")
	before = testutil.ToFloat64(reqs)
	reqs.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(reqs), 0)

	scraped := testutil.ToFloat64(ListingsScrapedTotal)
	ListingsScrapedTotal.Add(3)
	assert.InDelta(t, scraped+3, testutil.ToFloat64(ListingsScrapedTotal), 0)
}
