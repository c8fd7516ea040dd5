package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qlick_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})
	HttpRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qlick_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	RateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qlick_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	}, []string{"route"})
	FoodsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qlick_foods_created_total",
		Help: "Total number of menu items added",
	})
	ThemeSchedulesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qlick_theme_schedules_created_total",
		Help: "Total number of theme schedules created",
	}, []string{"theme"})
	ThemeRefreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qlick_theme_refreshes_total",
		Help: "Total number of active theme refreshes",
	})
	ActiveTheme = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "qlick_active_theme",
		Help: "Set to 1 for the currently active theme",
	}, []string{"theme"})
)

// UnknownThemeLabel stands in for schedule names outside the theme catalog so
// free-form input cannot create new series.
const UnknownThemeLabel = "unknown"

// RecordActiveTheme marks name as the only active theme.
func RecordActiveTheme(name string) {
	ThemeRefreshesTotal.Inc()
	ActiveTheme.Reset()
	ActiveTheme.WithLabelValues(name).Set(1)
}
