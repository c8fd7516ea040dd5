// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codr1/qlick/internal/api"
	"github.com/codr1/qlick/internal/api/foods"
	"github.com/codr1/qlick/internal/api/orders"
	"github.com/codr1/qlick/internal/api/storefront"
	"github.com/codr1/qlick/internal/api/themes"
	"github.com/codr1/qlick/internal/config"
	"github.com/codr1/qlick/internal/db"
	"github.com/codr1/qlick/internal/metrics"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/ratelimit"
	"github.com/codr1/qlick/internal/themeprovider"
)

type serverDeps struct {
	database *db.DB
	catalog  *models.Catalog
	provider *themeprovider.Provider
	limiter  *ratelimit.Limiter // nil disables rate limiting
}

func newServer(cfg *config.Config, deps serverDeps) *http.Server {
	router := http.NewServeMux()

	foods.InitHandlers(deps.database.Queries)
	themes.InitHandlers(deps.database.Queries, deps.catalog, deps.provider, cfg.Location())
	storefront.InitHandlers(deps.database.Queries, deps.provider, time.Now().UnixNano())

	registerRoutes(router, cfg, deps.limiter)

	// Metrics must wrap the router directly so r.Pattern is set when it reads it.
	handler := api.ChainMiddleware(
		router,
		api.WithMetrics,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithCORS,
	)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// newLimiter returns nil when rate limiting is disabled.
func newLimiter(cfg config.RateLimitConfig) *ratelimit.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	return ratelimit.New(&ratelimit.Config{
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		TrustProxy:        cfg.TrustProxy,
	})
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, limiter *ratelimit.Limiter) {
	limited := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}
		return limiter.Middleware(func(r *http.Request) {
			metrics.RateLimitedTotal.WithLabelValues(r.Pattern).Inc()
		})(h)
	}

	// Storefront API
	mux.HandleFunc("GET /foods", foods.HandleFoodsList)
	mux.Handle("POST /add-food", limited(foods.HandleFoodCreate))
	mux.Handle("POST /schedule-theme", limited(themes.HandleScheduleTheme))
	mux.HandleFunc("GET /current-theme", themes.HandleCurrentTheme)
	mux.HandleFunc("POST /order", orders.HandleOrder)

	// Pages
	mux.HandleFunc("GET /{$}", storefront.HandleHomePage)
	mux.HandleFunc("GET /admin", themes.HandleAdminPage)

	// Theme catalog and schedules
	mux.HandleFunc("GET /api/v1/themes", themes.HandleThemesList)
	mux.HandleFunc("GET /api/v1/theme-schedules", themes.HandleSchedulesList)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Features.EnableMetrics {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
}
