package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"infinite-experiment/airport-lookup/internal/api"
	"infinite-experiment/airport-lookup/internal/config"
	"infinite-experiment/airport-lookup/internal/logging"
	"infinite-experiment/airport-lookup/internal/metrics"
	"infinite-experiment/airport-lookup/internal/middleware"
)

const rateLimiterIdleTTL = 10 * time.Minute

func RegisterRoutes(cfg *config.Config, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(chimiddleware.Recoverer)
	if cfg.AppEnv == "development" {
		r.Use(middleware.DebugLogging)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(deps.DB, cfg.Backend, upSince))

	r.Group(func(public chi.Router) {
		if cfg.Server.RateLimit > 0 {
			limiter := middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst, rateLimiterIdleTTL, metricsReg)
			public.Use(limiter.Middleware)
		}
		public.Get("/airport", api.GetAirportHandler(deps.Services.Lookup))
	})

	logging.Info("Router initialized",
		"backend", cfg.Backend,
		"rate_limit", cfg.Server.RateLimit,
	)

	return r
}
