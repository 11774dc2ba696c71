package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pokecatch/pokecatch/internal/middleware"
)

// RouterConfig wires handlers and middleware into the HTTP route table.
type RouterConfig struct {
	Logger *slog.Logger

	Auth       *AuthHandler
	Pokemon    *PokemonHandler
	Collection *CollectionHandler
	Health     *HealthHandler
	Metrics    *MetricsHandler

	Verifier    middleware.TokenVerifier
	RateLimit   middleware.RateLimitConfig
	CORS        middleware.CORSConfig
	Security    middleware.SecurityConfig
	MaxBodySize int64
}

// NewRouter builds the chi router.
//
// Health and metrics routes skip the rate gate so probes are never throttled.
// Everything under /protected additionally requires a bearer token.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(middleware.Security(cfg.Security))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.MaxBodySize(cfg.MaxBodySize))

	r.Get("/healthz", cfg.Health.Healthz)
	r.Get("/readyz", cfg.Health.Readyz)
	r.Get("/metrics", cfg.Metrics.Metrics)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimit))

		r.Post("/register", cfg.Auth.Register)
		r.Post("/login", cfg.Auth.Login)
		r.Get("/pokemon/{name}", cfg.Pokemon.Get)

		r.Route("/protected", func(r chi.Router) {
			r.Use(middleware.Auth(middleware.AuthConfig{
				Logger:   cfg.Logger,
				Verifier: cfg.Verifier,
			}))

			r.Post("/capture", cfg.Collection.Capture)
			r.Delete("/release/{id}", cfg.Collection.Release)
			r.Get("/caught", cfg.Collection.Caught)
		})
	})

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	return r
}

