// Package main is the entrypoint for the PokeCatch API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pokecatch/pokecatch/internal/auth"
	"github.com/pokecatch/pokecatch/internal/cache"
	"github.com/pokecatch/pokecatch/internal/config"
	"github.com/pokecatch/pokecatch/internal/handler"
	"github.com/pokecatch/pokecatch/internal/metrics"
	"github.com/pokecatch/pokecatch/internal/middleware"
	"github.com/pokecatch/pokecatch/internal/migrations"
	"github.com/pokecatch/pokecatch/internal/pokeapi"
	"github.com/pokecatch/pokecatch/internal/repository"
	"github.com/pokecatch/pokecatch/internal/server"
	"github.com/pokecatch/pokecatch/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := initLogger(cfg)

	if cfg.MigrateOnStart {
		if err := migrate(ctx, cfg.DatabaseURL, logger); err != nil {
			logger.Error("failed to apply migrations",
				slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
				slog.String("database_url", redactURL(cfg.DatabaseURL)),
			)
			return errStartup
		}
	}

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		return errStartup
	}
	logger.Info("connected to database")

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		repo.Close()
		logger.Error("failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		return errStartup
	}
	logger.Info("connected to Redis")

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return err
	}
	issuer, err := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		return err
	}
	logger.Info("auth configured",
		slog.Int("bcrypt_cost", hasher.Cost()),
		slog.Duration("token_ttl", issuer.TTL()),
	)

	recorder := metrics.NewInMemory()
	upstream := pokeapi.NewClient(cfg.PokeAPIBaseURL, pokeapi.NewHTTPClient(cfg.PokeAPITimeout))

	authService := service.NewAuthService(repo, hasher, issuer, recorder)
	collectionService := service.NewCollectionService(repo, recorder)
	pokemonService := service.NewPokemonService(upstream, cacheClient, cfg.PokemonCacheTTL, logger, recorder)

	router := handler.NewRouter(handler.RouterConfig{
		Logger:     logger,
		Auth:       handler.NewAuthHandler(authService, logger),
		Pokemon:    handler.NewPokemonHandler(pokemonService, logger),
		Collection: handler.NewCollectionHandler(collectionService, logger),
		Health:     handler.NewHealthHandler(repo, cacheClient, logger),
		Metrics:    handler.NewMetricsHandler(recorder),
		Verifier:   issuer,
		RateLimit: middleware.RateLimitConfig{
			Logger:   logger,
			Limiter:  cacheClient,
			Enabled:  cfg.RateLimitEnabled,
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
		},
		CORS:        corsConfig(cfg),
		Security:    middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()},
		MaxBodySize: cfg.MaxRequestBodySize,
	})

	srv := server.New(router, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("postgres", func(context.Context) error {
		repo.Close()
		return nil
	})
	srv.OnShutdown("redis", func(context.Context) error {
		return cacheClient.Close()
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"pokeapi_base_url", cfg.PokeAPIBaseURL,
		"rate_limit_enabled", cfg.RateLimitEnabled,
	)

	return srv.Run(ctx)
}

func migrate(ctx context.Context, databaseURL string, logger *slog.Logger) error {
	db, err := migrations.Open(databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	logger.Info("database schema up to date", "version", version)
	return nil
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	c := middleware.DefaultCORSConfig()
	c.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	return c
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With("service", "pokecatch")
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
