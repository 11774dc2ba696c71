package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pokecatch/pokecatch/internal/cache"
	"github.com/pokecatch/pokecatch/internal/metrics"
)

// PokemonService looks up species metadata, cache first.
// Every failure is reported as ErrPokemonNotFound.
type PokemonService struct {
	fetcher  PokemonFetcher
	cache    PokemonCache
	cacheTTL time.Duration
	logger   *slog.Logger
	metrics  metrics.Recorder
	group    singleflight.Group
}

// NewPokemonService creates a new PokemonService. cache may be nil.
func NewPokemonService(fetcher PokemonFetcher, c PokemonCache, cacheTTL time.Duration, logger *slog.Logger, recorder metrics.Recorder) *PokemonService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PokemonService{
		fetcher:  fetcher,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  recorder,
	}
}

// Lookup returns the upstream JSON document for name.
func (s *PokemonService) Lookup(ctx context.Context, name string) (json.RawMessage, error) {
	if name == "" {
		s.metrics.IncLookup(metrics.OutcomeFailure)
		return nil, ErrPokemonNotFound
	}

	if doc, ok := s.fromCache(ctx, name); ok {
		s.metrics.IncLookup(metrics.OutcomeSuccess)
		return doc, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		// Waiters share this fetch, so one caller going away must not cancel it.
		// The upstream client's own timeout still bounds it.
		fetchCtx := context.WithoutCancel(ctx)

		start := time.Now()
		doc, err := s.fetcher.GetPokemon(fetchCtx, name)
		s.metrics.ObserveUpstreamDuration(time.Since(start))
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.SetPokemon(fetchCtx, name, doc, s.cacheTTL); err != nil {
				s.logger.Warn("pokemon cache write failed", "name", name, "error", err)
			}
		}
		return doc, nil
	})
	if err != nil {
		s.metrics.IncLookup(metrics.OutcomeFailure)
		s.logger.Debug("pokemon lookup failed", "name", name, "error", err)
		return nil, ErrPokemonNotFound
	}

	s.metrics.IncLookup(metrics.OutcomeSuccess)
	return v.(json.RawMessage), nil
}

func (s *PokemonService) fromCache(ctx context.Context, name string) (json.RawMessage, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.GetPokemon(ctx, name)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("pokemon cache read failed", "name", name, "error", err)
		}
		s.metrics.IncLookupCacheMiss()
		return nil, false
	}

	s.metrics.IncLookupCacheHit()
	return json.RawMessage(data), true
}
