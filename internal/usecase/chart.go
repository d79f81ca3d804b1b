package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"AstroCore/internal/astro"
	"AstroCore/internal/domain/models"
	drepo "AstroCore/internal/domain/repository"
	"AstroCore/pkg/cache"
	"AstroCore/pkg/logger"
)

// ChartUseCase fetches raw charts from the ephemeris backend, normalizes
// them and caches the normalized result.
type ChartUseCase struct {
	source   drepo.EphemerisSource
	cache    cache.Service
	metrics  drepo.Metrics
	log      *logger.Logger
	cacheTTL time.Duration
}

func NewChartUseCase(source drepo.EphemerisSource, c cache.Service, metrics drepo.Metrics, log *logger.Logger, cacheTTL time.Duration) *ChartUseCase {
	return &ChartUseCase{
		source:   source,
		cache:    c,
		metrics:  metrics,
		log:      log,
		cacheTTL: cacheTTL,
	}
}

// GetChart returns the normalized chart for the given birth data, serving
// from cache when possible.
func (uc *ChartUseCase) GetChart(ctx context.Context, birth models.BirthData) (*models.ChartModel, error) {
	start := time.Now()
	defer func() {
		uc.metrics.RecordLatency("get_chart", time.Since(start).Seconds())
	}()

	key := cache.GenerateKey("chart", cache.HashKey(birth.CanonicalKey()))

	if uc.cache != nil {
		var cached models.ChartModel
		if err := uc.cache.Get(ctx, key, &cached); err == nil {
			uc.metrics.RecordCacheLookup("hit")
			uc.metrics.RecordChartNormalized("cache")
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			uc.log.Warn("chart cache read failed", logger.Error(err))
		}
		uc.metrics.RecordCacheLookup("miss")
	}

	raw, err := uc.source.FetchChart(ctx, birth)
	if err != nil {
		uc.metrics.RecordError("ephemeris_fetch")
		return nil, fmt.Errorf("fetch chart: %w", err)
	}

	chart, err := uc.NormalizePayload(raw)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, chart, uc.cacheTTL); err != nil {
			uc.log.Warn("chart cache write failed", logger.Error(err))
		}
	}

	uc.metrics.RecordChartNormalized("ephemeris")
	return chart, nil
}

// NormalizePayload decodes and normalizes a raw backend payload without
// touching the cache. Serves clients that bring their own payload.
func (uc *ChartUseCase) NormalizePayload(raw []byte) (*models.ChartModel, error) {
	payload, err := astro.DecodePayload(raw)
	if err != nil {
		uc.metrics.RecordError("malformed_payload")
		return nil, err
	}

	chart, err := astro.NormalizeChart(payload)
	if err != nil {
		uc.metrics.RecordError("normalize")
		return nil, err
	}
	return chart, nil
}

// FilterAspects keeps aspects within maxOrb and attaches display styling.
func (uc *ChartUseCase) FilterAspects(aspects []models.AspectRecord, maxOrb float64) []models.ClassifiedAspect {
	if maxOrb == 0 {
		maxOrb = astro.DefaultMaxOrb
	}
	return astro.ClassifyAll(astro.FilterByOrb(aspects, maxOrb))
}
