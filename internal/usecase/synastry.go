package usecase

import (
	"context"
	"fmt"
	"time"

	"AstroCore/internal/astro"
	"AstroCore/internal/domain/models"
	drepo "AstroCore/internal/domain/repository"
	"AstroCore/pkg/logger"
)

// SynastryUseCase compares two charts: it fetches both, derives the
// inter-chart aspects and house overlays, and scores the pairing.
type SynastryUseCase struct {
	charts         *ChartUseCase
	metrics        drepo.Metrics
	log            *logger.Logger
	defaultWeights models.CategoryWeights
	aspectOrbs     map[models.AspectType]float64
}

func NewSynastryUseCase(charts *ChartUseCase, metrics drepo.Metrics, log *logger.Logger, defaultWeights models.CategoryWeights, aspectOrbs map[models.AspectType]float64) *SynastryUseCase {
	if len(aspectOrbs) == 0 {
		aspectOrbs = astro.DefaultAspectOrbs
	}
	return &SynastryUseCase{
		charts:         charts,
		metrics:        metrics,
		log:            log,
		defaultWeights: defaultWeights,
		aspectOrbs:     aspectOrbs,
	}
}

// Compare runs the full synastry flow for two birth moments. The two chart
// fetches run concurrently. Request weights override the configured table.
func (uc *SynastryUseCase) Compare(ctx context.Context, req models.SynastryRequest) (*models.SynastryResult, error) {
	start := time.Now()
	defer func() {
		uc.metrics.RecordLatency("synastry_compare", time.Since(start).Seconds())
	}()

	var chartA, chartB *models.ChartModel
	var errA, errB error

	done := make(chan struct{})
	go func() {
		defer close(done)
		chartB, errB = uc.charts.GetChart(ctx, req.PersonB)
	}()
	chartA, errA = uc.charts.GetChart(ctx, req.PersonA)
	<-done

	if errA != nil {
		return nil, fmt.Errorf("chart A: %w", errA)
	}
	if errB != nil {
		return nil, fmt.Errorf("chart B: %w", errB)
	}

	interaspects := astro.ComputeInteraspects(chartA, chartB, uc.aspectOrbs)
	overlays := append(
		astro.ComputeOverlays(chartA, chartB, "a"),
		astro.ComputeOverlays(chartB, chartA, "b")...,
	)

	breakdown, err := uc.Score(interaspects, overlays, req.Weights)
	if err != nil {
		return nil, err
	}

	return &models.SynastryResult{
		ChartA:       chartA,
		ChartB:       chartB,
		Interaspects: interaspects,
		Overlays:     overlays,
		Breakdown:    breakdown,
	}, nil
}

// Score runs the compatibility scorer on already-derived inter-chart data.
// Nil weights fall back to the configured table.
func (uc *SynastryUseCase) Score(interaspects []models.AspectRecord, overlays []models.HouseOverlay, weights models.CategoryWeights) (*models.CompatibilityBreakdown, error) {
	if weights == nil {
		weights = uc.defaultWeights
	}

	breakdown, err := astro.Score(interaspects, overlays, weights)
	if err != nil {
		uc.metrics.RecordError("score")
		return nil, err
	}

	uc.metrics.RecordSynastryScored()
	return breakdown, nil
}
