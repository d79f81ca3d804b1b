package astro

import (
	"fmt"
	"math"
	"sort"

	"AstroCore/internal/domain/models"
)

// Score aggregates weighted per-category compatibility scores from a set of
// inter-chart aspects and house overlays. The weighting table is caller
// configuration, not scorer arithmetic. Identical input always yields an
// identical breakdown: interaspects are re-sorted by a stable key before
// summation so floating addition order cannot vary.
//
// Absent data for a category simply scores 0; the only failure is
// ErrInvalidWeights for NaN or negative-infinite weights.
func Score(interaspects []models.AspectRecord, overlays []models.HouseOverlay, weights models.CategoryWeights) (*models.CompatibilityBreakdown, error) {
	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	sorted := make([]models.AspectRecord, len(interaspects))
	copy(sorted, interaspects)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.PointA != b.PointA {
			return a.PointA < b.PointA
		}
		if a.PointB != b.PointB {
			return a.PointB < b.PointB
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Orb < b.Orb
	})

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make(map[string]float64, len(weights))
	var bonusApplied float64

	for _, name := range names {
		cw := weights[name]

		var score float64
		for _, a := range sorted {
			if !pairRelevant(cw.Pairs, a.PointA, a.PointB) {
				continue
			}
			score += cw.AspectWeights[a.Type]
		}
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}

		// Overlay bonuses are additive but a single overlay can never
		// push the category past 100.
		for _, o := range overlays {
			if !overlayRelevant(cw.OverlayHouses, o.House) {
				continue
			}
			applied := cw.OverlayBonus
			if applied > 100-score {
				applied = 100 - score
			}
			if applied <= 0 {
				continue
			}
			score += applied
			bonusApplied += applied
		}

		categories[name] = score
	}

	overall := 0
	if len(categories) > 0 {
		var sum float64
		for _, s := range categories {
			sum += s
		}
		overall = int(math.Round(sum / float64(len(categories))))
		if overall < 0 {
			overall = 0
		}
		if overall > 100 {
			overall = 100
		}
	}

	counts := make(map[models.AspectType]int)
	for _, a := range interaspects {
		counts[a.Type]++
	}

	return &models.CompatibilityBreakdown{
		OverallScore: overall,
		Categories:   categories,
		Meta: models.BreakdownMeta{
			Weights:             weights,
			AspectCounts:        counts,
			OverlayBonusApplied: bonusApplied,
		},
	}, nil
}

func validateWeights(weights models.CategoryWeights) error {
	for name, cw := range weights {
		for t, w := range cw.AspectWeights {
			if math.IsNaN(w) || math.IsInf(w, -1) {
				return fmt.Errorf("%w: category %q aspect %q weight %v", ErrInvalidWeights, name, t, w)
			}
		}
		if math.IsNaN(cw.OverlayBonus) || math.IsInf(cw.OverlayBonus, -1) {
			return fmt.Errorf("%w: category %q overlay bonus %v", ErrInvalidWeights, name, cw.OverlayBonus)
		}
	}
	return nil
}

func pairRelevant(pairs []models.PlanetPair, a, b string) bool {
	for _, p := range pairs {
		if p.Matches(a, b) {
			return true
		}
	}
	return false
}

func overlayRelevant(houses []int, house int) bool {
	for _, h := range houses {
		if h == house {
			return true
		}
	}
	return false
}
