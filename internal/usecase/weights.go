package usecase

import (
	"AstroCore/internal/astro"
	"AstroCore/internal/domain/models"
	"AstroCore/pkg/config"
)

// WeightsFromConfig converts the YAML weight table into the scorer's typed
// form. Pairs with fewer than two elements are skipped.
func WeightsFromConfig(categories map[string]config.SynastryCategory) models.CategoryWeights {
	out := make(models.CategoryWeights, len(categories))
	for name, cat := range categories {
		cw := models.CategoryWeight{
			AspectWeights: make(map[models.AspectType]float64, len(cat.AspectWeights)),
			OverlayHouses: cat.OverlayHouses,
			OverlayBonus:  cat.OverlayBonus,
		}
		for _, pair := range cat.Pairs {
			if len(pair) < 2 {
				continue
			}
			cw.Pairs = append(cw.Pairs, models.PlanetPair{A: pair[0], B: pair[1]})
		}
		for aspect, weight := range cat.AspectWeights {
			cw.AspectWeights[astro.ParseAspectType(aspect)] = weight
		}
		out[name] = cw
	}
	return out
}

// OrbsFromConfig converts the per-aspect orb table into typed form,
// falling back to the built-in orbs when the table is empty.
func OrbsFromConfig(orbs map[string]float64) map[models.AspectType]float64 {
	if len(orbs) == 0 {
		return astro.DefaultAspectOrbs
	}
	out := make(map[models.AspectType]float64, len(orbs))
	for aspect, orb := range orbs {
		out[astro.ParseAspectType(aspect)] = orb
	}
	return out
}
