package astro

import (
	"AstroCore/internal/domain/models"
)

// DefaultMaxOrb is the display orb threshold for natal charts.
const DefaultMaxOrb = 8.0

var aspectStyles = map[models.AspectType]models.AspectStyle{
	models.AspectConjunction: {ColorTier: "neutral", Symbol: "☌"},
	models.AspectOpposition:  {ColorTier: "challenging", Symbol: "☍"},
	models.AspectTrine:       {ColorTier: "harmonious", Symbol: "△"},
	models.AspectSquare:      {ColorTier: "challenging", Symbol: "□"},
	models.AspectSextile:     {ColorTier: "harmonious", Symbol: "⚹"},
}

var defaultAspectStyle = models.AspectStyle{ColorTier: "default", Symbol: "•"}

// FilterByOrb keeps aspects with orb <= maxOrb. Input order is preserved;
// sorting for display is the caller's own, explicit step.
func FilterByOrb(aspects []models.AspectRecord, maxOrb float64) []models.AspectRecord {
	out := make([]models.AspectRecord, 0, len(aspects))
	for _, a := range aspects {
		if a.Orb <= maxOrb {
			out = append(out, a)
		}
	}
	return out
}

// Classify maps an aspect type to its display tier and symbol. Unknown
// types get a neutral default rather than an error.
func Classify(t models.AspectType) models.AspectStyle {
	if style, ok := aspectStyles[t]; ok {
		return style
	}
	return defaultAspectStyle
}

// ClassifyAll decorates each aspect with its style, preserving order.
func ClassifyAll(aspects []models.AspectRecord) []models.ClassifiedAspect {
	out := make([]models.ClassifiedAspect, 0, len(aspects))
	for _, a := range aspects {
		out = append(out, models.ClassifiedAspect{AspectRecord: a, Style: Classify(a.Type)})
	}
	return out
}

// ParseAspectType maps a backend type string to the enum; anything
// unrecognized becomes AspectOther.
func ParseAspectType(s string) models.AspectType {
	switch models.AspectType(s) {
	case models.AspectConjunction, models.AspectOpposition, models.AspectTrine,
		models.AspectSquare, models.AspectSextile:
		return models.AspectType(s)
	default:
		return models.AspectOther
	}
}
