package models

import "fmt"

// Requests for chart HTTP endpoints. Defined in domain for consistency and reuse.

// BirthData identifies the moment and place a chart is cast for.
type BirthData struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string  `json:"time" validate:"required,datetime=15:04"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Timezone    string  `json:"timezone" default:"UTC"`
	HouseSystem string  `json:"house_system" default:"placidus" validate:"oneof=placidus whole_sign equal koch"`
}

// CanonicalKey returns a stable string identifying this birth moment, used
// for cache keys.
func (b BirthData) CanonicalKey() string {
	return fmt.Sprintf("%s|%s|%.4f|%.4f|%s|%s",
		b.Date, b.Time, b.Latitude, b.Longitude, b.Timezone, b.HouseSystem)
}

type ChartRequest struct {
	Birth BirthData `json:"birth" validate:"required"`
}

type AspectFilterRequest struct {
	Aspects []AspectRecord `json:"aspects" validate:"required"`
	MaxOrb  float64        `json:"max_orb" default:"8" validate:"gte=0"`
}

type SynastryRequest struct {
	PersonA BirthData       `json:"person_a" validate:"required"`
	PersonB BirthData       `json:"person_b" validate:"required"`
	Weights CategoryWeights `json:"weights,omitempty"`
}

type SynastryScoreRequest struct {
	Interaspects []AspectRecord  `json:"interaspects" validate:"required"`
	Overlays     []HouseOverlay  `json:"overlays"`
	Weights      CategoryWeights `json:"weights,omitempty"`
}

// SynastryResult is the full synastry response: the two normalized charts,
// the derived inter-chart data and the scored breakdown.
type SynastryResult struct {
	ChartA       *ChartModel             `json:"chart_a"`
	ChartB       *ChartModel             `json:"chart_b"`
	Interaspects []AspectRecord          `json:"interaspects"`
	Overlays     []HouseOverlay          `json:"overlays"`
	Breakdown    *CompatibilityBreakdown `json:"breakdown"`
}
