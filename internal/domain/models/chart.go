package models

// ZodiacPosition is a derived view of an ecliptic longitude: sign plus
// degree within the sign. It is computed on demand and never stored on its
// own, so it cannot drift from the longitude it was derived from.
type ZodiacPosition struct {
	SignIndex    int     `json:"sign_index"`
	SignName     string  `json:"sign_name"`
	DegreeInSign float64 `json:"degree_in_sign"`
	Minutes      int     `json:"minutes"`
	Label        string  `json:"label"`
}

// HouseCusp marks the start longitude of one astrological house.
type HouseCusp struct {
	HouseNumber   int     `json:"house_number"`
	CuspLongitude float64 `json:"cusp_longitude"`
}

// PlanetPlacement is one planet (or point) in a normalized chart. The house
// number is always recomputed from the chart's cusp array, never taken from
// the backend payload.
type PlanetPlacement struct {
	ID          string         `json:"id"`
	Longitude   float64        `json:"longitude"`
	Retrograde  bool           `json:"retrograde"`
	Speed       float64        `json:"speed,omitempty"`
	Position    ZodiacPosition `json:"position"`
	HouseNumber int            `json:"house_number"`
}

// AspectType identifies the angular relationship between two points.
type AspectType string

const (
	AspectConjunction AspectType = "conjunction"
	AspectOpposition  AspectType = "opposition"
	AspectTrine       AspectType = "trine"
	AspectSquare      AspectType = "square"
	AspectSextile     AspectType = "sextile"
	AspectOther       AspectType = "other"
)

// AspectRecord describes one aspect between two chart points. Orb is the
// absolute deviation from the exact aspect angle, always >= 0.
type AspectRecord struct {
	PointA string     `json:"point_a"`
	PointB string     `json:"point_b"`
	Type   AspectType `json:"aspect_type"`
	Orb    float64    `json:"orb"`
	Exact  bool       `json:"exact"`
}

// AspectStyle is the display classification of an aspect type.
type AspectStyle struct {
	ColorTier string `json:"color_tier"`
	Symbol    string `json:"symbol"`
}

// ClassifiedAspect pairs an aspect with its display style.
type ClassifiedAspect struct {
	AspectRecord
	Style AspectStyle `json:"style"`
}

// ChartModel is the canonical, UI-ready chart. Immutable once produced:
// recomputation always builds a new model instead of mutating in place.
type ChartModel struct {
	Placements []PlanetPlacement  `json:"placements"`
	Cusps      []HouseCusp        `json:"cusps"`
	Angles     map[string]float64 `json:"angles"`
	Aspects    []AspectRecord     `json:"aspects"`
	Latitude   float64            `json:"latitude"`
	Longitude  float64            `json:"longitude"`
	Timezone   string             `json:"timezone"`
	JulianDay  float64            `json:"julian_day"`
}
