package models

// HouseOverlay records one person's planet falling into the other person's
// house system.
type HouseOverlay struct {
	PlanetID  string  `json:"planet_id"`
	Owner     string  `json:"owner,omitempty"`
	House     int     `json:"house"`
	Longitude float64 `json:"longitude"`
}

// PlanetPair is an unordered pair of chart points relevant to a category.
type PlanetPair struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// Matches reports whether the pair covers the two given point IDs in either
// direction.
func (p PlanetPair) Matches(a, b string) bool {
	return (p.A == a && p.B == b) || (p.A == b && p.B == a)
}

// CategoryWeight configures how one life-area category is scored.
type CategoryWeight struct {
	Pairs         []PlanetPair           `json:"pairs" yaml:"pairs"`
	AspectWeights map[AspectType]float64 `json:"aspect_weights" yaml:"aspect_weights"`
	OverlayHouses []int                  `json:"overlay_houses" yaml:"overlay_houses"`
	OverlayBonus  float64                `json:"overlay_bonus" yaml:"overlay_bonus"`
}

// CategoryWeights is the full scoring configuration, keyed by category name.
// It is caller-supplied input, not scorer-internal arithmetic.
type CategoryWeights map[string]CategoryWeight

// BreakdownMeta carries the inputs and intermediate tallies behind a
// breakdown, so the presentation layer can explain the score.
type BreakdownMeta struct {
	Weights             CategoryWeights    `json:"weights"`
	AspectCounts        map[AspectType]int `json:"aspect_counts"`
	OverlayBonusApplied float64            `json:"overlay_bonus_applied"`
}

// CompatibilityBreakdown is the result of one synastry scoring run. Created
// whole, never partially updated.
type CompatibilityBreakdown struct {
	OverallScore int                `json:"overall_score"`
	Categories   map[string]float64 `json:"categories"`
	Meta         BreakdownMeta      `json:"meta"`
}
