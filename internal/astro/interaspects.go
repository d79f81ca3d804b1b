package astro

import (
	"math"

	"AstroCore/internal/domain/models"
)

// exactThreshold marks a computed aspect as exact when its orb is tighter
// than this many degrees.
const exactThreshold = 1.0

var majorAspects = []struct {
	Type  models.AspectType
	Angle float64
}{
	{models.AspectConjunction, 0},
	{models.AspectOpposition, 180},
	{models.AspectTrine, 120},
	{models.AspectSquare, 90},
	{models.AspectSextile, 60},
}

// DefaultAspectOrbs are the allowed deviations per aspect type when
// deriving inter-chart aspects.
var DefaultAspectOrbs = map[models.AspectType]float64{
	models.AspectConjunction: 8,
	models.AspectOpposition:  8,
	models.AspectTrine:       8,
	models.AspectSquare:      7,
	models.AspectSextile:     6,
}

// ComputeInteraspects derives the major aspects between every placement
// pair of two charts from their longitudes. Each pair yields at most one
// record: the matching aspect with the tightest orb. Both charts carry
// canonical placement order, so the result order is deterministic.
func ComputeInteraspects(a, b *models.ChartModel, orbs map[models.AspectType]float64) []models.AspectRecord {
	if orbs == nil {
		orbs = DefaultAspectOrbs
	}

	out := make([]models.AspectRecord, 0)
	for _, pa := range a.Placements {
		for _, pb := range b.Placements {
			dist, err := AngularDistance(pa.Longitude, pb.Longitude)
			if err != nil {
				continue
			}

			best := models.AspectRecord{Orb: math.MaxFloat64}
			found := false
			for _, m := range majorAspects {
				allowed, ok := orbs[m.Type]
				if !ok {
					continue
				}
				dev := math.Abs(dist - m.Angle)
				if dev <= allowed && dev < best.Orb {
					best = models.AspectRecord{
						PointA: pa.ID,
						PointB: pb.ID,
						Type:   m.Type,
						Orb:    dev,
						Exact:  dev < exactThreshold,
					}
					found = true
				}
			}
			if found {
				out = append(out, best)
			}
		}
	}
	return out
}

// ComputeOverlays places the first chart's planets into the second chart's
// house system. The owner label tags whose planets are being overlaid.
func ComputeOverlays(a, b *models.ChartModel, owner string) []models.HouseOverlay {
	out := make([]models.HouseOverlay, 0, len(a.Placements))
	for _, p := range a.Placements {
		house, err := AssignHouse(p.Longitude, b.Cusps)
		if err != nil {
			continue
		}
		out = append(out, models.HouseOverlay{
			PlanetID:  p.ID,
			Owner:     owner,
			House:     house,
			Longitude: p.Longitude,
		})
	}
	return out
}
