package astro

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"AstroCore/internal/domain/models"
)

// CanonicalPlanetOrder is the fixed presentation order for placements.
// Points beyond these ten keep their payload encounter order.
var CanonicalPlanetOrder = []string{
	"sun", "moon", "mercury", "venus", "mars",
	"jupiter", "saturn", "uranus", "neptune", "pluto",
}

const unknownTimezone = "Unknown"

// NormalizeChart turns a raw backend payload into the canonical chart
// model. Every planet key becomes exactly one placement, house numbers are
// recomputed from the resequenced cusp array, and missing optional fields
// degrade to defaults instead of failing. Output is deterministic for
// identical input.
func NormalizeChart(raw *RawChartPayload) (*models.ChartModel, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: payload is not an object", ErrMalformedPayload)
	}

	cusps := resequenceCusps(raw.Houses)

	placements := make([]models.PlanetPlacement, 0, len(raw.Planets))
	for _, key := range placementOrder(raw) {
		planet := raw.Planets[key]

		lon, err := NormalizeAngle(planet.Position)
		if err != nil {
			return nil, err
		}
		pos, err := ToZodiacPosition(lon)
		if err != nil {
			return nil, err
		}
		house, err := AssignHouse(lon, cusps)
		if err != nil {
			return nil, err
		}

		placements = append(placements, models.PlanetPlacement{
			ID:          key,
			Longitude:   lon,
			Retrograde:  planet.Retrograde,
			Speed:       planet.Speed,
			Position:    pos,
			HouseNumber: house,
		})
	}

	aspects := make([]models.AspectRecord, 0, len(raw.Aspects))
	for _, a := range raw.Aspects {
		aspects = append(aspects, models.AspectRecord{
			PointA: a.PointA,
			PointB: a.PointB,
			Type:   ParseAspectType(a.Type),
			Orb:    math.Abs(a.Orb),
			Exact:  a.Exact,
		})
	}

	angles := make(map[string]float64, len(raw.Angles))
	for name, deg := range raw.Angles {
		n, err := NormalizeAngle(deg)
		if err != nil {
			return nil, err
		}
		angles[name] = n
	}

	tz := raw.Timezone
	if tz == "" {
		tz = unknownTimezone
	}

	return &models.ChartModel{
		Placements: placements,
		Cusps:      cusps,
		Angles:     angles,
		Aspects:    aspects,
		Latitude:   raw.Latitude,
		Longitude:  raw.Longitude,
		Timezone:   tz,
		JulianDay:  raw.JulianDay,
	}, nil
}

// placementOrder yields the canonical planets present in the payload first,
// then the remaining keys in wire encounter order. Without wire order
// (payloads built in-process) extras sort alphabetically so the result
// stays deterministic.
func placementOrder(raw *RawChartPayload) []string {
	order := make([]string, 0, len(raw.Planets))
	seen := make(map[string]bool, len(raw.Planets))

	for _, key := range CanonicalPlanetOrder {
		if _, ok := raw.Planets[key]; ok {
			order = append(order, key)
			seen[key] = true
		}
	}

	if len(raw.PlanetOrder) > 0 {
		for _, key := range raw.PlanetOrder {
			if _, ok := raw.Planets[key]; ok && !seen[key] {
				order = append(order, key)
				seen[key] = true
			}
		}
		return order
	}

	extras := make([]string, 0)
	for key := range raw.Planets {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}

// resequenceCusps turns the backend's sparse keyed houses map into a dense,
// house-number-ordered array of exactly 12 cusps. Slots with no data keep
// cusp 0; an entry with no usable house number takes its 1-based slot in
// key order so house 0 can never appear.
func resequenceCusps(houses map[string]RawHouse) []models.HouseCusp {
	cusps := make([]models.HouseCusp, 12)
	for i := range cusps {
		cusps[i] = models.HouseCusp{HouseNumber: i + 1, CuspLongitude: 0}
	}

	keys := make([]string, 0, len(houses))
	for key := range houses {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		h := houses[key]

		n := h.House
		if n < 1 || n > 12 {
			n = houseNumberFromKey(key)
		}
		if n < 1 || n > 12 {
			n = i + 1
		}
		if n > 12 {
			continue
		}

		cusp, err := NormalizeAngle(h.Cusp)
		if err != nil {
			cusp = 0
		}
		cusps[n-1].CuspLongitude = cusp
	}

	return cusps
}

// houseNumberFromKey extracts N from keys shaped like "house_N".
func houseNumberFromKey(key string) int {
	idx := strings.LastIndex(key, "_")
	if idx < 0 || idx == len(key)-1 {
		return 0
	}
	n, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
