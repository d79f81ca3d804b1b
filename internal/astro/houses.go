package astro

import (
	"fmt"

	"AstroCore/internal/domain/models"
)

// AssignHouse places a longitude into one of twelve houses by circular
// interval containment. House i covers [cusp[i], cusp[i+1]); a house whose
// end cusp sits at or before its start cusp straddles the 0°/360° seam and
// covers [start, 360) plus [0, end). The first matching house wins.
//
// When no interval matches (malformed or duplicate cusps) the fallback is
// house 1. Callers that need strict validation should pre-check cusp
// monotonicity themselves.
func AssignHouse(longitude float64, cusps []models.HouseCusp) (int, error) {
	if len(cusps) != 12 {
		return 0, fmt.Errorf("%w: want 12 cusps, got %d", ErrInvalidCusps, len(cusps))
	}

	lon, err := NormalizeAngle(longitude)
	if err != nil {
		return 0, err
	}

	for i := range cusps {
		start, err := NormalizeAngle(cusps[i].CuspLongitude)
		if err != nil {
			return 0, err
		}
		end, err := NormalizeAngle(cusps[(i+1)%12].CuspLongitude)
		if err != nil {
			return 0, err
		}

		if start < end {
			if lon >= start && lon < end {
				return cusps[i].HouseNumber, nil
			}
		} else {
			// seam wrap
			if lon >= start || lon < end {
				return cusps[i].HouseNumber, nil
			}
		}
	}

	return 1, nil
}
