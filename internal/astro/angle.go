package astro

import (
	"fmt"
	"math"

	"AstroCore/internal/domain/models"
	"AstroCore/pkg/util"
)

// SignNames are the twelve zodiac signs in fixed order, starting at 0° Aries.
var SignNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NormalizeAngle reduces any finite degree value to [0, 360). Negative and
// large-magnitude inputs are exact: -30 -> 330, 360 -> 0.
func NormalizeAngle(deg float64) (float64, error) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0, fmt.Errorf("%w: non-finite degrees %v", ErrInvalidInput, deg)
	}
	n := math.Mod(deg, 360)
	if n < 0 {
		n += 360
	}
	// Mod can return 360-epsilon artifacts that round up; also -0.
	if n >= 360 {
		n -= 360
	}
	if n == 0 {
		n = 0 // normalize -0
	}
	return n, nil
}

// ToZodiacPosition decomposes an ecliptic longitude into sign index, degree
// within the sign, and arc minutes. A longitude exactly on a sign boundary
// belongs to the next sign: 30.0 is 0° Taurus, not 30° Aries.
func ToZodiacPosition(deg float64) (models.ZodiacPosition, error) {
	n, err := NormalizeAngle(deg)
	if err != nil {
		return models.ZodiacPosition{}, err
	}

	idx := int(math.Floor(n / 30))
	if idx > 11 {
		idx = 11
	}
	inSign := math.Mod(n, 30)
	minutes := int(math.Floor(math.Mod(inSign, 1) * 60))
	if minutes > 59 {
		minutes = 59
	}

	return models.ZodiacPosition{
		SignIndex:    idx,
		SignName:     SignNames[idx],
		DegreeInSign: inSign,
		Minutes:      minutes,
		Label:        util.FormatZodiac(SignNames[idx], inSign, minutes),
	}, nil
}

// AngularDistance returns the shortest circular distance between two
// longitudes, in [0, 180]. Symmetric in its arguments.
func AngularDistance(a, b float64) (float64, error) {
	na, err := NormalizeAngle(a)
	if err != nil {
		return 0, err
	}
	nb, err := NormalizeAngle(b)
	if err != nil {
		return 0, err
	}

	d := math.Abs(na - nb)
	if d > 180 {
		d = 360 - d
	}
	return d, nil
}
