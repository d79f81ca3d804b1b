package astro

import (
	"errors"
	"testing"

	"AstroCore/internal/domain/models"
)

func equalHouseCusps(start float64) []models.HouseCusp {
	cusps := make([]models.HouseCusp, 12)
	for i := range cusps {
		cusps[i] = models.HouseCusp{HouseNumber: i + 1, CuspLongitude: start + float64(i)*30}
	}
	return cusps
}

func TestAssignHouseEqualCusps(t *testing.T) {
	cusps := equalHouseCusps(0)

	cases := []struct {
		lon  float64
		want int
	}{
		{0, 1},
		{15, 1},
		{30, 2},
		{359, 12},
		{330, 12},
		{329.999, 11},
	}
	for _, c := range cases {
		got, err := AssignHouse(c.lon, cusps)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", c.lon, err)
		}
		if got != c.want {
			t.Fatalf("assignHouse(%v) = %d, want %d", c.lon, got, c.want)
		}
	}
}

func TestAssignHouseTotal(t *testing.T) {
	// Every point on the circle lands in exactly one house.
	cusps := equalHouseCusps(17.5)
	for lon := 0.0; lon < 360; lon += 0.25 {
		got, err := AssignHouse(lon, cusps)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", lon, err)
		}
		if got < 1 || got > 12 {
			t.Fatalf("assignHouse(%v) = %d, out of range", lon, got)
		}
	}
}

func TestAssignHouseSeamWrap(t *testing.T) {
	// House 12 runs from 340 across 0 to 10.
	cusps := equalHouseCusps(0)
	cusps[0].CuspLongitude = 10
	cusps[11].CuspLongitude = 340

	for _, lon := range []float64{345, 359.9, 0, 5} {
		got, err := AssignHouse(lon, cusps)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 12 {
			t.Fatalf("assignHouse(%v) = %d, want 12", lon, got)
		}
	}
}

func TestAssignHouseDegenerateCusps(t *testing.T) {
	// Duplicate cusps never error; some house always claims the point.
	cusps := make([]models.HouseCusp, 12)
	for i := range cusps {
		cusps[i] = models.HouseCusp{HouseNumber: i + 1, CuspLongitude: 100}
	}
	cusps[0].CuspLongitude = 50
	cusps[1].CuspLongitude = 60

	got, err := AssignHouse(75, cusps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got < 1 || got > 12 {
		t.Fatalf("assignHouse = %d, out of range", got)
	}
}

func TestAssignHouseWrongCount(t *testing.T) {
	_, err := AssignHouse(15, equalHouseCusps(0)[:10])
	if !errors.Is(err, ErrInvalidCusps) {
		t.Fatalf("expected ErrInvalidCusps, got %v", err)
	}
}
