package astro

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestDecodePayloadNotObject(t *testing.T) {
	for _, body := range []string{`[]`, `42`, `"chart"`, `not json`} {
		if _, err := DecodePayload([]byte(body)); !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected ErrMalformedPayload for %q, got %v", body, err)
		}
	}
}

func TestDecodePayloadAspectsNotArray(t *testing.T) {
	_, err := DecodePayload([]byte(`{"aspects": {"bad": true}}`))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestDecodePayloadPartial(t *testing.T) {
	// Partially populated payloads decode; defaults apply at normalize time.
	p, err := DecodePayload([]byte(`{"planets": {"sun": {"position": 10}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Planets) != 1 {
		t.Fatalf("expected 1 planet, got %d", len(p.Planets))
	}
	if p.Timezone != "" {
		t.Fatalf("timezone should be empty before normalization")
	}
}

func TestDecodePayloadPlanetOrder(t *testing.T) {
	p, err := DecodePayload([]byte(`{"planets": {"chiron": {"position": 1}, "sun": {"position": 2}, "lilith": {"position": 3}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"chiron", "sun", "lilith"}
	if !reflect.DeepEqual(p.PlanetOrder, want) {
		t.Fatalf("planet order = %v, want %v", p.PlanetOrder, want)
	}
}

func TestNormalizeChartNil(t *testing.T) {
	if _, err := NormalizeChart(nil); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestNormalizeChartCanonicalOrder(t *testing.T) {
	p, err := DecodePayload([]byte(`{
		"planets": {
			"chiron": {"position": 5},
			"pluto": {"position": 100},
			"moon": {"position": 200},
			"sun": {"position": 300},
			"vertex": {"position": 50}
		}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	chart, err := NormalizeChart(p)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	got := make([]string, 0, len(chart.Placements))
	for _, pl := range chart.Placements {
		got = append(got, pl.ID)
	}
	want := []string{"sun", "moon", "pluto", "chiron", "vertex"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("placement order = %v, want %v", got, want)
	}
}

func TestNormalizeChartDefaults(t *testing.T) {
	chart, err := NormalizeChart(&RawChartPayload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chart.Timezone != "Unknown" {
		t.Fatalf("timezone = %q, want Unknown", chart.Timezone)
	}
	if chart.Latitude != 0 || chart.Longitude != 0 || chart.JulianDay != 0 {
		t.Fatalf("numeric defaults should be 0")
	}
	if len(chart.Cusps) != 12 {
		t.Fatalf("cusps = %d entries, want 12", len(chart.Cusps))
	}
	if len(chart.Angles) != 0 {
		t.Fatalf("angles should default to empty map")
	}
	for i, c := range chart.Cusps {
		if c.HouseNumber != i+1 {
			t.Fatalf("cusp %d has house number %d", i, c.HouseNumber)
		}
	}
}

func TestNormalizeChartResequencesSparseHouses(t *testing.T) {
	p := &RawChartPayload{
		Houses: map[string]RawHouse{
			"house_10": {House: 10, Cusp: 270},
			"house_2":  {House: 2, Cusp: 30},
			"house_7":  {Cusp: 180}, // number from key suffix
		},
	}
	chart, err := NormalizeChart(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chart.Cusps) != 12 {
		t.Fatalf("cusps = %d entries, want 12", len(chart.Cusps))
	}
	if chart.Cusps[1].CuspLongitude != 30 {
		t.Fatalf("house 2 cusp = %v, want 30", chart.Cusps[1].CuspLongitude)
	}
	if chart.Cusps[6].CuspLongitude != 180 {
		t.Fatalf("house 7 cusp = %v, want 180", chart.Cusps[6].CuspLongitude)
	}
	if chart.Cusps[9].CuspLongitude != 270 {
		t.Fatalf("house 10 cusp = %v, want 270", chart.Cusps[9].CuspLongitude)
	}
}

func TestNormalizeChartRecomputesHouses(t *testing.T) {
	// The raw house field says 9; the cusp array says otherwise. The cusp
	// array wins.
	p, err := DecodePayload([]byte(`{
		"planets": {"sun": {"position": 280.81, "house": 9}},
		"houses": {"house_1": {"house": 1, "cusp": 0}},
		"aspects": []
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	chart, err := NormalizeChart(p)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if len(chart.Placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(chart.Placements))
	}
	sun := chart.Placements[0]
	if sun.Position.SignIndex != 9 || sun.Position.SignName != "Capricorn" {
		t.Fatalf("sun sign = %d (%s), want Capricorn", sun.Position.SignIndex, sun.Position.SignName)
	}
	if math.Abs(sun.Position.DegreeInSign-10.81) > 1e-9 {
		t.Fatalf("degree in sign = %v, want 10.81", sun.Position.DegreeInSign)
	}
	if sun.HouseNumber == 9 {
		t.Fatalf("house number taken from raw payload instead of recomputed")
	}
	if sun.HouseNumber != 1 {
		t.Fatalf("house number = %d, want 1 from degenerate cusp array", sun.HouseNumber)
	}
}

func TestNormalizeChartDeterministic(t *testing.T) {
	body := []byte(`{
		"planets": {
			"sun": {"position": 280.81},
			"moon": {"position": 95.5, "retrograde": false},
			"mars": {"position": 10.2, "retrograde": true, "speed": -0.3},
			"chiron": {"position": 33.3}
		},
		"houses": {
			"house_1": {"house": 1, "cusp": 15},
			"house_4": {"house": 4, "cusp": 105},
			"house_7": {"house": 7, "cusp": 195},
			"house_10": {"house": 10, "cusp": 285}
		},
		"aspects": [{"point_a": "sun", "point_b": "moon", "type": "trine", "orb": 2.1}],
		"angles": {"ascendant": 15, "midheaven": 285},
		"timezone": "America/Chicago"
	}`)

	first, err := DecodePayload(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	a, err := NormalizeChart(first)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	second, _ := DecodePayload(body)
	b, err := NormalizeChart(second)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("normalization is not deterministic")
	}
}

func TestNormalizeChartAspectTypes(t *testing.T) {
	p := &RawChartPayload{
		Aspects: []RawAspect{
			{PointA: "sun", PointB: "moon", Type: "trine", Orb: -2.5},
			{PointA: "mars", PointB: "venus", Type: "quincunx", Orb: 1.0},
		},
	}
	chart, err := NormalizeChart(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chart.Aspects[0].Orb != 2.5 {
		t.Fatalf("orb should be absolute, got %v", chart.Aspects[0].Orb)
	}
	if chart.Aspects[1].Type != "other" {
		t.Fatalf("unknown aspect type should map to other, got %q", chart.Aspects[1].Type)
	}
}
