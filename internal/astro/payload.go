package astro

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawChartPayload mirrors one chart response from the calculation backend.
// Every field except the top-level object shape itself is optional; missing
// fields are defaulted during normalization, never rejected.
type RawChartPayload struct {
	Planets   map[string]RawPlanet `json:"planets"`
	Houses    map[string]RawHouse  `json:"houses"`
	Aspects   []RawAspect          `json:"aspects"`
	Angles    map[string]float64   `json:"angles"`
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Timezone  string               `json:"timezone"`
	JulianDay float64              `json:"julian_day"`

	// PlanetOrder is the key encounter order of the planets object on the
	// wire. Kept so extras beyond the canonical planets sort stably.
	PlanetOrder []string `json:"-"`
}

// RawPlanet is one entry of the backend's planets map. The house field can
// be stale relative to the cusp array and is never trusted; normalization
// recomputes it.
type RawPlanet struct {
	Position   float64 `json:"position"`
	House      int     `json:"house"`
	Retrograde bool    `json:"retrograde"`
	Speed      float64 `json:"speed"`
}

// RawHouse is one entry of the backend's sparse houses map ("house_1"...).
type RawHouse struct {
	House int     `json:"house"`
	Cusp  float64 `json:"cusp"`
}

// RawAspect is one backend aspect record.
type RawAspect struct {
	PointA string  `json:"point_a"`
	PointB string  `json:"point_b"`
	Type   string  `json:"type"`
	Orb    float64 `json:"orb"`
	Exact  bool    `json:"exact"`
}

// DecodePayload decodes a backend chart response. It fails with
// ErrMalformedPayload only when the top level is not a JSON object or when
// aspects is present but not an array; partial payloads decode fine and are
// defaulted later by NormalizeChart.
func DecodePayload(data []byte) (*RawChartPayload, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: payload is not an object", ErrMalformedPayload)
	}

	if raw, ok := top["aspects"]; ok && !jsonIsNull(raw) && !jsonIsArray(raw) {
		return nil, fmt.Errorf("%w: aspects is not an array", ErrMalformedPayload)
	}

	var p RawChartPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if raw, ok := top["planets"]; ok {
		p.PlanetOrder = objectKeyOrder(raw)
	}

	return &p, nil
}

func jsonIsNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func jsonIsArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// objectKeyOrder returns the member keys of a JSON object in wire order.
func objectKeyOrder(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	t, err := dec.Token()
	if err != nil {
		return nil
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := kt.(string)
		if !ok {
			return nil
		}
		keys = append(keys, key)
		if err := skipJSONValue(dec); err != nil {
			return nil
		}
	}
	return keys
}

func skipJSONValue(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := t.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
