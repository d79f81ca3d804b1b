package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"AstroCore/internal/domain/models"
	"AstroCore/internal/usecase"
	xhttp "AstroCore/pkg/http"
	xlogger "AstroCore/pkg/logger"
)

type fakeSource struct {
	payload []byte
	healthy bool
}

func (f *fakeSource) FetchChart(_ context.Context, _ models.BirthData) ([]byte, error) {
	return f.payload, nil
}

func (f *fakeSource) Health(_ context.Context) error {
	if f.healthy {
		return nil
	}
	return context.DeadlineExceeded
}

type nullMetrics struct{}

func (nullMetrics) RecordChartNormalized(string)  {}
func (nullMetrics) RecordSynastryScored()         {}
func (nullMetrics) RecordError(string)            {}
func (nullMetrics) RecordCacheLookup(string)      {}
func (nullMetrics) RecordLatency(string, float64) {}

func newTestHandler(t *testing.T, src *fakeSource) *ChartsEchoHandler {
	t.Helper()
	log, err := xlogger.New(&xlogger.Config{Level: "error", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	charts := usecase.NewChartUseCase(src, nil, nullMetrics{}, log, time.Minute)
	synastry := usecase.NewSynastryUseCase(charts, nullMetrics{}, log, models.CategoryWeights{
		"romance": {
			Pairs:         []models.PlanetPair{{A: "sun", B: "moon"}},
			AspectWeights: map[models.AspectType]float64{models.AspectTrine: 10},
		},
	}, nil)

	return NewChartsEchoHandler(log, charts, synastry, src)
}

func doRequest(h *ChartsEchoHandler, method, path, body string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) xhttp.APIResponse {
	t.Helper()
	var resp xhttp.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

const chartPayload = `{
	"planets": {"sun": {"position": 280.81, "house": 9}},
	"houses": {"house_1": {"house": 1, "cusp": 0}},
	"aspects": [],
	"timezone": "UTC"
}`

func TestGetChartEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeSource{payload: []byte(chartPayload), healthy: true})

	body := `{"birth": {"date": "1990-01-01", "time": "12:30", "latitude": 51.5, "longitude": -0.12}}`
	rec := doRequest(h, http.MethodPost, "/api/charts", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusOK {
		t.Fatalf("envelope status = %d", resp.Status)
	}

	chart, _ := json.Marshal(resp.Data)
	var model models.ChartModel
	if err := json.Unmarshal(chart, &model); err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if len(model.Placements) != 1 || model.Placements[0].Position.SignName != "Capricorn" {
		t.Fatalf("unexpected placements: %+v", model.Placements)
	}
	// House recomputed against the resequenced cusps, not the raw value 9.
	if model.Placements[0].HouseNumber != 1 {
		t.Fatalf("house = %d, want 1", model.Placements[0].HouseNumber)
	}
}

func TestGetChartValidation(t *testing.T) {
	h := newTestHandler(t, &fakeSource{payload: []byte(chartPayload)})

	rec := doRequest(h, http.MethodPost, "/api/charts", `{"birth": {"date": "not-a-date", "time": "12:30"}}`)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("bad date should fail validation, got status %d", resp.Status)
	}
}

func TestNormalizeEndpointMalformed(t *testing.T) {
	h := newTestHandler(t, &fakeSource{})

	rec := doRequest(h, http.MethodPost, "/api/charts/normalize", `[1, 2, 3]`)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusUnprocessableEntity {
		t.Fatalf("non-object payload should be unprocessable, got %d", resp.Status)
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeSource{})

	rec := doRequest(h, http.MethodPost, "/api/charts/normalize", chartPayload)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusOK {
		t.Fatalf("normalize failed: %s", rec.Body.String())
	}
}

func TestAspectsEndpointDefaultOrb(t *testing.T) {
	h := newTestHandler(t, &fakeSource{})

	body := `{"aspects": [
		{"point_a": "sun", "point_b": "moon", "aspect_type": "trine", "orb": 7.5},
		{"point_a": "sun", "point_b": "mars", "aspect_type": "square", "orb": 9.1}
	]}`
	rec := doRequest(h, http.MethodPost, "/api/charts/aspects", body)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusOK {
		t.Fatalf("aspects failed: %s", rec.Body.String())
	}

	raw, _ := json.Marshal(resp.Data)
	var classified []models.ClassifiedAspect
	if err := json.Unmarshal(raw, &classified); err != nil {
		t.Fatalf("decode aspects: %v", err)
	}
	if len(classified) != 1 {
		t.Fatalf("default orb 8 should keep 1 aspect, got %d", len(classified))
	}
	if classified[0].Style.ColorTier != "harmonious" {
		t.Fatalf("trine tier = %q", classified[0].Style.ColorTier)
	}
}

func TestScoreEndpointInvalidWeights(t *testing.T) {
	h := newTestHandler(t, &fakeSource{})

	// NaN cannot travel through JSON, so exercise the rejection path with a
	// payload that fails binding instead.
	rec := doRequest(h, http.MethodPost, "/api/synastry/score", `{"interaspects": "nope"}`)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("bad score payload should be rejected, got %d", resp.Status)
	}
}

func TestScoreEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeSource{})

	body := `{
		"interaspects": [{"point_a": "sun", "point_b": "moon", "aspect_type": "trine", "orb": 0.5, "exact": true}],
		"overlays": []
	}`
	rec := doRequest(h, http.MethodPost, "/api/synastry/score", body)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusOK {
		t.Fatalf("score failed: %s", rec.Body.String())
	}

	raw, _ := json.Marshal(resp.Data)
	var breakdown models.CompatibilityBreakdown
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		t.Fatalf("decode breakdown: %v", err)
	}
	if breakdown.Categories["romance"] != 10 {
		t.Fatalf("romance = %v, want 10", breakdown.Categories["romance"])
	}
}

func TestSynastryEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeSource{payload: []byte(chartPayload), healthy: true})

	body := `{
		"person_a": {"date": "1990-01-01", "time": "12:30"},
		"person_b": {"date": "1992-06-15", "time": "08:00"}
	}`
	rec := doRequest(h, http.MethodPost, "/api/synastry", body)

	resp := decodeResponse(t, rec)
	if resp.Status != http.StatusOK {
		t.Fatalf("synastry failed: %s", rec.Body.String())
	}

	raw, _ := json.Marshal(resp.Data)
	var res models.SynastryResult
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.ChartA == nil || res.ChartB == nil || res.Breakdown == nil {
		t.Fatalf("incomplete result: %+v", res)
	}
	// Identical charts put each sun exactly on the other's sun.
	if len(res.Interaspects) != 1 || res.Interaspects[0].Type != models.AspectConjunction {
		t.Fatalf("interaspects = %+v", res.Interaspects)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t, &fakeSource{healthy: false})

	rec := doRequest(h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unreachable") {
		t.Fatalf("unhealthy backend should be reported: %s", rec.Body.String())
	}
}
