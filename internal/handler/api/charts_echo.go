package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"AstroCore/internal/astro"
	"AstroCore/internal/domain/models"
	drepo "AstroCore/internal/domain/repository"
	"AstroCore/internal/usecase"
	xhttp "AstroCore/pkg/http"
	xlogger "AstroCore/pkg/logger"
)

// ChartsEchoHandler exposes chart and synastry operations over HTTP.
type ChartsEchoHandler struct {
	logger   *xlogger.Logger
	charts   *usecase.ChartUseCase
	synastry *usecase.SynastryUseCase
	source   drepo.EphemerisSource
}

func NewChartsEchoHandler(logger *xlogger.Logger, charts *usecase.ChartUseCase, synastry *usecase.SynastryUseCase, source drepo.EphemerisSource) *ChartsEchoHandler {
	return &ChartsEchoHandler{logger: logger, charts: charts, synastry: synastry, source: source}
}

func (h *ChartsEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.POST("/charts", h.GetChart)
	g.POST("/charts/normalize", h.Normalize)
	g.POST("/charts/aspects", h.FilterAspects)
	g.POST("/synastry", h.Compare)
	g.POST("/synastry/score", h.Score)
}

// GetChart casts a chart for the given birth data via the ephemeris backend.
func (h *ChartsEchoHandler) GetChart(c echo.Context) error {
	req := &models.ChartRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	chart, err := h.charts.GetChart(c.Request().Context(), req.Birth)
	if err != nil {
		h.logger.Error("get chart usecase error", xlogger.Error(err))
		return h.engineErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}

// Normalize runs the normalization pipeline on a caller-supplied raw
// payload, bypassing the ephemeris backend.
func (h *ChartsEchoHandler) Normalize(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return xhttp.BadRequestResponse(c, "cannot read request body")
	}

	chart, err := h.charts.NormalizePayload(body)
	if err != nil {
		h.logger.Error("normalize usecase error", xlogger.Error(err))
		return h.engineErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, chart)
}

// FilterAspects filters an aspect list by orb and classifies the survivors.
func (h *ChartsEchoHandler) FilterAspects(c echo.Context) error {
	req := &models.AspectFilterRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	return xhttp.SuccessResponse(c, h.charts.FilterAspects(req.Aspects, req.MaxOrb))
}

// Compare runs the full synastry flow for two people.
func (h *ChartsEchoHandler) Compare(c echo.Context) error {
	req := &models.SynastryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.synastry.Compare(c.Request().Context(), *req)
	if err != nil {
		h.logger.Error("synastry usecase error", xlogger.Error(err))
		return h.engineErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Score scores already-derived inter-chart data without fetching charts.
func (h *ChartsEchoHandler) Score(c echo.Context) error {
	req := &models.SynastryScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	breakdown, err := h.synastry.Score(req.Interaspects, req.Overlays, req.Weights)
	if err != nil {
		h.logger.Error("score usecase error", xlogger.Error(err))
		return h.engineErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, breakdown)
}

// Health reports service and backend liveness.
func (h *ChartsEchoHandler) Health(c echo.Context) error {
	status := map[string]string{"status": "ok", "ephemeris": "ok"}
	if err := h.source.Health(c.Request().Context()); err != nil {
		status["ephemeris"] = "unreachable"
	}
	return xhttp.DataResponse(c, http.StatusOK, status)
}

// engineErrorResponse maps engine sentinels onto HTTP statuses. Anything
// unrecognized counts as an upstream or internal failure.
func (h *ChartsEchoHandler) engineErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, astro.ErrMalformedPayload),
		errors.Is(err, astro.ErrInvalidCusps),
		errors.Is(err, astro.ErrInvalidInput):
		return xhttp.UnprocessableResponse(c, err.Error())
	case errors.Is(err, astro.ErrInvalidWeights):
		return xhttp.BadRequestResponse(c, err.Error())
	default:
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("upstream chart calculation failed").WithError(err))
	}
}
