package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"meetpulse/internal/errtrack"
	"meetpulse/internal/health"
	"meetpulse/internal/validation"
)

var (
	errSnapshotUnavailable = map[string]string{"error": "telemetry snapshot unavailable"}
	errComponentNotFound   = map[string]string{"error": "health indicator not registered"}
	errInvalidWindow       = map[string]string{"error": "invalid window format"}
	errWindowOutOfRange    = map[string]string{"error": "window out of range"}
	errComponentRequired   = map[string]string{"error": "component is required"}
	errComponentTooLong    = map[string]string{"error": "component exceeds maximum length"}
	errInvalidComponent    = map[string]string{"error": "component contains invalid characters"}
	errInvalidLimit        = map[string]string{"error": "limit must be a positive integer"}
	errLimitTooLarge       = map[string]string{"error": "limit exceeds maximum"}
	errUnknownOrder        = map[string]string{"error": "by must be frequent or recent"}
	errEncodeFailed        = map[string]string{"error": "failed to encode response"}
)

type Handler struct {
	snapshots SnapshotProvider
	health    HealthChecker
	errors    ErrorQuerier
	validator QueryValidator
	cache     ResponseCache
	logger    *slog.Logger
	recorder  BusinessRecorder
}

func New(
	snapshots SnapshotProvider,
	healthChecker HealthChecker,
	errorQuerier ErrorQuerier,
	validator QueryValidator,
	cache ResponseCache,
	logger *slog.Logger,
	recorder BusinessRecorder,
) *Handler {
	return &Handler{
		snapshots: snapshots,
		health:    healthChecker,
		errors:    errorQuerier,
		validator: validator,
		cache:     cache,
		logger:    logger,
		recorder:  recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/telemetry/snapshot", h.Snapshot)
	api.GET("/health", h.Health)
	api.GET("/health/:component", h.ComponentHealth)
	api.GET("/errors", h.Errors)
	api.GET("/errors/trends", h.ErrorTrends)
	api.GET("/errors/top", h.TopErrors)
}

func (h *Handler) Snapshot(c echo.Context) error {
	h.recorder.Increment("api_snapshot_reads", 1)

	snap, err := h.snapshots.CurrentSnapshot()
	if err != nil {
		h.logger.Error("failed to get telemetry snapshot", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, errSnapshotUnavailable)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) Health(c echo.Context) error {
	h.recorder.Increment("api_health_checks", 1)

	overall := h.health.OverallHealth(c.Request().Context())
	return c.JSON(healthStatusCode(overall.Status), overall)
}

type componentHealthResponse struct {
	Component string `json:"component"`
	health.Result
}

func (h *Handler) ComponentHealth(c echo.Context) error {
	h.recorder.Increment("api_health_checks", 1)

	name := c.Param("component")
	if !slices.Contains(h.health.Names(), name) {
		return c.JSON(http.StatusNotFound, errComponentNotFound)
	}

	res := h.health.Evaluate(c.Request().Context(), name)
	return c.JSON(healthStatusCode(res.Status), componentHealthResponse{Component: name, Result: res})
}

func (h *Handler) Errors(c echo.Context) error {
	raw := c.QueryParam("component")
	if raw == "" {
		return c.JSON(http.StatusOK, h.errors.OverallStatistics())
	}

	component, err := h.validator.ValidateComponent(raw)
	if err != nil {
		return h.handleValidationError(c, err)
	}
	return c.JSON(http.StatusOK, h.errors.StatisticsFor(component))
}

type trendResponse struct {
	Window string `json:"window"`
	errtrack.Trend
}

func (h *Handler) ErrorTrends(c echo.Context) error {
	window, err := h.validator.ParseWindow(c.QueryParam("window"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	key := "trends:" + window.String()
	if body, ok := h.cache.Get(key); ok {
		return c.JSONBlob(http.StatusOK, body)
	}

	body, err := json.Marshal(trendResponse{Window: window.String(), Trend: h.errors.Trends(window)})
	if err != nil {
		h.logger.Error("failed to encode trend response", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errEncodeFailed)
	}
	h.cache.Set(key, body)
	return c.JSONBlob(http.StatusOK, body)
}

type topErrorsResponse struct {
	By     validation.Order  `json:"by"`
	Errors []errtrack.Record `json:"errors"`
}

func (h *Handler) TopErrors(c echo.Context) error {
	order, err := h.validator.ParseOrder(c.QueryParam("by"))
	if err != nil {
		return h.handleValidationError(c, err)
	}
	limit, err := h.validator.ParseLimit(c.QueryParam("limit"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	var records []errtrack.Record
	if order == validation.OrderRecent {
		records = h.errors.MostRecent(limit)
	} else {
		records = h.errors.MostFrequent(limit)
	}
	return c.JSON(http.StatusOK, topErrorsResponse{By: order, Errors: records})
}

// healthStatusCode maps DOWN to 503. WARNING is still a 200.
func healthStatusCode(s health.Status) int {
	if s == health.StatusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrInvalidWindow):
		return c.JSON(http.StatusBadRequest, errInvalidWindow)
	case errors.Is(err, validation.ErrWindowOutOfRange):
		return c.JSON(http.StatusBadRequest, errWindowOutOfRange)
	case errors.Is(err, validation.ErrEmptyComponent):
		return c.JSON(http.StatusBadRequest, errComponentRequired)
	case errors.Is(err, validation.ErrComponentTooLong):
		return c.JSON(http.StatusBadRequest, errComponentTooLong)
	case errors.Is(err, validation.ErrInvalidComponent):
		return c.JSON(http.StatusBadRequest, errInvalidComponent)
	case errors.Is(err, validation.ErrInvalidLimit):
		return c.JSON(http.StatusBadRequest, errInvalidLimit)
	case errors.Is(err, validation.ErrLimitTooLarge):
		return c.JSON(http.StatusBadRequest, errLimitTooLarge)
	case errors.Is(err, validation.ErrUnknownOrder):
		return c.JSON(http.StatusBadRequest, errUnknownOrder)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "validation failed"})
	}
}
