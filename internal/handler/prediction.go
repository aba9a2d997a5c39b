package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightpredict/internal/client"
	"github.com/dharmasatrya/flightpredict/internal/history"
	"github.com/dharmasatrya/flightpredict/internal/models"
	"github.com/dharmasatrya/flightpredict/internal/prediction"
)

// ConfigSource exposes the client's resolved endpoints for /api/config.
type ConfigSource interface {
	Config() client.DebugConfig
}

type PredictionHandler struct {
	service *prediction.Service
	config  ConfigSource
}

type healthResponse struct {
	Healthy bool `json:"healthy"`
	models.HealthStatus
}

type optionsResponse struct {
	models.OptionsResponse
	Fallback bool `json:"fallback,omitempty"`
}

type historyResponse struct {
	Success bool                      `json:"success"`
	Count   int                       `json:"count"`
	History []models.PredictionResult `json:"history"`
}

func NewPredictionHandler(service *prediction.Service, config ConfigSource) *PredictionHandler {
	return &PredictionHandler{
		service: service,
		config:  config,
	}
}

func (h *PredictionHandler) Predict(c echo.Context) error {
	var raw models.RawQuery
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result, err := h.service.Predict(c.Request().Context(), raw)
	return c.JSON(statusFor(err), prediction.Outcome(result, err))
}

func (h *PredictionHandler) Health(c echo.Context) error {
	health, err := h.service.Health(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{
			Healthy:      false,
			HealthStatus: models.HealthStatus{Status: "unreachable", Message: messageFor(err)},
		})
	}

	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResponse{Healthy: health.Healthy(), HealthStatus: health})
}

func (h *PredictionHandler) ModelInfo(c echo.Context) error {
	info, err := h.service.ModelInfo(c.Request().Context())
	if err != nil {
		code := statusFor(err)
		return c.JSON(code, models.ErrorResponse{
			Error:   "model_info_error",
			Message: messageFor(err),
			Code:    code,
		})
	}
	return c.JSON(http.StatusOK, info)
}

// Options serves the dropdown values. When the backend is unreachable the
// built-in defaults are returned so forms stay usable.
func (h *PredictionHandler) Options(c echo.Context) error {
	opts, err := h.service.Options(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, optionsResponse{
			OptionsResponse: models.OptionsResponse{Success: true, Options: models.DefaultOptions()},
			Fallback:        true,
		})
	}
	return c.JSON(http.StatusOK, optionsResponse{
		OptionsResponse: models.OptionsResponse{Success: true, Options: opts},
	})
}

func (h *PredictionHandler) ListHistory(c echo.Context) error {
	var filter history.Filter
	if err := c.Bind(&filter); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse query: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	entries := h.service.History().List(&filter)
	return c.JSON(http.StatusOK, historyResponse{
		Success: true,
		Count:   len(entries),
		History: entries,
	})
}

func (h *PredictionHandler) GetHistory(c echo.Context) error {
	entry, ok := h.service.History().Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Prediction not found",
			Code:    http.StatusNotFound,
		})
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *PredictionHandler) ClearHistory(c echo.Context) error {
	h.service.History().Clear()
	return c.NoContent(http.StatusNoContent)
}

func (h *PredictionHandler) RemoveHistory(c echo.Context) error {
	if !h.service.History().Remove(c.Param("id")) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Prediction not found",
			Code:    http.StatusNotFound,
		})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PredictionHandler) Config(c echo.Context) error {
	return c.JSON(http.StatusOK, h.config.Config())
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}

	switch apiErr.Classification {
	case models.ClassValidation:
		if apiErr.ClientError() {
			return apiErr.HTTPStatus
		}
		return http.StatusBadRequest
	case models.ClassTimeout:
		return http.StatusGatewayTimeout
	case models.ClassNetwork, models.ClassServer:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return models.MsgUnknown
}
