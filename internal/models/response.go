package models

import (
	"encoding/json"
	"time"
)

type PredictionResult struct {
	ID             string          `json:"id"`
	Success        bool            `json:"success"`
	PredictedPrice float64         `json:"predicted_price"`
	FormattedPrice string          `json:"formatted_price"`
	PriceLevel     string          `json:"price_level"`
	Query          FlightQuery     `json:"query"`
	Timestamp      time.Time       `json:"timestamp"`
	Raw            json.RawMessage `json:"raw,omitempty"`
}

type HealthStatus struct {
	Status      string `json:"status"`
	ModelStatus string `json:"model_status,omitempty"`
	Message     string `json:"message,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// ModelInfo is opaque model metadata; only the backend knows its shape.
type ModelInfo map[string]any

// Outcome is what the submit handler hands back to the UI: either a result or
// a single human-readable message.
type Outcome struct {
	Success bool              `json:"success"`
	Data    *PredictionResult `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
