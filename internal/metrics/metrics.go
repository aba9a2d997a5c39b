package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts outbound calls to the prediction backend
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightpredict_api_requests_total",
			Help: "Total number of requests sent to the prediction backend",
		},
		[]string{"endpoint", "status"},
	)

	// APILatency tracks outbound call latency
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flightpredict_api_latency_seconds",
			Help:    "Prediction backend call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// APIErrorsTotal counts classified failures
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightpredict_api_errors_total",
			Help: "Total number of classified API errors",
		},
		[]string{"classification"},
	)

	RetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flightpredict_retries_total",
			Help: "Total number of retry attempts after a failed call",
		},
	)

	// PredictionsTotal counts prediction outcomes by result (success, invalid, failed, cached)
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flightpredict_predictions_total",
			Help: "Total number of prediction requests by outcome",
		},
		[]string{"result"},
	)
)
