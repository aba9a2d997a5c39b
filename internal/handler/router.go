package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Register(e *echo.Echo, h *PredictionHandler) {
	api := e.Group("/api")
	api.POST("/predict", h.Predict)
	api.GET("/health", h.Health)
	api.GET("/model-info", h.ModelInfo)
	api.GET("/options", h.Options)
	api.GET("/config", h.Config)

	api.GET("/history", h.ListHistory)
	api.DELETE("/history", h.ClearHistory)
	api.GET("/history/:id", h.GetHistory)
	api.DELETE("/history/:id", h.RemoveHistory)

	e.GET("/health", HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
