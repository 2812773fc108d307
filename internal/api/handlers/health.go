package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/llm"
	"careerprep-utils/pkg/models"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests. Readiness reflects
// whether the completion provider is configured.
func ReadinessHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		llmStatus := "ok"
		status := "ready"
		code := http.StatusOK
		if !llmManager.IsHealthy() {
			llmStatus = "not_configured"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		}

		response := models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api": "ok",
				"llm": llmStatus,
			},
		}

		return c.JSON(code, response)
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	response := models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	}

	return c.JSON(http.StatusOK, response)
}

// StatusHandler provides detailed service status
func StatusHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		llmStatus := "operational"
		if !llmManager.IsHealthy() {
			llmStatus = "not_configured"
		}

		response := models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":          "operational",
				"llm":          llmStatus,
				"llm_provider": llmManager.GetProviderName(),
			},
		}

		return c.JSON(http.StatusOK, response)
	}
}
