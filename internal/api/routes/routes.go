package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"careerprep-utils/internal/api/handlers"
	"careerprep-utils/internal/api/middleware"
	"careerprep-utils/internal/config"
	"careerprep-utils/internal/llm"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Short timeout for health/status, provider timeout for completion endpoints
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.LLM.Timeout))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		v1.POST("/chat", handlers.ChatCompletionHandler(cfg, llmManager))

		interview := v1.Group("/interview")
		{
			interview.POST("/question", handlers.InterviewQuestionHandler(llmManager))
			interview.POST("/feedback", handlers.InterviewFeedbackHandler(llmManager))
			interview.POST("/simulate", handlers.SimulateInterviewHandler(llmManager))
			interview.POST("/report", handlers.InterviewReportHandler(llmManager))
		}

		career := v1.Group("/career")
		{
			career.POST("/assess", handlers.SkillAssessmentHandler(llmManager))
			career.POST("/learning-path", handlers.LearningPathHandler(llmManager))
			career.POST("/mentor", handlers.MentorChatHandler(llmManager))
			career.POST("/resources", handlers.LearningResourcesHandler(llmManager))
		}

		v1.POST("/cv/generate", handlers.GenerateCVHandler(llmManager))
		v1.POST("/jobs/search", handlers.SearchJobsHandler(llmManager))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "CareerPrep Prompt Gateway",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
