package handlers

import (
	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/config"
	"careerprep-utils/internal/llm"
	"careerprep-utils/internal/logging"
	"careerprep-utils/pkg/models"
)

// ChatCompletionHandler handles the generic chat completion endpoint. The
// caller supplies the full message list; content and usage come back from the
// provider unmodified.
func ChatCompletionHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.ChatCompletionRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "chatCompletion", reqID, err)
		}

		temperature := cfg.LLM.Temperature
		if req.Temperature != nil {
			temperature = *req.Temperature
		}
		maxTokens := cfg.LLM.MaxTokens
		if req.MaxTokens != nil {
			maxTokens = *req.MaxTokens
		}

		logger.Info("Processing chat completion request", map[string]interface{}{
			"request_id": reqID,
			"messages":   len(req.Messages),
		})

		completion, err := llmManager.Complete(c.Request().Context(), models.CompletionRequest{
			Messages:    req.Messages,
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		if err != nil {
			return respondError(c, "chatCompletion", reqID, err)
		}

		return respondJSON(c, models.ChatCompletionResponse{
			Content:   completion.Content,
			Usage:     completion.Usage,
			RequestID: reqID,
		})
	}
}
