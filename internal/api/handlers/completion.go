package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/llm"
	"careerprep-utils/internal/logging"
	"careerprep-utils/internal/prompts"
	"careerprep-utils/pkg/models"
	"careerprep-utils/pkg/utils"
)

var validate = validator.New()

// requestID returns the ID set by the validation middleware, generating one
// when the handler is exercised without the middleware stack (tests)
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	id := utils.GenerateRequestID()
	c.Set("request_id", id)
	return id
}

// bindAndValidate parses the request body and applies boundary validation.
// Every operation validates its required fields before any upstream call.
func bindAndValidate(c echo.Context, req interface{}) *utils.CustomError {
	if err := c.Bind(req); err != nil {
		return utils.NewBadRequestError("Invalid request format")
	}

	if err := validate.Struct(req); err != nil {
		return utils.NewValidationError(err.Error())
	}

	return nil
}

// completeText runs one prompt against the provider and returns the trimmed
// first-choice text. Exactly one upstream call is made.
func completeText(ctx context.Context, llmManager *llm.Manager, p prompts.Prompt) (string, *models.Usage, error) {
	req := models.CompletionRequest{
		Messages:    p.Messages(),
		Temperature: p.Params.Temperature,
		MaxTokens:   p.Params.MaxTokens,
	}
	if p.Params.FastModel {
		req.Model = llmManager.FastModel()
	}

	completion, err := llmManager.Complete(ctx, req)
	if err != nil {
		return "", nil, err
	}

	return strings.TrimSpace(completion.Content), completion.Usage, nil
}

// completeJSON runs one prompt whose output is expected to be JSON-shaped.
// Markdown code fences are stripped and the payload must parse as JSON; it is
// still returned as an opaque string since the schema belongs to the model.
func completeJSON(ctx context.Context, llmManager *llm.Manager, p prompts.Prompt) (string, error) {
	text, _, err := completeText(ctx, llmManager, p)
	if err != nil {
		return "", err
	}

	text = stripCodeFences(text)
	if !json.Valid([]byte(text)) {
		return "", utils.NewContractViolationError("provider returned malformed JSON")
	}

	return text, nil
}

// stripCodeFences removes a surrounding markdown code block if present
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// respondError logs the failure and writes the uniform error envelope.
// All failure kinds funnel through here; no partial results are returned.
func respondError(c echo.Context, operation, reqID string, err error) error {
	logger := logging.GetGlobalLogger()

	var customErr *utils.CustomError
	if !errors.As(err, &customErr) {
		customErr = utils.NewInternalServerError(err.Error())
	}

	logger.Error("Request failed", map[string]interface{}{
		"request_id": reqID,
		"operation":  operation,
		"error_kind": customErr.Kind,
		"error":      customErr.Error(),
	})

	return c.JSON(customErr.Code, models.ErrorResponse{
		Error:     customErr.Kind,
		Message:   customErr.Error(),
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

// respondJSON writes a successful result
func respondJSON(c echo.Context, body interface{}) error {
	return c.JSON(http.StatusOK, body)
}
