package handlers

import (
	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/llm"
	"careerprep-utils/internal/logging"
	"careerprep-utils/internal/prompts"
	"careerprep-utils/pkg/models"
)

// GenerateCVHandler produces the JSON-shaped ATS-optimized CV from the exact
// candidate facts supplied by the caller
func GenerateCVHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.CVRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "generateATSCV", reqID, err)
		}

		logger.Info("Processing CV generation request", map[string]interface{}{
			"request_id":  reqID,
			"target_role": req.TargetRole,
			"skills":      len(req.Skills),
		})

		cv, err := completeJSON(c.Request().Context(), llmManager, prompts.ATSCV(&req))
		if err != nil {
			return respondError(c, "generateATSCV", reqID, err)
		}

		return respondJSON(c, models.CVResponse{
			CV:        cv,
			RequestID: reqID,
		})
	}
}
