package handlers

import (
	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/llm"
	"careerprep-utils/internal/prompts"
	"careerprep-utils/pkg/models"
)

// SearchJobsHandler produces the JSON-shaped job market summary
func SearchJobsHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.JobSearchRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "searchJobs", reqID, err)
		}

		jobs, err := completeJSON(c.Request().Context(), llmManager, prompts.JobSearch(&req))
		if err != nil {
			return respondError(c, "searchJobs", reqID, err)
		}

		return respondJSON(c, models.JobSearchResponse{
			Jobs:      jobs,
			RequestID: reqID,
		})
	}
}
