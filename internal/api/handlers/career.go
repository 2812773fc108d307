package handlers

import (
	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/llm"
	"careerprep-utils/internal/prompts"
	"careerprep-utils/pkg/models"
)

// SkillAssessmentHandler produces the JSON-shaped skill-gap assessment
func SkillAssessmentHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.SkillAssessmentRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "assessSkills", reqID, err)
		}

		assessment, err := completeJSON(c.Request().Context(), llmManager, prompts.SkillAssessment(&req))
		if err != nil {
			return respondError(c, "assessSkills", reqID, err)
		}

		return respondJSON(c, models.SkillAssessmentResponse{
			Assessment: assessment,
			RequestID:  reqID,
		})
	}
}

// LearningPathHandler produces the JSON-shaped learning path
func LearningPathHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.LearningPathRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "generateLearningPath", reqID, err)
		}

		learningPath, err := completeJSON(c.Request().Context(), llmManager, prompts.LearningPath(&req))
		if err != nil {
			return respondError(c, "generateLearningPath", reqID, err)
		}

		return respondJSON(c, models.LearningPathResponse{
			LearningPath: learningPath,
			RequestID:    reqID,
		})
	}
}

// MentorChatHandler produces one mentor reply. Conversation history comes in
// with the request and is spliced into the prompt in order.
func MentorChatHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.MentorChatRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "mentorChat", reqID, err)
		}

		response, _, err := completeText(c.Request().Context(), llmManager, prompts.MentorChat(&req))
		if err != nil {
			return respondError(c, "mentorChat", reqID, err)
		}

		return respondJSON(c, models.MentorChatResponse{
			Response:  response,
			RequestID: reqID,
		})
	}
}

// LearningResourcesHandler produces the JSON-shaped curated resource list
func LearningResourcesHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.LearningResourcesRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "getLearningResources", reqID, err)
		}

		resources, err := completeJSON(c.Request().Context(), llmManager, prompts.LearningResources(&req))
		if err != nil {
			return respondError(c, "getLearningResources", reqID, err)
		}

		return respondJSON(c, models.LearningResourcesResponse{
			Resources: resources,
			RequestID: reqID,
		})
	}
}
