package handlers

import (
	"github.com/labstack/echo/v4"

	"careerprep-utils/internal/llm"
	"careerprep-utils/internal/logging"
	"careerprep-utils/internal/prompts"
	"careerprep-utils/pkg/models"
)

// Verdict thresholds, inclusive on the lower bound
const (
	strongHireThreshold = 80
	hireThreshold       = 65
	maybeThreshold      = 50
)

// averageScore computes the arithmetic mean of the overall scores. The
// request validator guarantees a non-empty list.
func averageScore(scores []float64) float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// verdictForScore maps an average score to the hire recommendation label
func verdictForScore(score float64) string {
	switch {
	case score >= strongHireThreshold:
		return "Strong Hire"
	case score >= hireThreshold:
		return "Hire"
	case score >= maybeThreshold:
		return "Maybe"
	default:
		return "No Hire"
	}
}

// InterviewQuestionHandler generates a single strict interview question
func InterviewQuestionHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.InterviewQuestionRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "getInterviewQuestion", reqID, err)
		}

		question, _, err := completeText(c.Request().Context(), llmManager, prompts.InterviewQuestion(&req))
		if err != nil {
			return respondError(c, "getInterviewQuestion", reqID, err)
		}

		return respondJSON(c, models.InterviewQuestionResponse{
			Question:  question,
			RequestID: reqID,
		})
	}
}

// InterviewFeedbackHandler scores a candidate answer. The feedback payload is
// JSON-shaped text whose schema is dictated by the prompt.
func InterviewFeedbackHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.InterviewFeedbackRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "getInterviewFeedback", reqID, err)
		}

		feedback, err := completeJSON(c.Request().Context(), llmManager, prompts.InterviewFeedback(&req))
		if err != nil {
			return respondError(c, "getInterviewFeedback", reqID, err)
		}

		return respondJSON(c, models.InterviewFeedbackResponse{
			Feedback:  feedback,
			RequestID: reqID,
		})
	}
}

// SimulateInterviewHandler produces one interviewer turn. Stage, question
// number and interviewer name are echoed back verbatim: the caller owns the
// conversation state and resupplies it on every call.
func SimulateInterviewHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		var req models.SimulateInterviewRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "simulateInterview", reqID, err)
		}

		response, _, err := completeText(c.Request().Context(), llmManager, prompts.Simulation(&req))
		if err != nil {
			return respondError(c, "simulateInterview", reqID, err)
		}

		return respondJSON(c, models.SimulateInterviewResponse{
			Response:        response,
			Stage:           req.Stage,
			QuestionNumber:  req.QuestionNumber,
			InterviewerName: req.InterviewerName,
			RequestID:       reqID,
		})
	}
}

// InterviewReportHandler generates the final debrief with the computed
// average and verdict
func InterviewReportHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)
		logger := logging.GetGlobalLogger()

		var req models.InterviewReportRequest
		if err := bindAndValidate(c, &req); err != nil {
			return respondError(c, "getInterviewReport", reqID, err)
		}

		avg := averageScore(req.OverallScores)

		report, _, err := completeText(c.Request().Context(), llmManager, prompts.Report(&req, avg))
		if err != nil {
			return respondError(c, "getInterviewReport", reqID, err)
		}

		verdict := verdictForScore(avg)
		logger.Info("Interview report generated", map[string]interface{}{
			"request_id":    reqID,
			"average_score": avg,
			"verdict":       verdict,
		})

		return respondJSON(c, models.InterviewReportResponse{
			Report:       report,
			AverageScore: avg,
			Verdict:      verdict,
			RequestID:    reqID,
		})
	}
}
