package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep-utils/pkg/models"
)

func TestAverageScore(t *testing.T) {
	assert.Equal(t, 80.0, averageScore([]float64{70, 90}))
	assert.Equal(t, 55.0, averageScore([]float64{55}))
	assert.InDelta(t, 66.666, averageScore([]float64{50, 70, 80}), 0.001)
}

func TestVerdictForScore(t *testing.T) {
	tests := []struct {
		score   float64
		verdict string
	}{
		{100, "Strong Hire"},
		{80, "Strong Hire"},
		{79.999, "Hire"},
		{65, "Hire"},
		{64.999, "Maybe"},
		{50, "Maybe"},
		{49.999, "No Hire"},
		{0, "No Hire"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.verdict, verdictForScore(tt.score), "score %v", tt.score)
	}
}

func TestInterviewQuestionTrimsContent(t *testing.T) {
	provider := textProvider("\n  Tell me about a time you failed.  \n")
	handler := InterviewQuestionHandler(testManager(provider))

	rec := postJSON(t, handler, `{"position":"backend engineer","question_number":2}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.InterviewQuestionResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Tell me about a time you failed.", resp.Question)
	assert.NotEmpty(t, resp.RequestID)
}

func TestInterviewQuestionRejectsZeroQuestionNumber(t *testing.T) {
	provider := textProvider("ok")
	handler := InterviewQuestionHandler(testManager(provider))

	rec := postJSON(t, handler, `{"question_number":0,"position":"x"}`)

	// question_number is omitempty so 0 binds as absent and defaults to 1
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, handler, `{"question_number":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInterviewFeedbackStripsFences(t *testing.T) {
	provider := textProvider("```json\n{\"overallScore\": 72}\n```")
	handler := InterviewFeedbackHandler(testManager(provider))

	rec := postJSON(t, handler, `{"question":"Why us?","user_answer":"Because."}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.InterviewFeedbackResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, `{"overallScore": 72}`, resp.Feedback)
}

func TestInterviewFeedbackMalformedJSON(t *testing.T) {
	provider := textProvider("Sorry, I cannot answer that.")
	handler := InterviewFeedbackHandler(testManager(provider))

	rec := postJSON(t, handler, `{"question":"Why us?","user_answer":"Because."}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream_contract_violation", decodeError(t, rec).Error)
}

func TestInterviewFeedbackRequiresQuestionAndAnswer(t *testing.T) {
	provider := textProvider("{}")
	handler := InterviewFeedbackHandler(testManager(provider))

	rec := postJSON(t, handler, `{"question":"Why us?"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", decodeError(t, rec).Error)
	assert.Zero(t, provider.calls)
}

func TestSimulateInterviewEchoesTurnState(t *testing.T) {
	provider := textProvider("Here is your next question.")
	handler := SimulateInterviewHandler(testManager(provider))

	rec := postJSON(t, handler, `{"stage":"question","question_number":3,"interviewer_name":"Sipho","position":"analyst"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SimulateInterviewResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Here is your next question.", resp.Response)
	assert.Equal(t, "question", resp.Stage)
	assert.Equal(t, 3, resp.QuestionNumber)
	assert.Equal(t, "Sipho", resp.InterviewerName)

	// The simulation runs on the configured fast model
	assert.Equal(t, "gpt-3.5-turbo", provider.lastReq.Model)
}

func TestSimulateInterviewRejectsUnknownStage(t *testing.T) {
	provider := textProvider("ok")
	handler := SimulateInterviewHandler(testManager(provider))

	rec := postJSON(t, handler, `{"stage":"debrief"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, provider.calls)
}

func TestInterviewReportComputesVerdict(t *testing.T) {
	provider := textProvider("Overall a strong performance.")
	handler := InterviewReportHandler(testManager(provider))

	body := `{
		"position": "product manager",
		"questions_and_answers": [
			{"question": "Q1", "answer": "A1", "score": 70},
			{"question": "Q2", "answer": "A2", "score": 90}
		],
		"overall_scores": [70, 90]
	}`
	rec := postJSON(t, handler, body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.InterviewReportResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Overall a strong performance.", resp.Report)
	assert.Equal(t, 80.0, resp.AverageScore)
	assert.Equal(t, "Strong Hire", resp.Verdict)

	// The computed average is interpolated into the instruction text so the
	// model and the verdict agree on one number
	userMessage := provider.lastReq.Messages[len(provider.lastReq.Messages)-1]
	assert.Contains(t, userMessage.Content, "Average Score: 80/100")
}

func TestInterviewReportRequiresScores(t *testing.T) {
	provider := textProvider("ok")
	handler := InterviewReportHandler(testManager(provider))

	rec := postJSON(t, handler, `{"questions_and_answers":[{"question":"q","answer":"a","score":50}],"overall_scores":[]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, provider.calls)
}
