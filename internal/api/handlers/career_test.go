package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerprep-utils/pkg/models"
)

func TestSkillAssessmentReturnsJSONPayload(t *testing.T) {
	provider := textProvider(`[{"skillName":"SQL","currentLevel":4,"targetLevel":8}]`)
	handler := SkillAssessmentHandler(testManager(provider))

	rec := postJSON(t, handler, `{"current_role":"support agent","target_role":"data analyst"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SkillAssessmentResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, `[{"skillName":"SQL","currentLevel":4,"targetLevel":8}]`, resp.Assessment)
}

func TestSkillAssessmentRequiresRoles(t *testing.T) {
	provider := textProvider("[]")
	handler := SkillAssessmentHandler(testManager(provider))

	rec := postJSON(t, handler, `{"current_role":"support agent"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_failed", decodeError(t, rec).Error)
	assert.Zero(t, provider.calls)
}

func TestLearningPathRequiresTargetRole(t *testing.T) {
	provider := textProvider("{}")
	handler := LearningPathHandler(testManager(provider))

	rec := postJSON(t, handler, `{"skills_to_improve":["docker"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, provider.calls)
}

func TestLearningPathReturnsPayload(t *testing.T) {
	provider := textProvider(`{"title":"Intensive Path to devops engineer","modules":[]}`)
	handler := LearningPathHandler(testManager(provider))

	rec := postJSON(t, handler, `{"target_role":"devops engineer"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LearningPathResponse
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp.LearningPath, "Intensive Path")
}

func TestMentorChatPlainTextReply(t *testing.T) {
	provider := textProvider("  Set a concrete deadline first.  ")
	handler := MentorChatHandler(testManager(provider))

	body := `{
		"message": "Should I switch careers?",
		"conversation_history": [
			{"role": "user", "content": "hi"},
			{"role": "assistant", "content": "hello"}
		]
	}`
	rec := postJSON(t, handler, body)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MentorChatResponse
	decodeBody(t, rec, &resp)
	// Mentor replies are free text, trimmed but never JSON-checked
	assert.Equal(t, "Set a concrete deadline first.", resp.Response)

	// system prompt, two history turns, new message
	require.Len(t, provider.lastReq.Messages, 4)
	assert.Equal(t, "Should I switch careers?", provider.lastReq.Messages[3].Content)
}

func TestMentorChatRequiresMessage(t *testing.T) {
	provider := textProvider("ok")
	handler := MentorChatHandler(testManager(provider))

	rec := postJSON(t, handler, `{"user_context":"5 years in retail"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, provider.calls)
}

func TestLearningResourcesRejectsUnknownDifficulty(t *testing.T) {
	provider := textProvider("{}")
	handler := LearningResourcesHandler(testManager(provider))

	rec := postJSON(t, handler, `{"skill":"SQL","difficulty":"expert"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, provider.calls)
}

func TestLearningResourcesReturnsPayload(t *testing.T) {
	provider := textProvider(`{"skill":"SQL","videos":[]}`)
	handler := LearningResourcesHandler(testManager(provider))

	rec := postJSON(t, handler, `{"skill":"SQL","difficulty":"beginner"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LearningResourcesResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, `{"skill":"SQL","videos":[]}`, resp.Resources)
}
