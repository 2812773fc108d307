package models

import "time"

// ChatCompletionResponse returns the provider's first choice content and usage unmodified
type ChatCompletionResponse struct {
	Content   string `json:"content"`
	Usage     *Usage `json:"usage,omitempty"`
	RequestID string `json:"request_id"`
}

// InterviewQuestionResponse wraps a generated interview question
type InterviewQuestionResponse struct {
	Question  string `json:"question"`
	RequestID string `json:"request_id"`
}

// InterviewFeedbackResponse wraps the scored feedback. Feedback is JSON-shaped
// text whose schema is a contract with the model, not parsed here.
type InterviewFeedbackResponse struct {
	Feedback  string `json:"feedback"`
	RequestID string `json:"request_id"`
}

// SimulateInterviewResponse echoes the caller-owned turn state alongside the
// generated interviewer line.
type SimulateInterviewResponse struct {
	Response        string `json:"response"`
	Stage           string `json:"stage"`
	QuestionNumber  int    `json:"question_number"`
	InterviewerName string `json:"interviewer_name"`
	RequestID       string `json:"request_id"`
}

// InterviewReportResponse wraps the final report with the computed verdict
type InterviewReportResponse struct {
	Report       string  `json:"report"`
	AverageScore float64 `json:"average_score"`
	Verdict      string  `json:"verdict"`
	RequestID    string  `json:"request_id"`
}

// SkillAssessmentResponse wraps the JSON-shaped skill-gap assessment
type SkillAssessmentResponse struct {
	Assessment string `json:"assessment"`
	RequestID  string `json:"request_id"`
}

// LearningPathResponse wraps the JSON-shaped learning path
type LearningPathResponse struct {
	LearningPath string `json:"learning_path"`
	RequestID    string `json:"request_id"`
}

// MentorChatResponse wraps one mentor reply
type MentorChatResponse struct {
	Response  string `json:"response"`
	RequestID string `json:"request_id"`
}

// LearningResourcesResponse wraps the JSON-shaped curated resources
type LearningResourcesResponse struct {
	Resources string `json:"resources"`
	RequestID string `json:"request_id"`
}

// CVResponse wraps the JSON-shaped generated CV
type CVResponse struct {
	CV        string `json:"cv"`
	RequestID string `json:"request_id"`
}

// JobSearchResponse wraps the JSON-shaped job search summary
type JobSearchResponse struct {
	Jobs      string `json:"jobs"`
	RequestID string `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
