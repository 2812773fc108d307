package models

// InterviewQuestionRequest represents the payload for generating a single interview question
type InterviewQuestionRequest struct {
	Field          string `json:"field,omitempty"`
	Position       string `json:"position,omitempty"`
	Company        string `json:"company,omitempty"`
	QuestionNumber int    `json:"question_number,omitempty" validate:"omitempty,gte=1"`
}

// InterviewFeedbackRequest represents the payload for scoring a candidate answer
type InterviewFeedbackRequest struct {
	Question   string `json:"question" validate:"required"`
	UserAnswer string `json:"user_answer" validate:"required"`
	Field      string `json:"field,omitempty"`
	Position   string `json:"position,omitempty"`
}

// SimulateInterviewRequest represents one turn of the interview simulation.
// The caller owns all conversation state and resupplies it on every call.
type SimulateInterviewRequest struct {
	Stage            string `json:"stage" validate:"required,oneof=intro question followup closing"`
	Position         string `json:"position,omitempty"`
	Company          string `json:"company,omitempty"`
	Field            string `json:"field,omitempty"`
	QuestionNumber   int    `json:"question_number,omitempty" validate:"omitempty,gte=1"`
	TotalQuestions   int    `json:"total_questions,omitempty" validate:"omitempty,gte=1"`
	PreviousAnswer   string `json:"previous_answer,omitempty"`
	PreviousQuestion string `json:"previous_question,omitempty"`
	InterviewerName  string `json:"interviewer_name,omitempty"`
	CandidateName    string `json:"candidate_name,omitempty"`
}

// QuestionAnswer is a scored question/answer pair from a finished interview
type QuestionAnswer struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// InterviewReportRequest represents the payload for the final interview report
type InterviewReportRequest struct {
	Position            string           `json:"position,omitempty"`
	Company             string           `json:"company,omitempty"`
	QuestionsAndAnswers []QuestionAnswer `json:"questions_and_answers" validate:"required,min=1"`
	OverallScores       []float64        `json:"overall_scores" validate:"required,min=1"`
	CandidateName       string           `json:"candidate_name,omitempty"`
}

// SkillAssessmentRequest represents the payload for a skill-gap assessment
type SkillAssessmentRequest struct {
	CurrentRole   string   `json:"current_role" validate:"required"`
	TargetRole    string   `json:"target_role" validate:"required"`
	CurrentSkills []string `json:"current_skills,omitempty"`
	Industry      string   `json:"industry,omitempty"`
}

// LearningPathRequest represents the payload for learning path generation
type LearningPathRequest struct {
	TargetRole      string   `json:"target_role" validate:"required"`
	SkillsToImprove []string `json:"skills_to_improve,omitempty"`
	LearningStyle   string   `json:"learning_style,omitempty"`
	TimeAvailable   string   `json:"time_available,omitempty"`
}

// MentorChatRequest represents one turn of the career mentor chat.
// ConversationHistory is spliced into the prompt verbatim; nothing is stored.
type MentorChatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []ChatMessage `json:"conversation_history,omitempty" validate:"omitempty,dive"`
	UserContext         string        `json:"user_context,omitempty"`
}

// LearningResourcesRequest represents the payload for curated learning resources
type LearningResourcesRequest struct {
	Skill      string `json:"skill" validate:"required"`
	TargetRole string `json:"target_role,omitempty"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// PersonalInfo carries the contact block for CV generation
type PersonalInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Languages string `json:"languages,omitempty"`
}

// CVRequest represents the payload for ATS-optimized CV generation
type CVRequest struct {
	TargetRole   string        `json:"target_role" validate:"required"`
	CurrentRole  string        `json:"current_role,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	Experience   string        `json:"experience,omitempty"`
	Education    string        `json:"education,omitempty"`
	Projects     string        `json:"projects,omitempty"`
	Achievements string        `json:"achievements,omitempty"`
	PersonalInfo *PersonalInfo `json:"personal_info,omitempty"`
}

// JobSearchRequest represents the payload for the job search summary
type JobSearchRequest struct {
	TargetRole string   `json:"target_role" validate:"required"`
	Location   string   `json:"location,omitempty"`
	Experience string   `json:"experience,omitempty" validate:"omitempty,oneof=entry mid senior"`
	Skills     []string `json:"skills,omitempty"`
}
