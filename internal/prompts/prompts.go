// Package prompts maps request payloads to provider instructions. Builders are
// pure functions: defaults are applied here, optional fields only appear in
// the instruction text when present, and scoring rubrics are stated literally
// inside the prompt because they are part of the contract with the model.
package prompts

import (
	"fmt"
	"net/url"
	"strings"

	"careerprep-utils/pkg/models"
	"careerprep-utils/pkg/utils"
)

// GenerationParams carries the per-use-case provider settings
type GenerationParams struct {
	Temperature float64
	MaxTokens   int
	FastModel   bool
}

// Prompt is a fully built instruction set for one completion call
type Prompt struct {
	System  string
	User    string
	History []models.ChatMessage
	Params  GenerationParams
}

// Messages assembles the ordered role-tagged message list for the provider
func (p Prompt) Messages() []models.ChatMessage {
	messages := make([]models.ChatMessage, 0, len(p.History)+2)
	if p.System != "" {
		messages = append(messages, models.ChatMessage{Role: "system", Content: p.System})
	}
	messages = append(messages, p.History...)
	messages = append(messages, models.ChatMessage{Role: "user", Content: p.User})
	return messages
}

// QuestionCategory selects the question type for a given question number:
// the first two questions are behavioral, the next two situational, and
// everything later is a pressure question.
func QuestionCategory(questionNumber int) string {
	switch {
	case questionNumber <= 2:
		return "behavioral"
	case questionNumber <= 4:
		return "situational"
	default:
		return "challenging"
	}
}

// InterviewQuestion builds the strict-interviewer question prompt
func InterviewQuestion(req *models.InterviewQuestionRequest) Prompt {
	position := utils.GetStringOrDefault(req.Position, "job")
	questionNumber := req.QuestionNumber
	if questionNumber < 1 {
		questionNumber = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a CHALLENGING interview question for a %s position.\n", position)
	if req.Field != "" {
		fmt.Fprintf(&sb, "Industry: %s\n", req.Field)
	}
	if req.Company != "" {
		fmt.Fprintf(&sb, "Company: %s\n", req.Company)
	}
	fmt.Fprintf(&sb, "Question number: %d\n", questionNumber)
	sb.WriteString(`
IMPORTANT: Act as a STRICT, DEMANDING interviewer from a top company. Generate questions that:
- Are difficult and require deep thinking
- Test real competency, not just theoretical knowledge
- Probe for specific examples and measurable results
- Challenge the candidate to demonstrate their expertise
- Cannot be answered with generic, rehearsed responses

Question types based on stage:
- Q1-2: Behavioral questions requiring SPECIFIC examples with metrics
- Q3-4: Technical/situational questions that test problem-solving
- Q5+: Pressure questions, hypotheticals, or "tell me about a failure"

Make it the kind of question that would be asked at Google, McKinsey, or Goldman Sachs.

Generate ONLY the question, nothing else.`)

	return Prompt{
		System: "You are a strict, no-nonsense senior interviewer at a top-tier company. You ask tough, probing questions that separate exceptional candidates from average ones. You don't accept vague answers.",
		User:   sb.String(),
		Params: GenerationParams{Temperature: 0.8, MaxTokens: 500},
	}
}

// InterviewFeedback builds the strict-scoring evaluation prompt. The rubric
// and the expected JSON shape are literal text: the model owns the schema.
func InterviewFeedback(req *models.InterviewFeedbackRequest) Prompt {
	position := utils.GetStringOrDefault(req.Position, "Not specified")
	field := utils.GetStringOrDefault(req.Field, "Not specified")
	role := utils.GetStringOrDefault(req.Position, "the role")

	user := fmt.Sprintf(`You are a STRICT interview evaluator at a top company. Analyze this response with HIGH STANDARDS:

QUESTION: %s
CANDIDATE'S ANSWER: %s
ROLE: %s
INDUSTRY: %s

SCORING GUIDELINES (Be STRICT - most candidates should score 40-70):
- 90-100: Exceptional - Would immediately hire. Specific metrics, clear STAR format, compelling story
- 75-89: Strong - Good hire potential. Solid examples but missing some depth
- 60-74: Average - Needs improvement. Generic answers, lacks specifics
- 40-59: Below Average - Significant gaps. Vague, no real examples
- 0-39: Poor - Would not advance. Rambling, off-topic, or no substance

EVALUATE HARSHLY ON:
1. **Specificity** - Did they give EXACT numbers, dates, outcomes? Or vague generalities?
2. **Structure** - Did they use STAR method? Or ramble without clear organization?
3. **Relevance** - Did they actually answer the question asked?
4. **Impact** - Did they show measurable results? Or just describe activities?
5. **Authenticity** - Does it sound like a real experience or a rehearsed script?

CRITICAL FEEDBACK REQUIREMENTS:
- Point out EXACTLY what was weak or missing
- Don't sugarcoat - be direct about deficiencies
- Identify filler words, vague phrases, and missed opportunities
- Note if the answer was too short, too long, or off-topic

Return as JSON:
{
  "overallScore": 0-100,
  "detailedAnalysis": {
    "communication": {"score": 0-100, "feedback": "Be specific about clarity issues, filler words, pacing"},
    "structure": {"score": 0-100, "feedback": "Did they use STAR? Was it organized or rambling?"},
    "examples": {"score": 0-100, "feedback": "Were examples specific with metrics? Or generic?"},
    "roleRelevance": {"score": 0-100, "feedback": "How well did this demonstrate fit for %s?"}
  },
  "strengths": ["Be specific - what exactly did they do well?"],
  "improvements": ["Be direct - what MUST they fix? Give actionable items"],
  "overallFeedback": "Honest, direct assessment. What would a hiring manager think?",
  "exampleResponses": ["Provide 2-3 EXCELLENT example answers that would score 85+"]
}`, req.Question, req.UserAnswer, position, field, role)

	return Prompt{
		System: "You are a demanding interview coach who has hired hundreds of people at top companies. You have VERY high standards. You give honest, sometimes harsh feedback because you want candidates to actually improve. You never give inflated scores - a 70 is a genuinely good answer. You point out every weakness clearly.",
		User:   user,
		Params: GenerationParams{Temperature: 0.6, MaxTokens: 2500},
	}
}

// Simulation builds the prompt for one stateless interview turn. All
// sequencing state comes in with the request; nothing is kept between calls.
func Simulation(req *models.SimulateInterviewRequest) Prompt {
	position := utils.GetStringOrDefault(req.Position, "this role")
	company := utils.GetStringOrDefault(req.Company, "a leading company")
	interviewer := utils.GetStringOrDefault(req.InterviewerName, "Arya")

	questionNumber := req.QuestionNumber
	if questionNumber < 1 {
		questionNumber = 1
	}
	totalQuestions := req.TotalQuestions
	if totalQuestions < 1 {
		totalQuestions = 5
	}

	system := fmt.Sprintf("You are %s, an AI Interview Coach and Senior Hiring Manager conducting a REAL job interview for %s at %s. You are professional, thorough, and ask probing questions. You speak naturally and warmly, but maintain high standards. You're known for your tough but fair interview style.", interviewer, position, company)

	var user string
	switch req.Stage {
	case "intro":
		user = fmt.Sprintf("Give a brief professional introduction (3-4 sentences max). Greet warmly, introduce yourself as %s, mention %d questions, and ask if ready to begin.", interviewer, totalQuestions)
	case "question":
		user = fmt.Sprintf("Ask ONE %s interview question for %s. Question #%d/%d. Be direct and specific. Output ONLY the question.", QuestionCategory(questionNumber), position, questionNumber, totalQuestions)
	case "followup":
		user = fmt.Sprintf("Brief response to: %q. Either acknowledge and move on, or ask ONE short follow-up. Max 2 sentences.", req.PreviousAnswer)
	case "closing":
		user = "End the interview in 2-3 sentences. Thank them, mention next steps, and wish them well."
	}

	return Prompt{
		System: system,
		User:   user,
		Params: GenerationParams{Temperature: 0.7, MaxTokens: 250, FastModel: true},
	}
}

// Report builds the final debrief prompt. The average is computed by the
// caller and interpolated so the model and the verdict agree on one number.
func Report(req *models.InterviewReportRequest, averageScore float64) Prompt {
	position := utils.GetStringOrDefault(req.Position, "this role")
	company := utils.GetStringOrDefault(req.Company, "the company")
	candidate := utils.GetStringOrDefault(req.CandidateName, "Candidate")

	qaLines := make([]string, 0, len(req.QuestionsAndAnswers))
	for i, qa := range req.QuestionsAndAnswers {
		qaLines = append(qaLines, fmt.Sprintf("Q%d: %s\nAnswer: %s\nScore: %.0f/100", i+1, qa.Question, qa.Answer, qa.Score))
	}

	user := fmt.Sprintf(`Generate a comprehensive interview report for %s who interviewed for %s at %s.

INTERVIEW SUMMARY:
%s

Average Score: %.0f/100

Generate a professional interview report with:
1. **Overall Verdict**: Would you hire? (Strong Hire / Hire / Maybe / No Hire)
2. **Summary**: 2-3 sentence overview of performance
3. **Key Strengths**: Top 3 things they did well
4. **Areas for Development**: Top 3 things to improve
5. **Recommendation**: Specific advice for their next interview
6. **Score Breakdown**: Communication, Technical/Role Fit, Problem Solving, Cultural Fit (each /100)

Be honest and constructive. This should feel like a real post-interview debrief.`, candidate, position, company, strings.Join(qaLines, "\n\n"), averageScore)

	return Prompt{
		System: "You are a senior recruiter writing a post-interview report. Be professional, honest, and constructive.",
		User:   user,
		Params: GenerationParams{Temperature: 0.6, MaxTokens: 1500},
	}
}

// SkillAssessment builds the skill-gap assessment prompt
func SkillAssessment(req *models.SkillAssessmentRequest) Prompt {
	industry := utils.GetStringOrDefault(req.Industry, "Not specified")
	skills := "Not specified"
	if len(req.CurrentSkills) > 0 {
		skills = strings.Join(req.CurrentSkills, ", ")
	}

	user := fmt.Sprintf(`As a strict career advisor, provide a REALISTIC skill gap assessment for:

Current Role: %q
Target Role: %q
Industry: %s
Current Skills: %s

Be HONEST and DIRECT:
- Don't inflate their current levels to make them feel good
- Identify the REAL gaps that could prevent them from getting hired
- Give brutally honest feedback about what they're missing
- Provide specific, actionable steps (not generic advice)

Return as JSON array:
[
  {
    "skillName": "Specific skill name",
    "currentLevel": 1-10 (be realistic, most people are 3-6),
    "targetLevel": 1-10 (what top companies expect),
    "feedback": "Honest assessment of their gap and why it matters",
    "recommendations": ["Specific action 1", "Specific action 2", "Specific action 3"]
  }
]

Include 5-7 CRITICAL skills. Focus on what will actually get them hired or rejected.`, req.CurrentRole, req.TargetRole, industry, skills)

	return Prompt{
		System: "You are a tough but fair career advisor. You give realistic assessments, not feel-good feedback. You've seen too many people fail because no one told them the truth about their gaps.",
		User:   user,
		Params: GenerationParams{Temperature: 0.7, MaxTokens: 2000},
	}
}

// LearningPath builds the learning path generation prompt
func LearningPath(req *models.LearningPathRequest) Prompt {
	skills := "general skills"
	if len(req.SkillsToImprove) > 0 {
		skills = strings.Join(req.SkillsToImprove, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create an INTENSIVE learning path for someone serious about becoming a %q.\n\n", req.TargetRole)
	fmt.Fprintf(&sb, "Skills to develop: %s\n", skills)
	if req.LearningStyle != "" {
		fmt.Fprintf(&sb, "Learning style: %s\n", req.LearningStyle)
	}
	if req.TimeAvailable != "" {
		fmt.Fprintf(&sb, "Time available: %s\n", req.TimeAvailable)
	}
	fmt.Fprintf(&sb, `
This should be a RIGOROUS program that will actually prepare them, not a gentle introduction.

Return as JSON:
{
  "title": "Intensive Path to %s",
  "description": "What they'll achieve and the commitment required",
  "estimatedTime": "X weeks/months (be realistic)",
  "difficulty": "beginner/intermediate/advanced",
  "modules": [
    {
      "title": "Module name",
      "description": "What they'll learn and why it matters",
      "type": "video/article/exercise/project",
      "duration": "X hours",
      "deliverable": "What they should produce to prove mastery"
    }
  ]
}

Include 8-12 challenging modules with real deliverables.`, req.TargetRole)

	return Prompt{
		System: "You create intensive, no-fluff learning paths. Every module has a clear purpose and deliverable. You don't waste people's time with theory - you focus on what actually gets results.",
		User:   sb.String(),
		Params: GenerationParams{Temperature: 0.7, MaxTokens: 2500},
	}
}

// MentorChat builds the mentor turn with the caller-supplied history spliced
// in order between the system prompt and the new message
func MentorChat(req *models.MentorChatRequest) Prompt {
	system := `You are Arya, a direct and honest career mentor. You care about people's success, which means you:

- Give HONEST feedback, even when it's uncomfortable
- Don't sugarcoat reality about job markets or competition
- Push people to be specific and take action
- Challenge vague goals or unrealistic timelines
- Share hard truths that others won't tell them

You're supportive but not soft. You want them to succeed, so you tell them what they NEED to hear, not what they want to hear.`
	if req.UserContext != "" {
		system += fmt.Sprintf("\n\nContext: %s", req.UserContext)
	}

	return Prompt{
		System:  system,
		User:    req.Message,
		History: req.ConversationHistory,
		Params:  GenerationParams{Temperature: 0.7, MaxTokens: 1000},
	}
}

// LearningResources builds the resource curation prompt
func LearningResources(req *models.LearningResourcesRequest) Prompt {
	difficulty := utils.GetStringOrDefault(req.Difficulty, "beginner")

	forRole := ""
	if req.TargetRole != "" {
		forRole = fmt.Sprintf(" for someone becoming a %s", req.TargetRole)
	}

	user := fmt.Sprintf(`Find the BEST free learning resources for %q%s.
Difficulty: %s

Provide REAL, EXISTING resources with actual URLs and YouTube video IDs:

Return as JSON:
{
  "skill": %q,
  "videos": [
    {
      "title": "Video title",
      "channel": "Channel name (freeCodeCamp, Traversy Media, CS50, etc.)",
      "videoId": "actual_11_char_youtube_id",
      "duration": "X:XX:XX",
      "description": "Why this video is valuable",
      "difficulty": "beginner/intermediate/advanced"
    }
  ],
  "courses": [
    {
      "title": "Course name",
      "platform": "Coursera/edX/Khan Academy/freeCodeCamp",
      "url": "https://actual-url.com",
      "duration": "X hours/weeks",
      "description": "What you'll learn",
      "isFree": true
    }
  ],
  "articles": [
    {
      "title": "Article title",
      "source": "MDN/Official Docs/Dev.to",
      "url": "https://actual-url.com",
      "description": "Why read this",
      "readTime": "X min"
    }
  ],
  "projectIdeas": [
    {
      "title": "Project name",
      "description": "Build this to practice",
      "skills": ["skill1", "skill2"],
      "difficulty": "beginner/intermediate/advanced"
    }
  ]
}

Include 5-7 videos, 3-4 courses, 3-4 articles, 2-3 projects. Use REAL resources only.`, req.Skill, forRole, difficulty, req.Skill)

	return Prompt{
		System: "You are an expert curator of educational content. You know real YouTube video IDs, actual course URLs, and legitimate learning resources. Only recommend resources that actually exist.",
		User:   user,
		Params: GenerationParams{Temperature: 0.5, MaxTokens: 3000},
	}
}

// ATSCV builds the CV generation prompt. Every candidate fact is interpolated
// with an explicit fallback so the model never sees a dangling placeholder.
func ATSCV(req *models.CVRequest) Prompt {
	info := req.PersonalInfo
	if info == nil {
		info = &models.PersonalInfo{}
	}

	skills := "Not provided"
	if len(req.Skills) > 0 {
		skills = strings.Join(req.Skills, ", ")
	}

	user := fmt.Sprintf(`Generate an ATS-OPTIMIZED CV using the EXACT information provided below. DO NOT invent or change any facts - only enhance the wording to be more professional and ATS-friendly.

=== CANDIDATE INFORMATION ===
Full Name: %s
Email: %s
Phone: %s
Address: %s
LinkedIn: %s
GitHub: %s
Portfolio: %s

Target Position: %s
Professional Summary provided: %s

=== SKILLS ===
%s

Languages: %s

=== WORK EXPERIENCE ===
%s

=== EDUCATION ===
%s

=== CERTIFICATIONS ===
%s

=== PROJECTS ===
%s

=== INSTRUCTIONS ===
Create THREE versions of the professional summary:
1. originalSummary: Return their exact summary as-is
2. polishedSummary: Refine their summary to sound more professional (keep same meaning)
3. atsSummary: Create a powerful ATS-optimized summary with industry keywords, metrics, and standout phrases for %s

For SKILLS:
- polishedSkills: Use ONLY skills from input, organized into categories
- atsSkills: Add relevant industry-standard skills for %s that would help them stand out

For EXPERIENCE: Create polished bullet points using the information given

Return ONLY valid JSON in this exact format:
{
  "originalSummary": %q,
  "polishedSummary": "Professional version of their summary keeping same meaning",
  "atsSummary": "Powerful ATS-optimized summary with keywords, metrics language, and standout phrases for %s. Make it compelling and include industry buzzwords.",
  "professionalSummary": "",
  "skills": {
    "technical": ["ONLY skills from input that are technical"],
    "soft": ["ONLY skills from input that are soft skills"],
    "tools": ["ONLY skills from input that are tools"]
  },
  "atsSkills": {
    "technical": ["Original technical skills PLUS additional relevant skills for %s"],
    "soft": ["Original soft skills PLUS leadership, communication skills valued for %s"],
    "tools": ["Original tools PLUS industry-standard tools for %s"]
  },
  "experience": [
    {
      "title": "EXACT job title from input",
      "company": "EXACT company name from input",
      "duration": "EXACT dates from input",
      "bullets": ["Polished version of their experience description"]
    }
  ],
  "education": [
    {
      "degree": "EXACT degree from input",
      "institution": "EXACT institution from input",
      "year": "EXACT year from input",
      "highlights": []
    }
  ],
  "projects": ["EXACT project names from input"],
  "certifications": ["EXACT certifications from input"],
  "atsKeywords": ["powerful keywords for %s that ATS systems scan for"],
  "improvementTips": ["Specific tips to improve this CV"]
}`,
		utils.GetStringOrDefault(info.Name, "Not provided"),
		utils.GetStringOrDefault(info.Email, "Not provided"),
		utils.GetStringOrDefault(info.Phone, "Not provided"),
		utils.GetStringOrDefault(info.Address, "South Africa"),
		info.LinkedIn,
		info.GitHub,
		info.Portfolio,
		req.TargetRole,
		utils.GetStringOrDefault(info.Summary, "Not provided"),
		skills,
		utils.GetStringOrDefault(info.Languages, "Not provided"),
		utils.GetStringOrDefault(req.Experience, "No experience provided"),
		utils.GetStringOrDefault(req.Education, "No education provided"),
		utils.GetStringOrDefault(req.Achievements, "No certifications provided"),
		utils.GetStringOrDefault(req.Projects, "No projects provided"),
		req.TargetRole,
		req.TargetRole,
		info.Summary,
		req.TargetRole,
		req.TargetRole,
		req.TargetRole,
		req.TargetRole,
		req.TargetRole,
	)

	return Prompt{
		System: "You are an expert ATS CV writer. Your job is to take the user's EXACT information and format it into an ATS-optimized CV. NEVER invent information - only use what is provided. Enhance wording to be professional but keep all facts accurate.",
		User:   user,
		Params: GenerationParams{Temperature: 0.3, MaxTokens: 3500},
	}
}

// JobSearch builds the job market summary prompt
func JobSearch(req *models.JobSearchRequest) Prompt {
	location := utils.GetStringOrDefault(req.Location, "South Africa")
	experience := utils.GetStringOrDefault(req.Experience, "entry")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Find REAL job opportunities for %q in %s.\n\n", req.TargetRole, location)
	fmt.Fprintf(&sb, "Experience level: %s\n", experience)
	if len(req.Skills) > 0 {
		fmt.Fprintf(&sb, "Key skills: %s\n", strings.Join(req.Skills, ", "))
	}
	fmt.Fprintf(&sb, `
Provide actual job listings that exist on major job boards. Include:
1. Real company names hiring for this role in %s
2. Actual job board URLs where they can apply
3. Salary ranges typical for %s
4. Key requirements

Return as JSON:
{
  "searchQuery": %q,
  "location": %q,
  "totalEstimated": "Approximate number of openings",
  "salaryRange": {
    "min": "R XX,XXX",
    "max": "R XX,XXX",
    "currency": "ZAR"
  },
  "jobs": [
    {
      "title": "Exact job title",
      "company": "Real company name",
      "location": "City, Country",
      "type": "Full-time/Part-time/Contract/Remote",
      "salary": "R XX,XXX - R XX,XXX per month (if available)",
      "description": "Brief job description",
      "requirements": ["Req 1", "Req 2", "Req 3"],
      "applyUrl": "https://actual-job-board-link.com",
      "source": "LinkedIn/Indeed/Careers24/PNet/Glassdoor",
      "postedDate": "Recent/This week/This month"
    }
  ],
  "jobBoards": [
    {
      "name": "Job Board Name",
      "searchUrl": "https://jobboard.com/search?q=%s&location=%s",
      "description": "Best for X type of jobs"
    }
  ],
  "tips": ["Tip for applying to %s roles", "What companies look for"]
}

Include 8-10 realistic job opportunities from real companies and job boards in %s.
Use actual job board search URLs that will show relevant results.`,
		location, location,
		req.TargetRole, location,
		url.QueryEscape(req.TargetRole), url.QueryEscape(location),
		req.TargetRole, location)

	return Prompt{
		System: fmt.Sprintf("You are a job market expert for %s. You know real companies, actual salary ranges, and legitimate job boards. Provide realistic, actionable job search results with real URLs to job boards.", location),
		User:   sb.String(),
		Params: GenerationParams{Temperature: 0.6, MaxTokens: 3500},
	}
}
