package models

// CompletionRequest is the normalized request sent to a completion provider.
// Exactly one upstream call is made per request.
type CompletionRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// Completion is the provider's first-choice text plus usage metadata when available
type Completion struct {
	Content string
	Usage   *Usage
}
