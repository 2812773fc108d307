package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"careerprep-utils/internal/config"
	"careerprep-utils/internal/logging"
	"careerprep-utils/pkg/models"
	"careerprep-utils/pkg/utils"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAIProvider implements the LLM provider interface against any
// OpenAI-compatible chat completions endpoint
type OpenAIProvider struct {
	client  *http.Client
	config  *config.Config
	baseURL string
	logger  logging.Logger
}

// NewOpenAIProvider creates a new OpenAI provider instance
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenAIProvider{
		client:  &http.Client{Timeout: timeout},
		config:  cfg,
		baseURL: cfg.LLM.BaseURL,
		logger:  logging.GetGlobalLogger(),
	}
}

type chatCompletionsBody struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *models.Usage `json:"usage"`
}

// Complete sends one chat completions request and returns the first choice
func (p *OpenAIProvider) Complete(ctx context.Context, req models.CompletionRequest) (*models.Completion, error) {
	startTime := time.Now()

	body, err := json.Marshal(chatCompletionsBody{
		Model:       req.Model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.chatCompletionsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.LLM.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("status=%d: %s", resp.StatusCode, parseErrorBody(resp))
	}

	var decoded chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("empty choices in completion response")
	}

	p.logger.Debug("Completion request finished", map[string]interface{}{
		"model":           req.Model,
		"messages":        len(req.Messages),
		"processing_time": utils.FormatDuration(time.Since(startTime)),
		"provider":        "openai",
	})

	return &models.Completion{
		Content: decoded.Choices[0].Message.Content,
		Usage:   decoded.Usage,
	}, nil
}

// IsHealthy checks if the provider is configured. No network call is made:
// every invocation gets exactly one upstream request.
func (p *OpenAIProvider) IsHealthy(ctx context.Context) error {
	if p.config.LLM.APIKey == "" {
		return fmt.Errorf("OpenAI API key not configured - set LLM_API_KEY environment variable")
	}
	return nil
}

// GetProviderName returns the name of the LLM provider
func (p *OpenAIProvider) GetProviderName() string {
	return "openai"
}

func (p *OpenAIProvider) chatCompletionsURL() string {
	url := strings.TrimRight(p.baseURL, "/")
	if url == "" {
		url = defaultOpenAIBaseURL
	}
	url = strings.TrimSuffix(url, "/chat/completions")
	return url + "/chat/completions"
}

func parseErrorBody(resp *http.Response) string {
	var eresp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&eresp); err == nil && strings.TrimSpace(eresp.Error.Message) != "" {
		return eresp.Error.Message
	}
	return resp.Status
}
