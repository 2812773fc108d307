package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"careerprep-utils/internal/config"
	"careerprep-utils/internal/llm"
	"careerprep-utils/pkg/models"
)

// fakeProvider records the last completion request and returns a canned result
type fakeProvider struct {
	completion *models.Completion
	err        error
	calls      int
	lastReq    models.CompletionRequest
}

func (f *fakeProvider) Complete(ctx context.Context, req models.CompletionRequest) (*models.Completion, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func (f *fakeProvider) IsHealthy(ctx context.Context) error { return nil }

func (f *fakeProvider) GetProviderName() string { return "fake" }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = "openai"
	cfg.LLM.APIKey = "test-key"
	cfg.LLM.Model = "gpt-4"
	cfg.LLM.FastModel = "gpt-3.5-turbo"
	cfg.LLM.MaxTokens = 2000
	cfg.LLM.Temperature = 0.7
	return cfg
}

func testManager(provider llm.Provider) *llm.Manager {
	return llm.NewManagerWithProvider(testConfig(), provider)
}

func textProvider(content string) *fakeProvider {
	return &fakeProvider{completion: &models.Completion{Content: content}}
}

// postJSON invokes a handler directly with a JSON body, bypassing the router
func postJSON(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func getRequest(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var errResp models.ErrorResponse
	decodeBody(t, rec, &errResp)
	return errResp
}
