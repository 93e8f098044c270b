package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIAnalyzer implements ports.Analyzer for the OpenAI Chat Completions
// API (or any compatible endpoint).
type OpenAIAnalyzer struct {
	baseURL          string
	apiKey           string
	model            string
	client           *http.Client
	maxResponseBytes int64
}

// NewOpenAIAnalyzer creates an OpenAI-backed analyzer. Zero values get
// conservative defaults.
func NewOpenAIAnalyzer(baseURL, apiKey, model string, timeout time.Duration) *OpenAIAnalyzer {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &OpenAIAnalyzer{
		baseURL:          baseURL,
		apiKey:           apiKey,
		model:            model,
		maxResponseBytes: 4 * 1024 * 1024,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type openAIChatRequest struct {
	Model          string              `json:"model"`
	Messages       []openAIChatMessage `json:"messages"`
	ResponseFormat *openAIResponseFmt  `json:"response_format,omitempty"`
	Temperature    float64             `json:"temperature"`
}

type openAIResponseFmt struct {
	Type string `json:"type"`
}

type openAIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatResponse struct {
	Choices []openAIChatChoice `json:"choices"`
}

type openAIChatChoice struct {
	Message      openAIChatMessage `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

type openAIErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Name identifies the backend for logging.
func (a *OpenAIAnalyzer) Name() string {
	return "openai"
}

// Analyze submits the message as a JSON-mode chat completion and decodes the
// verdict from the first choice.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, msg domain.Message) (*domain.ScamAnalysisResult, error) {
	reqBody := openAIChatRequest{
		Model: a.model,
		Messages: []openAIChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildAnalysisPrompt(msg)},
		},
		ResponseFormat: &openAIResponseFmt{Type: "json_object"},
		Temperature:    0.3,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal openai request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/chat/completions", a.baseURL),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("create openai request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call openai: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := a.readBounded(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var errBody openAIErrorResponse
		if err := json.Unmarshal(respBody, &errBody); err != nil {
			return nil, fmt.Errorf("openai error status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("openai error: %s (type=%s)", errBody.Error.Message, errBody.Error.Type)
	}

	var chatResp openAIChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("openai response had no choices")
	}

	return parseAnalysisResponse(chatResp.Choices[0].Message.Content)
}

func (a *OpenAIAnalyzer) readBounded(r io.Reader) ([]byte, error) {
	limited := io.LimitReader(r, a.maxResponseBytes+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}
	if int64(len(body)) > a.maxResponseBytes {
		return nil, fmt.Errorf("openai response exceeded limit (%d bytes)", a.maxResponseBytes)
	}
	return body, nil
}
