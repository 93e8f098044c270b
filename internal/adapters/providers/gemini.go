package providers

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiAnalyzer implements ports.Analyzer against the Gemini API. It runs
// the model in JSON mode and validates the decoded verdict.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates a Gemini-backed analyzer. The model name falls
// back to gemini-1.5-flash when empty.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiAnalyzer{client: client, model: model}, nil
}

// Name identifies the backend for logging.
func (a *GeminiAnalyzer) Name() string {
	return "gemini"
}

// Analyze submits the message to Gemini and decodes the JSON verdict.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, msg domain.Message) (*domain.ScamAnalysisResult, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	result, err := a.client.Models.GenerateContent(
		ctx,
		a.model,
		genai.Text(buildAnalysisPrompt(msg)),
		config,
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	return parseAnalysisResponse(result.Text())
}
