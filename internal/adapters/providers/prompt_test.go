package providers

import (
	"testing"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := buildAnalysisPrompt(domain.Message{
		Content:     "share your OTP now",
		Type:        domain.MessageTypeSMS,
		SenderEmail: "fraud@example.com",
	})

	assert.Contains(t, prompt, "Analyze the following sms message")
	assert.Contains(t, prompt, "SENDER EMAIL: fraud@example.com")
	assert.Contains(t, prompt, "share your OTP now")
	assert.Contains(t, prompt, `"is_scam"`)
}

func TestBuildAnalysisPrompt_NoSender(t *testing.T) {
	prompt := buildAnalysisPrompt(domain.Message{
		Content: "hello",
		Type:    domain.MessageTypeWhatsApp,
	})

	assert.NotContains(t, prompt, "SENDER EMAIL")
}

func TestParseAnalysisResponse(t *testing.T) {
	const valid = `{
		"is_scam": true,
		"confidence": 85,
		"fraud_category": "Phishing",
		"risk_level": "critical",
		"financial_risk": "High exposure",
		"scam_patterns": ["OTP request"],
		"explanation": "Credential phishing attempt.",
		"suggested_reply": "No.",
		"action_steps": ["Block the sender"]
	}`

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "Plain JSON", content: valid},
		{name: "Markdown fenced", content: "```json\n" + valid + "\n```"},
		{name: "Not JSON", content: "I think this is a scam.", wantErr: true},
		{name: "Empty", content: "", wantErr: true},
		{name: "Confidence out of range", content: `{"is_scam":true,"confidence":150,"fraud_category":"Phishing","risk_level":"high","explanation":"x"}`, wantErr: true},
		{name: "Unknown risk level", content: `{"is_scam":true,"confidence":50,"fraud_category":"Phishing","risk_level":"severe","explanation":"x"}`, wantErr: true},
		{name: "Missing category", content: `{"is_scam":true,"confidence":50,"risk_level":"high","explanation":"x"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseAnalysisResponse(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.IsScam)
			assert.Equal(t, 85, result.Confidence)
			assert.Equal(t, "Phishing", result.FraudCategory)
			assert.Equal(t, "critical", result.RiskLevel)
		})
	}
}
