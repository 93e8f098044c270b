package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// systemPrompt pins the model to machine-readable output.
const systemPrompt = "You are a cybercrime analysis AI. Always respond with valid JSON only."

// buildAnalysisPrompt renders the analyst prompt for a message. The sender
// context block is only included when a sender address is known.
func buildAnalysisPrompt(msg domain.Message) string {
	senderContext := ""
	if msg.SenderEmail != "" {
		senderContext = fmt.Sprintf("\nSENDER EMAIL: %s\n(Analyze the sender domain for legitimacy — official domains like @accounts.google.com are legitimate, random Gmail/Yahoo addresses impersonating companies are suspicious)", msg.SenderEmail)
	}

	return fmt.Sprintf(`You are an expert AI cybercrime analyst specializing in digital fraud detection in India. Analyze the following %s message for potential scam/fraud indicators.%s

MESSAGE TO ANALYZE:
"""
%s
"""

Provide your analysis in the following JSON format ONLY (no other text):
{
  "is_scam": true/false,
  "confidence": <number 0-100>,
  "fraud_category": "<category like: Digital Arrest Scam, UPI Fraud, Phishing, Investment Scam, Lottery/Prize Scam, Impersonation, Romance Scam, Job Scam, Loan Scam, Tech Support Scam, Social Engineering, Sextortion, Advance Fee Fraud, Money Mule, Identity Theft, Other>",
  "risk_level": "<low/medium/high/critical>",
  "financial_risk": "<estimated financial exposure description>",
  "scam_patterns": ["<pattern1>", "<pattern2>", ...],
  "explanation": "<detailed explanation of why this is/isn't a scam>",
  "suggested_reply": "<safe reply the victim can send back>",
  "action_steps": ["<step1>", "<step2>", ...]
}

Be thorough in identifying:
- Urgency tactics and pressure
- Authority impersonation (police, CBI, RBI, courts, government officials)
- Financial pressure or money demands
- Personal information requests (Aadhaar, PAN, OTP, bank details)
- Suspicious links/phone numbers
- Emotional manipulation and fear tactics
- Too-good-to-be-true offers
- Grammar/spelling errors as fraud indicators
- Unsolicited contact from strangers
- Social engineering patterns (building trust, romance baiting)
- Messages from unknown numbers/emails claiming to be someone
- Broken English or translated messages typical of scam operations
- Requests to move to different platforms (WhatsApp, Telegram)`,
		msg.Type, senderContext, msg.Content)
}

// parseAnalysisResponse decodes a model response into an analysis result.
// Models sometimes wrap JSON in markdown fences even in JSON mode, so fences
// are stripped before decoding. The decoded shape is validated so a
// hallucinated or truncated response is rejected rather than stored.
func parseAnalysisResponse(content string) (*domain.ScamAnalysisResult, error) {
	cleaned := strings.ReplaceAll(content, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var result domain.ScamAnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}

	if result.Confidence < 0 || result.Confidence > 100 {
		return nil, fmt.Errorf("analysis confidence out of range: %d", result.Confidence)
	}
	switch result.RiskLevel {
	case "low", "medium", "high", "critical":
	default:
		return nil, fmt.Errorf("unknown risk level %q", result.RiskLevel)
	}
	if result.FraudCategory == "" || result.Explanation == "" {
		return nil, fmt.Errorf("analysis response missing required fields")
	}

	return &result, nil
}
