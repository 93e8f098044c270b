package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageType identifies the communication channel a message arrived through.
type MessageType string

const (
	MessageTypeWhatsApp       MessageType = "whatsapp"
	MessageTypeEmail          MessageType = "email"
	MessageTypeCallTranscript MessageType = "call_transcript"
	MessageTypePaymentRequest MessageType = "payment_request"
	MessageTypeSMS            MessageType = "sms"
	MessageTypeOther          MessageType = "other"
)

// Message is the input to scam analysis: the raw text plus the channel it
// arrived on and, when known, the sender's email address.
//
// Content may be arbitrary UTF-8, including empty. SenderEmail is optional
// and is only consulted by the legitimacy detector.
type Message struct {
	Content     string      `json:"content"`
	Type        MessageType `json:"message_type"`
	SenderEmail string      `json:"sender_email,omitempty"`
}

// ScamAnalysisResult is the verdict produced by one analysis call. It is
// immutable once constructed and carries no identity of its own; the case
// layer embeds it when a report is filed.
type ScamAnalysisResult struct {
	IsScam         bool     `json:"is_scam"`
	Confidence     int      `json:"confidence"` // 0..100
	FraudCategory  string   `json:"fraud_category"`
	RiskLevel      string   `json:"risk_level"` // "low", "medium", "high", "critical"
	FinancialRisk  string   `json:"financial_risk"`
	ScamPatterns   []string `json:"scam_patterns"`
	Explanation    string   `json:"explanation"`
	SuggestedReply string   `json:"suggested_reply"`
	ActionSteps    []string `json:"action_steps"`
}

// Case lifecycle statuses mirroring the reporting platform's review workflow.
const (
	CaseStatusOpen               = "open"
	CaseStatusUnderInvestigation = "under_investigation"
	CaseStatusResolved           = "resolved"
	CaseStatusDismissed          = "dismissed"
)

// ScamCase is a citizen-submitted report: the original message, who submitted
// it, and the analysis verdict attached at submission time.
type ScamCase struct {
	ID              uuid.UUID          `json:"id"`
	CaseRef         string             `json:"case_ref"` // e.g. "SC-2026-4F7K2A"
	SubmittedBy     string             `json:"submitted_by"`
	ContactEmail    string             `json:"contact_email,omitempty"`
	ContactPhone    string             `json:"contact_phone,omitempty"`
	SenderEmail     string             `json:"sender_email,omitempty"`
	MessageType     MessageType        `json:"message_type"`
	OriginalMessage string             `json:"original_message"`
	Analysis        ScamAnalysisResult `json:"analysis"`
	Status          string             `json:"status"`
	AssignedTo      string             `json:"assigned_to,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// RiskLevelForConfidence converts a fused 0-100 confidence into a risk tier.
// The "low" bound and the scam verdict bound coincide at 15; anything below
// still reports "low" rather than a separate "none" tier.
func RiskLevelForConfidence(confidence int) string {
	switch {
	case confidence >= 75:
		return "critical"
	case confidence >= 50:
		return "high"
	case confidence >= 25:
		return "medium"
	default:
		return "low"
	}
}
