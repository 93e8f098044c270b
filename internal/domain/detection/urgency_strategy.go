package detection

import (
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// urgencyRules covers deadline pressure, secrecy demands, and verification
// pressure designed to rush the recipient past rational thinking.
var urgencyRules = []rule{
	regexRule(`(?i)\b(immediately|right\s+now|right\s+away|asap|as\s+soon\s+as\s+possible)\b`, `Urgency pressure: demands immediate action`, 12),
	regexRule(`(?i)\b(within\s+\d+\s*(hours?|minutes?|mins?))\b`, `Time-bound pressure with specific deadline`, 14),
	regexRule(`(?i)\b(today\s+only|limited\s+time|offer\s+expires?|last\s+chance|final\s+warning)\b`, `Artificial scarcity / deadline pressure`, 14),
	regexRule(`(?i)\b(act\s+now|do\s+it\s+now|respond\s+now|hurry|don'?t\s+delay)\b`, `Action pressure detected`, 10),
	regexRule(`(?i)\b(or\s+else|otherwise|failing\s+which|if\s+not|consequences)\b`, `Implicit threats for non-compliance`, 12),
	regexRule(`(?i)\b(do\s+not\s+(tell|inform|share|discuss)|keep\s+(it\s+)?secret|confidential|don'?t\s+tell\s+anyone)\b`, `Secrecy demand — classic scam isolation tactic`, 18),
	regexRule(`(?i)\b(this\s+is\s+(very\s+)?urgent|matter\s+is\s+urgent|emergency|serious\s+matter)\b`, `Urgency framing to prevent rational thinking`, 12),
	regexRule(`(?i)\b(verify|confirm|validate|authenticate)\s+(your|the)\s+(identity|details|information|account)`, `Verification pressure — fishing for personal data`, 14),
}

// UrgencyStrategy detects urgency and time-pressure tactics.
type UrgencyStrategy struct{}

// NewUrgencyStrategy creates a new urgency/pressure strategy.
func NewUrgencyStrategy() *UrgencyStrategy {
	return &UrgencyStrategy{}
}

// Name returns the strategy name
func (s *UrgencyStrategy) Name() string {
	return "Urgency & Pressure"
}

// Detect scores urgency and pressure patterns.
func (s *UrgencyStrategy) Detect(msg domain.Message) Result {
	return evalRules(strings.ToLower(msg.Content), urgencyRules)
}
