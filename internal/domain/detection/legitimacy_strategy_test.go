package detection

import (
	"testing"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLegitimacyStrategy_Detect(t *testing.T) {
	strategy := NewLegitimacyStrategy()

	tests := []struct {
		name        string
		message     string
		sender      string
		expectScore int
	}{
		{
			name:        "Neutral chat has no legitimacy evidence",
			message:     "Random chit chat about the weather.",
			expectScore: 0,
		},
		{
			name:    "Genuine Google sign-in notification",
			message: "We noticed a new sign-in to your account. If this was you, you don't need to do anything. This is an automated message.",
			sender:  "no-reply@google.com",
			// domain reference (15) + verified sender (25) + typo-squat check also
			// fires on the genuine spelling (-30) + three notification phrases
			// (18+20+12) + no-demand bonus (10)
			expectScore: 70,
		},
		{
			name:        "Free email claiming to be a bank",
			message:     "Your SBI bank account needs verification.",
			sender:      "sbi.support@gmail.com",
			expectScore: -20,
		},
		{
			name:    "Random throwaway domain",
			message: "You can also view your rewards",
			sender:  "promo@abc123.win",
			// random domain (-15) + optional-action phrase (8)
			expectScore: -7,
		},
		{
			name:    "Order confirmation without sender",
			message: "Your order has been shipped. Order #AB-1234. Transaction ID 99881. Do not reply to this email. © 2025 Example Retail.",
			// delivery notification (10) + order number (10) + transaction ref (8)
			// + no-reply instruction (10) + legal footer (10) + bonus (10)
			expectScore: 58,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := strategy.Detect(domain.Message{
				Content:     tt.message,
				Type:        domain.MessageTypeEmail,
				SenderEmail: tt.sender,
			})
			assert.Equal(t, tt.expectScore, res.Score, "matched: %v", res.Patterns)
		})
	}
}

func TestLegitimacyStrategy_BonusRequiresPositiveEvidence(t *testing.T) {
	strategy := NewLegitimacyStrategy()

	// No demands, but no legitimacy evidence either: the no-demand bonus must
	// not add score on its own.
	res := strategy.Detect(domain.Message{Content: "hello there", Type: domain.MessageTypeEmail})
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Patterns)
}

func TestIsTrustedSenderDomain(t *testing.T) {
	assert.True(t, isTrustedSenderDomain("google.com"))
	assert.True(t, isTrustedSenderDomain("mail.google.com"))
	assert.False(t, isTrustedSenderDomain("google.com.evil.win"))
	assert.False(t, isTrustedSenderDomain("gmail.com"))
}
