package detection

import (
	"testing"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFinancialFraudStrategy_Detect(t *testing.T) {
	strategy := NewFinancialFraudStrategy()

	tests := []struct {
		name        string
		message     string
		expectScore int
	}{
		{
			name:        "No financial content",
			message:     "See you at the library this weekend for the study group session.",
			expectScore: 0,
		},
		{
			name:    "OTP request",
			message: "Please tell us the OTP you just received to complete verification.",
			// otp (22)
			expectScore: 22,
		},
		{
			name:    "Lottery with advance fee and amount",
			message: "You are the lucky winner of our lottery! Pay the processing fee of ₹5,000 to claim.",
			// lottery/winner (18) + processing fee (18) + monetary amount (8)
			expectScore: 44,
		},
		{
			name:    "Money transfer with embedded phone and link",
			message: "Send money now to 9876543210 or visit http://bit.ly/claim-now to settle your dues.",
			// send money (20) + phone (6) + url (10)
			expectScore: 36,
		},
		{
			name:    "Card detail phishing",
			message: "Update your credit card number and cvv on the portal to keep the card active.",
			// card details (22)
			expectScore: 22,
		},
		{
			name:    "Investment bait",
			message: "Our plan offers guaranteed return with risk free trading in crypto markets.",
			// guaranteed return (20) + crypto/trading (14)
			expectScore: 34,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := strategy.Detect(domain.Message{Content: tt.message, Type: domain.MessageTypeSMS})
			assert.Equal(t, tt.expectScore, res.Score, "score mismatch, matched: %v", res.Patterns)
		})
	}
}

func TestFinancialFraudStrategy_StructuralPatternsAppendAfterKeywords(t *testing.T) {
	strategy := NewFinancialFraudStrategy()

	res := strategy.Detect(domain.Message{
		Content: "Transfer money to claim ₹25,000 today.",
		Type:    domain.MessageTypePaymentRequest,
	})

	// transfer money (20) + monetary amount (8)
	assert.Equal(t, 28, res.Score)
	assert.Equal(t, []string{
		"Direct money transfer request",
		"Specific monetary amounts mentioned — financial bait or demand",
	}, res.Patterns)
}
