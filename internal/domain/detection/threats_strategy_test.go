package detection

import (
	"testing"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestThreatAuthorityStrategy_Detect(t *testing.T) {
	strategy := NewThreatAuthorityStrategy()

	tests := []struct {
		name        string
		message     string
		expectScore int
	}{
		{
			name:        "Benign message",
			message:     "Your table reservation for Saturday evening has been confirmed, see you then.",
			expectScore: 0,
		},
		{
			name:    "Digital arrest with agency impersonation",
			message: "This is CBI. You are under digital arrest for money laundering.",
			// digital arrest (25) + serious crimes (22) + central agency (22)
			expectScore: 69,
		},
		{
			name:    "Category weight awarded once despite multiple keyword hits",
			message: "An arrest warrant has been issued, a non-bailable warrant is pending against you.",
			// both variants belong to the fake-warrant category (22)
			expectScore: 22,
		},
		{
			name:    "Customs parcel seizure",
			message: "Customs has informed us that your parcel seized at the airport contained narcotics.",
			// serious crimes (22) + customs/parcel (20)
			expectScore: 42,
		},
		{
			name:    "Account freeze with police impersonation",
			message: "The cyber cell has ordered that your account blocked status will continue until you cooperate.",
			// police impersonation (20) + account freeze (16)
			expectScore: 36,
		},
		{
			name:        "Imprisonment threat",
			message:     "Pay the penalty today or you will go to jail for seven years.",
			expectScore: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := strategy.Detect(domain.Message{Content: tt.message, Type: domain.MessageTypeCallTranscript})
			assert.Equal(t, tt.expectScore, res.Score, "score mismatch, matched: %v", res.Patterns)
		})
	}
}
