package detection

import (
	"testing"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGrammarStrategy_Detect(t *testing.T) {
	strategy := NewGrammarStrategy()

	tests := []struct {
		name           string
		message        string
		expectScore    int
		expectPatterns int
	}{
		{
			name:           "Clean English sentence",
			message:        "The quarterly report meeting has been scheduled for next Thursday afternoon in conference room two.",
			expectScore:    0,
			expectPatterns: 0,
		},
		{
			name:    "Broken to-be and SMS slang",
			message: "hello sir i m calling about ur account pls respond",
			// "i m" (12) + "ur" (8) + "pls" (6); 10 words so no short-message bonus
			expectScore:    26,
			expectPatterns: 3,
		},
		{
			name:    "Kindly do the needful",
			message: "Kindly do the needful and revert back with the payment confirmation at the earliest convenience thanks.",
			// scripted phrase (10) + "revert back" (5)
			expectScore:    15,
			expectPatterns: 2,
		},
		{
			name:    "Missing apostrophes fire once per rule",
			message: "You dont have much time left so you shouldnt wait any longer before responding to this notice.",
			// "dont" and "shouldnt" share one rule (6)
			expectScore:    6,
			expectPatterns: 1,
		},
		{
			name:    "Subject-verb disagreement",
			message: "He have received the documents and they was sent to the wrong address by the courier yesterday evening.",
			// "he have" (10) + "they was" (10)
			expectScore:    20,
			expectPatterns: 2,
		},
		{
			name:    "Myself introduction with short-message bonus",
			message: "Hello myself Rajesh from bank office",
			// "myself [Name]" (8); 6 words with a pattern triggered adds 5
			expectScore:    13,
			expectPatterns: 1,
		},
		{
			name:           "Excessive exclamation marks",
			message:        "Hurry!!! This offer will not wait for anyone and closes at midnight tonight so respond quickly now!!!",
			expectScore:    7,
			expectPatterns: 1,
		},
		{
			name:           "Repeated word",
			message:        "Please please respond to this notification about the delivery schedule for your package arriving sometime next week.",
			expectScore:    4,
			expectPatterns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := strategy.Detect(domain.Message{Content: tt.message, Type: domain.MessageTypeSMS})
			assert.Equal(t, tt.expectScore, res.Score, "score mismatch, matched: %v", res.Patterns)
			assert.Len(t, res.Patterns, tt.expectPatterns)
		})
	}
}

func TestGrammarStrategy_BonusNeedsExistingPattern(t *testing.T) {
	strategy := NewGrammarStrategy()

	// Short message, but no grammar rule triggered: no bonus applies.
	res := strategy.Detect(domain.Message{Content: "package delivery window changed slightly today", Type: domain.MessageTypeSMS})
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Patterns)
}
