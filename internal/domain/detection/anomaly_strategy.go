package detection

import (
	"regexp"
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

var (
	greetingRe      = regexp.MustCompile(`(?i)\b(hi|hello|hey|good\s+(morning|evening|afternoon|night))\b`)
	introRe         = regexp.MustCompile(`(?i)\b(i\s+(am|m)|my\s+name|myself)\b`)
	hindiMixRe      = regexp.MustCompile(`(?i)\b(karo|kijiye|bhejo|jaldi|paisa|paise|rupay|dedo|batao|bhai|behen|sir\s*ji|madam\s*ji|sahab|achha|theek|haan|nahi|kya|kaise|aapka|tumhara|hamara|yahan|wahan)\b`)
	latinLetterRe   = regexp.MustCompile(`(?i)[a-z]`)
	irregularCapsRe = regexp.MustCompile(`[A-Z]{2}[a-z]+[A-Z]`)
	embeddedPhoneRe = regexp.MustCompile(`(?:\+91|0)?[\s-]?[6-9]\d{9}`)
	embeddedEmailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	intlPhoneRe     = regexp.MustCompile(`\+\d{10,}`)
)

// Emoji frequently used to grab attention in scam broadcasts.
const scamEmojiSet = "💰💵💸🤑🎰🎯🏆🎁🔒⚠️🚨❗‼️💯✅🔥"

// MessageAnomalyStrategy applies structural heuristics: probing short
// messages, mixed-script text, odd capitalization, embedded contact details
// and emoji spam. The international-number check only applies to WhatsApp
// messages, the one place the channel type influences scoring.
type MessageAnomalyStrategy struct{}

// NewMessageAnomalyStrategy creates a new message anomaly strategy.
func NewMessageAnomalyStrategy() *MessageAnomalyStrategy {
	return &MessageAnomalyStrategy{}
}

// Name returns the strategy name
func (s *MessageAnomalyStrategy) Name() string {
	return "Message Anomalies"
}

// Detect scores structural anomalies in the message.
func (s *MessageAnomalyStrategy) Detect(msg domain.Message) Result {
	var res Result
	content := msg.Content

	// A very short message that opens with a greeting or self-introduction
	// is a probing contact from a stranger.
	wordCount := len(splitWords(strings.TrimSpace(content)))
	if wordCount >= 3 && wordCount <= 10 {
		if greetingRe.MatchString(content) || introRe.MatchString(content) {
			res.add(10, `Short unsolicited message with stranger introduction — probing contact`)
		}
	}

	if hindiMixRe.MatchString(content) && latinLetterRe.MatchString(content) {
		res.add(5, `Mixed Hindi-English transliteration — common in local scam operations`)
	}

	if irregularCapsRe.MatchString(content) {
		res.add(4, `Unusual text capitalization patterns`)
	}

	if len(embeddedPhoneRe.FindAllString(content, -1)) >= 2 {
		res.add(8, `Multiple phone numbers in message — suspicious contact details`)
	}

	if len(embeddedEmailRe.FindAllString(content, -1)) >= 1 {
		res.add(5, `Email address embedded in message body`)
	}

	if msg.Type == domain.MessageTypeWhatsApp && intlPhoneRe.MatchString(content) {
		res.add(6, `International phone number format in WhatsApp message`)
	}

	if countScamEmoji(content) >= 3 {
		res.add(6, `Excessive attention-grabbing emojis — marketing/scam tactic`)
	}

	return res
}

func countScamEmoji(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(scamEmojiSet, r) {
			count++
		}
	}
	return count
}
