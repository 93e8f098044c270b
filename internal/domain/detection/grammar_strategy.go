package detection

import (
	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// Weight added when a short message (4-7 words) already tripped a grammar
// rule. Short probing messages with broken English compound suspicion.
// Empirically tuned; kept as-is for behavioural compatibility.
const shortMessageGrammarBonus = 5

// grammarRules catches broken-English constructs typical of scripted,
// non-native scam messages. Matched against the raw message text.
var grammarRules = []rule{
	regexRule(`(?i)\bi\s+m\b`, `Broken English: "I m" instead of "I am"`, 12),
	regexRule(`(?i)\bu\s+r\b`, `Internet slang used in formal context: "u r"`, 10),
	regexRule(`(?i)\bwe\s+r\b`, `Poor grammar: "we r" instead of "we are"`, 10),
	regexRule(`(?i)\ba\s+[aeiou]\w+`, `Incorrect article usage (e.g., "a" before vowel sound)`, 8),
	regexRule(`(?i)\bur\b`, `SMS language in formal message: "ur"`, 8),
	regexRule(`(?i)\b(pls|plz|plzz)\b`, `Informal abbreviation: "pls/plz"`, 6),
	regexRule(`(?i)kindly\s+do\s+the\s+needful`, `Formal scripted phrase: "kindly do the needful"`, 10),
	regexRule(`(?i)today\s+itself`, `Unnatural phrasing: "today itself"`, 8),
	regexRule(`(?i)\b(share|send|revert)\s+same\b`, `Unnatural phrasing: "(share/send/revert) same"`, 6),
	regexRule(`(?i)revert\s+back`, `Redundant phrasing: "revert back"`, 5),
	regexRule(`(?i)\b(he|she|it)\s+(are|were|have)\b`, `Subject-verb disagreement detected`, 10),
	regexRule(`(?i)\b(they|we|you)\s+(is|was|has)\b`, `Subject-verb disagreement detected`, 10),
	regexRule(`(?i)\bi\s+(is|has|was)\b`, `Subject-verb disagreement: "I is/has/was"`, 12),
	regexRule(`(?i)[!]{3,}`, `Excessive exclamation marks (!!!) — typical of scam urgency`, 7),
	regexRule(`(?i)[?]{3,}`, `Excessive question marks (???) — pressure tactic`, 5),
	regexRule(`[A-Z\s]{15,}`, `Excessive use of CAPS — shouting/urgency tactic`, 8),
	regexRule(`(?i)\b(dont|cant|wont|doesnt|didnt|isnt|wasnt|hasnt|havent|shouldnt|wouldnt|couldnt)\b`, `Missing apostrophes in contractions (dont, cant)`, 6),
	regexRule(`(?i)your\s+(welcome|right|wrong|the\s+best|a\s+winner)`, `Common grammar mistake: "your" instead of "you're"`, 7),
	regexRule(`(?i)there\s+(account|money|bank|number)`, `Common grammar mistake: "there" instead of "their"`, 7),
	{match: hasAdjacentRepeatedWord, desc: `Repeated word detected — may indicate poor composition`, weight: 4},
	regexRule(`(?m)^.{5,20}$`, `Very short message — potential social probing`, 3),
	regexRule(`(?im)^(am|is|are|has|have|was)\s`, `Sentence starts with auxiliary verb — unnatural phrasing`, 6),
	regexRule(`(?i)\bmyself\s+[A-Z]`, `Indian English pattern: "myself [Name]" introduction`, 8),
	regexRule(`(?i)[a-z]0[a-z]`, `Suspicious character substitution (0 for O)`, 5),
}

// GrammarStrategy detects grammar and language anomalies common to scam
// scripts.
type GrammarStrategy struct{}

// NewGrammarStrategy creates a new grammar/language anomaly strategy.
func NewGrammarStrategy() *GrammarStrategy {
	return &GrammarStrategy{}
}

// Name returns the strategy name
func (s *GrammarStrategy) Name() string {
	return "Grammar & Language Anomalies"
}

// Detect scores grammar anomalies in the message text.
func (s *GrammarStrategy) Detect(msg domain.Message) Result {
	res := evalRules(msg.Content, grammarRules)

	// A short message that already shows grammar issues is more suspicious.
	words := len(splitWords(msg.Content))
	if words > 3 && words < 8 && len(res.Patterns) > 0 {
		res.Score += shortMessageGrammarBonus
	}

	return res
}
