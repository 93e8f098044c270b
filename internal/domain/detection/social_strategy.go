package detection

import (
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// socialRules covers unsolicited-stranger openers, trust building, romance
// bait, platform-migration requests and sextortion setups. Matched against
// the lower-cased message.
var socialRules = []rule{
	regexRule(`(?i)\b(hi|hello|hey)\s*(dear|friend|sir|madam|bro|buddy|sweetie|handsome|beautiful)\b`, `Unsolicited greeting to stranger — classic social engineering opener`, 15),
	regexRule(`(?i)\bwant\s+to\s+(talk|chat|speak|connect|be\s+friends?)\b`, `Stranger initiating conversation — social engineering`, 12),
	regexRule(`(?i)\b(i\s+am|i'm|im)\s+a?\s*(girl|boy|woman|man|lady|engineer|doctor|model|nurse|soldier|military)\b`, `Unsolicited self-introduction with profession/gender — trust building`, 14),
	regexRule(`(?i)\bi\s+m\s+a?\s*\w+`, `Broken self-introduction ("I m a...") — common in scam openers`, 14),
	regexRule(`(?i)\bfrom\s+(usa|uk|london|dubai|canada|australia|germany|us|united\s+states|united\s+kingdom)\b`, `Claims foreign location — common in romance/advance fee scams`, 10),
	regexRule(`(?i)\b(lonely|alone|need\s+someone|looking\s+for\s+(love|friendship|partner|companion))\b`, `Emotional manipulation — romance scam indicator`, 18),
	regexRule(`(?i)\b(whatsapp|telegram|signal|hangout|google\s*chat|viber|wechat)\b`, `Requesting move to different messaging platform`, 12),
	regexRule(`(?i)\b(add\s+me|message\s+me|call\s+me|contact\s+me|dm\s+me|ping\s+me)\b`, `Requesting direct private contact`, 10),
	regexRule(`(?i)\b(trust\s+me|believe\s+me|i\s+promise|i\s+swear|honest(ly)?|genuinely?)\b`, `Trust-building language — overemphasis on honesty`, 8),
	regexRule(`(?i)\b(got\s+your\s+(number|contact|profile)|found\s+you|saw\s+your\s+(profile|photo|picture))\b`, `Claims to have found victim's contact — unsolicited reach-out`, 14),
	regexRule(`(?i)\b(wrong\s+number|sorry\s+wrong|oops\s+wrong)\b`, `"Wrong number" tactic — deliberate social engineering opener`, 15),
	regexRule(`(?i)\b(investment\s+opportunity|business\s+(proposal|opportunity|partner)|earn\s+from\s+home)\b`, `Unsolicited business/investment proposal`, 16),
	regexRule(`(?i)\b(part\s*time|work\s*from\s*home|earn\s+\d|daily\s+(income|earning|profit)|₹\s*\d{4,})\b`, `Work-from-home / easy earning scam indicators`, 14),
	regexRule(`(?i)\b(i\s+need\s+your\s+help|please\s+help\s+me|can\s+you\s+help)\b`, `Emotional appeal for help — manipulation tactic`, 8),
	regexRule(`(?i)\b(send\s+me\s+your\s+(photo|pic|picture|selfie|image))\b`, `Requesting personal photos — sextortion setup`, 16),
	regexRule(`(?i)\b(video\s+call|nude|intimate|private\s+photos?|expose|leak)\b`, `Sextortion indicators detected`, 20),
}

// SocialEngineeringStrategy detects manipulation patterns used to build
// false trust with a stranger.
type SocialEngineeringStrategy struct{}

// NewSocialEngineeringStrategy creates a new social engineering strategy.
func NewSocialEngineeringStrategy() *SocialEngineeringStrategy {
	return &SocialEngineeringStrategy{}
}

// Name returns the strategy name
func (s *SocialEngineeringStrategy) Name() string {
	return "Social Engineering"
}

// Detect scores social-engineering patterns in the message.
func (s *SocialEngineeringStrategy) Detect(msg domain.Message) Result {
	return evalRules(strings.ToLower(msg.Content), socialRules)
}
