package detection

import (
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// financialKeywordRules covers money-transfer demands, credential and
// banking-detail requests, advance-fee, lottery, investment, loan and
// refund scams. Matched against the lower-cased message.
var financialKeywordRules = []rule{
	keywordRule(`Direct money transfer request`, 20, "send money", "transfer money", "send amount", "deposit money"),
	keywordRule(`UPI payment request — verify legitimacy`, 10, "upi", "google pay", "gpay", "phonepe", "paytm", "bhim"),
	keywordRule(`Advance fee demand — classic fraud indicator`, 18, "processing fee", "registration fee", "verification fee", "advance fee", "token amount"),
	keywordRule(`OTP/verification code request — NEVER share`, 22, "otp", "one time password", "verification code", "security code"),
	keywordRule(`Card details requested — phishing attempt`, 22, "credit card", "debit card", "card number", "cvv", "expiry date"),
	keywordRule(`Bank account details requested`, 18, "bank account", "account number", "ifsc", "bank details", "account details"),
	keywordRule(`Banking PIN/password requested`, 22, "pin", "atm pin", "mpin", "net banking password"),
	keywordRule(`Fake KYC update scam`, 16, "kyc", "kyc update", "kyc expired", "pan link"),
	keywordRule(`Lottery/prize scam — unsolicited winnings`, 18, "lottery", "prize", "winner", "won", "congratulations you", "selected"),
	keywordRule(`Investment scam — unrealistic returns promised`, 20, "guaranteed return", "double money", "triple money", "risk free", "100% profit"),
	keywordRule(`Fake loan offer scam`, 14, "loan approved", "pre-approved loan", "instant loan", "loan offer"),
	keywordRule(`Fake refund/compensation scam`, 12, "insurance claim", "refund", "cashback", "compensation"),
	keywordRule(`Crypto/forex investment scam indicators`, 14, "crypto", "bitcoin", "trading", "forex", "binary option"),
	keywordRule(`Suspicious link click request`, 14, "click here", "click below", "click this link", "click the link"),
}

// financialStructuralRules are regex checks against the raw message:
// explicit currency amounts, embedded mobile numbers, and URLs.
var financialStructuralRules = []rule{
	regexRule(`(?i)₹\s*[\d,]+|rs\.?\s*[\d,]+|\d+\s*(?:lakh|crore|thousand|hundred|rupees?)`, `Specific monetary amounts mentioned — financial bait or demand`, 8),
	regexRule(`(?:\+91|0)?[\s-]?[6-9]\d{9}`, `Phone number embedded in message — possible scam contact number`, 6),
	regexRule(`(?i)https?://[^\s]+|www\.[^\s]+|bit\.ly|tinyurl|goo\.gl`, `URLs/links detected — verify before clicking`, 10),
}

// FinancialFraudStrategy detects monetary demands, payment-rail mentions and
// requests for banking credentials.
type FinancialFraudStrategy struct{}

// NewFinancialFraudStrategy creates a new financial fraud strategy.
func NewFinancialFraudStrategy() *FinancialFraudStrategy {
	return &FinancialFraudStrategy{}
}

// Name returns the strategy name
func (s *FinancialFraudStrategy) Name() string {
	return "Financial Fraud"
}

// Detect scores financial fraud indicators: keyword categories first, then
// the structural amount/phone/URL checks.
func (s *FinancialFraudStrategy) Detect(msg domain.Message) Result {
	res := evalRules(strings.ToLower(msg.Content), financialKeywordRules)

	structural := evalRules(msg.Content, financialStructuralRules)
	res.Score += structural.Score
	res.Patterns = append(res.Patterns, structural.Patterns...)

	return res
}
