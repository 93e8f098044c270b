package detection

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// trustedDomains are official domains whose mention in the message body (or
// match against the sender's domain) counts toward legitimacy.
var trustedDomains = []string{
	"google.com", "accounts.google.com", "myaccount.google.com",
	"microsoft.com", "apple.com", "icloud.com",
	"amazon.in", "amazon.com", "flipkart.com",
	"sbi.co.in", "hdfcbank.com", "icicibank.com", "axisbank.com", "kotak.com",
	"paytm.com", "phonepe.com",
	"github.com", "linkedin.com", "facebook.com", "instagram.com",
	"gov.in", "nic.in", "india.gov.in",
	"irctc.co.in", "npci.org.in",
}

// trustedSenderDomains are sender domains that earn a strong boost on an
// exact or subdomain match.
var trustedSenderDomains = []string{
	"google.com", "accounts.google.com", "youtube.com",
	"microsoft.com", "outlook.com", "live.com",
	"apple.com", "icloud.com",
	"amazon.com", "amazon.in", "flipkart.com",
	"sbi.co.in", "hdfcbank.com", "icicibank.com", "axisbank.com",
	"paytm.com", "phonepe.com", "razorpay.com",
	"github.com", "linkedin.com", "facebook.com", "instagram.com", "meta.com",
	"gov.in", "nic.in", "irctc.co.in",
}

// freeEmailProviders are webmail domains anyone can register; claiming to be
// an official organization from one of these is a phishing tell.
var freeEmailProviders = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com",
	"rediffmail.com", "protonmail.com", "mail.com", "yandex.com",
}

var (
	typoSquatRe    = regexp.MustCompile(`^(go+gle|g00gle|amaz[o0]n|faceb[o0]+k|micr[o0]s[o0]ft|app[l1]e|payp[a@]l|hdfc[b8]ank|ic[i1]c[i1]|sbi[0o])`)
	randomDomainRe = regexp.MustCompile(`^[a-z]{2,4}\d{2,}\.`)
	officialOrgRe  = regexp.MustCompile(`(?i)\b(bank|sbi|rbi|police|irs|customs|government|ministry|court|tribunal)\b`)

	properGreetingRe = regexp.MustCompile(`(?i)\b(dear|hi|hello)\s+(customer|user|member|valued)`)
	teamFooterRe     = regexp.MustCompile(`(?i)\b(team|support|service)\b`)

	moneyDemandRe = regexp.MustCompile(`(?i)\b(send|transfer|pay|deposit)\s+(money|amount|rs|₹|\d+)`)
	otpRequestRe  = regexp.MustCompile(`(?i)\b(share|send|enter|provide)\s+(your\s+)?(otp|pin|password|cvv)`)
)

// legitPhraseRules recognizes standard, non-coercive notification language:
// sign-in alerts, automated-message disclaimers, order confirmations and
// legal footers. Matched against the raw message text.
var legitPhraseRules = []rule{
	regexRule(`(?i)if this was you,?\s*(you\s+)?(don'?t|do\s+not)\s+need\s+to\s+do\s+anything`, `Non-coercive language: "if this was you, don't need to do anything"`, 20),
	regexRule(`(?i)we noticed a new sign.?in`, `Standard security notification: new sign-in alert`, 18),
	regexRule(`(?i)we'?ll help you secure your account`, `Helpful security guidance, not coercive`, 15),
	regexRule(`(?i)this is an? automated (message|notification|email|alert)`, `Standard automated notification`, 12),
	regexRule(`(?i)do not reply to this (email|message)`, `Standard no-reply notification`, 10),
	regexRule(`(?i)you (received|are receiving) this (email|message|notification) (because|to let you know)`, `Standard footer explanation`, 12),
	regexRule(`(?i)check (activity|your activity|recent activity)`, `Standard activity review prompt`, 10),
	regexRule(`(?i)security alert`, `Standard security alert subject`, 8),
	regexRule(`(?i)new (sign.?in|login|device|session) (on|from|detected)`, `Standard sign-in notification pattern`, 14),
	regexRule(`(?i)no-reply@`, `Official no-reply sender address`, 8),
	regexRule(`(?i)you can also (see|view|check|review)`, `Non-threatening optional action`, 8),
	regexRule(`(?i)unsubscribe|manage (your )?(notifications|preferences|settings)`, `Standard unsubscribe/settings link (legitimate)`, 8),
	regexRule(`(?i)terms of service|privacy policy|©\s*\d{4}`, `Legal footer present (legitimate email structure)`, 10),
	regexRule(`(?i)order\s*(#|number|id)\s*[\w-]+`, `Standard order confirmation pattern`, 10),
	regexRule(`(?i)your (order|delivery|shipment|package) (has been|is|was)`, `Standard delivery/order notification`, 10),
	regexRule(`(?i)\btransaction\s+(id|ref|reference)\b`, `Standard transaction reference`, 8),
}

// LegitimacyStrategy is the counterbalance to the scam-signal strategies.
// It awards positive score for evidence of genuine notifications and
// negative score for sender-domain red flags; a positive score offsets the
// fused scam score.
type LegitimacyStrategy struct{}

// NewLegitimacyStrategy creates a new legitimacy strategy.
func NewLegitimacyStrategy() *LegitimacyStrategy {
	return &LegitimacyStrategy{}
}

// Name returns the strategy name
func (s *LegitimacyStrategy) Name() string {
	return "Legitimacy Signals"
}

// Detect scores legitimacy signals in the message and sender address.
func (s *LegitimacyStrategy) Detect(msg domain.Message) Result {
	var res Result
	lowerMsg := strings.ToLower(msg.Content)
	senderDomain := extractDomain(strings.ToLower(msg.SenderEmail))

	for _, d := range trustedDomains {
		if strings.Contains(lowerMsg, d) || senderDomain == d || strings.HasSuffix(senderDomain, "."+d) {
			res.add(15, fmt.Sprintf("Legitimate domain reference: %s", d))
		}
	}

	if msg.SenderEmail != "" {
		if isTrustedSenderDomain(senderDomain) {
			res.add(25, fmt.Sprintf("Verified sender domain: %s (official)", senderDomain))
		}

		if typoSquatRe.MatchString(senderDomain) {
			res.add(-30, fmt.Sprintf("⚠ Typo-squatting domain detected: %s (impersonating trusted brand)", senderDomain))
		}

		if randomDomainRe.MatchString(senderDomain) {
			res.add(-15, fmt.Sprintf("Suspicious random domain: %s", senderDomain))
		}

		if isFreeEmailDomain(senderDomain) && officialOrgRe.MatchString(msg.Content) {
			res.add(-20, fmt.Sprintf("⚠ Free email (%s) claiming to be an official organization — likely phishing", senderDomain))
		}
	}

	phrases := evalRules(msg.Content, legitPhraseRules)
	res.Score += phrases.Score
	res.Patterns = append(res.Patterns, phrases.Patterns...)

	// Proper greeting + footer structure in a message of real length.
	hasProperStructure := (properGreetingRe.MatchString(lowerMsg) || teamFooterRe.MatchString(lowerMsg)) && len(lowerMsg) > 100
	if hasProperStructure {
		res.add(5, `Professional email structure detected`)
	}

	// Genuine notifications don't ask for money or credentials. Only scored
	// as a bonus when some legitimacy evidence already exists.
	noMoneyDemand := !moneyDemandRe.MatchString(lowerMsg)
	noOTPRequest := !otpRequestRe.MatchString(lowerMsg)
	if noMoneyDemand && noOTPRequest && res.Score > 0 {
		res.add(10, `No financial demands or credential requests (legitimate indicator)`)
	}

	return res
}

func isTrustedSenderDomain(senderDomain string) bool {
	for _, d := range trustedSenderDomains {
		if senderDomain == d || strings.HasSuffix(senderDomain, "."+d) {
			return true
		}
	}
	return false
}

func isFreeEmailDomain(senderDomain string) bool {
	for _, d := range freeEmailProviders {
		if senderDomain == d {
			return true
		}
	}
	return false
}
