package detection

import (
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// threatRules covers intimidation and authority impersonation: digital
// arrest, fake warrants, agency/regulator/police impersonation, account
// freezes and imprisonment threats. Each category fires once if any of its
// keyword variants appears in the lower-cased message.
var threatRules = []rule{
	keywordRule(`Digital arrest scam — fake arrest threats`, 25, "digital arrest", "e-arrest", "online arrest", "cyber arrest"),
	keywordRule(`Fake warrant threats`, 22, "arrest warrant", "non-bailable warrant", "warrant issued"),
	keywordRule(`False accusations of serious crimes`, 22, "money laundering", "hawala", "terror funding", "narcotics"),
	keywordRule(`Impersonation of central investigation agency`, 22, "cbi", "central bureau", "enforcement directorate", "ed notice"),
	keywordRule(`Impersonation of financial regulator`, 20, "rbi", "reserve bank", "sebi"),
	keywordRule(`Impersonation of tax authority`, 18, "income tax", "it department", "tax notice", "gst notice"),
	keywordRule(`Police impersonation detected`, 20, "police", "crime branch", "cyber cell", "cyber police"),
	keywordRule(`Fake legal documents/notices`, 18, "court order", "summons", "legal notice", "contempt of court"),
	keywordRule(`Account freeze/block threats`, 16, "your account", "account blocked", "account suspended", "account freeze", "frozen"),
	keywordRule(`Aadhaar-related scam (ID theft)`, 16, "aadhaar", "aadhaar linked", "aadhaar misuse"),
	keywordRule(`Fake FIR/complaint registration threats`, 18, "fir registered", "fir filed", "complaint registered"),
	keywordRule(`Fake customs/parcel seizure scam`, 20, "customs", "parcel seized", "courier seized", "drugs found", "contraband"),
	keywordRule(`Claims victim's identity was used in crimes`, 16, "your name", "your pan", "your aadhaar", "your number", "has been used", "was used"),
	keywordRule(`Imprisonment threats — intimidation tactic`, 20, "jail", "imprisonment", "prison", "lock up", "behind bars"),
}

// ThreatAuthorityStrategy detects threat-based manipulation and
// impersonation of police, courts, and financial authorities.
type ThreatAuthorityStrategy struct{}

// NewThreatAuthorityStrategy creates a new threats & authority strategy.
func NewThreatAuthorityStrategy() *ThreatAuthorityStrategy {
	return &ThreatAuthorityStrategy{}
}

// Name returns the strategy name
func (s *ThreatAuthorityStrategy) Name() string {
	return "Threats & Authority Impersonation"
}

// Detect scores threat and authority-impersonation patterns.
func (s *ThreatAuthorityStrategy) Detect(msg domain.Message) Result {
	return evalRules(strings.ToLower(msg.Content), threatRules)
}
