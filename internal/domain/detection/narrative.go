package detection

import (
	"fmt"
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// Financial risk narratives, evaluated in fixed priority order.
const (
	financialRiskHigh         = "High financial risk — direct monetary demands or sensitive data requests detected"
	financialRiskModerate     = "Moderate financial risk — financial elements present in communication"
	financialRiskSocial       = "Potential future financial risk — social engineering may lead to financial exploitation"
	financialRiskIntimidation = "Intimidation-based financial risk — threats may lead to panic-driven payments"
	financialRiskNone         = "No immediate financial risk detected"
)

const noPatternsPlaceholder = "No clear scam patterns detected — message appears benign"

const (
	scamReply = "I am aware this is a potential scam attempt. I will not share any personal information. I have reported this to the Cyber Crime Cell. Do not contact me again."
	safeReply = "Thank you for your message. I will verify this through official channels before taking any action."
)

var scamActionSteps = []string{
	"Do NOT respond to the sender",
	"Do NOT share any personal information, OTP, or banking details",
	"Do NOT click any links or download attachments",
	"Block the sender immediately",
	"Take screenshots of the entire conversation as evidence",
	"Report to Cyber Crime helpline: 1930",
	"File an online complaint at cybercrime.gov.in",
	"If any financial details were shared, contact your bank immediately",
	"Inform family members to prevent further contact attempts",
}

var cautionActionSteps = []string{
	"Verify sender identity through official channels",
	"Do not share sensitive information with unknown contacts",
	"If suspicious, report at cybercrime.gov.in",
	"Trust your instincts — if something feels wrong, it probably is",
}

// familySentences maps each signal family to the sentence appended to the
// scam explanation when that family contributed. Fixed order: grammar,
// social, threats, financial, urgency, job.
var familySentences = []struct {
	score    func(signalScores) int
	sentence string
}{
	{func(s signalScores) int { return s.grammar }, "Language analysis reveals grammar/spelling errors commonly associated with scam operations. "},
	{func(s signalScores) int { return s.social }, "Social engineering patterns suggest attempts to build false trust or manipulate the recipient. "},
	{func(s signalScores) int { return s.threats }, "Authority impersonation and/or threat-based manipulation detected. "},
	{func(s signalScores) int { return s.financial }, "Financial fraud indicators including money demands or sensitive data requests found. "},
	{func(s signalScores) int { return s.urgency }, "Urgency and time-pressure tactics designed to prevent rational decision-making detected. "},
	{func(s signalScores) int { return s.job }, "Job/task scam indicators with promises of easy income detected. "},
}

// messageTypeLabel renders the channel for prose ("call_transcript" becomes
// "call transcript").
func messageTypeLabel(t domain.MessageType) string {
	return strings.Replace(string(t), "_", " ", 1)
}

// buildExplanation assembles the human-readable narrative. Three mutually
// exclusive branches: strongly legitimate, scam, and the cautious default.
func buildExplanation(
	msgType domain.MessageType,
	scores signalScores,
	confidence int,
	isScam bool,
	legitimacyScore int,
	legitimacyPatternCount int,
	totalPatternCount int,
) string {
	label := messageTypeLabel(msgType)

	if legitimacyScore >= strongLegitimacyThreshold && !isScam {
		return fmt.Sprintf(
			"This %s message appears to be a legitimate notification. Our analysis detected %d legitimacy signal(s) including official domain references, standard notification language, and non-coercive tone. The message does not request sensitive information or financial payments. This appears safe, but always verify by logging in directly to the official website rather than clicking links in emails.",
			label, legitimacyPatternCount,
		)
	}

	if isScam {
		categories := scores.categoriesTriggered()
		plural := "ies"
		if categories == 1 {
			plural = "y"
		}
		var b strings.Builder
		fmt.Fprintf(&b, "This %s message shows %d suspicious indicator(s) across %d detection categor%s. ",
			label, totalPatternCount, categories, plural)
		for _, fs := range familySentences {
			if fs.score(scores) > 0 {
				b.WriteString(fs.sentence)
			}
		}
		fmt.Fprintf(&b, "Overall scam confidence: %d%%. Exercise extreme caution.", confidence)
		return b.String()
	}

	return fmt.Sprintf(
		"This %s message does not show strong indicators of fraud based on our pattern analysis. However, always exercise caution with unsolicited communications. If you feel something is off, trust your instincts and verify through official channels.",
		label,
	)
}

// financialRiskNarrative picks the financial exposure narrative by fixed
// priority: financial score first, then social, then threats.
func financialRiskNarrative(scores signalScores) string {
	switch {
	case scores.financial > 15:
		return financialRiskHigh
	case scores.financial > 5:
		return financialRiskModerate
	case scores.social > 10:
		return financialRiskSocial
	case scores.threats > 10:
		return financialRiskIntimidation
	default:
		return financialRiskNone
	}
}
