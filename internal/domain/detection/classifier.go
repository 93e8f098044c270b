package detection

import "regexp"

// Fraud category labels.
const (
	CategoryDigitalArrest    = "Digital Arrest Scam"
	CategorySocial           = "Social Engineering"
	CategoryFinancial        = "Financial Fraud"
	CategoryJobTask          = "Job/Task Scam"
	CategoryUrgency          = "Urgency/Pressure Scam"
	CategoryRomance          = "Romance Scam"
	CategoryLottery          = "Lottery/Prize Scam"
	CategoryInvestment       = "Investment Scam"
	CategoryLoan             = "Loan Scam"
	CategoryPhishingKYC      = "Phishing / KYC Scam"
	CategorySextortion       = "Sextortion"
	CategoryCustomsParcel    = "Customs/Parcel Scam"
	CategoryTechSupport      = "Tech Support Scam"
	CategoryGeneral          = "General Suspicious Communication"
	CategoryLanguageAnomaly  = "Suspicious Communication (Language Anomalies)"
	CategoryLegitimate       = "Legitimate Notification"
)

// signalScores carries the per-family scores the classifier and narrative
// builder need.
type signalScores struct {
	grammar   int
	social    int
	threats   int
	financial int
	urgency   int
	job       int
	anomaly   int
}

func (s signalScores) sum() int {
	return s.grammar + s.social + s.threats + s.financial + s.urgency + s.job + s.anomaly
}

// categoriesTriggered counts how many of the seven signal families produced
// a nonzero score.
func (s signalScores) categoriesTriggered() int {
	count := 0
	for _, v := range []int{s.grammar, s.social, s.threats, s.financial, s.urgency, s.job, s.anomaly} {
		if v > 0 {
			count++
		}
	}
	return count
}

// Specialized category overrides: when the keyword set matches, the category
// joins the candidate list scored as base detector score plus a fixed bonus.
var categoryOverrides = []struct {
	re       *regexp.Regexp
	category string
	base     func(signalScores) int
	bonus    int
}{
	{regexp.MustCompile(`\b(lonely|love|relationship|heart|dating|marry|partner)\b`), CategoryRomance, func(s signalScores) int { return s.social }, 10},
	{regexp.MustCompile(`\b(lottery|prize|winner|won|congratulations)\b`), CategoryLottery, func(s signalScores) int { return s.financial }, 10},
	{regexp.MustCompile(`\b(invest|stock|trading|return|profit|mutual\s+fund)\b`), CategoryInvestment, func(s signalScores) int { return s.financial }, 10},
	{regexp.MustCompile(`\b(loan|emi|credit|pre.?approved)\b`), CategoryLoan, func(s signalScores) int { return s.financial }, 10},
	{regexp.MustCompile(`\b(kyc|verify|update|expire|link\s+pan|link\s+aadhaar)\b`), CategoryPhishingKYC, func(s signalScores) int { return s.financial }, 10},
	{regexp.MustCompile(`\b(nude|video\s+call|intimate|expose|leak|private\s+photo)\b`), CategorySextortion, func(s signalScores) int { return s.social }, 15},
	{regexp.MustCompile(`\b(customs|parcel|courier|seized|drugs)\b`), CategoryCustomsParcel, func(s signalScores) int { return s.threats }, 10},
	{regexp.MustCompile(`\b(tech\s+support|microsoft|windows|virus|malware|remote\s+access)\b`), CategoryTechSupport, func(s signalScores) int { return s.financial }, 10},
}

// classifyFraudCategory picks the most specific fraud category.
//
// Candidates are seeded from the base detector scores, specialized overrides
// join with their bonus when their keywords match, and the highest score
// wins with ties broken by insertion order. Two forced overrides follow: a
// grammar-only result reports a language-anomaly category, and a strongly
// legitimate non-scam result reports "Legitimate Notification".
func classifyFraudCategory(lowerMsg string, scores signalScores, legitimacyScore int, isScam bool) string {
	type candidate struct {
		category string
		score    int
	}

	candidates := []candidate{
		{CategoryDigitalArrest, scores.threats},
		{CategorySocial, scores.social},
		{CategoryFinancial, scores.financial},
		{CategoryJobTask, scores.job},
		{CategoryUrgency, scores.urgency},
	}

	for _, o := range categoryOverrides {
		if o.re.MatchString(lowerMsg) {
			candidates = append(candidates, candidate{o.category, o.base(scores) + o.bonus})
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}

	category := CategoryGeneral
	if best.score > 0 {
		category = best.category
	}

	// If grammar was the only family that fired, the verdict rests on
	// language anomalies alone.
	if scores.grammar > 0 && scores.social == 0 && scores.threats == 0 &&
		scores.financial == 0 && scores.urgency == 0 && scores.job == 0 {
		category = CategoryLanguageAnomaly
	}

	if legitimacyScore >= strongLegitimacyThreshold && !isScam {
		category = CategoryLegitimate
	}

	return category
}
