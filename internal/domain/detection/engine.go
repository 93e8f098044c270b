package detection

import (
	"fmt"
	"math"
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// Fusion thresholds. Tuned for recall on real reported-scam corpora; the
// exact values are part of the engine's behavioural contract and are locked
// by tests.
const (
	// scamThreshold is the confidence at or above which a message is
	// flagged as a scam. It coincides with the "low" risk tier bound.
	scamThreshold = 15

	// strongLegitimacyThreshold is the legitimacy score at which the
	// verdict is overridden to safe.
	strongLegitimacyThreshold = 30

	// minCategoriesForBoost and multiCategoryBoost implement the
	// cross-category correlation boost: corroborating evidence across
	// independent signal families is stronger than any single signal.
	minCategoriesForBoost = 3
	multiCategoryBoost    = 1.2

	// strongLegitimacyScoreCap bounds the residual scam score once strong
	// legitimacy evidence is present.
	strongLegitimacyScoreCap = 10
)

// Engine is the self-contained scam analysis engine: seven independent
// scam-signal strategies plus a legitimacy counterbalance, fused into a
// single verdict.
//
// Analyze is a pure, synchronous computation: no I/O, no shared mutable
// state, deterministic for identical inputs, total for any input string. It
// is safe to call concurrently from any number of goroutines and serves as
// the guaranteed-available fallback behind the remote analyzers.
type Engine struct {
	grammar    *GrammarStrategy
	social     *SocialEngineeringStrategy
	threats    *ThreatAuthorityStrategy
	financial  *FinancialFraudStrategy
	urgency    *UrgencyStrategy
	job        *JobScamStrategy
	anomaly    *MessageAnomalyStrategy
	legitimacy *LegitimacyStrategy
}

// NewEngine creates the analysis engine with all standard strategies.
func NewEngine() *Engine {
	return &Engine{
		grammar:    NewGrammarStrategy(),
		social:     NewSocialEngineeringStrategy(),
		threats:    NewThreatAuthorityStrategy(),
		financial:  NewFinancialFraudStrategy(),
		urgency:    NewUrgencyStrategy(),
		job:        NewJobScamStrategy(),
		anomaly:    NewMessageAnomalyStrategy(),
		legitimacy: NewLegitimacyStrategy(),
	}
}

// Analyze runs every strategy against the message and fuses their scores
// into the final verdict.
func (e *Engine) Analyze(msg domain.Message) domain.ScamAnalysisResult {
	grammar := e.grammar.Detect(msg)
	social := e.social.Detect(msg)
	threats := e.threats.Detect(msg)
	financial := e.financial.Detect(msg)
	urgency := e.urgency.Detect(msg)
	job := e.job.Detect(msg)
	anomaly := e.anomaly.Detect(msg)
	legitimacy := e.legitimacy.Detect(msg)

	scores := signalScores{
		grammar:   grammar.Score,
		social:    social.Score,
		threats:   threats.Score,
		financial: financial.Score,
		urgency:   urgency.Score,
		job:       job.Score,
		anomaly:   anomaly.Score,
	}

	// Pattern order follows strategy evaluation order.
	allPatterns := make([]string, 0,
		len(grammar.Patterns)+len(social.Patterns)+len(threats.Patterns)+
			len(financial.Patterns)+len(urgency.Patterns)+len(job.Patterns)+len(anomaly.Patterns))
	for _, r := range []Result{grammar, social, threats, financial, urgency, job, anomaly} {
		allPatterns = append(allPatterns, r.Patterns...)
	}

	rawScore := scores.sum()

	// Cross-category correlation boost: hits across independent signal
	// families corroborate each other.
	categories := scores.categoriesTriggered()
	if categories >= minCategoriesForBoost {
		rawScore = int(math.Round(float64(rawScore) * multiCategoryBoost))
		allPatterns = append(allPatterns, fmt.Sprintf("Multiple scam indicator categories detected (%d/7) — high correlation", categories))
	}

	// Legitimacy counterbalance: positive legitimacy offsets the scam
	// score; strong legitimacy overrides the verdict to safe and replaces
	// the pattern list with the legitimacy evidence.
	if legitimacy.Score > 0 {
		rawScore = max(rawScore-legitimacy.Score, 0)
		if legitimacy.Score >= strongLegitimacyThreshold {
			rawScore = min(rawScore, strongLegitimacyScoreCap)
			allPatterns = append([]string(nil), legitimacy.Patterns...)
		}
	}

	confidence := min(max(rawScore, 0), 100)
	isScam := confidence >= scamThreshold
	riskLevel := domain.RiskLevelForConfidence(confidence)

	lowerMsg := strings.ToLower(msg.Content)
	category := classifyFraudCategory(lowerMsg, scores, legitimacy.Score, isScam)

	explanation := buildExplanation(msg.Type, scores, confidence, isScam,
		legitimacy.Score, len(legitimacy.Patterns), len(allPatterns))

	if len(allPatterns) == 0 {
		allPatterns = append(allPatterns, noPatternsPlaceholder)
	}

	reply := safeReply
	steps := cautionActionSteps
	if isScam {
		reply = scamReply
		steps = scamActionSteps
	}

	return domain.ScamAnalysisResult{
		IsScam:         isScam,
		Confidence:     confidence,
		FraudCategory:  category,
		RiskLevel:      riskLevel,
		FinancialRisk:  financialRiskNarrative(scores),
		ScamPatterns:   allPatterns,
		Explanation:    explanation,
		SuggestedReply: reply,
		ActionSteps:    append([]string(nil), steps...),
	}
}
