package detection

import (
	"strings"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// jobScamRules covers work-from-home offers, daily-income promises,
// pay-per-task schemes and jobs demanding upfront fees.
var jobScamRules = []rule{
	keywordRule(`Work-from-home job offer — common scam category`, 14, "earn from home", "work from home job", "part time job", "part time work", "home based job"),
	keywordRule(`"Daily income" promise — unrealistic job scam`, 16, "earn daily", "daily income", "daily earning", "per day income"),
	keywordRule(`Task-based scam (like/review/subscribe for money)`, 18, "like and subscribe", "rate and review", "review product", "youtube likes"),
	keywordRule(`"No experience needed" lure — too good to be true`, 12, "no experience needed", "no qualification", "anyone can do", "simple task"),
	keywordRule(`Unsolicited job offer — verify authenticity`, 8, "hiring now", "vacancy", "recruitment", "job offer", "offer letter"),
	keywordRule(`Brand-name associated task scam`, 10, "amazon", "flipkart", "meesho", "data entry"),
	keywordRule(`Job that asks for money upfront — definite scam`, 20, "joining fee", "registration amount", "refundable deposit"),
}

// JobScamStrategy detects fake job and task-based earning offers.
type JobScamStrategy struct{}

// NewJobScamStrategy creates a new job/task scam strategy.
func NewJobScamStrategy() *JobScamStrategy {
	return &JobScamStrategy{}
}

// Name returns the strategy name
func (s *JobScamStrategy) Name() string {
	return "Job & Task Scams"
}

// Detect scores job/task scam patterns.
func (s *JobScamStrategy) Detect(msg domain.Message) Result {
	return evalRules(strings.ToLower(msg.Content), jobScamRules)
}
