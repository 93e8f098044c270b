package detection

import (
	"regexp"

	"github.com/rrk-sde/ScamShieldAi/internal/domain"
)

// Result is the outcome of running one signal strategy against a message.
// Score is the sum of the weights of all matched rules; Patterns holds the
// matched rules' descriptions in table order. The legitimacy strategy may
// report a negative score.
type Result struct {
	Score    int
	Patterns []string
}

func (r *Result) add(weight int, pattern string) {
	r.Score += weight
	r.Patterns = append(r.Patterns, pattern)
}

// Strategy defines the interface implemented by every scam-signal detector
// and by the legitimacy counterbalance.
//
// Strategies are pure functions over the message: no shared state, no I/O,
// total for any input string. Each signal family is independently developed
// and tested.
type Strategy interface {
	// Detect scores the message against this strategy's rule table.
	Detect(msg domain.Message) Result

	// Name returns the human-readable name of this strategy.
	Name() string
}

// rule is a single entry in a strategy's pattern table: a matcher, the
// description appended to the result when it fires, and its weight. A rule
// contributes at most once per message regardless of occurrence count.
//
// The tables are data, not behaviour: editing them changes the engine's
// sensitivity, never its fusion logic.
type rule struct {
	match  func(message string) bool
	desc   string
	weight int
}

// regexRule builds a rule from a regular expression matched against the text
// a strategy feeds it (raw or lower-cased, strategy's choice).
func regexRule(expr, desc string, weight int) rule {
	re := regexp.MustCompile(expr)
	return rule{match: re.MatchString, desc: desc, weight: weight}
}

// keywordRule builds a rule that fires when any keyword variant appears as a
// substring. Callers pass lower-cased text; the weight is awarded once per
// rule even if several variants match.
func keywordRule(desc string, weight int, keywords ...string) rule {
	return rule{
		match: func(message string) bool {
			return containsAny(message, keywords)
		},
		desc:   desc,
		weight: weight,
	}
}

// evalRules runs a rule table against text with first-match semantics,
// accumulating weights and descriptions in table order.
func evalRules(text string, rules []rule) Result {
	var res Result
	for _, r := range rules {
		if r.match(text) {
			res.add(r.weight, r.desc)
		}
	}
	return res
}
