package detection

import (
	"regexp"
	"strings"
)

// containsAny checks if text contains any of the keywords
func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// extractDomain extracts the domain from an email address
func extractDomain(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "" // Malformed email address
	}
	return strings.ToLower(parts[1])
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// splitWords splits on whitespace runs. An empty string yields one empty
// token, matching the word-count heuristics the rule weights were tuned
// against.
func splitWords(text string) []string {
	return whitespaceRe.Split(text, -1)
}

var wordTokenRe = regexp.MustCompile(`[0-9A-Za-z_]+`)

// hasAdjacentRepeatedWord reports whether the message contains the same word
// twice in a row separated only by whitespace, compared case-insensitively.
// Stand-in for a backreference pattern, which RE2 does not support.
func hasAdjacentRepeatedWord(message string) bool {
	locs := wordTokenRe.FindAllStringIndex(message, -1)
	for i := 1; i < len(locs); i++ {
		gap := message[locs[i-1][1]:locs[i][0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue // tokens must be separated by whitespace only
		}
		prev := strings.ToLower(message[locs[i-1][0]:locs[i-1][1]])
		curr := strings.ToLower(message[locs[i][0]:locs[i][1]])
		if prev == curr {
			return true
		}
	}
	return false
}
