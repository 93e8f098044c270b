package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsAny(t *testing.T) {
	keywords := []string{"otp", "verification code"}

	assert.True(t, containsAny("share the otp now", keywords))
	assert.True(t, containsAny("enter the verification code", keywords))
	assert.False(t, containsAny("nothing to see here", keywords))
	assert.False(t, containsAny("anything", nil))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "google.com", extractDomain("no-reply@google.com"))
	assert.Equal(t, "google.com", extractDomain("No-Reply@GOOGLE.COM"))
	assert.Equal(t, "", extractDomain("not-an-email"))
	assert.Equal(t, "", extractDomain("two@signs@here.com"))
	assert.Equal(t, "", extractDomain(""))
}

func TestSplitWords(t *testing.T) {
	assert.Len(t, splitWords("one two three"), 3)
	assert.Len(t, splitWords("spaced   out\twords"), 3)
	// An empty string still yields a single empty token.
	assert.Len(t, splitWords(""), 1)
}

func TestHasAdjacentRepeatedWord(t *testing.T) {
	assert.True(t, hasAdjacentRepeatedWord("please please respond"))
	assert.True(t, hasAdjacentRepeatedWord("URGENT urgent action needed"))
	assert.False(t, hasAdjacentRepeatedWord("please do respond please"))
	assert.False(t, hasAdjacentRepeatedWord("word, word again"))
	assert.False(t, hasAdjacentRepeatedWord(""))
}
