package ailink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToTokens_UnderLimit(t *testing.T) {
	text := "short prompt"
	assert.Equal(t, text, TruncateToTokens(text, 1000))
}

func TestTruncateToTokens_NoLimit(t *testing.T) {
	text := strings.Repeat("word ", 100)
	assert.Equal(t, text, TruncateToTokens(text, 0))
	assert.Equal(t, text, TruncateToTokens(text, -1))
	assert.Equal(t, "", TruncateToTokens("", 5))
}

// The over-limit result must be a strict prefix and fit the cap whether the
// encoding loaded or the rune estimate is in effect.
func TestTruncateToTokens_OverLimit(t *testing.T) {
	text := strings.Repeat("hello world ", 50)
	got := TruncateToTokens(text, 3)
	assert.Less(t, len(got), len(text))
	assert.True(t, strings.HasPrefix(text, got), "got %q, want a prefix of the input", got)
	assert.LessOrEqual(t, CountTokens(got), 3)
}

func TestTruncateToTokens_RuneEstimate(t *testing.T) {
	text := strings.Repeat("国", 20)
	got := truncateToTokens(nil, text, 3)
	assert.Equal(t, strings.Repeat("国", 12), got)
	assert.Equal(t, text, truncateToTokens(nil, text, 5))
}

func TestCountTokens(t *testing.T) {
	assert.Equal(t, 0, CountTokens(""))
	assert.GreaterOrEqual(t, CountTokens("x"), 1)
	long := strings.Repeat("hello world ", 50)
	assert.Greater(t, CountTokens(long), CountTokens("hello world"))
}

func TestCountTokens_RuneEstimate(t *testing.T) {
	assert.Equal(t, 0, countTokens(nil, ""))
	assert.Equal(t, 1, countTokens(nil, "ab"))
	assert.Equal(t, 5, countTokens(nil, strings.Repeat("国", 20)))
}
