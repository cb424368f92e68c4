// Package chaos partitions text into random-length chunks while preserving
// character order, with a minimum-token-count guarantee. Output is
// intentionally non-deterministic and must never be cached as reproducible.
package chaos

import "math/rand"

// Tokenizer draws chunk lengths from an injected random source so callers
// can seed it under test.
type Tokenizer struct {
	rng *rand.Rand
}

// New creates a tokenizer over the given random source.
func New(rng *rand.Rand) *Tokenizer {
	return &Tokenizer{rng: rng}
}

// Split partitions text into chunks of length minLen..maxLen. Every
// character, whitespace included, lands in exactly one chunk and order is
// preserved: concatenating the result reproduces text. Each draw is capped
// so the remaining tail can still be split into enough minLen chunks to
// reach minTokens. If the random pass still comes up short and the text is
// long enough, the result is discarded and the text is redistributed into
// fixed-size chunks of ceil(len/minTokens) clamped to [minLen, maxLen].
func (t *Tokenizer) Split(text string, minLen, maxLen, minTokens int) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	if minTokens < 1 {
		minTokens = 1
	}

	var result []string
	pos := 0
	for pos < n {
		length := minLen + t.rng.Intn(maxLen-minLen+1)
		remaining := n - pos
		// Leave room for the tokens still owed after this one.
		owed := minTokens - len(result) - 1
		if owed > 0 {
			if most := remaining - owed*minLen; most < length {
				length = most
			}
		}
		if length < 1 {
			length = 1
		}
		if length > remaining {
			length = remaining
		}
		result = append(result, string(runes[pos:pos+length]))
		pos += length
	}

	if len(result) < minTokens && n >= minTokens*minLen {
		return t.redistribute(runes, minLen, maxLen, minTokens)
	}
	return result
}

func (t *Tokenizer) redistribute(runes []rune, minLen, maxLen, minTokens int) []string {
	n := len(runes)
	size := (n + minTokens - 1) / minTokens
	if size < minLen {
		size = minLen
	}
	if size > maxLen {
		size = maxLen
	}
	var result []string
	for pos := 0; pos < n; pos += size {
		end := pos + size
		if end > n {
			end = n
		}
		result = append(result, string(runes[pos:end]))
	}
	return result
}
