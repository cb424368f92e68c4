package ailink

import "github.com/pkoukk/tiktoken-go"

// encoding is nil when the cl100k_base tables could not be loaded; the
// rune-based estimate takes over in that case.
var encoding *tiktoken.Tiktoken

func init() {
	if enc, err := tiktoken.GetEncoding("cl100k_base"); err == nil {
		encoding = enc
	}
}

// CountTokens returns the token count of text, estimating at roughly four
// runes per token when the encoding is unavailable.
func CountTokens(text string) int {
	return countTokens(encoding, text)
}

func countTokens(enc *tiktoken.Tiktoken, text string) int {
	if text == "" {
		return 0
	}
	if enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	n := len([]rune(text))
	est := n / 4
	if est == 0 {
		est = 1
	}
	return est
}

// TruncateToTokens caps text at maxTokens, decoding back from the encoded
// prefix when possible.
func TruncateToTokens(text string, maxTokens int) string {
	return truncateToTokens(encoding, text, maxTokens)
}

func truncateToTokens(enc *tiktoken.Tiktoken, text string, maxTokens int) string {
	if maxTokens <= 0 || text == "" {
		return text
	}
	if enc != nil {
		ids := enc.Encode(text, nil, nil)
		if len(ids) <= maxTokens {
			return text
		}
		return enc.Decode(ids[:maxTokens])
	}
	runes := []rune(text)
	if limit := maxTokens * 4; len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
