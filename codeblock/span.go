package codeblock

import "strings"

// Pair matching for span extraction. Only bracket-like pairs nest; the
// quote-like pairs (" ' `) never nest and make their interior literal.
var (
	closers = map[rune]rune{')': '(', '}': '{', ']': '[', '>': '<', '»': '«'}
	openers = map[rune]bool{'(': true, '{': true, '[': true, '<': true, '«': true}
	quotes  = map[rune]bool{'"': true, '\'': true, '`': true}
)

type pairSpan struct {
	start, end int // rune indices, inclusive
	parens     int // '(' count strictly inside
}

// extractSpan finds the single largest well-formed bracketed span in s: among
// all complete balanced pair matches it picks the one with the most nested
// parentheses, longest span winning ties. The documented heuristic is kept
// as-is even where a brace-dominant input might suggest a different pick.
func extractSpan(s string) (prefix, span, suffix string, ok bool) {
	runes := []rune(s)

	type openEntry struct {
		char rune
		idx  int
	}
	var stack []openEntry
	var spans []pairSpan

	record := func(start, end int) {
		count := 0
		for k := start + 1; k < end; k++ {
			if runes[k] == '(' {
				count++
			}
		}
		spans = append(spans, pairSpan{start: start, end: end, parens: count})
	}

	for i, r := range runes {
		if len(stack) > 0 && quotes[stack[len(stack)-1].char] {
			// Inside a quote pair everything but the closing quote is literal.
			if r == stack[len(stack)-1].char {
				record(stack[len(stack)-1].idx, i)
				stack = stack[:len(stack)-1]
			}
			continue
		}
		switch {
		case openers[r] || quotes[r]:
			stack = append(stack, openEntry{char: r, idx: i})
		case closers[r] != 0:
			// Match the nearest corresponding opener, abandoning any
			// never-closed openers above it (a lone '<' in "a < b" must not
			// block the enclosing pair). A stray closer is plain text.
			for j := len(stack) - 1; j >= 0; j-- {
				if stack[j].char == closers[r] {
					record(stack[j].idx, i)
					stack = stack[:j]
					break
				}
			}
		}
	}

	if len(spans) == 0 {
		return "", "", "", false
	}

	best := spans[0]
	for _, sp := range spans[1:] {
		if sp.parens > best.parens {
			best = sp
			continue
		}
		if sp.parens == best.parens && sp.end-sp.start > best.end-best.start {
			best = sp
		}
	}

	prefix = strings.TrimSpace(string(runes[:best.start]))
	span = string(runes[best.start : best.end+1])
	suffix = strings.TrimSpace(string(runes[best.end+1:]))
	return prefix, span, suffix, true
}
