// Package codeblock groups source-code text into logical blocks. It detects
// a dialect (brace-delimited, indentation-delimited, or plain lines) and
// applies either a bracket-depth grouper or an indentation-stack grouper.
// Input is never validated as real code; anything unrecognized degrades to
// line-based output.
package codeblock

import (
	"regexp"
	"strings"
)

// Dialect is the detected structural style of the input.
type Dialect int

const (
	DialectLineBased Dialect = iota
	DialectBrace
	DialectIndent
)

func (d Dialect) String() string {
	switch d {
	case DialectBrace:
		return "brace"
	case DialectIndent:
		return "indent"
	}
	return "line_based"
}

const tabWidth = 4

var importRe = regexp.MustCompile(`^\s*(import\s+\S|from\s+\S+\s+import\b|#include[\s<"]|include\s+\S|using\s+\S|require\s*[("']|package\s+\S)`)

// Detect classifies the text. Any non-blank line containing a brace means
// brace-delimited; otherwise any trimmed line ending in a single colon means
// indentation-delimited; otherwise the text is unstructured.
func Detect(text string) Dialect {
	hasColon := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.ContainsAny(trimmed, "{}") {
			return DialectBrace
		}
		if strings.HasSuffix(trimmed, ":") && !strings.HasSuffix(trimmed, "::") {
			hasColon = true
		}
	}
	if hasColon {
		return DialectIndent
	}
	return DialectLineBased
}

// Analyze groups the text into logical blocks according to its dialect.
func Analyze(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	switch Detect(text) {
	case DialectBrace:
		return analyzeBrace(text)
	case DialectIndent:
		return analyzeIndent(text)
	default:
		return analyzeLines(text)
	}
}

func analyzeLines(text string) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width
		}
	}
	return width
}

func endsWithColon(trimmed string) bool {
	return strings.HasSuffix(trimmed, ":") && !strings.HasSuffix(trimmed, "::")
}

// analyzeIndent groups lines with a stack of indentation widths, one per
// open nesting level. Header lines ending in a colon start a new buffer;
// deeper lines are space-joined onto it.
func analyzeIndent(text string) []string {
	type srcLine struct {
		trimmed string
		width   int
	}
	var lines []srcLine
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		lines = append(lines, srcLine{trimmed: trimmed, width: indentWidth(raw)})
	}

	stack := []int{0}
	var result []string
	var buf []string
	bufIndent := 0

	flush := func() {
		if len(buf) > 0 {
			result = append(result, strings.Join(buf, " "))
			buf = nil
		}
	}

	for i, line := range lines {
		if importRe.MatchString(line.trimmed) {
			flush()
			result = append(result, line.trimmed)
			continue
		}

		top := stack[len(stack)-1]
		if line.width < top {
			for len(stack) > 1 && stack[len(stack)-1] > line.width {
				stack = stack[:len(stack)-1]
			}
			if len(buf) > 0 && bufIndent >= stack[len(stack)-1] {
				flush()
			}
		} else if line.width > top {
			stack = append(stack, line.width)
		}

		if endsWithColon(line.trimmed) {
			flush()
			buf = []string{line.trimmed}
			bufIndent = line.width
			if stack[len(stack)-1] < line.width {
				stack = append(stack, line.width)
			}
			continue
		}

		if len(buf) == 0 {
			buf = []string{line.trimmed}
			bufIndent = line.width
		} else {
			buf = append(buf, line.trimmed)
		}
		if i+1 < len(lines) {
			next := lines[i+1]
			if next.width <= bufIndent && !endsWithColon(next.trimmed) {
				flush()
			}
		}
	}
	flush()
	return result
}

// analyzeBrace groups lines with independent depth counters for {} and ().
// Directive and import lines at depth zero are standalone; inside an open
// span they stay in the buffer so blocks keep source order. When both
// depths return to zero the buffered span is finalized.
func analyzeBrace(text string) []string {
	var result []string
	var buf []string
	braceDepth, parenDepth := 0, 0

	finalize := func() {
		if len(buf) == 0 {
			return
		}
		joined := strings.Join(buf, " ")
		buf = nil
		prefix, span, suffix, ok := extractSpan(joined)
		if !ok {
			result = append(result, joined)
			return
		}
		if prefix != "" {
			result = append(result, prefix)
		}
		result = append(result, span)
		if suffix != "" {
			result = append(result, suffix)
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if braceDepth == 0 && parenDepth == 0 &&
			(strings.HasPrefix(trimmed, "#") || importRe.MatchString(trimmed)) {
			result = append(result, trimmed)
			continue
		}

		buf = append(buf, trimmed)
		for _, r := range trimmed {
			switch r {
			case '{':
				braceDepth++
			case '}':
				braceDepth--
			case '(':
				parenDepth++
			case ')':
				parenDepth--
			}
		}
		if braceDepth <= 0 && parenDepth <= 0 {
			finalize()
			braceDepth, parenDepth = 0, 0
		}
	}
	// Unbalanced tail degrades to a single block.
	if len(buf) > 0 {
		result = append(result, strings.Join(buf, " "))
	}
	return result
}
