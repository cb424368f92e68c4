// Package ailink implements the remote tokenization fallback: literal URL
// extraction, suspect bare-domain completion, placeholder substitution, and
// the chat-completion round trip that asks an LLM for a JSON array of
// tokens. Every failure path falls back to local segmentation; no error
// ever reaches the end caller.
package ailink

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Link is one detected URL or suspect bare domain.
type Link struct {
	// URL is the completed address (suspects inherit a protocol).
	URL string
	// Suspect marks a bare domain completed by the suffix heuristic.
	Suspect bool
}

var (
	urlRe    = regexp.MustCompile(`(?i)\bhttps?://[^\s"'<>\x60]+`)
	domainRe = regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9-]*(?:\.[a-z0-9][a-z0-9-]*)+\b`)
	schemeRe = regexp.MustCompile(`(?i)^https?:`)
)

// domainSuffixes is the suffix heuristic: a bare dotted name whose last
// label is one of these is treated as a suspect link.
var domainSuffixes = map[string]bool{
	"com": true, "net": true, "org": true, "io": true, "ai": true,
	"dev": true, "app": true, "co": true, "cn": true, "me": true,
	"xyz": true, "edu": true, "gov": true, "info": true,
}

// excludedWords are common dotted-name labels that look like domains but
// never are (version strings, file names, and the like).
var excludedWords = map[string]bool{
	"version": true, "release": true, "example": true, "test": true,
	"localhost": true, "json": true, "txt": true, "md": true,
}

// Placeholder returns the positional marker substituted for link i.
func Placeholder(i int) string {
	return fmt.Sprintf("__LINK_%d__", i)
}

var placeholderRe = regexp.MustCompile(`^__LINK_\d+__$`)

// IsPlaceholder reports whether a token is a link placeholder.
func IsPlaceholder(tok string) bool {
	return placeholderRe.MatchString(tok)
}

type match struct {
	start, end int
	text       string
	suspect    bool
}

// ExtractLinks pulls literal URLs and suspect bare domains out of text,
// replacing each with a positional placeholder. The returned links are
// ordered literal URLs first (in appearance order) then completed suspects;
// each suspect inherits the protocol of the nearest preceding literal URL,
// defaulting to https.
func ExtractLinks(text string) ([]Link, string) {
	var matches []match
	for _, loc := range urlRe.FindAllStringIndex(text, -1) {
		matches = append(matches, match{start: loc[0], end: loc[1], text: text[loc[0]:loc[1]]})
	}

	inLiteral := func(start, end int) bool {
		for _, m := range matches {
			if !m.suspect && start < m.end && end > m.start {
				return true
			}
		}
		return false
	}

	for _, loc := range domainRe.FindAllStringIndex(text, -1) {
		if inLiteral(loc[0], loc[1]) {
			continue
		}
		candidate := text[loc[0]:loc[1]]
		if !suspectDomain(candidate) {
			continue
		}
		matches = append(matches, match{start: loc[0], end: loc[1], text: candidate, suspect: true})
	}

	if len(matches) == 0 {
		return nil, text
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	// Literal URLs first in appearance order, then completed suspects.
	var links []Link
	for _, m := range matches {
		if !m.suspect {
			links = append(links, Link{URL: m.text})
		}
	}
	for _, m := range matches {
		if m.suspect {
			links = append(links, Link{URL: completeSuspect(matches, m), Suspect: true})
		}
	}

	// Substitute placeholders right to left so offsets stay valid. The
	// placeholder index follows the output ordering above.
	index := make(map[match]int, len(matches))
	literals := 0
	for _, m := range matches {
		if !m.suspect {
			index[m] = literals
			literals++
		}
	}
	next := literals
	for _, m := range matches {
		if m.suspect {
			index[m] = next
			next++
		}
	}
	residual := text
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		residual = residual[:m.start] + Placeholder(index[m]) + residual[m.end:]
	}
	return links, residual
}

func suspectDomain(candidate string) bool {
	labels := strings.Split(strings.ToLower(candidate), ".")
	for _, label := range labels {
		if excludedWords[label] {
			return false
		}
	}
	return domainSuffixes[labels[len(labels)-1]]
}

// completeSuspect prefixes the suspect with the protocol of the nearest
// preceding literal URL, defaulting to https.
func completeSuspect(matches []match, suspect match) string {
	proto := "https://"
	for _, m := range matches {
		if m.suspect || m.start > suspect.start {
			continue
		}
		if loc := schemeRe.FindString(m.text); loc != "" {
			proto = strings.ToLower(loc) + "//"
		}
	}
	return proto + suspect.text
}
