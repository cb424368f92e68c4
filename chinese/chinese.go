// Package chinese implements dictionary-driven Chinese word segmentation
// using a cascading maximum-match heuristic. It is deliberately lightweight:
// no statistical model, just longest-word-first lookup against the
// length-keyed dictionary with stop-word filtering.
package chinese

import (
	"unicode"

	"github.com/fenci-dev/fenci/dictionary"
	"github.com/fenci-dev/fenci/util"
)

// Segmenter segments mixed Chinese/ASCII text against a dictionary snapshot.
type Segmenter struct {
	Dict *dictionary.Dictionary
}

// NewSegmenter creates a segmenter over the given dictionary.
func NewSegmenter(dict *dictionary.Dictionary) *Segmenter {
	return &Segmenter{Dict: dict}
}

// Cut segments the text. With useDictionary, ideograph runs are matched
// longest-first (4, then 3, then 2 runes) against the dictionary; matched
// words found in the stop-word set are dropped. Without useDictionary every
// ideograph is emitted individually. Without useAlgorithm as well, the
// whole text comes back as a single token.
func (s *Segmenter) Cut(text string, useDictionary, useAlgorithm bool) []string {
	if util.IsBlank(text) {
		return nil
	}
	if !useDictionary && !useAlgorithm {
		return []string{text}
	}

	runes := []rune(text)
	n := len(runes)
	var result []string

	for i := 0; i < n; {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case util.IsCJK(r):
			if !useDictionary {
				result = append(result, string(r))
				i++
				break
			}
			word, length := s.matchLongest(runes, i)
			if length > 1 {
				if !s.Dict.IsStop(word) {
					result = append(result, word)
				}
			} else {
				// Single ideographs are never stop-word filtered.
				result = append(result, word)
			}
			i += length
		case util.IsASCIILetter(r):
			j := i
			for j < n && util.IsASCIILetter(runes[j]) {
				j++
			}
			result = append(result, string(runes[i:j]))
			i = j
		case util.IsDigit(r):
			j := i
			for j < n && util.IsDigit(runes[j]) {
				j++
			}
			result = append(result, string(runes[i:j]))
			i = j
		default:
			result = append(result, string(r))
			i++
		}
	}
	return result
}

// matchLongest tries dictionary words of length 4, 3, 2 starting at pos and
// returns the matched word and its rune length, or the single ideograph with
// length 1 when no multi-character word matches.
func (s *Segmenter) matchLongest(runes []rune, pos int) (string, int) {
	n := len(runes)
	maxLen := s.Dict.MaxLen
	if maxLen > dictionary.MaxWordLen {
		maxLen = dictionary.MaxWordLen
	}
	for length := maxLen; length >= dictionary.MinWordLen; length-- {
		end := pos + length
		if end > n {
			continue
		}
		ok := true
		for k := pos; k < end; k++ {
			if !util.IsCJK(runes[k]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		word := string(runes[pos:end])
		if s.Dict.Contains(word, length) {
			return word, length
		}
	}
	return string(runes[pos]), 1
}
