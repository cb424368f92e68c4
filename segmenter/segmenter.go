// Package segmenter is the public entry point of the engine: it dispatches
// a mode identifier to one of the segmentation strategies and returns the
// ordered token sequence.
package segmenter

import (
	"context"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/fenci-dev/fenci/ailink"
	"github.com/fenci-dev/fenci/chaos"
	"github.com/fenci-dev/fenci/chinese"
	"github.com/fenci-dev/fenci/codeblock"
	"github.com/fenci-dev/fenci/config"
	"github.com/fenci-dev/fenci/dictionary"
	"github.com/fenci-dev/fenci/rules"
	"github.com/fenci-dev/fenci/util"
)

// Mode selects the segmentation strategy.
type Mode int

const (
	ModeSmart Mode = iota
	ModeChinese
	ModeEnglish
	ModeCode
	ModeAI
	ModeSentence
	ModeHalfSentence
	ModeCharBreak
	ModeRemoveSymbols
	ModeRandom
	ModeMulti
)

var modeNames = map[Mode]string{
	ModeSmart:         "smart",
	ModeChinese:       "chinese",
	ModeEnglish:       "english",
	ModeCode:          "code",
	ModeAI:            "ai",
	ModeSentence:      "sentence",
	ModeHalfSentence:  "halfSentence",
	ModeCharBreak:     "charBreak",
	ModeRemoveSymbols: "removeSymbols",
	ModeRandom:        "random",
	ModeMulti:         "multi",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "smart"
}

// ParseMode resolves a mode name; unknown names fall back to smart.
func ParseMode(name string) Mode {
	for m, n := range modeNames {
		if n == name {
			return m
		}
	}
	return ModeSmart
}

// Segmenter dispatches segmentation calls over a dictionary store and an
// immutable configuration. It is safe for concurrent use; the dictionary
// snapshot is the only shared state and is read atomically per call.
type Segmenter struct {
	store *dictionary.Store
	cfg   config.Config
	ai    *ailink.Client
	chaos *chaos.Tokenizer
}

// Option customizes a Segmenter.
type Option func(*Segmenter)

// WithAIClient attaches the remote tokenization client used by ModeAI.
func WithAIClient(c *ailink.Client) Option {
	return func(s *Segmenter) { s.ai = c }
}

// WithRandSource injects the random source for ModeRandom, making chaos
// splitting reproducible under test.
func WithRandSource(rng *rand.Rand) Option {
	return func(s *Segmenter) { s.chaos = chaos.New(rng) }
}

// New creates a Segmenter over the given dictionary store and configuration.
func New(store *dictionary.Store, cfg config.Config, opts ...Option) *Segmenter {
	s := &Segmenter{store: store, cfg: cfg.Sanitized()}
	for _, opt := range opts {
		opt(s)
	}
	if s.chaos == nil {
		s.chaos = chaos.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return s
}

// Segment tokenizes text with the given mode. Empty or whitespace-only text
// yields an empty sequence; no mode ever returns an error to the caller.
func (s *Segmenter) Segment(ctx context.Context, text string, mode Mode) []string {
	if util.IsBlank(text) {
		return nil
	}
	switch mode {
	case ModeSmart:
		return Smart(text)
	case ModeChinese:
		return chinese.NewSegmenter(s.store.Snapshot()).Cut(text, s.cfg.UseDictionary, s.cfg.UseAlgorithm)
	case ModeEnglish:
		return s.english(text)
	case ModeCode:
		return codeblock.Analyze(text)
	case ModeAI:
		return ailink.Segment(ctx, s.ai, text, Smart)
	case ModeSentence:
		return splitDiscarding(text, sentenceTerminal)
	case ModeHalfSentence:
		return splitDiscarding(text, func(r rune) bool {
			return util.IsPunct(r) || unicode.IsSpace(r)
		})
	case ModeCharBreak:
		return s.charBreak(text)
	case ModeRemoveSymbols:
		return removeSymbols(text)
	case ModeRandom:
		return s.chaos.Split(text, s.cfg.RandomMinLen, s.cfg.RandomMaxLen, s.cfg.RandomMinTokens)
	case ModeMulti:
		// Multi needs an explicit rule selection; without one it degrades
		// to the default strategy.
		return Smart(text)
	}
	return Smart(text)
}

// Multi runs the multi-rule composer with the configured rule options.
func (s *Segmenter) Multi(text string, selected []rules.ID) (rules.Result, error) {
	return rules.Compose(text, selected, rules.Options{
		StripSeparators: s.cfg.StripSeparators,
	})
}

// Smart is the default strategy and the universal fallback: one pass,
// left to right. Whitespace is skipped, punctuation is emitted singly,
// maximal CJK, letter and digit runs are emitted whole, anything else is
// emitted alone.
func Smart(text string) []string {
	runes := []rune(text)
	n := len(runes)
	var result []string
	for i := 0; i < n; {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case util.IsCJK(r):
			j := i
			for j < n && util.IsCJK(runes[j]) {
				j++
			}
			result = append(result, string(runes[i:j]))
			i = j
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

// english splits whitespace-separated words at naming boundaries: a new
// token starts at each lowercase-to-uppercase transition and at _ and -
// separators.
func (s *Segmenter) english(text string) []string {
	var result []string
	var word []rune
	flushWord := func() {
		if len(word) > 0 {
			result = append(result, splitEnglishWord(string(word), s.cfg.StripSeparators)...)
			word = nil
		}
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			flushWord()
			continue
		}
		word = append(word, r)
	}
	flushWord()
	return result
}

func splitEnglishWord(word string, strip bool) []string {
	runes := []rune(word)
	var result []string
	var buf []rune
	flush := func() {
		if len(buf) > 0 {
			result = append(result, string(buf))
			buf = nil
		}
	}
	for i, r := range runes {
		if r == '_' || r == '-' {
			if !strip {
				buf = append(buf, r)
			}
			flush()
			continue
		}
		if unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]) {
			flush()
		}
		buf = append(buf, r)
	}
	flush()
	return result
}

func sentenceTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', ';', '。', '！', '？', '；', '…', '\n':
		return true
	}
	return false
}

// splitDiscarding splits text on separator runes, discarding the separators
// and trimming the fragments.
func splitDiscarding(text string, sep func(rune) bool) []string {
	var result []string
	var buf []rune
	flush := func() {
		frag := string(buf)
		buf = nil
		if !util.IsBlank(frag) {
			result = append(result, strings.TrimSpace(frag))
		}
	}
	for _, r := range text {
		if sep(r) {
			flush()
			continue
		}
		buf = append(buf, r)
	}
	flush()
	return result
}

// charBreak hard-wraps the text at the configured column. A trailing
// fragment shorter than the minimum tail length merges into the previous
// chunk so no trivial tail is emitted.
func (s *Segmenter) charBreak(text string) []string {
	runes := []rune(text)
	limit := s.cfg.LineLimit
	var result []string
	for pos := 0; pos < len(runes); pos += limit {
		end := pos + limit
		if end > len(runes) {
			end = len(runes)
		}
		result = append(result, string(runes[pos:end]))
	}
	if n := len(result); n > 1 {
		tail := []rune(result[n-1])
		if len(tail) < s.cfg.MinLineTail {
			result[n-2] += result[n-1]
			result = result[:n-1]
		}
	}
	return result
}

// removeSymbols strips every symbol character and re-splits the remainder
// on language and number boundaries.
func removeSymbols(text string) []string {
	if !util.ContainsPunctuation(text) {
		return Smart(text)
	}
	var kept []rune
	for _, r := range text {
		if !util.IsPunct(r) {
			kept = append(kept, r)
		}
	}
	return Smart(string(kept))
}
