// Package rules holds the fixed catalogue of composable token transforms
// used by multi-rule segmentation, plus the composer that resolves rule
// conflicts and dependencies before folding the transforms over the input.
package rules

import (
	"unicode"

	"github.com/fenci-dev/fenci/util"
)

// ID identifies a rule in the catalogue.
type ID int

const (
	SymbolSplit ID = iota
	WhitespaceSplit
	NewlineSplit
	ChineseEnglishSplit
	UppercaseSplit
	NamingSplit
	DigitSplit
	RemoveWhitespace
	RemoveSymbols
	RemoveChinese
	RemoveEnglish
)

var idNames = map[ID]string{
	SymbolSplit:         "symbolSplit",
	WhitespaceSplit:     "whitespaceSplit",
	NewlineSplit:        "newlineSplit",
	ChineseEnglishSplit: "chineseEnglishSplit",
	UppercaseSplit:      "uppercaseSplit",
	NamingSplit:         "namingSplit",
	DigitSplit:          "digitSplit",
	RemoveWhitespace:    "removeWhitespace",
	RemoveSymbols:       "removeSymbols",
	RemoveChinese:       "removeChinese",
	RemoveEnglish:       "removeEnglish",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "unknown"
}

// Parse resolves a rule name to its ID.
func Parse(name string) (ID, bool) {
	for id, n := range idNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// Group classifies a rule as a split or a remove transform. All split rules
// run before all remove rules.
type Group int

const (
	GroupSplit Group = iota
	GroupRemove
)

// Options carries the per-call knobs individual transforms consult.
type Options struct {
	// StripSeparators drops _ and - at naming boundaries instead of
	// keeping them attached to the preceding fragment.
	StripSeparators bool
}

// Descriptor is the static metadata for one rule. DependsOn entries are
// force-included when the rule is selected. YieldsTo names the rules this
// rule loses to when both are selected (the winner makes this rule a no-op,
// so it is skipped with a recorded reason).
type Descriptor struct {
	ID        ID
	Group     Group
	Priority  int
	DependsOn []ID
	YieldsTo  []ID
	Transform func(el string, opts Options) []string
}

// Catalogue is the full rule table, in ID order. It is read-only after
// process start.
var Catalogue = []Descriptor{
	{ID: SymbolSplit, Group: GroupSplit, Priority: 10, YieldsTo: []ID{RemoveSymbols}, Transform: symbolSplit},
	{ID: WhitespaceSplit, Group: GroupSplit, Priority: 20, YieldsTo: []ID{RemoveWhitespace}, Transform: whitespaceSplit},
	{ID: NewlineSplit, Group: GroupSplit, Priority: 30, YieldsTo: []ID{RemoveWhitespace}, Transform: newlineSplit},
	{ID: ChineseEnglishSplit, Group: GroupSplit, Priority: 40, Transform: chineseEnglishSplit},
	{ID: UppercaseSplit, Group: GroupSplit, Priority: 50, Transform: uppercaseSplit},
	{ID: NamingSplit, Group: GroupSplit, Priority: 60, DependsOn: []ID{UppercaseSplit}, Transform: namingSplit},
	{ID: DigitSplit, Group: GroupSplit, Priority: 70, Transform: digitSplit},
	{ID: RemoveWhitespace, Group: GroupRemove, Priority: 10, Transform: removeClass(unicode.IsSpace)},
	{ID: RemoveSymbols, Group: GroupRemove, Priority: 20, Transform: removeClass(util.IsPunct)},
	{ID: RemoveChinese, Group: GroupRemove, Priority: 30, Transform: removeClass(util.IsCJK)},
	{ID: RemoveEnglish, Group: GroupRemove, Priority: 40, Transform: removeClass(util.IsASCIILetter)},
}

func descriptor(id ID) *Descriptor {
	for i := range Catalogue {
		if Catalogue[i].ID == id {
			return &Catalogue[i]
		}
	}
	return nil
}

// openingPair reports whether r opens a pair, meaning a preceding symbol is
// the first of a nested pair and stays attached to the buffered text.
func openingPair(r rune) bool {
	switch r {
	case '(', '[', '{', '<', '«', '"', '\'', '`':
		return true
	}
	return false
}

func symbolSplit(el string, _ Options) []string {
	runes := []rune(el)
	var result []string
	var buf []rune
	flush := func() {
		if len(buf) > 0 {
			result = append(result, string(buf))
			buf = nil
		}
	}
	// nested marks that the previous symbol opened a nested pair, so
	// following symbols keep accumulating into the buffer prefix.
	nested := false
	for i, r := range runes {
		if !util.IsPunct(r) {
			buf = append(buf, r)
			nested = false
			continue
		}
		if nested {
			buf = append(buf, r)
			continue
		}
		if i+1 < len(runes) && openingPair(runes[i+1]) {
			// First of a nested pair: keep it as a prefix of what follows.
			flush()
			buf = append(buf, r)
			nested = true
		} else {
			flush()
			result = append(result, string(r))
		}
	}
	flush()
	return result
}

// splitAfterRun splits el after every maximal run of characters matched by
// class, keeping the separator run attached to the preceding fragment.
func splitAfterRun(el string, class func(rune) bool) []string {
	runes := []rune(el)
	var result []string
	var buf []rune
	for i, r := range runes {
		buf = append(buf, r)
		if class(r) && i+1 < len(runes) && !class(runes[i+1]) {
			result = append(result, string(buf))
			buf = nil
		}
	}
	if len(buf) > 0 {
		result = append(result, string(buf))
	}
	return result
}

func whitespaceSplit(el string, _ Options) []string {
	return splitAfterRun(el, unicode.IsSpace)
}

func newlineSplit(el string, _ Options) []string {
	return splitAfterRun(el, func(r rune) bool { return r == '\n' || r == '\r' })
}

func chineseEnglishSplit(el string, _ Options) []string {
	runes := []rune(el)
	var result []string
	var buf []rune
	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]
			cjkToLatin := util.IsCJK(prev) && util.IsASCIILetter(r)
			latinToCJK := util.IsASCIILetter(prev) && util.IsCJK(r)
			if cjkToLatin || latinToCJK {
				result = append(result, string(buf))
				buf = nil
			}
		}
		buf = append(buf, r)
	}
	if len(buf) > 0 {
		result = append(result, string(buf))
	}
	return result
}

func uppercaseSplit(el string, _ Options) []string {
	runes := []rune(el)
	var result []string
	var buf []rune
	for _, r := range runes {
		if unicode.IsUpper(r) && len(buf) > 0 {
			result = append(result, string(buf))
			buf = nil
		}
		buf = append(buf, r)
	}
	if len(buf) > 0 {
		result = append(result, string(buf))
	}
	return result
}

func namingSplit(el string, opts Options) []string {
	return SplitNaming(el, opts.StripSeparators)
}

// SplitNaming splits a camelCase/snake_case/kebab-case identifier at naming
// boundaries: a lowercase-to-uppercase transition starts a new fragment, an
// uppercase run of two or more followed by a lowercase letter moves the
// run's last letter onto the following fragment ("DarkSOULSword" becomes
// "Dark", "SOUL", "Sword"), and _ and - are boundaries that are dropped when
// strip is set, otherwise kept on the preceding fragment's tail.
func SplitNaming(el string, strip bool) []string {
	runes := []rune(el)
	var result []string
	var buf []rune
	flush := func() {
		if len(buf) > 0 {
			result = append(result, string(buf))
			buf = nil
		}
	}
	upperRun := 0
	for i, r := range runes {
		if r == '_' || r == '-' {
			if !strip {
				buf = append(buf, r)
			}
			flush()
			upperRun = 0
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper {
			if i > 0 && unicode.IsLower(runes[i-1]) {
				flush()
			}
			upperRun++
		} else {
			if upperRun >= 2 && unicode.IsLower(r) {
				// Last capital of the run starts this fragment.
				last := buf[len(buf)-1]
				buf = buf[:len(buf)-1]
				flush()
				buf = append(buf, last)
			}
			upperRun = 0
		}
		buf = append(buf, r)
	}
	flush()
	return result
}

func digitSplit(el string, _ Options) []string {
	runes := []rune(el)
	var result []string
	var buf []rune
	for i, r := range runes {
		if i > 0 && util.IsDigit(runes[i-1]) != util.IsDigit(r) {
			result = append(result, string(buf))
			buf = nil
		}
		buf = append(buf, r)
	}
	if len(buf) > 0 {
		result = append(result, string(buf))
	}
	return result
}

func removeClass(class func(rune) bool) func(string, Options) []string {
	return func(el string, _ Options) []string {
		var buf []rune
		for _, r := range el {
			if !class(r) {
				buf = append(buf, r)
			}
		}
		if len(buf) == 0 {
			return nil
		}
		return []string{string(buf)}
	}
}
