package util

import (
	"os"
	"unicode"
)

// IsCJK checks if a rune is a CJK unified ideograph.
func IsCJK(r rune) bool {
	if r >= 0x4E00 && r <= 0x9FFF {
		return true
	}
	// Extension A
	if r >= 0x3400 && r <= 0x4DBF {
		return true
	}
	// Compatibility ideographs
	if r >= 0xF900 && r <= 0xFAFF {
		return true
	}
	return false
}

// IsASCIILetter checks if a rune is an ASCII letter a-z or A-Z.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsDigit checks if a rune is a decimal digit 0-9.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsPunct checks if a rune is punctuation or a special symbol, including
// CJK punctuation and full-width forms.
func IsPunct(r rune) bool {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) {
		return true
	}
	// CJK Symbols and Punctuation
	if r >= 0x3000 && r <= 0x303F {
		return true
	}
	// Full-width forms
	if r >= 0xFF00 && r <= 0xFFEF {
		return true
	}
	return false
}

// IsPunctuation checks if a string consists entirely of punctuation or special symbols.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsPunct(r) {
			return false
		}
	}
	return true
}

// ContainsPunctuation checks if any part of the string contains punctuation or special symbols.
func ContainsPunctuation(s string) bool {
	for _, r := range s {
		if IsPunct(r) {
			return true
		}
	}
	return false
}

// IsBlank checks if a string is empty or whitespace only.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FileExists checks whether the path exists and is a regular file.
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
