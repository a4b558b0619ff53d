package utils

import (
	"strings"
	"unicode"
)

// IsDevanagari reports whether the rune belongs to the Devanagari block.
func IsDevanagari(r rune) bool {
	return unicode.Is(unicode.Devanagari, r)
}

// IsValidWord checks that the input is a single Devanagari token: non-empty,
// no internal whitespace, every rune from the Devanagari block. Used by the
// interactive shell's input filter; the engine itself accepts any non-empty
// code-point sequence.
func IsValidWord(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return false
	}
	for _, r := range s {
		if !IsDevanagari(r) {
			return false
		}
	}
	return true
}

// FormatWithCommas renders an integer with thousands separators for
// human-readable CLI output.
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	s := []byte{}
	for i := 0; ; i++ {
		s = append([]byte{byte('0' + n%10)}, s...)
		n /= 10
		if n == 0 {
			break
		}
		if (i+1)%3 == 0 {
			s = append([]byte{','}, s...)
		}
	}
	return string(s)
}
