package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DisplayName prepares a raw file name for drawing. Decomposed accents are
// composed (NFC) so they occupy one cell, and anything that could move the
// terminal cursor or reorder text is replaced.
func DisplayName(name string) string {
	return SanitizeTerminalText(norm.NFC.String(name))
}

// SanitizeTerminalText replaces control characters so user-controlled text cannot
// inject terminal escape sequences when rendered.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, requiresSanitization) < 0 {
		return text
	}
	return strings.Map(sanitizeRune, text)
}

func requiresSanitization(r rune) bool {
	return unicode.IsControl(r) || unicode.Is(unicode.Cf, r)
}

func sanitizeRune(r rune) rune {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return ' '
	case unicode.IsControl(r):
		return '?'
	case unicode.Is(unicode.Cf, r):
		// bidi overrides, zero-width joiners, BOM
		return unicode.ReplacementChar
	default:
		return r
	}
}
