// ABOUTME: Text truncation helper shared across the pipeline stages
// ABOUTME: Cuts strings to a byte budget without splitting multibyte runes

package textutil

import "unicode/utf8"

// Truncate cuts s to at most max bytes. The cut point backs off to the
// nearest rune boundary so the result is always valid UTF-8. A max of
// zero or less means no limit.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
