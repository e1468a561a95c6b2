package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics strips diacritical marks from a string (e.g., "café" -> "cafe").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// normalizeText lowercases, trims and strips diacritics so queries match
// label and file names regardless of accents or casing.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(removeDiacritics(s)))
}
