// Package textutils provides text normalization helpers shared by the
// extraction engine and the reporting layer.
package textutils

import (
	"regexp"
	"strings"
	"unicode"
)

var multiSpace = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace into single spaces and
// trims the ends. Matched spans from OCR text frequently carry line breaks
// and double spaces from the recognition engine.
func NormalizeWhitespace(value string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(value, " "))
}

// CompactWhitespace removes all whitespace from a string. Used for values
// that are identifiers rather than prose: IBANs, account and serial numbers.
func CompactWhitespace(value string) string {
	return multiSpace.ReplaceAllString(value, "")
}

// TitleCase lowercases the whole span, then capitalizes the first rune of
// each whitespace-delimited token and rejoins with single spaces. Applied
// uniformly to party names, bank names, branches and places.
func TitleCase(value string) string {
	lowered := strings.ToLower(value)
	parts := strings.Fields(lowered)
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
