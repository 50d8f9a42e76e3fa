// Package slug converts human titles into URL-safe identifiers.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Matches spaces, underscores, and slashes (for replacement with dashes).
	wordSeparatorRe = regexp.MustCompile(`[\s_/]+`)
	// Matches non-alphanumeric characters (except dashes).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)

	// Decompose, drop combining marks, recompose. Turns "café" into "cafe".
	diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Make converts a name or title to its canonical slug. The slug is a pure
// function of its input, so two names that normalize the same way collide;
// callers enforce uniqueness at the repository level.
//
// Normalization rules:
//  1. Trim whitespace and lowercase
//  2. Strip diacritics
//  3. Replace spaces, underscores and slashes with dashes
//  4. Remove non-alphanumeric characters (except dashes)
//  5. Collapse multiple dashes and trim leading/trailing ones
func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))

	if stripped, _, err := transform.String(diacriticStripper, s); err == nil {
		s = stripped
	}

	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
