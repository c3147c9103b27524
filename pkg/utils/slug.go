package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns a display name into a URL-safe slug. Accented characters
// common in Spanish business names (café, peluquería) are folded to ASCII.
func GenerateSlug(text string) string {
	text = strings.ReplaceAll(text, "ñ", "n")
	text = strings.ReplaceAll(text, "Ñ", "N")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	text = strings.ToLower(text)
	text = nonSlugChars.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	return text
}
