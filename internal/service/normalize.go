package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeAnswer maps raw text to the canonical form used for answer
// comparison: trimmed, lower-cased with Spanish folding rules, and with
// all combining diacritical marks removed ("Café" == "cafe"). The
// pipeline is order-sensitive; whitespace inside the string is kept.
func NormalizeAnswer(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	// Casers are stateful, so build one per call instead of sharing.
	value = cases.Lower(language.Spanish).String(value)

	stripped, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), value)
	if err != nil {
		return value
	}
	return stripped
}
