package temperature

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cityCacheKeyPrefix must not change: every cached temperature lives under it
const cityCacheKeyPrefix = "city-"

// Normalize maps a raw city name to its canonical form.
// Accents are stripped, the result is lower-cased, whitespace runs become a single space and
// anything other than letters, digits and -'., is dropped. "  São   Paulo " becomes "sao paulo".
//
// The rule is frozen. Changing it orphans every cached entry.
func Normalize(raw string) string {
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripAccents, raw)
	if err != nil {
		stripped = raw
	}

	var b strings.Builder
	pendingSpace := false
	for _, r := range strings.ToLower(stripped) {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case keepRune(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}

// CityCacheKey builds the cache key for an already normalized city name
func CityCacheKey(normalized string) string {
	return cityCacheKeyPrefix + normalized
}

func keepRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '\'', '.', ',':
		return true
	}
	return false
}
