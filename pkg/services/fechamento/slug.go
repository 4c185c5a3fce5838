package fechamento

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackKey identifies a group whose value slugified to nothing.
const fallbackKey = "grupo"

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slugify turns a display label into a stable group key: lowercase,
// diacritics stripped, runs of non-alphanumerics collapsed to a single
// dash.
func slugify(label string) string {
	s, _, err := transform.String(stripAccents, label)
	if err != nil {
		s = label
	}
	s = strings.ToLower(s)

	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// groupKey is slugify with the constant fallback for empty values.
func groupKey(label string) string {
	if key := slugify(label); key != "" {
		return key
	}
	return fallbackKey
}
