// Accent and case insensitive text matching helpers.
// Stored record text and caller keywords go through the same Normalize,
// so matching works in both directions.

package textutil

import (
	"strings"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize decomposes accented characters, strips the combining marks and
// lowercases. Total function: any input returns a string, never an error.
func Normalize(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		//transform only fails on broken UTF-8; lowercase is still safe
		return strings.ToLower(str)
	}
	return strings.ToLower(result)
}

// Tokenize splits normalized text into unique words. Punctuation acts as a
// word separator, underscores and digits stay inside words.
func Tokenize(normalized string) mapset.Set[string] {
	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	return mapset.NewSet(words...)
}

// NormalizeAll normalizes every keyword in a list, dropping empties.
func NormalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		n := strings.TrimSpace(Normalize(kw))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
