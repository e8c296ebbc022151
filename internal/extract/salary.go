// Package extract holds the field heuristics that turn a free-text
// announcement block into typed values. Every function here is total:
// ambiguity comes back as a sentinel (0, absent, "Nacional/Outro"),
// never as an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Amounts at or below this are almost always application fees
// ("taxa de inscrição"), not salaries. Empirical threshold, not a domain law.
const feeThreshold = 400

// One canonical pattern table for currency mentions. Digit groups use the
// Brazilian convention: "." for thousands, "," for decimals. Thousands
// separators are optional: the grouped alternative requires at least one
// "." so a bare run like "5500" falls through to the \d+ branch instead of
// being cut at three digits.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)R\$\s*(\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d+(?:,\d{1,2})?)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:\.\d{3})*,\d{2})\s*(?:reais|bruto|l[ií]quido)`),
}

// Salary scans text for every currency mention and returns the highest
// plausible value — announcements list pay floors and ceilings, and the
// ceiling ("teto") is the number worth ranking on. Returns 0 when no value
// above the fee threshold parses, meaning "not stated".
func Salary(text string) float64 {
	best := 0.0
	for _, re := range salaryPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v, ok := parseBRL(m[1])
			if !ok || v <= feeThreshold {
				continue
			}
			if v > best {
				best = v
			}
		}
	}
	return best
}

// parseBRL converts "1.234,56" to 1234.56. Malformed substrings are
// skipped by the caller, not fatal.
func parseBRL(raw string) (float64, bool) {
	clean := strings.ReplaceAll(raw, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
