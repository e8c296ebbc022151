package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date shapes found in announcement text, most specific first:
// dd/mm/yyyy, dd/mm/yy and dd/mm.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`),
	regexp.MustCompile(`\b(\d{2}/\d{2}/\d{2})\b`),
	regexp.MustCompile(`\b(\d{2}/\d{2})\b`),
}

// Deadline scans text for dates and returns the latest one found.
// Announcements mention posting and exam dates before the inscription-close
// date, and the close date is chronologically last — so latest wins.
//
// Two-digit years are expanded with a "20" prefix. Dates without a year get
// referenceDate's year, or the next year when the month is numerically
// below referenceDate's month (year-end listings spilling into January).
// Returns ok=false when nothing parses; that is "unknown", not an error.
func Deadline(text string, referenceDate time.Time) (time.Time, bool) {
	var latest time.Time
	found := false

	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2], loc[3]
			//skip a dd/mm that is really the head of a longer date
			if end < len(text) && text[end] == '/' {
				continue
			}
			d, ok := parseDate(text[start:end], referenceDate)
			if !ok {
				continue
			}
			if !found || d.After(latest) {
				latest = d
				found = true
			}
		}
	}

	return latest, found
}

func parseDate(raw string, referenceDate time.Time) (time.Time, bool) {
	parts := strings.Split(raw, "/")
	switch len(parts) {
	case 2:
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, false
		}
		year := referenceDate.Year()
		if month < int(referenceDate.Month()) {
			year++
		}
		raw = fmt.Sprintf("%s/%s/%d", parts[0], parts[1], year)
	case 3:
		if len(parts[2]) == 2 {
			parts[2] = "20" + parts[2]
			raw = strings.Join(parts, "/")
		}
	}

	d, err := time.Parse("02/01/2006", raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
